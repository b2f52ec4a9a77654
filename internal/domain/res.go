package domain

import (
	"fmt"
	"time"
	"unicode/utf8"
)

// Res content limits, counted in runes.
const (
	MaxResNameLength = 50
	MaxResTextLength = 5000
)

// ResBase is shared by every res variant.
type ResBase struct {
	ID      string
	TopicID string
	UserID  string
	Type    ResType
	Date    time.Time
	Votes   []Vote
	// Lv is the poster's level times five, captured at creation.
	Lv   int
	Hash string
	// ReplyCount is derived by the repository and not persisted on the row.
	ReplyCount int
}

// Res is a post in a topic. Type selects the variant:
//   - NORMAL:  Normal is set.
//   - HISTORY: HistoryID points at the edit snapshot.
//   - TOPIC:   opening marker of a one topic or a fork.
//   - FORK:    ForkID points at the fork topic, posted in the parent.
type Res struct {
	ResBase
	Normal    *NormalBody
	HistoryID string
	ForkID    string
}

// NormalBody holds the user-written part of a normal res.
type NormalBody struct {
	Name       *string
	Text       string
	Reply      *Reply
	DeleteFlag DeleteFlag
	ProfileID  *string
	Age        bool
}

// Reply links a res to the res it answers.
type Reply struct {
	ResID  string
	UserID string
}

// NormalResParams holds the user input for a normal res.
type NormalResParams struct {
	Name      *string
	Text      string
	Reply     *Reply
	ProfileID *string
	Age       bool
}

// NewNormalRes creates a user-written res in topic.
func NewNormalRes(ids IDGenerator, clock Clock, topic *Topic, user *User, p NormalResParams) (*Res, error) {
	if err := CheckResData(p.Name, p.Text); err != nil {
		return nil, err
	}

	res := newRes(ids, clock, topic, user, ResTypeNormal)
	res.Normal = &NormalBody{
		Name:       p.Name,
		Text:       p.Text,
		Reply:      p.Reply,
		DeleteFlag: DeleteFlagActive,
		ProfileID:  p.ProfileID,
		Age:        p.Age,
	}
	return res, nil
}

// NewHistoryRes creates the marker res announcing a topic edit.
func NewHistoryRes(ids IDGenerator, clock Clock, topic *Topic, user *User, historyID string) *Res {
	res := newRes(ids, clock, topic, user, ResTypeHistory)
	res.HistoryID = historyID
	return res
}

// NewTopicRes creates the opening marker res of a one topic or a fork.
func NewTopicRes(ids IDGenerator, clock Clock, topic *Topic, user *User) *Res {
	return newRes(ids, clock, topic, user, ResTypeTopic)
}

// NewForkRes creates the marker res posted in parent when fork is created.
func NewForkRes(ids IDGenerator, clock Clock, parent *Topic, user *User, forkID string) *Res {
	res := newRes(ids, clock, parent, user, ResTypeFork)
	res.ForkID = forkID
	return res
}

func newRes(ids IDGenerator, clock Clock, topic *Topic, user *User, typ ResType) *Res {
	now := clock.Now()
	return &Res{
		ResBase: ResBase{
			ID:         ids.Generate(),
			TopicID:    topic.ID,
			UserID:     user.ID,
			Type:       typ,
			Date:       now,
			Votes:      []Vote{},
			Lv:         user.Lv * 5,
			Hash:       topic.Hash(now, user.ID),
			ReplyCount: 0,
		},
	}
}

// IsActive reports whether the res accepts votes and replies.
// Marker reses have no delete flag and are always active.
func (r *Res) IsActive() bool {
	if r.Normal == nil {
		return true
	}
	return r.Normal.DeleteFlag == DeleteFlagActive
}

// ReplyTarget returns the Reply a new res in topicID would carry when answering r.
func (r *Res) ReplyTarget(topicID string) (*Reply, error) {
	if r.TopicID != topicID {
		return nil, NewValidationError("reply", "must belong to the same topic")
	}
	if !r.IsActive() {
		return nil, fmt.Errorf("reply to res %s: %w", r.ID, ErrInvalidState)
	}
	return &Reply{ResID: r.ID, UserID: r.UserID}, nil
}

// DeleteBySelf marks the res as deleted by its author.
func (r *Res) DeleteBySelf(userID string) error {
	if r.Normal == nil {
		return fmt.Errorf("delete %s res %s: %w", r.Type, r.ID, ErrInvalidState)
	}
	if r.UserID != userID {
		return fmt.Errorf("delete res %s: %w", r.ID, ErrForbidden)
	}
	if r.Normal.DeleteFlag != DeleteFlagActive {
		return fmt.Errorf("delete res %s in state %s: %w", r.ID, r.Normal.DeleteFlag, ErrInvalidState)
	}
	r.Normal.DeleteFlag = DeleteFlagSelf
	return nil
}

// Freeze hides the res by moderation.
func (r *Res) Freeze() error {
	if r.Normal == nil {
		return fmt.Errorf("freeze %s res %s: %w", r.Type, r.ID, ErrInvalidState)
	}
	if r.Normal.DeleteFlag != DeleteFlagActive {
		return fmt.Errorf("freeze res %s in state %s: %w", r.ID, r.Normal.DeleteFlag, ErrInvalidState)
	}
	r.Normal.DeleteFlag = DeleteFlagFreeze
	return nil
}

// CheckResData validates the user-written fields of a normal res.
func CheckResData(name *string, text string) error {
	if name != nil && utf8.RuneCountInString(*name) > MaxResNameLength {
		return NewValidationError("name", fmt.Sprintf("max %d characters", MaxResNameLength))
	}
	if text == "" {
		return NewValidationError("text", "required")
	}
	if utf8.RuneCountInString(text) > MaxResTextLength {
		return NewValidationError("text", fmt.Sprintf("max %d characters", MaxResTextLength))
	}
	return nil
}
