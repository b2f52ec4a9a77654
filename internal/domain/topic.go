package domain

import (
	"fmt"
	"time"
	"unicode/utf8"
)

// Topic content limits, counted in runes.
const (
	MaxTitleLength = 100
	MaxTags        = 15
	MaxTagLength   = 20
	MaxTextLength  = 10000
)

// TopicBase is shared by every topic variant.
type TopicBase struct {
	ID          string
	Title       string
	Description string
	Type        TopicType
	UserID      string
	Tags        []string
	ResCount    int
	IsClosed    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
	LastResAt   time.Time
	// AgeUpdatedAt moves only for reses posted with Age set.
	AgeUpdatedAt time.Time
}

// Topic is a thread. Type selects the variant; ParentID is set only for forks.
type Topic struct {
	TopicBase
	ParentID string
}

// TopicParams holds the editable fields of a topic.
type TopicParams struct {
	Title       string
	Description string
	Tags        []string
}

// NewNormalTopic creates a persistent, editable topic.
func NewNormalTopic(ids IDGenerator, clock Clock, userID string, p TopicParams) (*Topic, error) {
	return newTopic(ids, clock, TopicTypeNormal, userID, "", p)
}

// NewOneTopic creates a single-burst topic that is closed once it goes idle.
func NewOneTopic(ids IDGenerator, clock Clock, userID string, p TopicParams) (*Topic, error) {
	return newTopic(ids, clock, TopicTypeOne, userID, "", p)
}

// NewForkTopic creates a spin-off of parent. Only normal topics can be forked.
func NewForkTopic(ids IDGenerator, clock Clock, userID string, parent *Topic, p TopicParams) (*Topic, error) {
	if parent.Type != TopicTypeNormal {
		return nil, fmt.Errorf("fork of %s topic %s: %w", parent.Type, parent.ID, ErrInvalidState)
	}
	return newTopic(ids, clock, TopicTypeFork, userID, parent.ID, p)
}

func newTopic(ids IDGenerator, clock Clock, typ TopicType, userID, parentID string, p TopicParams) (*Topic, error) {
	if err := CheckTopicData(p.Title, p.Tags, p.Description); err != nil {
		return nil, err
	}

	now := clock.Now()
	return &Topic{
		TopicBase: TopicBase{
			ID:           ids.Generate(),
			Title:        p.Title,
			Description:  p.Description,
			Type:         typ,
			UserID:       userID,
			Tags:         cloneTags(p.Tags),
			ResCount:     1,
			CreatedAt:    now,
			UpdatedAt:    now,
			LastResAt:    now,
			AgeUpdatedAt: now,
		},
		ParentID: parentID,
	}, nil
}

// Hash returns the anonymity hash of userID in this topic on date's day.
func (t *Topic) Hash(date time.Time, userID string) string {
	return AnonymityHash(t.ID, date, userID)
}

// CanCreateRes reports whether new reses are admitted.
func (t *Topic) CanCreateRes() bool {
	return !t.IsClosed
}

// IsEditable reports whether ChangeData is offered for this topic through the API.
func (t *Topic) IsEditable() bool {
	return t.Type == TopicTypeNormal
}

// ChangeData replaces the editable fields and awards the editor one point.
// On validation failure neither the topic nor the user is modified.
func (t *Topic) ChangeData(clock Clock, p TopicParams, editor *User) error {
	if err := CheckTopicData(p.Title, p.Tags, p.Description); err != nil {
		return err
	}

	now := clock.Now()
	t.Title = p.Title
	t.Description = p.Description
	t.Tags = cloneTags(p.Tags)
	t.UpdatedAt = now

	editor.AddPoint(1, now)
	return nil
}

// ResUpdate records a new res attached to this topic.
func (t *Topic) ResUpdate(res *Res, clock Clock) {
	now := clock.Now()
	t.ResCount++
	t.LastResAt = now
	t.UpdatedAt = now
	if res != nil && res.Normal != nil && res.Normal.Age {
		t.AgeUpdatedAt = now
	}
}

// Close stops admitting new reses. There is no reopen.
func (t *Topic) Close(clock Clock) {
	if t.IsClosed {
		return
	}
	t.IsClosed = true
	t.UpdatedAt = clock.Now()
}

// CheckTopicData validates title, tags and text and returns the first violation.
func CheckTopicData(title string, tags []string, text string) error {
	if title == "" {
		return NewValidationError("title", "required")
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return NewValidationError("title", fmt.Sprintf("max %d characters", MaxTitleLength))
	}

	if len(tags) > MaxTags {
		return NewValidationError("tags", fmt.Sprintf("max %d tags", MaxTags))
	}
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		if tag == "" {
			return NewValidationError("tags", "tag must not be empty")
		}
		if utf8.RuneCountInString(tag) > MaxTagLength {
			return NewValidationError("tags", fmt.Sprintf("max %d characters per tag", MaxTagLength))
		}
		if _, dup := seen[tag]; dup {
			return NewValidationError("tags", fmt.Sprintf("duplicate tag %q", tag))
		}
		seen[tag] = struct{}{}
	}

	if text == "" {
		return NewValidationError("text", "required")
	}
	if utf8.RuneCountInString(text) > MaxTextLength {
		return NewValidationError("text", fmt.Sprintf("max %d characters", MaxTextLength))
	}

	return nil
}

func cloneTags(tags []string) []string {
	out := make([]string, len(tags))
	copy(out, tags)
	return out
}

// TopicQuery filters topic listings. Zero values mean "any".
type TopicQuery struct {
	Title      string
	Tags       []string
	ParentID   string
	ActiveOnly bool
}

// Subscription is a user's membership in a topic's notification set.
type Subscription struct {
	TopicID   string
	UserID    string
	CreatedAt time.Time
}
