package rest

import (
	"time"

	"github.com/heartmarshall/anonboard-backend/internal/domain"
)

// Responses never carry user ids of other posters; the public identity
// on the board is the anonymity hash.

type userResponse struct {
	ID         string    `json:"id"`
	ScreenName string    `json:"screenName"`
	Role       string    `json:"role"`
	Lv         int       `json:"lv"`
	Point      int       `json:"point"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:         u.ID,
		ScreenName: u.ScreenName,
		Role:       u.Role.String(),
		Lv:         u.Lv,
		Point:      u.Point,
		CreatedAt:  u.CreatedAt,
	}
}

type authResponse struct {
	AccessToken string       `json:"accessToken"`
	User        userResponse `json:"user"`
}

type topicResponse struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Tags         []string  `json:"tags"`
	ParentID     string    `json:"parentId,omitempty"`
	ResCount     int       `json:"resCount"`
	IsClosed     bool      `json:"isClosed"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	LastResAt    time.Time `json:"lastResAt"`
	AgeUpdatedAt time.Time `json:"ageUpdatedAt"`
}

func toTopicResponse(t *domain.Topic) topicResponse {
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}
	return topicResponse{
		ID:           t.ID,
		Type:         t.Type.String(),
		Title:        t.Title,
		Description:  t.Description,
		Tags:         tags,
		ParentID:     t.ParentID,
		ResCount:     t.ResCount,
		IsClosed:     t.IsClosed,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
		LastResAt:    t.LastResAt,
		AgeUpdatedAt: t.AgeUpdatedAt,
	}
}

func toTopicResponses(ts []domain.Topic) []topicResponse {
	out := make([]topicResponse, len(ts))
	for i := range ts {
		out[i] = toTopicResponse(&ts[i])
	}
	return out
}

type historyResponse struct {
	ID    string    `json:"id"`
	Title string    `json:"title"`
	Tags  []string  `json:"tags"`
	Text  string    `json:"text"`
	Date  time.Time `json:"date"`
	Hash  string    `json:"hash"`
}

func toHistoryResponses(hs []domain.History) []historyResponse {
	out := make([]historyResponse, len(hs))
	for i, h := range hs {
		tags := h.Tags
		if tags == nil {
			tags = []string{}
		}
		out[i] = historyResponse{ID: h.ID, Title: h.Title, Tags: tags, Text: h.Text, Date: h.Date, Hash: h.Hash}
	}
	return out
}

type resResponse struct {
	ID         string              `json:"id"`
	TopicID    string              `json:"topicId"`
	Type       string              `json:"type"`
	Date       time.Time           `json:"date"`
	Hash       string              `json:"hash"`
	Lv         int                 `json:"lv"`
	Score      int                 `json:"score"`
	MyVote     int                 `json:"myVote"`
	ReplyCount int                 `json:"replyCount"`
	Normal     *normalBodyResponse `json:"normal,omitempty"`
	HistoryID  string              `json:"historyId,omitempty"`
	ForkID     string              `json:"forkId,omitempty"`
}

type normalBodyResponse struct {
	Name       *string `json:"name"`
	Text       string  `json:"text"`
	ReplyTo    string  `json:"replyTo,omitempty"`
	DeleteFlag string  `json:"deleteFlag"`
	ProfileID  *string `json:"profileId"`
	Age        bool    `json:"age"`
	IsMine     bool    `json:"isMine"`
}

// toResResponse renders res for viewerID ("" for anonymous readers).
// Deleted and frozen bodies are blanked.
func toResResponse(res *domain.Res, viewerID string) resResponse {
	out := resResponse{
		ID:         res.ID,
		TopicID:    res.TopicID,
		Type:       res.Type.String(),
		Date:       res.Date,
		Hash:       res.Hash,
		Lv:         res.Lv,
		Score:      res.Score(),
		ReplyCount: res.ReplyCount,
		HistoryID:  res.HistoryID,
		ForkID:     res.ForkID,
	}
	if viewerID != "" {
		out.MyVote = res.VoteOf(viewerID)
	}

	if n := res.Normal; n != nil {
		body := &normalBodyResponse{
			DeleteFlag: n.DeleteFlag.String(),
			Age:        n.Age,
			IsMine:     viewerID != "" && viewerID == res.UserID,
		}
		if n.Reply != nil {
			body.ReplyTo = n.Reply.ResID
		}
		if n.DeleteFlag == domain.DeleteFlagActive {
			body.Name = n.Name
			body.Text = n.Text
			body.ProfileID = n.ProfileID
		}
		out.Normal = body
	}
	return out
}

func toResResponses(rs []domain.Res, viewerID string) []resResponse {
	out := make([]resResponse, len(rs))
	for i := range rs {
		out[i] = toResResponse(&rs[i], viewerID)
	}
	return out
}
