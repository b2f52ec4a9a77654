package domain

import "time"

// History is an append-only snapshot of a topic's editable fields,
// taken when a normal topic is created and on every edit.
type History struct {
	ID      string
	TopicID string
	UserID  string
	Title   string
	Tags    []string
	Text    string
	Date    time.Time
	Hash    string
}

// NewHistory snapshots topic as edited by userID.
func NewHistory(ids IDGenerator, clock Clock, topic *Topic, userID string) *History {
	now := clock.Now()
	return &History{
		ID:      ids.Generate(),
		TopicID: topic.ID,
		UserID:  userID,
		Title:   topic.Title,
		Tags:    cloneTags(topic.Tags),
		Text:    topic.Description,
		Date:    now,
		Hash:    topic.Hash(now, userID),
	}
}
