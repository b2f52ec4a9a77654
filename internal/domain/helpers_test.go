package domain

import (
	"fmt"
	"time"
)

type fixedClock struct{ now time.Time }

func (c *fixedClock) Now() time.Time { return c.now }

func (c *fixedClock) advance(d time.Duration) { c.now = c.now.Add(d) }

type seqIDs struct {
	prefix string
	n      int
}

func (g *seqIDs) Generate() string {
	g.n++
	return fmt.Sprintf("%s%d", g.prefix, g.n)
}

var t0 = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

func newTestUser(id string, lv int) *User {
	return &User{
		ID:         id,
		ScreenName: "user_" + id,
		Role:       UserRoleUser,
		Lv:         lv,
		CreatedAt:  t0.Add(-48 * time.Hour),
		UpdatedAt:  t0.Add(-48 * time.Hour),
	}
}

func newTestTopic(clock Clock, ids IDGenerator, userID string) *Topic {
	topic, err := NewNormalTopic(ids, clock, userID, TopicParams{
		Title:       "Hello",
		Description: "world",
		Tags:        []string{"a"},
	})
	if err != nil {
		panic(err)
	}
	return topic
}
