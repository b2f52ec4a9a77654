package domain

import "time"

// User is a board account. Public identity on the board is never the user
// itself but the per-topic, per-day AnonymityHash.
type User struct {
	ID                    string
	ScreenName            string
	PasswordHash          string
	Role                  UserRole
	Lv                    int
	Point                 int
	ResLastCreatedAt      time.Time
	TopicLastCreatedAt    time.Time
	OneTopicLastCreatedAt time.Time
	CountCreatedRes       ResCounters
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// ResCounters holds the six rolling res-creation counters.
// The domain only increments them; resetting is done per window by a cron job.
type ResCounters struct {
	M10 int
	M30 int
	H1  int
	H6  int
	H12 int
	D1  int
}

// Get returns the counter for the given window.
func (c ResCounters) Get(w CounterWindow) int {
	switch w {
	case CounterWindowM10:
		return c.M10
	case CounterWindowM30:
		return c.M30
	case CounterWindowH1:
		return c.H1
	case CounterWindowH6:
		return c.H6
	case CounterWindowH12:
		return c.H12
	case CounterWindowD1:
		return c.D1
	}
	return 0
}

// NewUser creates a level 1 user with zero points. All last-created
// timestamps start at creation time, so a fresh account waits one
// cooldown before its first post.
func NewUser(ids IDGenerator, clock Clock, screenName, passwordHash string) *User {
	now := clock.Now()
	return &User{
		ID:                    ids.Generate(),
		ScreenName:            screenName,
		PasswordHash:          passwordHash,
		Role:                  UserRoleUser,
		Lv:                    1,
		Point:                 0,
		ResLastCreatedAt:      now,
		TopicLastCreatedAt:    now,
		OneTopicLastCreatedAt: now,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
}

// RecordResCreated stamps the res gate and increments all six counters.
func (u *User) RecordResCreated(now time.Time) {
	u.CountCreatedRes.M10++
	u.CountCreatedRes.M30++
	u.CountCreatedRes.H1++
	u.CountCreatedRes.H6++
	u.CountCreatedRes.H12++
	u.CountCreatedRes.D1++
	u.ResLastCreatedAt = now
	u.UpdatedAt = now
}

// RecordTopicCreated stamps the normal-topic gate.
func (u *User) RecordTopicCreated(now time.Time) {
	u.TopicLastCreatedAt = now
	u.UpdatedAt = now
}

// RecordOneTopicCreated stamps the one-topic gate. Forks share it.
func (u *User) RecordOneTopicCreated(now time.Time) {
	u.OneTopicLastCreatedAt = now
	u.UpdatedAt = now
}

// AddPoint adjusts the point balance.
func (u *User) AddPoint(point int, now time.Time) {
	u.Point += point
	u.UpdatedAt = now
}
