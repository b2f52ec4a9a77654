package domain

import "time"

// RateLimitPolicy holds the cooldown windows that gate post creation.
// Each action has an independent gate keyed on its own last-created timestamp.
// The rolling counters on User are not consulted here.
type RateLimitPolicy struct {
	ResCooldown      time.Duration
	TopicCooldown    time.Duration
	OneTopicCooldown time.Duration
}

// DefaultRateLimitPolicy returns a policy with a one hour cooldown for every action.
func DefaultRateLimitPolicy() RateLimitPolicy {
	return RateLimitPolicy{
		ResCooldown:      time.Hour,
		TopicCooldown:    time.Hour,
		OneTopicCooldown: time.Hour,
	}
}

// CanCreateRes reports whether the user's last res is strictly older than the cooldown.
func (p RateLimitPolicy) CanCreateRes(u *User, now time.Time) bool {
	return cooledDown(u.ResLastCreatedAt, p.ResCooldown, now)
}

// CanCreateTopic reports whether the user may open a normal topic.
func (p RateLimitPolicy) CanCreateTopic(u *User, now time.Time) bool {
	return cooledDown(u.TopicLastCreatedAt, p.TopicCooldown, now)
}

// CanCreateOneTopic reports whether the user may open a one topic or a fork.
func (p RateLimitPolicy) CanCreateOneTopic(u *User, now time.Time) bool {
	return cooledDown(u.OneTopicLastCreatedAt, p.OneTopicCooldown, now)
}

// CheckRes is CanCreateRes returning a *RateLimitError on denial.
func (p RateLimitPolicy) CheckRes(u *User, now time.Time) error {
	if p.CanCreateRes(u, now) {
		return nil
	}
	return newRateLimitError(RateLimitedActionRes, u.ResLastCreatedAt, p.ResCooldown, now)
}

// CheckTopic is CanCreateTopic returning a *RateLimitError on denial.
func (p RateLimitPolicy) CheckTopic(u *User, now time.Time) error {
	if p.CanCreateTopic(u, now) {
		return nil
	}
	return newRateLimitError(RateLimitedActionTopic, u.TopicLastCreatedAt, p.TopicCooldown, now)
}

// CheckOneTopic is CanCreateOneTopic returning a *RateLimitError on denial.
func (p RateLimitPolicy) CheckOneTopic(u *User, now time.Time) error {
	if p.CanCreateOneTopic(u, now) {
		return nil
	}
	return newRateLimitError(RateLimitedActionOneTopic, u.OneTopicLastCreatedAt, p.OneTopicCooldown, now)
}

// cooledDown is true when last < now-cooldown. Exactly one cooldown ago is still denied.
func cooledDown(last time.Time, cooldown time.Duration, now time.Time) bool {
	return last.Before(now.Add(-cooldown))
}

func newRateLimitError(action RateLimitedAction, last time.Time, cooldown time.Duration, now time.Time) *RateLimitError {
	wait := last.Add(cooldown).Sub(now)
	if wait < 0 {
		wait = 0
	}
	// The gate is strict, so the earliest admitted instant is just past the boundary.
	return &RateLimitError{Action: action, RetryAfter: wait + time.Second}
}
