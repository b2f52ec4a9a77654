package domain

import "time"

// Clock supplies the current time to domain operations.
type Clock interface {
	Now() time.Time
}

// IDGenerator produces opaque identifiers for users, topics, reses and histories.
type IDGenerator interface {
	Generate() string
}

// FrozenClock returns a Clock that always reports t. A use case reads the
// time once and passes FrozenClock(now) down, so every timestamp written by
// one operation is identical.
func FrozenClock(t time.Time) Clock { return frozenClock(t) }

type frozenClock time.Time

func (c frozenClock) Now() time.Time { return time.Time(c) }
