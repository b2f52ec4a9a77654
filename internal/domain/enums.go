package domain

// TopicType is the variant tag of a Topic.
type TopicType string

const (
	TopicTypeNormal TopicType = "NORMAL"
	TopicTypeOne    TopicType = "ONE"
	TopicTypeFork   TopicType = "FORK"
)

func (t TopicType) String() string { return string(t) }

func (t TopicType) IsValid() bool {
	switch t {
	case TopicTypeNormal, TopicTypeOne, TopicTypeFork:
		return true
	}
	return false
}

// ResType is the variant tag of a Res.
type ResType string

const (
	ResTypeNormal  ResType = "NORMAL"
	ResTypeHistory ResType = "HISTORY"
	ResTypeTopic   ResType = "TOPIC"
	ResTypeFork    ResType = "FORK"
)

func (t ResType) String() string { return string(t) }

func (t ResType) IsValid() bool {
	switch t {
	case ResTypeNormal, ResTypeHistory, ResTypeTopic, ResTypeFork:
		return true
	}
	return false
}

// DeleteFlag is the visibility state of a normal res.
//
//	ACTIVE -> SELF   (author)
//	ACTIVE -> FREEZE (moderator)
//
// SELF and FREEZE are terminal.
type DeleteFlag string

const (
	DeleteFlagActive DeleteFlag = "ACTIVE"
	DeleteFlagSelf   DeleteFlag = "SELF"
	DeleteFlagFreeze DeleteFlag = "FREEZE"
)

func (f DeleteFlag) String() string { return string(f) }

func (f DeleteFlag) IsValid() bool {
	switch f {
	case DeleteFlagActive, DeleteFlagSelf, DeleteFlagFreeze:
		return true
	}
	return false
}

// VoteType is the direction of a vote.
type VoteType string

const (
	VoteTypeUp   VoteType = "UP"
	VoteTypeDown VoteType = "DOWN"
)

func (v VoteType) String() string { return string(v) }

func (v VoteType) IsValid() bool {
	switch v {
	case VoteTypeUp, VoteTypeDown:
		return true
	}
	return false
}

// Value returns the signed magnitude stored in the ledger.
// Up and down are intentionally asymmetric.
func (v VoteType) Value() int {
	switch v {
	case VoteTypeUp:
		return 2
	case VoteTypeDown:
		return -1
	}
	return 0
}

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleUser      UserRole = "user"
	UserRoleModerator UserRole = "moderator"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleModerator:
		return true
	}
	return false
}

func (r UserRole) IsModerator() bool {
	return r == UserRoleModerator
}

// CounterWindow names one of the six rolling res counters.
type CounterWindow string

const (
	CounterWindowM10 CounterWindow = "m10"
	CounterWindowM30 CounterWindow = "m30"
	CounterWindowH1  CounterWindow = "h1"
	CounterWindowH6  CounterWindow = "h6"
	CounterWindowH12 CounterWindow = "h12"
	CounterWindowD1  CounterWindow = "d1"
)

// CounterWindows lists every window in ascending length.
var CounterWindows = []CounterWindow{
	CounterWindowM10, CounterWindowM30, CounterWindowH1,
	CounterWindowH6, CounterWindowH12, CounterWindowD1,
}

func (w CounterWindow) String() string { return string(w) }

func (w CounterWindow) IsValid() bool {
	switch w {
	case CounterWindowM10, CounterWindowM30, CounterWindowH1,
		CounterWindowH6, CounterWindowH12, CounterWindowD1:
		return true
	}
	return false
}

// RateLimitedAction names the cooldown gate that denied an action.
type RateLimitedAction string

const (
	RateLimitedActionRes      RateLimitedAction = "res"
	RateLimitedActionTopic    RateLimitedAction = "topic"
	RateLimitedActionOneTopic RateLimitedAction = "one_topic"
)

func (a RateLimitedAction) String() string { return string(a) }
