package topic

import (
	"context"
	"sync"
	"time"

	"github.com/heartmarshall/anonboard-backend/internal/domain"
)

var _ topicRepo = &topicRepoMock{}

type topicRepoMock struct {
	CloseIdleFunc           func(ctx context.Context, typ domain.TopicType, before time.Time, now time.Time) (int64, error)
	DisableSubscriptionFunc func(ctx context.Context, topicID string, userID string) error
	EnableSubscriptionFunc  func(ctx context.Context, s domain.Subscription) error
	FindFunc                func(ctx context.Context, q domain.TopicQuery, limit int, offset int) ([]domain.Topic, error)
	FindOneFunc             func(ctx context.Context, id string) (*domain.Topic, error)
	FindOneForUpdateFunc    func(ctx context.Context, id string) (*domain.Topic, error)
	GetSubscriptionFunc     func(ctx context.Context, topicID string, userID string) (*domain.Subscription, error)
	InsertFunc              func(ctx context.Context, t *domain.Topic) error
	SubscriptionUserIDsFunc func(ctx context.Context, topicID string) ([]string, error)
	UpdateFunc              func(ctx context.Context, t *domain.Topic) error

	calls struct {
		CloseIdle []struct {
			Ctx    context.Context
			Typ    domain.TopicType
			Before time.Time
			Now    time.Time
		}
		DisableSubscription []struct {
			Ctx     context.Context
			TopicID string
			UserID  string
		}
		EnableSubscription []struct {
			Ctx context.Context
			S   domain.Subscription
		}
		Find []struct {
			Ctx    context.Context
			Q      domain.TopicQuery
			Limit  int
			Offset int
		}
		FindOne []struct {
			Ctx context.Context
			Id  string
		}
		FindOneForUpdate []struct {
			Ctx context.Context
			Id  string
		}
		GetSubscription []struct {
			Ctx     context.Context
			TopicID string
			UserID  string
		}
		Insert []struct {
			Ctx context.Context
			T   *domain.Topic
		}
		SubscriptionUserIDs []struct {
			Ctx     context.Context
			TopicID string
		}
		Update []struct {
			Ctx context.Context
			T   *domain.Topic
		}
	}
	lockCloseIdle           sync.RWMutex
	lockDisableSubscription sync.RWMutex
	lockEnableSubscription  sync.RWMutex
	lockFind                sync.RWMutex
	lockFindOne             sync.RWMutex
	lockFindOneForUpdate    sync.RWMutex
	lockGetSubscription     sync.RWMutex
	lockInsert              sync.RWMutex
	lockSubscriptionUserIDs sync.RWMutex
	lockUpdate              sync.RWMutex
}

func (mock *topicRepoMock) CloseIdle(ctx context.Context, typ domain.TopicType, before time.Time, now time.Time) (int64, error) {
	if mock.CloseIdleFunc == nil {
		panic("topicRepoMock.CloseIdleFunc: method is nil but topicRepo.CloseIdle was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Typ    domain.TopicType
		Before time.Time
		Now    time.Time
	}{
		Ctx:    ctx,
		Typ:    typ,
		Before: before,
		Now:    now,
	}
	mock.lockCloseIdle.Lock()
	mock.calls.CloseIdle = append(mock.calls.CloseIdle, callInfo)
	mock.lockCloseIdle.Unlock()
	return mock.CloseIdleFunc(ctx, typ, before, now)
}

func (mock *topicRepoMock) CloseIdleCalls() []struct {
	Ctx    context.Context
	Typ    domain.TopicType
	Before time.Time
	Now    time.Time
} {
	mock.lockCloseIdle.RLock()
	calls := mock.calls.CloseIdle
	mock.lockCloseIdle.RUnlock()
	return calls
}

func (mock *topicRepoMock) DisableSubscription(ctx context.Context, topicID string, userID string) error {
	if mock.DisableSubscriptionFunc == nil {
		panic("topicRepoMock.DisableSubscriptionFunc: method is nil but topicRepo.DisableSubscription was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		TopicID string
		UserID  string
	}{
		Ctx:     ctx,
		TopicID: topicID,
		UserID:  userID,
	}
	mock.lockDisableSubscription.Lock()
	mock.calls.DisableSubscription = append(mock.calls.DisableSubscription, callInfo)
	mock.lockDisableSubscription.Unlock()
	return mock.DisableSubscriptionFunc(ctx, topicID, userID)
}

func (mock *topicRepoMock) DisableSubscriptionCalls() []struct {
	Ctx     context.Context
	TopicID string
	UserID  string
} {
	mock.lockDisableSubscription.RLock()
	calls := mock.calls.DisableSubscription
	mock.lockDisableSubscription.RUnlock()
	return calls
}

func (mock *topicRepoMock) EnableSubscription(ctx context.Context, s domain.Subscription) error {
	if mock.EnableSubscriptionFunc == nil {
		panic("topicRepoMock.EnableSubscriptionFunc: method is nil but topicRepo.EnableSubscription was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   domain.Subscription
	}{
		Ctx: ctx,
		S:   s,
	}
	mock.lockEnableSubscription.Lock()
	mock.calls.EnableSubscription = append(mock.calls.EnableSubscription, callInfo)
	mock.lockEnableSubscription.Unlock()
	return mock.EnableSubscriptionFunc(ctx, s)
}

func (mock *topicRepoMock) EnableSubscriptionCalls() []struct {
	Ctx context.Context
	S   domain.Subscription
} {
	mock.lockEnableSubscription.RLock()
	calls := mock.calls.EnableSubscription
	mock.lockEnableSubscription.RUnlock()
	return calls
}

func (mock *topicRepoMock) Find(ctx context.Context, q domain.TopicQuery, limit int, offset int) ([]domain.Topic, error) {
	if mock.FindFunc == nil {
		panic("topicRepoMock.FindFunc: method is nil but topicRepo.Find was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Q      domain.TopicQuery
		Limit  int
		Offset int
	}{
		Ctx:    ctx,
		Q:      q,
		Limit:  limit,
		Offset: offset,
	}
	mock.lockFind.Lock()
	mock.calls.Find = append(mock.calls.Find, callInfo)
	mock.lockFind.Unlock()
	return mock.FindFunc(ctx, q, limit, offset)
}

func (mock *topicRepoMock) FindCalls() []struct {
	Ctx    context.Context
	Q      domain.TopicQuery
	Limit  int
	Offset int
} {
	mock.lockFind.RLock()
	calls := mock.calls.Find
	mock.lockFind.RUnlock()
	return calls
}

func (mock *topicRepoMock) FindOne(ctx context.Context, id string) (*domain.Topic, error) {
	if mock.FindOneFunc == nil {
		panic("topicRepoMock.FindOneFunc: method is nil but topicRepo.FindOne was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  string
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockFindOne.Lock()
	mock.calls.FindOne = append(mock.calls.FindOne, callInfo)
	mock.lockFindOne.Unlock()
	return mock.FindOneFunc(ctx, id)
}

func (mock *topicRepoMock) FindOneCalls() []struct {
	Ctx context.Context
	Id  string
} {
	mock.lockFindOne.RLock()
	calls := mock.calls.FindOne
	mock.lockFindOne.RUnlock()
	return calls
}

func (mock *topicRepoMock) FindOneForUpdate(ctx context.Context, id string) (*domain.Topic, error) {
	if mock.FindOneForUpdateFunc == nil {
		panic("topicRepoMock.FindOneForUpdateFunc: method is nil but topicRepo.FindOneForUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  string
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockFindOneForUpdate.Lock()
	mock.calls.FindOneForUpdate = append(mock.calls.FindOneForUpdate, callInfo)
	mock.lockFindOneForUpdate.Unlock()
	return mock.FindOneForUpdateFunc(ctx, id)
}

func (mock *topicRepoMock) FindOneForUpdateCalls() []struct {
	Ctx context.Context
	Id  string
} {
	mock.lockFindOneForUpdate.RLock()
	calls := mock.calls.FindOneForUpdate
	mock.lockFindOneForUpdate.RUnlock()
	return calls
}

func (mock *topicRepoMock) GetSubscription(ctx context.Context, topicID string, userID string) (*domain.Subscription, error) {
	if mock.GetSubscriptionFunc == nil {
		panic("topicRepoMock.GetSubscriptionFunc: method is nil but topicRepo.GetSubscription was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		TopicID string
		UserID  string
	}{
		Ctx:     ctx,
		TopicID: topicID,
		UserID:  userID,
	}
	mock.lockGetSubscription.Lock()
	mock.calls.GetSubscription = append(mock.calls.GetSubscription, callInfo)
	mock.lockGetSubscription.Unlock()
	return mock.GetSubscriptionFunc(ctx, topicID, userID)
}

func (mock *topicRepoMock) GetSubscriptionCalls() []struct {
	Ctx     context.Context
	TopicID string
	UserID  string
} {
	mock.lockGetSubscription.RLock()
	calls := mock.calls.GetSubscription
	mock.lockGetSubscription.RUnlock()
	return calls
}

func (mock *topicRepoMock) Insert(ctx context.Context, t *domain.Topic) error {
	if mock.InsertFunc == nil {
		panic("topicRepoMock.InsertFunc: method is nil but topicRepo.Insert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   *domain.Topic
	}{
		Ctx: ctx,
		T:   t,
	}
	mock.lockInsert.Lock()
	mock.calls.Insert = append(mock.calls.Insert, callInfo)
	mock.lockInsert.Unlock()
	return mock.InsertFunc(ctx, t)
}

func (mock *topicRepoMock) InsertCalls() []struct {
	Ctx context.Context
	T   *domain.Topic
} {
	mock.lockInsert.RLock()
	calls := mock.calls.Insert
	mock.lockInsert.RUnlock()
	return calls
}

func (mock *topicRepoMock) SubscriptionUserIDs(ctx context.Context, topicID string) ([]string, error) {
	if mock.SubscriptionUserIDsFunc == nil {
		panic("topicRepoMock.SubscriptionUserIDsFunc: method is nil but topicRepo.SubscriptionUserIDs was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		TopicID string
	}{
		Ctx:     ctx,
		TopicID: topicID,
	}
	mock.lockSubscriptionUserIDs.Lock()
	mock.calls.SubscriptionUserIDs = append(mock.calls.SubscriptionUserIDs, callInfo)
	mock.lockSubscriptionUserIDs.Unlock()
	return mock.SubscriptionUserIDsFunc(ctx, topicID)
}

func (mock *topicRepoMock) SubscriptionUserIDsCalls() []struct {
	Ctx     context.Context
	TopicID string
} {
	mock.lockSubscriptionUserIDs.RLock()
	calls := mock.calls.SubscriptionUserIDs
	mock.lockSubscriptionUserIDs.RUnlock()
	return calls
}

func (mock *topicRepoMock) Update(ctx context.Context, t *domain.Topic) error {
	if mock.UpdateFunc == nil {
		panic("topicRepoMock.UpdateFunc: method is nil but topicRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   *domain.Topic
	}{
		Ctx: ctx,
		T:   t,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, t)
}

func (mock *topicRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	T   *domain.Topic
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
