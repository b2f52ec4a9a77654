package res

import (
	"context"
	"sync"

	"github.com/heartmarshall/anonboard-backend/internal/domain"
)

var _ topicRepo = &topicRepoMock{}

type topicRepoMock struct {
	FindOneFunc          func(ctx context.Context, id string) (*domain.Topic, error)
	FindOneForUpdateFunc func(ctx context.Context, id string) (*domain.Topic, error)
	UpdateFunc           func(ctx context.Context, t *domain.Topic) error

	calls struct {
		FindOne []struct {
			Ctx context.Context
			Id  string
		}
		FindOneForUpdate []struct {
			Ctx context.Context
			Id  string
		}
		Update []struct {
			Ctx context.Context
			T   *domain.Topic
		}
	}
	lockFindOne          sync.RWMutex
	lockFindOneForUpdate sync.RWMutex
	lockUpdate           sync.RWMutex
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
