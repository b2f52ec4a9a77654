package res

import (
	"context"
	"sync"

	"github.com/heartmarshall/anonboard-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	FindOneForUpdateFunc func(ctx context.Context, id string) (*domain.User, error)
	SaveFunc             func(ctx context.Context, u *domain.User) error

	calls struct {
		FindOneForUpdate []struct {
			Ctx context.Context
			Id  string
		}
		Save []struct {
			Ctx context.Context
			U   *domain.User
		}
	}
	lockFindOneForUpdate sync.RWMutex
	lockSave             sync.RWMutex
}

func (mock *userRepoMock) FindOneForUpdate(ctx context.Context, id string) (*domain.User, error) {
	if mock.FindOneForUpdateFunc == nil {
		panic("userRepoMock.FindOneForUpdateFunc: method is nil but userRepo.FindOneForUpdate was just called")
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

func (mock *userRepoMock) FindOneForUpdateCalls() []struct {
	Ctx context.Context
	Id  string
} {
	mock.lockFindOneForUpdate.RLock()
	calls := mock.calls.FindOneForUpdate
	mock.lockFindOneForUpdate.RUnlock()
	return calls
}

func (mock *userRepoMock) Save(ctx context.Context, u *domain.User) error {
	if mock.SaveFunc == nil {
		panic("userRepoMock.SaveFunc: method is nil but userRepo.Save was just called")
	}
	callInfo := struct {
		Ctx context.Context
		U   *domain.User
	}{
		Ctx: ctx,
		U:   u,
	}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, u)
}

func (mock *userRepoMock) SaveCalls() []struct {
	Ctx context.Context
	U   *domain.User
} {
	mock.lockSave.RLock()
	calls := mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}
