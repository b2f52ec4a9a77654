package topic

import (
	"context"
	"sync"

	"github.com/heartmarshall/anonboard-backend/internal/domain"
)

var _ resRepo = &resRepoMock{}

type resRepoMock struct {
	InsertFunc func(ctx context.Context, res *domain.Res) error

	calls struct {
		Insert []struct {
			Ctx context.Context
			Res *domain.Res
		}
	}
	lockInsert sync.RWMutex
}

func (mock *resRepoMock) Insert(ctx context.Context, res *domain.Res) error {
	if mock.InsertFunc == nil {
		panic("resRepoMock.InsertFunc: method is nil but resRepo.Insert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Res *domain.Res
	}{
		Ctx: ctx,
		Res: res,
	}
	mock.lockInsert.Lock()
	mock.calls.Insert = append(mock.calls.Insert, callInfo)
	mock.lockInsert.Unlock()
	return mock.InsertFunc(ctx, res)
}

func (mock *resRepoMock) InsertCalls() []struct {
	Ctx context.Context
	Res *domain.Res
} {
	mock.lockInsert.RLock()
	calls := mock.calls.Insert
	mock.lockInsert.RUnlock()
	return calls
}
