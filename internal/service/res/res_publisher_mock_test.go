package res

import (
	"context"
	"sync"

	"github.com/heartmarshall/anonboard-backend/internal/domain"
)

var _ resPublisher = &resPublisherMock{}

type resPublisherMock struct {
	PublishResAddedFunc func(ctx context.Context, ev domain.ResAdded) error

	calls struct {
		PublishResAdded []struct {
			Ctx context.Context
			Ev  domain.ResAdded
		}
	}
	lockPublishResAdded sync.RWMutex
}

func (mock *resPublisherMock) PublishResAdded(ctx context.Context, ev domain.ResAdded) error {
	if mock.PublishResAddedFunc == nil {
		panic("resPublisherMock.PublishResAddedFunc: method is nil but resPublisher.PublishResAdded was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ev  domain.ResAdded
	}{
		Ctx: ctx,
		Ev:  ev,
	}
	mock.lockPublishResAdded.Lock()
	mock.calls.PublishResAdded = append(mock.calls.PublishResAdded, callInfo)
	mock.lockPublishResAdded.Unlock()
	return mock.PublishResAddedFunc(ctx, ev)
}

func (mock *resPublisherMock) PublishResAddedCalls() []struct {
	Ctx context.Context
	Ev  domain.ResAdded
} {
	mock.lockPublishResAdded.RLock()
	calls := mock.calls.PublishResAdded
	mock.lockPublishResAdded.RUnlock()
	return calls
}
