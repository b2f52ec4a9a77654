package topic

import (
	"sync"

	"github.com/heartmarshall/anonboard-backend/internal/domain"
)

var _ boardMetrics = &boardMetricsMock{}

type boardMetricsMock struct {
	AddTopicsClosedFunc   func(n int64)
	IncPublishFailureFunc func()
	IncRateLimitedFunc    func(a domain.RateLimitedAction)
	IncTopicCreatedFunc   func(t domain.TopicType)

	calls struct {
		AddTopicsClosed []struct {
			N int64
		}
		IncPublishFailure []struct{}
		IncRateLimited    []struct {
			A domain.RateLimitedAction
		}
		IncTopicCreated []struct {
			T domain.TopicType
		}
	}
	lockAddTopicsClosed   sync.RWMutex
	lockIncPublishFailure sync.RWMutex
	lockIncRateLimited    sync.RWMutex
	lockIncTopicCreated   sync.RWMutex
}

func (mock *boardMetricsMock) AddTopicsClosed(n int64) {
	if mock.AddTopicsClosedFunc == nil {
		panic("boardMetricsMock.AddTopicsClosedFunc: method is nil but boardMetrics.AddTopicsClosed was just called")
	}
	callInfo := struct {
		N int64
	}{
		N: n,
	}
	mock.lockAddTopicsClosed.Lock()
	mock.calls.AddTopicsClosed = append(mock.calls.AddTopicsClosed, callInfo)
	mock.lockAddTopicsClosed.Unlock()
	mock.AddTopicsClosedFunc(n)
}

func (mock *boardMetricsMock) AddTopicsClosedCalls() []struct {
	N int64
} {
	mock.lockAddTopicsClosed.RLock()
	calls := mock.calls.AddTopicsClosed
	mock.lockAddTopicsClosed.RUnlock()
	return calls
}

func (mock *boardMetricsMock) IncPublishFailure() {
	if mock.IncPublishFailureFunc == nil {
		panic("boardMetricsMock.IncPublishFailureFunc: method is nil but boardMetrics.IncPublishFailure was just called")
	}
	mock.lockIncPublishFailure.Lock()
	mock.calls.IncPublishFailure = append(mock.calls.IncPublishFailure, struct{}{})
	mock.lockIncPublishFailure.Unlock()
	mock.IncPublishFailureFunc()
}

func (mock *boardMetricsMock) IncPublishFailureCalls() []struct{} {
	mock.lockIncPublishFailure.RLock()
	calls := mock.calls.IncPublishFailure
	mock.lockIncPublishFailure.RUnlock()
	return calls
}

func (mock *boardMetricsMock) IncRateLimited(a domain.RateLimitedAction) {
	if mock.IncRateLimitedFunc == nil {
		panic("boardMetricsMock.IncRateLimitedFunc: method is nil but boardMetrics.IncRateLimited was just called")
	}
	callInfo := struct {
		A domain.RateLimitedAction
	}{
		A: a,
	}
	mock.lockIncRateLimited.Lock()
	mock.calls.IncRateLimited = append(mock.calls.IncRateLimited, callInfo)
	mock.lockIncRateLimited.Unlock()
	mock.IncRateLimitedFunc(a)
}

func (mock *boardMetricsMock) IncRateLimitedCalls() []struct {
	A domain.RateLimitedAction
} {
	mock.lockIncRateLimited.RLock()
	calls := mock.calls.IncRateLimited
	mock.lockIncRateLimited.RUnlock()
	return calls
}

func (mock *boardMetricsMock) IncTopicCreated(t domain.TopicType) {
	if mock.IncTopicCreatedFunc == nil {
		panic("boardMetricsMock.IncTopicCreatedFunc: method is nil but boardMetrics.IncTopicCreated was just called")
	}
	callInfo := struct {
		T domain.TopicType
	}{
		T: t,
	}
	mock.lockIncTopicCreated.Lock()
	mock.calls.IncTopicCreated = append(mock.calls.IncTopicCreated, callInfo)
	mock.lockIncTopicCreated.Unlock()
	mock.IncTopicCreatedFunc(t)
}

func (mock *boardMetricsMock) IncTopicCreatedCalls() []struct {
	T domain.TopicType
} {
	mock.lockIncTopicCreated.RLock()
	calls := mock.calls.IncTopicCreated
	mock.lockIncTopicCreated.RUnlock()
	return calls
}
