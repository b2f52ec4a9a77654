package topic

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/heartmarshall/anonboard-backend/internal/adapter/clock"
	"github.com/heartmarshall/anonboard-backend/internal/domain"
	"github.com/heartmarshall/anonboard-backend/pkg/ctxutil"
)

var t0 = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

type seqIDs struct {
	mu sync.Mutex
	n  int
}

func (s *seqIDs) Generate() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return fmt.Sprintf("id-%d", s.n)
}

// board is an in-memory store behind the service mocks. Reads hand out
// copies so nothing leaks into the store until Save/Update.
type board struct {
	users     map[string]*domain.User
	topics    map[string]*domain.Topic
	reses     []*domain.Res
	histories []*domain.History
	subs      map[[2]string]domain.Subscription
	events    []domain.ResAdded

	clock     *clock.Fixed
	userRepo  *userRepoMock
	topicRepo *topicRepoMock
	resRepo   *resRepoMock
	histRepo  *historyRepoMock
	publisher *resPublisherMock
	metrics   *boardMetricsMock
	tx        *txManagerMock
	svc       *Service
}

func copyUser(u *domain.User) *domain.User {
	cp := *u
	return &cp
}

func copyTopic(t *domain.Topic) *domain.Topic {
	cp := *t
	cp.Tags = append([]string(nil), t.Tags...)
	return &cp
}

func newBoard(t *testing.T) *board {
	t.Helper()

	b := &board{
		users:  make(map[string]*domain.User),
		topics: make(map[string]*domain.Topic),
		subs:   make(map[[2]string]domain.Subscription),
		clock:  clock.NewFixed(t0),
	}

	b.userRepo = &userRepoMock{
		FindOneForUpdateFunc: func(ctx context.Context, id string) (*domain.User, error) {
			u, ok := b.users[id]
			if !ok {
				return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
			}
			return copyUser(u), nil
		},
		SaveFunc: func(ctx context.Context, u *domain.User) error {
			b.users[u.ID] = copyUser(u)
			return nil
		},
	}

	find := func(ctx context.Context, id string) (*domain.Topic, error) {
		tp, ok := b.topics[id]
		if !ok {
			return nil, fmt.Errorf("topic %s: %w", id, domain.ErrNotFound)
		}
		return copyTopic(tp), nil
	}
	b.topicRepo = &topicRepoMock{
		FindOneFunc:          find,
		FindOneForUpdateFunc: find,
		InsertFunc: func(ctx context.Context, tp *domain.Topic) error {
			b.topics[tp.ID] = copyTopic(tp)
			return nil
		},
		UpdateFunc: func(ctx context.Context, tp *domain.Topic) error {
			b.topics[tp.ID] = copyTopic(tp)
			return nil
		},
		FindFunc: func(ctx context.Context, q domain.TopicQuery, limit, offset int) ([]domain.Topic, error) {
			return nil, nil
		},
		CloseIdleFunc: func(ctx context.Context, typ domain.TopicType, before, now time.Time) (int64, error) {
			return 0, nil
		},
		EnableSubscriptionFunc: func(ctx context.Context, s domain.Subscription) error {
			b.subs[[2]string{s.TopicID, s.UserID}] = s
			return nil
		},
		DisableSubscriptionFunc: func(ctx context.Context, topicID, userID string) error {
			delete(b.subs, [2]string{topicID, userID})
			return nil
		},
		GetSubscriptionFunc: func(ctx context.Context, topicID, userID string) (*domain.Subscription, error) {
			s, ok := b.subs[[2]string{topicID, userID}]
			if !ok {
				return nil, fmt.Errorf("subscription: %w", domain.ErrNotFound)
			}
			return &s, nil
		},
		SubscriptionUserIDsFunc: func(ctx context.Context, topicID string) ([]string, error) {
			var ids []string
			for k := range b.subs {
				if k[0] == topicID {
					ids = append(ids, k[1])
				}
			}
			return ids, nil
		},
	}

	b.resRepo = &resRepoMock{
		InsertFunc: func(ctx context.Context, res *domain.Res) error {
			b.reses = append(b.reses, res)
			return nil
		},
	}

	b.histRepo = &historyRepoMock{
		InsertFunc: func(ctx context.Context, h *domain.History) error {
			b.histories = append(b.histories, h)
			return nil
		},
		FindByTopicIDFunc: func(ctx context.Context, topicID string) ([]domain.History, error) {
			var out []domain.History
			for _, h := range b.histories {
				if h.TopicID == topicID {
					out = append(out, *h)
				}
			}
			return out, nil
		},
	}

	b.publisher = &resPublisherMock{
		PublishResAddedFunc: func(ctx context.Context, ev domain.ResAdded) error {
			b.events = append(b.events, ev)
			return nil
		},
	}

	b.metrics = &boardMetricsMock{
		AddTopicsClosedFunc:   func(n int64) {},
		IncPublishFailureFunc: func() {},
		IncRateLimitedFunc:    func(a domain.RateLimitedAction) {},
		IncTopicCreatedFunc:   func(t domain.TopicType) {},
	}

	b.tx = &txManagerMock{
		RunInTxFunc: func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	}

	b.svc = NewService(
		slog.Default(), b.tx, b.userRepo, b.topicRepo, b.resRepo, b.histRepo,
		b.publisher, b.metrics, &seqIDs{}, b.clock,
		Config{Policy: domain.DefaultRateLimitPolicy(), DefaultPageSize: 50, MaxPageSize: 100},
	)
	return b
}

// addUser stores a user whose gates are all open at t0.
func (b *board) addUser(id string) *domain.User {
	past := t0.Add(-2 * time.Hour)
	u := &domain.User{
		ID:                    id,
		ScreenName:            "user_" + id,
		Role:                  domain.UserRoleUser,
		Lv:                    1,
		ResLastCreatedAt:      past,
		TopicLastCreatedAt:    past,
		OneTopicLastCreatedAt: past,
		CreatedAt:             past,
		UpdatedAt:             past,
	}
	b.users[id] = u
	return u
}

func (b *board) addTopic(id string, typ domain.TopicType, owner string) *domain.Topic {
	past := t0.Add(-time.Hour)
	tp := &domain.Topic{
		TopicBase: domain.TopicBase{
			ID:           id,
			Title:        "title " + id,
			Description:  "body " + id,
			Type:         typ,
			UserID:       owner,
			Tags:         []string{"go"},
			ResCount:     1,
			CreatedAt:    past,
			UpdatedAt:    past,
			LastResAt:    past,
			AgeUpdatedAt: past,
		},
	}
	b.topics[id] = tp
	return tp
}

func asUser(id string) context.Context {
	return ctxutil.WithUserID(context.Background(), id)
}

func validInput() CreateTopicInput {
	return CreateTopicInput{Title: "  Gophers  ", Description: "all about gophers", Tags: []string{"go", " pets "}}
}

// tickingClock moves forward a microsecond on every read.
type tickingClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *tickingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now
	c.now = c.now.Add(time.Microsecond)
	return now
}

// withClock rebuilds the service on clk, keeping the in-memory store.
func (b *board) withClock(clk domain.Clock) {
	b.svc = NewService(
		slog.Default(), b.tx, b.userRepo, b.topicRepo, b.resRepo, b.histRepo,
		b.publisher, b.metrics, &seqIDs{}, clk,
		Config{Policy: domain.DefaultRateLimitPolicy(), DefaultPageSize: 50, MaxPageSize: 100},
	)
}
