package res

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

// board is an in-memory store behind the service mocks.
type board struct {
	users  map[string]*domain.User
	topics map[string]*domain.Topic
	reses  map[string]*domain.Res
	order  []string
	events []domain.ResAdded

	clock     *clock.Fixed
	userRepo  *userRepoMock
	topicRepo *topicRepoMock
	resRepo   *resRepoMock
	publisher *resPublisherMock
	metrics   *boardMetricsMock
	tx        *txManagerMock
	svc       *Service
}

func copyRes(r *domain.Res) *domain.Res {
	cp := *r
	cp.Votes = append([]domain.Vote(nil), r.Votes...)
	if r.Normal != nil {
		body := *r.Normal
		cp.Normal = &body
	}
	return &cp
}

func newBoard(t *testing.T) *board {
	t.Helper()

	b := &board{
		users:  make(map[string]*domain.User),
		topics: make(map[string]*domain.Topic),
		reses:  make(map[string]*domain.Res),
		clock:  clock.NewFixed(t0),
	}

	b.userRepo = &userRepoMock{
		FindOneForUpdateFunc: func(ctx context.Context, id string) (*domain.User, error) {
			u, ok := b.users[id]
			if !ok {
				return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
			}
			cp := *u
			return &cp, nil
		},
		SaveFunc: func(ctx context.Context, u *domain.User) error {
			cp := *u
			b.users[u.ID] = &cp
			return nil
		},
	}

	findTopic := func(ctx context.Context, id string) (*domain.Topic, error) {
		tp, ok := b.topics[id]
		if !ok {
			return nil, fmt.Errorf("topic %s: %w", id, domain.ErrNotFound)
		}
		cp := *tp
		return &cp, nil
	}
	b.topicRepo = &topicRepoMock{
		FindOneFunc:          findTopic,
		FindOneForUpdateFunc: findTopic,
		UpdateFunc: func(ctx context.Context, tp *domain.Topic) error {
			cp := *tp
			b.topics[tp.ID] = &cp
			return nil
		},
	}

	findRes := func(ctx context.Context, id string) (*domain.Res, error) {
		r, ok := b.reses[id]
		if !ok {
			return nil, fmt.Errorf("res %s: %w", id, domain.ErrNotFound)
		}
		return copyRes(r), nil
	}
	b.resRepo = &resRepoMock{
		FindOneFunc:          findRes,
		FindOneForUpdateFunc: findRes,
		InsertFunc: func(ctx context.Context, r *domain.Res) error {
			b.reses[r.ID] = copyRes(r)
			b.order = append(b.order, r.ID)
			return nil
		},
		UpdateFunc: func(ctx context.Context, r *domain.Res) error {
			b.reses[r.ID] = copyRes(r)
			return nil
		},
		FindByTopicIDFunc: func(ctx context.Context, topicID string, limit, offset int) ([]domain.Res, error) {
			var out []domain.Res
			for _, id := range b.order {
				if r := b.reses[id]; r.TopicID == topicID {
					out = append(out, *copyRes(r))
				}
			}
			return out, nil
		},
		FindByReplyIDFunc: func(ctx context.Context, resID string) ([]domain.Res, error) {
			var out []domain.Res
			for _, id := range b.order {
				r := b.reses[id]
				if r.Normal != nil && r.Normal.Reply != nil && r.Normal.Reply.ResID == resID {
					out = append(out, *copyRes(r))
				}
			}
			return out, nil
		},
		CountByTopicIDFunc: func(ctx context.Context, topicID string) (int, error) {
			n := 0
			for _, r := range b.reses {
				if r.TopicID == topicID {
					n++
				}
			}
			return n, nil
		},
	}

	b.publisher = &resPublisherMock{
		PublishResAddedFunc: func(ctx context.Context, ev domain.ResAdded) error {
			b.events = append(b.events, ev)
			return nil
		},
	}

	b.metrics = &boardMetricsMock{
		IncPublishFailureFunc: func() {},
		IncRateLimitedFunc:    func(a domain.RateLimitedAction) {},
		IncResCreatedFunc:     func() {},
		IncVoteFunc:           func(v domain.VoteType) {},
	}

	b.tx = &txManagerMock{
		RunInTxFunc: func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	}

	b.svc = NewService(
		slog.Default(), b.tx, b.userRepo, b.topicRepo, b.resRepo,
		b.publisher, b.metrics, &seqIDs{}, b.clock,
		Config{Policy: domain.DefaultRateLimitPolicy(), DefaultPageSize: 50, MaxPageSize: 100},
	)
	return b
}

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
	}
	b.users[id] = u
	return u
}

// addTopic stores a normal topic together with its opening marker res.
func (b *board) addTopic(id, owner string) (*domain.Topic, *domain.Res) {
	past := t0.Add(-time.Hour)
	tp := &domain.Topic{
		TopicBase: domain.TopicBase{
			ID:           id,
			Title:        "title " + id,
			Description:  "body " + id,
			Type:         domain.TopicTypeNormal,
			UserID:       owner,
			ResCount:     1,
			CreatedAt:    past,
			UpdatedAt:    past,
			LastResAt:    past,
			AgeUpdatedAt: past,
		},
	}
	b.topics[id] = tp

	opening := &domain.Res{
		ResBase: domain.ResBase{
			ID: "open-" + id, TopicID: id, UserID: owner, Type: domain.ResTypeHistory,
			Date: past, Votes: []domain.Vote{}, Lv: 5, Hash: tp.Hash(past, owner),
		},
		HistoryID: "h-" + id,
	}
	b.reses[opening.ID] = opening
	b.order = append(b.order, opening.ID)
	return tp, opening
}

// addRes stores an active normal res by owner in topicID.
func (b *board) addRes(id, topicID, owner string) *domain.Res {
	r := &domain.Res{
		ResBase: domain.ResBase{
			ID: id, TopicID: topicID, UserID: owner, Type: domain.ResTypeNormal,
			Date: t0.Add(-time.Minute), Votes: []domain.Vote{}, Lv: 5,
		},
		Normal: &domain.NormalBody{Text: "text " + id, DeleteFlag: domain.DeleteFlagActive},
	}
	b.reses[id] = r
	b.order = append(b.order, id)
	return r
}

func asUser(id string) context.Context {
	return ctxutil.WithUserID(context.Background(), id)
}

func asModerator(id string) context.Context {
	return ctxutil.WithUserRole(asUser(id), string(domain.UserRoleModerator))
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
		slog.Default(), b.tx, b.userRepo, b.topicRepo, b.resRepo,
		b.publisher, b.metrics, &seqIDs{}, clk,
		Config{Policy: domain.DefaultRateLimitPolicy(), DefaultPageSize: 50, MaxPageSize: 100},
	)
}
