package topic

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/heartmarshall/anonboard-backend/internal/domain"
)

type userRepo interface {
	FindOneForUpdate(ctx context.Context, id string) (*domain.User, error)
	Save(ctx context.Context, u *domain.User) error
}

type topicRepo interface {
	FindOne(ctx context.Context, id string) (*domain.Topic, error)
	FindOneForUpdate(ctx context.Context, id string) (*domain.Topic, error)
	Find(ctx context.Context, q domain.TopicQuery, limit, offset int) ([]domain.Topic, error)
	Insert(ctx context.Context, t *domain.Topic) error
	Update(ctx context.Context, t *domain.Topic) error
	CloseIdle(ctx context.Context, typ domain.TopicType, before, now time.Time) (int64, error)

	EnableSubscription(ctx context.Context, s domain.Subscription) error
	DisableSubscription(ctx context.Context, topicID, userID string) error
	GetSubscription(ctx context.Context, topicID, userID string) (*domain.Subscription, error)
	SubscriptionUserIDs(ctx context.Context, topicID string) ([]string, error)
}

type resRepo interface {
	Insert(ctx context.Context, res *domain.Res) error
}

type historyRepo interface {
	Insert(ctx context.Context, h *domain.History) error
	FindByTopicID(ctx context.Context, topicID string) ([]domain.History, error)
}

type resPublisher interface {
	PublishResAdded(ctx context.Context, ev domain.ResAdded) error
}

type boardMetrics interface {
	IncTopicCreated(t domain.TopicType)
	IncRateLimited(a domain.RateLimitedAction)
	IncPublishFailure()
	AddTopicsClosed(n int64)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Config holds the board rules the topic service enforces.
type Config struct {
	Policy          domain.RateLimitPolicy
	DefaultPageSize int
	MaxPageSize     int
}

// Service provides topic creation, editing, listing and subscriptions.
type Service struct {
	log       *slog.Logger
	tx        txManager
	users     userRepo
	topics    topicRepo
	reses     resRepo
	histories historyRepo
	publisher resPublisher
	metrics   boardMetrics
	ids       domain.IDGenerator
	clock     domain.Clock
	cfg       Config

	reads singleflight.Group
}

// NewService creates a new Topic service.
func NewService(
	log *slog.Logger,
	tx txManager,
	users userRepo,
	topics topicRepo,
	reses resRepo,
	histories historyRepo,
	publisher resPublisher,
	metrics boardMetrics,
	ids domain.IDGenerator,
	clock domain.Clock,
	cfg Config,
) *Service {
	return &Service{
		log:       log.With("service", "topic"),
		tx:        tx,
		users:     users,
		topics:    topics,
		reses:     reses,
		histories: histories,
		publisher: publisher,
		metrics:   metrics,
		ids:       ids,
		clock:     clock,
		cfg:       cfg,
	}
}

// publish fans out a committed res. Delivery is best effort: the write has
// already succeeded, so a broker failure is logged and counted only.
func (s *Service) publish(ctx context.Context, ev domain.ResAdded) {
	if err := s.publisher.PublishResAdded(ctx, ev); err != nil {
		s.metrics.IncPublishFailure()
		s.log.ErrorContext(ctx, "publish res added",
			slog.String("res_id", ev.Res.ID),
			slog.String("topic_id", ev.Res.TopicID),
			slog.String("error", err.Error()),
		)
	}
}

func (s *Service) rateLimited(err error) error {
	var rl *domain.RateLimitError
	if errors.As(err, &rl) {
		s.metrics.IncRateLimited(rl.Action)
	}
	return err
}

func (s *Service) pageSize(limit int) int {
	if limit <= 0 {
		return s.cfg.DefaultPageSize
	}
	if limit > s.cfg.MaxPageSize {
		return s.cfg.MaxPageSize
	}
	return limit
}
