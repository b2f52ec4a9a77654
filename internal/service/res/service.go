package res

import (
	"context"
	"errors"
	"log/slog"

	"github.com/heartmarshall/anonboard-backend/internal/domain"
)

type userRepo interface {
	FindOneForUpdate(ctx context.Context, id string) (*domain.User, error)
	Save(ctx context.Context, u *domain.User) error
}

type topicRepo interface {
	FindOne(ctx context.Context, id string) (*domain.Topic, error)
	FindOneForUpdate(ctx context.Context, id string) (*domain.Topic, error)
	Update(ctx context.Context, t *domain.Topic) error
}

type resRepo interface {
	FindOne(ctx context.Context, id string) (*domain.Res, error)
	FindOneForUpdate(ctx context.Context, id string) (*domain.Res, error)
	Insert(ctx context.Context, res *domain.Res) error
	Update(ctx context.Context, res *domain.Res) error
	FindByTopicID(ctx context.Context, topicID string, limit, offset int) ([]domain.Res, error)
	FindByReplyID(ctx context.Context, resID string) ([]domain.Res, error)
	CountByTopicID(ctx context.Context, topicID string) (int, error)
}

type resPublisher interface {
	PublishResAdded(ctx context.Context, ev domain.ResAdded) error
}

type boardMetrics interface {
	IncResCreated()
	IncVote(v domain.VoteType)
	IncRateLimited(a domain.RateLimitedAction)
	IncPublishFailure()
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Config holds the posting rules the res service enforces.
type Config struct {
	Policy          domain.RateLimitPolicy
	DefaultPageSize int
	MaxPageSize     int
}

// Service handles posting, voting and moderation of reses.
type Service struct {
	log       *slog.Logger
	tx        txManager
	users     userRepo
	topics    topicRepo
	reses     resRepo
	publisher resPublisher
	metrics   boardMetrics
	ids       domain.IDGenerator
	clock     domain.Clock
	cfg       Config
}

// NewService creates a new Res service.
func NewService(
	log *slog.Logger,
	tx txManager,
	users userRepo,
	topics topicRepo,
	reses resRepo,
	publisher resPublisher,
	metrics boardMetrics,
	ids domain.IDGenerator,
	clock domain.Clock,
	cfg Config,
) *Service {
	return &Service{
		log:       log.With("service", "res"),
		tx:        tx,
		users:     users,
		topics:    topics,
		reses:     reses,
		publisher: publisher,
		metrics:   metrics,
		ids:       ids,
		clock:     clock,
		cfg:       cfg,
	}
}

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
