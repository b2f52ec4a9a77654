package topic

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/anonboard-backend/internal/domain"
	"github.com/heartmarshall/anonboard-backend/pkg/ctxutil"
)

// CreateTopicNormal opens a persistent, editable topic. The first History
// snapshot and its marker res are created with it.
func (s *Service) CreateTopicNormal(ctx context.Context, input CreateTopicInput) (*domain.Topic, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var topic *domain.Topic
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := s.clock.Now()
		clk := domain.FrozenClock(now)

		user, err := s.users.FindOneForUpdate(txCtx, userID)
		if err != nil {
			return fmt.Errorf("find user: %w", err)
		}

		if err := s.cfg.Policy.CheckTopic(user, now); err != nil {
			return s.rateLimited(err)
		}

		topic, err = domain.NewNormalTopic(s.ids, clk, user.ID, input.params())
		if err != nil {
			return err
		}
		if err := s.topics.Insert(txCtx, topic); err != nil {
			return fmt.Errorf("insert topic: %w", err)
		}

		history := domain.NewHistory(s.ids, clk, topic, user.ID)
		if err := s.histories.Insert(txCtx, history); err != nil {
			return fmt.Errorf("insert history: %w", err)
		}

		opening := domain.NewHistoryRes(s.ids, clk, topic, user, history.ID)
		if err := s.reses.Insert(txCtx, opening); err != nil {
			return fmt.Errorf("insert opening res: %w", err)
		}

		user.RecordTopicCreated(now)
		if err := s.users.Save(txCtx, user); err != nil {
			return fmt.Errorf("save user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncTopicCreated(topic.Type)
	s.log.InfoContext(ctx, "topic created",
		slog.String("user_id", userID),
		slog.String("topic_id", topic.ID),
		slog.String("type", topic.Type.String()),
	)

	return topic, nil
}

// CreateTopicOne opens a single-burst topic that is closed once it goes idle.
func (s *Service) CreateTopicOne(ctx context.Context, input CreateTopicInput) (*domain.Topic, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var topic *domain.Topic
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := s.clock.Now()
		clk := domain.FrozenClock(now)

		user, err := s.users.FindOneForUpdate(txCtx, userID)
		if err != nil {
			return fmt.Errorf("find user: %w", err)
		}

		if err := s.cfg.Policy.CheckOneTopic(user, now); err != nil {
			return s.rateLimited(err)
		}

		topic, err = domain.NewOneTopic(s.ids, clk, user.ID, input.params())
		if err != nil {
			return err
		}
		if err := s.topics.Insert(txCtx, topic); err != nil {
			return fmt.Errorf("insert topic: %w", err)
		}

		opening := domain.NewTopicRes(s.ids, clk, topic, user)
		if err := s.reses.Insert(txCtx, opening); err != nil {
			return fmt.Errorf("insert opening res: %w", err)
		}

		user.RecordOneTopicCreated(now)
		if err := s.users.Save(txCtx, user); err != nil {
			return fmt.Errorf("save user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncTopicCreated(topic.Type)
	s.log.InfoContext(ctx, "topic created",
		slog.String("user_id", userID),
		slog.String("topic_id", topic.ID),
		slog.String("type", topic.Type.String()),
	)

	return topic, nil
}
