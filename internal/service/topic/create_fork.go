package topic

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/anonboard-backend/internal/domain"
	"github.com/heartmarshall/anonboard-backend/pkg/ctxutil"
)

// CreateTopicFork spins a new topic off an open normal topic. The fork gets
// its own opening marker and the parent receives a fork marker res.
func (s *Service) CreateTopicFork(ctx context.Context, input CreateForkInput) (*domain.Topic, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		fork    *domain.Topic
		forkRes *domain.Res
		count   int
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := s.clock.Now()
		clk := domain.FrozenClock(now)

		user, err := s.users.FindOneForUpdate(txCtx, userID)
		if err != nil {
			return fmt.Errorf("find user: %w", err)
		}

		parent, err := s.topics.FindOneForUpdate(txCtx, input.ParentID)
		if err != nil {
			return fmt.Errorf("find parent topic: %w", err)
		}
		if !parent.CanCreateRes() {
			return fmt.Errorf("fork of closed topic %s: %w", parent.ID, domain.ErrInvalidState)
		}

		if err := s.cfg.Policy.CheckOneTopic(user, now); err != nil {
			return s.rateLimited(err)
		}

		fork, err = domain.NewForkTopic(s.ids, clk, user.ID, parent, input.params())
		if err != nil {
			return err
		}
		if err := s.topics.Insert(txCtx, fork); err != nil {
			return fmt.Errorf("insert fork: %w", err)
		}

		opening := domain.NewTopicRes(s.ids, clk, fork, user)
		if err := s.reses.Insert(txCtx, opening); err != nil {
			return fmt.Errorf("insert opening res: %w", err)
		}

		forkRes = domain.NewForkRes(s.ids, clk, parent, user, fork.ID)
		if err := s.reses.Insert(txCtx, forkRes); err != nil {
			return fmt.Errorf("insert fork res: %w", err)
		}

		parent.ResUpdate(forkRes, clk)
		if err := s.topics.Update(txCtx, parent); err != nil {
			return fmt.Errorf("update parent topic: %w", err)
		}
		count = parent.ResCount

		user.RecordOneTopicCreated(now)
		if err := s.users.Save(txCtx, user); err != nil {
			return fmt.Errorf("save user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncTopicCreated(fork.Type)
	s.publish(ctx, domain.NewResAdded(forkRes, count))

	s.log.InfoContext(ctx, "topic forked",
		slog.String("user_id", userID),
		slog.String("topic_id", fork.ID),
		slog.String("parent_id", fork.ParentID),
	)

	return fork, nil
}
