package res

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/anonboard-backend/internal/domain"
	"github.com/heartmarshall/anonboard-backend/pkg/ctxutil"
)

// CreateRes posts a normal res into an open topic and fans it out after commit.
func (s *Service) CreateRes(ctx context.Context, input CreateResInput) (*domain.Res, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		res   *domain.Res
		count int
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := s.clock.Now()
		clk := domain.FrozenClock(now)

		user, err := s.users.FindOneForUpdate(txCtx, userID)
		if err != nil {
			return fmt.Errorf("find user: %w", err)
		}

		topic, err := s.topics.FindOneForUpdate(txCtx, input.TopicID)
		if err != nil {
			return fmt.Errorf("find topic: %w", err)
		}
		if !topic.CanCreateRes() {
			return fmt.Errorf("res in closed topic %s: %w", topic.ID, domain.ErrInvalidState)
		}

		if err := s.cfg.Policy.CheckRes(user, now); err != nil {
			return s.rateLimited(err)
		}

		var reply *domain.Reply
		if input.ReplyTo != "" {
			target, err := s.reses.FindOne(txCtx, input.ReplyTo)
			if err != nil {
				return fmt.Errorf("find reply target: %w", err)
			}
			if reply, err = target.ReplyTarget(topic.ID); err != nil {
				return err
			}
		}

		res, err = domain.NewNormalRes(s.ids, clk, topic, user, domain.NormalResParams{
			Name:      emptyToNil(input.Name),
			Text:      input.Text,
			Reply:     reply,
			ProfileID: input.ProfileID,
			Age:       input.Age,
		})
		if err != nil {
			return err
		}
		if err := s.reses.Insert(txCtx, res); err != nil {
			return fmt.Errorf("insert res: %w", err)
		}

		topic.ResUpdate(res, clk)
		if err := s.topics.Update(txCtx, topic); err != nil {
			return fmt.Errorf("update topic: %w", err)
		}
		count = topic.ResCount

		user.RecordResCreated(now)
		if err := s.users.Save(txCtx, user); err != nil {
			return fmt.Errorf("save user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncResCreated()
	s.publish(ctx, domain.NewResAdded(res, count))

	s.log.InfoContext(ctx, "res created",
		slog.String("user_id", userID),
		slog.String("res_id", res.ID),
		slog.String("topic_id", res.TopicID),
	)

	return res, nil
}
