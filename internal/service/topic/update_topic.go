package topic

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/anonboard-backend/internal/domain"
	"github.com/heartmarshall/anonboard-backend/pkg/ctxutil"
)

// UpdateTopic replaces the editable fields of a normal topic. Any user may
// edit; the editor earns a point and the edit is recorded as a History and
// announced with a history marker res.
func (s *Service) UpdateTopic(ctx context.Context, input UpdateTopicInput) (*domain.Topic, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		topic  *domain.Topic
		marker *domain.Res
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		clk := domain.FrozenClock(s.clock.Now())

		user, err := s.users.FindOneForUpdate(txCtx, userID)
		if err != nil {
			return fmt.Errorf("find user: %w", err)
		}

		topic, err = s.topics.FindOneForUpdate(txCtx, input.TopicID)
		if err != nil {
			return fmt.Errorf("find topic: %w", err)
		}
		if !topic.IsEditable() {
			return fmt.Errorf("edit %s topic %s: %w", topic.Type, topic.ID, domain.ErrInvalidState)
		}
		if !topic.CanCreateRes() {
			return fmt.Errorf("edit closed topic %s: %w", topic.ID, domain.ErrInvalidState)
		}

		if err := topic.ChangeData(clk, input.params(), user); err != nil {
			return err
		}

		history := domain.NewHistory(s.ids, clk, topic, user.ID)
		if err := s.histories.Insert(txCtx, history); err != nil {
			return fmt.Errorf("insert history: %w", err)
		}

		marker = domain.NewHistoryRes(s.ids, clk, topic, user, history.ID)
		if err := s.reses.Insert(txCtx, marker); err != nil {
			return fmt.Errorf("insert history res: %w", err)
		}

		topic.ResUpdate(marker, clk)
		if err := s.topics.Update(txCtx, topic); err != nil {
			return fmt.Errorf("update topic: %w", err)
		}

		if err := s.users.Save(txCtx, user); err != nil {
			return fmt.Errorf("save user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, domain.NewResAdded(marker, topic.ResCount))

	s.log.InfoContext(ctx, "topic updated",
		slog.String("user_id", userID),
		slog.String("topic_id", topic.ID),
	)

	return topic, nil
}
