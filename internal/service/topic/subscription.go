package topic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/anonboard-backend/internal/domain"
	"github.com/heartmarshall/anonboard-backend/pkg/ctxutil"
)

// Subscribe adds the caller to the topic's notification set. Subscribing
// twice is a no-op.
func (s *Service) Subscribe(ctx context.Context, topicID string) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if topicID == "" {
		return domain.NewValidationError("topic_id", "required")
	}

	if _, err := s.topics.FindOne(ctx, topicID); err != nil {
		return fmt.Errorf("find topic: %w", err)
	}

	sub := domain.Subscription{TopicID: topicID, UserID: userID, CreatedAt: s.clock.Now()}
	if err := s.topics.EnableSubscription(ctx, sub); err != nil {
		return fmt.Errorf("enable subscription: %w", err)
	}

	s.log.InfoContext(ctx, "topic subscribed",
		slog.String("user_id", userID),
		slog.String("topic_id", topicID),
	)
	return nil
}

// Unsubscribe removes the caller from the notification set.
func (s *Service) Unsubscribe(ctx context.Context, topicID string) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if topicID == "" {
		return domain.NewValidationError("topic_id", "required")
	}

	if err := s.topics.DisableSubscription(ctx, topicID, userID); err != nil {
		return fmt.Errorf("disable subscription: %w", err)
	}
	return nil
}

// IsSubscribed reports whether the caller follows the topic.
func (s *Service) IsSubscribed(ctx context.Context, topicID string) (bool, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return false, domain.ErrUnauthorized
	}

	_, err := s.topics.GetSubscription(ctx, topicID, userID)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, domain.ErrNotFound):
		return false, nil
	default:
		return false, fmt.Errorf("get subscription: %w", err)
	}
}

// Subscribers lists the user ids following the topic.
func (s *Service) Subscribers(ctx context.Context, topicID string) ([]string, error) {
	if topicID == "" {
		return nil, domain.NewValidationError("topic_id", "required")
	}

	ids, err := s.topics.SubscriptionUserIDs(ctx, topicID)
	if err != nil {
		return nil, fmt.Errorf("list subscribers: %w", err)
	}
	return ids, nil
}
