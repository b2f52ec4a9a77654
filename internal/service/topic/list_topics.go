package topic

import (
	"context"
	"fmt"

	"github.com/heartmarshall/anonboard-backend/internal/domain"
)

// ListTopics returns topics matching the filter, most recently bumped first.
func (s *Service) ListTopics(ctx context.Context, input ListTopicsInput) ([]domain.Topic, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	topics, err := s.topics.Find(ctx, input.query(), s.pageSize(input.Limit), input.Offset)
	if err != nil {
		return nil, fmt.Errorf("find topics: %w", err)
	}
	return topics, nil
}

// ListHistories returns the edit snapshots of a topic, oldest first.
func (s *Service) ListHistories(ctx context.Context, topicID string) ([]domain.History, error) {
	if topicID == "" {
		return nil, domain.NewValidationError("topic_id", "required")
	}

	if _, err := s.topics.FindOne(ctx, topicID); err != nil {
		return nil, fmt.Errorf("find topic: %w", err)
	}

	histories, err := s.histories.FindByTopicID(ctx, topicID)
	if err != nil {
		return nil, fmt.Errorf("find histories: %w", err)
	}
	return histories, nil
}
