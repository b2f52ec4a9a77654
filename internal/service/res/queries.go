package res

import (
	"context"
	"fmt"

	"github.com/heartmarshall/anonboard-backend/internal/domain"
)

// GetRes returns a single res by ID.
func (s *Service) GetRes(ctx context.Context, resID string) (*domain.Res, error) {
	if resID == "" {
		return nil, domain.NewValidationError("res_id", "required")
	}

	res, err := s.reses.FindOne(ctx, resID)
	if err != nil {
		return nil, fmt.Errorf("get res: %w", err)
	}
	return res, nil
}

// ListByTopic returns the reses of a topic in posting order.
func (s *Service) ListByTopic(ctx context.Context, input ListResInput) ([]domain.Res, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.topics.FindOne(ctx, input.TopicID); err != nil {
		return nil, fmt.Errorf("find topic: %w", err)
	}

	reses, err := s.reses.FindByTopicID(ctx, input.TopicID, s.pageSize(input.Limit), input.Offset)
	if err != nil {
		return nil, fmt.Errorf("find reses: %w", err)
	}
	return reses, nil
}

// ListReplies returns the reses answering resID.
func (s *Service) ListReplies(ctx context.Context, resID string) ([]domain.Res, error) {
	if resID == "" {
		return nil, domain.NewValidationError("res_id", "required")
	}

	if _, err := s.reses.FindOne(ctx, resID); err != nil {
		return nil, fmt.Errorf("find res: %w", err)
	}

	replies, err := s.reses.FindByReplyID(ctx, resID)
	if err != nil {
		return nil, fmt.Errorf("find replies: %w", err)
	}
	return replies, nil
}

// CountByTopic returns the number of stored reses in a topic.
func (s *Service) CountByTopic(ctx context.Context, topicID string) (int, error) {
	if topicID == "" {
		return 0, domain.NewValidationError("topic_id", "required")
	}

	n, err := s.reses.CountByTopicID(ctx, topicID)
	if err != nil {
		return 0, fmt.Errorf("count reses: %w", err)
	}
	return n, nil
}
