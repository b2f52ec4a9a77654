package topic

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/singleflight"

	"github.com/heartmarshall/anonboard-backend/internal/domain"
)

// GetTopic returns a single topic by ID. Concurrent lookups of the same
// topic share one repository call; every caller gets its own copy.
// The shared call is detached from any single caller's cancellation, and
// each caller stops waiting when its own ctx is done.
func (s *Service) GetTopic(ctx context.Context, topicID string) (*domain.Topic, error) {
	topicID = strings.TrimSpace(topicID)
	if topicID == "" {
		return nil, domain.NewValidationError("topic_id", "required")
	}

	shared := context.WithoutCancel(ctx)
	ch := s.reads.DoChan(topicID, func() (any, error) {
		return s.topics.FindOne(shared, topicID)
	})

	var r singleflight.Result
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("get topic: %w", ctx.Err())
	case r = <-ch:
	}
	if r.Err != nil {
		return nil, fmt.Errorf("get topic: %w", r.Err)
	}

	found := r.Val.(*domain.Topic)
	topic := *found
	topic.Tags = append([]string(nil), found.Tags...)
	return &topic, nil
}
