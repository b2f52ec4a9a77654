package topic

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/anonboard-backend/internal/domain"
)

// CloseIdleOneTopics closes every open one topic with no activity for longer
// than ttl. Intended for a scheduler.
func (s *Service) CloseIdleOneTopics(ctx context.Context, ttl time.Duration) (int64, error) {
	if ttl <= 0 {
		return 0, domain.NewValidationError("ttl", "must be positive")
	}

	now := s.clock.Now()
	n, err := s.topics.CloseIdle(ctx, domain.TopicTypeOne, now.Add(-ttl), now)
	if err != nil {
		return 0, fmt.Errorf("close idle topics: %w", err)
	}

	s.metrics.AddTopicsClosed(n)
	s.log.InfoContext(ctx, "idle one topics closed",
		slog.Int64("closed", n),
		slog.Duration("ttl", ttl),
	)
	return n, nil
}
