package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/anonboard-backend/internal/domain"
)

// ResetCounters zeroes one rolling res counter for every user.
// Intended for a scheduler that runs once per window length.
func (s *Service) ResetCounters(ctx context.Context, window domain.CounterWindow) (int64, error) {
	if !window.IsValid() {
		return 0, domain.NewValidationError("window", fmt.Sprintf("unknown counter window %q", window))
	}

	n, err := s.users.ResetCounter(ctx, window)
	if err != nil {
		return 0, fmt.Errorf("reset counter %s: %w", window, err)
	}

	s.log.InfoContext(ctx, "res counters reset",
		slog.String("window", window.String()),
		slog.Int64("users", n),
	)
	return n, nil
}
