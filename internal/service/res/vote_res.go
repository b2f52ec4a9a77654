package res

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/anonboard-backend/internal/domain"
	"github.com/heartmarshall/anonboard-backend/pkg/ctxutil"
)

// VoteRes records the caller's vote. Repeating a vote is a no-op and the
// opposite direction replaces it.
func (s *Service) VoteRes(ctx context.Context, input VoteResInput) (*domain.Res, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var res *domain.Res
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		res, err = s.reses.FindOneForUpdate(txCtx, input.ResID)
		if err != nil {
			return fmt.Errorf("find res: %w", err)
		}

		if err := res.Vote(userID, input.Type); err != nil {
			return err
		}

		if err := s.reses.Update(txCtx, res); err != nil {
			return fmt.Errorf("update res: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncVote(input.Type)
	s.log.InfoContext(ctx, "res voted",
		slog.String("user_id", userID),
		slog.String("res_id", res.ID),
		slog.String("type", input.Type.String()),
	)

	return res, nil
}
