package res

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/anonboard-backend/internal/domain"
	"github.com/heartmarshall/anonboard-backend/pkg/ctxutil"
)

// DeleteRes hides the caller's own normal res.
func (s *Service) DeleteRes(ctx context.Context, resID string) (*domain.Res, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	res, err := s.changeFlag(ctx, resID, func(r *domain.Res) error {
		return r.DeleteBySelf(userID)
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "res deleted",
		slog.String("user_id", userID),
		slog.String("res_id", res.ID),
	)
	return res, nil
}

// FreezeRes hides a normal res by moderation. Moderators only.
func (s *Service) FreezeRes(ctx context.Context, resID string) (*domain.Res, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !domain.UserRole(ctxutil.UserRoleFromCtx(ctx)).IsModerator() {
		return nil, domain.ErrForbidden
	}

	res, err := s.changeFlag(ctx, resID, func(r *domain.Res) error {
		return r.Freeze()
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "res frozen",
		slog.String("moderator_id", userID),
		slog.String("res_id", res.ID),
	)
	return res, nil
}

func (s *Service) changeFlag(ctx context.Context, resID string, apply func(*domain.Res) error) (*domain.Res, error) {
	if resID == "" {
		return nil, domain.NewValidationError("res_id", "required")
	}

	var res *domain.Res
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		res, err = s.reses.FindOneForUpdate(txCtx, resID)
		if err != nil {
			return fmt.Errorf("find res: %w", err)
		}

		if err := apply(res); err != nil {
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
	return res, nil
}
