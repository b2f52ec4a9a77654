package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/anonboard-backend/internal/domain"
)

// Register creates an account and signs the caller in.
// Returns ErrAlreadyExists if the screen name is taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	input.ScreenName = strings.TrimSpace(input.ScreenName)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := s.passwords.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("user.Register: %w", err)
	}

	u := domain.NewUser(s.ids, s.clock, input.ScreenName, hash)
	if err := s.users.Insert(ctx, u); err != nil {
		return nil, fmt.Errorf("user.Register insert: %w", err)
	}

	result, err := s.issueToken(u)
	if err != nil {
		return nil, fmt.Errorf("user.Register: %w", err)
	}

	s.log.InfoContext(ctx, "user registered",
		slog.String("user_id", u.ID),
		slog.String("screen_name", u.ScreenName),
	)

	return result, nil
}

func (s *Service) issueToken(u *domain.User) (*AuthResult, error) {
	token, err := s.tokens.GenerateAccessToken(u.ID, u.Role.String())
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &AuthResult{AccessToken: token, User: u}, nil
}
