package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/anonboard-backend/internal/auth"
	"github.com/heartmarshall/anonboard-backend/internal/domain"
)

// Login authenticates with screen name and password.
// Returns ErrUnauthorized if the screen name is unknown or the password is wrong.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	input.ScreenName = strings.TrimSpace(input.ScreenName)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	u, err := s.users.FindByScreenName(ctx, input.ScreenName)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("user.Login find user: %w", err)
	}

	if err := s.passwords.Compare(u.PasswordHash, input.Password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("user.Login: %w", err)
	}

	result, err := s.issueToken(u)
	if err != nil {
		return nil, fmt.Errorf("user.Login: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in", slog.String("user_id", u.ID))

	return result, nil
}

// ValidateToken checks an access token and returns the user id and role it carries.
func (s *Service) ValidateToken(ctx context.Context, token string) (string, domain.UserRole, error) {
	userID, role, err := s.tokens.ValidateAccessToken(token)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}

	r := domain.UserRole(role)
	if !r.IsValid() {
		return "", "", fmt.Errorf("%w: unknown role %q", domain.ErrUnauthorized, role)
	}
	return userID, r, nil
}
