package user

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/anonboard-backend/internal/domain"
)

type userRepo interface {
	FindOne(ctx context.Context, id string) (*domain.User, error)
	FindByScreenName(ctx context.Context, screenName string) (*domain.User, error)
	Insert(ctx context.Context, u *domain.User) error
	ResetCounter(ctx context.Context, window domain.CounterWindow) (int64, error)
}

type tokenManager interface {
	GenerateAccessToken(userID string, role string) (string, error)
	ValidateAccessToken(token string) (string, string, error)
}

type passwordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// Service implements account registration, login and counter maintenance.
type Service struct {
	log       *slog.Logger
	users     userRepo
	tokens    tokenManager
	passwords passwordHasher
	ids       domain.IDGenerator
	clock     domain.Clock
}

// NewService creates a new user service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	tokens tokenManager,
	passwords passwordHasher,
	ids domain.IDGenerator,
	clock domain.Clock,
) *Service {
	return &Service{
		log:       logger.With("service", "user"),
		users:     users,
		tokens:    tokens,
		passwords: passwords,
		ids:       ids,
		clock:     clock,
	}
}

// AuthResult is returned by Register and Login.
type AuthResult struct {
	AccessToken string
	User        *domain.User
}
