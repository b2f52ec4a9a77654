package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/heartmarshall/anonboard-backend/internal/adapter/clock"
	"github.com/heartmarshall/anonboard-backend/internal/adapter/metrics"
	"github.com/heartmarshall/anonboard-backend/internal/adapter/postgres"
	historyrepo "github.com/heartmarshall/anonboard-backend/internal/adapter/postgres/history"
	resrepo "github.com/heartmarshall/anonboard-backend/internal/adapter/postgres/res"
	topicrepo "github.com/heartmarshall/anonboard-backend/internal/adapter/postgres/topic"
	userrepo "github.com/heartmarshall/anonboard-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/anonboard-backend/internal/adapter/redis"
	"github.com/heartmarshall/anonboard-backend/internal/adapter/snowflake"
	"github.com/heartmarshall/anonboard-backend/internal/auth"
	"github.com/heartmarshall/anonboard-backend/internal/config"
	"github.com/heartmarshall/anonboard-backend/internal/service/res"
	"github.com/heartmarshall/anonboard-backend/internal/service/topic"
	"github.com/heartmarshall/anonboard-backend/internal/service/user"
)

// Board is the wired dependency graph shared by the server and the cron
// commands.
type Board struct {
	Pool     *pgxpool.Pool
	Redis    *redis.Client
	Registry *prometheus.Registry
	Metrics  *metrics.Metrics

	Users  *user.Service
	Topics *topic.Service
	Res    *res.Service
}

// NewBoard connects to Postgres and Redis and builds the services.
// Migrations run first when cfg.Database.MigrateOnStart is set.
func NewBoard(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Board, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if cfg.Database.MigrateOnStart {
		applied, err := postgres.Migrate(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied", slog.Int("count", applied))
	}

	rdb, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	ids, err := snowflake.New(cfg.Snowflake.NodeID)
	if err != nil {
		pool.Close()
		_ = rdb.Close()
		return nil, fmt.Errorf("snowflake node: %w", err)
	}

	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	var (
		clk       = clock.System{}
		tx        = postgres.NewTxManager(pool)
		users     = userrepo.New(pool)
		topics    = topicrepo.New(pool)
		reses     = resrepo.New(pool)
		histories = historyrepo.New(pool)
		publisher = redis.NewPublisher(rdb.Client, cfg.Redis.ResAddedChannel)
	)

	policy := cfg.Board.RateLimitPolicy()

	return &Board{
		Pool:     pool,
		Redis:    rdb,
		Registry: registry,
		Metrics:  m,
		Users: user.NewService(logger, users,
			auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
			auth.NewPasswordHasher(cfg.Auth.BcryptCost),
			ids, clk,
		),
		Topics: topic.NewService(logger, tx, users, topics, reses, histories, publisher, m, ids, clk, topic.Config{
			Policy:          policy,
			DefaultPageSize: cfg.Board.DefaultPageSize,
			MaxPageSize:     cfg.Board.MaxPageSize,
		}),
		Res: res.NewService(logger, tx, users, topics, reses, publisher, m, ids, clk, res.Config{
			Policy:          policy,
			DefaultPageSize: cfg.Board.DefaultPageSize,
			MaxPageSize:     cfg.Board.MaxPageSize,
		}),
	}, nil
}

// Close releases the connections.
func (b *Board) Close() {
	_ = b.Redis.Close()
	b.Pool.Close()
}
