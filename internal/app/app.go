package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/anonboard-backend/internal/adapter/metrics"
	"github.com/heartmarshall/anonboard-backend/internal/adapter/redis"
	"github.com/heartmarshall/anonboard-backend/internal/config"
	"github.com/heartmarshall/anonboard-backend/internal/transport/middleware"
	"github.com/heartmarshall/anonboard-backend/internal/transport/rest"
)

const sseKeepAlive = 25 * time.Second

// Run is the server entry point. It loads configuration, wires the board,
// serves HTTP until ctx is cancelled and then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log, ComponentServer)
	logger.Info("starting application", slog.String("log_level", cfg.Log.Level))

	board, err := NewBoard(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer board.Close()

	var rateLimit middleware.Middleware
	if cfg.RateLimit.RequestsPerMinute > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		defer limiter.Stop()
		rateLimit = limiter.Limit(cfg.RateLimit.RequestsPerMinute)
	}

	deps := rest.RouterDeps{
		Logger: logger,
		Users:  rest.NewUserHandler(board.Users, logger),
		Topics: rest.NewTopicHandler(board.Topics, logger),
		Res:    rest.NewResHandler(board.Res, logger),
		Events: rest.NewEventHandler(
			redis.NewSubscriber(board.Redis.Client, cfg.Redis.ResAddedChannel, logger),
			logger, sseKeepAlive,
		),
		Health: rest.NewHealthHandler(map[string]rest.Checker{
			"database": board.Pool.Ping,
			"redis":    board.Redis.Health,
		}, Build().String()),
		Tokens:    board.Users,
		Observer:  board.Metrics,
		CORS:      cfg.CORS,
		RateLimit: rateLimit,
	}
	if cfg.Metrics.Enabled {
		deps.Metrics = metrics.Handler(board.Registry)
		deps.MetricsPath = cfg.Metrics.Path
	}

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      rest.NewRouter(deps),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}
