// Command reset-counters zeroes one rolling res counter for every user.
// Schedule one invocation per window, e.g. every ten minutes for m10.
//
// Usage:
//
//	reset-counters -window=m10|m30|h1|h6|h12|d1
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/anonboard-backend/internal/app"
	"github.com/heartmarshall/anonboard-backend/internal/config"
	"github.com/heartmarshall/anonboard-backend/internal/domain"
)

func main() {
	configPath := flag.String("config", "", "path to config.yaml (defaults to CONFIG_PATH or ./config.yaml)")
	window := flag.String("window", "", "counter window: m10, m30, h1, h6, h12 or d1")
	flag.Parse()

	w := domain.CounterWindow(*window)
	if !w.IsValid() {
		fmt.Fprintln(os.Stderr, "Usage: reset-counters -window=m10|m30|h1|h6|h12|d1")
		os.Exit(1)
	}

	cfg, err := config.LoadFile(*configPath, *configPath != "")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log, app.ComponentResetCounters)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	board, err := app.NewBoard(ctx, cfg, logger)
	if err != nil {
		logger.Error("init", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer board.Close()

	n, err := board.Users.ResetCounters(ctx, w)
	if err != nil {
		logger.Error("reset counters failed",
			slog.String("error", err.Error()),
			slog.String("window", w.String()),
		)
		board.Close()
		os.Exit(1)
	}

	logger.Info("reset counters completed",
		slog.String("window", w.String()),
		slog.Int64("users", n),
	)
}
