// Command close-topics closes one topics that have been idle longer than
// board.one_topic_idle_ttl. It is intended to be invoked by an external
// cron job, not as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/anonboard-backend/internal/app"
	"github.com/heartmarshall/anonboard-backend/internal/config"
)

func main() {
	configPath := flag.String("config", "", "path to config.yaml (defaults to CONFIG_PATH or ./config.yaml)")
	ttl := flag.Duration("ttl", 0, "idle time after which a one topic is closed (defaults to board.one_topic_idle_ttl)")
	flag.Parse()

	cfg, err := config.LoadFile(*configPath, *configPath != "")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if *ttl == 0 {
		*ttl = cfg.Board.OneTopicIdleTTL
	}

	logger := app.NewLogger(cfg.Log, app.ComponentCloseTopics)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	board, err := app.NewBoard(ctx, cfg, logger)
	if err != nil {
		logger.Error("init", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer board.Close()

	closed, err := board.Topics.CloseIdleOneTopics(ctx, *ttl)
	if err != nil {
		logger.Error("close idle topics failed",
			slog.String("error", err.Error()),
			slog.Duration("ttl", *ttl),
		)
		board.Close()
		os.Exit(1)
	}

	logger.Info("close idle topics completed",
		slog.Int64("closed", closed),
		slog.Duration("ttl", *ttl),
	)
}
