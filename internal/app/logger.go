package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/anonboard-backend/internal/config"
)

// Component names the binary a log line came from.
const (
	ComponentServer        = "server"
	ComponentCloseTopics   = "close-topics"
	ComponentResetCounters = "reset-counters"
)

// NewLogger builds the process logger on stderr and installs it as the
// slog default. Every record carries the component and the build.
//
// "json" is the production format. Anything else is text with source
// locations. Unknown levels fall back to info.
func NewLogger(cfg config.LogConfig, component string) *slog.Logger {
	logger := newLogger(os.Stderr, cfg, component)
	slog.SetDefault(logger)
	return logger
}

func newLogger(w io.Writer, cfg config.LogConfig, component string) *slog.Logger {
	json := strings.EqualFold(cfg.Format, "json")
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: !json,
	}

	var handler slog.Handler
	if json {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler).With(
		slog.String("component", component),
		slog.Any("build", Build()),
	)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
