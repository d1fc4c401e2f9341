// Package logger constructs the run-scoped *slog.Logger injected into the
// pipeline. One logger is built per invocation and passed down explicitly;
// nothing in the repo logs through a process-wide default.
package logger

import (
	"log/slog"
	"os"

	charmlog "github.com/charmbracelet/log"
)

// New builds a logger from the given options. The default is a pretty,
// human-readable handler at Info level writing to stderr.
func New(opts ...Option) *slog.Logger {
	cfg := config{
		level:  slog.LevelInfo,
		writer: os.Stderr,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.json {
		return slog.New(slog.NewJSONHandler(cfg.writer, &slog.HandlerOptions{
			Level: cfg.level,
		}))
	}

	handler := charmlog.NewWithOptions(cfg.writer, charmlog.Options{
		ReportTimestamp: true,
		Level:           charmLevel(cfg.level),
	})
	return slog.New(handler)
}

func charmLevel(l slog.Level) charmlog.Level {
	switch {
	case l <= slog.LevelDebug:
		return charmlog.DebugLevel
	case l <= slog.LevelInfo:
		return charmlog.InfoLevel
	case l <= slog.LevelWarn:
		return charmlog.WarnLevel
	default:
		return charmlog.ErrorLevel
	}
}
