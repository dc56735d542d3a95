package app

import (
	"io"
	"log/slog"
	"strings"

	"github.com/heartmarshall/timetrack-backend/internal/config"
)

// NewLogger builds the process logger from LogConfig and writes to w.
//
// Format "text" is human-readable and carries source positions; anything
// else is JSON. Every record is tagged with the binary name in "app".
func NewLogger(cfg config.LogConfig, w io.Writer, appName string) *slog.Logger {
	text := strings.EqualFold(strings.TrimSpace(cfg.Format), "text")
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: text,
	}

	var handler slog.Handler
	if text {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	logger := slog.New(handler)
	if appName != "" {
		logger = logger.With(slog.String("app", appName))
	}
	return logger
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
