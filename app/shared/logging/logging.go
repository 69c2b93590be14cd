package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Black-And-White-Club/pingpong-scoreboard/config"
)

// New builds the process logger from config. Unknown levels fall back to info.
// Records are appended to cfg.File when set and go to stdout otherwise; the
// returned func closes the file.
func New(cfg config.LogConfig) (*slog.Logger, func() error, error) {
	if cfg.File == "" {
		return NewWithWriter(os.Stdout, cfg), func() error { return nil }, nil
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return NewWithWriter(f, cfg), f.Close, nil
}

func NewWithWriter(w io.Writer, cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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

// NoOp returns a logger that discards everything.
func NoOp() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
