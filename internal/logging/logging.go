// Package logging builds the diagnostic logger from configuration.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/term"

	"github.com/example/ticketdesk/internal/config"
)

// ParseLevel maps a configured level name to a slog level.
// Unknown names fall back to error.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	}
	return slog.LevelError
}

// New creates a logger writing to the configured destination. A file is
// opened for append and created if missing; the returned closer releases
// it. Colour is only used when the destination is a terminal.
func New(cfg config.LogConfig) (*slog.Logger, io.Closer, error) {
	var (
		writer io.Writer
		closer io.Closer = nopCloser{}
	)

	switch strings.ToLower(cfg.Path) {
	case "stderr":
		writer = os.Stderr
	case "stdout":
		writer = os.Stdout
	default:
		path := cfg.Path
		if path == "" {
			path = config.DefaultLogPath
		}
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, nil, err
		}
		writer = file
		closer = file
	}

	return NewWithWriter(writer, ParseLevel(cfg.Level)), closer, nil
}

// NewWithFallback is New, except that a destination which cannot be opened
// falls back to fallback. The fallback logs at warn or below so the reason
// for the switch is always recorded.
func NewWithFallback(cfg config.LogConfig, fallback io.Writer) (*slog.Logger, io.Closer) {
	logger, closer, err := New(cfg)
	if err == nil {
		return logger, closer
	}

	level := min(ParseLevel(cfg.Level), slog.LevelWarn)
	logger = NewWithWriter(fallback, level)
	logger.Warn("failed to open log file", "path", cfg.Path, "error", err)
	return logger, nopCloser{}
}

// NewWithWriter creates a logger on an already opened writer.
func NewWithWriter(w io.Writer, level slog.Level) *slog.Logger {
	handler := tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.DateTime,
		NoColor:    !isTerminal(w),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" && a.Value.Kind() == slog.KindAny {
				if err, ok := a.Value.Any().(error); ok {
					return tint.Err(err)
				}
			}
			return a
		},
	})
	return slog.New(handler)
}

func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
