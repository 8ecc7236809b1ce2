package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/ticketdesk/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelError},
		{"verbose", slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseLevel(tt.name); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestNewWithWriter_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, slog.LevelError)

	logger.Info("ticket listed")
	logger.Error("store operation failed", "op", "insert ticket", "error", errors.New("disk full"))

	out := buf.String()
	if strings.Contains(out, "ticket listed") {
		t.Errorf("info record should be filtered at error level: %q", out)
	}
	for _, want := range []string{"ERR", "store operation failed", "op=\"insert ticket\"", "disk full"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in %q", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("a buffer is not a terminal, output must not be coloured: %q", out)
	}
}

func TestNew_AppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app_errors.log")
	if err := os.WriteFile(path, []byte("earlier line\n"), 0644); err != nil {
		t.Fatalf("failed to seed log file: %v", err)
	}

	logger, closer, err := New(config.LogConfig{Path: path, Level: "error"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	logger.Error("uniqueness violation", "action", "add")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	content := string(data)
	if !strings.HasPrefix(content, "earlier line\n") {
		t.Errorf("existing content must be kept, got %q", content)
	}
	if !strings.Contains(content, "uniqueness violation") || !strings.Contains(content, "action=add") {
		t.Errorf("expected new record, got %q", content)
	}
}

func TestNew_StreamDestinations(t *testing.T) {
	for _, dest := range []string{"stderr", "STDOUT"} {
		logger, closer, err := New(config.LogConfig{Path: dest, Level: "debug"})
		if err != nil {
			t.Fatalf("New(%s) failed: %v", dest, err)
		}
		if logger == nil {
			t.Fatalf("New(%s) returned nil logger", dest)
		}
		if err := closer.Close(); err != nil {
			t.Errorf("closing a stream destination must be a no-op, got %v", err)
		}
	}
}

func TestNew_UnwritablePath(t *testing.T) {
	_, _, err := New(config.LogConfig{Path: filepath.Join(t.TempDir(), "missing", "app.log")})
	if err == nil {
		t.Error("expected error when the log directory does not exist")
	}
}

func TestNewWithFallback_ReportsUnopenableFile(t *testing.T) {
	var fallback bytes.Buffer
	path := filepath.Join(t.TempDir(), "missing", "app.log")

	logger, closer := NewWithFallback(config.LogConfig{Path: path, Level: "error"}, &fallback)
	if logger == nil {
		t.Fatal("expected a fallback logger")
	}
	if err := closer.Close(); err != nil {
		t.Errorf("fallback closer must be a no-op, got %v", err)
	}

	out := fallback.String()
	if !strings.Contains(out, "failed to open log file") || !strings.Contains(out, "app.log") {
		t.Errorf("switch to the fallback must be logged even at error level, got %q", out)
	}

	fallback.Reset()
	logger.Info("ticket listed")
	if fallback.Len() != 0 {
		t.Errorf("info records stay filtered on the fallback, got %q", fallback.String())
	}
}

func TestNewWithFallback_UsesFileWhenAvailable(t *testing.T) {
	var fallback bytes.Buffer
	path := filepath.Join(t.TempDir(), "app_errors.log")

	logger, closer := NewWithFallback(config.LogConfig{Path: path, Level: "error"}, &fallback)
	logger.Error("store operation failed")
	closer.Close()

	if fallback.Len() != 0 {
		t.Errorf("fallback must stay unused, got %q", fallback.String())
	}
	data, err := os.ReadFile(path)
	if err != nil || !strings.Contains(string(data), "store operation failed") {
		t.Errorf("expected record in log file, got %q (%v)", data, err)
	}
}
