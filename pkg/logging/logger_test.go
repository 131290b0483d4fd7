package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
)

// decodeEntry parses the single JSON log line in buf
func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to parse log JSON %q: %v", buf.String(), err)
	}
	return entry
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input     string
		expected  slog.Level
		expectErr bool
	}{
		{"DEBUG", slog.LevelDebug, false},
		{"info", slog.LevelInfo, false},
		{" Warn ", slog.LevelWarn, false},
		{"ERROR", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
		{"", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := ParseLevel(tt.input)
			if (err != nil) != tt.expectErr {
				t.Fatalf("ParseLevel(%q) error = %v, expectErr %v", tt.input, err, tt.expectErr)
			}
			if level != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, level, tt.expected)
			}
		})
	}
}

func TestLevelFromEnv(t *testing.T) {
	t.Setenv(LevelEnv, "debug")
	if got := LevelFromEnv(); got != slog.LevelDebug {
		t.Errorf("LevelFromEnv() = %v, want DEBUG", got)
	}

	t.Setenv(LevelEnv, "loud")
	if got := LevelFromEnv(); got != slog.LevelInfo {
		t.Errorf("LevelFromEnv() with an invalid value = %v, want INFO", got)
	}
}

func TestNew_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelWarn)

	logger.Info(context.Background(), "scene created")
	if buf.Len() != 0 {
		t.Fatalf("Expected info entry to be dropped at warn level, got %s", buf.String())
	}

	logger.Warn(context.Background(), "image failed to load", "asset", "ship")
	entry := decodeEntry(t, &buf)
	if entry["level"] != "WARN" || entry["asset"] != "ship" {
		t.Errorf("Unexpected entry %v", entry)
	}
}

func TestLogger_AddsSessionID(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelDebug)
	ctx := WithSessionID(context.Background(), "run-42")

	logger.Debug(ctx, "ship clamped to screen edge", "direction", "left")

	entry := decodeEntry(t, &buf)
	if entry["session_id"] != "run-42" {
		t.Errorf("Expected session_id run-42, got %v", entry["session_id"])
	}
	if entry["direction"] != "left" {
		t.Errorf("Expected direction attribute, got %v", entry["direction"])
	}
}

func TestLogger_NoSessionID(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelInfo)

	logger.Info(context.Background(), "starting")

	if _, ok := decodeEntry(t, &buf)["session_id"]; ok {
		t.Error("Expected no session_id without one on the context")
	}
}

func TestLogger_Error(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelInfo)

	logger.Error(context.Background(), "run failed", errors.New("no terminal"), "renderer", "terminal")

	entry := decodeEntry(t, &buf)
	if entry["level"] != "ERROR" || entry["error"] != "no terminal" || entry["renderer"] != "terminal" {
		t.Errorf("Unexpected entry %v", entry)
	}
}

func TestSessionID(t *testing.T) {
	id1, id2 := NewSessionID(), NewSessionID()
	if id1 == id2 {
		t.Error("NewSessionID() returned duplicate IDs")
	}
	if _, err := uuid.Parse(id1); err != nil {
		t.Errorf("NewSessionID() returned a malformed UUID %q: %v", id1, err)
	}

	generated := SessionID(WithSessionID(context.Background(), ""))
	if _, err := uuid.Parse(generated); err != nil {
		t.Errorf("WithSessionID with an empty id should generate a UUID, got %q", generated)
	}

	if SessionID(context.Background()) != "" {
		t.Error("Expected empty session ID on a bare context")
	}
}

func TestHomeRelativePaths(t *testing.T) {
	replace := homeRelativePaths("/home/pilot")

	tests := []struct {
		name     string
		attr     slog.Attr
		expected string
	}{
		{"asset root under home", slog.String("asset_root", "/home/pilot/games/assets"), "~/games/assets"},
		{"config path under home", slog.String("config_path", "/home/pilot/shooter.yaml"), "~/shooter.yaml"},
		{"home itself", slog.String("root", "/home/pilot"), "~"},
		{"outside home", slog.String("path", "/etc/shooter.yaml"), "/etc/shooter.yaml"},
		{"sibling of home", slog.String("path", "/home/pilotx/a.png"), "/home/pilotx/a.png"},
		{"relative path", slog.String("path", "images/scratch-spaceship.png"), "images/scratch-spaceship.png"},
		{"not a path key", slog.String("title", "/home/pilot/x"), "/home/pilot/x"},
		{"key is kept", slog.String("key", "/home/pilot/x"), "/home/pilot/x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := replace(nil, tt.attr)
			if got.Key != tt.attr.Key || got.Value.String() != tt.expected {
				t.Errorf("got %s=%q, want %s=%q", got.Key, got.Value.String(), tt.attr.Key, tt.expected)
			}
		})
	}

	// Without a home directory nothing is rewritten
	if got := homeRelativePaths("")(nil, slog.String("path", "/home/pilot/a")); got.Value.String() != "/home/pilot/a" {
		t.Errorf("Expected path unchanged without a home directory, got %q", got.Value.String())
	}
}

func TestWrapError(t *testing.T) {
	if WrapError(nil, "failed to load") != nil {
		t.Error("WrapError(nil) should return nil")
	}

	base := errors.New("permission denied")
	wrapped := WrapError(base, "failed to open %s", "shooter.log")
	if wrapped.Error() != "failed to open shooter.log: permission denied" {
		t.Errorf("WrapError() = %q", wrapped.Error())
	}
	if !errors.Is(wrapped, base) {
		t.Error("WrapError() should keep the original error in the chain")
	}
}
