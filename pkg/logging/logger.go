// Package logging provides structured JSON logging for the shooter. Every
// entry carries the session ID found on its context, and file system paths
// below the user's home directory are logged relative to "~".
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LevelEnv is the environment variable holding the default log level
const LevelEnv = "SHOOTER_LOG_LEVEL"

// Logger wraps slog.Logger with session-aware helpers.
type Logger struct {
	*slog.Logger
}

// New creates a Logger writing JSON entries at or above level to w.
func New(w io.Writer, level slog.Level) *Logger {
	home, _ := os.UserHomeDir()
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: homeRelativePaths(home),
	})
	return &Logger{slog.New(handler)}
}

// NewLogger creates a Logger writing to stdout at the level from
// SHOOTER_LOG_LEVEL.
func NewLogger() *Logger {
	return NewLoggerWithWriter(os.Stdout)
}

// NewLoggerWithWriter creates a Logger writing to w at the level from
// SHOOTER_LOG_LEVEL. The terminal front end uses it to keep log lines off
// the screen it draws on.
func NewLoggerWithWriter(w io.Writer) *Logger {
	return New(w, LevelFromEnv())
}

// ParseLevel parses DEBUG, INFO, WARN or ERROR, in any case.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}

// LevelFromEnv returns the level named by SHOOTER_LOG_LEVEL, INFO when it
// is unset or invalid.
func LevelFromEnv() slog.Level {
	level, err := ParseLevel(os.Getenv(LevelEnv))
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

// LogWithContext logs msg at level, adding the context's session ID.
func (l *Logger) LogWithContext(ctx context.Context, level slog.Level, msg string, args ...any) {
	if id := SessionID(ctx); id != "" {
		args = append(args, "session_id", id)
	}
	l.Log(ctx, level, msg, args...)
}

// Info logs at info level.
func (l *Logger) Info(ctx context.Context, msg string, args ...any) {
	l.LogWithContext(ctx, slog.LevelInfo, msg, args...)
}

// Warn logs at warn level.
func (l *Logger) Warn(ctx context.Context, msg string, args ...any) {
	l.LogWithContext(ctx, slog.LevelWarn, msg, args...)
}

// Error logs at error level with err under the "error" key.
func (l *Logger) Error(ctx context.Context, msg string, err error, args ...any) {
	if err != nil {
		args = append(args, "error", err.Error())
	}
	l.LogWithContext(ctx, slog.LevelError, msg, args...)
}

// Debug logs at debug level.
func (l *Logger) Debug(ctx context.Context, msg string, args ...any) {
	l.LogWithContext(ctx, slog.LevelDebug, msg, args...)
}

type sessionIDKey struct{}

// WithSessionID returns a context carrying id, or a fresh ID when id is empty.
func WithSessionID(ctx context.Context, id string) context.Context {
	if id == "" {
		id = NewSessionID()
	}
	return context.WithValue(ctx, sessionIDKey{}, id)
}

// SessionID returns the session ID on ctx, or "".
func SessionID(ctx context.Context) string {
	if id, ok := ctx.Value(sessionIDKey{}).(string); ok {
		return id
	}
	return ""
}

// NewSessionID returns a random version 4 UUID.
func NewSessionID() string {
	return uuid.NewString()
}

// isPathKey reports whether an attribute holds a file system path
func isPathKey(key string) bool {
	key = strings.ToLower(key)
	return key == "path" || key == "root" ||
		strings.HasSuffix(key, "_path") || strings.HasSuffix(key, "_root") || strings.HasSuffix(key, "_file")
}

// homeRelativePaths rewrites path attributes under home to start with "~".
func homeRelativePaths(home string) func(groups []string, a slog.Attr) slog.Attr {
	return func(groups []string, a slog.Attr) slog.Attr {
		if home == "" || a.Value.Kind() != slog.KindString || !isPathKey(a.Key) {
			return a
		}
		p := a.Value.String()
		rel, err := filepath.Rel(home, p)
		if err != nil || !filepath.IsAbs(p) || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return a
		}
		return slog.String(a.Key, filepath.Join("~", rel))
	}
}

// WrapError wraps err with a formatted context message, keeping it
// available to errors.Is and errors.As.
func WrapError(err error, context string, args ...any) error {
	if err == nil {
		return nil
	}
	if len(args) > 0 {
		context = fmt.Sprintf(context, args...)
	}
	return fmt.Errorf("%s: %w", context, err)
}
