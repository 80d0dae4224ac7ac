// Package logging builds the slog loggers used by pkgsort. Diagnostics go
// to stderr so that stdout stays clean for manifest output.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// DefaultLevel is used when no level is configured.
const DefaultLevel = slog.LevelWarn

// New returns a text logger writing to w at the given level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(100)}))
}

// ParseLevel converts debug, info, warn or error (case-insensitive) into a
// slog.Level. Empty or unrecognized values yield DefaultLevel and false.
func ParseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return DefaultLevel, false
	}
}
