// Package logger provides structured logging for the typo command.
// It uses Go's slog package with configurable levels and formats.
package logger

import (
	"io"
	"log/slog"
)

// New creates a slog Logger writing to w with the specified level and
// format. The typo command passes standard error, leaving standard output
// to the formatted text. If jsonOutput is true, logs are formatted as JSON,
// otherwise as text.
func New(w io.Writer, levelStr string, jsonOutput bool) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(levelStr),
	}

	var handler slog.Handler
	if jsonOutput {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// ParseLevel maps a level name to a slog level. Unknown names mean info.
func ParseLevel(levelStr string) slog.Level {
	switch levelStr {
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
