// Package logging builds the slog.Logger used for structured tracing.
//
// User-facing diagnostics (errors, usage, summary) go through package diag;
// the logger only carries operational detail and is quiet at the default
// warn level.
package logging

import (
	"io"
	"log/slog"

	"github.com/arloliu/linerle/internal/config"
)

// New creates a logger writing to w. It does not touch the global logger.
func New(level config.LogLevel, format config.LogFormat, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: toSlogLevel(level)}

	var handler slog.Handler
	if format == config.LogFormatJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

func toSlogLevel(level config.LogLevel) slog.Level {
	switch level {
	case config.LogLevelDebug:
		return slog.LevelDebug
	case config.LogLevelInfo:
		return slog.LevelInfo
	case config.LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
