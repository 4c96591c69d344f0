package core

import (
	"io"
	"log/slog"
)

// LevelTrace sits below slog.LevelDebug and carries per-step timings.
const LevelTrace = slog.LevelDebug - 4

// NewLogger returns a text logger writing to w. verbose enables debug
// records; extreme additionally enables trace records.
func NewLogger(w io.Writer, verbose, extreme bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	if extreme {
		level = LevelTrace
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey {
				if lvl, ok := a.Value.Any().(slog.Level); ok && lvl == LevelTrace {
					a.Value = slog.StringValue("TRACE")
				}
			}
			return a
		},
	}))
}

// NopLogger discards every record.
func NopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}
