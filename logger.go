package mazesolver

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with solver-specific helpers.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// If handler is nil, a text handler on stderr at info level is used.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that writes human-readable text to w.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewJSONLogger creates a Logger that writes JSON lines to w.
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger discards everything.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000),
	}))
}

// LogGrowth logs an open-set reallocation.
func (l *Logger) LogGrowth(capacity, swaps int) {
	l.Debug("expanding open set",
		"capacity", capacity,
		"swaps", swaps,
	)
}

// LogSolve logs the outcome of a search.
func (l *Logger) LogSolve(start, end Point, res Result) {
	if !res.Found {
		l.Info("no path exists",
			"start", start,
			"end", end,
			"expanded", res.Expanded,
		)
		return
	}
	l.Info("solved",
		"start", start,
		"end", end,
		"length", res.Length,
		"expanded", res.Expanded,
		"heap_swaps", res.HeapSwaps,
	)
}
