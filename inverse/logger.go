package inverse

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with inversion-specific helpers and consistent
// field names.
type Logger struct {
	*slog.Logger
}

// discard is the shared default; it never formats a record.
var discard = NoopLogger()

// NewLogger creates a Logger with the given handler.
// If handler is nil, a text handler on stderr at Info level is used.
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

// NewJSONLogger creates a Logger that writes JSON records to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that writes human-readable records to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // unreachable level
	}))
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", n),
	}
}

// LogInverse logs one inversion.
func (l *Logger) LogInverse(ctx context.Context, n int, class SizeClass, strategy Strategy, err error) {
	if err != nil {
		l.ErrorContext(ctx, "inverse failed",
			"dimension", n,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "inverse completed",
			"dimension", n,
			"class", class.String(),
			"strategy", strategy.String(),
		)
	}
}

// LogBatch logs a batch inversion.
func (l *Logger) LogBatch(ctx context.Context, count int, err error) {
	if err != nil {
		l.WarnContext(ctx, "batch inverse aborted",
			"count", count,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "batch inverse completed",
			"count", count,
		)
	}
}
