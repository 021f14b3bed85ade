package kcluster

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with kcluster-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
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

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithVariant adds the clustering variant to the logger.
func (l *Logger) WithVariant(variant string) *Logger {
	return &Logger{
		Logger: l.Logger.With("variant", variant),
	}
}

// WithK adds a k (centroid count) field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("k", k),
	}
}

// WithCount adds a count (dataset size) field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogNormalize logs a normalization pass.
func (l *Logger) LogNormalize(ctx context.Context, count int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "normalize failed",
			"count", count,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "normalize completed",
			"count", count,
		)
	}
}

// LogInitialize logs centroid initialization.
func (l *Logger) LogInitialize(ctx context.Context, strategy string, k int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "centroid initialization failed",
			"strategy", strategy,
			"k", k,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "centroids initialized",
			"strategy", strategy,
			"k", k,
		)
	}
}

// LogStep logs a single relocation step.
func (l *Logger) LogStep(ctx context.Context, iteration int, displacement float64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "step failed",
			"iteration", iteration,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "step completed",
			"iteration", iteration,
			"displacement", displacement,
		)
	}
}

// LogFit logs the outcome of a convergence loop.
func (l *Logger) LogFit(ctx context.Context, iterations int, displacement float64, converged bool, err error) {
	switch {
	case err != nil:
		l.ErrorContext(ctx, "fit failed",
			"iterations", iterations,
			"error", err,
		)
	case converged:
		l.InfoContext(ctx, "fit converged",
			"iterations", iterations,
			"displacement", displacement,
		)
	default:
		l.WarnContext(ctx, "fit stopped at iteration cap",
			"iterations", iterations,
			"displacement", displacement,
		)
	}
}
