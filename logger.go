package clusterkit

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with clusterkit-specific context.
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
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithK adds a k (cluster or neighbour count) field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("k", k),
	}
}

// WithTrial adds a trial index field to the logger.
func (l *Logger) WithTrial(trial int) *Logger {
	return &Logger{
		Logger: l.Logger.With("trial", trial),
	}
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogSolve logs a single k-means solve.
func (l *Logger) LogSolve(ctx context.Context, k, iterations int, errValue float64, converged bool, err error) {
	if err != nil {
		l.ErrorContext(ctx, "cluster failed",
			"k", k,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "cluster completed",
			"k", k,
			"iterations", iterations,
			"rms_error", errValue,
			"converged", converged,
		)
	}
}

// LogSweep logs an automatic k sweep.
func (l *Logger) LogSweep(ctx context.Context, kMin, kMax, trials, bestK int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "auto cluster failed",
			"k_min", kMin,
			"k_max", kMax,
			"trials", trials,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "auto cluster completed",
			"k_min", kMin,
			"k_max", kMax,
			"trials", trials,
			"best_k", bestK,
		)
	}
}

// LogClassify logs a KNN classification.
func (l *Logger) LogClassify(ctx context.Context, k int, label string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "classify failed",
			"k", k,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "classify completed",
			"k", k,
			"label", label,
		)
	}
}
