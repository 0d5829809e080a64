package recordlink

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with recordlink-specific context.
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
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithBlocking adds a blocking field to the logger.
func (l *Logger) WithBlocking(m BlockingMethod) *Logger {
	return &Logger{
		Logger: l.Logger.With("blocking", m.String()),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogResolve logs a finished resolution.
func (l *Logger) LogResolve(ctx context.Context, records, clusters int, d time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "resolve failed",
			"records", records,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "resolve completed",
		"records", records,
		"clusters", clusters,
		"duration", d,
	)
}

// LogCanopyThresholds logs the thresholds a canopy run uses.
func (l *Logger) LogCanopyThresholds(ctx context.Context, t1, t2 float64, policy TightThreshold) {
	l.DebugContext(ctx, "canopy thresholds",
		"loose", t1,
		"tight", t2,
		"policy", policy.String(),
	)
}

// LogEvaluation logs evaluation scores against gold labels.
func (l *Logger) LogEvaluation(ctx context.Context, e Evaluation) {
	l.InfoContext(ctx, "evaluation",
		"pairwise_f1", e.Pairwise.F1,
		"pairwise_precision", e.Pairwise.Precision,
		"pairwise_recall", e.Pairwise.Recall,
		"cluster_f1", e.Cluster.F1,
		"vi", e.VariationOfInformation,
	)
}
