// SPDX-License-Identifier: MIT

package match

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/lattice/cell"
)

// Logger wraps slog.Logger with matcher-specific helpers.
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

	return &Logger{Logger: slog.New(handler)}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

// WithPattern tags the logger with the index of the pattern being matched.
func (l *Logger) WithPattern(i int) *Logger {
	return &Logger{Logger: l.Logger.With("pattern", i)}
}

// diagLevel is the level for template/candidate diagnostics.
func diagLevel(verbose bool) slog.Level {
	if verbose {
		return slog.LevelInfo
	}

	return slog.LevelDebug
}

// LogTemplate logs the reference cell and its reciprocal lengths and angles.
func (l *Logger) LogTemplate(ctx context.Context, template *cell.UnitCell, lengths, angles [3]float64, verbose bool) {
	l.Log(ctx, diagLevel(verbose), "matching with model cell",
		"template", template,
		"recip_lengths", lengths[:],
		"recip_angles_deg", []float64{
			cell.Rad2Deg(angles[0]), cell.Rad2Deg(angles[1]), cell.Rad2Deg(angles[2]),
		},
	)
}

// LogCandidates logs the per-slot candidate counts.
func (l *Logger) LogCandidates(ctx context.Context, counts [3]int, verbose bool) {
	l.Log(ctx, diagLevel(verbose), "candidates",
		"slot0", counts[0],
		"slot1", counts[1],
		"slot2", counts[2],
	)
}

// LogOverflow warns that a candidate slot hit its capacity.
func (l *Logger) LogOverflow(ctx context.Context, slot, kept, dropped int) {
	l.WarnContext(ctx, "candidate capacity exceeded",
		"slot", slot,
		"kept", kept,
		"dropped", dropped,
	)
}

// LogMatch logs a successful match or its failure.
func (l *Logger) LogMatch(ctx context.Context, res *Result, err error) {
	if err != nil {
		l.DebugContext(ctx, "match failed", "error", err)
		return
	}
	l.DebugContext(ctx, "match found",
		"fom", res.FOM,
		"cell", res.Cell,
		"axis0", res.Axes[0].N[:],
		"axis1", res.Axes[1].N[:],
		"axis2", res.Axes[2].N[:],
	)
}

// LogBatch logs the outcome of a MatchAll run.
func (l *Logger) LogBatch(ctx context.Context, total, matched int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "batch match aborted",
			"total", total,
			"matched", matched,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "batch match completed",
		"total", total,
		"matched", matched,
	)
}
