// Package logging defines the structured logger used by the conversion
// pipeline. The only implementation wraps log/slog.
//
// Progress lines, skips and removals are logged at Info and per-file
// failures at Warn. Debug carries the per-file details (output size,
// orientation, capture date, pruning ledger) and is enabled by the
// --verbose flag of the gaaqoo command.
package logging

import "context"

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key–value pairs, e.g.:
//
//	log.Info(ctx, "converted", "src", src, "dst", dst)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)

	// Warn is used for per-file failures that do not stop the run.
	Warn(ctx context.Context, msg string, args ...any)

	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}
