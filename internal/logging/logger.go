// Package logging defines the structured-logging interface used by the
// server components. The default implementation wraps slog.
package logging

import "context"

// Logger is a context-aware, structured logger. Variadic args are
// key–value pairs:
//
//	log.Info(ctx, "starting server", "address", addr)
type Logger interface {
	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs unusual but non-fatal conditions, e.g. a tolerated
	// object-store failure during deletion.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs failures, including surfaced rename/upload windows
	// that need out-of-band reconciliation.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given
	// key–value pairs.
	With(args ...any) Logger
}
