// Package ctxlog carries an operation-scoped slog.Logger through contexts so
// stores and adapters log with the fields of the triggering operation.
package ctxlog

import (
	"context"
	"log/slog"
)

// contextKey is a private type to avoid context key collisions.
type contextKey string

const loggerKey = contextKey("logger")

// With returns a context carrying the given logger.
func With(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// From retrieves the logger from the context, falling back to slog.Default
// when none was attached.
func From(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerKey).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return logger
}
