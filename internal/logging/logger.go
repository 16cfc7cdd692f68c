// Package logging provides structured logging configuration using log/slog.
//
// Every store operation runs under an operation ID placed in the context,
// enabling correlation of all log entries emitted by a single call chain
// (schema resolution, row location, remote calls).
package logging

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
)

type operationIDKey struct{}

// Setup configures the global slog logger based on level and format.
//
// Level values: "debug", "info", "warn", "error" (default: "info")
// Format values: "text", "json" (default: "text")
//
// Use "json" format in production for machine parsing (ELK, CloudWatch, etc.)
// Use "text" format in development for human readability.
func Setup(level, format string) {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}

	var handler slog.Handler
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(handler))
}

// parseLevel converts a string log level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithOperationID returns a context carrying a freshly generated operation ID.
// If the context already carries one it is returned unchanged, so nested
// calls stay correlated with their parent operation.
func WithOperationID(ctx context.Context) context.Context {
	if OperationID(ctx) != "" {
		return ctx
	}
	return context.WithValue(ctx, operationIDKey{}, uuid.New().String())
}

// OperationID returns the operation ID stored in the context, or "".
func OperationID(ctx context.Context) string {
	id, _ := ctx.Value(operationIDKey{}).(string)
	return id
}

// FromContext returns a logger enriched with the context's operation ID.
//
// Usage:
//
//	logger := logging.FromContext(ctx)
//	logger.Info("locating row", "sheet", sheetName, "id", id)
func FromContext(ctx context.Context) *slog.Logger {
	logger := slog.Default()

	if opID := OperationID(ctx); opID != "" {
		logger = logger.With("operation_id", opID)
	}

	return logger
}

// WithFields returns a logger with additional structured fields.
//
// This is useful for creating operation-specific loggers that carry
// consistent context through a multi-step process.
func WithFields(ctx context.Context, args ...any) *slog.Logger {
	return FromContext(ctx).With(args...)
}
