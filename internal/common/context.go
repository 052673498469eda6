package common

import (
	"context"
	"log/slog"
)

type contextKey string

const (
	ContextKeyExtractionID contextKey = "extraction_id"
	ContextKeyLogger       contextKey = "logger"
)

// WithExtractionID adds an extraction ID to the context
func WithExtractionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ContextKeyExtractionID, id)
}

// ExtractionIDFromContext extracts the extraction ID from context
func ExtractionIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(ContextKeyExtractionID).(string); ok {
		return id
	}
	return ""
}

// WithLogger stores a request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ContextKeyLogger, logger)
}

// LoggerFromContext returns the stored logger, or fallback (slog.Default() when nil),
// annotated with the extraction ID when one is present.
func LoggerFromContext(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	logger, ok := ctx.Value(ContextKeyLogger).(*slog.Logger)
	if !ok || logger == nil {
		logger = fallback
	}
	if logger == nil {
		logger = slog.Default()
	}
	if id := ExtractionIDFromContext(ctx); id != "" {
		logger = logger.With("extraction_id", id)
	}
	return logger
}
