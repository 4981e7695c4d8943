package logging

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldCorrelationID ties together every line of one invocation.
	FieldCorrelationID = "correlation_id"
	// FieldDate is the civil date a computation ran for.
	FieldDate = "date"
	// FieldLatitude and FieldLongitude carry the observer position.
	FieldLatitude  = "latitude"
	FieldLongitude = "longitude"
)

type correlationKey struct{}

// WithCorrelationID stores a fresh invocation id on ctx, keeping any id
// already present.
func WithCorrelationID(ctx context.Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if _, ok := CorrelationID(ctx); ok {
		return ctx
	}
	return context.WithValue(ctx, correlationKey{}, uuid.NewString())
}

// CorrelationID returns the invocation id stored on ctx.
func CorrelationID(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(correlationKey{}).(string)
	return id, ok && id != ""
}

// WithContext returns a logger augmented with the correlation id from ctx.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	if id, ok := CorrelationID(ctx); ok {
		return logger.With(slog.String(FieldCorrelationID, id))
	}
	return logger
}
