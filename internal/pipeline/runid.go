package pipeline

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/resumekit/pkg/logger"
)

type runIDKey struct{}

// WithRunID stores id as the run ID of ctx.
func WithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey{}, id)
}

// RunIDFromContext returns the run ID stored in ctx, or "".
func RunIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(runIDKey{}).(string)
	return id
}

// RunIDExtractor adds run_id to every log record made with a run context.
func RunIDExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id := RunIDFromContext(ctx); id != "" {
			return logger.RunID(id), true
		}
		return slog.Attr{}, false
	}
}

// ensureRunID keeps an existing run ID, such as one derived from an HTTP
// request, and otherwise generates a new one.
func ensureRunID(ctx context.Context) (context.Context, string) {
	if id := RunIDFromContext(ctx); id != "" {
		return ctx, id
	}
	id := uuid.NewString()
	return WithRunID(ctx, id), id
}
