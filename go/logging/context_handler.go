package logging

import (
	"context"
	"log/slog"
)

type fieldsKey struct{}

// ContextWithFields returns a context whose key-value pairs are injected into
// every record logged through a ContextHandler. Pairs alternate key and value,
// as in slog. Fields accumulate across nested calls.
func ContextWithFields(ctx context.Context, pairs ...any) context.Context {
	existing, _ := ctx.Value(fieldsKey{}).([]any)
	merged := make([]any, 0, len(existing)+len(pairs))
	merged = append(merged, existing...)
	merged = append(merged, pairs...)
	return context.WithValue(ctx, fieldsKey{}, merged)
}

// ContextHandler wraps an slog.Handler and injects context fields before logging.
type ContextHandler struct {
	handler slog.Handler
}

// NewContextHandler creates a handler that injects context fields before delegating to the wrapped handler.
func NewContextHandler(handler slog.Handler) *ContextHandler {
	return &ContextHandler{handler: handler}
}

func (h *ContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

func (h *ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if pairs, ok := ctx.Value(fieldsKey{}).([]any); ok {
		for i := 0; i+1 < len(pairs); i += 2 {
			key, ok := pairs[i].(string)
			if !ok {
				continue
			}
			r.AddAttrs(slog.Any(key, pairs[i+1]))
		}
	}
	return h.handler.Handle(ctx, r)
}

func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return NewContextHandler(h.handler.WithAttrs(attrs))
}

func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return NewContextHandler(h.handler.WithGroup(name))
}
