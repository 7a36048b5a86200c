package slogx

import (
	"context"
	"log/slog"
)

type contextKey string

const (
	slogFields contextKey = "slogFields"
)

// ContextHandler appends the attributes attached to the context with
// WithAttrs to every record it handles.
type ContextHandler struct {
	slog.Handler
}

func (h ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	r.AddAttrs(Attrs(ctx)...)
	return h.Handler.Handle(ctx, r)
}

func WithAttrs(parent context.Context, attrs ...slog.Attr) context.Context {
	if parent == nil {
		parent = context.Background()
	}

	existing := Attrs(parent)

	v := make([]slog.Attr, 0, len(existing)+len(attrs))
	v = append(v, existing...)
	v = append(v, attrs...)

	return context.WithValue(parent, slogFields, v)
}

func Attrs(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}

	attrs, _ := ctx.Value(slogFields).([]slog.Attr)

	return attrs
}
