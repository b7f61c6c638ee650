package logs

import (
	"context"
	"crypto/rand"
)

// NewSpan starts a span for a job, such as "expand main.go". The span of ctx, if any, becomes its parent.
type NewSpan func(ctx context.Context, job string) (context.Context, Span)

func (Module) NewSpan(
	logger Logger,
) NewSpan {
	return func(ctx context.Context, job string) (context.Context, Span) {
		parent, _ := ctx.Value(SpanKey).(Span)
		span := Span(rand.Text()[:8])
		ctx = context.WithValue(ctx, SpanKey, span)

		args := []any{"job", job}
		if parent != "" {
			args = append(args, "parent", parent)
		}
		logger.DebugContext(ctx, "new span", args...)

		return ctx, span
	}
}
