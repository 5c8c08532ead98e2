package ipapi

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// addSpan starts a span on the client's tracer, returning it and the
// context. Without a configured tracer it returns a noop span the
// client owns; ending that is harmless and any span already living in
// the caller's context stays untouched.
func (c *Client) addSpan(ctx context.Context, spanName string, keyValues ...attribute.KeyValue) (context.Context, trace.Span) {
	if c.tracer == nil {
		return ctx, noop.Span{}
	}

	ctx, span := c.tracer.Start(ctx, spanName)
	span.SetAttributes(keyValues...)

	return ctx, span
}
