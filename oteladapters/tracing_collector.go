package oteladapters

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/AntonStoeckl/bookshelf-go/shell"
)

// TracingCollector implements shell.TracingCollector using the OpenTelemetry tracing API.
type TracingCollector struct {
	tracer trace.Tracer
}

// NewTracingCollector creates a new OpenTelemetry tracing collector.
// The tracer should be created from your OpenTelemetry TracerProvider.
func NewTracingCollector(tracer trace.Tracer) *TracingCollector {
	return &TracingCollector{tracer: tracer}
}

// StartSpan starts a span with the given attributes and returns the context carrying it.
func (t *TracingCollector) StartSpan(ctx context.Context, name string, attrs map[string]string) (context.Context, shell.SpanContext) {
	spanCtx, span := t.tracer.Start(ctx, name, trace.WithAttributes(attrsFrom(attrs)...))

	return spanCtx, &SpanContext{span: span}
}

// FinishSpan sets the final attributes and status, then ends the span.
// Spans that were not started by a TracingCollector are ignored.
func (t *TracingCollector) FinishSpan(spanCtx shell.SpanContext, status string, attrs map[string]string) {
	otelSpanCtx, ok := spanCtx.(*SpanContext)
	if !ok {
		return
	}

	otelSpanCtx.span.SetAttributes(attrsFrom(attrs)...)
	otelSpanCtx.SetStatus(status)
	otelSpanCtx.span.End()
}

var _ shell.TracingCollector = (*TracingCollector)(nil)

// SpanContext implements shell.SpanContext by wrapping an OpenTelemetry span.
type SpanContext struct {
	span trace.Span
}

// SetStatus maps a status string to an OpenTelemetry status code.
// Unknown statuses are recorded as a "status" attribute.
func (s *SpanContext) SetStatus(status string) {
	switch status {
	case shell.StatusSuccess:
		s.span.SetStatus(codes.Ok, "")
	case shell.StatusError:
		s.span.SetStatus(codes.Error, "Operation failed")
	case shell.StatusCanceled:
		s.span.SetStatus(codes.Error, "Operation canceled")
	case shell.StatusTimeout:
		s.span.SetStatus(codes.Error, "Operation timed out")
	default:
		s.span.SetAttributes(attribute.String(shell.LogAttrStatus, status))
	}
}

// AddAttribute adds an attribute to the span.
func (s *SpanContext) AddAttribute(key, value string) {
	s.span.SetAttributes(attribute.String(key, value))
}

var _ shell.SpanContext = (*SpanContext)(nil)
