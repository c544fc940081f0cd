package oteladapters_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"

	"github.com/AntonStoeckl/bookshelf-go/oteladapters"
	"github.com/AntonStoeckl/bookshelf-go/shell"
)

func assertSpanHasAttribute(t *testing.T, span tracetest.SpanStub, key, value string) {
	t.Helper()
	assert.Contains(t, span.Attributes, attribute.String(key, value))
}

func Test_TracingCollector_StartAndFinishSpan(t *testing.T) {
	// arrange
	exporter := tracetest.NewInMemoryExporter()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	collector := oteladapters.NewTracingCollector(provider.Tracer("test"))

	// act
	ctx, spanCtx := collector.StartSpan(context.Background(), shell.SpanNameSinkAdd, map[string]string{"title": "Dune"})
	collector.FinishSpan(spanCtx, shell.StatusSuccess, map[string]string{"duration_ms": "1.00"})

	// assert
	assert.True(t, trace.SpanFromContext(ctx).SpanContext().IsValid())
	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, shell.SpanNameSinkAdd, spans[0].Name)
	assert.Equal(t, codes.Ok, spans[0].Status.Code)
	assertSpanHasAttribute(t, spans[0], "title", "Dune")
	assertSpanHasAttribute(t, spans[0], "duration_ms", "1.00")
}

func Test_TracingCollector_MapsStatuses(t *testing.T) {
	testCases := []struct {
		status   string
		expected codes.Code
	}{
		{status: shell.StatusError, expected: codes.Error},
		{status: shell.StatusCanceled, expected: codes.Error},
		{status: shell.StatusTimeout, expected: codes.Error},
		{status: "something_else", expected: codes.Unset},
	}

	for _, tc := range testCases {
		t.Run(tc.status, func(t *testing.T) {
			// arrange
			exporter := tracetest.NewInMemoryExporter()
			provider := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
			collector := oteladapters.NewTracingCollector(provider.Tracer("test"))

			// act
			_, spanCtx := collector.StartSpan(context.Background(), "op", nil)
			collector.FinishSpan(spanCtx, tc.status, nil)

			// assert
			spans := exporter.GetSpans()
			require.Len(t, spans, 1)
			assert.Equal(t, tc.expected, spans[0].Status.Code)
		})
	}
}

func Test_TracingCollector_IgnoresForeignSpanContext(t *testing.T) {
	// arrange
	exporter := tracetest.NewInMemoryExporter()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	collector := oteladapters.NewTracingCollector(provider.Tracer("test"))

	// act + assert
	assert.NotPanics(t, func() { collector.FinishSpan(nil, shell.StatusSuccess, nil) })
	assert.Empty(t, exporter.GetSpans())
}
