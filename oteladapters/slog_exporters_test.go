package oteladapters_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/AntonStoeckl/bookshelf-go/oteladapters"
	"github.com/AntonStoeckl/bookshelf-go/shell"
	"github.com/AntonStoeckl/bookshelf-go/testutil/spies"
)

func Test_SlogSpanExporter_LogsFinishedSpans(t *testing.T) {
	// arrange
	handler := spies.NewLogHandlerSpy(false)
	provider := sdktrace.NewTracerProvider(sdktrace.WithSyncer(oteladapters.NewSlogSpanExporter(slog.New(handler))))
	collector := oteladapters.NewTracingCollector(provider.Tracer("test"))

	// act
	_, span := collector.StartSpan(context.Background(), shell.SpanNameSinkAdd, map[string]string{"title": "Dune"})
	collector.FinishSpan(span, shell.StatusSuccess, nil)

	// assert
	name, found := handler.AttrOf(slog.LevelDebug, "span finished", "span")
	require.True(t, found)
	assert.Equal(t, shell.SpanNameSinkAdd, name.String())
}

func Test_LogMetrics_WritesOneLinePerDataPoint(t *testing.T) {
	// arrange
	handler := spies.NewLogHandlerSpy(false)
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	collector := oteladapters.NewMetricsCollector(provider.Meter("test"))

	collector.IncrementCounter(shell.SinkAddCallsMetric, map[string]string{"status": "success"})
	collector.RecordDuration(shell.SinkAddDurationMetric, time.Millisecond, map[string]string{"status": "success"})

	// act
	err := oteladapters.LogMetrics(context.Background(), reader, slog.New(handler))

	// assert
	require.NoError(t, err)
	assert.Equal(t, 2, handler.RecordCount())
}

func Test_LogMetrics_ShouldFail_WithNilReader(t *testing.T) {
	err := oteladapters.LogMetrics(context.Background(), nil, slog.Default())

	assert.ErrorIs(t, err, oteladapters.ErrNilReader)
}
