package shell_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/bookshelf-go/shell"
	"github.com/AntonStoeckl/bookshelf-go/testutil/spies"
)

func Test_StatusFromContext(t *testing.T) {
	canceled, cancel := context.WithCancel(context.Background())
	cancel()

	timedOut, cancelTimeout := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancelTimeout()

	assert.Equal(t, shell.StatusSuccess, shell.StatusFromContext(context.Background()))
	assert.Equal(t, shell.StatusCanceled, shell.StatusFromContext(canceled))
	assert.Equal(t, shell.StatusTimeout, shell.StatusFromContext(timedOut))
}

func Test_RecordSinkMetrics_UsesContextualCollector(t *testing.T) {
	// arrange
	metrics := spies.NewMetricsCollectorSpy()

	// act
	shell.RecordSinkMetrics(context.Background(), metrics, "repository", shell.StatusCanceled, time.Millisecond)

	// assert
	assert.True(t, metrics.HasDurationRecord(shell.SinkAddDurationMetric))
	assert.True(t, metrics.HasCounterRecord(shell.SinkAddCallsMetric))
	assert.True(t, metrics.HasCounterRecord(shell.SinkAddCanceledMetric))
	assert.False(t, metrics.HasCounterRecord(shell.SinkAddTimeoutMetric))
	assert.Equal(t, 3, metrics.ContextualCalls())

	counters := metrics.CounterRecords()
	require.NotEmpty(t, counters)
	assert.Equal(t, map[string]string{shell.LogAttrSink: "repository", shell.LogAttrStatus: shell.StatusCanceled}, counters[0].Labels)
}

func Test_RecordSinkMetrics_IgnoresNilCollector(t *testing.T) {
	assert.NotPanics(t, func() {
		shell.RecordSinkMetrics(context.Background(), nil, "repository", shell.StatusSuccess, time.Millisecond)
	})
}

func Test_SinkSpan_StartAndFinish(t *testing.T) {
	// arrange
	tracing := spies.NewTracingCollectorSpy()

	// act
	_, span := shell.StartSinkSpan(context.Background(), tracing, "repository", "Dune")
	shell.FinishSinkSpan(tracing, span, shell.StatusError, 2*time.Millisecond, errors.New("boom"))

	// assert
	records := tracing.SpanRecords()
	require.Len(t, records, 1)
	assert.Equal(t, shell.SpanNameSinkAdd, records[0].Name)
	assert.Equal(t, "Dune", records[0].StartAttributes[shell.LogAttrTitle])
	assert.True(t, records[0].Finished)
	assert.Equal(t, shell.StatusError, records[0].Status)
	assert.Equal(t, "boom", records[0].EndAttributes[shell.LogAttrError])
	assert.Equal(t, "2.00", records[0].EndAttributes[shell.LogAttrDurationMS])
}
