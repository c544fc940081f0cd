package shell

import (
	"context"
	"errors"
	"fmt"
	"time"
)

const (
	// SinkAddDurationMetric tracks BookSink.Add execution duration (OpenTelemetry-compatible).
	SinkAddDurationMetric = "catalog_sink_add_duration_seconds"

	// SinkAddCallsMetric tracks total BookSink.Add calls.
	SinkAddCallsMetric = "catalog_sink_add_calls_total"

	// SinkAddCanceledMetric tracks Add calls whose context was canceled.
	SinkAddCanceledMetric = "catalog_sink_add_canceled_total"

	// SinkAddTimeoutMetric tracks Add calls whose context deadline was exceeded.
	SinkAddTimeoutMetric = "catalog_sink_add_timeout_total"

	// StatusSuccess indicates a completed operation.
	StatusSuccess = "success"

	// StatusError indicates a failed operation.
	StatusError = "error"

	// StatusCanceled indicates the operation ended with a canceled context.
	StatusCanceled = "canceled"

	// StatusTimeout indicates the operation ended with an exceeded context deadline.
	StatusTimeout = "timeout"

	// LogMsgSinkAddStarted is logged when adding a book through a sink begins.
	LogMsgSinkAddStarted = "catalog sink add started"

	// LogMsgSinkAddCompleted is logged when adding a book through a sink returns.
	LogMsgSinkAddCompleted = "catalog sink add completed"

	// LogMsgSinkAddAborted is logged when the context ended while adding a book.
	LogMsgSinkAddAborted = "catalog sink add aborted"

	// LogAttrSink identifies the wrapped sink in logs.
	LogAttrSink = "sink"

	// LogAttrTitle identifies the book title in logs.
	LogAttrTitle = "title"

	// LogAttrStatus indicates the processing status.
	LogAttrStatus = "status"

	// LogAttrDurationMS indicates the processing duration in milliseconds.
	LogAttrDurationMS = "duration_ms"

	// LogAttrError contains error details.
	LogAttrError = "error"

	// SpanNameSinkAdd is the tracing span name for adding a book through a sink.
	SpanNameSinkAdd = "catalog.sink.add"
)

// Logger is the basic logging interface, satisfied by *slog.Logger.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// ContextualLogger is the context-aware logging interface, satisfied by *slog.Logger.
// Implementations can extract trace IDs or request-scoped values from the context.
type ContextualLogger interface {
	DebugContext(ctx context.Context, msg string, args ...any)
	InfoContext(ctx context.Context, msg string, args ...any)
	WarnContext(ctx context.Context, msg string, args ...any)
	ErrorContext(ctx context.Context, msg string, args ...any)
}

// MetricsCollector records durations, counters and values under a metric name with labels.
type MetricsCollector interface {
	RecordDuration(metric string, duration time.Duration, labels map[string]string)
	IncrementCounter(metric string, labels map[string]string)
	RecordValue(metric string, value float64, labels map[string]string)
}

// ContextualMetricsCollector extends MetricsCollector with context-aware methods,
// e.g. to attach exemplars from the active trace.
type ContextualMetricsCollector interface {
	MetricsCollector
	RecordDurationContext(ctx context.Context, metric string, duration time.Duration, labels map[string]string)
	IncrementCounterContext(ctx context.Context, metric string, labels map[string]string)
	RecordValueContext(ctx context.Context, metric string, value float64, labels map[string]string)
}

// SpanContext represents an active tracing span.
type SpanContext interface {
	SetStatus(status string)
	AddAttribute(key, value string)
}

// TracingCollector starts and finishes tracing spans.
type TracingCollector interface {
	StartSpan(ctx context.Context, name string, attrs map[string]string) (context.Context, SpanContext)
	FinishSpan(spanCtx SpanContext, status string, attrs map[string]string)
}

// BuildSinkLabels creates standard metric labels for sink operations.
func BuildSinkLabels(sink, status string) map[string]string {
	return map[string]string{
		LogAttrSink:   sink,
		LogAttrStatus: status,
	}
}

// ToMilliseconds converts a time.Duration to float64 milliseconds with precision.
func ToMilliseconds(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1e6
}

// StatusFromContext classifies how an operation ended by looking at its context.
func StatusFromContext(ctx context.Context) string {
	switch {
	case IsCancellationError(ctx.Err()):
		return StatusCanceled
	case IsTimeoutError(ctx.Err()):
		return StatusTimeout
	default:
		return StatusSuccess
	}
}

// RecordSinkMetrics records all relevant metrics for one Add call.
// It handles both context-aware and basic metrics collectors automatically.
func RecordSinkMetrics(
	ctx context.Context,
	collector MetricsCollector,
	sink string,
	status string,
	duration time.Duration,
) {
	if collector == nil {
		return
	}

	labels := BuildSinkLabels(sink, status)
	recordDuration(ctx, collector, SinkAddDurationMetric, duration, labels)
	incrementCounter(ctx, collector, SinkAddCallsMetric, labels)

	switch status {
	case StatusCanceled:
		incrementCounter(ctx, collector, SinkAddCanceledMetric, BuildSinkLabels(sink, StatusCanceled))
	case StatusTimeout:
		incrementCounter(ctx, collector, SinkAddTimeoutMetric, BuildSinkLabels(sink, StatusTimeout))
	}
}

// StartSinkSpan starts a distributed tracing span for an Add call.
// Returns the updated context and span context, or the given context and nil if tracing is disabled.
func StartSinkSpan(
	ctx context.Context,
	tracingCollector TracingCollector,
	sink string,
	title string,
) (context.Context, SpanContext) {
	if tracingCollector == nil {
		return ctx, nil
	}

	attrs := map[string]string{
		LogAttrSink:  sink,
		LogAttrTitle: title,
	}

	return tracingCollector.StartSpan(ctx, SpanNameSinkAdd, attrs)
}

// FinishSinkSpan completes a distributed tracing span with the operation outcome.
func FinishSinkSpan(
	tracingCollector TracingCollector,
	span SpanContext,
	status string,
	duration time.Duration,
	err error,
) {
	if tracingCollector == nil || span == nil {
		return
	}

	attrs := map[string]string{
		LogAttrStatus:     status,
		LogAttrDurationMS: formatDurationMS(duration),
	}

	if err != nil {
		attrs[LogAttrError] = err.Error()
	}

	tracingCollector.FinishSpan(span, status, attrs)
}

// LogSinkStart logs the beginning of an Add call.
func LogSinkStart(
	ctx context.Context,
	logger Logger,
	contextualLogger ContextualLogger,
	sink string,
	title string,
) {
	if contextualLogger != nil {
		contextualLogger.InfoContext(ctx, LogMsgSinkAddStarted, LogAttrSink, sink, LogAttrTitle, title)
	} else if logger != nil {
		logger.Info(LogMsgSinkAddStarted, LogAttrSink, sink, LogAttrTitle, title)
	}
}

// LogSinkSuccess logs a completed Add call.
func LogSinkSuccess(
	ctx context.Context,
	logger Logger,
	contextualLogger ContextualLogger,
	sink string,
	duration time.Duration,
) {
	args := []any{
		LogAttrSink, sink,
		LogAttrStatus, StatusSuccess,
		LogAttrDurationMS, ToMilliseconds(duration),
	}

	if contextualLogger != nil {
		contextualLogger.InfoContext(ctx, LogMsgSinkAddCompleted, args...)
	} else if logger != nil {
		logger.Info(LogMsgSinkAddCompleted, args...)
	}
}

// LogSinkAborted logs an Add call whose context ended before or while it ran.
func LogSinkAborted(
	ctx context.Context,
	logger Logger,
	contextualLogger ContextualLogger,
	sink string,
	status string,
	err error,
) {
	args := []any{
		LogAttrSink, sink,
		LogAttrStatus, status,
		LogAttrError, err.Error(),
	}

	if contextualLogger != nil {
		contextualLogger.WarnContext(ctx, LogMsgSinkAddAborted, args...)
	} else if logger != nil {
		logger.Warn(LogMsgSinkAddAborted, args...)
	}
}

// IsCancellationError checks if an error is due to context cancellation.
func IsCancellationError(err error) bool {
	return errors.Is(err, context.Canceled)
}

// IsTimeoutError checks if an error is due to context deadline exceeded.
func IsTimeoutError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}

func recordDuration(ctx context.Context, collector MetricsCollector, metric string, d time.Duration, labels map[string]string) {
	if contextualCollector, ok := collector.(ContextualMetricsCollector); ok {
		contextualCollector.RecordDurationContext(ctx, metric, d, labels)
		return
	}

	collector.RecordDuration(metric, d, labels)
}

func incrementCounter(ctx context.Context, collector MetricsCollector, metric string, labels map[string]string) {
	if contextualCollector, ok := collector.(ContextualMetricsCollector); ok {
		contextualCollector.IncrementCounterContext(ctx, metric, labels)
		return
	}

	collector.IncrementCounter(metric, labels)
}

// formatDurationMS formats duration in milliseconds for span attributes.
func formatDurationMS(duration time.Duration) string {
	return fmt.Sprintf("%.2f", ToMilliseconds(duration))
}
