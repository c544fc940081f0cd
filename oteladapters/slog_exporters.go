package oteladapters

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/log"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	logMsgSpanFinished    = "span finished"
	logMsgMetricDataPoint = "metric data point"
	logAttrSpanName       = "span"
	logAttrTraceID        = "trace_id"
	logAttrSpanID         = "span_id"
	logAttrSpanStatus     = "span_status"
	logAttrDurationMS     = "duration_ms"
	logAttrMetric         = "metric"
	logAttrCount          = "count"
	logAttrSum            = "sum"
	logAttrValue          = "value"
	logAttrAttributes     = "attributes"
)

// ErrNilReader is returned by LogMetrics when no reader is given.
var ErrNilReader = errors.New("metric reader must not be nil")

// SlogSpanExporter is an sdktrace.SpanExporter that writes every finished span as one debug log line.
type SlogSpanExporter struct {
	logger *slog.Logger
}

// NewSlogSpanExporter creates a SlogSpanExporter writing to logger.
func NewSlogSpanExporter(logger *slog.Logger) *SlogSpanExporter {
	return &SlogSpanExporter{logger: logger}
}

// ExportSpans implements sdktrace.SpanExporter.
func (e *SlogSpanExporter) ExportSpans(ctx context.Context, spans []sdktrace.ReadOnlySpan) error {
	for _, span := range spans {
		attrs := make([]any, 0, 2*len(span.Attributes()))
		for _, kv := range span.Attributes() {
			attrs = append(attrs, string(kv.Key), kv.Value.Emit())
		}

		e.logger.DebugContext(
			ctx,
			logMsgSpanFinished,
			logAttrSpanName, span.Name(),
			logAttrTraceID, span.SpanContext().TraceID().String(),
			logAttrSpanStatus, span.Status().Code.String(),
			logAttrDurationMS, float64(span.EndTime().Sub(span.StartTime()).Nanoseconds())/1e6,
			slog.Group(logAttrAttributes, attrs...),
		)
	}

	return nil
}

// Shutdown implements sdktrace.SpanExporter.
func (e *SlogSpanExporter) Shutdown(context.Context) error {
	return nil
}

var _ sdktrace.SpanExporter = (*SlogSpanExporter)(nil)

// LogMetrics collects all metrics from reader and writes one info log line per data point.
func LogMetrics(ctx context.Context, reader *sdkmetric.ManualReader, logger *slog.Logger) error {
	if reader == nil {
		return ErrNilReader
	}

	var resourceMetrics metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &resourceMetrics); err != nil {
		return err
	}

	for _, scopeMetrics := range resourceMetrics.ScopeMetrics {
		for _, m := range scopeMetrics.Metrics {
			logMetric(ctx, logger, m)
		}
	}

	return nil
}

func logMetric(ctx context.Context, logger *slog.Logger, m metricdata.Metrics) {
	switch data := m.Data.(type) {
	case metricdata.Sum[int64]:
		for _, dp := range data.DataPoints {
			logger.InfoContext(ctx, logMsgMetricDataPoint,
				logAttrMetric, m.Name, logAttrValue, dp.Value, logAttrAttributes, dp.Attributes.Encoded(attribute.DefaultEncoder()))
		}

	case metricdata.Histogram[float64]:
		for _, dp := range data.DataPoints {
			logger.InfoContext(ctx, logMsgMetricDataPoint,
				logAttrMetric, m.Name, logAttrCount, dp.Count, logAttrSum, dp.Sum, logAttrAttributes, dp.Attributes.Encoded(attribute.DefaultEncoder()))
		}

	case metricdata.Gauge[float64]:
		for _, dp := range data.DataPoints {
			logger.InfoContext(ctx, logMsgMetricDataPoint,
				logAttrMetric, m.Name, logAttrValue, dp.Value, logAttrAttributes, dp.Attributes.Encoded(attribute.DefaultEncoder()))
		}
	}
}

// SlogLogExporter is an sdklog.Exporter that writes every OpenTelemetry log record to slog,
// keeping its severity, attributes and the trace and span IDs it was emitted under.
type SlogLogExporter struct {
	logger *slog.Logger
}

// NewSlogLogExporter creates a SlogLogExporter writing to logger.
func NewSlogLogExporter(logger *slog.Logger) *SlogLogExporter {
	return &SlogLogExporter{logger: logger}
}

// Export implements sdklog.Exporter.
func (e *SlogLogExporter) Export(ctx context.Context, records []sdklog.Record) error {
	for _, record := range records {
		args := make([]any, 0, 2*record.AttributesLen()+4)
		record.WalkAttributes(func(kv log.KeyValue) bool {
			args = append(args, kv.Key, kv.Value.String())
			return true
		})

		if record.TraceID().IsValid() {
			args = append(args, logAttrTraceID, record.TraceID().String(), logAttrSpanID, record.SpanID().String())
		}

		e.logger.Log(ctx, slogLevelOf(record.Severity()), record.Body().String(), args...)
	}

	return nil
}

// Shutdown implements sdklog.Exporter.
func (e *SlogLogExporter) Shutdown(context.Context) error {
	return nil
}

// ForceFlush implements sdklog.Exporter.
func (e *SlogLogExporter) ForceFlush(context.Context) error {
	return nil
}

var _ sdklog.Exporter = (*SlogLogExporter)(nil)

func slogLevelOf(severity log.Severity) slog.Level {
	switch {
	case severity >= log.SeverityError:
		return slog.LevelError
	case severity >= log.SeverityWarn:
		return slog.LevelWarn
	case severity >= log.SeverityInfo:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}
