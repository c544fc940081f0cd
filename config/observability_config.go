package config

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/log/global"
	"go.opentelemetry.io/otel/propagation"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/AntonStoeckl/bookshelf-go/oteladapters"
)

const (
	serviceName           = "bookshelf"
	serviceVersion        = "dev"
	notificationScopeName = "bookshelf.notifications"
	otlpExportInterval    = 5 * time.Second
)

// ObservabilityProviders holds the OpenTelemetry providers of the bookshelf demo.
// Finished spans and log records are written to the slog logger immediately;
// metrics are logged on FlushMetrics.
type ObservabilityProviders struct {
	TracerProvider *sdktrace.TracerProvider
	MeterProvider  *sdkmetric.MeterProvider
	LoggerProvider *sdklog.LoggerProvider
	reader         *sdkmetric.ManualReader
	logger         *slog.Logger
}

// NewObservabilityProviders creates tracer and meter providers that report through logger
// and registers them as the global OpenTelemetry providers.
// With a non-empty otlpEndpoint, spans, metrics and log records are additionally exported over OTLP/gRPC.
func NewObservabilityProviders(ctx context.Context, logger *slog.Logger, otlpEndpoint string) (*ObservabilityProviders, error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(serviceName),
			semconv.ServiceVersionKey.String(serviceVersion),
		),
	)
	if err != nil {
		return nil, err
	}

	reader := sdkmetric.NewManualReader()
	traceOpts := []sdktrace.TracerProviderOption{
		sdktrace.WithSyncer(oteladapters.NewSlogSpanExporter(logger)),
		sdktrace.WithResource(res),
	}
	metricOpts := []sdkmetric.Option{
		sdkmetric.WithReader(reader),
		sdkmetric.WithResource(res),
	}
	logOpts := []sdklog.LoggerProviderOption{
		sdklog.WithProcessor(sdklog.NewSimpleProcessor(oteladapters.NewSlogLogExporter(logger))),
		sdklog.WithResource(res),
	}

	if otlpEndpoint != "" {
		otlpOpts, err := otlpExporterOptions(ctx, otlpEndpoint, grpcExporterFactories)
		if err != nil {
			return nil, err
		}

		traceOpts = append(traceOpts, otlpOpts.trace)
		metricOpts = append(metricOpts, otlpOpts.metric)
		logOpts = append(logOpts, otlpOpts.log)
	}

	tracerProvider := sdktrace.NewTracerProvider(traceOpts...)
	meterProvider := sdkmetric.NewMeterProvider(metricOpts...)
	loggerProvider := sdklog.NewLoggerProvider(logOpts...)

	otel.SetTracerProvider(tracerProvider)
	otel.SetMeterProvider(meterProvider)
	global.SetLoggerProvider(loggerProvider)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return &ObservabilityProviders{
		TracerProvider: tracerProvider,
		MeterProvider:  meterProvider,
		LoggerProvider: loggerProvider,
		reader:         reader,
		logger:         logger,
	}, nil
}

type otlpProviderOptions struct {
	trace  sdktrace.TracerProviderOption
	metric sdkmetric.Option
	log    sdklog.LoggerProviderOption
}

type otlpExporterFactories struct {
	trace  func(ctx context.Context, endpoint string) (sdktrace.SpanExporter, error)
	metric func(ctx context.Context, endpoint string) (sdkmetric.Exporter, error)
	log    func(ctx context.Context, endpoint string) (sdklog.Exporter, error)
}

var grpcExporterFactories = otlpExporterFactories{
	trace: func(ctx context.Context, endpoint string) (sdktrace.SpanExporter, error) {
		return otlptracegrpc.New(ctx, otlptracegrpc.WithEndpoint(endpoint), otlptracegrpc.WithInsecure())
	},
	metric: func(ctx context.Context, endpoint string) (sdkmetric.Exporter, error) {
		return otlpmetricgrpc.New(ctx, otlpmetricgrpc.WithEndpoint(endpoint), otlpmetricgrpc.WithInsecure())
	},
	log: func(ctx context.Context, endpoint string) (sdklog.Exporter, error) {
		return otlploggrpc.New(ctx, otlploggrpc.WithEndpoint(endpoint), otlploggrpc.WithInsecure())
	},
}

// otlpExporterOptions creates the three OTLP exporters.
// Exporters created before a failing one are shut down again.
func otlpExporterOptions(ctx context.Context, endpoint string, factories otlpExporterFactories) (otlpProviderOptions, error) {
	traceExporter, err := factories.trace(ctx, endpoint)
	if err != nil {
		return otlpProviderOptions{}, err
	}

	metricExporter, err := factories.metric(ctx, endpoint)
	if err != nil {
		return otlpProviderOptions{}, errors.Join(err, traceExporter.Shutdown(ctx))
	}

	logExporter, err := factories.log(ctx, endpoint)
	if err != nil {
		return otlpProviderOptions{}, errors.Join(err, traceExporter.Shutdown(ctx), metricExporter.Shutdown(ctx))
	}

	return otlpProviderOptions{
		trace:  sdktrace.WithBatcher(traceExporter),
		metric: sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExporter, sdkmetric.WithInterval(otlpExportInterval))),
		log:    sdklog.WithProcessor(sdklog.NewBatchProcessor(logExporter)),
	}, nil
}

// MetricsCollector returns a collector recording into the meter provider.
func (p *ObservabilityProviders) MetricsCollector() *oteladapters.MetricsCollector {
	return oteladapters.NewMetricsCollector(p.MeterProvider.Meter(serviceName))
}

// TracingCollector returns a collector starting spans on the tracer provider.
func (p *ObservabilityProviders) TracingCollector() *oteladapters.TracingCollector {
	return oteladapters.NewTracingCollector(p.TracerProvider.Tracer(serviceName))
}

// ContextualLogger returns a logger bridging slog calls into the logger provider,
// correlated with the span found in the context.
func (p *ObservabilityProviders) ContextualLogger() *oteladapters.SlogBridgeLogger {
	return oteladapters.NewSlogBridgeLoggerWithProvider(serviceName, p.LoggerProvider)
}

// NotificationLogger returns a logger emitting catalog notifications as OpenTelemetry log records.
func (p *ObservabilityProviders) NotificationLogger() *oteladapters.OTelLogger {
	return oteladapters.NewOTelLogger(p.LoggerProvider.Logger(notificationScopeName))
}

// FlushMetrics logs the current value of every metric.
func (p *ObservabilityProviders) FlushMetrics(ctx context.Context) error {
	return oteladapters.LogMetrics(ctx, p.reader, p.logger)
}

// Shutdown shuts down all three providers, reporting every error.
func (p *ObservabilityProviders) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return errors.Join(
		p.TracerProvider.Shutdown(ctx),
		p.MeterProvider.Shutdown(ctx),
		p.LoggerProvider.Shutdown(ctx),
	)
}
