package observable

import (
	"context"
	"errors"
	"time"

	"github.com/AntonStoeckl/bookshelf-go/catalog"
	"github.com/AntonStoeckl/bookshelf-go/core"
	"github.com/AntonStoeckl/bookshelf-go/shell"
)

var (
	// ErrNilSink is returned when no sink is given to wrap.
	ErrNilSink = errors.New("sink to wrap must not be nil")

	// ErrEmptySinkName is returned when the sink name is empty.
	ErrEmptySinkName = errors.New("sink name must not be empty")
)

// SinkWrapper instruments a catalog.BookSink with metrics, tracing and logging
// while delegating every call unchanged to the wrapped sink.
type SinkWrapper struct {
	inner            catalog.BookSink
	sinkName         string
	metricsCollector shell.MetricsCollector
	tracingCollector shell.TracingCollector
	contextualLogger shell.ContextualLogger
	logger           shell.Logger
}

// Option defines a functional option for configuring SinkWrapper.
type Option func(*SinkWrapper) error

// NewSinkWrapper creates a new observable wrapper around inner.
// The sinkName is used as the "sink" label and attribute.
func NewSinkWrapper(inner catalog.BookSink, sinkName string, opts ...Option) (*SinkWrapper, error) {
	if inner == nil {
		return nil, ErrNilSink
	}

	if sinkName == "" {
		return nil, ErrEmptySinkName
	}

	wrapper := &SinkWrapper{
		inner:    inner,
		sinkName: sinkName,
	}

	for _, opt := range opts {
		if err := opt(wrapper); err != nil {
			return nil, err
		}
	}

	return wrapper, nil
}

// Add delegates to the wrapped sink exactly once and records how the call ended.
func (w *SinkWrapper) Add(ctx context.Context, book core.Book) {
	start := time.Now()
	ctx, span := shell.StartSinkSpan(ctx, w.tracingCollector, w.sinkName, book.Title())
	shell.LogSinkStart(ctx, w.logger, w.contextualLogger, w.sinkName, book.Title())

	w.inner.Add(ctx, book)

	duration := time.Since(start)
	status := shell.StatusFromContext(ctx)

	shell.RecordSinkMetrics(ctx, w.metricsCollector, w.sinkName, status, duration)
	shell.FinishSinkSpan(w.tracingCollector, span, status, duration, ctx.Err())

	if status == shell.StatusSuccess {
		shell.LogSinkSuccess(ctx, w.logger, w.contextualLogger, w.sinkName, duration)
		return
	}

	shell.LogSinkAborted(ctx, w.logger, w.contextualLogger, w.sinkName, status, ctx.Err())
}

// WithMetrics sets the metrics collector for the SinkWrapper.
func WithMetrics(collector shell.MetricsCollector) Option {
	return func(w *SinkWrapper) error {
		w.metricsCollector = collector
		return nil
	}
}

// WithTracing sets the tracing collector for the SinkWrapper.
func WithTracing(collector shell.TracingCollector) Option {
	return func(w *SinkWrapper) error {
		w.tracingCollector = collector
		return nil
	}
}

// WithContextualLogging sets the contextual logger for the SinkWrapper.
func WithContextualLogging(logger shell.ContextualLogger) Option {
	return func(w *SinkWrapper) error {
		w.contextualLogger = logger
		return nil
	}
}

// WithLogging sets the basic logger for the SinkWrapper.
func WithLogging(logger shell.Logger) Option {
	return func(w *SinkWrapper) error {
		w.logger = logger
		return nil
	}
}

var _ catalog.BookSink = (*SinkWrapper)(nil)
