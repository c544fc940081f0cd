package library

import (
	"errors"
	"time"

	"github.com/AntonStoeckl/bookshelf-go/catalog/guard"
	"github.com/AntonStoeckl/bookshelf-go/shell"
)

var (
	// ErrNilNotifier is returned when WithNotifier receives nil.
	ErrNilNotifier = errors.New("notifier must not be nil")

	// ErrNilAuthorizer is returned when WithAuthorizer receives nil.
	ErrNilAuthorizer = errors.New("authorizer must not be nil")

	// ErrNilClock is returned when WithClock receives nil.
	ErrNilClock = errors.New("clock must not be nil")
)

// Option defines a functional option for configuring a Library built with New.
type Option func(*settings) error

type settings struct {
	notifier         shell.Notifier
	authorizer       guard.Authorizer
	now              func() time.Time
	logger           shell.Logger
	contextualLogger shell.ContextualLogger
	metricsCollector shell.MetricsCollector
	tracingCollector shell.TracingCollector
}

// WithNotifier sets the notifier all components deliver to. Default: a silent LogNotifier.
func WithNotifier(notifier shell.Notifier) Option {
	return func(s *settings) error {
		if notifier == nil {
			return ErrNilNotifier
		}

		s.notifier = notifier

		return nil
	}
}

// WithAuthorizer sets the Authorizer of the Proxy. Default: guard.AllowAll.
func WithAuthorizer(authorizer guard.Authorizer) Option {
	return func(s *settings) error {
		if authorizer == nil {
			return ErrNilAuthorizer
		}

		s.authorizer = authorizer

		return nil
	}
}

// WithClock sets the time source of every notification. Default: time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *settings) error {
		if now == nil {
			return ErrNilClock
		}

		s.now = now

		return nil
	}
}

// WithLogger sets the basic logger used by all components to report delivery errors.
func WithLogger(logger shell.Logger) Option {
	return func(s *settings) error {
		s.logger = logger
		return nil
	}
}

// WithContextualLogger sets the contextual logger used by all components to report delivery errors.
func WithContextualLogger(logger shell.ContextualLogger) Option {
	return func(s *settings) error {
		s.contextualLogger = logger
		return nil
	}
}

// WithObservability instruments the sink behind the Decorator and the Proxy with metrics and tracing.
// Either collector may be nil.
func WithObservability(metrics shell.MetricsCollector, tracing shell.TracingCollector) Option {
	return func(s *settings) error {
		s.metricsCollector = metrics
		s.tracingCollector = tracing

		return nil
	}
}
