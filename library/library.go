package library

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/AntonStoeckl/bookshelf-go/catalog"
	"github.com/AntonStoeckl/bookshelf-go/catalog/adapter"
	"github.com/AntonStoeckl/bookshelf-go/catalog/enrich"
	"github.com/AntonStoeckl/bookshelf-go/catalog/facade"
	"github.com/AntonStoeckl/bookshelf-go/catalog/guard"
	"github.com/AntonStoeckl/bookshelf-go/catalog/observable"
	"github.com/AntonStoeckl/bookshelf-go/shell"
)

const observedSinkName = "repository"

// Library composes the catalog components, all delivering to the same notifier.
// It is immutable after construction and safe for concurrent use.
type Library struct {
	notifier   shell.Notifier
	repository *catalog.Repository
	adapter    *adapter.RawFieldsAdapter
	decorator  *enrich.Decorator
	proxy      *guard.Proxy
	facade     *facade.Facade
}

var (
	instanceMu sync.Mutex
	instance   *Library
)

// Instance returns the process-wide Library, creating it on the first call.
// Its notifier writes every notification to slog.Default().
//
// The lock is taken on every call.
func Instance() *Library {
	instanceMu.Lock()
	defer instanceMu.Unlock()

	if instance == nil {
		logger := slog.Default()
		instance = mustNew(
			WithNotifier(shell.NewLogNotifier(shell.WithNotifierContextualLogger(logger))),
			WithContextualLogger(logger),
		)
	}

	return instance
}

// New creates a Library from the given options.
func New(opts ...Option) (*Library, error) {
	s := &settings{
		notifier:   shell.NewLogNotifier(),
		authorizer: guard.AllowAll,
		now:        time.Now,
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	repository := catalog.NewRepository(
		s.notifier,
		catalog.WithClock(s.now),
		catalog.WithLogger(s.logger),
		catalog.WithContextualLogger(s.contextualLogger),
	)

	sink, err := s.observedSink(repository)
	if err != nil {
		return nil, err
	}

	return &Library{
		notifier:   s.notifier,
		repository: repository,
		adapter:    adapter.NewRawFieldsAdapter(repository),
		decorator: enrich.NewDecorator(
			sink,
			s.notifier,
			enrich.WithClock(s.now),
			enrich.WithLogger(s.logger),
			enrich.WithContextualLogger(s.contextualLogger),
		),
		proxy: guard.NewProxy(
			sink,
			s.notifier,
			guard.WithAuthorizer(s.authorizer),
			guard.WithClock(s.now),
			guard.WithLogger(s.logger),
			guard.WithContextualLogger(s.contextualLogger),
		),
		facade: facade.NewFacade(
			s.notifier,
			catalog.WithClock(s.now),
			catalog.WithLogger(s.logger),
			catalog.WithContextualLogger(s.contextualLogger),
		),
	}, nil
}

func mustNew(opts ...Option) *Library {
	lib, err := New(opts...)
	if err != nil {
		panic(err)
	}

	return lib
}

func (s *settings) observedSink(repository *catalog.Repository) (catalog.BookSink, error) {
	if s.metricsCollector == nil && s.tracingCollector == nil {
		return repository, nil
	}

	return observable.NewSinkWrapper(
		repository,
		observedSinkName,
		observable.WithMetrics(s.metricsCollector),
		observable.WithTracing(s.tracingCollector),
		observable.WithLogging(s.logger),
		observable.WithContextualLogging(s.contextualLogger),
	)
}

// Notifier returns the notifier all components deliver to.
func (l *Library) Notifier() shell.Notifier { return l.notifier }

// Repository returns the shared catalog.Repository.
func (l *Library) Repository() *catalog.Repository { return l.repository }

// Adapter returns the RawFieldsAdapter over the Repository.
func (l *Library) Adapter() *adapter.RawFieldsAdapter { return l.adapter }

// Decorator returns the Decorator over the Repository.
func (l *Library) Decorator() *enrich.Decorator { return l.decorator }

// Proxy returns the Proxy over the Repository.
func (l *Library) Proxy() *guard.Proxy { return l.proxy }

// Facade returns the Facade, which owns a separate Repository delivering to the same notifier.
func (l *Library) Facade() *facade.Facade { return l.facade }

type libraryKey struct{}

// WithLibrary returns a context carrying lib.
func WithLibrary(ctx context.Context, lib *Library) context.Context {
	return context.WithValue(ctx, libraryKey{}, lib)
}

// FromContext returns the Library placed into the context with WithLibrary.
func FromContext(ctx context.Context) (*Library, bool) {
	lib, ok := ctx.Value(libraryKey{}).(*Library)
	return lib, ok && lib != nil
}
