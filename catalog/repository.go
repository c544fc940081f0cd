package catalog

import (
	"context"
	"time"

	"github.com/AntonStoeckl/bookshelf-go/core"
	"github.com/AntonStoeckl/bookshelf-go/shell"
)

const (
	logMsgNotifyFailed = "delivering catalog notification failed"
	logAttrEventType   = "event_type"
	logAttrError       = "error"
)

// Repository is the terminal BookCatalog: it emits one notification per operation and keeps no books.
//
// Notification delivery errors are logged and never surfaced to the caller.
type Repository struct {
	notifier         shell.Notifier
	now              func() time.Time
	logger           shell.Logger
	contextualLogger shell.ContextualLogger
}

// Option defines a functional option for configuring Repository.
type Option func(*Repository)

// WithClock replaces time.Now as the source of notification timestamps.
func WithClock(now func() time.Time) Option {
	return func(r *Repository) {
		r.now = now
	}
}

// WithLogger sets the basic logger used to report delivery errors.
func WithLogger(logger shell.Logger) Option {
	return func(r *Repository) {
		r.logger = logger
	}
}

// WithContextualLogger sets the contextual logger used to report delivery errors.
// It takes precedence over WithLogger.
func WithContextualLogger(logger shell.ContextualLogger) Option {
	return func(r *Repository) {
		r.contextualLogger = logger
	}
}

// NewRepository creates a Repository delivering its notifications to notifier.
// A nil notifier discards all notifications.
func NewRepository(notifier shell.Notifier, opts ...Option) *Repository {
	if notifier == nil {
		notifier = shell.Fanout()
	}

	r := &Repository{
		notifier: notifier,
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Add emits exactly one BookAddedToCatalog notification.
func (r *Repository) Add(ctx context.Context, book core.Book) {
	r.notify(ctx, core.BuildBookAddedToCatalog(book, r.now()))
}

// Remove emits exactly one BookRemovedFromCatalog notification for the book as given.
// No matching against previously added books takes place.
func (r *Repository) Remove(ctx context.Context, book core.Book) {
	r.notify(ctx, core.BuildBookRemovedFromCatalog(book, r.now()))
}

func (r *Repository) notify(ctx context.Context, event core.DomainEvent) {
	err := r.notifier.Notify(ctx, event)
	if err == nil {
		return
	}

	args := []any{logAttrEventType, event.EventType(), logAttrError, err.Error()}

	if r.contextualLogger != nil {
		r.contextualLogger.ErrorContext(ctx, logMsgNotifyFailed, args...)
	} else if r.logger != nil {
		r.logger.Error(logMsgNotifyFailed, args...)
	}
}

var _ BookCatalog = (*Repository)(nil)
