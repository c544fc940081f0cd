// Package enrich reports the details of a book before it is added to the catalog.
package enrich

import (
	"context"
	"time"

	"github.com/AntonStoeckl/bookshelf-go/catalog"
	"github.com/AntonStoeckl/bookshelf-go/core"
	"github.com/AntonStoeckl/bookshelf-go/shell"
)

const (
	logMsgNotifyFailed = "delivering book detail notification failed"
	logAttrField       = "field"
	logAttrError       = "error"
)

// Decorator is a catalog.BookSink that emits one BookDetailNoted notification per book field
// (title, author, publication year) and then delegates to the wrapped sink.
//
// Decorators can be layered: the wrapped sink may be another Decorator.
type Decorator struct {
	inner            catalog.BookSink
	notifier         shell.Notifier
	now              func() time.Time
	logger           shell.Logger
	contextualLogger shell.ContextualLogger
}

// Option defines a functional option for configuring Decorator.
type Option func(*Decorator)

// WithClock replaces time.Now as the source of notification timestamps.
func WithClock(now func() time.Time) Option {
	return func(d *Decorator) {
		d.now = now
	}
}

// WithLogger sets the basic logger used to report delivery errors.
func WithLogger(logger shell.Logger) Option {
	return func(d *Decorator) {
		d.logger = logger
	}
}

// WithContextualLogger sets the contextual logger used to report delivery errors.
func WithContextualLogger(logger shell.ContextualLogger) Option {
	return func(d *Decorator) {
		d.contextualLogger = logger
	}
}

// NewDecorator creates a Decorator around inner that reports book details to notifier.
func NewDecorator(inner catalog.BookSink, notifier shell.Notifier, opts ...Option) *Decorator {
	if notifier == nil {
		notifier = shell.Fanout()
	}

	d := &Decorator{
		inner:    inner,
		notifier: notifier,
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Add reports the book details, then delegates exactly once.
func (d *Decorator) Add(ctx context.Context, book core.Book) {
	for _, detail := range core.BuildBookDetailsNoted(book, d.now()) {
		if err := d.notifier.Notify(ctx, detail); err != nil {
			d.logNotifyError(ctx, detail.Field, err)
		}
	}

	d.inner.Add(ctx, book)
}

func (d *Decorator) logNotifyError(ctx context.Context, field core.BookFieldString, err error) {
	if d.contextualLogger != nil {
		d.contextualLogger.ErrorContext(ctx, logMsgNotifyFailed, logAttrField, field, logAttrError, err.Error())
	} else if d.logger != nil {
		d.logger.Error(logMsgNotifyFailed, logAttrField, field, logAttrError, err.Error())
	}
}

var _ catalog.BookSink = (*Decorator)(nil)
