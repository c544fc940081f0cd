// Package guard only lets authorized callers add books to the catalog.
package guard

import (
	"context"
	"time"

	"github.com/AntonStoeckl/bookshelf-go/catalog"
	"github.com/AntonStoeckl/bookshelf-go/core"
	"github.com/AntonStoeckl/bookshelf-go/shell"
)

const (
	// DenialReasonInsufficientRights is the reason carried by AddingBookDenied notifications.
	DenialReasonInsufficientRights = "insufficient rights to add a book"

	logMsgNotifyFailed = "delivering denial notification failed"
	logAttrError       = "error"
)

// Proxy is a catalog.BookSink that asks its Authorizer before delegating.
// A denied call emits one AddingBookDenied notification and does not reach the wrapped sink.
type Proxy struct {
	inner            catalog.BookSink
	notifier         shell.Notifier
	authorizer       Authorizer
	now              func() time.Time
	logger           shell.Logger
	contextualLogger shell.ContextualLogger
}

// Option defines a functional option for configuring Proxy.
type Option func(*Proxy)

// WithAuthorizer replaces AllowAll as the Authorizer of the Proxy.
func WithAuthorizer(authorizer Authorizer) Option {
	return func(p *Proxy) {
		if authorizer != nil {
			p.authorizer = authorizer
		}
	}
}

// WithClock replaces time.Now as the source of notification timestamps.
func WithClock(now func() time.Time) Option {
	return func(p *Proxy) {
		p.now = now
	}
}

// WithLogger sets the basic logger used to report delivery errors.
func WithLogger(logger shell.Logger) Option {
	return func(p *Proxy) {
		p.logger = logger
	}
}

// WithContextualLogger sets the contextual logger used to report delivery errors.
func WithContextualLogger(logger shell.ContextualLogger) Option {
	return func(p *Proxy) {
		p.contextualLogger = logger
	}
}

// NewProxy creates a Proxy around inner that reports denials to notifier.
func NewProxy(inner catalog.BookSink, notifier shell.Notifier, opts ...Option) *Proxy {
	if notifier == nil {
		notifier = shell.Fanout()
	}

	p := &Proxy{
		inner:      inner,
		notifier:   notifier,
		authorizer: AllowAll,
		now:        time.Now,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Add delegates once when authorized, otherwise emits exactly one AddingBookDenied notification.
func (p *Proxy) Add(ctx context.Context, book core.Book) {
	if p.authorizer.Authorize(ctx) {
		p.inner.Add(ctx, book)
		return
	}

	denied := core.BuildAddingBookDenied(book, CallerFrom(ctx), DenialReasonInsufficientRights, p.now())
	if err := p.notifier.Notify(ctx, denied); err != nil {
		if p.contextualLogger != nil {
			p.contextualLogger.ErrorContext(ctx, logMsgNotifyFailed, logAttrError, err.Error())
		} else if p.logger != nil {
			p.logger.Error(logMsgNotifyFailed, logAttrError, err.Error())
		}
	}
}

var _ catalog.BookSink = (*Proxy)(nil)
