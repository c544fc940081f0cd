package shell

import (
	"context"

	"github.com/AntonStoeckl/bookshelf-go/core"
)

const (
	logMsgBookAdded         = "book added to catalog"
	logMsgBookRemoved       = "book removed from catalog"
	logMsgSupplementaryInfo = "adding supplementary information for book"
	logMsgBookDetail        = "book detail"
	logMsgAddingBookDenied  = "insufficient rights to add a book"
	logMsgUnknownEvent      = "unknown catalog notification"
	logAttrBook             = "book"
	logAttrField            = "field"
	logAttrValue            = "value"
	logAttrCaller           = "caller"
	logAttrReason           = "reason"
	logAttrEventType        = "event_type"
	logAttrOccurredAt       = "occurred_at"
)

// LogNotifier writes one human-readable log line per notification.
//
// The contextual logger is preferred when both loggers are set.
// Denials are logged at warn level, everything else at info level.
type LogNotifier struct {
	logger           Logger
	contextualLogger ContextualLogger
}

// LogNotifierOption defines a functional option for configuring LogNotifier.
type LogNotifierOption func(*LogNotifier)

// WithNotifierLogger sets the basic logger for the LogNotifier.
func WithNotifierLogger(logger Logger) LogNotifierOption {
	return func(n *LogNotifier) {
		n.logger = logger
	}
}

// WithNotifierContextualLogger sets the contextual logger for the LogNotifier.
func WithNotifierContextualLogger(logger ContextualLogger) LogNotifierOption {
	return func(n *LogNotifier) {
		n.contextualLogger = logger
	}
}

// NewLogNotifier creates a LogNotifier. Without a logger option it stays silent.
func NewLogNotifier(opts ...LogNotifierOption) *LogNotifier {
	n := &LogNotifier{}
	for _, opt := range opts {
		opt(n)
	}

	return n
}

// Notify logs the event. It never fails.
func (n *LogNotifier) Notify(ctx context.Context, event core.DomainEvent) error {
	switch e := event.(type) {
	case core.BookAddedToCatalog:
		n.info(ctx, logMsgBookAdded, logAttrBook, e.Book().String())

	case core.BookRemovedFromCatalog:
		n.info(ctx, logMsgBookRemoved, logAttrBook, e.Book().String())

	case core.BookDetailNoted:
		if e.Field == core.BookFieldTitle {
			n.info(ctx, logMsgSupplementaryInfo)
		}
		n.info(ctx, logMsgBookDetail, logAttrField, e.Field, logAttrValue, e.Value)

	case core.AddingBookDenied:
		n.warn(ctx, logMsgAddingBookDenied, LogAttrTitle, e.Title, logAttrCaller, e.Caller, logAttrReason, e.Reason)

	default:
		n.info(ctx, logMsgUnknownEvent, logAttrEventType, event.EventType(), logAttrOccurredAt, event.HasOccurredAt())
	}

	return nil
}

func (n *LogNotifier) info(ctx context.Context, msg string, args ...any) {
	if n.contextualLogger != nil {
		n.contextualLogger.InfoContext(ctx, msg, args...)
	} else if n.logger != nil {
		n.logger.Info(msg, args...)
	}
}

func (n *LogNotifier) warn(ctx context.Context, msg string, args ...any) {
	if n.contextualLogger != nil {
		n.contextualLogger.WarnContext(ctx, msg, args...)
	} else if n.logger != nil {
		n.logger.Warn(msg, args...)
	}
}
