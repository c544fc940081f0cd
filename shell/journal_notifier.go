package shell

import (
	"context"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/bookshelf-go/core"
	"github.com/AntonStoeckl/bookshelf-go/journal"
)

type correlationIDKey struct{}

// WithCorrelationID returns a context that makes a JournalNotifier stamp every notification
// with the given correlation and causation ID.
func WithCorrelationID(ctx context.Context, correlationID uuid.UUID) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, correlationID)
}

// CorrelationIDFrom returns the correlation ID placed into the context with WithCorrelationID.
func CorrelationIDFrom(ctx context.Context) (uuid.UUID, bool) {
	correlationID, ok := ctx.Value(correlationIDKey{}).(uuid.UUID)
	return correlationID, ok
}

// JournalNotifier appends every notification to a journal.
type JournalNotifier struct {
	appender journal.Appender
	newID    func() uuid.UUID
}

// JournalNotifierOption defines a functional option for configuring JournalNotifier.
type JournalNotifierOption func(*JournalNotifier)

// WithIDGenerator replaces uuid.New as the source of message IDs.
func WithIDGenerator(newID func() uuid.UUID) JournalNotifierOption {
	return func(n *JournalNotifier) {
		n.newID = newID
	}
}

// NewJournalNotifier creates a JournalNotifier appending to the given journal.
func NewJournalNotifier(appender journal.Appender, opts ...JournalNotifierOption) *JournalNotifier {
	n := &JournalNotifier{
		appender: appender,
		newID:    uuid.New,
	}

	for _, opt := range opts {
		opt(n)
	}

	return n
}

// Notify converts the event into a journal Entry and appends it.
//
// Without a correlation ID in the context, the fresh message ID doubles as causation and correlation ID.
func (n *JournalNotifier) Notify(ctx context.Context, event core.DomainEvent) error {
	messageID := n.newID()

	correlationID, ok := CorrelationIDFrom(ctx)
	if !ok {
		correlationID = messageID
	}

	entry, err := EntryFrom(event, BuildEventMetadata(messageID, correlationID, correlationID))
	if err != nil {
		return err
	}

	return n.appender.Append(ctx, entry)
}
