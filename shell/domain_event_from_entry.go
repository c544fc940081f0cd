package shell

import (
	"errors"

	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/bookshelf-go/core"
	"github.com/AntonStoeckl/bookshelf-go/journal"
)

var (
	// ErrMappingToDomainEventFailed is returned when domain event conversion fails.
	ErrMappingToDomainEventFailed = errors.New("mapping to domain event failed")

	// ErrMappingToDomainEventUnknownEventType is returned for unrecognized event types.
	ErrMappingToDomainEventUnknownEventType = errors.New("unknown event type")
)

// DomainEventsFrom converts multiple journal entries to DomainEvents.
func DomainEventsFrom(entries journal.Entries) (core.DomainEvents, error) {
	domainEvents := make(core.DomainEvents, 0, len(entries))

	for _, entry := range entries {
		domainEvent, err := DomainEventFrom(entry)
		if err != nil {
			return nil, err
		}

		domainEvents = append(domainEvents, domainEvent)
	}

	return domainEvents, nil
}

// DomainEventFrom converts a journal Entry to its corresponding DomainEvent.
func DomainEventFrom(entry journal.Entry) (core.DomainEvent, error) {
	switch entry.EventType {
	case core.BookAddedToCatalogEventType:
		return unmarshalPayload[core.BookAddedToCatalog](entry.PayloadJSON)

	case core.BookRemovedFromCatalogEventType:
		return unmarshalPayload[core.BookRemovedFromCatalog](entry.PayloadJSON)

	case core.BookDetailNotedEventType:
		return unmarshalPayload[core.BookDetailNoted](entry.PayloadJSON)

	case core.AddingBookDeniedEventType:
		return unmarshalPayload[core.AddingBookDenied](entry.PayloadJSON)
	}

	return nil, errors.Join(ErrMappingToDomainEventFailed, ErrMappingToDomainEventUnknownEventType)
}

func unmarshalPayload[E core.DomainEvent](payloadJSON []byte) (core.DomainEvent, error) {
	payload := new(E)

	err := jsoniter.ConfigFastest.Unmarshal(payloadJSON, payload)
	if err != nil {
		return nil, errors.Join(ErrMappingToDomainEventFailed, err)
	}

	return *payload, nil
}
