package shell

import (
	"errors"

	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/bookshelf-go/core"
	"github.com/AntonStoeckl/bookshelf-go/journal"
)

// ErrMappingToEntryFailedForDomainEvent is returned when domain event serialization fails.
var ErrMappingToEntryFailedForDomainEvent = errors.New("mapping to journal entry failed for domain event")

// ErrMappingToEntryFailedForMetadata is returned when metadata serialization fails.
var ErrMappingToEntryFailedForMetadata = errors.New("mapping to journal entry failed for metadata")

// EntryFrom converts a DomainEvent and EventMetadata to a journal Entry.
func EntryFrom(event core.DomainEvent, metadata EventMetadata) (journal.Entry, error) {
	payloadJSON, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(event)
	if err != nil {
		return journal.Entry{}, errors.Join(ErrMappingToEntryFailedForDomainEvent, err)
	}

	metadataJSON, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(metadata)
	if err != nil {
		return journal.Entry{}, errors.Join(ErrMappingToEntryFailedForMetadata, err)
	}

	entry, err := journal.BuildEntry(
		event.EventType(),
		event.HasOccurredAt(),
		payloadJSON,
		metadataJSON,
	)

	if err != nil {
		return journal.Entry{}, errors.Join(ErrMappingToEntryFailedForDomainEvent, err)
	}

	return entry, nil
}

// EntryWithEmptyMetadataFrom converts a DomainEvent to a journal Entry with empty metadata.
func EntryWithEmptyMetadataFrom(event core.DomainEvent) (journal.Entry, error) {
	payloadJSON, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(event)
	if err != nil {
		return journal.Entry{}, errors.Join(ErrMappingToEntryFailedForDomainEvent, err)
	}

	entry, err := journal.BuildEntryWithEmptyMetadata(
		event.EventType(),
		event.HasOccurredAt(),
		payloadJSON,
	)

	if err != nil {
		return journal.Entry{}, errors.Join(ErrMappingToEntryFailedForDomainEvent, err)
	}

	return entry, nil
}
