package journal

import (
	"time"

	jsoniter "github.com/json-iterator/go"
)

// Entries is an alias type for a slice of Entry.
type Entries = []Entry

// Entry is a DTO (data transfer object) used by a Journal to append notifications and query them back.
//
// It is built on scalars to be completely agnostic of the domain events in the client code.
//
// While its properties are exported, it should only be constructed with the supplied factory methods:
//   - BuildEntry
//   - BuildEntryWithEmptyMetadata
type Entry struct {
	EventType    string
	OccurredAt   time.Time
	PayloadJSON  []byte
	MetadataJSON []byte
}

// BuildEntry is a factory method for Entry.
//
// Returns an error if payloadJSON or metadataJSON are not valid JSON.
func BuildEntry(eventType string, occurredAt time.Time, payloadJSON []byte, metadataJSON []byte) (Entry, error) {
	if !jsoniter.Valid(payloadJSON) {
		return Entry{}, ErrInvalidPayloadJSON
	}

	if !jsoniter.Valid(metadataJSON) {
		return Entry{}, ErrInvalidMetadataJSON
	}

	return Entry{
		EventType:    eventType,
		OccurredAt:   occurredAt,
		PayloadJSON:  payloadJSON,
		MetadataJSON: metadataJSON,
	}, nil
}

// BuildEntryWithEmptyMetadata is a factory method for Entry that uses an empty JSON object as metadata.
func BuildEntryWithEmptyMetadata(eventType string, occurredAt time.Time, payloadJSON []byte) (Entry, error) {
	return BuildEntry(eventType, occurredAt, payloadJSON, []byte("{}"))
}
