package core

import (
	"time"
)

// AddingBookDeniedEventType is the event type identifier.
const AddingBookDeniedEventType = "AddingBookDenied"

// AddingBookDenied represents when adding a book was refused because the caller lacks the rights to do so.
type AddingBookDenied struct {
	Title           string
	Author          string
	PublicationYear int
	Caller          string
	Reason          string
	OccurredAt      OccurredAtTS
}

// BuildAddingBookDenied creates a new AddingBookDenied event.
func BuildAddingBookDenied(book Book, caller string, reason string, occurredAt time.Time) AddingBookDenied {
	return AddingBookDenied{
		Title:           book.Title(),
		Author:          book.Author(),
		PublicationYear: book.PublicationYear(),
		Caller:          caller,
		Reason:          reason,
		OccurredAt:      ToOccurredAt(occurredAt),
	}
}

// EventType returns the event type identifier.
func (e AddingBookDenied) EventType() string {
	return AddingBookDeniedEventType
}

// HasOccurredAt returns when this event occurred.
func (e AddingBookDenied) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns true since this event represents a refused operation.
func (e AddingBookDenied) IsErrorEvent() bool {
	return true
}
