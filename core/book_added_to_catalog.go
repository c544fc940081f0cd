package core

import (
	"time"
)

// BookAddedToCatalogEventType is the event type identifier.
const BookAddedToCatalogEventType = "BookAddedToCatalog"

// BookAddedToCatalog represents when a book was added to the catalog.
type BookAddedToCatalog struct {
	Title           string
	Author          string
	PublicationYear int
	OccurredAt      OccurredAtTS
}

// BuildBookAddedToCatalog creates a new BookAddedToCatalog event.
func BuildBookAddedToCatalog(book Book, occurredAt time.Time) BookAddedToCatalog {
	return BookAddedToCatalog{
		Title:           book.Title(),
		Author:          book.Author(),
		PublicationYear: book.PublicationYear(),
		OccurredAt:      ToOccurredAt(occurredAt),
	}
}

// Book returns the book this event is about.
func (e BookAddedToCatalog) Book() Book {
	return NewBookBuilder().SetTitle(e.Title).SetAuthor(e.Author).SetPublicationYear(e.PublicationYear).Build()
}

// EventType returns the event type identifier.
func (e BookAddedToCatalog) EventType() string {
	return BookAddedToCatalogEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookAddedToCatalog) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e BookAddedToCatalog) IsErrorEvent() bool {
	return false
}
