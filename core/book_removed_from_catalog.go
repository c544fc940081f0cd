package core

import (
	"time"
)

// BookRemovedFromCatalogEventType is the event type identifier.
const BookRemovedFromCatalogEventType = "BookRemovedFromCatalog"

// BookRemovedFromCatalog represents when a book was removed from the catalog.
//
// The book is reported exactly as it was handed to the catalog. Removals by title only
// carry an empty Author and a zero PublicationYear.
type BookRemovedFromCatalog struct {
	Title           string
	Author          string
	PublicationYear int
	OccurredAt      OccurredAtTS
}

// BuildBookRemovedFromCatalog creates a new BookRemovedFromCatalog event.
func BuildBookRemovedFromCatalog(book Book, occurredAt time.Time) BookRemovedFromCatalog {
	return BookRemovedFromCatalog{
		Title:           book.Title(),
		Author:          book.Author(),
		PublicationYear: book.PublicationYear(),
		OccurredAt:      ToOccurredAt(occurredAt),
	}
}

// Book returns the book this event is about.
func (e BookRemovedFromCatalog) Book() Book {
	return NewBookBuilder().SetTitle(e.Title).SetAuthor(e.Author).SetPublicationYear(e.PublicationYear).Build()
}

// EventType returns the event type identifier.
func (e BookRemovedFromCatalog) EventType() string {
	return BookRemovedFromCatalogEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookRemovedFromCatalog) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e BookRemovedFromCatalog) IsErrorEvent() bool {
	return false
}
