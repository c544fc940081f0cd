package core

import (
	"strconv"
	"time"
)

// BookDetailNotedEventType is the event type identifier.
const BookDetailNotedEventType = "BookDetailNoted"

// BookDetailNoted carries one field of a book as supplementary information, reported before the book is added.
type BookDetailNoted struct {
	Title      string
	Field      BookFieldString
	Value      string
	OccurredAt OccurredAtTS
}

// BuildBookDetailNoted creates a new BookDetailNoted event.
func BuildBookDetailNoted(book Book, field BookFieldString, value string, occurredAt time.Time) BookDetailNoted {
	return BookDetailNoted{
		Title:      book.Title(),
		Field:      field,
		Value:      value,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// BuildBookDetailsNoted creates one BookDetailNoted event per field of the book,
// ordered: title, author, publication year.
func BuildBookDetailsNoted(book Book, occurredAt time.Time) []BookDetailNoted {
	return []BookDetailNoted{
		BuildBookDetailNoted(book, BookFieldTitle, book.Title(), occurredAt),
		BuildBookDetailNoted(book, BookFieldAuthor, book.Author(), occurredAt),
		BuildBookDetailNoted(book, BookFieldPublicationYear, strconv.Itoa(book.PublicationYear()), occurredAt),
	}
}

// EventType returns the event type identifier.
func (e BookDetailNoted) EventType() string {
	return BookDetailNotedEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookDetailNoted) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event is purely informational.
func (e BookDetailNoted) IsErrorEvent() bool {
	return false
}
