package core

import (
	"time"
)

// OccurredAtTS represents when an event occurred.
type OccurredAtTS = time.Time

// BookFieldString names one of the fields of a Book.
type BookFieldString = string

// The fields of a Book, in the order they are reported by BookDetailNoted events.
const (
	BookFieldTitle           BookFieldString = "title"
	BookFieldAuthor          BookFieldString = "author"
	BookFieldPublicationYear BookFieldString = "publication_year"
)

// ToOccurredAt converts a time to OccurredAtTS with UTC normalization and microsecond precision.
func ToOccurredAt(t time.Time) OccurredAtTS {
	return t.UTC().Truncate(time.Microsecond)
}
