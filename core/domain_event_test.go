package core_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/bookshelf-go/core"
)

func Test_BuildBookDetailsNoted_ReportsFieldsInOrder(t *testing.T) {
	// arrange
	book := core.NewBookBuilder().SetTitle("Ion").SetAuthor("Liviu Rebreanu").SetPublicationYear(1920).Build()
	now := time.Date(2024, 5, 1, 12, 0, 0, 123456789, time.FixedZone("EEST", 3*60*60))

	// act
	details := core.BuildBookDetailsNoted(book, now)

	// assert
	assert.Len(t, details, 3)
	assert.Equal(t, core.BookFieldTitle, details[0].Field)
	assert.Equal(t, "Ion", details[0].Value)
	assert.Equal(t, core.BookFieldAuthor, details[1].Field)
	assert.Equal(t, "Liviu Rebreanu", details[1].Value)
	assert.Equal(t, core.BookFieldPublicationYear, details[2].Field)
	assert.Equal(t, "1920", details[2].Value)

	for _, detail := range details {
		assert.Equal(t, "Ion", detail.Title)
		assert.Equal(t, core.ToOccurredAt(now), detail.HasOccurredAt())
		assert.Equal(t, time.UTC, detail.HasOccurredAt().Location())
	}
}

func Test_DomainEvents_TypesAndErrorFlags(t *testing.T) {
	// arrange
	book := core.NewBookBuilder().SetTitle("Ion").Build()
	now := time.Now()

	testCases := []struct {
		event     core.DomainEvent
		eventType string
		isError   bool
	}{
		{core.BuildBookAddedToCatalog(book, now), core.BookAddedToCatalogEventType, false},
		{core.BuildBookRemovedFromCatalog(book, now), core.BookRemovedFromCatalogEventType, false},
		{core.BuildBookDetailNoted(book, core.BookFieldTitle, "Ion", now), core.BookDetailNotedEventType, false},
		{core.BuildAddingBookDenied(book, "guest", "not authorized", now), core.AddingBookDeniedEventType, true},
	}

	for _, tc := range testCases {
		t.Run(tc.eventType, func(t *testing.T) {
			// assert
			assert.Equal(t, tc.eventType, tc.event.EventType())
			assert.Equal(t, tc.isError, tc.event.IsErrorEvent())
			assert.Equal(t, core.ToOccurredAt(now), tc.event.HasOccurredAt())
		})
	}
}

func Test_BookAddedToCatalog_Book_RoundTripsTheRecord(t *testing.T) {
	// arrange
	book := core.NewBookBuilder().SetTitle("Ion").SetAuthor("Liviu Rebreanu").SetPublicationYear(1920).Build()

	// act
	event := core.BuildBookAddedToCatalog(book, time.Now())

	// assert
	assert.Equal(t, book, event.Book())
}
