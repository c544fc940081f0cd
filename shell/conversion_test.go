package shell_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/bookshelf-go/core"
	"github.com/AntonStoeckl/bookshelf-go/journal"
	"github.com/AntonStoeckl/bookshelf-go/journal/memjournal"
	"github.com/AntonStoeckl/bookshelf-go/shell"
)

func Test_EntryFrom_And_DomainEventFrom_RestoreEveryEventType(t *testing.T) {
	book := fixtureBook()
	testCases := []struct {
		name  string
		event core.DomainEvent
	}{
		{name: "added", event: core.BuildBookAddedToCatalog(book, fixtureTime())},
		{name: "removed", event: core.BuildBookRemovedFromCatalog(book, fixtureTime())},
		{name: "detail", event: core.BuildBookDetailNoted(book, core.BookFieldAuthor, book.Author(), fixtureTime())},
		{name: "denied", event: core.BuildAddingBookDenied(book, "guest", "not allowed", fixtureTime())},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// arrange
			entry, err := shell.EntryWithEmptyMetadataFrom(tc.event)
			require.NoError(t, err)

			// act
			restored, err := shell.DomainEventFrom(entry)

			// assert
			require.NoError(t, err)
			assert.Equal(t, tc.event.EventType(), entry.EventType)
			assert.Equal(t, tc.event.EventType(), restored.EventType())
			assert.True(t, tc.event.HasOccurredAt().Equal(restored.HasOccurredAt()))
			assert.JSONEq(t, `{}`, string(entry.MetadataJSON))
		})
	}
}

func Test_DomainEventFrom_ShouldFail_ForUnknownEventType(t *testing.T) {
	// arrange
	entry, err := journal.BuildEntryWithEmptyMetadata("SomethingElse", fixtureTime(), []byte(`{}`))
	require.NoError(t, err)

	// act
	_, mapErr := shell.DomainEventFrom(entry)

	// assert
	assert.ErrorIs(t, mapErr, shell.ErrMappingToDomainEventUnknownEventType)
	assert.ErrorIs(t, mapErr, shell.ErrMappingToDomainEventFailed)
}

func Test_DomainEventFrom_ShouldFail_ForMismatchingPayload(t *testing.T) {
	// arrange
	entry, err := journal.BuildEntryWithEmptyMetadata(core.BookAddedToCatalogEventType, fixtureTime(), []byte(`{"PublicationYear":"not a number"}`))
	require.NoError(t, err)

	// act
	_, mapErr := shell.DomainEventFrom(entry)

	// assert
	assert.ErrorIs(t, mapErr, shell.ErrMappingToDomainEventFailed)
}

func Test_DomainEventsFrom_KeepsPayloadFields(t *testing.T) {
	// arrange
	added := core.BuildBookAddedToCatalog(fixtureBook(), fixtureTime())
	entry, err := shell.EntryWithEmptyMetadataFrom(added)
	require.NoError(t, err)

	// act
	events, err := shell.DomainEventsFrom(journal.Entries{entry})

	// assert
	require.NoError(t, err)
	require.Len(t, events, 1)
	restored, ok := events[0].(core.BookAddedToCatalog)
	require.True(t, ok)
	assert.Equal(t, fixtureBook(), restored.Book())
}

func Test_JournalNotifier_AppendsEntryWithMetadata(t *testing.T) {
	// arrange
	j := memjournal.New()
	messageID := uuid.New()
	correlationID := uuid.New()
	notifier := shell.NewJournalNotifier(j, shell.WithIDGenerator(func() uuid.UUID { return messageID }))
	ctx := shell.WithCorrelationID(context.Background(), correlationID)

	// act
	err := notifier.Notify(ctx, core.BuildBookAddedToCatalog(fixtureBook(), fixtureTime()))

	// assert
	require.NoError(t, err)
	entries, maxSeq, err := j.Query(context.Background(), journal.MatchingAnyEntry())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, uint(1), maxSeq)

	metadata, err := shell.EventMetadataFrom(entries[0])
	require.NoError(t, err)
	assert.Equal(t, messageID.String(), metadata.MessageID)
	assert.Equal(t, correlationID.String(), metadata.CausationID)
	assert.Equal(t, correlationID.String(), metadata.CorrelationID)
}

func Test_JournalNotifier_UsesMessageIDAsCorrelation_WithoutContextValue(t *testing.T) {
	// arrange
	j := memjournal.New()
	notifier := shell.NewJournalNotifier(j)

	// act
	err := notifier.Notify(context.Background(), core.BuildBookRemovedFromCatalog(fixtureBook(), fixtureTime()))

	// assert
	require.NoError(t, err)
	entries, _, err := j.Query(context.Background(), journal.MatchingAnyEntry())
	require.NoError(t, err)
	require.Len(t, entries, 1)

	metadata, err := shell.EventMetadataFrom(entries[0])
	require.NoError(t, err)
	assert.NotEmpty(t, metadata.MessageID)
	assert.Equal(t, metadata.MessageID, metadata.CorrelationID)
}
