package memjournal_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/bookshelf-go/journal"
	"github.com/AntonStoeckl/bookshelf-go/journal/memjournal"
)

func Test_Journal_Append_Then_Query_All(t *testing.T) {
	// arrange
	ctx := context.Background()
	j := memjournal.New()
	first := givenEntry(t, "BookAddedToCatalog", `{"Title":"Ion"}`)
	second := givenEntry(t, "BookRemovedFromCatalog", `{"Title":"Ion"}`)

	// act
	err := j.Append(ctx, first, second)
	require.NoError(t, err)
	entries, maxSeq, queryErr := j.Query(ctx, journal.MatchingAnyEntry())

	// assert
	assert.NoError(t, queryErr)
	assert.Equal(t, journal.Entries{first, second}, entries)
	assert.Equal(t, journal.MaxSequenceNumberUint(2), maxSeq)
}

func Test_Journal_Query_WithFilter_ReturnsMaxSequenceOfMatches(t *testing.T) {
	// arrange
	ctx := context.Background()
	j := memjournal.New()
	require.NoError(t, j.Append(ctx, givenEntry(t, "BookAddedToCatalog", `{"Title":"Ion"}`)))
	require.NoError(t, j.Append(ctx, givenEntry(t, "BookAddedToCatalog", `{"Title":"Enigma Otiliei"}`)))
	require.NoError(t, j.Append(ctx, givenEntry(t, "BookRemovedFromCatalog", `{"Title":"Enigma Otiliei"}`)))

	filter := journal.BuildFilter().AnyEventTypeOf("BookAddedToCatalog").Finalize()

	// act
	entries, maxSeq, err := j.Query(ctx, filter)

	// assert
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, journal.MaxSequenceNumberUint(2), maxSeq)
}

func Test_Journal_Query_NoMatches(t *testing.T) {
	// arrange
	j := memjournal.New()

	// act
	entries, maxSeq, err := j.Query(context.Background(), journal.MatchingAnyEntry())

	// assert
	assert.NoError(t, err)
	assert.Empty(t, entries)
	assert.Equal(t, journal.MaxSequenceNumberUint(0), maxSeq)
}

func Test_Journal_Append_WithCanceledContext(t *testing.T) {
	// arrange
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	j := memjournal.New()

	// act
	err := j.Append(ctx, givenEntry(t, "BookAddedToCatalog", `{}`))

	// assert
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, j.Len())
}

func Test_Journal_Append_Concurrently(t *testing.T) {
	// arrange
	ctx := context.Background()
	j := memjournal.New()
	entry := givenEntry(t, "BookAddedToCatalog", `{"Title":"Ion"}`)

	var wg sync.WaitGroup

	// act
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = j.Append(ctx, entry)
		}()
	}
	wg.Wait()

	// assert
	assert.Equal(t, 20, j.Len())
}

func givenEntry(t *testing.T, eventType string, payloadJSON string) journal.Entry {
	t.Helper()

	entry, err := journal.BuildEntryWithEmptyMetadata(eventType, time.Unix(0, 0).UTC(), []byte(payloadJSON))
	require.NoError(t, err)

	return entry
}
