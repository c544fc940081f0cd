package journal_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/bookshelf-go/journal"
)

func Test_FilterBuilder_SanitizesEventTypesAndTitles(t *testing.T) {
	// act
	filter := journal.BuildFilter().
		AnyEventTypeOf("B", "", "A", "B").
		AndAnyTitleOf("Ion", "", "Enigma Otiliei", "Ion").
		Finalize()

	// assert
	assert.Equal(t, []string{"A", "B"}, filter.EventTypes())
	assert.Equal(t, []string{"Enigma Otiliei", "Ion"}, filter.Titles())
	assert.False(t, filter.MatchesAnyEntry())
}

func Test_FilterBuilder_Finalize_IsNotAffectedByFurtherBuilding(t *testing.T) {
	// arrange
	builder := journal.BuildFilter().AnyEventTypeOf("A")
	first := builder.Finalize()

	// act
	builder.AnyEventTypeOf("B")

	// assert
	assert.Equal(t, []string{"A"}, first.EventTypes())
}

func Test_MatchingAnyEntry(t *testing.T) {
	// arrange
	filter := journal.MatchingAnyEntry()
	entry := givenEntry(t, "Anything", `{}`, time.Now())

	// assert
	assert.True(t, filter.MatchesAnyEntry())
	assert.True(t, filter.Matches(entry))
}

func Test_Filter_Matches(t *testing.T) {
	base := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	added := givenEntry(t, "BookAddedToCatalog", `{"Title":"Ion"}`, base)
	removed := givenEntry(t, "BookRemovedFromCatalog", `{"Title":"Enigma Otiliei"}`, base.Add(time.Hour))
	noTitle := givenEntry(t, "BookAddedToCatalog", `{"Author":"x"}`, base)

	testCases := []struct {
		description string
		filter      journal.Filter
		entry       journal.Entry
		expected    bool
	}{
		{"event type matches", journal.BuildFilter().AnyEventTypeOf("BookAddedToCatalog").Finalize(), added, true},
		{"event type does not match", journal.BuildFilter().AnyEventTypeOf("BookAddedToCatalog").Finalize(), removed, false},
		{"title matches", journal.BuildFilter().AndAnyTitleOf("Ion").Finalize(), added, true},
		{"title does not match", journal.BuildFilter().AndAnyTitleOf("Ion").Finalize(), removed, false},
		{"payload without title", journal.BuildFilter().AndAnyTitleOf("Ion").Finalize(), noTitle, false},
		{
			"event type and title",
			journal.BuildFilter().AnyEventTypeOf("BookRemovedFromCatalog").AndAnyTitleOf("Enigma Otiliei").Finalize(),
			removed,
			true,
		},
		{"occurred from inclusive", journal.BuildFilter().OccurredFrom(base).Finalize(), added, true},
		{"occurred from excludes earlier", journal.BuildFilter().OccurredFrom(base.Add(time.Minute)).Finalize(), added, false},
		{"occurred until inclusive", journal.BuildFilter().OccurredUntil(base).Finalize(), added, true},
		{"occurred until excludes later", journal.BuildFilter().OccurredUntil(base).Finalize(), removed, false},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			// act
			matches := tc.filter.Matches(tc.entry)

			// assert
			assert.Equal(t, tc.expected, matches)
		})
	}
}

func givenEntry(t *testing.T, eventType string, payloadJSON string, occurredAt time.Time) journal.Entry {
	t.Helper()

	entry, err := journal.BuildEntryWithEmptyMetadata(eventType, occurredAt, []byte(payloadJSON))
	require.NoError(t, err)

	return entry
}
