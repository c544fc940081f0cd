package journal_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/bookshelf-go/journal"
)

func Test_BuildEntry(t *testing.T) {
	now := time.Now()

	testCases := []struct {
		description  string
		payloadJSON  []byte
		metadataJSON []byte
		expectedErr  error
	}{
		{"valid payload and metadata", []byte(`{"Title":"Ion"}`), []byte(`{"MessageID":"x"}`), nil},
		{"invalid payload", []byte(`{"Title":`), []byte(`{}`), journal.ErrInvalidPayloadJSON},
		{"invalid metadata", []byte(`{}`), []byte(`nope`), journal.ErrInvalidMetadataJSON},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			// act
			entry, err := journal.BuildEntry("BookAddedToCatalog", now, tc.payloadJSON, tc.metadataJSON)

			// assert
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				assert.Equal(t, journal.Entry{}, entry)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "BookAddedToCatalog", entry.EventType)
			assert.Equal(t, now, entry.OccurredAt)
			assert.Equal(t, tc.payloadJSON, entry.PayloadJSON)
			assert.Equal(t, tc.metadataJSON, entry.MetadataJSON)
		})
	}
}

func Test_BuildEntryWithEmptyMetadata(t *testing.T) {
	// act
	entry, err := journal.BuildEntryWithEmptyMetadata("BookAddedToCatalog", time.Now(), []byte(`{}`))

	// assert
	assert.NoError(t, err)
	assert.Equal(t, []byte("{}"), entry.MetadataJSON)
}
