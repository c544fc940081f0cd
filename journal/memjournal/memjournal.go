// Package memjournal provides an in-process implementation of journal.Journal.
//
// Entries live only as long as the Journal value. It is the default journal of the demo
// and is used by tests that need to read notifications back.
package memjournal

import (
	"context"
	"slices"
	"sync"

	"github.com/AntonStoeckl/bookshelf-go/journal"
)

type sequencedEntry struct {
	sequenceNumber journal.MaxSequenceNumberUint
	entry          journal.Entry
}

// Journal keeps entries in memory, assigning a sequence number to each appended entry.
type Journal struct {
	mu      sync.RWMutex
	entries []sequencedEntry
}

// New creates an empty Journal.
func New() *Journal {
	return &Journal{}
}

// Append adds the entries atomically, in the given order.
func (j *Journal) Append(ctx context.Context, entry journal.Entry, additionalEntries ...journal.Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	for _, e := range append([]journal.Entry{entry}, additionalEntries...) {
		j.entries = append(j.entries, sequencedEntry{
			sequenceNumber: journal.MaxSequenceNumberUint(len(j.entries) + 1),
			entry:          cloneEntry(e),
		})
	}

	return nil
}

// Query returns the entries matching the filter in append order, together with the highest matched sequence number.
func (j *Journal) Query(ctx context.Context, filter journal.Filter) (journal.Entries, journal.MaxSequenceNumberUint, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	j.mu.RLock()
	defer j.mu.RUnlock()

	result := make(journal.Entries, 0)
	maxSequenceNumber := journal.MaxSequenceNumberUint(0)

	for _, e := range j.entries {
		if !filter.Matches(e.entry) {
			continue
		}

		result = append(result, cloneEntry(e.entry))
		maxSequenceNumber = e.sequenceNumber
	}

	return result, maxSequenceNumber, nil
}

// Len returns the number of entries appended so far.
func (j *Journal) Len() int {
	j.mu.RLock()
	defer j.mu.RUnlock()

	return len(j.entries)
}

func cloneEntry(e journal.Entry) journal.Entry {
	e.PayloadJSON = slices.Clone(e.PayloadJSON)
	e.MetadataJSON = slices.Clone(e.MetadataJSON)

	return e
}
