package journal

import (
	"context"
)

// MaxSequenceNumberUint is a type alias for uint, representing the highest sequence number of the entries
// matched by a Query.
type MaxSequenceNumberUint = uint

// Appender appends one or multiple entries atomically.
type Appender interface {
	Append(ctx context.Context, entry Entry, additionalEntries ...Entry) error
}

// Querier reads entries matching a Filter, ordered by their sequence number.
type Querier interface {
	Query(ctx context.Context, filter Filter) (Entries, MaxSequenceNumberUint, error)
}

// Journal is an append-only store for catalog notifications.
type Journal interface {
	Appender
	Querier
}
