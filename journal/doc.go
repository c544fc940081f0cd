// Package journal provides the abstractions for persisting catalog notifications
// as an append-only journal.
//
// An Entry is a scalar DTO, agnostic of the domain events that produced it.
// It is built with BuildEntry or BuildEntryWithEmptyMetadata, which validate the JSON.
//
// Entries can be read back with a Filter:
//
//	filter := journal.BuildFilter().
//		AnyEventTypeOf(core.BookAddedToCatalogEventType, core.BookRemovedFromCatalogEventType).
//		AndAnyTitleOf("Ion").
//		Finalize()
//
//	entries, maxSeq, err := j.Query(ctx, filter)
//
// Implementations live in the subpackages memjournal (in-process) and postgresjournal (PostgreSQL).
package journal
