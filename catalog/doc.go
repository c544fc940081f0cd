// Package catalog contains the book Repository and the capability interfaces
// every catalog wrapper is written against.
//
// The wrappers live in sub-packages:
//
//   - adapter: add and remove books from raw field values
//   - enrich: report the details of a book before adding it
//   - guard: only add a book when the caller is authorized to
//   - facade: a single entry point that builds books and owns its Repository
//   - observable: metrics, tracing and logging around any BookSink
package catalog
