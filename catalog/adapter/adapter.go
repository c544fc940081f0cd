// Package adapter lets callers that only hold raw field values work with a catalog.BookCatalog.
package adapter

import (
	"context"

	"github.com/AntonStoeckl/bookshelf-go/catalog"
	"github.com/AntonStoeckl/bookshelf-go/core"
)

// RawFieldsCatalog is the interface of callers that describe books by their raw field values.
type RawFieldsCatalog interface {
	AddBook(ctx context.Context, title string, author string, publicationYear int)
	RemoveBook(ctx context.Context, title string)
}

// RawFieldsAdapter translates raw field values into books and delegates to a catalog.BookCatalog.
type RawFieldsAdapter struct {
	inner catalog.BookCatalog
}

// NewRawFieldsAdapter creates a RawFieldsAdapter delegating to inner.
func NewRawFieldsAdapter(inner catalog.BookCatalog) *RawFieldsAdapter {
	return &RawFieldsAdapter{inner: inner}
}

// AddBook builds a book from all three fields and adds it.
func (a *RawFieldsAdapter) AddBook(ctx context.Context, title string, author string, publicationYear int) {
	book := core.NewBookBuilder().
		SetTitle(title).
		SetAuthor(author).
		SetPublicationYear(publicationYear).
		Build()

	a.inner.Add(ctx, book)
}

// RemoveBook builds a book carrying only the title and removes it.
// The author stays empty and the publication year zero.
func (a *RawFieldsAdapter) RemoveBook(ctx context.Context, title string) {
	book := core.NewBookBuilder().
		SetTitle(title).
		Build()

	a.inner.Remove(ctx, book)
}

var _ RawFieldsCatalog = (*RawFieldsAdapter)(nil)
