// Package facade offers a single entry point for adding and removing books by their field values.
package facade

import (
	"context"

	"github.com/AntonStoeckl/bookshelf-go/catalog"
	"github.com/AntonStoeckl/bookshelf-go/core"
	"github.com/AntonStoeckl/bookshelf-go/shell"
)

// Facade builds books from field values and hands them to a Repository it owns.
type Facade struct {
	repository *catalog.Repository
}

// NewFacade creates a Facade with its own catalog.Repository delivering to notifier.
func NewFacade(notifier shell.Notifier, opts ...catalog.Option) *Facade {
	return &Facade{
		repository: catalog.NewRepository(notifier, opts...),
	}
}

// AddBook builds a book from all three fields and adds it.
func (f *Facade) AddBook(ctx context.Context, title string, author string, publicationYear int) {
	book := core.NewBookBuilder().
		SetTitle(title).
		SetAuthor(author).
		SetPublicationYear(publicationYear).
		Build()

	f.repository.Add(ctx, book)
}

// RemoveBook builds a book carrying only the title and removes it.
func (f *Facade) RemoveBook(ctx context.Context, title string) {
	f.repository.Remove(ctx, core.NewBookBuilder().SetTitle(title).Build())
}
