package catalog

import (
	"context"

	"github.com/AntonStoeckl/bookshelf-go/core"
)

// BookSink accepts books to be added to the catalog.
type BookSink interface {
	Add(ctx context.Context, book core.Book)
}

// BookRemover accepts books to be removed from the catalog.
type BookRemover interface {
	Remove(ctx context.Context, book core.Book)
}

// BookCatalog can both add and remove books.
type BookCatalog interface {
	BookSink
	BookRemover
}
