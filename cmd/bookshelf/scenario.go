package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/bookshelf-go/core"
	"github.com/AntonStoeckl/bookshelf-go/library"
)

const (
	bookTitle           = "The Go Programming Language"
	bookAuthor          = "Alan A. A. Donovan, Brian W. Kernighan"
	bookPublicationYear = 2015
)

var newCorrelationID = uuid.New

// addBooks runs the catalog scenario against the library found in ctx.
func addBooks(ctx context.Context) {
	lib, ok := library.FromContext(ctx)
	if !ok {
		lib = library.Instance()
	}

	book := core.NewBookBuilder().
		SetTitle(bookTitle).
		SetAuthor(bookAuthor).
		SetPublicationYear(bookPublicationYear).
		Build()

	lib.Adapter().AddBook(ctx, book.Title(), book.Author(), book.PublicationYear())
	lib.Adapter().RemoveBook(ctx, book.Title())
	lib.Decorator().Add(ctx, book)
	lib.Proxy().Add(ctx, book)
	lib.Facade().AddBook(ctx, book.Title(), book.Author(), book.PublicationYear())
}

func describe(event core.DomainEvent) string {
	switch e := event.(type) {
	case core.BookAddedToCatalog:
		return e.Book().String()
	case core.BookRemovedFromCatalog:
		return e.Book().String()
	case core.BookDetailNoted:
		return fmt.Sprintf("%s=%s", e.Field, e.Value)
	case core.AddingBookDenied:
		return fmt.Sprintf("caller=%q reason=%q", e.Caller, e.Reason)
	default:
		return ""
	}
}
