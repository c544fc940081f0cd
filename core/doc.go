// Package core contains the book record, its builder and the notifications
// emitted by the catalog for the example: Book management in a small library.
//
// A Book is an immutable snapshot of title, author and publication year.
// It can only be created through a BookBuilder.
//
// Every observable effect of the catalog is a domain event implementing the
// DomainEvent interface:
//   - BookAddedToCatalog
//   - BookRemovedFromCatalog
//   - BookDetailNoted
//   - AddingBookDenied
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'domain' layer.
package core
