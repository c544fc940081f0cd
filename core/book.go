package core

import "fmt"

// Book is an immutable record of a book's title, author and publication year.
//
// It has no identity beyond structural equality: two books with the same field values compare equal with ==.
// A Book can only be created with a BookBuilder; the zero value is a book with empty fields.
type Book struct {
	title           string
	author          string
	publicationYear int
}

// Title returns the title of the book.
func (b Book) Title() string {
	return b.title
}

// Author returns the author of the book.
func (b Book) Author() string {
	return b.author
}

// PublicationYear returns the year the book was published.
func (b Book) PublicationYear() int {
	return b.publicationYear
}

// String renders the book in a human-readable form.
func (b Book) String() string {
	return fmt.Sprintf("Title: %s, Author: %s, Publication year: %d", b.title, b.author, b.publicationYear)
}
