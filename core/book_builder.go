package core

// BookBuilder accumulates field values and yields a Book.
//
// Setters overwrite unconditionally and never validate, so any combination of empty or zero values is accepted.
// Build can be called any number of times; each call returns a snapshot of the current values.
type BookBuilder struct {
	book Book
}

// NewBookBuilder starts the construction of a new Book.
func NewBookBuilder() *BookBuilder {
	return &BookBuilder{}
}

// SetTitle sets the title.
func (b *BookBuilder) SetTitle(title string) *BookBuilder {
	b.book.title = title
	return b
}

// SetAuthor sets the author.
func (b *BookBuilder) SetAuthor(author string) *BookBuilder {
	b.book.author = author
	return b
}

// SetPublicationYear sets the publication year.
func (b *BookBuilder) SetPublicationYear(publicationYear int) *BookBuilder {
	b.book.publicationYear = publicationYear
	return b
}

// Build returns a Book with the values set so far.
func (b *BookBuilder) Build() Book {
	return b.book
}
