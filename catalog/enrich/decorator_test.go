package enrich_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/bookshelf-go/catalog"
	"github.com/AntonStoeckl/bookshelf-go/catalog/enrich"
	"github.com/AntonStoeckl/bookshelf-go/core"
	"github.com/AntonStoeckl/bookshelf-go/shell"
	"github.com/AntonStoeckl/bookshelf-go/testutil/spies"
)

func fixtureBook() core.Book {
	return core.NewBookBuilder().SetTitle("Dune").SetAuthor("Frank Herbert").SetPublicationYear(1965).Build()
}

func Test_Decorator_OverRepository_EmitsThreeDetailsThenAdded(t *testing.T) {
	// arrange
	recorder := shell.NewRecorder()
	decorator := enrich.NewDecorator(catalog.NewRepository(recorder), recorder)

	// act
	decorator.Add(context.Background(), fixtureBook())

	// assert
	assert.Equal(t, []string{
		core.BookDetailNotedEventType,
		core.BookDetailNotedEventType,
		core.BookDetailNotedEventType,
		core.BookAddedToCatalogEventType,
	}, recorder.EventTypes())

	events := recorder.Events()
	fields := make([]string, 0, 3)
	values := make([]string, 0, 3)
	for _, event := range events[:3] {
		detail, ok := event.(core.BookDetailNoted)
		require.True(t, ok)
		fields = append(fields, detail.Field)
		values = append(values, detail.Value)
	}
	assert.Equal(t, []string{core.BookFieldTitle, core.BookFieldAuthor, core.BookFieldPublicationYear}, fields)
	assert.Equal(t, []string{"Dune", "Frank Herbert", "1965"}, values)
}

func Test_Decorator_CanBeLayered(t *testing.T) {
	// arrange
	recorder := shell.NewRecorder()
	inner := enrich.NewDecorator(catalog.NewRepository(recorder), recorder)
	outer := enrich.NewDecorator(inner, recorder)

	// act
	outer.Add(context.Background(), fixtureBook())

	// assert
	types := recorder.EventTypes()
	require.Len(t, types, 7)
	assert.Equal(t, core.BookAddedToCatalogEventType, types[6])
}

func Test_Decorator_UsesClock(t *testing.T) {
	// arrange
	recorder := shell.NewRecorder()
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	decorator := enrich.NewDecorator(
		catalog.NewRepository(shell.Fanout()),
		recorder,
		enrich.WithClock(func() time.Time { return at }),
	)

	// act
	decorator.Add(context.Background(), fixtureBook())

	// assert
	for _, event := range recorder.Events() {
		assert.True(t, at.Equal(event.HasOccurredAt()))
	}
}

func Test_Decorator_DelegatesEvenWhenDetailDeliveryFails(t *testing.T) {
	// arrange
	recorder := shell.NewRecorder()
	handler := spies.NewLogHandlerSpy(false)
	failing := shell.NotifierFunc(func(context.Context, core.DomainEvent) error { return errors.New("closed") })
	decorator := enrich.NewDecorator(catalog.NewRepository(recorder), failing, enrich.WithLogger(slog.New(handler)))

	// act
	decorator.Add(context.Background(), fixtureBook())

	// assert
	assert.Equal(t, []string{core.BookAddedToCatalogEventType}, recorder.EventTypes())
	assert.Equal(t, 3, handler.RecordCount())
}
