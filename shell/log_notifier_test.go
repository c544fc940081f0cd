package shell_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/bookshelf-go/core"
	"github.com/AntonStoeckl/bookshelf-go/shell"
	"github.com/AntonStoeckl/bookshelf-go/testutil/spies"
)

func Test_LogNotifier_WritesOneLinePerEvent_WithHeadingBeforeDetails(t *testing.T) {
	// arrange
	handler := spies.NewLogHandlerSpy(false)
	notifier := shell.NewLogNotifier(shell.WithNotifierLogger(slog.New(handler)))
	ctx := context.Background()

	// act
	for _, detail := range core.BuildBookDetailsNoted(fixtureBook(), fixtureTime()) {
		require.NoError(t, notifier.Notify(ctx, detail))
	}
	require.NoError(t, notifier.Notify(ctx, core.BuildBookAddedToCatalog(fixtureBook(), fixtureTime())))

	// assert
	assert.Equal(t, []string{
		"adding supplementary information for book",
		"book detail",
		"book detail",
		"book detail",
		"book added to catalog",
	}, handler.Messages())

	book, found := handler.AttrOf(slog.LevelInfo, "book added to catalog", "book")
	require.True(t, found)
	assert.Equal(t, "Title: Dune, Author: Frank Herbert, Publication year: 1965", book.String())
}

func Test_LogNotifier_LogsDenialAtWarnLevel(t *testing.T) {
	// arrange
	handler := spies.NewLogHandlerSpy(false)
	notifier := shell.NewLogNotifier(shell.WithNotifierLogger(slog.New(handler)))

	// act
	err := notifier.Notify(context.Background(), core.BuildAddingBookDenied(fixtureBook(), "guest", "not allowed", fixtureTime()))

	// assert
	require.NoError(t, err)
	assert.True(t, handler.HasLog(slog.LevelWarn, "insufficient rights to add a book"))
}

func Test_LogNotifier_PrefersContextualLogger(t *testing.T) {
	// arrange
	handler := spies.NewLogHandlerSpy(false)
	contextual := spies.NewContextualLoggerSpy()
	notifier := shell.NewLogNotifier(
		shell.WithNotifierLogger(slog.New(handler)),
		shell.WithNotifierContextualLogger(contextual),
	)

	// act
	err := notifier.Notify(context.Background(), core.BuildBookRemovedFromCatalog(fixtureBook(), fixtureTime()))

	// assert
	require.NoError(t, err)
	assert.Zero(t, handler.RecordCount())
	assert.True(t, contextual.HasLog("info", "book removed from catalog"))
}

func Test_LogNotifier_IsSilentWithoutLogger(t *testing.T) {
	// arrange
	notifier := shell.NewLogNotifier()

	// act
	err := notifier.Notify(context.Background(), core.BuildBookAddedToCatalog(fixtureBook(), fixtureTime()))

	// assert
	assert.NoError(t, err)
}
