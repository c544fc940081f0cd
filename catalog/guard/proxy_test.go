package guard_test

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/bookshelf-go/catalog"
	"github.com/AntonStoeckl/bookshelf-go/catalog/guard"
	"github.com/AntonStoeckl/bookshelf-go/core"
	"github.com/AntonStoeckl/bookshelf-go/shell"
)

type countingSink struct {
	inner catalog.BookSink
	calls atomic.Int32
}

func (s *countingSink) Add(ctx context.Context, book core.Book) {
	s.calls.Add(1)
	s.inner.Add(ctx, book)
}

func fixtureBook() core.Book {
	return core.NewBookBuilder().SetTitle("Dune").SetAuthor("Frank Herbert").SetPublicationYear(1965).Build()
}

func Test_Proxy_Allowed_DelegatesOnce(t *testing.T) {
	// arrange
	recorder := shell.NewRecorder()
	sink := &countingSink{inner: catalog.NewRepository(recorder)}
	proxy := guard.NewProxy(sink, recorder)

	// act
	proxy.Add(context.Background(), fixtureBook())

	// assert
	assert.Equal(t, int32(1), sink.calls.Load())
	assert.Equal(t, []string{core.BookAddedToCatalogEventType}, recorder.EventTypes())
}

func Test_Proxy_Denied_EmitsOneDenialAndDoesNotDelegate(t *testing.T) {
	// arrange
	recorder := shell.NewRecorder()
	sink := &countingSink{inner: catalog.NewRepository(recorder)}
	denyAll := guard.AuthorizerFunc(func(context.Context) bool { return false })
	proxy := guard.NewProxy(sink, recorder, guard.WithAuthorizer(denyAll))

	// act
	proxy.Add(guard.WithCaller(context.Background(), "guest"), fixtureBook())

	// assert
	assert.Zero(t, sink.calls.Load())
	require.Equal(t, []string{core.AddingBookDeniedEventType}, recorder.EventTypes())
	denied, ok := recorder.Events()[0].(core.AddingBookDenied)
	require.True(t, ok)
	assert.Equal(t, "Dune", denied.Title)
	assert.Equal(t, "guest", denied.Caller)
	assert.Equal(t, guard.DenialReasonInsufficientRights, denied.Reason)
	assert.True(t, denied.IsErrorEvent())
}

func Test_Proxy_WithNilAuthorizer_KeepsAllowAll(t *testing.T) {
	// arrange
	recorder := shell.NewRecorder()
	proxy := guard.NewProxy(catalog.NewRepository(recorder), recorder, guard.WithAuthorizer(nil))

	// act
	proxy.Add(context.Background(), fixtureBook())

	// assert
	assert.Equal(t, []string{core.BookAddedToCatalogEventType}, recorder.EventTypes())
}

func Test_AllowCallers(t *testing.T) {
	authorizer := guard.AllowCallers("librarian", "admin")

	testCases := []struct {
		name    string
		ctx     context.Context
		allowed bool
	}{
		{name: "listed caller", ctx: guard.WithCaller(context.Background(), "librarian"), allowed: true},
		{name: "other listed caller", ctx: guard.WithCaller(context.Background(), "admin"), allowed: true},
		{name: "unlisted caller", ctx: guard.WithCaller(context.Background(), "guest"), allowed: false},
		{name: "no caller", ctx: context.Background(), allowed: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, authorizer.Authorize(tc.ctx))
		})
	}
}

func Test_CallerFrom_WithoutCaller_IsEmpty(t *testing.T) {
	assert.Equal(t, "", guard.CallerFrom(context.Background()))
	assert.Equal(t, "reader", guard.CallerFrom(guard.WithCaller(context.Background(), "reader")))
}

func Test_AllowAll_PermitsEveryContext(t *testing.T) {
	assert.True(t, guard.AllowAll.Authorize(context.Background()))
	assert.True(t, guard.AllowAll.Authorize(guard.WithCaller(context.Background(), "anyone")))
}
