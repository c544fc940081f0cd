package guard

import (
	"context"
	"slices"
)

// Authorizer decides whether the caller behind ctx may add books.
type Authorizer interface {
	Authorize(ctx context.Context) bool
}

// AuthorizerFunc adapts a plain function to the Authorizer interface.
type AuthorizerFunc func(ctx context.Context) bool

// Authorize calls f(ctx).
func (f AuthorizerFunc) Authorize(ctx context.Context) bool {
	return f(ctx)
}

// AllowAll permits every caller. It is the default Authorizer of a Proxy.
var AllowAll Authorizer = AuthorizerFunc(func(context.Context) bool { return true })

type callerKey struct{}

// WithCaller returns a context carrying the identity of the caller.
func WithCaller(ctx context.Context, caller string) context.Context {
	return context.WithValue(ctx, callerKey{}, caller)
}

// CallerFrom returns the caller identity placed into the context with WithCaller, or "".
func CallerFrom(ctx context.Context) string {
	caller, _ := ctx.Value(callerKey{}).(string)
	return caller
}

// CallerAuthorizer permits the callers for which its predicate returns true.
// Contexts without a caller identity are denied.
type CallerAuthorizer struct {
	permits func(caller string) bool
}

// NewCallerAuthorizer creates a CallerAuthorizer from a predicate over caller identities.
func NewCallerAuthorizer(permits func(caller string) bool) *CallerAuthorizer {
	return &CallerAuthorizer{permits: permits}
}

// AllowCallers creates a CallerAuthorizer permitting exactly the listed callers.
func AllowCallers(callers ...string) *CallerAuthorizer {
	allowed := slices.Clone(callers)

	return NewCallerAuthorizer(func(caller string) bool {
		return slices.Contains(allowed, caller)
	})
}

// Authorize implements Authorizer.
func (a *CallerAuthorizer) Authorize(ctx context.Context) bool {
	caller := CallerFrom(ctx)
	if caller == "" {
		return false
	}

	return a.permits(caller)
}
