package core

import "context"

type invocationKey struct{}

// WithInvocation returns a copy of ctx carrying inv. Collaborators that pass
// the invocation explicitly, or that resume after a suspension point, read it
// back with FromContext instead of relying on a realm's ambient slot.
func WithInvocation(ctx context.Context, inv *Invocation) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, invocationKey{}, inv)
}

// FromContext returns the Invocation carried by ctx, if any.
func FromContext(ctx context.Context) (*Invocation, bool) {
	if ctx == nil {
		return nil, false
	}
	inv, ok := ctx.Value(invocationKey{}).(*Invocation)
	return inv, ok && inv != nil
}
