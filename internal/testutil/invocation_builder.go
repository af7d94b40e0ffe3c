package testutil

import (
	"net/url"

	"github.com/hupe1980/invokectx/await"
	"github.com/hupe1980/invokectx/core"
)

// InvocationBuilder provides a fluent helper for constructing invocations in tests.
// Example:
//
//	inv := NewInvocationBuilder().Doc(doc).Host(host).Render().Build()
//
// Chain only the fields you need; everything else stays absent.
type InvocationBuilder struct {
	inv *core.Invocation
}

// NewInvocationBuilder creates a builder for an invocation with every field absent.
func NewInvocationBuilder() *InvocationBuilder {
	return &InvocationBuilder{inv: core.NewInvocation(nil, nil, nil, nil, nil)}
}

// ID overrides the auto-generated invocation ID (chainable).
func (b *InvocationBuilder) ID(id string) *InvocationBuilder { b.inv.ID = id; return b }

// Doc sets the source document (chainable).
func (b *InvocationBuilder) Doc(d core.Document) *InvocationBuilder { b.inv.Doc = d; return b }

// Host sets the host element (chainable).
func (b *InvocationBuilder) Host(el core.Element) *InvocationBuilder { b.inv.HostElement = el; return b }

// Element sets the DOM element (chainable).
func (b *InvocationBuilder) Element(el core.Element) *InvocationBuilder { b.inv.Element = el; return b }

// Event sets the triggering event (chainable).
func (b *InvocationBuilder) Event(ev any) *InvocationBuilder { b.inv.Event = ev; return b }

// URL parses and sets the resolved URL (chainable). It panics on invalid input.
func (b *InvocationBuilder) URL(raw string) *InvocationBuilder {
	b.inv.URL = MustURL(raw)
	return b
}

// QRL sets the lazy module reference (chainable).
func (b *InvocationBuilder) QRL(symbol string) *InvocationBuilder { b.inv.QRL = QRL(symbol); return b }

// WaitOn attaches a fresh wait-list seeded with items (chainable).
func (b *InvocationBuilder) WaitOn(items ...await.Awaitable) *InvocationBuilder {
	b.inv.WaitOn = await.NewWaitList(items...)
	return b
}

// Props sets the property bag (chainable).
func (b *InvocationBuilder) Props(p core.Props) *InvocationBuilder { b.inv.Props = p; return b }

// Subscriber sets the subscriber handle (chainable).
func (b *InvocationBuilder) Subscriber(h core.SubscriberHandle) *InvocationBuilder {
	b.inv.Subscriber = h
	return b
}

// RenderCtx sets the render context (chainable).
func (b *InvocationBuilder) RenderCtx(rc core.RenderContext) *InvocationBuilder {
	b.inv.RenderCtx = rc
	return b
}

// Render marks the invocation as a render-phase invocation and fills any
// render-required field still absent with a placeholder: a fresh wait-list,
// a RenderContext, NoSubscriber. Doc and HostElement must be set separately.
func (b *InvocationBuilder) Render() *InvocationBuilder {
	b.inv.Event = core.RenderEvent
	if b.inv.WaitOn == nil {
		b.inv.WaitOn = await.NewWaitList()
	}
	if b.inv.RenderCtx == nil {
		b.inv.RenderCtx = &RenderContext{}
	}
	if !b.inv.Subscriber.Present() {
		b.inv.Subscriber = core.NoSubscriber()
	}
	return b
}

// Build returns the constructed invocation.
func (b *InvocationBuilder) Build() *core.Invocation { return b.inv }

// RenderContext is a placeholder render context.
type RenderContext struct {
	Name string
}

// QRL is a ModuleRef identified by its symbol.
type QRL string

// Symbol returns the symbol name.
func (q QRL) Symbol() string { return string(q) }

// MustURL parses raw and panics on error.
func MustURL(raw string) *url.URL {
	u, err := url.Parse(raw)
	if err != nil {
		panic(err)
	}
	return u
}
