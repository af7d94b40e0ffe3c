package core

import "fmt"

type renderEvent string

// RenderEvent is the marker the rendering pipeline sets as the event of every
// render-phase invocation. Any other event value, including a plain string
// with the same text, is not a render event.
const RenderEvent renderEvent = "qRender"

// IsRenderEvent reports whether ev is the render-phase marker.
func IsRenderEvent(ev any) bool {
	r, ok := ev.(renderEvent)
	return ok && r == RenderEvent
}

// RenderInvocation is an Invocation validated for render-phase use: HostElement,
// WaitOn, RenderCtx and Doc are set and Subscriber is present (possibly
// NoSubscriber).
type RenderInvocation struct {
	*Invocation
}

// renderFields lists the fields checked by AsRenderInvocation, in order.
var renderFields = []struct {
	name    string
	present func(*Invocation) bool
}{
	{"HostElement", func(inv *Invocation) bool { return inv.HostElement != nil }},
	{"WaitOn", func(inv *Invocation) bool { return inv.WaitOn != nil }},
	{"RenderCtx", func(inv *Invocation) bool { return inv.RenderCtx != nil }},
	{"Doc", func(inv *Invocation) bool { return inv.Doc != nil }},
	{"Subscriber", func(inv *Invocation) bool { return inv.Subscriber.Present() }},
}

// AsRenderInvocation narrows inv to a RenderInvocation. It fails with
// ErrNotInRenderPhase when inv's event is not RenderEvent, and with a
// *MissingFieldError naming the first absent required field otherwise.
func AsRenderInvocation(inv *Invocation) (*RenderInvocation, error) {
	if inv == nil {
		return nil, ErrOutsideContext
	}

	if !IsRenderEvent(inv.Event) {
		return nil, ErrNotInRenderPhase
	}

	for _, f := range renderFields {
		if !f.present(inv) {
			return nil, &MissingFieldError{Field: f.name}
		}
	}

	return &RenderInvocation{Invocation: inv}, nil
}

// EventName returns a short label for an event value. Strings pass through
// unchanged, so the result is as varied as the events applications dispatch.
func EventName(ev any) string {
	switch e := ev.(type) {
	case nil:
		return "none"
	case renderEvent:
		return "render"
	case interface{ Type() string }:
		return e.Type()
	case string:
		return e
	case fmt.Stringer:
		return e.String()
	default:
		return fmt.Sprintf("%T", ev)
	}
}
