package core

import (
	"net/url"

	"github.com/hupe1980/invokectx/await"
)

// Invocation describes the logical invocation currently running: which
// document, element and event it runs on behalf of, and the per-invocation
// state nested code accumulates (sequence counter, wait-list).
//
// Every field is independently optional; nil means absent. Subscriber is the
// exception: it distinguishes absent from "explicitly no subscriber" through
// SubscriberHandle.
//
// Only code running while the Invocation is current in a realm may mutate Seq
// and WaitOn. Nested invocations that displace it do not touch it.
type Invocation struct {
	// ID correlates the log records of one invocation. It is not part of the
	// invocation's data: no operation reads it and identity is the pointer.
	// The constructors always set it.
	ID string

	Seq         int
	Doc         Document
	HostElement Element
	Element     Element
	Event       any
	QRL         ModuleRef
	WaitOn      *await.WaitList
	Props       Props
	Subscriber  SubscriberHandle
	RenderCtx   RenderContext
	URL         *url.URL
}

// NewInvocation constructs an Invocation from the explicit fields. Seq starts
// at 0; QRL, WaitOn, Props, RenderCtx and Subscriber start absent.
func NewInvocation(doc Document, hostElement, element Element, event any, u *url.URL) *Invocation {
	return &Invocation{
		ID:          NewID(),
		Doc:         doc,
		HostElement: hostElement,
		Element:     element,
		Event:       event,
		URL:         u,
	}
}

// NewInvocationFromTuple materializes a cold-start tuple. The document is
// resolved from the tuple's element; the host element stays absent.
func NewInvocationFromTuple(t SerializedTuple) *Invocation {
	return NewInvocation(DocumentOf(t.Element), nil, t.Element, t.Event, t.URL)
}

// NextSeq returns the current sequence index and advances the counter.
func (inv *Invocation) NextSeq() int {
	seq := inv.Seq
	inv.Seq++
	return seq
}

// EventName returns a short label for the invocation's event.
func (inv *Invocation) EventName() string { return EventName(inv.Event) }

// SubscriberState discriminates the three states of a SubscriberHandle.
type SubscriberState uint8

const (
	// SubscriberAbsent means subscription tracking does not apply.
	SubscriberAbsent SubscriberState = iota
	// SubscriberNone means tracking applies but no subscriber is tracked.
	SubscriberNone
	// SubscriberTracked means a subscriber is tracked.
	SubscriberTracked
)

// SubscriberHandle is the tri-state subscriber slot. The zero value is absent.
type SubscriberHandle struct {
	state SubscriberState
	sub   Subscriber
}

// NoSubscriber returns a present handle that tracks nothing.
func NoSubscriber() SubscriberHandle {
	return SubscriberHandle{state: SubscriberNone}
}

// TrackSubscriber returns a handle tracking s. A nil s yields NoSubscriber.
func TrackSubscriber(s Subscriber) SubscriberHandle {
	if s == nil {
		return NoSubscriber()
	}
	return SubscriberHandle{state: SubscriberTracked, sub: s}
}

// State reports which of the three states the handle is in.
func (h SubscriberHandle) State() SubscriberState { return h.state }

// Present reports whether the handle is not absent.
func (h SubscriberHandle) Present() bool { return h.state != SubscriberAbsent }

// Get returns the tracked subscriber, if any.
func (h SubscriberHandle) Get() (Subscriber, bool) {
	return h.sub, h.state == SubscriberTracked
}
