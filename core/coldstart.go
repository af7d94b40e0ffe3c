package core

import "net/url"

// SerializedTuple is the minimal stand-in for an Invocation persisted on the
// document by the resume loader before any live Invocation exists.
type SerializedTuple struct {
	Element Element
	Event   any
	URL     *url.URL // optional
}

// ColdStartKind discriminates the content of a document's cold-start slot.
type ColdStartKind uint8

const (
	// ColdStartEmpty means nothing has been attached to the document.
	ColdStartEmpty ColdStartKind = iota
	// ColdStartTuple means a SerializedTuple awaits materialization.
	ColdStartTuple
	// ColdStartMaterialized means the tuple has already been converted and
	// the resulting Invocation is cached on the document.
	ColdStartMaterialized
)

// String returns the name of the kind.
func (k ColdStartKind) String() string {
	switch k {
	case ColdStartEmpty:
		return "empty"
	case ColdStartTuple:
		return "tuple"
	case ColdStartMaterialized:
		return "materialized"
	default:
		return "unknown"
	}
}

// ColdStart is the tagged content of a document's cold-start slot. The zero
// value is an empty slot.
type ColdStart struct {
	kind  ColdStartKind
	tuple SerializedTuple
	inv   *Invocation
}

// TupleColdStart wraps a serialized tuple for storage on a document.
func TupleColdStart(t SerializedTuple) ColdStart {
	return ColdStart{kind: ColdStartTuple, tuple: t}
}

// MaterializedColdStart wraps a live Invocation for storage on a document. A
// nil Invocation yields an empty slot.
func MaterializedColdStart(inv *Invocation) ColdStart {
	if inv == nil {
		return ColdStart{}
	}
	return ColdStart{kind: ColdStartMaterialized, inv: inv}
}

// Kind reports what the slot holds.
func (c ColdStart) Kind() ColdStartKind { return c.kind }

// Tuple returns the serialized tuple when the slot holds one.
func (c ColdStart) Tuple() (SerializedTuple, bool) {
	return c.tuple, c.kind == ColdStartTuple
}

// Invocation returns the cached Invocation when the slot holds one.
func (c ColdStart) Invocation() (*Invocation, bool) {
	return c.inv, c.kind == ColdStartMaterialized
}
