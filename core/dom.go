package core

// ContainerSelector matches the element that marks a container boundary.
const ContainerSelector = `[q\:container]`

// Element is the subset of a DOM (or virtual) element the invocation core
// relies on. Implementations live with the rendering pipeline; memdom offers
// an in-memory one.
type Element interface {
	// Closest returns the nearest inclusive ancestor matching selector, or nil.
	Closest(selector string) Element
	// OwnerDocument returns the document the element belongs to, or nil when
	// the element is detached.
	OwnerDocument() Document
}

// Document is the owning document of an element. It exposes the well-known
// cold-start slot written by the resume loader and read by realms.
type Document interface {
	// ColdStart returns the current content of the cold-start slot.
	ColdStart() ColdStart
	// SetColdStart replaces the content of the cold-start slot.
	SetColdStart(cs ColdStart)
}

// ModuleRef identifies a lazily loadable unit of code.
type ModuleRef interface {
	Symbol() string
}

// Props is the property bag of a component.
type Props map[string]any

// Subscriber is an opaque handle owned by the reactivity graph.
type Subscriber any

// RenderContext is an opaque handle owned by the rendering pipeline.
type RenderContext any

// FindWrappingContainer returns the nearest ancestor of el (el included) that
// is marked as a container boundary, or nil when there is none.
func FindWrappingContainer(el Element) Element {
	if el == nil {
		return nil
	}
	return el.Closest(ContainerSelector)
}

// DocumentOf resolves the owning document of el. A nil element has no
// document.
func DocumentOf(el Element) Document {
	if el == nil {
		return nil
	}
	return el.OwnerDocument()
}
