package memdom

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/hupe1980/invokectx/core"
)

// Element is an element node of a Document. Elements are created by
// Document.CreateElement or Parse; the zero value has no node.
type Element struct {
	node *html.Node
	doc  *Document
}

// Tag returns the element's lowercase tag name.
func (e *Element) Tag() string { return e.node.Data }

// SetAttribute sets an attribute (chainable). Names are lowercased.
func (e *Element) SetAttribute(name, value string) *Element {
	name = strings.ToLower(name)

	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()

	for i := range e.node.Attr {
		if e.node.Attr[i].Namespace == "" && e.node.Attr[i].Key == name {
			e.node.Attr[i].Val = value
			return e
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: name, Val: value})

	return e
}

// Attribute returns an attribute value and whether it is set.
func (e *Element) Attribute(name string) (string, bool) {
	name = strings.ToLower(name)

	e.doc.mu.RLock()
	defer e.doc.mu.RUnlock()

	for _, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// AppendChild attaches child under e and returns child. A child that already
// has a parent is moved. Both elements must belong to the same document.
func (e *Element) AppendChild(child *Element) *Element {
	if child.doc != e.doc {
		panic("memdom: AppendChild across documents")
	}

	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()

	if p := child.node.Parent; p != nil {
		p.RemoveChild(child.node)
	}
	e.node.AppendChild(child.node)

	return child
}

// Append creates a child element with the given tag and returns it.
func (e *Element) Append(tag string) *Element {
	return e.AppendChild(e.doc.CreateElement(tag))
}

// Parent returns the parent element, or nil for the root and detached
// elements.
func (e *Element) Parent() *Element {
	e.doc.mu.RLock()
	p := e.node.Parent
	e.doc.mu.RUnlock()

	if p == nil || p.Type != html.ElementNode {
		return nil
	}
	return e.doc.wrap(p)
}

// Children returns the element children of e in document order.
func (e *Element) Children() []*Element {
	e.doc.mu.RLock()
	var nodes []*html.Node
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			nodes = append(nodes, c)
		}
	}
	e.doc.mu.RUnlock()

	out := make([]*Element, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, e.doc.wrap(n))
	}
	return out
}

// Matches reports whether e matches selector. Invalid selectors match nothing.
func (e *Element) Matches(selector string) bool {
	sel, err := compile(selector)
	if err != nil {
		return false
	}

	e.doc.mu.RLock()
	defer e.doc.mu.RUnlock()

	return sel.Match(e.node)
}

// Closest returns the nearest inclusive ancestor matching selector, or nil.
// A nil element has no ancestors.
func (e *Element) Closest(selector string) core.Element {
	if e == nil || e.node == nil {
		return nil
	}

	sel, err := compile(selector)
	if err != nil {
		return nil
	}

	e.doc.mu.RLock()
	var found *html.Node
	for n := e.node; n != nil && n.Type == html.ElementNode; n = n.Parent {
		if sel.Match(n) {
			found = n
			break
		}
	}
	e.doc.mu.RUnlock()

	if found == nil {
		return nil
	}
	return e.doc.wrap(found)
}

// OwnerDocument returns the owning document, or nil.
func (e *Element) OwnerDocument() core.Document {
	if e == nil || e.doc == nil {
		return nil
	}
	return e.doc
}

var (
	_ core.Element  = (*Element)(nil)
	_ core.Document = (*Document)(nil)
)
