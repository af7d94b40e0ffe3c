package memdom

import (
	"errors"
	"io"
	"strings"
	"sync"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/hupe1980/invokectx/core"
)

// ErrNoRootElement is returned by Parse for markup without a document element.
var ErrNoRootElement = errors.New("memdom: markup has no root element")

// Document is an in-memory document. It is safe for concurrent access.
type Document struct {
	// mu guards the node tree.
	mu   sync.RWMutex
	node *html.Node
	root *Element

	wrapMu   sync.Mutex
	wrappers map[*html.Node]*Element

	slotMu    sync.RWMutex
	coldStart core.ColdStart
}

// NewDocument constructs an empty document with an <html> root element.
func NewDocument() *Document {
	d := newDocument(&html.Node{Type: html.DocumentNode})
	d.root = d.CreateElement("html")
	d.node.AppendChild(d.root.node)
	return d
}

// Parse builds a document from HTML markup. Attribute names are lowercased
// by the parser, so selectors match them case-insensitively.
func Parse(markup string) (*Document, error) {
	n, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, err
	}

	d := newDocument(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			d.root = d.wrap(c)
			return d, nil
		}
	}

	return nil, ErrNoRootElement
}

func newDocument(n *html.Node) *Document {
	return &Document{node: n, wrappers: map[*html.Node]*Element{}}
}

// Root returns the document element.
func (d *Document) Root() *Element { return d.root }

// CreateElement returns a detached element owned by d. Tag names are
// lowercased.
func (d *Document) CreateElement(tag string) *Element {
	tag = strings.ToLower(tag)
	return d.wrap(&html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	})
}

// wrap returns the Element for n, creating it on first use so identity
// comparisons between lookups hold.
func (d *Document) wrap(n *html.Node) *Element {
	d.wrapMu.Lock()
	defer d.wrapMu.Unlock()

	if e, ok := d.wrappers[n]; ok {
		return e
	}

	e := &Element{node: n, doc: d}
	d.wrappers[n] = e

	return e
}

// ColdStart returns the content of the cold-start slot.
func (d *Document) ColdStart() core.ColdStart {
	d.slotMu.RLock()
	defer d.slotMu.RUnlock()
	return d.coldStart
}

// SetColdStart replaces the content of the cold-start slot.
func (d *Document) SetColdStart(cs core.ColdStart) {
	d.slotMu.Lock()
	defer d.slotMu.Unlock()
	d.coldStart = cs
}

// AttachTuple stores a serialized tuple in the cold-start slot, the way a
// resume loader does before handing control to application code.
func (d *Document) AttachTuple(t core.SerializedTuple) {
	d.SetColdStart(core.TupleColdStart(t))
}

// QuerySelector returns the first element in document order matching
// selector, or nil. Invalid selectors match nothing.
func (d *Document) QuerySelector(selector string) *Element {
	sel, err := compile(selector)
	if err != nil {
		return nil
	}

	d.mu.RLock()
	n := cascadia.Query(d.node, sel)
	d.mu.RUnlock()

	if n == nil {
		return nil
	}
	return d.wrap(n)
}

// Render writes the document as HTML.
func (d *Document) Render(w io.Writer) error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return html.Render(w, d.node)
}

var selectors sync.Map // string -> cascadia.SelectorGroup

var errEmptySelector = errors.New("memdom: empty selector")

func compile(selector string) (cascadia.SelectorGroup, error) {
	if cached, ok := selectors.Load(selector); ok {
		return cached.(cascadia.SelectorGroup), nil
	}

	if strings.TrimSpace(selector) == "" {
		return nil, errEmptySelector
	}

	sel, err := cascadia.ParseGroup(selector)
	if err != nil {
		return nil, err
	}

	selectors.Store(selector, sel)

	return sel, nil
}
