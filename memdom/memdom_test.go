package memdom

import (
	"bytes"
	"testing"

	"github.com/hupe1980/invokectx/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTree() (*Document, *Element, *Element) {
	doc := NewDocument()
	container := doc.Root().Append("div").SetAttribute("q:container", "paused")
	button := container.Append("section").SetAttribute("class", "card").Append("button").SetAttribute("id", "go")
	return doc, container, button
}

func TestElement_ClosestEscapedAttribute(t *testing.T) {
	_, container, button := buildTree()

	assert.Same(t, container, button.Closest(core.ContainerSelector))
	assert.Same(t, container, button.Closest(`[q\:container="paused"]`))
	assert.Same(t, container, button.Closest(`div[q\:container='paused']`))
	assert.Nil(t, button.Closest(`[q\:container=resumed]`))
}

func TestElement_ClosestInclusive(t *testing.T) {
	_, _, button := buildTree()
	assert.Same(t, button, button.Closest("#go"))
	assert.Same(t, button, button.Closest("button"))
}

func TestElement_TagAndAttributesAreCaseInsensitive(t *testing.T) {
	doc := NewDocument()
	el := doc.Root().Append("BUTTON").SetAttribute("Data-Role", "save")

	assert.Equal(t, "button", el.Tag())
	v, ok := el.Attribute("data-role")
	require.True(t, ok)
	assert.Equal(t, "save", v)
	assert.Same(t, el, doc.QuerySelector(`button[data-role="save"]`))
}

func TestElement_ClosestSelectorList(t *testing.T) {
	doc, _, button := buildTree()
	assert.Same(t, doc.Root(), button.Closest("html, aside"))
}

func TestElement_ClosestInvalidSelector(t *testing.T) {
	_, _, button := buildTree()
	assert.Nil(t, button.Closest("[unterminated"))
	assert.Nil(t, button.Closest("div > span"))
	assert.Nil(t, button.Closest(""))
	assert.Nil(t, button.Closest("   "))
	assert.False(t, button.Matches("#"))
}

func TestElement_OwnerDocument(t *testing.T) {
	doc, _, button := buildTree()
	assert.Same(t, doc, button.OwnerDocument())

	assert.Nil(t, (&Element{}).OwnerDocument())
}

func TestElement_NilReceiver(t *testing.T) {
	var el *Element

	assert.NotPanics(t, func() {
		assert.Nil(t, el.OwnerDocument())
		assert.Nil(t, el.Closest(core.ContainerSelector))
	})

	// A typed nil behind the interface must read as "no document" too.
	var iface core.Element = el
	assert.Nil(t, core.DocumentOf(iface))
	assert.Nil(t, core.FindWrappingContainer(iface))
}

func TestElement_IdentityIsStable(t *testing.T) {
	doc, container, button := buildTree()

	assert.Same(t, button, doc.QuerySelector("#go"))
	assert.Same(t, container, doc.Root().Children()[0])
	assert.Same(t, container, button.Parent().Parent())
}

func TestElement_AppendChildMoves(t *testing.T) {
	doc, container, button := buildTree()
	aside := doc.Root().Append("aside")

	aside.AppendChild(button)

	assert.Same(t, aside, button.Parent())
	assert.Nil(t, button.Closest(core.ContainerSelector))
	assert.Empty(t, container.Children()[0].Children())
}

func TestDocument_QuerySelector(t *testing.T) {
	doc, _, button := buildTree()
	assert.Same(t, button, doc.QuerySelector("#go"))
	assert.Nil(t, doc.QuerySelector("#missing"))
}

func TestParse(t *testing.T) {
	doc, err := Parse(`<div q:container="resumed"><section q:host id="counter"><button id="inc">+</button></section></div>`)
	require.NoError(t, err)

	assert.Equal(t, "html", doc.Root().Tag())
	button := doc.QuerySelector("#inc")
	require.NotNil(t, button)
	assert.Same(t, doc, button.OwnerDocument())

	container := button.Closest(core.ContainerSelector)
	require.NotNil(t, container)
	v, ok := container.(*Element).Attribute("q:container")
	require.True(t, ok)
	assert.Equal(t, "resumed", v)
}

func TestDocument_Render(t *testing.T) {
	doc, _, _ := buildTree()

	var buf bytes.Buffer
	require.NoError(t, doc.Render(&buf))
	assert.Equal(t, `<html><div q:container="paused"><section class="card"><button id="go"></button></section></div></html>`, buf.String())
}

func TestDocument_ColdStartSlot(t *testing.T) {
	doc, _, button := buildTree()
	assert.Equal(t, core.ColdStartEmpty, doc.ColdStart().Kind())

	doc.AttachTuple(core.SerializedTuple{Element: button, Event: "click"})
	tuple, ok := doc.ColdStart().Tuple()
	require.True(t, ok)
	assert.Same(t, button, tuple.Element)
}
