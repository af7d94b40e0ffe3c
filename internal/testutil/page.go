package testutil

import "github.com/hupe1980/invokectx/memdom"

// Page is a small DOM fixture:
//
//	<html>
//	  <div q:container="resumed">
//	    <section q:host="" id="counter">
//	      <button id="inc" on:click="..."></button>
//	    </section>
//	  </div>
//	  <aside id="outside"></aside>
//	</html>
type Page struct {
	Doc       *memdom.Document
	Container *memdom.Element
	Host      *memdom.Element
	Button    *memdom.Element
	Outside   *memdom.Element
}

// NewPage builds the fixture.
func NewPage() *Page {
	doc := memdom.NewDocument()
	container := doc.Root().Append("div").SetAttribute("q:container", "resumed")
	host := container.Append("section").SetAttribute("q:host", "").SetAttribute("id", "counter")
	button := host.Append("button").SetAttribute("id", "inc").SetAttribute("on:click", "counter.js#onClick")
	outside := doc.Root().Append("aside").SetAttribute("id", "outside")

	return &Page{Doc: doc, Container: container, Host: host, Button: button, Outside: outside}
}
