// Package memdom is a volatile, in-process implementation of the core.Element
// and core.Document collaborator interfaces, built on golang.org/x/net/html
// nodes and matched with CSS selectors compiled by cascadia. It is meant for
// tests, examples and server-side rendering where no browser DOM exists.
package memdom
