// Package memdom is an in-memory render target implementing vdom.Host.
//
// It models just enough of a document for reconciliation: elements with
// ordered attributes, event listeners and children, and text nodes. It is
// used by tests, the CLI demo and the dev panel in place of a browser.
//
// A Document and its nodes are not safe for concurrent use.
package memdom
