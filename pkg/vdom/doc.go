// Package vdom provides the virtual DOM node model and the reconciliation
// engine for minivdom.
//
// A Node describes one element or text unit. A Renderer reconciles a new
// tree against the tree previously rendered into the same target and drives
// a Host through its primitives (create, insert, set text, set or remove
// attributes, add or remove listeners, remove) until the target matches.
//
// # Core Types
//
// Node is either an element (KindElement) or a text node (KindText, whose
// Tag is always TextTag). Children is a union of four shapes: none, text,
// a single node, or a sequence. Prop is either an attribute or an event
// handler, decided when the prop is built.
//
// # Building Trees
//
//	tree := vdom.H("ul", nil,
//	    vdom.H("li", vdom.Props{vdom.Key(0)}, "a"),
//	    vdom.H("li", vdom.Props{vdom.Key(1)}, "b"),
//	)
//
// or with the element factories:
//
//	vdom.Div(vdom.Class("card"), vdom.OnClick(handler),
//	    vdom.H1("Title"),
//	    vdom.P("Content"),
//	)
//
// # Rendering
//
//	r := vdom.NewRenderer(host)
//	err := r.Render(tree, container)
//
// The renderer remembers each container's last tree in a Registry. Rendering
// nil clears the container.
//
// # Reconciliation Policy
//
// A tag change discards the old handle and mounts fresh. Text nodes and
// elements of the same tag keep their handle; props are diffed key by key.
// Child lists are reconciled by shape only: old sequences are removed and
// new sequences or single children are mounted fresh every time. Keys are
// applied as attributes but never used for matching.
//
// # Concurrency
//
// A Renderer does no locking of its own beyond its Registry. Renders into
// the same target must be serialized by the caller; distinct targets may be
// rendered concurrently if the Host allows it.
package vdom
