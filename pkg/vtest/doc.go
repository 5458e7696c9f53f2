// Package vtest provides testing helpers for trees and render targets.
//
// # Render Assertions
//
// Assert on the HTML of a tree description without mounting it:
//
//	vtest.ExpectContains(t, view(), "Count: 0")
//	vtest.ExpectAttribute(t, view(), "class", "text-red")
//
// # Harness
//
// A Harness renders into an in-memory target and records every primitive
// call, so tests can assert on the resulting HTML and on the mutations a
// render produced:
//
//	h := vtest.New(t)
//	h.Render(vdom.H("p", nil, "one"))
//	h.Reset()
//	h.Render(vdom.H("p", nil, "two"))
//	h.ExpectMutations(`setText: "two" on <p>`)
//	h.ExpectHTML("<p>two</p>")
package vtest
