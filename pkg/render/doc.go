// Package render serializes a live memdom tree, or an unmounted vdom
// description, to HTML.
//
// It is the diagnostic view of a render target: what a browser would show
// for the container after reconciliation. Text and attribute values are
// escaped; void elements have no closing tag; boolean attributes set to
// "true" render as bare names.
//
// # Basic Usage
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	html, err := renderer.RenderToString(node)
//
// To render only a container's content (its innerHTML):
//
//	html, err := renderer.InnerHTML(container)
package render
