package vdom

// patchChildren reconciles the children of container by shape only.
//
// Any old sequence is removed handle by handle, and any new sequence or
// single child is mounted fresh. Nothing is matched by position or key.
// Non-sequence old children are cleared through the container's text
// content, which also drops a previous single child.
func (r *Renderer) patchChildren(prev, next Children, container Handle) {
	switch next.shape {
	case ShapeText:
		switch prev.shape {
		case ShapeSequence:
			r.removeAll(prev.list)
		case ShapeText:
			if prev.text == next.text {
				return
			}
		}
		r.host.SetText(container, next.text)

	case ShapeSequence:
		r.clear(prev, container, true)
		for _, child := range next.list {
			r.mount(child, container)
		}

	case ShapeSingle:
		r.clear(prev, container, true)
		r.mount(next.node, container)

	default:
		r.clear(prev, container, false)
	}
}

// clear drops the previous children of container. Sequences are removed
// handle by handle; anything else is cleared through the text content,
// which is skipped for absent children unless always is set.
func (r *Renderer) clear(prev Children, container Handle, always bool) {
	if prev.shape == ShapeSequence {
		r.removeAll(prev.list)
		return
	}
	if always || prev.shape != ShapeNone {
		r.host.SetText(container, "")
	}
}

// removeAll detaches every mounted handle in nodes.
func (r *Renderer) removeAll(nodes []*Node) {
	for _, n := range nodes {
		if n == nil || n.handle == nil {
			continue
		}
		r.host.Remove(n.handle)
	}
}
