package vdom

import "github.com/vango-dev/minivdom/internal/errors"

// patch reconciles next against prev inside container. prev may be nil for
// a fresh mount. New handles are inserted before anchor, or appended when
// anchor is nil.
func (r *Renderer) patch(prev, next *Node, container, anchor Handle) error {
	// Different tags never share a handle
	if prev != nil && prev.Tag != next.Tag {
		r.host.Remove(prev.handle)
		prev = nil
	}

	if prev != nil && prev.handle == nil {
		return errors.New("E202").WithPath(prev.Tag)
	}

	if next.Tag == TextTag {
		r.processText(prev, next, container, anchor)
		return nil
	}

	if prev == nil {
		r.mountElement(next, container, anchor)
		return nil
	}
	r.patchElement(prev, next)
	return nil
}

// processText mounts or updates a text node.
func (r *Renderer) processText(prev, next *Node, container, anchor Handle) {
	if prev == nil {
		next.handle = r.host.CreateText(next.Children.text)
		r.host.Insert(next.handle, container, anchor)
		return
	}

	next.handle = prev.handle
	if next.Children.text != prev.Children.text {
		r.host.SetText(next.handle, next.Children.text)
	}
}

// mountElement creates the handle for next and its subtree, then inserts it.
// Children are built into the detached handle before it is attached.
func (r *Renderer) mountElement(next *Node, container, anchor Handle) {
	el := r.host.CreateElement(next.Tag)
	next.handle = el

	switch next.Children.shape {
	case ShapeText:
		r.host.SetText(el, next.Children.text)
	case ShapeSequence:
		for _, child := range next.Children.list {
			r.mount(child, el)
		}
	case ShapeSingle:
		r.mount(next.Children.node, el)
	}

	for i := range next.Props {
		p := next.Props[i]
		if p.IsEmpty() {
			continue
		}
		r.patchProp(el, nil, &p)
	}

	r.host.Insert(el, container, anchor)
}

// mount creates next from scratch and appends it to container.
func (r *Renderer) mount(next *Node, container Handle) {
	if next.Tag == TextTag {
		r.processText(nil, next, container, nil)
		return
	}
	r.mountElement(next, container, nil)
}

// patchElement updates prev's handle in place to match next.
func (r *Renderer) patchElement(prev, next *Node) {
	el := prev.handle
	next.handle = el

	r.patchProps(el, prev.Props, next.Props)
	r.patchChildren(prev.Children, next.Children, el)
}
