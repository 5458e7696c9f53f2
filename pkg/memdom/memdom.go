package memdom

import (
	"fmt"
	"strings"

	"github.com/vango-dev/minivdom/pkg/vdom"
)

// NodeType separates elements from text nodes.
type NodeType uint8

const (
	ElementNode NodeType = iota
	TextNode
)

// Attribute is a name/value pair on an element.
type Attribute struct {
	Name  string
	Value string
}

type listener struct {
	event   string
	handler *vdom.Handler
}

// Node is an element or text node of a Document.
type Node struct {
	Type NodeType

	tag       string
	data      string
	attrs     []Attribute
	listeners []listener
	parent    *Node
	children  []*Node
}

// Document creates nodes and implements vdom.Host over them.
type Document struct{}

// New creates a Document.
func New() *Document {
	return &Document{}
}

var _ vdom.Host = (*Document)(nil)

// CreateContainer creates a detached element to render into.
func (d *Document) CreateContainer(tag string) *Node {
	return &Node{Type: ElementNode, tag: tag}
}

// CreateElement implements vdom.Host.
func (d *Document) CreateElement(tag string) vdom.Handle {
	return &Node{Type: ElementNode, tag: tag}
}

// CreateText implements vdom.Host.
func (d *Document) CreateText(text string) vdom.Handle {
	return &Node{Type: TextNode, data: text}
}

// Insert implements vdom.Host. A child that already has a parent is moved.
// An anchor that is not a child of parent appends.
func (d *Document) Insert(child, parent, anchor vdom.Handle) {
	c, p := asNode(child), asNode(parent)
	if c == nil || p == nil {
		return
	}
	c.detach()
	c.parent = p

	if a := asNode(anchor); a != nil && a.parent == p {
		i := p.indexOf(a)
		p.children = append(p.children, nil)
		copy(p.children[i+1:], p.children[i:])
		p.children[i] = c
		return
	}
	p.children = append(p.children, c)
}

// SetText implements vdom.Host.
func (d *Document) SetText(h vdom.Handle, text string) {
	n := asNode(h)
	if n == nil {
		return
	}
	if n.Type == TextNode {
		n.data = text
		return
	}
	for _, c := range n.children {
		c.parent = nil
	}
	n.children = nil
	if text != "" {
		n.children = []*Node{{Type: TextNode, data: text, parent: n}}
	}
}

// SetAttribute implements vdom.Host.
func (d *Document) SetAttribute(el vdom.Handle, key, value string) {
	n := asNode(el)
	if n == nil {
		return
	}
	for i := range n.attrs {
		if n.attrs[i].Name == key {
			n.attrs[i].Value = value
			return
		}
	}
	n.attrs = append(n.attrs, Attribute{Name: key, Value: value})
}

// RemoveAttribute implements vdom.Host.
func (d *Document) RemoveAttribute(el vdom.Handle, key string) {
	n := asNode(el)
	if n == nil {
		return
	}
	for i := range n.attrs {
		if n.attrs[i].Name == key {
			n.attrs = append(n.attrs[:i], n.attrs[i+1:]...)
			return
		}
	}
}

// AddEventListener implements vdom.Host. Adding the same handler twice for
// one event registers it once.
func (d *Document) AddEventListener(el vdom.Handle, event string, handler *vdom.Handler) {
	n := asNode(el)
	if n == nil || handler == nil {
		return
	}
	if n.HasListener(event, handler) {
		return
	}
	n.listeners = append(n.listeners, listener{event: event, handler: handler})
}

// RemoveEventListener implements vdom.Host.
func (d *Document) RemoveEventListener(el vdom.Handle, event string, handler *vdom.Handler) {
	n := asNode(el)
	if n == nil || handler == nil {
		return
	}
	for i, l := range n.listeners {
		if l.event == event && l.handler == handler {
			n.listeners = append(n.listeners[:i], n.listeners[i+1:]...)
			return
		}
	}
}

// Remove implements vdom.Host.
func (d *Document) Remove(h vdom.Handle) {
	if n := asNode(h); n != nil {
		n.detach()
	}
}

// asNode converts a handle created by a Document back to a *Node.
func asNode(h vdom.Handle) *Node {
	if h == nil {
		return nil
	}
	n, ok := h.(*Node)
	if !ok {
		panic(fmt.Sprintf("memdom: foreign handle %T", h))
	}
	return n
}

func (n *Node) detach() {
	p := n.parent
	if p == nil {
		return
	}
	if i := p.indexOf(n); i >= 0 {
		p.children = append(p.children[:i], p.children[i+1:]...)
	}
	n.parent = nil
}

func (n *Node) indexOf(child *Node) int {
	for i, c := range n.children {
		if c == child {
			return i
		}
	}
	return -1
}

// Tag returns the element's tag, or "#text" for text nodes.
func (n *Node) Tag() string {
	if n.Type == TextNode {
		return vdom.TextTag
	}
	return n.tag
}

// Data returns a text node's payload.
func (n *Node) Data() string { return n.data }

// Parent returns the parent node, or nil if detached.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the child nodes in document order.
func (n *Node) Children() []*Node { return n.children }

// Child returns the i-th child, or nil if out of range.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// Attr returns the value of the named attribute.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Attrs returns the attributes in the order they were first set.
func (n *Node) Attrs() []Attribute { return n.attrs }

// HasListener reports whether handler is registered for event.
func (n *Node) HasListener(event string, handler *vdom.Handler) bool {
	for _, l := range n.listeners {
		if l.event == event && l.handler == handler {
			return true
		}
	}
	return false
}

// ListenerCount returns the number of handlers registered for event.
func (n *Node) ListenerCount(event string) int {
	count := 0
	for _, l := range n.listeners {
		if l.event == event {
			count++
		}
	}
	return count
}

// Dispatch calls every handler registered for event on n and returns how
// many ran. Handlers added or removed while dispatching take effect on the
// next dispatch.
func (n *Node) Dispatch(event string, detail any) int {
	var handlers []*vdom.Handler
	for _, l := range n.listeners {
		if l.event == event {
			handlers = append(handlers, l.handler)
		}
	}
	for _, h := range handlers {
		h.Call(vdom.Event{Type: event, Target: n, Detail: detail})
	}
	return len(handlers)
}

// TextContent returns the concatenated text of n and its descendants.
func (n *Node) TextContent() string {
	if n.Type == TextNode {
		return n.data
	}
	var b strings.Builder
	for _, c := range n.children {
		b.WriteString(c.TextContent())
	}
	return b.String()
}

// Find returns the first descendant element with the given tag in
// depth-first order, or nil.
func (n *Node) Find(tag string) *Node {
	for _, c := range n.children {
		if c.Type == ElementNode && c.tag == tag {
			return c
		}
		if found := c.Find(tag); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every descendant element with the given tag in
// depth-first order.
func (n *Node) FindAll(tag string) []*Node {
	var out []*Node
	for _, c := range n.children {
		if c.Type == ElementNode && c.tag == tag {
			out = append(out, c)
		}
		out = append(out, c.FindAll(tag)...)
	}
	return out
}

// FindByID returns the first descendant element whose id attribute is id.
func (n *Node) FindByID(id string) *Node {
	for _, c := range n.children {
		if v, ok := c.Attr("id"); ok && v == id {
			return c
		}
		if found := c.FindByID(id); found != nil {
			return found
		}
	}
	return nil
}

// String describes the node for logs: "<tag>" for elements, the quoted
// text (cut after 15 characters) for text nodes.
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	if n.Type == TextNode {
		r := []rune(n.data)
		if len(r) > 15 {
			return fmt.Sprintf("%q", string(r[:15])+"...")
		}
		return fmt.Sprintf("%q", n.data)
	}
	return "<" + n.tag + ">"
}
