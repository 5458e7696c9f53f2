package vdom

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement VKind = iota // <div>, <button>, etc.
	KindText                 // Plain text node
)

// TextTag is the reserved tag carried by text nodes. It can never be a
// valid element tag, so tag comparison alone separates text from elements.
const TextTag = "#text"

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	default:
		return "Unknown"
	}
}

// Node is the virtual DOM node.
//
// Nodes are immutable by convention once handed to a Renderer. The only
// state the engine writes is the handle back-reference, which is not part
// of the logical tree and is excluded from dumps and comparisons.
type Node struct {
	Kind     VKind    // Node type
	Tag      string   // Element tag name, or TextTag
	Props    Props    // Attributes and event handlers
	Children Children // Text, single child, sequence or nothing

	// handle is the host object this node was mounted to.
	handle Handle
}

// Handle returns the host handle the node was mounted to, or nil if the
// node has not been mounted.
func (n *Node) Handle() Handle {
	if n == nil {
		return nil
	}
	return n.handle
}

// IsText reports whether the node is a text node.
func (n *Node) IsText() bool {
	return n != nil && n.Tag == TextTag
}

// Text returns the payload of a text node, or the text children of an
// element whose children are a plain string.
func (n *Node) Text() string {
	if n == nil {
		return ""
	}
	return n.Children.text
}

// Key returns the value of the node's "key" attribute. Keys are informative
// only: child reconciliation never consults them.
func (n *Node) Key() (string, bool) {
	if n == nil {
		return "", false
	}
	p, ok := n.Props.Get(PropAttr, "key")
	if !ok || p.Value == nil {
		return "", false
	}
	return propToString(p.Value), true
}

// ChildShape describes which of the child representations is in use.
type ChildShape uint8

const (
	ShapeNone     ChildShape = iota // No children
	ShapeText                       // Plain string set as text content
	ShapeSingle                     // Exactly one child node
	ShapeSequence                   // Ordered list of child nodes
)

// String returns the string representation of the ChildShape.
func (s ChildShape) String() string {
	switch s {
	case ShapeNone:
		return "None"
	case ShapeText:
		return "Text"
	case ShapeSingle:
		return "Single"
	case ShapeSequence:
		return "Sequence"
	default:
		return "Unknown"
	}
}

// Children holds exactly one of the child shapes. The zero value has no
// children. The fields are unexported so a value can only be built through
// the constructors, which keeps the shape unambiguous.
type Children struct {
	shape ChildShape
	text  string
	node  *Node
	list  []*Node
}

// NoChildren returns an absent child list.
func NoChildren() Children { return Children{} }

// TextChildren returns children that set the element's text content.
func TextChildren(s string) Children {
	return Children{shape: ShapeText, text: s}
}

// Single returns children holding exactly one node.
func Single(n *Node) Children {
	return Children{shape: ShapeSingle, node: n}
}

// Sequence returns an ordered child list. An empty sequence is still a
// sequence, distinct from NoChildren.
func Sequence(nodes ...*Node) Children {
	if nodes == nil {
		nodes = []*Node{}
	}
	return Children{shape: ShapeSequence, list: nodes}
}

// Shape returns which child representation is in use.
func (c Children) Shape() ChildShape { return c.shape }

// Text returns the string payload for ShapeText.
func (c Children) Text() string { return c.text }

// Node returns the child for ShapeSingle.
func (c Children) Node() *Node { return c.node }

// Nodes returns the child list for ShapeSequence.
func (c Children) Nodes() []*Node { return c.list }

// Len returns the number of child nodes (0 for text and absent children).
func (c Children) Len() int {
	switch c.shape {
	case ShapeSingle:
		return 1
	case ShapeSequence:
		return len(c.list)
	default:
		return 0
	}
}

// each calls fn for every child node.
func (c Children) each(fn func(i int, n *Node)) {
	switch c.shape {
	case ShapeSingle:
		fn(0, c.node)
	case ShapeSequence:
		for i, n := range c.list {
			fn(i, n)
		}
	}
}
