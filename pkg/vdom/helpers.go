package vdom

import "fmt"

// Element creates an element node with explicit props and children.
func Element(tag string, props Props, children Children) *Node {
	return &Node{
		Kind:     KindElement,
		Tag:      tag,
		Props:    props,
		Children: children,
	}
}

// H creates an element node. Children follow these rules:
//
//   - no children: an empty sequence
//   - a single string: text content
//   - a single *Node: a single child
//   - a []*Node, a Children value, or several arguments: a sequence
//     (string arguments inside a sequence become text nodes)
//
// nil arguments are skipped.
func H(tag string, props Props, children ...any) *Node {
	return Element(tag, props, childrenOf(children))
}

// Text creates a text node.
func Text(content string) *Node {
	return &Node{
		Kind:     KindText,
		Tag:      TextTag,
		Children: TextChildren(content),
	}
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) *Node {
	return Text(fmt.Sprintf(format, args...))
}

// childrenOf converts H-style child arguments to Children.
func childrenOf(args []any) Children {
	filtered := args[:0:0]
	for _, a := range args {
		switch v := a.(type) {
		case nil:
			continue
		case *Node:
			if v == nil {
				continue
			}
		}
		filtered = append(filtered, a)
	}

	if len(filtered) == 1 {
		switch v := filtered[0].(type) {
		case string:
			return TextChildren(v)
		case *Node:
			return Single(v)
		case Children:
			return v
		}
	}

	list := make([]*Node, 0, len(filtered))
	for _, a := range filtered {
		switch v := a.(type) {
		case string:
			list = append(list, Text(v))
		case *Node:
			list = append(list, v)
		case []*Node:
			for _, c := range v {
				if c != nil {
					list = append(list, c)
				}
			}
		case Children:
			v.each(func(_ int, n *Node) { list = append(list, n) })
			if v.shape == ShapeText {
				list = append(list, Text(v.text))
			}
		default:
			list = append(list, Text(fmt.Sprintf("%v", v)))
		}
	}
	return Sequence(list...)
}

// If returns the node if condition is true, nil otherwise.
func If(condition bool, node *Node) *Node {
	if condition {
		return node
	}
	return nil
}

// IfElse returns the first node if condition is true, the second otherwise.
func IfElse(condition bool, ifTrue, ifFalse *Node) *Node {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// Range maps a slice to nodes.
func Range[T any](items []T, fn func(item T, index int) *Node) []*Node {
	result := make([]*Node, 0, len(items))
	for i, item := range items {
		node := fn(item, i)
		if node != nil {
			result = append(result, node)
		}
	}
	return result
}

// Repeat creates n nodes using the given function.
func Repeat(n int, fn func(i int) *Node) []*Node {
	if n <= 0 {
		return nil
	}
	result := make([]*Node, 0, n)
	for i := 0; i < n; i++ {
		node := fn(i)
		if node != nil {
			result = append(result, node)
		}
	}
	return result
}
