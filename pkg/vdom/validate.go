package vdom

import (
	"fmt"
	"strings"

	"github.com/vango-dev/minivdom/internal/errors"
)

// Validate checks that a tree is well formed: element tags are valid, text
// nodes carry only a string, children contain no nil nodes, props are not
// duplicated, event props hold a usable handler, and no node instance
// appears twice. The returned error is an *errors.Error whose Path locates
// the offending node.
func Validate(root *Node) error {
	v := validator{seen: make(map[*Node]bool)}
	return v.node(root, "", "")
}

type validator struct {
	seen map[*Node]bool
}

// node validates n. suffix is appended to n's path segment, e.g. "[2]"
// for the third entry of a sequence.
func (v *validator) node(n *Node, parent, suffix string) error {
	if n == nil {
		return errors.New("E211").WithPath(joinPath(parent, "nil"+suffix))
	}
	path := joinPath(parent, n.Tag+suffix)

	if v.seen[n] {
		return errors.New("E215").WithPath(path)
	}
	v.seen[n] = true

	switch n.Kind {
	case KindText:
		if n.Tag != TextTag {
			return errors.New("E212").WithPath(path).
				WithDetail(fmt.Sprintf("Text node has tag %q, want %q.", n.Tag, TextTag))
		}
		if len(n.Props) > 0 {
			return errors.New("E212").WithPath(path).
				WithDetail("Text nodes cannot have properties.")
		}
		if n.Children.shape != ShapeText {
			return errors.New("E212").WithPath(path).
				WithDetail("Text node children must be a string, got " + n.Children.shape.String() + ".")
		}
		return nil

	case KindElement:
		if n.Tag == "" || strings.HasPrefix(n.Tag, "#") {
			return errors.New("E210").WithPath(path).
				WithSuggestion("Use Text() for text nodes and a real tag name for elements")
		}
		if err := validateProps(n.Props, path); err != nil {
			return err
		}
		return v.children(n.Children, path)

	default:
		return errors.New("E216").WithPath(path)
	}
}

func (v *validator) children(c Children, path string) error {
	switch c.shape {
	case ShapeSingle:
		return v.node(c.node, path, "")
	case ShapeSequence:
		for i, child := range c.list {
			if err := v.node(child, path, fmt.Sprintf("[%d]", i)); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateProps(props Props, path string) error {
	seen := make(map[propKey]bool, len(props))
	for _, p := range props {
		if p.IsEmpty() {
			continue
		}
		k := keyOf(p)
		if seen[k] {
			return errors.New("E213").WithPath(path).
				WithDetail(fmt.Sprintf("%s %q is set more than once.", p.Kind, p.Name))
		}
		seen[k] = true

		if p.Kind == PropEvent && p.Value != nil {
			return errors.New("E214").WithPath(path).
				WithDetail(fmt.Sprintf("Event %q has a %T value; use a func(Event), func() or *Handler.", p.Name, p.Value))
		}
	}
	return nil
}

func joinPath(parent, tag string) string {
	if parent == "" {
		return tag
	}
	return parent + ">" + tag
}
