package vdom

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// dumpNode is the serialized form of a Node. The handle back-reference is
// deliberately absent.
type dumpNode struct {
	Tag      string     `json:"tag" yaml:"tag"`
	Props    []dumpProp `json:"props,omitempty" yaml:"props,omitempty"`
	Children any        `json:"children,omitempty" yaml:"children,omitempty"`
}

// dumpProp is the serialized form of a Prop. Handlers are not serializable
// and only their event name is kept.
type dumpProp struct {
	Attr  string `json:"attr,omitempty" yaml:"attr,omitempty"`
	Event string `json:"event,omitempty" yaml:"event,omitempty"`
	Value any    `json:"value,omitempty" yaml:"value,omitempty"`
}

func toDump(n *Node) *dumpNode {
	if n == nil {
		return nil
	}
	d := &dumpNode{Tag: n.Tag}
	for _, p := range n.Props {
		if p.IsEmpty() {
			continue
		}
		if p.Kind == PropEvent {
			d.Props = append(d.Props, dumpProp{Event: p.Name})
			continue
		}
		d.Props = append(d.Props, dumpProp{Attr: p.Name, Value: p.Value})
	}

	switch n.Children.shape {
	case ShapeText:
		d.Children = n.Children.text
	case ShapeSingle:
		d.Children = toDump(n.Children.node)
	case ShapeSequence:
		list := make([]*dumpNode, 0, len(n.Children.list))
		for _, c := range n.Children.list {
			list = append(list, toDump(c))
		}
		d.Children = list
	}
	return d
}

// DumpJSON renders the tree as indented JSON for diagnostics. Host handles
// are omitted. A nil tree renders as "null".
func DumpJSON(n *Node) ([]byte, error) {
	return json.MarshalIndent(toDump(n), "", "  ")
}

// DumpYAML renders the tree as YAML for diagnostics. Host handles are
// omitted.
func DumpYAML(n *Node) ([]byte, error) {
	return yaml.Marshal(toDump(n))
}

// Equal reports whether two trees describe the same structure. Handles are
// ignored; event props are equal when their handlers are identical.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind || a.Tag != b.Tag || len(a.Props) != len(b.Props) {
		return false
	}
	for i := range a.Props {
		pa, pb := a.Props[i], b.Props[i]
		if pa.Kind != pb.Kind || pa.Name != pb.Name || !propEqual(pa, pb) {
			return false
		}
	}
	ca, cb := a.Children, b.Children
	if ca.shape != cb.shape {
		return false
	}
	switch ca.shape {
	case ShapeText:
		return ca.text == cb.text
	case ShapeSingle:
		return Equal(ca.node, cb.node)
	case ShapeSequence:
		if len(ca.list) != len(cb.list) {
			return false
		}
		for i := range ca.list {
			if !Equal(ca.list[i], cb.list[i]) {
				return false
			}
		}
	}
	return true
}
