package render

import (
	"bytes"
	"fmt"
	"io"

	"github.com/vango-dev/minivdom/pkg/vdom"
)

// RenderNode renders a node description to HTML without mounting it.
// Event props and attributes with a nil value are skipped. The output
// matches what RenderToString produces for the same tree once mounted.
func (r *Renderer) RenderNode(node *vdom.Node) (string, error) {
	var buf bytes.Buffer
	if err := r.writeNode(&buf, node, 0); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (r *Renderer) writeNode(w io.Writer, node *vdom.Node, depth int) error {
	if node == nil {
		return nil
	}
	if node.IsText() {
		_, err := io.WriteString(w, escapeHTML(node.Text()))
		return err
	}
	if node.Kind != vdom.KindElement {
		return fmt.Errorf("unknown node kind: %s", node.Kind)
	}

	tag := node.Tag
	if r.config.Pretty && depth > 0 {
		r.writeIndent(w, depth)
	}
	if _, err := fmt.Fprintf(w, "<%s", tag); err != nil {
		return err
	}
	for _, p := range node.Props {
		if p.Kind != vdom.PropAttr || p.IsEmpty() || p.Value == nil {
			continue
		}
		if err := writeAttr(w, p.Name, p.ValueString()); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}

	if isVoidElement(tag) {
		if r.config.Pretty {
			io.WriteString(w, "\n")
		}
		return nil
	}

	var children []*vdom.Node
	switch node.Children.Shape() {
	case vdom.ShapeText:
		if _, err := io.WriteString(w, escapeHTML(node.Children.Text())); err != nil {
			return err
		}
	case vdom.ShapeSingle:
		children = []*vdom.Node{node.Children.Node()}
	case vdom.ShapeSequence:
		children = node.Children.Nodes()
	}

	block := len(children) > 0 && !isInlineElement(tag) && !allText(children)
	if r.config.Pretty && block {
		io.WriteString(w, "\n")
	}
	for _, child := range children {
		if err := r.writeNode(w, child, depth+1); err != nil {
			return err
		}
	}
	if r.config.Pretty && block {
		r.writeIndent(w, depth)
	}

	if _, err := fmt.Fprintf(w, "</%s>", tag); err != nil {
		return err
	}
	if r.config.Pretty {
		io.WriteString(w, "\n")
	}
	return nil
}

func allText(children []*vdom.Node) bool {
	for _, c := range children {
		if c != nil && !c.IsText() {
			return false
		}
	}
	return true
}
