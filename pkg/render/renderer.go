package render

import (
	"bytes"
	"fmt"
	"io"

	"github.com/vango-dev/minivdom/pkg/memdom"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty enables pretty-printed HTML output with indentation.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces if not specified.
	Indent string
}

// Renderer serializes memdom nodes to HTML.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// RenderToString renders a node and its subtree to an HTML string.
func (r *Renderer) RenderToString(node *memdom.Node) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a node and its subtree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, node *memdom.Node) error {
	return r.renderNode(w, node, 0)
}

// InnerHTML renders only the children of node.
func (r *Renderer) InnerHTML(node *memdom.Node) (string, error) {
	var buf bytes.Buffer
	if node == nil {
		return "", nil
	}
	for _, child := range node.Children() {
		if err := r.renderNode(&buf, child, 0); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

// renderNode dispatches rendering based on node type.
func (r *Renderer) renderNode(w io.Writer, node *memdom.Node, depth int) error {
	if node == nil {
		return nil
	}

	switch node.Type {
	case memdom.ElementNode:
		return r.renderElement(w, node, depth)
	case memdom.TextNode:
		_, err := io.WriteString(w, escapeHTML(node.Data()))
		return err
	default:
		return fmt.Errorf("unknown node type: %d", node.Type)
	}
}

// renderElement renders an HTML element with its attributes and children.
func (r *Renderer) renderElement(w io.Writer, node *memdom.Node, depth int) error {
	tag := node.Tag()

	if r.config.Pretty && depth > 0 {
		r.writeIndent(w, depth)
	}

	if _, err := fmt.Fprintf(w, "<%s", tag); err != nil {
		return err
	}
	if err := r.renderAttributes(w, node); err != nil {
		return err
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

	children := node.Children()
	hasBlockChildren := len(children) > 0 && !isInlineElement(tag) && !onlyText(children)
	if r.config.Pretty && hasBlockChildren {
		io.WriteString(w, "\n")
	}

	for _, child := range children {
		if err := r.renderNode(w, child, depth+1); err != nil {
			return err
		}
	}

	if r.config.Pretty && hasBlockChildren {
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

// renderAttributes renders attributes in the order they were set.
func (r *Renderer) renderAttributes(w io.Writer, node *memdom.Node) error {
	for _, a := range node.Attrs() {
		if err := writeAttr(w, a.Name, a.Value); err != nil {
			return err
		}
	}
	return nil
}

// writeAttr writes a single attribute. Boolean attributes set to "",
// "true" or their own name are written bare.
func writeAttr(w io.Writer, name, value string) error {
	if isBooleanAttr(name) && (value == "" || value == "true" || value == name) {
		_, err := fmt.Fprintf(w, " %s", name)
		return err
	}
	_, err := fmt.Fprintf(w, ` %s="%s"`, name, escapeAttr(value))
	return err
}

// onlyText reports whether every child is a text node.
func onlyText(children []*memdom.Node) bool {
	for _, c := range children {
		if c.Type != memdom.TextNode {
			return false
		}
	}
	return true
}

// writeIndent writes indentation for pretty printing.
func (r *Renderer) writeIndent(w io.Writer, depth int) {
	for i := 0; i < depth; i++ {
		io.WriteString(w, r.config.Indent)
	}
}
