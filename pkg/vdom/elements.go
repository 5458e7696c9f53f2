package vdom

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// createElement creates a new element node with the given tag and arguments.
// Arguments can be: nil, Prop, Props, []Prop, and anything H accepts as a
// child. Props are kept in argument order; empty props are dropped.
func createElement(tag string, args []any) *Node {
	var props Props
	children := make([]any, 0, len(args))

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignore nil (allows conditional attributes)
			continue

		case Prop:
			if !v.IsEmpty() {
				props = append(props, v)
			}

		case Props:
			for _, p := range v {
				if !p.IsEmpty() {
					props = append(props, p)
				}
			}

		case []Prop:
			for _, p := range v {
				if !p.IsEmpty() {
					props = append(props, p)
				}
			}

		default:
			children = append(children, arg)
		}
	}

	return Element(tag, props, childrenOf(children))
}

// Content sectioning elements

func Header(args ...any) *Node  { return createElement("header", args) }
func Footer(args ...any) *Node  { return createElement("footer", args) }
func Main(args ...any) *Node    { return createElement("main", args) }
func Nav(args ...any) *Node     { return createElement("nav", args) }
func Section(args ...any) *Node { return createElement("section", args) }
func H1(args ...any) *Node      { return createElement("h1", args) }
func H2(args ...any) *Node      { return createElement("h2", args) }
func H3(args ...any) *Node      { return createElement("h3", args) }

// Text content elements

func Div(args ...any) *Node  { return createElement("div", args) }
func P(args ...any) *Node    { return createElement("p", args) }
func Span(args ...any) *Node { return createElement("span", args) }
func Pre(args ...any) *Node  { return createElement("pre", args) }
func Ul(args ...any) *Node   { return createElement("ul", args) }
func Ol(args ...any) *Node   { return createElement("ol", args) }
func Li(args ...any) *Node   { return createElement("li", args) }
func Hr(args ...any) *Node   { return createElement("hr", args) }

// Inline text semantics

func A(args ...any) *Node      { return createElement("a", args) }
func Strong(args ...any) *Node { return createElement("strong", args) }
func Em(args ...any) *Node     { return createElement("em", args) }
func Code(args ...any) *Node   { return createElement("code", args) }
func Br(args ...any) *Node     { return createElement("br", args) }

// Form elements

func Form(args ...any) *Node   { return createElement("form", args) }
func Input(args ...any) *Node  { return createElement("input", args) }
func Button(args ...any) *Node { return createElement("button", args) }
func Label(args ...any) *Node  { return createElement("label", args) }

// CustomElement creates an element with a custom tag name.
func CustomElement(tag string, args ...any) *Node {
	return createElement(tag, args)
}
