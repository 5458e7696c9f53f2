package vtest

import (
	"strings"
	"testing"

	"github.com/vango-dev/minivdom/pkg/render"
	"github.com/vango-dev/minivdom/pkg/vdom"
)

// maxShown bounds how much markup a failure message quotes.
const maxShown = 500

// HTML serializes a node description without mounting it. A description
// the renderer rejects fails the test immediately.
//
//	html := vtest.HTML(t, view())
func HTML(tb testing.TB, node *vdom.Node) string {
	tb.Helper()
	html, err := render.NewRenderer(render.RendererConfig{}).RenderNode(node)
	if err != nil {
		tb.Fatalf("render %s: %v", describe(node), err)
	}
	return html
}

// ExpectContains fails the test unless the markup for node contains want.
func ExpectContains(tb testing.TB, node *vdom.Node, want string) {
	tb.Helper()
	if html := HTML(tb, node); !strings.Contains(html, want) {
		tb.Errorf("markup does not contain %q:\n%s", want, truncate(html, maxShown))
	}
}

// ExpectNotContains is the inverse of ExpectContains.
func ExpectNotContains(tb testing.TB, node *vdom.Node, unwanted string) {
	tb.Helper()
	if html := HTML(tb, node); strings.Contains(html, unwanted) {
		tb.Errorf("markup unexpectedly contains %q:\n%s", unwanted, truncate(html, maxShown))
	}
}

// ExpectElement fails the test unless a <tag> element appears in the markup.
func ExpectElement(tb testing.TB, node *vdom.Node, tag string) {
	tb.Helper()
	html := HTML(tb, node)
	if !strings.Contains(html, "<"+tag+">") && !strings.Contains(html, "<"+tag+" ") {
		tb.Errorf("markup has no <%s> element:\n%s", tag, truncate(html, maxShown))
	}
}

// ExpectAttribute fails the test unless attr="value" appears in the markup.
func ExpectAttribute(tb testing.TB, node *vdom.Node, attr, value string) {
	tb.Helper()
	html := HTML(tb, node)
	if !strings.Contains(html, " "+attr+`="`+value+`"`) {
		tb.Errorf("markup has no %s=%q:\n%s", attr, value, truncate(html, maxShown))
	}
}

func describe(node *vdom.Node) string {
	if node == nil {
		return "<nil>"
	}
	return "<" + node.Tag + ">"
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
