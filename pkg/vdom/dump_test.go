package vdom

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

func sample() *Node {
	return H("div", Props{ID("app"), OnClick(func() {})},
		H("h3", nil, "Count: 0"),
		H("ul", nil, []*Node{H("li", Props{Key(0)}, "Item 1")}),
	)
}

func TestDumpJSON(t *testing.T) {
	n := sample()
	n.handle = "mounted"

	data, err := DumpJSON(n)
	if err != nil {
		t.Fatalf("DumpJSON: %v", err)
	}
	if strings.Contains(string(data), "mounted") {
		t.Errorf("dump leaks the handle:\n%s", data)
	}

	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	want := map[string]any{
		"tag": "div",
		"props": []any{
			map[string]any{"attr": "id", "value": "app"},
			map[string]any{"event": "click"},
		},
		"children": []any{
			map[string]any{"tag": "h3", "children": "Count: 0"},
			map[string]any{
				"tag": "ul",
				"children": []any{
					map[string]any{
						"tag":      "li",
						"props":    []any{map[string]any{"attr": "key", "value": "0"}},
						"children": "Item 1",
					},
				},
			},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("dump mismatch (-want +got):\n%s", diff)
	}
}

func TestDumpJSONSingleChild(t *testing.T) {
	data, err := DumpJSON(H("ul", nil, H("li", nil, "only")))
	if err != nil {
		t.Fatalf("DumpJSON: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	want := map[string]any{
		"tag":      "ul",
		"children": map[string]any{"tag": "li", "children": "only"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("single child dump mismatch (-want +got):\n%s", diff)
	}
}

func TestDumpJSONNil(t *testing.T) {
	data, err := DumpJSON(nil)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "null" {
		t.Errorf("DumpJSON(nil) = %s, want null", data)
	}
}

func TestDumpYAML(t *testing.T) {
	data, err := DumpYAML(sample())
	if err != nil {
		t.Fatalf("DumpYAML: %v", err)
	}
	var got struct {
		Tag      string `yaml:"tag"`
		Children []struct {
			Tag string `yaml:"tag"`
		} `yaml:"children"`
	}
	if err := yaml.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v\n%s", err, data)
	}
	if got.Tag != "div" || len(got.Children) != 2 || got.Children[1].Tag != "ul" {
		t.Errorf("unexpected YAML dump:\n%s", data)
	}
}

func TestEqual(t *testing.T) {
	h := NewHandler(func(Event) {})
	build := func() *Node {
		return H("p", Props{Class("a"), OnClick(h)}, Text("x"), H("b", nil, "y"))
	}

	a, b := build(), build()
	b.handle = "other"
	if !Equal(a, b) {
		t.Error("equal trees with different handles should compare equal")
	}
	if Equal(a, H("p", Props{Class("b"), OnClick(h)}, Text("x"), H("b", nil, "y"))) {
		t.Error("different attribute value should differ")
	}
	if Equal(a, H("p", Props{Class("a"), OnClick(func() {})}, Text("x"), H("b", nil, "y"))) {
		t.Error("different handler should differ")
	}
	if Equal(H("p", nil, "x"), H("p", nil, Text("x"))) {
		t.Error("text children and a single text node are different shapes")
	}
	if !Equal(nil, nil) || Equal(nil, a) {
		t.Error("nil handling mismatch")
	}
}
