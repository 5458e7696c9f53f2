package vdom_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/vango-dev/minivdom/internal/errors"
	"github.com/vango-dev/minivdom/pkg/memdom"
	"github.com/vango-dev/minivdom/pkg/observe"
	"github.com/vango-dev/minivdom/pkg/vdom"
)

type env struct {
	doc  *memdom.Document
	root *memdom.Node
	rec  *observe.Recorder
	r    *vdom.Renderer
}

func newEnv(t *testing.T, opts ...vdom.Option) *env {
	t.Helper()
	doc := memdom.New()
	rec := observe.NewRecorder()
	opts = append([]vdom.Option{vdom.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))}, opts...)
	return &env{
		doc:  doc,
		root: doc.CreateContainer("div"),
		rec:  rec,
		r:    vdom.NewRenderer(observe.Wrap(doc, rec), opts...),
	}
}

func (e *env) render(t *testing.T, n *vdom.Node) {
	t.Helper()
	if err := e.r.Render(n, e.root); err != nil {
		t.Fatalf("Render: %v", err)
	}
}

func list(items ...string) *vdom.Node {
	lis := make([]*vdom.Node, len(items))
	for i, item := range items {
		lis[i] = vdom.H("li", nil, item)
	}
	return vdom.H("ul", nil, lis)
}

func TestMountSequence(t *testing.T) {
	e := newEnv(t)
	e.render(t, list("a", "b"))

	want := []string{
		"createElement: <ul>",
		"createElement: <li>",
		`setText: "a" on <li>`,
		"insertBefore: <li> into <ul>",
		"createElement: <li>",
		`setText: "b" on <li>`,
		"insertBefore: <li> into <ul>",
		"insertBefore: <ul> into <div>",
	}
	if diff := cmp.Diff(want, e.rec.Strings()); diff != "" {
		t.Errorf("mutations mismatch (-want +got):\n%s", diff)
	}

	ul := e.root.Child(0)
	if ul == nil || ul.Tag() != "ul" || len(ul.Children()) != 2 {
		t.Fatalf("unexpected tree under root: %v", e.root.Children())
	}
	if got := ul.TextContent(); got != "ab" {
		t.Errorf("TextContent() = %q, want %q", got, "ab")
	}
}

func TestMountAttachesAfterSubtree(t *testing.T) {
	e := newEnv(t)
	e.render(t, vdom.H("p", vdom.Props{vdom.Class("x")}, "hi"))

	muts := e.rec.Mutations()
	last := muts[len(muts)-1]
	if last.Op != vdom.OpInsert || last.Target != "<p>" || last.Parent != "<div>" {
		t.Errorf("last mutation = %v, want insert of <p> into the target", last)
	}
	if e.rec.Count(vdom.OpInsert) != 1 {
		t.Errorf("inserts = %d, want 1", e.rec.Count(vdom.OpInsert))
	}
}

func TestIdempotentRerender(t *testing.T) {
	build := func() *vdom.Node {
		return vdom.H("p", vdom.Props{vdom.ID("greeting"), vdom.Class("big"), vdom.Attr("tabindex", 3)}, "hello")
	}

	e := newEnv(t)
	e.render(t, build())
	e.rec.Reset()
	e.render(t, build())

	if e.rec.Len() != 0 {
		t.Errorf("re-render of an equal tree produced mutations: %v", e.rec.Strings())
	}
}

func TestIdempotentTextRoot(t *testing.T) {
	e := newEnv(t)
	e.render(t, vdom.Text("same"))
	e.rec.Reset()
	e.render(t, vdom.Text("same"))

	if e.rec.Len() != 0 {
		t.Errorf("mutations = %v, want none", e.rec.Strings())
	}
}

func TestTextRootUpdateReusesHandle(t *testing.T) {
	e := newEnv(t)
	first := vdom.Text("one")
	e.render(t, first)
	second := vdom.Text("two")
	e.render(t, second)

	if first.Handle() != second.Handle() {
		t.Error("text update should reuse the handle")
	}
	if got := e.root.TextContent(); got != "two" {
		t.Errorf("TextContent() = %q, want two", got)
	}
}

func TestTypeChangeDiscardsSubtree(t *testing.T) {
	e := newEnv(t)
	old := vdom.H("div", nil, vdom.H("span", nil, "inner"))
	e.render(t, old)
	oldHandle := old.Handle().(*memdom.Node)

	e.rec.Reset()
	next := vdom.H("section", nil, "fresh")
	e.render(t, next)

	if e.rec.Count(vdom.OpRemove) != 1 {
		t.Errorf("removes = %d, want 1", e.rec.Count(vdom.OpRemove))
	}
	if oldHandle.Parent() != nil {
		t.Error("old subtree should be detached")
	}
	if len(e.root.Children()) != 1 || e.root.Child(0).Tag() != "section" {
		t.Fatalf("root children = %v, want one <section>", e.root.Children())
	}
	if next.Handle() == old.Handle() {
		t.Error("type change must create a new handle")
	}
}

func TestTypeChangeTextToElement(t *testing.T) {
	e := newEnv(t)
	e.render(t, vdom.Text("plain"))
	e.render(t, vdom.H("b", nil, "bold"))

	if len(e.root.Children()) != 1 {
		t.Fatalf("root children = %d, want 1", len(e.root.Children()))
	}
	if got := e.root.Child(0).Tag(); got != "b" {
		t.Errorf("root child tag = %q, want b", got)
	}
}

func TestPropertyRoundTrip(t *testing.T) {
	e := newEnv(t)
	e.render(t, vdom.H("p", vdom.Props{vdom.Class("a"), vdom.Attr("title", "t")}, "x"))
	p := e.root.Child(0)

	e.rec.Reset()
	e.render(t, vdom.H("p", vdom.Props{vdom.Class("b")}, "x"))

	if v, _ := p.Attr("class"); v != "b" {
		t.Errorf("class = %q, want b", v)
	}
	if _, ok := p.Attr("title"); ok {
		t.Error("title should be removed")
	}
	want := []string{
		`setAttribute: class="b" on <p>`,
		"removeAttribute: title from <p>",
	}
	if diff := cmp.Diff(want, e.rec.Strings()); diff != "" {
		t.Errorf("mutations mismatch (-want +got):\n%s", diff)
	}
}

func TestNilAttributeRemoves(t *testing.T) {
	e := newEnv(t)
	e.render(t, vdom.H("input", vdom.Props{vdom.Attr("value", "v")}))
	input := e.root.Child(0)

	e.render(t, vdom.H("input", vdom.Props{vdom.Attr("value", nil)}))
	if _, ok := input.Attr("value"); ok {
		t.Error("nil attribute value should remove the attribute")
	}
}

func TestAttributeStringification(t *testing.T) {
	e := newEnv(t)
	e.render(t, vdom.H("input", vdom.Props{
		vdom.Attr("tabindex", 2),
		vdom.Attr("step", 0.5),
		vdom.Attr("checked", true),
		vdom.Attr("class", []string{"a", "b"}),
	}))

	input := e.root.Child(0)
	want := []memdom.Attribute{
		{Name: "tabindex", Value: "2"},
		{Name: "step", Value: "0.5"},
		{Name: "checked", Value: "true"},
		{Name: "class", Value: "a b"},
	}
	if diff := cmp.Diff(want, input.Attrs()); diff != "" {
		t.Errorf("attrs mismatch (-want +got):\n%s", diff)
	}
}

func TestEventHandlerReplacement(t *testing.T) {
	e := newEnv(t)
	var calls []string
	h1 := vdom.NewHandler(func(vdom.Event) { calls = append(calls, "h1") })
	h2 := vdom.NewHandler(func(vdom.Event) { calls = append(calls, "h2") })

	e.render(t, vdom.H("button", vdom.Props{vdom.OnClick(h1)}, "go"))
	btn := e.root.Child(0)
	btn.Dispatch("click", nil)

	e.rec.Reset()
	e.render(t, vdom.H("button", vdom.Props{vdom.OnClick(h2)}, "go"))
	btn.Dispatch("click", nil)

	if diff := cmp.Diff([]string{"h1", "h2"}, calls); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
	if n := btn.ListenerCount("click"); n != 1 {
		t.Errorf("click listeners = %d, want 1", n)
	}
	want := []string{
		"removeEventListener: click from <button>",
		"addEventListener: click on <button>",
	}
	if diff := cmp.Diff(want, e.rec.Strings()); diff != "" {
		t.Errorf("mutations mismatch (-want +got):\n%s", diff)
	}
}

func TestSameHandlerNoChurn(t *testing.T) {
	e := newEnv(t)
	h := vdom.NewHandler(func(vdom.Event) {})

	e.render(t, vdom.H("button", vdom.Props{vdom.OnClick(h)}, "go"))
	e.rec.Reset()
	e.render(t, vdom.H("button", vdom.Props{vdom.OnClick(h)}, "go"))

	if e.rec.Len() != 0 {
		t.Errorf("identical handler re-registered: %v", e.rec.Strings())
	}
}

func TestEventHandlerRemoved(t *testing.T) {
	e := newEnv(t)
	fired := 0
	e.render(t, vdom.H("button", vdom.Props{vdom.OnClick(func() { fired++ })}, "go"))
	btn := e.root.Child(0)

	e.render(t, vdom.H("button", nil, "go"))
	if n := btn.Dispatch("click", nil); n != 0 {
		t.Errorf("Dispatch ran %d handlers, want 0", n)
	}
	if fired != 0 {
		t.Errorf("fired = %d, want 0", fired)
	}
}

func TestEventReceivesTarget(t *testing.T) {
	e := newEnv(t)
	var got vdom.Event
	e.render(t, vdom.H("input", vdom.Props{vdom.OnInput(func(ev vdom.Event) { got = ev })}))
	input := e.root.Child(0)

	input.Dispatch("input", "typed")
	if got.Type != "input" || got.Target != vdom.Handle(input) || got.Detail != "typed" {
		t.Errorf("event = %+v", got)
	}
}

func TestChildShapeTransitions(t *testing.T) {
	tests := []struct {
		name     string
		from, to vdom.Children
		want     string
		kids     int
	}{
		{"text to sequence", vdom.TextChildren("t"), vdom.Sequence(vdom.Text("a"), vdom.Text("b")), "ab", 2},
		{"sequence to text", vdom.Sequence(vdom.Text("a"), vdom.Text("b")), vdom.TextChildren("t"), "t", 1},
		{"sequence to none", vdom.Sequence(vdom.Text("a")), vdom.NoChildren(), "", 0},
		{"text to none", vdom.TextChildren("t"), vdom.NoChildren(), "", 0},
		{"single to text", vdom.Single(vdom.Text("s")), vdom.TextChildren("t"), "t", 1},
		{"none to single", vdom.NoChildren(), vdom.Single(vdom.H("i", nil, "s")), "s", 1},
		{"single to sequence", vdom.Single(vdom.Text("s")), vdom.Sequence(vdom.Text("x"), vdom.Text("y")), "xy", 2},
		{"sequence to sequence", vdom.Sequence(vdom.Text("a")), vdom.Sequence(vdom.Text("b"), vdom.Text("c")), "bc", 2},
		{"sequence to single", vdom.Sequence(vdom.Text("a"), vdom.Text("b")), vdom.Single(vdom.Text("s")), "s", 1},
		{"none to sequence", vdom.NoChildren(), vdom.Sequence(vdom.Text("a")), "a", 1},
		{"text to text", vdom.TextChildren("a"), vdom.TextChildren("b"), "b", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEnv(t)
			e.render(t, vdom.Element("div", nil, tt.from))
			el := e.root.Child(0)

			e.render(t, vdom.Element("div", nil, tt.to))
			if e.root.Child(0) != el {
				t.Fatal("element handle should be reused")
			}
			if got := el.TextContent(); got != tt.want {
				t.Errorf("TextContent() = %q, want %q", got, tt.want)
			}
			if got := len(el.Children()); got != tt.kids {
				t.Errorf("children = %d, want %d", got, tt.kids)
			}
		})
	}
}

func TestSequenceAlwaysRemounted(t *testing.T) {
	e := newEnv(t)
	first := list("a", "b")
	e.render(t, first)
	oldLi := first.Children.Nodes()[0].Handle()

	e.rec.Reset()
	second := list("a", "b")
	e.render(t, second)

	if e.rec.Count(vdom.OpRemove) != 2 {
		t.Errorf("removes = %d, want 2", e.rec.Count(vdom.OpRemove))
	}
	if e.rec.Count(vdom.OpCreateElement) != 2 {
		t.Errorf("creates = %d, want 2", e.rec.Count(vdom.OpCreateElement))
	}
	if second.Children.Nodes()[0].Handle() == oldLi {
		t.Error("sequence children must not be matched by position")
	}
	if second.Handle() != first.Handle() {
		t.Error("the <ul> itself should be patched in place")
	}
}

func TestKeysAreAttributesOnly(t *testing.T) {
	e := newEnv(t)
	build := func(keys ...string) *vdom.Node {
		lis := make([]*vdom.Node, len(keys))
		for i, k := range keys {
			lis[i] = vdom.H("li", vdom.Props{vdom.Key(k)}, k)
		}
		return vdom.H("ul", nil, lis)
	}
	e.render(t, build("a", "b"))
	e.rec.Reset()
	e.render(t, build("b", "a"))

	ul := e.root.Child(0)
	if v, _ := ul.Child(0).Attr("key"); v != "b" {
		t.Errorf("first key = %q, want b", v)
	}
	if e.rec.Count(vdom.OpRemove) != 2 || e.rec.Count(vdom.OpCreateElement) != 2 {
		t.Errorf("keyed reorder should still remount: %v", e.rec.Summary())
	}
}

func TestClearOnNilRender(t *testing.T) {
	e := newEnv(t)
	e.render(t, list("a"))

	e.rec.Reset()
	e.render(t, nil)

	if len(e.root.Children()) != 0 {
		t.Errorf("root children = %d, want 0", len(e.root.Children()))
	}
	want := []string{`setText: "" on <div>`}
	if diff := cmp.Diff(want, e.rec.Strings()); diff != "" {
		t.Errorf("mutations mismatch (-want +got):\n%s", diff)
	}
	if e.r.Registry().Get(e.root) != nil {
		t.Error("registry should forget the cleared tree")
	}

	// Rendering again mounts fresh.
	e.rec.Reset()
	e.render(t, list("b"))
	if e.rec.Count(vdom.OpRemove) != 0 {
		t.Errorf("fresh mount after clear removed handles: %v", e.rec.Strings())
	}
	if got := e.root.TextContent(); got != "b" {
		t.Errorf("TextContent() = %q, want b", got)
	}
}

func TestNilRenderOnEmptyTargetIsNoop(t *testing.T) {
	e := newEnv(t)
	e.render(t, nil)
	if e.rec.Len() != 0 {
		t.Errorf("mutations = %v, want none", e.rec.Strings())
	}
}

func TestListScenario(t *testing.T) {
	e := newEnv(t)
	e.render(t, list("Item 1"))
	e.render(t, list("Item 1", "Item 2"))
	e.render(t, list("Item 1", "Item 2", "Item 3"))

	ul := e.root.Child(0)
	var items []string
	for _, li := range ul.Children() {
		items = append(items, li.TextContent())
	}
	if diff := cmp.Diff([]string{"Item 1", "Item 2", "Item 3"}, items); diff != "" {
		t.Errorf("items mismatch (-want +got):\n%s", diff)
	}
	if len(e.root.Children()) != 1 {
		t.Errorf("root children = %d, want 1", len(e.root.Children()))
	}
}

func TestRegistryTracksTargets(t *testing.T) {
	e := newEnv(t)
	other := e.doc.CreateContainer("section")

	a := vdom.H("p", nil, "a")
	b := vdom.H("p", nil, "b")
	e.render(t, a)
	if err := e.r.Render(b, other); err != nil {
		t.Fatalf("Render: %v", err)
	}

	reg := e.r.Registry()
	if reg.Len() != 2 {
		t.Errorf("Len() = %d, want 2", reg.Len())
	}
	if reg.Get(e.root) != a || reg.Get(other) != b {
		t.Error("registry should hold the last tree per target")
	}
	reg.Delete(other)
	if reg.Get(other) != nil {
		t.Error("Delete should forget the target")
	}
}

func TestSharedRegistry(t *testing.T) {
	doc := memdom.New()
	root := doc.CreateContainer("div")
	reg := vdom.NewRegistry()
	r1 := vdom.NewRenderer(doc, vdom.WithRegistry(reg))
	r2 := vdom.NewRenderer(doc, vdom.WithRegistry(reg))

	if err := r1.Render(vdom.H("p", nil, "one"), root); err != nil {
		t.Fatal(err)
	}
	if err := r2.Render(vdom.H("p", nil, "two"), root); err != nil {
		t.Fatal(err)
	}
	if len(root.Children()) != 1 || root.TextContent() != "two" {
		t.Errorf("shared registry should patch in place, got %d children %q",
			len(root.Children()), root.TextContent())
	}
}

func TestNilTarget(t *testing.T) {
	e := newEnv(t)
	err := e.r.Render(vdom.H("p", nil, "x"), nil)
	if errors.Code(err) != "E201" {
		t.Errorf("error code = %q, want E201", errors.Code(err))
	}
}

func TestPatchUnmountedPrevious(t *testing.T) {
	e := newEnv(t)
	// A previous tree that was never mounted, as if a caller stored it.
	e.r.Registry().Set(e.root, vdom.H("p", nil, "ghost"))

	err := e.r.Render(vdom.H("p", nil, "real"), e.root)
	if errors.Code(err) != "E202" {
		t.Errorf("error code = %q, want E202 (err: %v)", errors.Code(err), err)
	}
}

func TestInvalidTreeLeavesTargetUntouched(t *testing.T) {
	e := newEnv(t)
	good := list("a")
	e.render(t, good)
	e.rec.Reset()

	bad := vdom.H("ul", nil, vdom.Sequence(vdom.H("li", nil, "a"), nil))
	err := e.r.Render(bad, e.root)
	if errors.Code(err) != "E211" {
		t.Fatalf("error code = %q, want E211 (err: %v)", errors.Code(err), err)
	}
	if e.rec.Len() != 0 {
		t.Errorf("invalid tree produced mutations: %v", e.rec.Strings())
	}
	if e.r.Registry().Get(e.root) != good {
		t.Error("registry should keep the last good tree")
	}
}

func TestValidationDisabled(t *testing.T) {
	e := newEnv(t, vdom.WithValidation(false))
	n := vdom.H("p", vdom.Props{vdom.Class("a"), vdom.Class("b")}, "x")
	e.render(t, n)

	if v, _ := e.root.Child(0).Attr("class"); v != "b" {
		t.Errorf("class = %q, want the last duplicate to win", v)
	}
}

func TestRenderContextWithTracer(t *testing.T) {
	e := newEnv(t, vdom.WithTracer(noop.NewTracerProvider().Tracer("test")))
	if err := e.r.RenderContext(context.Background(), vdom.H("p", nil, "x"), e.root); err != nil {
		t.Fatalf("RenderContext: %v", err)
	}
	if got := e.root.TextContent(); got != "x" {
		t.Errorf("TextContent() = %q, want x", got)
	}
}

func TestObserverIsTransparent(t *testing.T) {
	build := func() *vdom.Node {
		return vdom.H("div", vdom.Props{vdom.ID("app")},
			vdom.H("h3", nil, "title"),
			vdom.H("ul", nil, vdom.H("li", nil, "1"), vdom.H("li", vdom.Props{vdom.Class("x")}, "2")),
		)
	}

	plainDoc := memdom.New()
	plainRoot := plainDoc.CreateContainer("div")
	plain := vdom.NewRenderer(plainDoc)

	e := newEnv(t)
	for i := 0; i < 2; i++ {
		if err := plain.Render(build(), plainRoot); err != nil {
			t.Fatal(err)
		}
		e.render(t, build())
	}

	if plainRoot.TextContent() != e.root.TextContent() {
		t.Errorf("text differs: %q vs %q", plainRoot.TextContent(), e.root.TextContent())
	}
	if !vdom.Equal(plain.Registry().Get(plainRoot), e.r.Registry().Get(e.root)) {
		t.Error("stored trees differ")
	}
}
