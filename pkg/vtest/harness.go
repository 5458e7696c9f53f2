package vtest

import (
	"strings"
	"testing"

	"github.com/vango-dev/minivdom/pkg/memdom"
	"github.com/vango-dev/minivdom/pkg/observe"
	"github.com/vango-dev/minivdom/pkg/render"
	"github.com/vango-dev/minivdom/pkg/vdom"
)

// Harness renders into an observed in-memory target. Failures are
// reported on the test it was created with.
type Harness struct {
	t        testing.TB
	doc      *memdom.Document
	root     *memdom.Node
	recorder *observe.Recorder
	renderer *vdom.Renderer
	html     *render.Renderer
}

// New creates a Harness rendering into a fresh <div> container.
func New(t testing.TB, opts ...vdom.Option) *Harness {
	t.Helper()
	doc := memdom.New()
	rec := observe.NewRecorder()
	return &Harness{
		t:        t,
		doc:      doc,
		root:     doc.CreateContainer("div"),
		recorder: rec,
		renderer: vdom.NewRenderer(observe.Wrap(doc, rec), opts...),
		html:     render.NewRenderer(render.RendererConfig{}),
	}
}

// Render renders n into the container and fails the test on error.
func (h *Harness) Render(n *vdom.Node) {
	h.t.Helper()
	if err := h.renderer.Render(n, h.root); err != nil {
		h.t.Fatalf("Render: %v", err)
	}
}

// Renderer returns the harness renderer, for callers that need the error
// or want to render into other targets.
func (h *Harness) Renderer() *vdom.Renderer { return h.renderer }

// Document returns the document, for creating extra targets.
func (h *Harness) Document() *memdom.Document { return h.doc }

// Root returns the container.
func (h *Harness) Root() *memdom.Node { return h.root }

// Recorder returns the mutation recorder.
func (h *Harness) Recorder() *observe.Recorder { return h.recorder }

// Reset forgets recorded mutations.
func (h *Harness) Reset() { h.recorder.Reset() }

// HTML returns the container's inner HTML.
func (h *Harness) HTML() string {
	h.t.Helper()
	html, err := h.html.InnerHTML(h.root)
	if err != nil {
		h.t.Fatalf("InnerHTML: %v", err)
	}
	return html
}

// ExpectHTML asserts the container's inner HTML.
func (h *Harness) ExpectHTML(want string) {
	h.t.Helper()
	if got := h.HTML(); got != want {
		h.t.Errorf("html mismatch:\n got  %s\n want %s", got, want)
	}
}

// ExpectMutations asserts the recorded mutations, formatted as the debug
// panel shows them, in call order.
func (h *Harness) ExpectMutations(want ...string) {
	h.t.Helper()
	got := h.recorder.Strings()
	if len(got) != len(want) {
		h.t.Errorf("got %d mutations, want %d:\n%s", len(got), len(want), strings.Join(got, "\n"))
		return
	}
	for i := range want {
		if got[i] != want[i] {
			h.t.Errorf("mutation %d = %q, want %q", i, got[i], want[i])
		}
	}
}

// ExpectNoMutations asserts that nothing was written since the last Reset.
func (h *Harness) ExpectNoMutations() {
	h.t.Helper()
	if n := h.recorder.Len(); n != 0 {
		h.t.Errorf("expected no mutations, got %d:\n%s", n, strings.Join(h.recorder.Strings(), "\n"))
	}
}

// ExpectCount asserts how many times op was called since the last Reset.
func (h *Harness) ExpectCount(op vdom.Op, want int) {
	h.t.Helper()
	if got := h.recorder.Count(op); got != want {
		h.t.Errorf("%s count = %d, want %d", op, got, want)
	}
}
