// Package demo is the counter and list application used by the CLI and
// the dev panel to exercise the renderer.
package demo

import (
	"fmt"
	"log/slog"

	"github.com/vango-dev/minivdom/internal/errors"
	"github.com/vango-dev/minivdom/pkg/observe"
	"github.com/vango-dev/minivdom/pkg/vdom"
)

// Action names accepted by Dispatch.
const (
	ActionIncrement   = "increment"
	ActionDecrement   = "decrement"
	ActionChangeText  = "change-text"
	ActionAddListItem = "add-list-item"
	ActionStyleToggle = "style-toggle"
)

// Actions lists every action in the order the controls are shown.
var Actions = []string{
	ActionIncrement,
	ActionDecrement,
	ActionChangeText,
	ActionAddListItem,
	ActionStyleToggle,
}

const (
	greeting = "Hello, virtual DOM!"
	changed  = "The text has changed!"
)

// App holds the demo state and renders it into a target.
// App is not safe for concurrent use.
type App struct {
	count    int
	message  string
	items    []string
	redStyle bool

	renderer *vdom.Renderer
	target   vdom.Handle
	panel    *observe.Panel
	logger   *slog.Logger
	onRender func()

	previous *vdom.Node
	current  *vdom.Node
}

// Option configures an App.
type Option func(*App)

// WithPanel sends render notes ("initial render complete") to p.
func WithPanel(p *observe.Panel) Option {
	return func(a *App) { a.panel = p }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithRenderHook calls fn after every successful render.
func WithRenderHook(fn func()) Option {
	return func(a *App) { a.onRender = fn }
}

// New creates the demo app rendering into target with r.
func New(r *vdom.Renderer, target vdom.Handle, opts ...Option) *App {
	a := &App{
		message:  greeting,
		items:    []string{"Item 1"},
		renderer: r,
		target:   target,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// View builds the tree for the current state.
func (a *App) View() *vdom.Node {
	class, style := "", ""
	if a.redStyle {
		class, style = "text-red", "color: red; font-weight: bold;"
	}

	items := vdom.Range(a.items, func(item string, i int) *vdom.Node {
		return vdom.H("li", vdom.Props{vdom.Key(i)}, item)
	})

	return vdom.H("div", nil,
		vdom.H("h3", nil, fmt.Sprintf("Count: %d", a.count)),
		vdom.H("p", vdom.Props{vdom.Class(class), vdom.StyleAttr(style)}, a.message),
		vdom.H("ul", nil, items),
	)
}

// Mount performs the initial render.
func (a *App) Mount() error {
	a.current = a.View()
	if err := a.renderer.Render(a.current, a.target); err != nil {
		return err
	}
	a.note("initial render complete")
	return nil
}

// Dispatch applies a named action and re-renders.
func (a *App) Dispatch(action string) error {
	switch action {
	case ActionIncrement:
		a.count++
	case ActionDecrement:
		a.count--
	case ActionChangeText:
		if a.message == greeting {
			a.message = changed
		} else {
			a.message = greeting
		}
	case ActionAddListItem:
		a.items = append(a.items, fmt.Sprintf("Item %d", len(a.items)+1))
	case ActionStyleToggle:
		a.redStyle = !a.redStyle
	default:
		return errors.New("E300").WithDetail(fmt.Sprintf("Unknown action %q. Valid actions: %v", action, Actions))
	}
	a.logger.Debug("demo: action", "action", action)
	return a.update()
}

// update re-renders the current state against the previous tree.
func (a *App) update() error {
	a.previous = a.current
	a.current = a.View()
	if err := a.renderer.Render(a.current, a.target); err != nil {
		return err
	}
	a.note("update render complete")
	return nil
}

// Trees returns the tree before the last update and the current tree.
func (a *App) Trees() (previous, current *vdom.Node) {
	return a.previous, a.current
}

// Count returns the counter value.
func (a *App) Count() int { return a.count }

// Items returns the list items.
func (a *App) Items() []string { return append([]string(nil), a.items...) }

func (a *App) note(msg string) {
	if a.onRender != nil {
		a.onRender()
	}
	if a.panel != nil {
		a.panel.Log(msg)
	}
}
