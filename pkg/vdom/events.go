package vdom

import "strings"

// Event is delivered to handlers when a host dispatches an event.
type Event struct {
	Type   string // Lowercased event name, e.g. "click"
	Target Handle // Handle the event was dispatched on
	Detail any    // Host-specific payload
}

// Handler is an event callback. Handlers are compared by identity, so
// re-using the same *Handler across renders avoids listener churn.
type Handler struct {
	fn func(Event)
}

// NewHandler wraps fn in a Handler. A nil fn yields a nil Handler.
func NewHandler(fn func(Event)) *Handler {
	if fn == nil {
		return nil
	}
	return &Handler{fn: fn}
}

// Call invokes the handler. Calling a nil handler is a no-op.
func (h *Handler) Call(e Event) {
	if h == nil || h.fn == nil {
		return
	}
	h.fn(e)
}

// toHandler converts the accepted callback forms to a *Handler.
func toHandler(v any) (*Handler, bool) {
	switch fn := v.(type) {
	case nil:
		return nil, true
	case *Handler:
		return fn, true
	case func(Event):
		return NewHandler(fn), true
	case func():
		if fn == nil {
			return nil, true
		}
		return NewHandler(func(Event) { fn() }), true
	default:
		return nil, false
	}
}

// On creates an event property for the named event. The handler may be a
// *Handler, a func(Event) or a func(). Other values are kept on the prop so
// validation can report them.
func On(name string, handler any) Prop {
	p := Prop{Kind: PropEvent, Name: strings.ToLower(name)}
	if h, ok := toHandler(handler); ok {
		p.Handler = h
	} else {
		p.Value = handler
	}
	return p
}

// isEventHandler reports whether key names an event: a lowercase "on"
// followed by at least one character. "Online" and "ONE" are attributes.
func isEventHandler(key string) bool {
	return len(key) > 2 && strings.HasPrefix(key, "on")
}

// Mouse events

// OnClick handles click events.
func OnClick(handler any) Prop { return On("click", handler) }

// OnDblClick handles double-click events.
func OnDblClick(handler any) Prop { return On("dblclick", handler) }

// OnMouseDown handles mousedown events.
func OnMouseDown(handler any) Prop { return On("mousedown", handler) }

// OnMouseUp handles mouseup events.
func OnMouseUp(handler any) Prop { return On("mouseup", handler) }

// OnMouseEnter handles mouseenter events.
func OnMouseEnter(handler any) Prop { return On("mouseenter", handler) }

// OnMouseLeave handles mouseleave events.
func OnMouseLeave(handler any) Prop { return On("mouseleave", handler) }

// Keyboard events

// OnKeyDown handles keydown events.
func OnKeyDown(handler any) Prop { return On("keydown", handler) }

// OnKeyUp handles keyup events.
func OnKeyUp(handler any) Prop { return On("keyup", handler) }

// Form events

// OnInput handles input events (fired when value changes).
func OnInput(handler any) Prop { return On("input", handler) }

// OnChange handles change events (fired when value is committed).
func OnChange(handler any) Prop { return On("change", handler) }

// OnSubmit handles form submit events.
func OnSubmit(handler any) Prop { return On("submit", handler) }

// OnFocus handles focus events.
func OnFocus(handler any) Prop { return On("focus", handler) }

// OnBlur handles blur events.
func OnBlur(handler any) Prop { return On("blur", handler) }
