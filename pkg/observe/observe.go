package observe

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/vango-dev/minivdom/pkg/vdom"
)

// Mutation is one primitive call made against a Host.
type Mutation struct {
	Seq    uint64    // Position in the host's call sequence, from 1
	Time   time.Time // When the call returned
	Op     vdom.Op   // Primitive invoked
	Target string    // Description of the handle acted on
	Parent string    // Insert: the parent handle
	Anchor string    // Insert: the anchor handle, empty when appending
	Name   string    // Attribute or event name, or element tag
	Value  string    // Attribute value or text payload

	// Handle is the handle acted on (the child, for Insert).
	Handle vdom.Handle
}

// String formats the mutation the way the debug panel shows it.
func (m Mutation) String() string {
	switch m.Op {
	case vdom.OpCreateElement:
		return fmt.Sprintf("createElement: <%s>", m.Name)
	case vdom.OpCreateText:
		return fmt.Sprintf("createText: %s", m.Target)
	case vdom.OpInsert:
		if m.Anchor != "" {
			return fmt.Sprintf("insertBefore: %s into %s before %s", m.Target, m.Parent, m.Anchor)
		}
		return fmt.Sprintf("insertBefore: %s into %s", m.Target, m.Parent)
	case vdom.OpSetText:
		return fmt.Sprintf("setText: %q on %s", m.Value, m.Target)
	case vdom.OpSetAttribute:
		return fmt.Sprintf("setAttribute: %s=%q on %s", m.Name, m.Value, m.Target)
	case vdom.OpRemoveAttribute:
		return fmt.Sprintf("removeAttribute: %s from %s", m.Name, m.Target)
	case vdom.OpAddEventListener:
		return fmt.Sprintf("addEventListener: %s on %s", m.Name, m.Target)
	case vdom.OpRemoveEventListener:
		return fmt.Sprintf("removeEventListener: %s from %s", m.Name, m.Target)
	case vdom.OpRemove:
		return fmt.Sprintf("remove: %s", m.Target)
	default:
		return m.Op.String()
	}
}

// Sink receives mutations.
type Sink interface {
	Observe(m Mutation)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(m Mutation)

// Observe implements Sink.
func (f SinkFunc) Observe(m Mutation) { f(m) }

// Host forwards every primitive to an inner host and reports it to sinks.
type Host struct {
	inner vdom.Host

	mu    sync.Mutex
	sinks []Sink
	seq   uint64
	now   func() time.Time
}

var _ vdom.Host = (*Host)(nil)

// Wrap decorates inner. Sinks may be added later with AddSink.
func Wrap(inner vdom.Host, sinks ...Sink) *Host {
	return &Host{
		inner: inner,
		sinks: append([]Sink(nil), sinks...),
		now:   time.Now,
	}
}

// Inner returns the decorated host.
func (h *Host) Inner() vdom.Host { return h.inner }

// AddSink registers another sink.
func (h *Host) AddSink(s Sink) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sinks = append(h.sinks, s)
}

func (h *Host) emit(m Mutation) {
	h.mu.Lock()
	h.seq++
	m.Seq = h.seq
	m.Time = h.now()
	sinks := h.sinks
	h.mu.Unlock()

	for _, s := range sinks {
		s.Observe(m)
	}
}

// CreateElement implements vdom.Host.
func (h *Host) CreateElement(tag string) vdom.Handle {
	el := h.inner.CreateElement(tag)
	h.emit(Mutation{Op: vdom.OpCreateElement, Target: describe(el), Name: tag, Handle: el})
	return el
}

// CreateText implements vdom.Host.
func (h *Host) CreateText(text string) vdom.Handle {
	t := h.inner.CreateText(text)
	h.emit(Mutation{Op: vdom.OpCreateText, Target: describe(t), Value: text, Handle: t})
	return t
}

// Insert implements vdom.Host.
func (h *Host) Insert(child, parent, anchor vdom.Handle) {
	h.inner.Insert(child, parent, anchor)
	m := Mutation{Op: vdom.OpInsert, Target: describe(child), Parent: describe(parent), Handle: child}
	if anchor != nil {
		m.Anchor = describe(anchor)
	}
	h.emit(m)
}

// SetText implements vdom.Host.
func (h *Host) SetText(target vdom.Handle, text string) {
	h.inner.SetText(target, text)
	h.emit(Mutation{Op: vdom.OpSetText, Target: describe(target), Value: text, Handle: target})
}

// SetAttribute implements vdom.Host.
func (h *Host) SetAttribute(el vdom.Handle, key, value string) {
	h.inner.SetAttribute(el, key, value)
	h.emit(Mutation{Op: vdom.OpSetAttribute, Target: describe(el), Name: key, Value: value, Handle: el})
}

// RemoveAttribute implements vdom.Host.
func (h *Host) RemoveAttribute(el vdom.Handle, key string) {
	h.inner.RemoveAttribute(el, key)
	h.emit(Mutation{Op: vdom.OpRemoveAttribute, Target: describe(el), Name: key, Handle: el})
}

// AddEventListener implements vdom.Host.
func (h *Host) AddEventListener(el vdom.Handle, event string, handler *vdom.Handler) {
	h.inner.AddEventListener(el, event, handler)
	h.emit(Mutation{Op: vdom.OpAddEventListener, Target: describe(el), Name: event, Handle: el})
}

// RemoveEventListener implements vdom.Host.
func (h *Host) RemoveEventListener(el vdom.Handle, event string, handler *vdom.Handler) {
	h.inner.RemoveEventListener(el, event, handler)
	h.emit(Mutation{Op: vdom.OpRemoveEventListener, Target: describe(el), Name: event, Handle: el})
}

// Remove implements vdom.Host.
func (h *Host) Remove(target vdom.Handle) {
	desc := describe(target)
	h.inner.Remove(target)
	h.emit(Mutation{Op: vdom.OpRemove, Target: desc, Handle: target})
}

// describe renders a handle for logs. Hosts whose handles implement
// fmt.Stringer control their own description.
func describe(h vdom.Handle) string {
	switch v := h.(type) {
	case nil:
		return "<nil>"
	case fmt.Stringer:
		return v.String()
	default:
		return strings.TrimPrefix(fmt.Sprintf("%T", h), "*")
	}
}
