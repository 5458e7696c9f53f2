package vdom

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// PropKind separates plain attributes from event handlers.
type PropKind uint8

const (
	PropAttr  PropKind = iota // Plain attribute set on the host handle
	PropEvent                 // Event listener registered on the host handle
)

// String returns the string representation of the PropKind.
func (k PropKind) String() string {
	switch k {
	case PropAttr:
		return "Attr"
	case PropEvent:
		return "Event"
	default:
		return "Unknown"
	}
}

// Prop is a single element property. Whether it is an attribute or an event
// handler is fixed when the prop is built, never sniffed at patch time.
type Prop struct {
	Kind    PropKind
	Name    string   // Attribute name, or lowercased event name
	Value   any      // Attribute value; nil removes the attribute
	Handler *Handler // Event callback; nil means no listener
}

// IsEmpty returns true if this is an empty prop (e.g. a false ClassIf).
func (p Prop) IsEmpty() bool {
	return p.Name == ""
}

// ValueString returns the attribute value as written to the host.
func (p Prop) ValueString() string {
	if p.Value == nil {
		return ""
	}
	return propToString(p.Value)
}

// Props is an ordered property list. Order decides the order in which
// attributes are written on mount.
type Props []Prop

// Get returns the prop with the given kind and name.
func (ps Props) Get(kind PropKind, name string) (Prop, bool) {
	for _, p := range ps {
		if p.Kind == kind && p.Name == name {
			return p, true
		}
	}
	return Prop{}, false
}

// Attr returns the value of the named attribute.
func (ps Props) Attr(name string) (any, bool) {
	p, ok := ps.Get(PropAttr, name)
	return p.Value, ok
}

// FromMap builds Props from a property bag using the "on" prefix
// convention: keys like "onClick" become event props for "click", every
// other key becomes an attribute. Keys are sorted for a stable order.
func FromMap(m map[string]any) Props {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	props := make(Props, 0, len(keys))
	for _, k := range keys {
		if isEventHandler(k) {
			props = append(props, On(k[2:], m[k]))
		} else {
			props = append(props, attr(k, m[k]))
		}
	}
	return props
}

// propKey identifies a prop within one element.
type propKey struct {
	kind PropKind
	name string
}

func keyOf(p Prop) propKey { return propKey{kind: p.Kind, name: p.Name} }

// index maps each prop key to its position.
func (ps Props) index() map[propKey]int {
	if len(ps) == 0 {
		return nil
	}
	idx := make(map[propKey]int, len(ps))
	for i, p := range ps {
		if p.IsEmpty() {
			continue
		}
		idx[keyOf(p)] = i
	}
	return idx
}

// patchProps applies the difference between prev and next to el.
// Props that are new or changed are applied; props missing from next are
// removed.
func (r *Renderer) patchProps(el Handle, prev, next Props) {
	prevIdx := prev.index()
	nextIdx := next.index()

	for _, np := range next {
		if np.IsEmpty() {
			continue
		}
		if i, ok := prevIdx[keyOf(np)]; ok {
			pp := prev[i]
			if propEqual(pp, np) {
				continue
			}
			r.patchProp(el, &pp, &np)
			continue
		}
		r.patchProp(el, nil, &np)
	}

	for _, pp := range prev {
		if pp.IsEmpty() {
			continue
		}
		if _, ok := nextIdx[keyOf(pp)]; !ok {
			r.patchProp(el, &pp, nil)
		}
	}
}

// patchProp applies a single property transition. prev or next may be nil
// when the property is being added or removed.
func (r *Renderer) patchProp(el Handle, prev, next *Prop) {
	kind, name := PropAttr, ""
	if next != nil {
		kind, name = next.Kind, next.Name
	} else if prev != nil {
		kind, name = prev.Kind, prev.Name
	}

	if kind == PropEvent {
		if prev != nil && prev.Handler != nil {
			r.host.RemoveEventListener(el, name, prev.Handler)
		}
		if next != nil && next.Handler != nil {
			r.host.AddEventListener(el, name, next.Handler)
		}
		return
	}

	if next == nil || next.Value == nil {
		r.host.RemoveAttribute(el, name)
		return
	}
	r.host.SetAttribute(el, name, propToString(next.Value))
}

// propEqual reports whether two props with the same key are unchanged.
// Handlers compare by identity, attribute values by value.
func propEqual(a, b Prop) bool {
	if a.Kind == PropEvent {
		return a.Handler == b.Handler
	}
	return propsEqual(a.Value, b.Value)
}

// propsEqual compares two prop values for equality.
func propsEqual(a, b any) bool {
	// Fast path for common types
	switch av := a.(type) {
	case string:
		if bv, ok := b.(string); ok {
			return av == bv
		}
		return false
	case int:
		if bv, ok := b.(int); ok {
			return av == bv
		}
		return false
	case int64:
		if bv, ok := b.(int64); ok {
			return av == bv
		}
		return false
	case float64:
		if bv, ok := b.(float64); ok {
			return av == bv
		}
		return false
	case bool:
		if bv, ok := b.(bool); ok {
			return av == bv
		}
		return false
	case nil:
		return b == nil
	}
	// Fallback to reflect for complex types
	return reflect.DeepEqual(a, b)
}

// propToString converts a prop value to the string written to the host.
func propToString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		if val {
			return "true"
		}
		return "false"
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case fmt.Stringer:
		return val.String()
	case []string:
		return strings.Join(val, " ")
	default:
		return fmt.Sprintf("%v", v)
	}
}
