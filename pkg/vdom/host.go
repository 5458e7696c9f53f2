package vdom

// Handle is a host object created for a mounted node: an element handle
// for element nodes, a text handle for text nodes. Handles are opaque to
// the engine. They must be comparable because render targets are keyed by
// handle identity; pointer types are the natural choice.
type Handle any

// Host is the set of primitives a render target provides. Swapping the
// host (a browser bridge, an in-memory tree for tests) only needs these.
// Primitives are synchronous and do not fail.
type Host interface {
	// CreateElement creates a detached element handle.
	CreateElement(tag string) Handle

	// CreateText creates a detached text handle.
	CreateText(text string) Handle

	// Insert attaches child to parent before anchor, or at the end when
	// anchor is nil.
	Insert(child, parent, anchor Handle)

	// SetText replaces the content of h. On a text handle it sets the
	// payload; on an element it replaces all children with the text
	// (an empty string clears the element).
	SetText(h Handle, text string)

	// SetAttribute sets an attribute on an element handle.
	SetAttribute(el Handle, key, value string)

	// RemoveAttribute removes an attribute from an element handle.
	RemoveAttribute(el Handle, key string)

	// AddEventListener registers handler for event on el.
	AddEventListener(el Handle, event string, handler *Handler)

	// RemoveEventListener unregisters handler for event on el.
	RemoveEventListener(el Handle, event string, handler *Handler)

	// Remove detaches h from its parent. It is a no-op when h has no parent.
	Remove(h Handle)
}

// Op identifies a Host primitive.
type Op uint8

const (
	OpCreateElement       Op = 0x01 // Create element handle
	OpCreateText          Op = 0x02 // Create text handle
	OpInsert              Op = 0x03 // Insert handle into parent
	OpSetText             Op = 0x04 // Set text payload or text content
	OpSetAttribute        Op = 0x05 // Set attribute
	OpRemoveAttribute     Op = 0x06 // Remove attribute
	OpAddEventListener    Op = 0x07 // Register event listener
	OpRemoveEventListener Op = 0x08 // Unregister event listener
	OpRemove              Op = 0x09 // Detach handle from parent
)

// Ops lists every primitive in declaration order.
var Ops = []Op{
	OpCreateElement,
	OpCreateText,
	OpInsert,
	OpSetText,
	OpSetAttribute,
	OpRemoveAttribute,
	OpAddEventListener,
	OpRemoveEventListener,
	OpRemove,
}

// String returns the string representation of the Op.
func (op Op) String() string {
	switch op {
	case OpCreateElement:
		return "createElement"
	case OpCreateText:
		return "createText"
	case OpInsert:
		return "insert"
	case OpSetText:
		return "setText"
	case OpSetAttribute:
		return "setAttribute"
	case OpRemoveAttribute:
		return "removeAttribute"
	case OpAddEventListener:
		return "addEventListener"
	case OpRemoveEventListener:
		return "removeEventListener"
	case OpRemove:
		return "remove"
	default:
		return "unknown"
	}
}
