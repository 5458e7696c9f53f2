package vdom

import (
	"fmt"
	"strings"
)

// attr creates an attribute property with the given key and value.
func attr(key string, value any) Prop {
	return Prop{Kind: PropAttr, Name: key, Value: value}
}

// Attr creates a plain attribute property. A nil value removes the
// attribute when applied.
func Attr(key string, value any) Prop { return attr(key, value) }

// Identity attributes

// ID sets the id attribute.
func ID(id string) Prop { return attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Prop { return attr("class", strings.Join(classes, " ")) }

// StyleAttr sets the style attribute.
func StyleAttr(style string) Prop { return attr("style", style) }

// Data creates a data-* attribute.
// Example: Data("id", "123") → data-id="123"
func Data(key, value string) Prop { return attr("data-"+key, value) }

// Key sets the "key" attribute. The value is converted with fmt.Sprintf.
// The key is applied to the host like any other attribute; child
// reconciliation replaces sequences wholesale and never matches by key.
func Key(key any) Prop {
	return attr("key", fmt.Sprintf("%v", key))
}

// Accessibility attributes

// Role sets the role attribute.
func Role(role string) Prop { return attr("role", role) }

// AriaLabel sets the aria-label attribute.
func AriaLabel(label string) Prop { return attr("aria-label", label) }

// Link and form attributes

// Href sets the href attribute.
func Href(url string) Prop { return attr("href", url) }

// Name sets the name attribute.
func Name(name string) Prop { return attr("name", name) }

// Value sets the value attribute.
func Value(value string) Prop { return attr("value", value) }

// Type sets the type attribute.
func Type(t string) Prop { return attr("type", t) }

// Placeholder sets the placeholder attribute.
func Placeholder(text string) Prop { return attr("placeholder", text) }

// Disabled sets the disabled attribute.
func Disabled() Prop { return attr("disabled", true) }

// TitleAttr sets the title attribute.
func TitleAttr(title string) Prop { return attr("title", title) }

// TabIndex sets the tabindex attribute.
func TabIndex(index int) Prop { return attr("tabindex", index) }

// ClassIf returns the class attribute if condition is true, or an empty prop.
func ClassIf(condition bool, class string) Prop {
	if condition {
		return Class(class)
	}
	return Prop{}
}

// AttrIf returns the prop if condition is true, or an empty prop.
func AttrIf(condition bool, p Prop) Prop {
	if condition {
		return p
	}
	return Prop{}
}
