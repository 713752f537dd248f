package vdom

import "strings"

// attr creates an Attr with the given key and value.
func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// NewAttr creates an attribute with an arbitrary key.
func NewAttr(key string, value any) Attr { return attr(key, value) }

// Identity attributes

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attr { return attr("class", strings.Join(classes, " ")) }

// StyleAttr sets the style attribute (named to avoid conflict with a Style element).
func StyleAttr(style string) Attr { return attr("style", style) }

// Data creates a data-* attribute.
// Example: Data("state", "checked") → data-state="checked"
func Data(key, value string) Attr { return attr("data-"+key, value) }

// DataFlag creates a valueless data-* presence marker when present is true,
// and no attribute at all otherwise.
func DataFlag(key string, present bool) Attr {
	if !present {
		return Attr{}
	}
	return attr("data-"+key, "")
}

// Form attributes

// Type sets the type attribute.
func Type(t string) Attr { return attr("type", t) }

// Name sets the name attribute.
func Name(name string) Attr { return attr("name", name) }

// Value sets the value attribute.
func Value(value string) Attr { return attr("value", value) }

// Required sets the required attribute when true.
func Required(required bool) Attr {
	if !required {
		return Attr{}
	}
	return attr("required", "")
}

// Disabled sets the disabled attribute when true.
func Disabled(disabled bool) Attr {
	if !disabled {
		return Attr{}
	}
	return attr("disabled", "")
}

// DefaultChecked sets the checked attribute when true. This is the initial
// serialized state only; the live property is driven through pkg/host.
func DefaultChecked(checked bool) Attr {
	if !checked {
		return Attr{}
	}
	return attr("checked", "")
}

// TabIndex sets the tabindex attribute.
func TabIndex(index int) Attr { return attr("tabindex", index) }

// For sets the for attribute on a label.
func For(id string) Attr { return attr("for", id) }

// Accessibility attributes

// Role sets the role attribute.
func Role(role string) Attr { return attr("role", role) }

// AriaLabel sets the aria-label attribute.
func AriaLabel(label string) Attr { return attr("aria-label", label) }

// AriaHidden sets the aria-hidden attribute.
func AriaHidden(hidden bool) Attr { return attr("aria-hidden", hidden) }

// AriaChecked sets the aria-checked attribute ("true", "false" or "mixed").
func AriaChecked(value string) Attr { return attr("aria-checked", value) }

// AriaRequired sets the aria-required attribute.
func AriaRequired(required bool) Attr { return attr("aria-required", required) }

// AriaLabelledBy sets the aria-labelledby attribute.
func AriaLabelledBy(id string) Attr { return attr("aria-labelledby", id) }

// AriaDisabled sets the aria-disabled attribute.
func AriaDisabled(disabled bool) Attr { return attr("aria-disabled", disabled) }
