package vdom

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// El creates an element node with the given tag. Arguments can be nil, Attr,
// []Attr, *VNode, []*VNode, Component, string, or EventHandler.
func El(tag string, args ...any) *VNode {
	return createElement(tag, args)
}

func createElement(tag string, args []any) *VNode {
	node := &VNode{
		Kind:     KindElement,
		Tag:      tag,
		Props:    make(Props),
		Children: make([]*VNode, 0),
	}

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignore nil (allows conditional attributes)
			continue

		case Attr:
			if v.Key == "" {
				continue
			}
			if v.Key == "key" {
				if s, ok := v.Value.(string); ok {
					node.Key = s
				}
				continue
			}
			node.Props[v.Key] = v.Value

		case []Attr:
			for _, a := range v {
				if a.Key != "" {
					node.Props[a.Key] = a.Value
				}
			}

		case EventHandler:
			node.Props[v.Event] = v.Handler

		case *VNode:
			if v != nil {
				node.Children = append(node.Children, v)
			}

		case []*VNode:
			for _, c := range v {
				if c != nil {
					node.Children = append(node.Children, c)
				}
			}

		case string:
			node.Children = append(node.Children, Text(v))

		case Component:
			node.Children = append(node.Children, &VNode{
				Kind: KindComponent,
				Comp: v,
			})
		}
	}

	return node
}

// Document structure

// Div creates a <div> element.
func Div(args ...any) *VNode { return El("div", args...) }

// Span creates a <span> element.
func Span(args ...any) *VNode { return El("span", args...) }

// P creates a <p> element.
func P(args ...any) *VNode { return El("p", args...) }

// H1 creates an <h1> element.
func H1(args ...any) *VNode { return El("h1", args...) }

// H2 creates an <h2> element.
func H2(args ...any) *VNode { return El("h2", args...) }

// Ul creates a <ul> element.
func Ul(args ...any) *VNode { return El("ul", args...) }

// Li creates a <li> element.
func Li(args ...any) *VNode { return El("li", args...) }

// Forms

// Form creates a <form> element.
func Form(args ...any) *VNode { return El("form", args...) }

// Label creates a <label> element.
func Label(args ...any) *VNode { return El("label", args...) }

// Button creates a <button> element.
func Button(args ...any) *VNode { return El("button", args...) }

// Input creates an <input> element.
func Input(args ...any) *VNode { return El("input", args...) }

// Fieldset creates a <fieldset> element.
func Fieldset(args ...any) *VNode { return El("fieldset", args...) }

// Legend creates a <legend> element.
func Legend(args ...any) *VNode { return El("legend", args...) }
