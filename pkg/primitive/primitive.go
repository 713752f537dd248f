package primitive

import (
	"strings"

	"github.com/aster-ui/aster/pkg/vdom"
)

// Render builds an element of tag from args, like vdom.El. With asChild set,
// the element's own props are merged onto its first element child instead and
// that child is returned: the consumer supplies the rendered node and the
// primitive contributes its behavior and attributes.
func Render(tag string, asChild bool, args ...any) *vdom.VNode {
	node := vdom.El(tag, args...)
	if !asChild {
		return node
	}

	child := firstElementChild(node.Children)
	if child == nil {
		return node
	}
	child.Props = MergeProps(node.Props, child.Props)
	if child.Key == "" {
		child.Key = node.Key
	}
	return child
}

// MergeProps merges overrides onto base. Event handlers compose (the override
// handler runs first, then the base handler), class lists concatenate, style
// strings concatenate, and any other key is won by overrides.
func MergeProps(base, overrides vdom.Props) vdom.Props {
	merged := make(vdom.Props, len(base)+len(overrides))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range overrides {
		existing, ok := merged[k]
		if !ok {
			merged[k] = v
			continue
		}
		switch {
		case isHandlerKey(k):
			merged[k] = chainHandlers(v, existing)
		case k == "class":
			merged[k] = joinValues(existing, v, " ")
		case k == "style":
			merged[k] = joinValues(existing, v, "; ")
		default:
			merged[k] = v
		}
	}
	return merged
}

func firstElementChild(children []*vdom.VNode) *vdom.VNode {
	for _, c := range children {
		if c != nil && c.Kind == vdom.KindElement {
			return c
		}
	}
	return nil
}

func isHandlerKey(key string) bool {
	return len(key) > 2 && strings.EqualFold(key[:2], "on")
}

// chainHandlers runs first then second with the same live event.
func chainHandlers(first, second any) func(*vdom.Event) {
	return func(e *vdom.Event) {
		vdom.InvokeHandler(first, e)
		vdom.InvokeHandler(second, e)
	}
}

func joinValues(a, b any, sep string) string {
	as, _ := a.(string)
	bs, _ := b.(string)
	if as == "" {
		return bs
	}
	if bs == "" {
		return as
	}
	return as + sep + bs
}
