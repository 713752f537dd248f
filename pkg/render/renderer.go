package render

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/aster-ui/aster/pkg/vdom"
)

// Renderer writes VNode trees as HTML.
type Renderer struct{}

// NewRenderer creates a Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderToString renders a VNode tree to an HTML string.
func (r *Renderer) RenderToString(node *vdom.VNode) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a VNode tree to w.
func (r *Renderer) RenderToWriter(w io.Writer, node *vdom.VNode) error {
	return r.renderNode(w, node)
}

func (r *Renderer) renderNode(w io.Writer, node *vdom.VNode) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case vdom.KindElement:
		return r.renderElement(w, node)
	case vdom.KindText:
		_, err := io.WriteString(w, escapeHTML(node.Text))
		return err
	case vdom.KindFragment:
		for _, child := range node.Children {
			if err := r.renderNode(w, child); err != nil {
				return err
			}
		}
		return nil
	case vdom.KindComponent:
		if node.Comp != nil {
			return r.renderNode(w, node.Comp.Render())
		}
		return nil
	default:
		return fmt.Errorf("render: unknown node kind %d", node.Kind)
	}
}

func (r *Renderer) renderElement(w io.Writer, node *vdom.VNode) error {
	if _, err := fmt.Fprintf(w, "<%s", node.Tag); err != nil {
		return err
	}

	if err := r.renderAttributes(w, node); err != nil {
		return err
	}

	// data-ref routes client events back to this node.
	if node.Ref != "" {
		if _, err := fmt.Fprintf(w, ` data-ref="%s"`, escapeAttr(node.Ref)); err != nil {
			return err
		}
	}

	if vdom.IsVoidElement(node.Tag) {
		_, err := w.Write([]byte{'>'})
		return err
	}

	if _, err := w.Write([]byte{'>'}); err != nil {
		return err
	}

	for _, child := range node.Children {
		if err := r.renderNode(w, child); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "</%s>", node.Tag)
	return err
}

func (r *Renderer) renderAttributes(w io.Writer, node *vdom.VNode) error {
	if len(node.Props) == 0 {
		return nil
	}

	// Deterministic output
	keys := make([]string, 0, len(node.Props))
	for key := range node.Props {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := node.Props[key]

		if isHandlerProp(key, value) {
			continue
		}

		// Presence markers carry an empty value.
		if s, ok := value.(string); ok && s == "" {
			if _, err := fmt.Fprintf(w, " %s", key); err != nil {
				return err
			}
			continue
		}

		if isBooleanAttr(key) {
			if b, ok := value.(bool); ok {
				if b {
					if _, err := fmt.Fprintf(w, " %s", key); err != nil {
						return err
					}
				}
				continue
			}
		}

		if _, err := fmt.Fprintf(w, ` %s="%s"`, key, escapeAttr(vdom.PropToString(value))); err != nil {
			return err
		}
	}

	return nil
}

// isHandlerProp reports whether a prop is an event handler: registered for
// dispatch, never serialized.
func isHandlerProp(key string, value any) bool {
	if len(key) <= 2 || !strings.EqualFold(key[:2], "on") {
		return false
	}
	if value == nil {
		return false
	}
	if _, ok := value.(vdom.ModifiedHandler); ok {
		return true
	}
	return strings.HasPrefix(fmt.Sprintf("%T", value), "func")
}
