package vtest

import (
	"strings"
	"testing"

	"github.com/aster-ui/aster/pkg/render"
	"github.com/aster-ui/aster/pkg/vdom"
)

// RenderToString renders a VNode and returns the HTML string.
//
// Example:
//
//	html := vtest.RenderToString(comp.Render())
func RenderToString(node *vdom.VNode) string {
	html, err := render.NewRenderer().RenderToString(node)
	if err != nil {
		return ""
	}
	return html
}

// ExpectContains asserts that rendered output contains expected.
//
// Example:
//
//	vtest.ExpectContains(t, comp.Render(), "Accept terms")
func ExpectContains(t *testing.T, node *vdom.VNode, expected string) {
	t.Helper()
	html := RenderToString(node)
	if !strings.Contains(html, expected) {
		t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectNotContains asserts that rendered output does not contain unexpected.
func ExpectNotContains(t *testing.T, node *vdom.VNode, unexpected string) {
	t.Helper()
	html := RenderToString(node)
	if strings.Contains(html, unexpected) {
		t.Errorf("expected rendered output not to contain %q, got:\n%s", unexpected, truncate(html, 500))
	}
}

// FindByRef returns the node carrying ref, or nil.
func FindByRef(node *vdom.VNode, ref string) *vdom.VNode {
	if node == nil || ref == "" {
		return nil
	}
	if node.Ref == ref {
		return node
	}
	for _, c := range node.Children {
		if found := FindByRef(c, ref); found != nil {
			return found
		}
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
