package vtest

import (
	"testing"

	"github.com/aster-ui/aster/pkg/checkbox"
	"github.com/aster-ui/aster/pkg/reactive"
	"github.com/aster-ui/aster/pkg/vdom"
)

type termsPage struct {
	box *checkbox.Root
}

func newTermsPage() *termsPage {
	scope := reactive.NewScope(nil)
	box := checkbox.NewRoot(scope, checkbox.RootOpts{Name: "terms"},
		checkbox.NewIndicator(reactive.NewScope(scope), checkbox.IndicatorOpts{}, "x"))
	return &termsPage{box: box}
}

func (p *termsPage) Render() *vdom.VNode { return vdom.Form(p.box) }

func (p *termsPage) Mount(doc any) { p.box.Mount(doc) }

func (p *termsPage) AfterRender() { p.box.AfterRender() }

func TestHarnessClickTogglesCheckbox(t *testing.T) {
	page := newTermsPage()
	h := Mount(t, page)

	h.ExpectAttribute(page.box.Ref(), "data-state", "unchecked")
	h.ExpectAttribute(page.box.Ref(), "aria-checked", "false")

	if h.Click(page.box.Ref()) == nil {
		t.Fatal("click should produce a frame")
	}

	h.ExpectAttribute(page.box.Ref(), "data-state", "checked")
	h.ExpectAttribute(page.box.Ref(), "aria-checked", "true")

	if got := h.NativeEvents(page.box.InputRef()); len(got) != 1 {
		t.Errorf("native events = %v", got)
	}
}

func TestHarnessHTMLAndAssertions(t *testing.T) {
	page := newTermsPage()
	h := Mount(t, page)

	html := h.HTML()
	if html == "" {
		t.Fatal("empty html")
	}

	tree := h.Session.Tree()
	ExpectContains(t, tree, `role="checkbox"`)
	ExpectContains(t, tree, `name="terms"`)
	ExpectNotContains(t, tree, "data-disabled")
}

func TestHarnessKeydown(t *testing.T) {
	page := newTermsPage()
	h := Mount(t, page)

	// Enter never activates a checkbox.
	h.Keydown(page.box.Ref(), "Enter")
	h.ExpectAttribute(page.box.Ref(), "data-state", "unchecked")
}

func TestFindByRef(t *testing.T) {
	inner := vdom.Span("x")
	inner.Ref = "target"
	tree := vdom.Div(vdom.Div(inner))

	if FindByRef(tree, "target") != inner {
		t.Error("should find nested node")
	}
	if FindByRef(tree, "missing") != nil {
		t.Error("missing ref should be nil")
	}
}
