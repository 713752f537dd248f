package checkbox

import (
	"testing"

	"github.com/aster-ui/aster/pkg/host"
	"github.com/aster-ui/aster/pkg/reactive"
	"github.com/aster-ui/aster/pkg/vdom"
)

// findByRef walks a rendered tree for the node carrying ref.
func findByRef(n *vdom.VNode, ref string) *vdom.VNode {
	if n == nil {
		return nil
	}
	if n.Ref == ref {
		return n
	}
	for _, c := range n.Children {
		if found := findByRef(c, ref); found != nil {
			return found
		}
	}
	return nil
}

// click fires the node's click handler and returns the live event.
func click(t *testing.T, n *vdom.VNode) *vdom.Event {
	t.Helper()
	if n == nil {
		t.Fatal("click target not rendered")
	}
	e := vdom.NewEvent("click", n.Ref)
	vdom.InvokeHandler(n.Props["onclick"], e)
	return e
}

// renderAndClick runs one full activation cycle: render, click the visible
// control, flush native sync.
func renderAndClick(t *testing.T, r *Root) *vdom.Event {
	t.Helper()
	tree := r.Render()
	e := click(t, findByRef(tree, r.Ref()))
	r.Render()
	r.AfterRender()
	return e
}

func TestActivationCycle(t *testing.T) {
	scope := reactive.NewScope(nil)
	r := NewRoot(scope, RootOpts{})

	renderAndClick(t, r)
	if got := r.State(); got != Checked {
		t.Fatalf("unchecked + click = %v, want Checked", got)
	}

	renderAndClick(t, r)
	if got := r.State(); got != Unchecked {
		t.Fatalf("checked + click = %v, want Unchecked", got)
	}

	r.SetState(Indeterminate)
	renderAndClick(t, r)
	if got := r.State(); got != Checked {
		t.Fatalf("indeterminate + click = %v, want Checked", got)
	}
}

func TestDisabledSuppressesActivation(t *testing.T) {
	scope := reactive.NewScope(nil)
	notified := 0
	r := NewRoot(scope, RootOpts{
		Disabled:        true,
		Name:            "terms",
		OnCheckedChange: func(CheckedState) { notified++ },
	})
	doc := host.NewRecordingDocument()
	r.Mount(doc)

	renderAndClick(t, r)

	if r.State() != Unchecked {
		t.Error("disabled click must not transition")
	}
	if notified != 0 {
		t.Errorf("disabled click notified %d times", notified)
	}
	if got := doc.PatchesFor(r.InputRef()); len(got) != 0 {
		t.Errorf("disabled click produced native ops: %v", got)
	}

	// Reading state while disabled is inert too.
	_ = r.State()
	if r.State() != Unchecked {
		t.Error("reading state transitioned")
	}
}

func TestRenderedAttributeSurface(t *testing.T) {
	scope := reactive.NewScope(nil)
	r := NewRoot(scope, RootOpts{DefaultChecked: Indeterminate, Required: true})

	btn := findByRef(r.Render(), r.Ref())
	if btn.Tag != "button" || btn.Props["type"] != "button" {
		t.Errorf("control = %q %v", btn.Tag, btn.Props)
	}
	if btn.Props["role"] != "checkbox" {
		t.Errorf("role = %v", btn.Props["role"])
	}
	if btn.Props["aria-checked"] != "mixed" {
		t.Errorf("aria-checked = %v", btn.Props["aria-checked"])
	}
	if btn.Props["data-state"] != "indeterminate" {
		t.Errorf("data-state = %v", btn.Props["data-state"])
	}
	if btn.Props["aria-required"] != true {
		t.Errorf("aria-required = %v", btn.Props["aria-required"])
	}
	if _, present := btn.Props["data-disabled"]; present {
		t.Error("data-disabled must be absent while enabled")
	}

	disabled := NewRoot(scope, RootOpts{Disabled: true})
	btn = findByRef(disabled.Render(), disabled.Ref())
	if _, present := btn.Props["data-disabled"]; !present {
		t.Error("data-disabled presence marker missing")
	}
	if _, present := btn.Props["disabled"]; !present {
		t.Error("disabled attribute missing")
	}
}

func TestControlledRootIsPureNotifier(t *testing.T) {
	scope := reactive.NewScope(nil)
	external := Unchecked

	var got []CheckedState
	r := NewRoot(scope, RootOpts{
		Checked:         &external,
		OnCheckedChange: func(s CheckedState) { got = append(got, s) },
	})

	renderAndClick(t, r)

	if r.State() != Unchecked {
		t.Error("controlled click must not change state before the owner applies it")
	}
	if len(got) != 1 || got[0] != Checked {
		t.Fatalf("notifications = %v", got)
	}

	// Owner accepts.
	external = Checked
	r.SyncChecked(&external)
	if r.State() != Checked {
		t.Error("owner-applied value not visible")
	}
}

func TestConsumerPreventDefaultVetoesToggle(t *testing.T) {
	scope := reactive.NewScope(nil)
	r := NewRoot(scope, RootOpts{
		OnClick: func(e *vdom.Event) { e.PreventDefault() },
	})

	renderAndClick(t, r)
	if r.State() != Unchecked {
		t.Error("prevented click still toggled")
	}
}

func TestEnterKeySuppressed(t *testing.T) {
	scope := reactive.NewScope(nil)
	r := NewRoot(scope, RootOpts{})
	btn := findByRef(r.Render(), r.Ref())

	enter := vdom.NewEvent("keydown", r.Ref())
	enter.Payload = host.KeyboardData{Key: "Enter"}
	vdom.InvokeHandler(btn.Props["onkeydown"], enter)
	if !enter.DefaultPrevented() {
		t.Error("Enter should be prevented")
	}

	space := vdom.NewEvent("keydown", r.Ref())
	space.Payload = host.KeyboardData{Key: " "}
	vdom.InvokeHandler(btn.Props["onkeydown"], space)
	if space.DefaultPrevented() {
		t.Error("Space must stay live for native activation")
	}
}
