package vtest

import (
	"testing"

	"github.com/aster-ui/aster/pkg/host"
	"github.com/aster-ui/aster/pkg/session"
	"github.com/aster-ui/aster/pkg/vdom"
)

// Harness drives one mounted component tree through a headless session.
type Harness struct {
	t *testing.T

	// Session is the live session under test.
	Session *session.Session

	frames []*host.Frame
	seq    uint64
}

// Mount creates a session for root, performs the initial render and returns
// the harness.
//
// Example:
//
//	h := vtest.Mount(t, &myPage{})
func Mount(t *testing.T, root vdom.Component) *Harness {
	t.Helper()
	s := session.New("vtest", root)
	s.Mount()
	return &Harness{t: t, Session: s}
}

// Click synthesizes a client click on ref and returns the produced frame
// (nil when nothing changed).
func (h *Harness) Click(ref string) *host.Frame {
	h.t.Helper()
	return h.handle(&host.Event{Type: host.EventClick, Ref: ref})
}

// Keydown synthesizes a keydown on ref.
func (h *Harness) Keydown(ref, key string) *host.Frame {
	h.t.Helper()
	return h.handle(&host.Event{
		Type:    host.EventKeyDown,
		Ref:     ref,
		Payload: &host.KeyboardData{Key: key},
	})
}

// Change synthesizes a change event carrying value.
func (h *Harness) Change(ref, value string) *host.Frame {
	h.t.Helper()
	return h.handle(&host.Event{Type: host.EventChange, Ref: ref, Payload: value})
}

func (h *Harness) handle(ev *host.Event) *host.Frame {
	h.seq++
	ev.Seq = h.seq
	frame := h.Session.HandleEvent(ev)
	if frame != nil {
		h.frames = append(h.frames, frame)
	}
	return frame
}

// HTML renders the current tree.
func (h *Harness) HTML() string {
	h.t.Helper()
	html, err := h.Session.RenderHTML()
	if err != nil {
		h.t.Fatalf("vtest: render: %v", err)
	}
	return html
}

// Frames returns every non-empty frame produced so far.
func (h *Harness) Frames() []*host.Frame {
	return h.frames
}

// PatchesFor returns all recorded patches targeting ref, across frames, in
// delivery order.
func (h *Harness) PatchesFor(ref string) []host.Patch {
	var out []host.Patch
	for _, f := range h.frames {
		for _, p := range f.Patches {
			if p.Ref == ref {
				out = append(out, p)
			}
		}
	}
	return out
}

// NativeEvents returns the synthetic native events dispatched on ref.
func (h *Harness) NativeEvents(ref string) []host.Patch {
	var out []host.Patch
	for _, p := range h.PatchesFor(ref) {
		if p.Op == host.OpDispatch {
			out = append(out, p)
		}
	}
	return out
}

// ExpectAttribute asserts the current tree has value for key on the node
// with ref.
func (h *Harness) ExpectAttribute(ref, key, value string) {
	h.t.Helper()
	node := FindByRef(h.Session.Tree(), ref)
	if node == nil {
		h.t.Fatalf("vtest: no node with ref %q", ref)
	}
	got, ok := node.Props[key]
	if !ok {
		h.t.Errorf("vtest: node %q has no attribute %q", ref, key)
		return
	}
	if s := vdom.PropToString(got); s != value {
		h.t.Errorf("vtest: attribute %q on %q = %q, want %q", key, ref, s, value)
	}
}

// ExpectNoAttribute asserts key is absent on the node with ref.
func (h *Harness) ExpectNoAttribute(ref, key string) {
	h.t.Helper()
	node := FindByRef(h.Session.Tree(), ref)
	if node == nil {
		h.t.Fatalf("vtest: no node with ref %q", ref)
	}
	if _, ok := node.Props[key]; ok {
		h.t.Errorf("vtest: attribute %q unexpectedly present on %q", key, ref)
	}
}
