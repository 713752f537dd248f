package checkbox

import (
	"fmt"

	"github.com/aster-ui/aster/pkg/host"
	"github.com/aster-ui/aster/pkg/primitive"
	"github.com/aster-ui/aster/pkg/vdom"
)

// bubbleInput is the hidden native checkbox behind the visible control. The
// declarative tree only ever serializes its initial state; afterwards the
// checked and indeterminate properties are written imperatively through the
// host mirror, and each real transition is followed by exactly one bubbling
// click so form machinery above observes the change.
type bubbleInput struct {
	ref    string
	mirror host.Mirror

	// initial is the serialized defaultChecked; the diff never touches it.
	initial CheckedState

	// prev remembers the last synchronized state. One slot is enough: syncs
	// are serialized with renders.
	prev CheckedState

	// outerStopped records whether a consumer stopped the visible control's
	// click before the primitive did, so the relay can re-stop the hidden
	// input's own click.
	outerStopped bool
}

func newBubbleInput(ref string, initial CheckedState) *bubbleInput {
	return &bubbleInput{ref: ref, initial: initial, prev: initial}
}

func (b *bubbleInput) attach(m host.Mirror) {
	b.mirror = m
}

func (b *bubbleInput) rememberPropagation(outerStopped bool) {
	b.outerStopped = outerStopped
}

// sync pushes state to the native input. Nothing happens when the state is
// unchanged since the previous sync. On a transition the property writes
// strictly precede the dispatched signal, and indeterminate forces the
// checked property false.
func (b *bubbleInput) sync(state CheckedState) {
	if state == b.prev {
		return
	}
	b.prev = state

	if b.mirror == nil {
		return
	}
	b.mirror.SetMirrorState(state.IsChecked(), state == Indeterminate)
	b.mirror.DispatchChangeSignal()
}

func (b *bubbleInput) render(opts RootOpts, size *primitive.SizeRef) *vdom.VNode {
	style := "position: absolute; pointer-events: none; opacity: 0; margin: 0"
	if s, ok := size.Current(); ok {
		style += fmt.Sprintf("; width: %.0fpx; height: %.0fpx", s.Width, s.Height)
	}

	node := vdom.Input(
		vdom.Type("checkbox"),
		vdom.AriaHidden(true),
		vdom.DefaultChecked(b.initial.IsChecked()),
		vdom.Name(opts.Name),
		vdom.Value(opts.Value),
		vdom.Required(opts.Required),
		vdom.Disabled(opts.Disabled),
		vdom.TabIndex(-1),
		vdom.StyleAttr(style),
		vdom.OnClick(func(e *vdom.Event) {
			if b.outerStopped {
				e.StopPropagation()
			}
		}),
	)
	node.Ref = b.ref
	return node
}
