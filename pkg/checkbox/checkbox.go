package checkbox

import (
	"fmt"
	"sync/atomic"

	"github.com/aster-ui/aster/pkg/host"
	"github.com/aster-ui/aster/pkg/primitive"
	"github.com/aster-ui/aster/pkg/reactive"
	"github.com/aster-ui/aster/pkg/vdom"
)

// ContextValue is what the root broadcasts to its subtree.
type ContextValue struct {
	State    CheckedState
	Disabled bool
}

// checkboxContext carries the root's state to indicators. Required: an
// indicator rendered outside a checkbox is an integration bug.
var checkboxContext = reactive.CreateContext[ContextValue]("Checkbox")

var refSeq atomic.Uint64

func newRef(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, refSeq.Add(1))
}

// RootOpts configures a checkbox root.
type RootOpts struct {
	// Checked is the externally owned state; nil selects uncontrolled mode.
	Checked *CheckedState

	// DefaultChecked seeds uncontrolled state.
	DefaultChecked CheckedState

	// OnCheckedChange fires once per logical state transition in both modes.
	OnCheckedChange func(CheckedState)

	Disabled bool
	Required bool

	// Name enables native form participation via the hidden input.
	Name string

	// Value is the submitted value when checked. Defaults to "on".
	Value string

	// AsChild renders the consumer-supplied child element instead of the
	// built-in button, with the checkbox's props merged on.
	AsChild bool

	// OnClick and OnKeyDown are consumer handlers composed ahead of the
	// checkbox's own. Preventing default in OnClick vetoes the toggle.
	OnClick   any
	OnKeyDown any
}

// Root is the stateful checkbox control.
type Root struct {
	scope    *reactive.Scope
	opts     RootOpts
	state    *reactive.Controllable[CheckedState]
	bubble   *bubbleInput
	size     *primitive.SizeRef
	children []any

	buttonRef string
}

// NewRoot creates a checkbox under scope. children become the content of the
// rendered control (typically an Indicator).
func NewRoot(scope *reactive.Scope, opts RootOpts, children ...any) *Root {
	if opts.Value == "" {
		opts.Value = "on"
	}

	r := &Root{
		scope:     scope,
		opts:      opts,
		size:      primitive.NewSizeRef(),
		children:  children,
		buttonRef: newRef("checkbox"),
	}
	r.state = reactive.NewControllable(reactive.ControllableOpts[CheckedState]{
		Prop:        opts.Checked,
		DefaultProp: opts.DefaultChecked,
		OnChange:    opts.OnCheckedChange,
	})
	r.bubble = newBubbleInput(newRef("checkbox-input"), r.state.Get())
	return r
}

// State returns the current checked state. Reading never transitions, even
// while disabled.
func (r *Root) State() CheckedState {
	return r.state.Get()
}

// SetState assigns the state directly. This is the only way a checkbox
// enters Indeterminate.
func (r *Root) SetState(s CheckedState) {
	r.state.Set(s)
}

// SyncChecked refreshes the external prop in controlled mode; called by the
// owner whenever its value changes.
func (r *Root) SyncChecked(prop *CheckedState) {
	r.state.SyncProp(prop)
}

// Ref returns the visible control's node reference.
func (r *Root) Ref() string {
	return r.buttonRef
}

// InputRef returns the hidden native input's node reference.
func (r *Root) InputRef() string {
	return r.bubble.ref
}

// Size exposes the visible control's measured footprint, which the hidden
// input adopts so label hit-testing and autofill heuristics keep working.
func (r *Root) Size() *primitive.SizeRef {
	return r.size
}

// Mount binds the native bridge to the host document. A document without the
// property-setter capability degrades silently.
func (r *Root) Mount(doc any) {
	r.bubble.attach(host.NewMirror(doc, r.bubble.ref))
}

// AfterRender flushes native synchronization for the committed state. Runs
// after the declarative tree has been diffed, so property writes and the
// bubbling signal always trail the broadcast.
func (r *Root) AfterRender() {
	r.bubble.sync(r.state.Get())
}

// handleClick is the checkbox's own activation handler, composed after the
// consumer's OnClick.
func (r *Root) handleClick(e *vdom.Event) {
	if r.opts.Disabled {
		return
	}
	if r.opts.Name != "" {
		r.bubble.rememberPropagation(e.IsPropagationStopped())
		if !e.IsPropagationStopped() {
			e.StopPropagation()
		}
	}
	r.state.SetFunc(CheckedState.Toggled)
}

// handleKeyDown suppresses Enter: per the WAI-ARIA checkbox pattern only
// Space activates, and Enter would otherwise submit an enclosing form twice.
func (r *Root) handleKeyDown(e *vdom.Event) {
	if data, ok := e.Payload.(host.KeyboardData); ok && data.Key == "Enter" {
		e.PreventDefault()
	}
}

// Render implements vdom.Component.
func (r *Root) Render() *vdom.VNode {
	state := r.state.Get()

	args := []any{
		vdom.Type("button"),
		vdom.Role("checkbox"),
		vdom.AriaChecked(state.AriaChecked()),
		vdom.Data("state", state.String()),
		vdom.DataFlag("disabled", r.opts.Disabled),
		vdom.Disabled(r.opts.Disabled),
		vdom.Value(r.opts.Value),
		vdom.OnClick(primitive.ComposeEventHandlers(r.opts.OnClick, r.handleClick)),
		vdom.OnKeyDown(primitive.ComposeEventHandlers(r.opts.OnKeyDown, r.handleKeyDown)),
	}
	if r.opts.Required {
		args = append(args, vdom.AriaRequired(true))
	}
	args = append(args, r.children...)

	button := primitive.Render("button", r.opts.AsChild, args...)
	button.Ref = r.buttonRef

	nodes := []any{button}
	if r.opts.Name != "" {
		nodes = append(nodes, r.bubble.render(r.opts, r.size))
	}

	return checkboxContext.Provider(r.scope,
		ContextValue{State: state, Disabled: r.opts.Disabled},
		nodes...)
}
