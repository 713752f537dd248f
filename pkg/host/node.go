package host

// PropertyWriter is the capability to set native element properties directly,
// bypassing the declarative attribute diff. The checked and indeterminate
// flags of a live input cannot be driven through attributes: the diff
// suppresses redundant writes and indeterminate has no attribute at all.
type PropertyWriter interface {
	SetChecked(ref string, checked bool)
	SetIndeterminate(ref string, indeterminate bool)
	SetValue(ref string, value string)
}

// EventDispatcher is the capability to dispatch a synthetic bubbling DOM
// event on a node, as if the user had interacted with it.
type EventDispatcher interface {
	DispatchEvent(ref string, name string, detail string)
}

// Mirror keeps one hidden native form control in lockstep with logical state.
// It is intentionally narrow: primitives that bridge to native forms only
// ever need these two operations, in this order.
type Mirror interface {
	// SetMirrorState writes the checked and indeterminate properties of the
	// mirrored node through the host's property setters.
	SetMirrorState(checked, indeterminate bool)

	// DispatchChangeSignal fires one bubbling click event on the mirrored
	// node so ancestor form machinery observes the already-mutated state.
	DispatchChangeSignal()
}

// NewMirror binds a Mirror to the node identified by ref in doc.
//
// If the document implements neither PropertyWriter nor EventDispatcher the
// returned mirror is inert: native-form synchronization silently degrades
// while the declarative contract keeps working.
func NewMirror(doc any, ref string) Mirror {
	pw, _ := doc.(PropertyWriter)
	ed, _ := doc.(EventDispatcher)
	return &mirror{pw: pw, ed: ed, ref: ref}
}

type mirror struct {
	pw  PropertyWriter
	ed  EventDispatcher
	ref string
}

func (m *mirror) SetMirrorState(checked, indeterminate bool) {
	if m.pw == nil {
		return
	}
	m.pw.SetIndeterminate(m.ref, indeterminate)
	m.pw.SetChecked(m.ref, checked)
}

func (m *mirror) DispatchChangeSignal() {
	if m.ed == nil {
		return
	}
	m.ed.DispatchEvent(m.ref, "click", `{"bubbles":true}`)
}
