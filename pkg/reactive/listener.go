package reactive

// Listener is anything that can be notified when a dependency changes.
// Components implement it to schedule a re-render.
type Listener interface {
	// MarkDirty notifies the listener that one of its dependencies changed.
	MarkDirty()

	// ID returns a unique identifier, used for subscription deduplication.
	ID() uint64
}

// ListenerFunc adapts a plain function to the Listener interface.
type ListenerFunc struct {
	id uint64
	fn func()
}

// NewListenerFunc wraps fn as a Listener with a fresh identity.
func NewListenerFunc(fn func()) *ListenerFunc {
	return &ListenerFunc{id: nextID(), fn: fn}
}

// MarkDirty implements Listener.
func (l *ListenerFunc) MarkDirty() {
	if l.fn != nil {
		l.fn()
	}
}

// ID implements Listener.
func (l *ListenerFunc) ID() uint64 {
	return l.id
}
