package reactive

import (
	"sync"
	"sync/atomic"
)

// Scope is a component-tree node that owns reactive state. Disposing a scope
// disposes its children and runs registered cleanups, mirroring unmount.
//
// Scopes also carry the context value table used by Context broadcast:
// lookups walk from the reading scope toward the root and stop at the
// nearest provider.
type Scope struct {
	id uint64

	// parent is nil for the root scope (typically the session).
	parent *Scope

	children   []*Scope
	childrenMu sync.Mutex

	cleanups   []func()
	cleanupsMu sync.Mutex

	values   map[any]any
	valuesMu sync.RWMutex

	disposed atomic.Bool
}

// NewScope creates a scope under parent. A nil parent creates a root scope.
func NewScope(parent *Scope) *Scope {
	s := &Scope{
		id:     nextID(),
		parent: parent,
	}
	if parent != nil {
		parent.addChild(s)
	}
	return s
}

// ID returns the unique identifier for this scope.
func (s *Scope) ID() uint64 {
	return s.id
}

// Parent returns the parent scope, or nil at the root.
func (s *Scope) Parent() *Scope {
	return s.parent
}

// IsDisposed reports whether Dispose has run.
func (s *Scope) IsDisposed() bool {
	return s.disposed.Load()
}

func (s *Scope) addChild(child *Scope) {
	s.childrenMu.Lock()
	defer s.childrenMu.Unlock()
	s.children = append(s.children, child)
}

func (s *Scope) removeChild(child *Scope) {
	s.childrenMu.Lock()
	defer s.childrenMu.Unlock()
	for i, c := range s.children {
		if c == child {
			s.children = append(s.children[:i], s.children[i+1:]...)
			return
		}
	}
}

// OnCleanup registers fn to run when this scope is disposed.
// If the scope is already disposed, fn runs immediately.
func (s *Scope) OnCleanup(fn func()) {
	if s.disposed.Load() {
		fn()
		return
	}
	s.cleanupsMu.Lock()
	defer s.cleanupsMu.Unlock()
	s.cleanups = append(s.cleanups, fn)
}

// SetValue sets a context value on this scope.
func (s *Scope) SetValue(key, value any) {
	s.valuesMu.Lock()
	defer s.valuesMu.Unlock()
	if s.values == nil {
		s.values = make(map[any]any)
	}
	s.values[key] = value
}

// GetValue retrieves a context value from this scope or its ancestors.
// Returns (nil, false) when no scope in the chain provides the key.
func (s *Scope) GetValue(key any) (any, bool) {
	s.valuesMu.RLock()
	if s.values != nil {
		if val, ok := s.values[key]; ok {
			s.valuesMu.RUnlock()
			return val, true
		}
	}
	s.valuesMu.RUnlock()

	if s.parent != nil {
		return s.parent.GetValue(key)
	}
	return nil, false
}

// Dispose disposes this scope, its children (in reverse creation order) and
// runs cleanups in reverse registration order. Idempotent.
func (s *Scope) Dispose() {
	if s.disposed.Swap(true) {
		return
	}

	if s.parent != nil {
		s.parent.removeChild(s)
	}

	s.childrenMu.Lock()
	children := make([]*Scope, len(s.children))
	copy(children, s.children)
	s.children = nil
	s.childrenMu.Unlock()

	for i := len(children) - 1; i >= 0; i-- {
		children[i].Dispose()
	}

	s.cleanupsMu.Lock()
	cleanups := s.cleanups
	s.cleanups = nil
	s.cleanupsMu.Unlock()

	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}
}
