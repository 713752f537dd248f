package primitive

import "sync"

// Ref carries an imperative reference to a rendered node (or any other
// late-bound value) across renders.
type Ref[T any] struct {
	mu    sync.RWMutex
	value T
	set   bool
}

// NewRef creates an empty ref.
func NewRef[T any]() *Ref[T] {
	return &Ref[T]{}
}

// Set stores the referenced value.
func (r *Ref[T]) Set(v T) {
	r.mu.Lock()
	r.value = v
	r.set = true
	r.mu.Unlock()
}

// Get returns the referenced value and whether one has been set.
func (r *Ref[T]) Get() (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.value, r.set
}

// Clear forgets the referenced value.
func (r *Ref[T]) Clear() {
	r.mu.Lock()
	var zero T
	r.value = zero
	r.set = false
	r.mu.Unlock()
}

// ComposeRefs returns a setter that forwards to every non-nil setter, so one
// node can feed several refs.
func ComposeRefs[T any](setters ...func(T)) func(T) {
	return func(v T) {
		for _, set := range setters {
			if set != nil {
				set(v)
			}
		}
	}
}
