package reactive

import "sync"

// DebugMode enables development-time validation (unsupported ownership-mode
// transitions panic instead of being ignored).
var DebugMode = false

// ControllableOpts configures a Controllable value.
type ControllableOpts[T any] struct {
	// Prop is the externally owned value; nil means unset. Supplying a
	// non-nil Prop at construction fixes the instance in controlled mode.
	Prop *T

	// DefaultProp seeds the internal cell in uncontrolled mode.
	DefaultProp T

	// OnChange is invoked once per logical transition in both modes.
	OnChange func(T)

	// Equal overrides the default equality used to detect transitions.
	Equal func(T, T) bool
}

// Controllable reconciles an externally supplied value with internal
// fallback state.
//
// Ownership is decided once, at construction: controlled iff Prop was
// non-nil. In controlled mode the instance never mutates state itself; Set is
// a pure notifier and the owner applies (or declines) the change upstream. In
// uncontrolled mode Set mutates the internal cell and then notifies, so
// observers see the same signal regardless of mode.
type Controllable[T any] struct {
	controlled bool
	onChange   func(T)
	equal      func(T, T) bool

	// prop mirrors the external value in controlled mode.
	prop   T
	propMu sync.RWMutex

	// cell holds internal state in uncontrolled mode.
	cell *Signal[T]
}

// NewControllable creates a controllable value. The ownership mode observed
// here is final for the instance's lifetime.
func NewControllable[T any](opts ControllableOpts[T]) *Controllable[T] {
	c := &Controllable[T]{
		controlled: opts.Prop != nil,
		onChange:   opts.OnChange,
		equal:      opts.Equal,
	}
	if c.controlled {
		c.prop = *opts.Prop
	} else {
		c.cell = NewSignal(opts.DefaultProp)
		if opts.Equal != nil {
			c.cell.WithEquals(opts.Equal)
		}
	}
	return c
}

// IsControlled reports the ownership mode.
func (c *Controllable[T]) IsControlled() bool {
	return c.controlled
}

// Get returns the current value: the external value in controlled mode, the
// internal cell otherwise.
func (c *Controllable[T]) Get() T {
	if c.controlled {
		c.propMu.RLock()
		defer c.propMu.RUnlock()
		return c.prop
	}
	return c.cell.Get()
}

// SyncProp is called on each render with the current external prop. In
// controlled mode it refreshes the mirrored value. Flipping the prop between
// set and unset after construction is an unsupported ownership transition:
// ignored in release builds, a panic in DebugMode.
func (c *Controllable[T]) SyncProp(prop *T) {
	if c.controlled {
		if prop == nil {
			if DebugMode {
				panic("reactive: controllable switched from controlled to uncontrolled; ownership mode is fixed at construction")
			}
			return
		}
		c.propMu.Lock()
		c.prop = *prop
		c.propMu.Unlock()
		return
	}

	if prop != nil && DebugMode {
		panic("reactive: controllable switched from uncontrolled to controlled; ownership mode is fixed at construction")
	}
}

// Set requests a transition to next.
//
// Controlled mode: local state is never touched; OnChange fires iff next
// differs from the current external value. If the owner never applies the
// notified value, subsequent reads keep returning the external value — the
// control has no authority.
//
// Uncontrolled mode: the cell is updated, then OnChange fires with the same
// value iff it actually changed.
func (c *Controllable[T]) Set(next T) {
	c.SetFunc(func(T) T { return next })
}

// SetFunc is Set with a functional update: fn receives the previous value
// and returns the next one, so toggle-style transitions cannot race with
// other pending updates.
func (c *Controllable[T]) SetFunc(fn func(prev T) T) {
	if c.controlled {
		c.propMu.RLock()
		current := c.prop
		c.propMu.RUnlock()

		next := fn(current)
		if !c.equals(current, next) && c.onChange != nil {
			c.onChange(next)
		}
		return
	}

	var notified *T
	c.cell.Update(func(prev T) T {
		next := fn(prev)
		if !c.equals(prev, next) {
			notified = &next
		}
		return next
	})
	if notified != nil && c.onChange != nil {
		c.onChange(*notified)
	}
}

func (c *Controllable[T]) equals(a, b T) bool {
	if c.equal != nil {
		return c.equal(a, b)
	}
	return defaultEquals(a, b)
}
