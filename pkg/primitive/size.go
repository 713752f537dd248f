package primitive

import (
	"sync/atomic"

	"github.com/aster-ui/aster/pkg/reactive"
)

// Size is a measured box footprint in CSS pixels.
type Size struct {
	Width  float64
	Height float64
}

// SizeRef tracks the measured size of a rendered node. Measurements arrive
// from the host; until the first observation Current reports no size, so
// callers can distinguish "not measured" from a genuine zero footprint.
type SizeRef struct {
	sig      *reactive.Signal[Size]
	observed atomic.Bool
}

// NewSizeRef creates an unmeasured size ref.
func NewSizeRef() *SizeRef {
	return &SizeRef{sig: reactive.NewSignal(Size{})}
}

// Observe records a host measurement.
func (r *SizeRef) Observe(s Size) {
	r.observed.Store(true)
	r.sig.Set(s)
}

// Current returns the last measurement and whether one exists.
func (r *SizeRef) Current() (Size, bool) {
	return r.sig.Get(), r.observed.Load()
}

// Subscribe notifies l when the measurement changes.
func (r *SizeRef) Subscribe(l reactive.Listener) {
	r.sig.Subscribe(l)
}
