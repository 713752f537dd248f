package reactive

import "testing"

func TestSignalSetNotifiesOnChange(t *testing.T) {
	s := NewSignal("unchecked")

	dirty := 0
	s.Subscribe(NewListenerFunc(func() { dirty++ }))

	s.Set("checked")
	if got := s.Get(); got != "checked" {
		t.Errorf("got %q", got)
	}
	if dirty != 1 {
		t.Errorf("dirty = %d, want 1", dirty)
	}

	// Same value again: no notification.
	s.Set("checked")
	if dirty != 1 {
		t.Errorf("redundant set notified, dirty = %d", dirty)
	}
}

func TestSignalUpdateAtomicTransition(t *testing.T) {
	s := NewSignal(2)
	s.Update(func(v int) int { return v * 3 })
	if got := s.Get(); got != 6 {
		t.Errorf("got %d", got)
	}
}

func TestSignalSubscribeDeduplicatesByID(t *testing.T) {
	s := NewSignal(0)

	count := 0
	l := NewListenerFunc(func() { count++ })
	s.Subscribe(l)
	s.Subscribe(l)

	s.Set(1)
	if count != 1 {
		t.Errorf("duplicate subscription fired twice, count = %d", count)
	}
}

func TestSignalUnsubscribe(t *testing.T) {
	s := NewSignal(0)

	count := 0
	l := NewListenerFunc(func() { count++ })
	s.Subscribe(l)
	s.Unsubscribe(l)

	s.Set(1)
	if count != 0 {
		t.Errorf("unsubscribed listener fired, count = %d", count)
	}
}

func TestSignalWithEquals(t *testing.T) {
	// Treat values as equal mod 10.
	s := NewSignal(3).WithEquals(func(a, b int) bool { return a%10 == b%10 })

	dirty := 0
	s.Subscribe(NewListenerFunc(func() { dirty++ }))

	s.Set(13)
	if dirty != 0 {
		t.Errorf("custom-equal values notified, dirty = %d", dirty)
	}
	if got := s.Get(); got != 3 {
		t.Errorf("equal set should keep prior value, got %d", got)
	}

	s.Set(4)
	if dirty != 1 {
		t.Errorf("dirty = %d, want 1", dirty)
	}
}

func TestSignalReentrantSetFromListener(t *testing.T) {
	s := NewSignal(0)

	var seen []int
	s.Subscribe(NewListenerFunc(func() {
		v := s.Get()
		seen = append(seen, v)
		if v < 3 {
			s.Set(v + 1)
		}
	}))

	s.Set(1)
	if len(seen) != 3 || seen[2] != 3 {
		t.Errorf("seen = %v", seen)
	}
}
