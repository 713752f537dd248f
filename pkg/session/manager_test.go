package session

import (
	"errors"
	"testing"
)

func TestManagerCreateGetRemove(t *testing.T) {
	m := NewManager()

	s, err := m.Create(newCounterRoot())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if s.ID() == "" {
		t.Fatal("empty session id")
	}

	got, err := m.Get(s.ID())
	if err != nil || got != s {
		t.Fatalf("get: %v, %v", got, err)
	}

	m.Remove(s.ID())
	if _, err := m.Get(s.ID()); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if !s.Scope().IsDisposed() {
		t.Error("removed session should dispose its scope")
	}

	// Removing twice is fine.
	m.Remove(s.ID())
}

func TestManagerSessionLimit(t *testing.T) {
	m := NewManager(WithMaxSessions(1))

	if _, err := m.Create(newCounterRoot()); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := m.Create(newCounterRoot()); !errors.Is(err, ErrTooManySessions) {
		t.Errorf("expected ErrTooManySessions, got %v", err)
	}
}

func TestManagerShutdown(t *testing.T) {
	m := NewManager()
	a, _ := m.Create(newCounterRoot())
	b, _ := m.Create(newCounterRoot())

	m.Shutdown()

	if m.Len() != 0 {
		t.Errorf("len = %d", m.Len())
	}
	if !a.Scope().IsDisposed() || !b.Scope().IsDisposed() {
		t.Error("shutdown should dispose all sessions")
	}
}

func TestManagerIDsAreUnique(t *testing.T) {
	m := NewManager()
	seen := make(map[string]bool)
	for i := 0; i < 32; i++ {
		s, err := m.Create(newCounterRoot())
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if seen[s.ID()] {
			t.Fatalf("duplicate id %s", s.ID())
		}
		seen[s.ID()] = true
	}
}
