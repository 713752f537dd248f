package reactive

import "testing"

func TestScopeValueLookupWalksAncestors(t *testing.T) {
	root := NewScope(nil)
	root.SetValue("k", "root-value")

	child := NewScope(root)
	grandchild := NewScope(child)

	got, ok := grandchild.GetValue("k")
	if !ok || got != "root-value" {
		t.Errorf("got %v, %v", got, ok)
	}

	// A nearer value shadows the ancestor's.
	child.SetValue("k", "child-value")
	got, _ = grandchild.GetValue("k")
	if got != "child-value" {
		t.Errorf("got %v, want child-value", got)
	}

	if _, ok := root.GetValue("missing"); ok {
		t.Error("missing key should not resolve")
	}
}

func TestScopeDisposeRunsCleanupsInReverseOrder(t *testing.T) {
	scope := NewScope(nil)

	var order []int
	scope.OnCleanup(func() { order = append(order, 1) })
	scope.OnCleanup(func() { order = append(order, 2) })
	scope.OnCleanup(func() { order = append(order, 3) })

	scope.Dispose()

	if len(order) != 3 || order[0] != 3 || order[1] != 2 || order[2] != 1 {
		t.Errorf("cleanup order: %v", order)
	}
	if !scope.IsDisposed() {
		t.Error("scope should report disposed")
	}

	// Idempotent.
	scope.Dispose()
	if len(order) != 3 {
		t.Errorf("double dispose reran cleanups: %v", order)
	}
}

func TestScopeDisposeCascadesToChildren(t *testing.T) {
	root := NewScope(nil)
	child := NewScope(root)
	grandchild := NewScope(child)

	ran := false
	grandchild.OnCleanup(func() { ran = true })

	root.Dispose()

	if !grandchild.IsDisposed() {
		t.Error("grandchild should be disposed with the root")
	}
	if !ran {
		t.Error("grandchild cleanup should have run")
	}
}

func TestOnCleanupAfterDisposeRunsImmediately(t *testing.T) {
	scope := NewScope(nil)
	scope.Dispose()

	ran := false
	scope.OnCleanup(func() { ran = true })
	if !ran {
		t.Error("cleanup registered on a disposed scope must run immediately")
	}
}
