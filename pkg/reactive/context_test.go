package reactive

import (
	"strings"
	"testing"
)

type toggleContextValue struct {
	State    string
	Disabled bool
}

func TestContextProviderAndUse(t *testing.T) {
	ctx := CreateContext[toggleContextValue]("Toggle")

	root := NewScope(nil)
	ctx.Provider(root, toggleContextValue{State: "checked"})

	child := NewScope(root)
	got := ctx.Use(child, "ToggleIndicator")
	if got.State != "checked" {
		t.Errorf("got %+v", got)
	}
}

func TestRequiredContextPanicsNamingBothSides(t *testing.T) {
	ctx := CreateContext[toggleContextValue]("Checkbox")
	scope := NewScope(nil)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		err, ok := r.(*MissingProviderError)
		if !ok {
			t.Fatalf("expected *MissingProviderError, got %T", r)
		}
		if err.Consumer != "CheckboxIndicator" || err.Provider != "Checkbox" {
			t.Errorf("names: %+v", err)
		}
		if !strings.Contains(err.Error(), "CheckboxIndicator") || !strings.Contains(err.Error(), "Checkbox") {
			t.Errorf("message should name both components: %q", err.Error())
		}
	}()

	ctx.Use(scope, "CheckboxIndicator")
}

func TestDefaultedContextReturnsDefaultWithoutProvider(t *testing.T) {
	def := toggleContextValue{State: "unchecked"}
	ctx := CreateContextWithDefault("Checkbox", def)
	scope := NewScope(nil)

	got := ctx.Use(scope, "CheckboxIndicator")
	if got != def {
		t.Errorf("got %+v, want default %+v", got, def)
	}
}

func TestNearestProviderWins(t *testing.T) {
	ctx := CreateContext[string]("Theme")

	root := NewScope(nil)
	ctx.Provider(root, "outer")

	mid := NewScope(root)
	ctx.Provider(mid, "inner")

	leaf := NewScope(mid)
	if got := ctx.Use(leaf, "Leaf"); got != "inner" {
		t.Errorf("got %q, want inner", got)
	}
}

func TestTwoFactoriesNeverCollide(t *testing.T) {
	a := CreateContext[string]("Same")
	b := CreateContextWithDefault[string]("Same", "fallback")

	scope := NewScope(nil)
	a.Provider(scope, "from-a")

	if got := b.Use(scope, "Consumer"); got != "fallback" {
		t.Errorf("factory b should not see factory a's value, got %q", got)
	}
}

func TestProviderKeepsValueWhenFieldsUnchanged(t *testing.T) {
	ctx := CreateContext[toggleContextValue]("Toggle")
	scope := NewScope(nil)

	ctx.Provider(scope, toggleContextValue{State: "checked", Disabled: false})
	first, _ := scope.GetValue(ctx.key)

	// Same field values: the published object must be reused.
	ctx.Provider(scope, toggleContextValue{State: "checked", Disabled: false})
	second, _ := scope.GetValue(ctx.key)
	if first != second {
		t.Error("shallow-equal republish should keep the previous value")
	}

	// A real field change must republish.
	ctx.Provider(scope, toggleContextValue{State: "unchecked", Disabled: false})
	third, _ := scope.GetValue(ctx.key)
	if third == second {
		t.Error("changed fields should publish a new value")
	}
}

func TestShallowEqualIgnoresEqualFuncFields(t *testing.T) {
	type withFn struct {
		State  string
		Toggle func()
	}
	fn1 := func() {}
	fn2 := func() {}

	if !shallowEqual(withFn{"x", fn1}, withFn{"x", fn2}) {
		t.Error("two non-nil funcs should compare equal shallowly")
	}
	if shallowEqual(withFn{"x", fn1}, withFn{"x", nil}) {
		t.Error("nil vs non-nil func should differ")
	}
	if shallowEqual(withFn{"x", fn1}, withFn{"y", fn1}) {
		t.Error("differing data fields should differ")
	}
}
