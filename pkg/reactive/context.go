package reactive

import (
	"fmt"
	"reflect"

	"github.com/aster-ui/aster/pkg/vdom"
)

// MissingProviderError reports a context read with no enclosing provider and
// no configured default. This is an integration bug in the component tree,
// not a runtime condition: it is raised as a panic and intentionally never
// recovered inside this package.
type MissingProviderError struct {
	// Consumer is the human-readable name of the reading component.
	Consumer string

	// Provider is the human-readable name of the missing provider.
	Provider string
}

// Error implements the error interface.
func (e *MissingProviderError) Error() string {
	return fmt.Sprintf("reactive: `%s` must be used within `%s`", e.Consumer, e.Provider)
}

// Context distributes a value to a subtree without explicit parameter
// passing. Create one with CreateContext (required: reads outside a provider
// panic) or CreateContextWithDefault (optional: reads outside a provider get
// the default). The policy is fixed for the lifetime of the handle.
type Context[T any] struct {
	// key uniquely identifies this context in scope value tables.
	// The handle's own pointer identity guarantees uniqueness even when two
	// factories share a provider name.
	key any

	providerName string

	hasDefault   bool
	defaultValue T
}

// contextKey wraps the handle pointer to create a unique key type.
type contextKey[T any] struct {
	ctx *Context[T]
}

// CreateContext creates a required context. Use panics with
// *MissingProviderError when called outside a Provider subtree.
func CreateContext[T any](providerName string) *Context[T] {
	ctx := &Context[T]{providerName: providerName}
	ctx.key = contextKey[T]{ctx: ctx}
	return ctx
}

// CreateContextWithDefault creates an optional context: reads outside a
// Provider subtree return def instead of failing.
func CreateContextWithDefault[T any](providerName string, def T) *Context[T] {
	ctx := &Context[T]{
		providerName: providerName,
		hasDefault:   true,
		defaultValue: def,
	}
	ctx.key = contextKey[T]{ctx: ctx}
	return ctx
}

// ProviderName returns the human-readable provider name.
func (c *Context[T]) ProviderName() string {
	return c.providerName
}

// HasDefault reports whether this context was built with a default.
func (c *Context[T]) HasDefault() bool {
	return c.hasDefault
}

// Default returns the default value (zero value for required contexts).
func (c *Context[T]) Default() T {
	return c.defaultValue
}

// Provider broadcasts value to the subtree under scope and returns a
// fragment wrapping children.
//
// The published value is stable across renders whose constituent fields are
// shallow-equal: if the new value field-compares equal to the currently
// published one, the previous value object is kept, so consumers keyed on
// identity are not re-notified by no-op renders.
func (c *Context[T]) Provider(scope *Scope, value T, children ...any) *vdom.VNode {
	if scope != nil {
		if prev, ok := scope.GetValue(c.key); ok {
			if prevT, ok := prev.(T); ok && shallowEqual(prevT, value) {
				return vdom.Fragment(children...)
			}
		}
		scope.SetValue(c.key, value)
	}
	return vdom.Fragment(children...)
}

// Use reads the nearest broadcast value from scope.
//
// consumerName names the reading component for diagnostics. When no provider
// encloses scope: contexts with a default return it; required contexts panic
// with *MissingProviderError naming both sides.
func (c *Context[T]) Use(scope *Scope, consumerName string) T {
	if scope != nil {
		if value, ok := scope.GetValue(c.key); ok {
			if typed, ok := value.(T); ok {
				return typed
			}
		}
	}

	if c.hasDefault {
		return c.defaultValue
	}

	panic(&MissingProviderError{Consumer: consumerName, Provider: c.providerName})
}

// shallowEqual compares two values field-by-field for structs, and by
// interface equality otherwise. Func-typed fields compare equal only when
// both are nil, since function values are not comparable.
func shallowEqual(a, b any) bool {
	av := reflect.ValueOf(a)
	bv := reflect.ValueOf(b)

	if av.Kind() != bv.Kind() {
		return false
	}

	if av.Kind() == reflect.Struct {
		for i := 0; i < av.NumField(); i++ {
			af := av.Field(i)
			bf := bv.Field(i)
			if af.Kind() == reflect.Func {
				if af.IsNil() != bf.IsNil() {
					return false
				}
				continue
			}
			if !af.CanInterface() {
				continue
			}
			if !reflect.DeepEqual(af.Interface(), bf.Interface()) {
				return false
			}
		}
		return true
	}

	return reflect.DeepEqual(a, b)
}
