// Package reactive provides the ownership and state layer the primitives are
// built on: scopes that mirror the component tree and dispose with it,
// signals that notify listeners on change, subtree-scoped context broadcast
// with a required-or-defaulted policy fixed at creation, and the controllable
// value abstraction that reconciles externally owned props with internal
// fallback state.
package reactive
