// Package vdom provides the declarative element tree the primitives render
// into: virtual nodes, attribute and event helpers, and the diff that turns
// two renders into a minimal set of document patches.
//
// The diff deliberately suppresses redundant attribute writes. Anything that
// must reach the live document even when the declarative value is unchanged
// (native input properties, synthetic event dispatch) goes through pkg/host
// instead.
package vdom
