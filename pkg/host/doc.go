// Package host is the imperative boundary between the component runtime and
// the real document the client renders.
//
// Everything the declarative layer cannot express goes through this package:
// direct property writes on native elements (input.checked and
// input.indeterminate have no attribute equivalent once the element is live),
// synthetic event dispatch, and focus control. Operations are encoded with a
// compact varint-based binary codec and shipped to the client in frames.
//
// The package also defines the narrow Mirror interface used by form-bridging
// primitives: exactly two operations, SetMirrorState and DispatchChangeSignal.
// A document that cannot write native properties simply does not implement
// the capability interfaces, and callers degrade to declarative-only behavior.
package host
