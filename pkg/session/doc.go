// Package session runs the server side of one live page: it renders the
// component tree, routes decoded client events to handlers with bubbling
// semantics, re-renders, and turns the result into host patch frames.
//
// Each session is single-threaded by design: events are applied one at a
// time, so handlers never race with renders and the native bridge's ordering
// guarantees hold without locks in component code.
package session
