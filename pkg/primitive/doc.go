// Package primitive holds the shared plumbing that headless components are
// assembled from: polymorphic rendering with prop merging, event handler and
// ref composition, a presence gate for exit animations, size tracking, and
// label association.
package primitive
