// Package render converts VNode trees into HTML.
//
// It produces the initial server-rendered page: escaped text and attributes,
// void element handling, boolean attributes, and data-ref markers on nodes
// that carry a reference so the client can route events back to them. After
// the first paint all updates travel as host patches, so this package is only
// on the cold path.
package render
