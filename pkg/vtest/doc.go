// Package vtest is the headless test harness for aster components.
//
// Mount a component tree, synthesize client events against node references,
// and assert on rendered HTML, emitted patch frames and dispatched native
// events without a browser:
//
//	h := vtest.Mount(t, page)
//	h.Click(box.Ref())
//	h.ExpectAttribute(box.Ref(), "data-state", "checked")
package vtest
