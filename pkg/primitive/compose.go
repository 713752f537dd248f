package primitive

import "github.com/aster-ui/aster/pkg/vdom"

// ComposeEventHandlers chains a consumer-supplied handler with the
// primitive's own handler. The consumer handler runs first; the primitive
// handler is skipped when the consumer prevented the default action, so a
// consumer can veto the primitive's behavior per event.
func ComposeEventHandlers(consumer, own any) func(*vdom.Event) {
	return func(e *vdom.Event) {
		vdom.InvokeHandler(consumer, e)
		if !e.DefaultPrevented() {
			vdom.InvokeHandler(own, e)
		}
	}
}

// ComposeEventHandlersUnchecked chains both handlers unconditionally, for
// events whose primitive behavior must run even when cancelled.
func ComposeEventHandlersUnchecked(consumer, own any) func(*vdom.Event) {
	return func(e *vdom.Event) {
		vdom.InvokeHandler(consumer, e)
		vdom.InvokeHandler(own, e)
	}
}
