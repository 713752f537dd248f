package vdom

// ModifiedHandler wraps an event handler with modifiers applied to the event
// before the handler runs.
type ModifiedHandler struct {
	Handler any

	StopPropagation bool
	PreventDefault  bool
}

// StopPropagation wraps handler so the event stops bubbling before the
// handler runs.
func StopPropagation(handler any) ModifiedHandler {
	if m, ok := handler.(ModifiedHandler); ok {
		m.StopPropagation = true
		return m
	}
	return ModifiedHandler{Handler: handler, StopPropagation: true}
}

// PreventDefault wraps handler so the event's default action is cancelled
// before the handler runs.
func PreventDefault(handler any) ModifiedHandler {
	if m, ok := handler.(ModifiedHandler); ok {
		m.PreventDefault = true
		return m
	}
	return ModifiedHandler{Handler: handler, PreventDefault: true}
}
