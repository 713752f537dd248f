package vdom

// Event is the live event object handed to handlers during dispatch.
// Handlers on the same logical activation share one Event, so a handler can
// observe whether an earlier handler already stopped propagation or prevented
// the default action.
type Event struct {
	// Type is the DOM event name without the "on" prefix ("click", "change").
	Type string

	// Target is the reference of the node the event fired on.
	Target string

	// Payload carries type-specific data (input value, key info).
	Payload any

	propagationStopped bool
	defaultPrevented   bool
}

// NewEvent creates an event of the given type targeting ref.
func NewEvent(eventType, target string) *Event {
	return &Event{Type: eventType, Target: target}
}

// StopPropagation marks the event so it will not bubble past the current
// boundary. Idempotent.
func (e *Event) StopPropagation() {
	e.propagationStopped = true
}

// IsPropagationStopped reports whether any handler stopped propagation.
func (e *Event) IsPropagationStopped() bool {
	return e.propagationStopped
}

// PreventDefault cancels the event's default action.
func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether any handler prevented the default action.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// InvokeHandler calls a handler of any supported signature with the event.
// Supported: func(), func(*Event), func(string) (string payload events).
func InvokeHandler(handler any, e *Event) {
	switch h := handler.(type) {
	case nil:
		return
	case ModifiedHandler:
		if h.StopPropagation {
			e.StopPropagation()
		}
		if h.PreventDefault {
			e.PreventDefault()
		}
		InvokeHandler(h.Handler, e)
	case func():
		h()
	case func(*Event):
		h(e)
	case func(string):
		s, _ := e.Payload.(string)
		h(s)
	}
}

// event creates an EventHandler with the given name and handler.
// The name is prefixed with "on" (e.g. "click" becomes "onclick").
func event(name string, handler any) EventHandler {
	return EventHandler{Event: "on" + name, Handler: handler}
}

// OnClick handles click events.
func OnClick(handler any) EventHandler { return event("click", handler) }

// OnChange handles change events (fired when value is committed).
func OnChange(handler any) EventHandler { return event("change", handler) }

// OnInput handles input events (fired when value changes).
func OnInput(handler any) EventHandler { return event("input", handler) }

// OnSubmit handles form submit events.
func OnSubmit(handler any) EventHandler { return event("submit", handler) }

// OnKeyDown handles keydown events.
func OnKeyDown(handler any) EventHandler { return event("keydown", handler) }

// OnKeyUp handles keyup events.
func OnKeyUp(handler any) EventHandler { return event("keyup", handler) }

// OnFocus handles focus events.
func OnFocus(handler any) EventHandler { return event("focus", handler) }

// OnBlur handles blur events.
func OnBlur(handler any) EventHandler { return event("blur", handler) }
