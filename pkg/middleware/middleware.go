package middleware

import (
	"context"

	"github.com/aster-ui/aster/pkg/host"
	"github.com/aster-ui/aster/pkg/session"
)

// Handler applies one decoded client event to a session and returns the
// resulting patch frame, nil when nothing changed.
type Handler func(ctx context.Context, s *session.Session, ev *host.Event) (*host.Frame, error)

// Middleware wraps a Handler with cross-cutting behavior.
type Middleware func(Handler) Handler

// Dispatch is the terminal handler: it hands the event to the session.
func Dispatch() Handler {
	return func(_ context.Context, s *session.Session, ev *host.Event) (*host.Frame, error) {
		return s.HandleEvent(ev), nil
	}
}

// Chain wraps h with the given middlewares; the first middleware is the
// outermost.
func Chain(h Handler, mws ...Middleware) Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}
