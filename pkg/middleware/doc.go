// Package middleware provides observability wrappers for the session event
// pipeline: Prometheus metrics and OpenTelemetry tracing around event
// dispatch.
//
// Middlewares wrap a Handler, the function that applies one decoded client
// event to a session:
//
//	m := middleware.NewMetrics()
//	h := middleware.Chain(middleware.Dispatch(),
//	    m.Middleware(),
//	    middleware.OpenTelemetry(),
//	)
package middleware
