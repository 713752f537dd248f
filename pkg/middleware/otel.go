package middleware

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/aster-ui/aster/pkg/host"
	"github.com/aster-ui/aster/pkg/session"
)

const defaultTracerName = "aster"

// OTelConfig configures the OpenTelemetry middleware.
type OTelConfig struct {
	// TracerName is the name of the tracer (default: "aster").
	TracerName string

	// Filter determines which events to trace. Nil traces everything.
	Filter func(ev *host.Event) bool

	// AttributeExtractor adds custom attributes per traced event.
	AttributeExtractor func(s *session.Session, ev *host.Event) []attribute.KeyValue

	tracer trace.Tracer
}

// OTelOption configures the OpenTelemetry middleware.
type OTelOption func(*OTelConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) OTelOption {
	return func(c *OTelConfig) { c.TracerName = name }
}

// WithEventFilter sets a filter function for events.
func WithEventFilter(filter func(ev *host.Event) bool) OTelOption {
	return func(c *OTelConfig) { c.Filter = filter }
}

// WithAttributeExtractor sets a custom attribute extractor.
func WithAttributeExtractor(fn func(s *session.Session, ev *host.Event) []attribute.KeyValue) OTelOption {
	return func(c *OTelConfig) { c.AttributeExtractor = fn }
}

// OpenTelemetry returns event middleware that opens a span per dispatched
// event, carrying session id, event type, target ref and resulting patch
// count. The tracer comes from the global provider; configure it in main()
// before serving.
func OpenTelemetry(opts ...OTelOption) Middleware {
	config := OTelConfig{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&config)
	}
	config.tracer = otel.Tracer(config.TracerName)

	return func(next Handler) Handler {
		return func(ctx context.Context, s *session.Session, ev *host.Event) (*host.Frame, error) {
			if config.Filter != nil && !config.Filter(ev) {
				return next(ctx, s, ev)
			}

			attrs := []attribute.KeyValue{
				attribute.String("aster.session_id", s.ID()),
				attribute.String("aster.event_type", ev.Type.String()),
				attribute.String("aster.event_target", ev.Ref),
			}
			if config.AttributeExtractor != nil {
				attrs = append(attrs, config.AttributeExtractor(s, ev)...)
			}

			spanCtx, span := config.tracer.Start(ctx,
				fmt.Sprintf("aster.%s", ev.Type.String()),
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(attrs...),
			)
			defer span.End()

			frame, err := next(spanCtx, s, ev)

			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
			} else {
				span.SetStatus(codes.Ok, "")
			}
			patchCount := 0
			if frame != nil {
				patchCount = len(frame.Patches)
			}
			span.SetAttributes(attribute.Int("aster.patch_count", patchCount))

			return frame, err
		}
	}
}
