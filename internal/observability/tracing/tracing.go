// Package tracing wraps span creation for generator phases so the runner can
// report to OpenTelemetry without depending on it directly.
package tracing

import "context"

// Attribute is a key/value pair attached to a span.
type Attribute struct {
	Key   string
	Value any
}

// Span is an in-flight phase span.
type Span interface {
	End(err error)
}

// Tracer starts spans.
type Tracer interface {
	Start(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span)
}

// NoopTracer discards all tracing events.
type NoopTracer struct{}

// Start implements Tracer.
func (NoopTracer) Start(ctx context.Context, _ string, _ ...Attribute) (context.Context, Span) {
	return ctx, noopSpan{}
}

type noopSpan struct{}

func (noopSpan) End(error) {}

type fanoutTracer []Tracer

func (f fanoutTracer) Start(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span) {
	spans := make(fanoutSpan, 0, len(f))
	for _, tracer := range f {
		var span Span
		ctx, span = tracer.Start(ctx, name, attrs...)
		if span != nil {
			spans = append(spans, span)
		}
	}
	return ctx, spans
}

type fanoutSpan []Span

func (fs fanoutSpan) End(err error) {
	for i := len(fs) - 1; i >= 0; i-- {
		fs[i].End(err)
	}
}

// WithTracer combines the non-nil tracers into one. With none it returns a
// NoopTracer.
func WithTracer(primary Tracer, others ...Tracer) Tracer {
	tracers := make(fanoutTracer, 0, 1+len(others))
	for _, t := range append([]Tracer{primary}, others...) {
		if t != nil {
			tracers = append(tracers, t)
		}
	}
	switch len(tracers) {
	case 0:
		return NoopTracer{}
	case 1:
		return tracers[0]
	default:
		return tracers
	}
}

// PhaseSpanName names the span of one generator phase, e.g. "entity-client.writing".
func PhaseSpanName(generator, phase string) string {
	return generator + "." + phase
}

// String attribute helper.
func String(key, value string) Attribute { return Attribute{Key: key, Value: value} }

// Int attribute helper.
func Int(key string, value int) Attribute { return Attribute{Key: key, Value: value} }

// Bool attribute helper.
func Bool(key string, value bool) Attribute { return Attribute{Key: key, Value: value} }
