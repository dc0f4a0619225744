package tracing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

type recordingSpan struct {
	name string
	log  *[]string
}

func (s recordingSpan) End(err error) {
	*s.log = append(*s.log, "end "+s.name)
}

type recordingTracer struct {
	name string
	log  *[]string
}

func (t recordingTracer) Start(ctx context.Context, name string, _ ...Attribute) (context.Context, Span) {
	*t.log = append(*t.log, "start "+t.name)
	return ctx, recordingSpan{name: t.name, log: t.log}
}

func TestWithTracerFanout(t *testing.T) {
	var log []string
	tracer := WithTracer(recordingTracer{"a", &log}, nil, recordingTracer{"b", &log})

	_, span := tracer.Start(context.Background(), PhaseSpanName("entity-client", "writing"))
	span.End(nil)

	assert.Equal(t, []string{"start a", "start b", "end b", "end a"}, log)
}

func TestWithTracerCollapses(t *testing.T) {
	assert.Equal(t, NoopTracer{}, WithTracer(nil))

	var log []string
	only := recordingTracer{"only", &log}
	assert.Equal(t, only, WithTracer(nil, only))
}

func TestOTelTracerRecordsPhaseSpans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	tracer := NewOTelTracer(provider)

	_, ok := tracer.Start(context.Background(), "entity-server.configuring", String("entity", "OrderItem"), Bool("dry_run", true))
	ok.End(nil)
	_, failed := tracer.Start(context.Background(), "entity-server.writing", Int("files", 3))
	failed.End(errors.New("disk full"))

	spans := recorder.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "entity-server.configuring", spans[0].Name())
	assert.Contains(t, spans[0].Attributes(), attribute.String("entity", "OrderItem"))
	assert.Contains(t, spans[0].Attributes(), attribute.Bool("dry_run", true))
	assert.Equal(t, codes.Unset, spans[0].Status().Code)

	assert.Equal(t, "entity-server.writing", spans[1].Name())
	assert.Equal(t, codes.Error, spans[1].Status().Code)
	assert.Equal(t, "disk full", spans[1].Status().Description)
	assert.Equal(t, InstrumentationName, spans[1].InstrumentationScope().Name)
}
