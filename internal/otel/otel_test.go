package otel

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/hanpama/graphcfg/internal/eventbus"
	"github.com/hanpama/graphcfg/internal/events"
	"github.com/hanpama/graphcfg/internal/reqid"
)

func TestCompileSpans(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	bus := eventbus.New()
	Attach(bus, tp.Tracer("test"))

	ctx, _ := reqid.NewContext(context.Background())
	eventbus.Publish(ctx, bus, events.CompileStart{Command: "check", Root: "schema"})
	eventbus.Publish(ctx, bus, events.SourcesLoaded{Sources: []string{"a.graphql"}, Duration: time.Millisecond})
	eventbus.Publish(ctx, bus, events.CompileFinish{Command: "check", Causes: 2, Err: errors.New("validation failed")})

	spans := rec.Ended()
	require.Len(t, spans, 2)
	require.Equal(t, "schema.load", spans[0].Name())
	require.Equal(t, "graphcfg.compile", spans[1].Name())
	require.Equal(t, spans[1].SpanContext().SpanID(), spans[0].Parent().SpanID())
	require.Equal(t, codes.Error, spans[1].Status().Code)
}

func TestFinishWithoutStartIsIgnored(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	bus := eventbus.New()
	Attach(bus, tp.Tracer("test"))

	ctx, _ := reqid.NewContext(context.Background())
	eventbus.Publish(ctx, bus, events.CompileFinish{Command: "check"})
	require.Empty(t, rec.Ended())
}

func TestSetupWithoutEndpoint(t *testing.T) {
	shutdown, err := Setup(context.Background(), eventbus.New(), "", "graphcfg")
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}
