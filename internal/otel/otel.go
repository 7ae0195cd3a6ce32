// Package otel exports compile runs as OpenTelemetry spans.
package otel

import (
	"context"
	"sync"
	"time"

	"github.com/hanpama/graphcfg/internal/eventbus"
	"github.com/hanpama/graphcfg/internal/events"
	"github.com/hanpama/graphcfg/internal/reqid"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Setup configures OpenTelemetry and attaches span subscribers to bus.
// If endpoint is empty, no telemetry is configured.
func Setup(ctx context.Context, bus *eventbus.Bus, endpoint, service string) (func(context.Context) error, error) {
	if endpoint == "" {
		return func(context.Context) error { return nil }, nil
	}
	exp, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithEndpoint(endpoint),
		otlptracegrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())))
	if err != nil {
		return nil, err
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(service),
		)),
	)
	otel.SetTracerProvider(tp)

	Attach(bus, otel.Tracer("graphcfg"))

	return tp.Shutdown, nil
}

// Attach subscribes a span recorder for compile events to bus. Each run
// produces one "graphcfg.compile" span with a "schema.load" child.
func Attach(bus *eventbus.Bus, tracer trace.Tracer) {
	s := &subscriber{tracer: tracer}
	s.register(bus)
}

type subscriber struct {
	tracer       trace.Tracer
	compileSpans sync.Map // rid -> trace.Span
}

func (s *subscriber) register(bus *eventbus.Bus) {
	eventbus.Subscribe(bus, func(ctx context.Context, e events.CompileStart) {
		rid, _ := reqid.FromContext(ctx)
		_, span := s.tracer.Start(ctx, "graphcfg.compile")
		span.SetAttributes(
			attribute.String("graphcfg.command", e.Command),
			attribute.String("graphcfg.root", e.Root),
			attribute.StringSlice("graphcfg.files", e.Files),
		)
		s.compileSpans.Store(rid, span)
	})

	eventbus.Subscribe(bus, func(ctx context.Context, e events.SourcesLoaded) {
		rid, _ := reqid.FromContext(ctx)
		v, ok := s.compileSpans.Load(rid)
		if !ok {
			return
		}
		now := time.Now()
		_, span := s.tracer.Start(trace.ContextWithSpan(ctx, v.(trace.Span)), "schema.load",
			trace.WithTimestamp(now.Add(-e.Duration)))
		span.SetAttributes(attribute.StringSlice("graphcfg.sources", e.Sources))
		span.End(trace.WithTimestamp(now))
	})

	eventbus.Subscribe(bus, func(ctx context.Context, e events.CompileFinish) {
		rid, _ := reqid.FromContext(ctx)
		v, ok := s.compileSpans.LoadAndDelete(rid)
		if !ok {
			return
		}
		span := v.(trace.Span)
		span.SetAttributes(
			attribute.Int("graphcfg.types", e.Types),
			attribute.Int("graphcfg.unions", e.Unions),
			attribute.Int("graphcfg.causes", e.Causes),
		)
		if e.Err != nil {
			span.RecordError(e.Err)
			span.SetStatus(codes.Error, "compile failed")
		}
		span.End()
	})
}
