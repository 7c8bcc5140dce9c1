package observability

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	dbTracerName       = "tflwatch/db"
	pipelineTracerName = "tflwatch/pipeline"
)

type contextKey string

const (
	runIDKey     contextKey = "observability.run_id"
	requestIDKey contextKey = "observability.request_id"
	routeKey     contextKey = "observability.route"
)

// Span is the application-level tracing span contract.
type Span interface {
	End()
	RecordError(error)
	SetAttributes(...attribute.KeyValue)
}

type otelSpan struct {
	inner trace.Span
}

// StartDBSpan starts a database tracing span for one query operation.
func StartDBSpan(ctx context.Context, system, queryName, operation string) (context.Context, Span) {
	queryName = strings.TrimSpace(queryName)
	if queryName == "" {
		queryName = "unknown"
	}
	attrs := []attribute.KeyValue{
		attribute.String("db.system.name", strings.TrimSpace(system)),
		attribute.String("db.query_name", queryName),
		attribute.String("db.operation", strings.TrimSpace(operation)),
	}
	if runID, ok := RunIDFromContext(ctx); ok {
		attrs = append(attrs, attribute.String("tflwatch.run_id", runID))
	}

	ctx, span := otel.Tracer(dbTracerName).Start(ctx, "db."+queryName,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attrs...),
	)

	return ctx, otelSpan{inner: span}
}

// StartStageSpan starts an internal span for one pipeline stage.
func StartStageSpan(ctx context.Context, stage string) (context.Context, Span) {
	attrs := []attribute.KeyValue{attribute.String("tflwatch.stage", stage)}
	if runID, ok := RunIDFromContext(ctx); ok {
		attrs = append(attrs, attribute.String("tflwatch.run_id", runID))
	}
	ctx, span := otel.Tracer(pipelineTracerName).Start(ctx, "pipeline."+stage,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...),
	)
	return ctx, otelSpan{inner: span}
}

// WithRunID tags context with the pipeline invocation id.
func WithRunID(ctx context.Context, runID string) context.Context {
	runID = strings.TrimSpace(runID)
	if runID == "" {
		return ctx
	}
	ctx = context.WithValue(ctx, runIDKey, runID)
	if span := trace.SpanFromContext(ctx); span != nil {
		span.SetAttributes(attribute.String("tflwatch.run_id", runID))
	}
	return ctx
}

// WithRequestMetadata enriches context and current span with request metadata.
func WithRequestMetadata(ctx context.Context, requestID, route string) context.Context {
	requestID = strings.TrimSpace(requestID)
	route = strings.TrimSpace(route)
	if requestID != "" {
		ctx = context.WithValue(ctx, requestIDKey, requestID)
	}
	if route != "" {
		ctx = context.WithValue(ctx, routeKey, route)
	}
	setSpanRequestAttributes(ctx, requestID, route)
	return ctx
}

// RunIDFromContext extracts the pipeline invocation id.
func RunIDFromContext(ctx context.Context) (string, bool) {
	value, ok := ctx.Value(runIDKey).(string)
	return value, ok && value != ""
}

// RequestIDFromContext extracts request id.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	value, ok := ctx.Value(requestIDKey).(string)
	value = strings.TrimSpace(value)
	return value, ok && value != ""
}

// RouteFromContext extracts normalized route path.
func RouteFromContext(ctx context.Context) (string, bool) {
	value, ok := ctx.Value(routeKey).(string)
	value = strings.TrimSpace(value)
	return value, ok && value != ""
}

func setSpanRequestAttributes(ctx context.Context, requestID, route string) {
	span := trace.SpanFromContext(ctx)
	if span == nil {
		return
	}
	attrs := make([]attribute.KeyValue, 0, 2)
	if requestID != "" {
		attrs = append(attrs, attribute.String("request.id", requestID))
	}
	if route != "" {
		attrs = append(attrs, attribute.String("http.route", route))
	}
	if len(attrs) > 0 {
		span.SetAttributes(attrs...)
	}
}

func (s otelSpan) End() {
	if s.inner == nil {
		return
	}
	s.inner.End()
}

func (s otelSpan) RecordError(err error) {
	if s.inner == nil || err == nil {
		return
	}
	s.inner.RecordError(err)
	s.inner.SetStatus(codes.Error, err.Error())
}

func (s otelSpan) SetAttributes(attrs ...attribute.KeyValue) {
	if s.inner == nil || len(attrs) == 0 {
		return
	}
	s.inner.SetAttributes(attrs...)
}
