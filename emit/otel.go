package emit

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const attrPrefix = "visualizer."

// OTelEmitter turns each event into an OpenTelemetry span named after
// the event message. Spans are ended immediately: an event is a point in
// time, not a duration.
//
//	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
//	otel.SetTracerProvider(tp)
//	em := emit.NewOTelEmitter(otel.Tracer("graph-visualizer"))
type OTelEmitter struct {
	tracer trace.Tracer
}

// NewOTelEmitter returns an emitter that records spans on tracer.
func NewOTelEmitter(tracer trace.Tracer) *OTelEmitter {
	return &OTelEmitter{tracer: tracer}
}

// Emit records one span. A string "error" entry in Meta sets the span
// status to Error.
func (o *OTelEmitter) Emit(event Event) {
	_, span := o.tracer.Start(context.Background(), event.Msg)
	defer span.End()

	span.SetAttributes(
		attribute.String(attrPrefix+"run_id", event.RunID),
		attribute.String(attrPrefix+"algo", event.Algo),
		attribute.Int(attrPrefix+"step", event.Step),
		attribute.String(attrPrefix+"node_id", event.NodeID),
	)
	for _, k := range sortedKeys(event.Meta) {
		span.SetAttributes(toAttribute(attrPrefix+k, event.Meta[k]))
	}
	if msg, ok := event.Meta["error"].(string); ok {
		span.SetStatus(codes.Error, msg)
		span.RecordError(fmt.Errorf("%s", msg))
	}
}

// Flush forces export of pending spans when the global provider
// supports it.
func (o *OTelEmitter) Flush(ctx context.Context) error {
	type flusher interface {
		ForceFlush(context.Context) error
	}
	if f, ok := otel.GetTracerProvider().(flusher); ok {
		return f.ForceFlush(ctx)
	}

	return nil
}

func toAttribute(key string, v any) attribute.KeyValue {
	switch x := v.(type) {
	case string:
		return attribute.String(key, x)
	case int:
		return attribute.Int(key, x)
	case int64:
		return attribute.Int64(key, x)
	case float64:
		return attribute.Float64(key, x)
	case bool:
		return attribute.Bool(key, x)
	case []string:
		return attribute.StringSlice(key, x)
	default:
		return attribute.String(key, fmt.Sprintf("%v", x))
	}
}
