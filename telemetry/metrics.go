// Package telemetry records OpenTelemetry metrics for invocation realms.
//
// Instruments are created from the global MeterProvider by default, which is a
// no-op until the application installs one, so enabling metrics in a library
// context costs nothing unless someone is collecting them.
package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	instrumentationName = "github.com/hupe1980/invokectx/telemetry"

	// OtherEvent labels every event name outside the known set.
	OtherEvent = "other"
)

// knownEvents bounds the values of the invoke.event attribute. Event names
// come from application code, so anything else is folded into OtherEvent.
var knownEvents = map[string]struct{}{
	"none": {}, "render": {},
	"click": {}, "dblclick": {}, "input": {}, "change": {}, "submit": {},
	"keydown": {}, "keyup": {}, "focus": {}, "blur": {},
	"pointerdown": {}, "pointerup": {}, "load": {}, "visible": {},
	"idle": {}, "resume": {}, "popstate": {}, "navigate": {},
}

// EventLabel returns the invoke.event attribute value recorded for event.
func EventLabel(event string) string {
	if _, ok := knownEvents[event]; ok {
		return event
	}
	return OtherEvent
}

func eventAttr(event string) attribute.KeyValue {
	return attribute.String("invoke.event", EventLabel(event))
}

// Metrics holds realm metrics. A nil *Metrics is valid and records nothing.
type Metrics struct {
	runDuration     metric.Float64Histogram
	runTotal        metric.Int64Counter
	activeRuns      metric.Int64UpDownCounter
	coldStarts      metric.Int64Counter
	guardRejections metric.Int64Counter
}

// NewMetrics creates realm metrics from the global MeterProvider.
func NewMetrics() (*Metrics, error) {
	return NewMetricsWithMeter(otel.Meter(instrumentationName))
}

// NewMetricsWithMeter creates realm metrics from meter.
func NewMetricsWithMeter(meter metric.Meter) (*Metrics, error) {
	runDuration, err := meter.Float64Histogram(
		"invoke.run.duration",
		metric.WithDescription("Duration of scoped invocation runs in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	runTotal, err := meter.Int64Counter(
		"invoke.run.total",
		metric.WithDescription("Total number of scoped invocation runs"),
	)
	if err != nil {
		return nil, err
	}

	activeRuns, err := meter.Int64UpDownCounter(
		"invoke.run.active",
		metric.WithDescription("Number of scoped invocation runs currently on the stack"),
	)
	if err != nil {
		return nil, err
	}

	coldStarts, err := meter.Int64Counter(
		"invoke.coldstart.total",
		metric.WithDescription("Number of cold-start tuples materialized into invocations"),
	)
	if err != nil {
		return nil, err
	}

	guardRejections, err := meter.Int64Counter(
		"invoke.guard.rejections",
		metric.WithDescription("Number of render-phase guard rejections"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		runDuration:     runDuration,
		runTotal:        runTotal,
		activeRuns:      activeRuns,
		coldStarts:      coldStarts,
		guardRejections: guardRejections,
	}, nil
}

// RunStarted marks a run as entered.
func (m *Metrics) RunStarted(ctx context.Context, event string) {
	if m == nil {
		return
	}
	m.activeRuns.Add(ctx, 1, metric.WithAttributes(eventAttr(event)))
}

// RunFinished records the outcome of a run entered with RunStarted.
func (m *Metrics) RunFinished(ctx context.Context, event string, dur time.Duration, err error) {
	if m == nil {
		return
	}

	m.activeRuns.Add(ctx, -1, metric.WithAttributes(eventAttr(event)))

	attrs := metric.WithAttributes(
		eventAttr(event),
		attribute.Bool("invoke.success", err == nil),
	)
	m.runDuration.Record(ctx, dur.Seconds(), attrs)
	m.runTotal.Add(ctx, 1, attrs)
}

// ColdStart records a cold-start materialization.
func (m *Metrics) ColdStart(ctx context.Context, event string) {
	if m == nil {
		return
	}
	m.coldStarts.Add(ctx, 1, metric.WithAttributes(eventAttr(event)))
}

// GuardRejected records a render-phase guard rejection. reason is the missing
// field name or "not_render".
func (m *Metrics) GuardRejected(ctx context.Context, reason string) {
	if m == nil {
		return
	}
	m.guardRejections.Add(ctx, 1, metric.WithAttributes(attribute.String("invoke.reason", reason)))
}
