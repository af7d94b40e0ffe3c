package telemetry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func newTestMetrics(t *testing.T) (*Metrics, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	m, err := NewMetricsWithMeter(provider.Meter("test"))
	require.NoError(t, err)
	return m, reader
}

func sumOf(t *testing.T, reader *sdkmetric.ManualReader, name string) int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok, "metric %s is not an int64 sum", name)
			for _, dp := range sum.DataPoints {
				total += dp.Value
			}
		}
	}
	return total
}

func TestMetrics_Runs(t *testing.T) {
	m, reader := newTestMetrics(t)
	ctx := context.Background()

	m.RunStarted(ctx, "click")
	m.RunFinished(ctx, "click", time.Millisecond, nil)
	m.RunStarted(ctx, "click")
	m.RunFinished(ctx, "click", time.Millisecond, errors.New("boom"))
	m.RunStarted(ctx, "render")

	assert.Equal(t, int64(2), sumOf(t, reader, "invoke.run.total"))
	assert.Equal(t, int64(1), sumOf(t, reader, "invoke.run.active"))
}

func TestMetrics_ColdStartAndGuard(t *testing.T) {
	m, reader := newTestMetrics(t)
	ctx := context.Background()

	m.ColdStart(ctx, "click")
	m.GuardRejected(ctx, "not_render")
	m.GuardRejected(ctx, "RenderCtx")

	assert.Equal(t, int64(1), sumOf(t, reader, "invoke.coldstart.total"))
	assert.Equal(t, int64(2), sumOf(t, reader, "invoke.guard.rejections"))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	ctx := context.Background()

	m.RunStarted(ctx, "click")
	m.RunFinished(ctx, "click", time.Millisecond, nil)
	m.ColdStart(ctx, "click")
	m.GuardRejected(ctx, "Doc")
}

func TestNewMetrics_GlobalProvider(t *testing.T) {
	m, err := NewMetrics()
	require.NoError(t, err)
	assert.NotNil(t, m)
}

func TestMetrics_EventLabelIsBounded(t *testing.T) {
	m, reader := newTestMetrics(t)
	ctx := context.Background()

	m.ColdStart(ctx, "click")
	m.ColdStart(ctx, "user-42-clicked-row-9001")
	m.ColdStart(ctx, "*main.customEvent")

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	labels := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, metric := range sm.Metrics {
			if metric.Name != "invoke.coldstart.total" {
				continue
			}
			for _, dp := range metric.Data.(metricdata.Sum[int64]).DataPoints {
				v, ok := dp.Attributes.Value("invoke.event")
				require.True(t, ok)
				labels[v.AsString()] += dp.Value
			}
		}
	}

	assert.Equal(t, map[string]int64{"click": 1, OtherEvent: 2}, labels)
}

func TestEventLabel(t *testing.T) {
	assert.Equal(t, "render", EventLabel("render"))
	assert.Equal(t, "none", EventLabel("none"))
	assert.Equal(t, OtherEvent, EventLabel("Click"))
	assert.Equal(t, OtherEvent, EventLabel(""))
}
