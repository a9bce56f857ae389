package telemetry

import (
	"context"
	"testing"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("collect: %v", err)
	}
	totals := make(map[string]int64)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				t.Fatalf("%s: unexpected aggregation %T", m.Name, m.Data)
			}
			for _, dp := range sum.DataPoints {
				totals[m.Name] += dp.Value
			}
		}
	}
	return totals
}

func TestFridgeMetrics_Records(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer mp.Shutdown(context.Background()) //nolint:errcheck

	m, err := NewFridgeMetrics(mp)
	if err != nil {
		t.Fatalf("NewFridgeMetrics: %v", err)
	}

	ctx := context.Background()
	m.ItemAdded(ctx, 1, false)
	m.ItemAdded(ctx, 2, false)
	m.ItemAdded(ctx, 2, true)
	m.ItemRemoved(ctx, 1)
	m.ItemRejected(ctx)
	m.ItemTypeForgotten(ctx, 2)

	got := collect(t, reader)
	want := map[string]int64{
		"fridge.items.added":          3,
		"fridge.items.removed":        1,
		"fridge.items.rejected":       1,
		"fridge.item_types.forgotten": 1,
		"fridge.items.live":           1,
	}
	for name, v := range want {
		if got[name] != v {
			t.Errorf("%s = %d, want %d", name, got[name], v)
		}
	}
}
