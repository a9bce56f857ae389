package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const fridgeMeterName = "github.com/ghuser/fridgekeeper/fridge"

// FridgeMetrics records fridge inventory activity as OTel instruments.
type FridgeMetrics struct {
	added     metric.Int64Counter
	removed   metric.Int64Counter
	rejected  metric.Int64Counter
	forgotten metric.Int64Counter
	live      metric.Int64UpDownCounter
}

// NewFridgeMetrics creates the fridge instruments on mp.
func NewFridgeMetrics(mp metric.MeterProvider) (*FridgeMetrics, error) {
	meter := mp.Meter(fridgeMeterName)

	var (
		m   FridgeMetrics
		err error
	)
	if m.added, err = meter.Int64Counter("fridge.items.added",
		metric.WithDescription("Items accepted into the fridge, including replacements."),
		metric.WithUnit("{item}")); err != nil {
		return nil, fmt.Errorf("fridge metrics: %w", err)
	}
	if m.removed, err = meter.Int64Counter("fridge.items.removed",
		metric.WithDescription("Tracked items removed from the fridge."),
		metric.WithUnit("{item}")); err != nil {
		return nil, fmt.Errorf("fridge metrics: %w", err)
	}
	if m.rejected, err = meter.Int64Counter("fridge.items.rejected",
		metric.WithDescription("Item notifications rejected for an invalid fill factor."),
		metric.WithUnit("{item}")); err != nil {
		return nil, fmt.Errorf("fridge metrics: %w", err)
	}
	if m.forgotten, err = meter.Int64Counter("fridge.item_types.forgotten",
		metric.WithDescription("Item types excluded from restock reporting."),
		metric.WithUnit("{type}")); err != nil {
		return nil, fmt.Errorf("fridge metrics: %w", err)
	}
	if m.live, err = meter.Int64UpDownCounter("fridge.items.live",
		metric.WithDescription("Items currently tracked."),
		metric.WithUnit("{item}")); err != nil {
		return nil, fmt.Errorf("fridge metrics: %w", err)
	}
	return &m, nil
}

func (m *FridgeMetrics) ItemAdded(ctx context.Context, itemType int64, replaced bool) {
	m.added.Add(ctx, 1, metric.WithAttributes(
		attribute.Int64("item_type", itemType),
		attribute.Bool("replaced", replaced),
	))
	if !replaced {
		m.live.Add(ctx, 1)
	}
}

func (m *FridgeMetrics) ItemRemoved(ctx context.Context, itemType int64) {
	m.removed.Add(ctx, 1, metric.WithAttributes(attribute.Int64("item_type", itemType)))
	m.live.Add(ctx, -1)
}

func (m *FridgeMetrics) ItemRejected(ctx context.Context) {
	m.rejected.Add(ctx, 1)
}

func (m *FridgeMetrics) ItemTypeForgotten(ctx context.Context, itemType int64) {
	m.forgotten.Add(ctx, 1, metric.WithAttributes(attribute.Int64("item_type", itemType)))
}
