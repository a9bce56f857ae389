// Package services contains stateless domain services for the fridge bounded context.
// They aggregate fill factors over a snapshot of items and keep no state of
// their own; the inventory manager owns the live collection.
package services

import (
	"sort"

	"github.com/ghuser/fridgekeeper/services/fridge/domain/models"
)

// FillStats accumulates the fill factors of one item type.
//
// Business rule: items with a fill factor of exactly 0.0 are physically present
// but empty. They are counted in Items but excluded from the average so that
// empty containers do not drag the mean toward zero.
type FillStats struct {
	sum    float64
	filled int
	items  int
}

// Add records one item's fill factor.
func (s *FillStats) Add(fill float64) {
	s.items++
	if fill > 0 {
		s.sum += fill
		s.filled++
	}
}

// Average returns the mean of the non-zero fills, or 0.0 when there are none.
func (s FillStats) Average() float64 {
	if s.filled == 0 {
		return 0
	}
	return s.sum / float64(s.filled)
}

// Items returns the number of items recorded, empty ones included.
func (s FillStats) Items() int {
	return s.items
}

// AverageFillFactor returns the average fill of items of itemType, using the
// FillStats rule. Unknown types yield 0.0.
func AverageFillFactor(items []*models.Item, itemType int64) float64 {
	var stats FillStats
	for _, item := range items {
		if item.ItemType() == itemType {
			stats.Add(item.FillFactor())
		}
	}
	return stats.Average()
}

// FillByType groups items by type in a single pass.
func FillByType(items []*models.Item) map[int64]*FillStats {
	out := make(map[int64]*FillStats)
	for _, item := range items {
		stats, ok := out[item.ItemType()]
		if !ok {
			stats = &FillStats{}
			out[item.ItemType()] = stats
		}
		stats.Add(item.FillFactor())
	}
	return out
}

// AtOrBelow returns the (type, average) pair of every listed type whose average
// fill is <= threshold, sorted by item type. Types missing from stats average
// 0.0. The result is never nil.
func AtOrBelow(stats map[int64]*FillStats, itemTypes []int64, threshold float64) []models.TypeFill {
	out := make([]models.TypeFill, 0, len(itemTypes))
	for _, itemType := range itemTypes {
		var avg float64
		if s, ok := stats[itemType]; ok {
			avg = s.Average()
		}
		if avg > threshold {
			continue
		}
		out = append(out, models.TypeFill{ItemType: itemType, FillFactor: avg})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ItemType < out[j].ItemType })
	return out
}
