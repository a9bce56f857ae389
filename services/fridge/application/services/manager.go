package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/ghuser/fridgekeeper/pkg/logger"
	"github.com/ghuser/fridgekeeper/services/fridge/domain/models"
	domainsvcs "github.com/ghuser/fridgekeeper/services/fridge/domain/services"
)

// Recorder receives fridge activity for metrics. Implemented by
// telemetry.FridgeMetrics; a nil Recorder disables recording.
type Recorder interface {
	ItemAdded(ctx context.Context, itemType int64, replaced bool)
	ItemRemoved(ctx context.Context, itemType int64)
	ItemRejected(ctx context.Context)
	ItemTypeForgotten(ctx context.Context, itemType int64)
}

// Manager is the in-memory inventory of one fridge.
//
// It owns two independent pieces of state behind a single lock:
//   - contents: every tracked item keyed by item UUID (the single source of truth)
//   - ignored:  item types excluded from restock reporting (Items); never shrinks
//
// All operations are bounded in-memory work; nothing blocks while the lock is held.
type Manager struct {
	mu       sync.RWMutex
	contents map[string]*models.Item
	ignored  map[int64]struct{}

	log     logger.Logger
	metrics Recorder
}

// NewManager returns an empty Manager. metrics may be nil.
func NewManager(log logger.Logger, metrics Recorder) *Manager {
	return &Manager{
		contents: make(map[string]*models.Item),
		ignored:  make(map[int64]struct{}),
		log:      log,
		metrics:  metrics,
	}
}

// HandleItemAdded tracks a new item, replacing any item with the same UUID.
// Returns an error wrapping domain.ErrInvalidFillFactor when fillFactor is
// outside [0.0, 1.0]; nothing is stored in that case.
func (m *Manager) HandleItemAdded(ctx context.Context, itemType int64, itemUUID, name string, fillFactor float64) error {
	item, err := models.NewItem(itemType, itemUUID, name, fillFactor)
	if err != nil {
		if m.metrics != nil {
			m.metrics.ItemRejected(ctx)
		}
		m.log.WarnContext(ctx, "fridge: item rejected",
			"item_uuid", itemUUID,
			"item_type", itemType,
			"error", err,
		)
		return fmt.Errorf("handle item added: %w", err)
	}

	m.mu.Lock()
	_, replaced := m.contents[itemUUID]
	m.contents[itemUUID] = item
	m.mu.Unlock()

	if m.metrics != nil {
		m.metrics.ItemAdded(ctx, itemType, replaced)
	}
	m.log.DebugContext(ctx, "fridge: item added",
		"item_uuid", itemUUID,
		"item_type", itemType,
		"fill_factor", fillFactor,
		"replaced", replaced,
	)
	return nil
}

// HandleItemRemoved stops tracking the item. Unknown UUIDs are ignored.
func (m *Manager) HandleItemRemoved(ctx context.Context, itemUUID string) {
	m.mu.Lock()
	item, ok := m.contents[itemUUID]
	if ok {
		delete(m.contents, itemUUID)
	}
	m.mu.Unlock()

	if !ok {
		m.log.DebugContext(ctx, "fridge: remove of unknown item ignored", "item_uuid", itemUUID)
		return
	}
	if m.metrics != nil {
		m.metrics.ItemRemoved(ctx, item.ItemType())
	}
	m.log.DebugContext(ctx, "fridge: item removed", "item_uuid", itemUUID, "item_type", item.ItemType())
}

// ForgetItem excludes itemType from every future Items result. Items of that
// type stay tracked and FillFactor keeps reporting them.
func (m *Manager) ForgetItem(ctx context.Context, itemType int64) {
	m.mu.Lock()
	_, already := m.ignored[itemType]
	m.ignored[itemType] = struct{}{}
	m.mu.Unlock()

	if already {
		return
	}
	if m.metrics != nil {
		m.metrics.ItemTypeForgotten(ctx, itemType)
	}
	m.log.InfoContext(ctx, "fridge: item type forgotten", "item_type", itemType)
}

// FillFactor returns the average fill of the tracked items of itemType,
// skipping empty (0.0) items. Returns 0.0 when no item qualifies.
func (m *Manager) FillFactor(itemType int64) float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return domainsvcs.AverageFillFactor(m.snapshot(), itemType)
}

// Items returns every approved item type whose average fill is at or below
// threshold, sorted by item type. The result is never nil.
func (m *Manager) Items(threshold float64) []models.TypeFill {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stats := domainsvcs.FillByType(m.snapshot())
	return domainsvcs.AtOrBelow(stats, m.approvedItemTypes(), threshold)
}

// Len returns the number of tracked items.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.contents)
}

// IgnoredTypes returns the forgotten item types in ascending order.
func (m *Manager) IgnoredTypes() []int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]int64, 0, len(m.ignored))
	for t := range m.ignored {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// String renders every tracked item, ordered by UUID, inside "Manager{...}".
func (m *Manager) String() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.contents) == 0 {
		return "Manager{}"
	}

	keys := make([]string, 0, len(m.contents))
	for k := range m.contents {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("Manager{\n")
	for _, k := range keys {
		b.WriteString(m.contents[k].String())
		b.WriteString("\n")
	}
	b.WriteString("}")
	return b.String()
}

// approvedItemTypes returns the distinct types present in contents that are
// not ignored. Callers must hold m.mu.
func (m *Manager) approvedItemTypes() []int64 {
	seen := make(map[int64]struct{})
	out := make([]int64, 0)
	for _, item := range m.contents {
		t := item.ItemType()
		if _, ignored := m.ignored[t]; ignored {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// snapshot returns the tracked items. Callers must hold m.mu.
func (m *Manager) snapshot() []*models.Item {
	items := make([]*models.Item, 0, len(m.contents))
	for _, item := range m.contents {
		items = append(items, item)
	}
	return items
}
