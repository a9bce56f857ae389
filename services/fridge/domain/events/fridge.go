package events

import (
	"time"

	"github.com/google/uuid"
)

// Topic carries every fridge notification from detectors and admin tooling.
// Adds, removes and forgets share it so consumers apply them in publish order.
const Topic = "fridge.events"

// SchemaVersion is the current payload version; increment on breaking changes.
const SchemaVersion = 1

// Kind selects the fridge operation a FridgeEvent asks for.
type Kind string

const (
	// KindItemAdded reports an item entering the fridge. A repeated ItemUUID
	// replaces the previously tracked item.
	KindItemAdded Kind = "item_added"
	// KindItemRemoved reports an item leaving the fridge.
	KindItemRemoved Kind = "item_removed"
	// KindItemTypeForgotten stops restock reporting for ItemType. There is no
	// inverse kind.
	KindItemTypeForgotten Kind = "item_type_forgotten"
)

// FridgeEvent is the payload of every message on Topic. Fields a Kind does not
// use are left zero. FillFactor is a pointer so a missing value is told apart
// from an empty item.
type FridgeEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`
	Kind       Kind      `json:"kind"`
	ItemType   int64     `json:"item_type,omitempty"`
	ItemUUID   string    `json:"item_uuid,omitempty"`
	Name       string    `json:"name,omitempty"`
	FillFactor *float64  `json:"fill_factor,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ItemAdded builds a KindItemAdded event with a fresh EventID.
func ItemAdded(itemType int64, itemUUID, name string, fillFactor float64, at time.Time) FridgeEvent {
	ev := newEvent(KindItemAdded, at)
	ev.ItemType = itemType
	ev.ItemUUID = itemUUID
	ev.Name = name
	ev.FillFactor = &fillFactor
	return ev
}

// ItemRemoved builds a KindItemRemoved event with a fresh EventID.
func ItemRemoved(itemUUID string, at time.Time) FridgeEvent {
	ev := newEvent(KindItemRemoved, at)
	ev.ItemUUID = itemUUID
	return ev
}

// ItemTypeForgotten builds a KindItemTypeForgotten event with a fresh EventID.
func ItemTypeForgotten(itemType int64, at time.Time) FridgeEvent {
	ev := newEvent(KindItemTypeForgotten, at)
	ev.ItemType = itemType
	return ev
}

func newEvent(kind Kind, at time.Time) FridgeEvent {
	return FridgeEvent{
		EventID:    uuid.New(),
		Version:    SchemaVersion,
		Kind:       kind,
		OccurredAt: at,
	}
}
