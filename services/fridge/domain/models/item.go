package models

import "fmt"

// Item is one physical item instance tracked by the fridge.
// Identity (type, UUID, name) is fixed at construction; only the fill factor
// can change, and only through SetFillFactor.
type Item struct {
	itemType   int64
	itemUUID   string
	name       string
	fillFactor FillFactor
}

// NewItem constructs an Item. It fails with domain.ErrInvalidFillFactor when
// fillFactor is outside [0.0, 1.0]; no Item is returned in that case.
func NewItem(itemType int64, itemUUID, name string, fillFactor float64) (*Item, error) {
	ff, err := NewFillFactor(fillFactor)
	if err != nil {
		return nil, err
	}
	return &Item{
		itemType:   itemType,
		itemUUID:   itemUUID,
		name:       name,
		fillFactor: ff,
	}, nil
}

// ItemType returns the coarse category shared by interchangeable items.
func (i *Item) ItemType() int64 { return i.itemType }

// ItemUUID returns the identifier unique to this physical item.
func (i *Item) ItemUUID() string { return i.itemUUID }

// Name returns the human-readable label.
func (i *Item) Name() string { return i.name }

// FillFactor returns the current fill factor.
func (i *Item) FillFactor() float64 { return i.fillFactor.Float64() }

// SetFillFactor replaces the fill factor. On error the previous value is kept.
func (i *Item) SetFillFactor(v float64) error {
	ff, err := NewFillFactor(v)
	if err != nil {
		return err
	}
	i.fillFactor = ff
	return nil
}

// String returns a multi-line diagnostic rendering with a fixed field order.
func (i *Item) String() string {
	return fmt.Sprintf("Item{\n itemType=%d,\n itemUUID='%s',\n name='%s',\n fillFactor=%s\n}",
		i.itemType, i.itemUUID, i.name, i.fillFactor)
}

// TypeFill pairs an item type with the average fill factor of its items.
type TypeFill struct {
	ItemType   int64
	FillFactor float64
}
