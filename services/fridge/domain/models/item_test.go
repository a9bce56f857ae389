package models

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/ghuser/fridgekeeper/services/fridge/domain"
)

func TestNewItem(t *testing.T) {
	itemUUID := uuid.NewString()

	t.Run("sets every field", func(t *testing.T) {
		item, err := NewItem(1, itemUUID, "testItem", 1.0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.ItemType() != 1 {
			t.Fatalf("expected ItemType 1, got %d", item.ItemType())
		}
		if item.ItemUUID() != itemUUID {
			t.Fatalf("expected ItemUUID %q, got %q", itemUUID, item.ItemUUID())
		}
		if item.Name() != "testItem" {
			t.Fatalf("expected Name %q, got %q", "testItem", item.Name())
		}
		if item.FillFactor() != 1.0 {
			t.Fatalf("expected FillFactor 1.0, got %v", item.FillFactor())
		}
	})

	t.Run("accepts every valid fill factor exactly", func(t *testing.T) {
		for _, f := range []float64{0, 0.001, 0.25, 0.5, 0.75, 0.999, 1} {
			item, err := NewItem(1, itemUUID, "testItem", f)
			if err != nil {
				t.Fatalf("NewItem with fill %v: unexpected error: %v", f, err)
			}
			if item.FillFactor() != f {
				t.Fatalf("expected fill %v, got %v", f, item.FillFactor())
			}
		}
	})

	t.Run("negative fill factor returns error", func(t *testing.T) {
		item, err := NewItem(1, itemUUID, "testItem", -1.0)
		if !errors.Is(err, domain.ErrInvalidFillFactor) {
			t.Fatalf("expected ErrInvalidFillFactor, got %v", err)
		}
		if item != nil {
			t.Fatal("expected nil item on validation failure")
		}
	})

	t.Run("fill factor over one returns error", func(t *testing.T) {
		_, err := NewItem(1, itemUUID, "testItem", 1.1)
		if !errors.Is(err, domain.ErrInvalidFillFactor) {
			t.Fatalf("expected ErrInvalidFillFactor, got %v", err)
		}
	})
}

func TestItem_SetFillFactor(t *testing.T) {
	newItem := func(t *testing.T) *Item {
		t.Helper()
		item, err := NewItem(1, uuid.NewString(), "testItem", 1.0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return item
	}

	t.Run("valid value replaces fill", func(t *testing.T) {
		item := newItem(t)
		if err := item.SetFillFactor(0.3); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.FillFactor() != 0.3 {
			t.Fatalf("expected 0.3, got %v", item.FillFactor())
		}
	})

	t.Run("negative value keeps previous fill", func(t *testing.T) {
		item := newItem(t)
		if err := item.SetFillFactor(-1.0); !errors.Is(err, domain.ErrInvalidFillFactor) {
			t.Fatalf("expected ErrInvalidFillFactor, got %v", err)
		}
		if item.FillFactor() != 1.0 {
			t.Fatalf("expected fill to stay 1.0, got %v", item.FillFactor())
		}
	})

	t.Run("value over one keeps previous fill", func(t *testing.T) {
		item := newItem(t)
		if err := item.SetFillFactor(1.1); !errors.Is(err, domain.ErrInvalidFillFactor) {
			t.Fatalf("expected ErrInvalidFillFactor, got %v", err)
		}
		if item.FillFactor() != 1.0 {
			t.Fatalf("expected fill to stay 1.0, got %v", item.FillFactor())
		}
	})
}

func TestItem_String(t *testing.T) {
	itemUUID := uuid.NewString()
	item, err := NewItem(1, itemUUID, "testItem", 1.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "Item{\n" +
		" itemType=1,\n" +
		" itemUUID='" + itemUUID + "',\n" +
		" name='testItem',\n" +
		" fillFactor=1.0\n" +
		"}"
	if got := item.String(); got != want {
		t.Fatalf("String() mismatch\n got: %q\nwant: %q", got, want)
	}
}
