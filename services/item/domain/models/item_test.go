package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewItem(t *testing.T) {
	name := ItemName("Milk")

	t.Run("returns item with non-zero ID", func(t *testing.T) {
		item := NewItem(name, "", Optional[int]{})
		if item.ID == (uuid.UUID{}) {
			t.Fatal("expected non-zero UUID for ID")
		}
	})

	t.Run("applies defaults when category and quantity are omitted", func(t *testing.T) {
		item := NewItem(name, "", Optional[int]{})
		if item.Category != DefaultCategory {
			t.Fatalf("expected category %q, got %q", DefaultCategory, item.Category)
		}
		if item.Quantity != DefaultQuantity {
			t.Fatalf("expected quantity %d, got %d", DefaultQuantity, item.Quantity)
		}
		if item.Completed {
			t.Fatal("expected new item to be incomplete")
		}
	})

	t.Run("keeps supplied category and quantity", func(t *testing.T) {
		item := NewItem(name, "Groceries", Some(2))
		if item.Category != "Groceries" {
			t.Fatalf("expected category Groceries, got %q", item.Category)
		}
		if item.Quantity != 2 {
			t.Fatalf("expected quantity 2, got %d", item.Quantity)
		}
	})

	t.Run("zero quantity falls back to default", func(t *testing.T) {
		item := NewItem(name, "", Some(0))
		if item.Quantity != DefaultQuantity {
			t.Fatalf("expected quantity %d, got %d", DefaultQuantity, item.Quantity)
		}
	})

	t.Run("negative quantity is stored as given", func(t *testing.T) {
		item := NewItem(name, "", Some(-3))
		if item.Quantity != -3 {
			t.Fatalf("expected quantity -3, got %d", item.Quantity)
		}
	})

	t.Run("sets CreatedAt to approximately now UTC", func(t *testing.T) {
		before := time.Now().UTC()
		item := NewItem(name, "", Optional[int]{})
		after := time.Now().UTC()
		if item.CreatedAt.Before(before) || item.CreatedAt.After(after) {
			t.Fatalf("CreatedAt %v not between %v and %v", item.CreatedAt, before, after)
		}
		if item.CreatedAt.Location() != time.UTC {
			t.Fatalf("expected UTC location, got %v", item.CreatedAt.Location())
		}
	})

	t.Run("generates unique IDs on each call", func(t *testing.T) {
		item1 := NewItem(name, "", Optional[int]{})
		item2 := NewItem(name, "", Optional[int]{})
		if item1.ID == item2.ID {
			t.Fatal("expected unique IDs, got identical")
		}
	})
}

func TestItemPatch_Apply(t *testing.T) {
	base := func() *Item {
		return &Item{
			ID:        uuid.New(),
			Name:      "Milk",
			Category:  "Groceries",
			Quantity:  2,
			Completed: false,
			CreatedAt: time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC),
		}
	}

	t.Run("empty patch changes nothing", func(t *testing.T) {
		item := base()
		want := *item
		ItemPatch{}.Apply(item)
		if *item != want {
			t.Fatalf("expected %+v, got %+v", want, *item)
		}
	})

	t.Run("completed only", func(t *testing.T) {
		item := base()
		want := *item
		want.Completed = true
		ItemPatch{Completed: Some(true)}.Apply(item)
		if *item != want {
			t.Fatalf("expected %+v, got %+v", want, *item)
		}
	})

	t.Run("name is trimmed", func(t *testing.T) {
		item := base()
		ItemPatch{Name: Some("  Oat Milk  ")}.Apply(item)
		if item.Name != "Oat Milk" {
			t.Fatalf("expected trimmed name, got %q", item.Name)
		}
	})

	t.Run("blank name is stored as empty", func(t *testing.T) {
		item := base()
		ItemPatch{Name: Some("   ")}.Apply(item)
		if item.Name != "" {
			t.Fatalf("expected empty name, got %q", item.Name)
		}
	})

	t.Run("zero values are written when present", func(t *testing.T) {
		item := base()
		item.Completed = true
		ItemPatch{Category: Some(""), Quantity: Some(0), Completed: Some(false)}.Apply(item)
		if item.Category != "" || item.Quantity != 0 || item.Completed {
			t.Fatalf("expected zero values applied, got %+v", *item)
		}
	})
}

func TestItemPatch_IsEmpty(t *testing.T) {
	if !(ItemPatch{}).IsEmpty() {
		t.Fatal("zero patch must be empty")
	}
	if (ItemPatch{Quantity: Some(0)}).IsEmpty() {
		t.Fatal("patch with a zero-valued present field must not be empty")
	}
}

func TestItemPatch_Fields(t *testing.T) {
	if got := (ItemPatch{}).Fields(); len(got) != 0 {
		t.Fatalf("empty patch fields = %v", got)
	}
	got := ItemPatch{Completed: Some(true), Name: Some("Milk")}.Fields()
	want := []string{"name", "completed"}
	if len(got) != len(want) {
		t.Fatalf("fields = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("fields[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
