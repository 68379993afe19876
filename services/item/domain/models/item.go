package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultCategory is assigned when an item is created without a category.
	DefaultCategory = "Other"

	// DefaultQuantity is assigned when an item is created without a quantity.
	DefaultQuantity = 1
)

// Item is a single shopping-list entry and the aggregate root of this bounded context.
// ID and CreatedAt are fixed at creation; every other field may change through an ItemPatch.
type Item struct {
	ID        uuid.UUID
	Name      ItemName
	Category  string
	Quantity  int
	Completed bool
	CreatedAt time.Time
}

// NewItem builds an Item with a fresh ID and the current UTC time, applying defaults
// for an empty category and an absent or zero quantity.
func NewItem(name ItemName, category string, quantity Optional[int]) *Item {
	if category == "" {
		category = DefaultCategory
	}
	qty := DefaultQuantity
	if quantity.Set && quantity.Value != 0 {
		qty = quantity.Value
	}
	return &Item{
		ID:        uuid.New(),
		Name:      name,
		Category:  category,
		Quantity:  qty,
		Completed: false,
		CreatedAt: time.Now().UTC(),
	}
}

// ItemPatch is a partial update. Only fields whose Optional is Set are written,
// and only those are encoded when the patch is marshalled.
type ItemPatch struct {
	Name      Optional[string] `json:"name,omitzero"`
	Category  Optional[string] `json:"category,omitzero"`
	Quantity  Optional[int]    `json:"quantity,omitzero"`
	Completed Optional[bool]   `json:"completed,omitzero"`
}

// IsEmpty reports whether the patch carries no fields.
func (p ItemPatch) IsEmpty() bool {
	return !p.Name.Set && !p.Category.Set && !p.Quantity.Set && !p.Completed.Set
}

// Apply writes the present fields onto item. A supplied name is trimmed but not
// checked for emptiness: only creation enforces a non-empty name.
func (p ItemPatch) Apply(item *Item) {
	if p.Name.Set {
		item.Name = ItemName(strings.TrimSpace(p.Name.Value))
	}
	if p.Category.Set {
		item.Category = p.Category.Value
	}
	if p.Quantity.Set {
		item.Quantity = p.Quantity.Value
	}
	if p.Completed.Set {
		item.Completed = p.Completed.Value
	}
}

// Fields returns the JSON names of the attributes the patch carries, in a fixed order.
func (p ItemPatch) Fields() []string {
	fields := make([]string, 0, 4)
	if p.Name.Set {
		fields = append(fields, "name")
	}
	if p.Category.Set {
		fields = append(fields, "category")
	}
	if p.Quantity.Set {
		fields = append(fields, "quantity")
	}
	if p.Completed.Set {
		fields = append(fields, "completed")
	}
	return fields
}
