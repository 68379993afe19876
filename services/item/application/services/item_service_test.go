package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/shoppinglist/pkg/app"
	"github.com/ghuser/shoppinglist/pkg/logger"
	itemdomain "github.com/ghuser/shoppinglist/services/item/domain"
	"github.com/ghuser/shoppinglist/services/item/domain/models"
)

func newService() *ItemService {
	return New(&app.Application{Logger: logger.Discard()}).Item
}

func TestItemService_CreateAppliesDefaults(t *testing.T) {
	svc := newService()
	before := time.Now().UTC()

	item, err := svc.Create(context.Background(), CreateItemParams{Name: "  Milk  "})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if item.Name != "Milk" {
		t.Errorf("name = %q, want trimmed Milk", item.Name)
	}
	if item.Category != "Other" {
		t.Errorf("category = %q, want Other", item.Category)
	}
	if item.Quantity != 1 {
		t.Errorf("quantity = %d, want 1", item.Quantity)
	}
	if item.Completed {
		t.Error("new item must not be completed")
	}
	if item.ID == uuid.Nil {
		t.Error("id not assigned")
	}
	if item.CreatedAt.Before(before) || item.CreatedAt.Location() != time.UTC {
		t.Errorf("createdAt = %v", item.CreatedAt)
	}
}

func TestItemService_CreateRejectsBlankName(t *testing.T) {
	svc := newService()
	for _, name := range []string{"", "   ", "\t\n"} {
		_, err := svc.Create(context.Background(), CreateItemParams{Name: name, Category: "Dairy"})
		if !errors.Is(err, itemdomain.ErrInvalidItemName) {
			t.Errorf("Create(%q) err = %v, want ErrInvalidItemName", name, err)
		}
	}
	items, _ := svc.List(context.Background())
	if len(items) != 0 {
		t.Errorf("store changed by failed creates: %d items", len(items))
	}
}

// TestItemService_Lifecycle walks one item through create, list, update and delete.
func TestItemService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	milk, err := svc.Create(ctx, CreateItemParams{Name: "Milk", Category: "Dairy", Quantity: models.Some(2)})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if milk.Category != "Dairy" || milk.Quantity != 2 {
		t.Fatalf("created = %+v", milk)
	}

	items, _ := svc.List(ctx)
	if len(items) != 1 || items[0].ID != milk.ID {
		t.Fatalf("List = %+v", items)
	}

	updated, err := svc.Update(ctx, milk.ID, models.ItemPatch{Completed: models.Some(true)})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !updated.Completed || updated.Name != "Milk" || updated.Category != "Dairy" || updated.Quantity != 2 {
		t.Errorf("updated = %+v", updated)
	}

	got, err := svc.GetByID(ctx, milk.ID)
	if err != nil || !got.Completed {
		t.Fatalf("GetByID = %+v, %v", got, err)
	}

	if err := svc.Delete(ctx, milk.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	items, _ = svc.List(ctx)
	if len(items) != 0 {
		t.Errorf("List after delete = %+v", items)
	}
}

func TestItemService_UpdateAllowsEmptyName(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	item, _ := svc.Create(ctx, CreateItemParams{Name: "Bread"})

	got, err := svc.Update(ctx, item.ID, models.ItemPatch{Name: models.Some("   ")})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Name != "" {
		t.Errorf("name = %q, want empty", got.Name)
	}
}

func TestItemService_EmptyPatchIsNoOp(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	item, _ := svc.Create(ctx, CreateItemParams{Name: "Eggs", Quantity: models.Some(12)})

	got, err := svc.Update(ctx, item.ID, models.ItemPatch{})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if *got != *item {
		t.Errorf("empty patch changed item: %+v != %+v", got, item)
	}
}

func TestItemService_NotFoundIsWrapped(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	id := uuid.New()

	if _, err := svc.GetByID(ctx, id); !errors.Is(err, itemdomain.ErrItemNotFound) {
		t.Errorf("GetByID err = %v", err)
	}
	if _, err := svc.Update(ctx, id, models.ItemPatch{Completed: models.Some(true)}); !errors.Is(err, itemdomain.ErrItemNotFound) {
		t.Errorf("Update err = %v", err)
	}
	if err := svc.Delete(ctx, id); !errors.Is(err, itemdomain.ErrItemNotFound) {
		t.Errorf("Delete err = %v", err)
	}
}
