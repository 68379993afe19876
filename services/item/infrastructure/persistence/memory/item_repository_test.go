package memory

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/ghuser/shoppinglist/pkg/logger"
	itemdomain "github.com/ghuser/shoppinglist/services/item/domain"
	domainevents "github.com/ghuser/shoppinglist/services/item/domain/events"
	"github.com/ghuser/shoppinglist/services/item/domain/models"
)

type recordingPublisher struct {
	mu     sync.Mutex
	topics []string
	msgs   []*message.Message
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, topic string, msgs ...*message.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	for _, m := range msgs {
		p.topics = append(p.topics, topic)
		p.msgs = append(p.msgs, m)
	}
	return nil
}

func newItem(t *testing.T, name string) *models.Item {
	t.Helper()
	n, err := models.NewItemName(name)
	if err != nil {
		t.Fatalf("NewItemName(%q): %v", name, err)
	}
	return models.NewItem(n, "", models.Optional[int]{})
}

func names(items []models.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name.String()
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestItemRepository_ListEmpty(t *testing.T) {
	repo := NewItemRepository(nil, logger.Discard())
	items, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Fatalf("List on empty store = %#v, want empty non-nil slice", items)
	}
}

func TestItemRepository_SavePreservesOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewItemRepository(nil, logger.Discard())
	for _, n := range []string{"Milk", "Bread", "Eggs"} {
		if err := repo.Save(ctx, newItem(t, n)); err != nil {
			t.Fatalf("Save(%s): %v", n, err)
		}
	}
	items, _ := repo.List(ctx)
	if got := names(items); !equal(got, []string{"Milk", "Bread", "Eggs"}) {
		t.Errorf("order = %v", got)
	}
}

func TestItemRepository_SaveDuplicateID(t *testing.T) {
	ctx := context.Background()
	repo := NewItemRepository(nil, logger.Discard())
	item := newItem(t, "Milk")
	if err := repo.Save(ctx, item); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := repo.Save(ctx, item); !errors.Is(err, itemdomain.ErrItemAlreadyExists) {
		t.Fatalf("second Save = %v, want ErrItemAlreadyExists", err)
	}
	items, _ := repo.List(ctx)
	if len(items) != 1 {
		t.Errorf("len = %d, want 1", len(items))
	}
}

func TestItemRepository_ListReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewItemRepository(nil, logger.Discard())
	item := newItem(t, "Milk")
	_ = repo.Save(ctx, item)

	items, _ := repo.List(ctx)
	items[0].Name = "Changed"
	item.Name = "Changed too"

	got, err := repo.GetByID(ctx, item.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "Milk" {
		t.Errorf("stored name = %q, want Milk", got.Name)
	}
	got.Quantity = 99
	again, _ := repo.GetByID(ctx, item.ID)
	if again.Quantity != 1 {
		t.Errorf("stored quantity = %d, want 1", again.Quantity)
	}
}

func TestItemRepository_GetByIDNotFound(t *testing.T) {
	repo := NewItemRepository(nil, logger.Discard())
	if _, err := repo.GetByID(context.Background(), uuid.New()); !errors.Is(err, itemdomain.ErrItemNotFound) {
		t.Fatalf("err = %v, want ErrItemNotFound", err)
	}
}

func TestItemRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := NewItemRepository(nil, logger.Discard())
	a, b := newItem(t, "Milk"), newItem(t, "Bread")
	_ = repo.Save(ctx, a)
	_ = repo.Save(ctx, b)

	got, err := repo.Update(ctx, a.ID, models.ItemPatch{Completed: models.Some(true), Quantity: models.Some(3)})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !got.Completed || got.Quantity != 3 || got.Name != "Milk" || got.Category != models.DefaultCategory {
		t.Errorf("updated item = %+v", got)
	}
	if !got.CreatedAt.Equal(a.CreatedAt) || got.ID != a.ID {
		t.Error("id or createdAt changed on update")
	}

	items, _ := repo.List(ctx)
	if gotNames := names(items); !equal(gotNames, []string{"Milk", "Bread"}) {
		t.Errorf("order after update = %v", gotNames)
	}
	if !items[0].Completed {
		t.Error("update not visible through List")
	}
}

func TestItemRepository_UpdateNotFound(t *testing.T) {
	ctx := context.Background()
	pub := &recordingPublisher{}
	repo := NewItemRepository(pub, logger.Discard())
	_, err := repo.Update(ctx, uuid.New(), models.ItemPatch{Name: models.Some("x")})
	if !errors.Is(err, itemdomain.ErrItemNotFound) {
		t.Fatalf("err = %v, want ErrItemNotFound", err)
	}
	if len(pub.topics) != 0 {
		t.Errorf("events published on failure: %v", pub.topics)
	}
}

func TestItemRepository_DeletePreservesOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewItemRepository(nil, logger.Discard())
	var ids []uuid.UUID
	for _, n := range []string{"A", "B", "C"} {
		it := newItem(t, n)
		ids = append(ids, it.ID)
		_ = repo.Save(ctx, it)
	}
	if err := repo.Delete(ctx, ids[1]); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	items, _ := repo.List(ctx)
	if got := names(items); !equal(got, []string{"A", "C"}) {
		t.Errorf("order after delete = %v", got)
	}
	if err := repo.Delete(ctx, ids[1]); !errors.Is(err, itemdomain.ErrItemNotFound) {
		t.Errorf("second Delete = %v, want ErrItemNotFound", err)
	}
}

func TestItemRepository_PublishesEvents(t *testing.T) {
	ctx := context.Background()
	pub := &recordingPublisher{}
	repo := NewItemRepository(pub, logger.Discard())

	item := newItem(t, "Milk")
	_ = repo.Save(ctx, item)
	_, _ = repo.Update(ctx, item.ID, models.ItemPatch{Completed: models.Some(true)})
	_ = repo.Delete(ctx, item.ID)
	_ = repo.Delete(ctx, item.ID) // not found, no event

	want := []string{domainevents.TopicItemCreated, domainevents.TopicItemUpdated, domainevents.TopicItemDeleted}
	if !equal(pub.topics, want) {
		t.Fatalf("topics = %v, want %v", pub.topics, want)
	}

	var created domainevents.ItemCreatedEvent
	if err := json.Unmarshal(pub.msgs[0].Payload, &created); err != nil {
		t.Fatalf("decode created: %v", err)
	}
	if created.Item.ItemID != item.ID || created.Item.Name != "Milk" || created.Version != 1 {
		t.Errorf("created event = %+v", created)
	}

	var updated domainevents.ItemUpdatedEvent
	if err := json.Unmarshal(pub.msgs[1].Payload, &updated); err != nil {
		t.Fatalf("decode updated: %v", err)
	}
	if !updated.Item.Completed || !equal(updated.Fields, []string{"completed"}) {
		t.Errorf("updated event = %+v", updated)
	}

	var deleted domainevents.ItemDeletedEvent
	if err := json.Unmarshal(pub.msgs[2].Payload, &deleted); err != nil {
		t.Fatalf("decode deleted: %v", err)
	}
	if deleted.ItemID != item.ID {
		t.Errorf("deleted event item = %s, want %s", deleted.ItemID, item.ID)
	}
}

func TestItemRepository_PublishFailureKeepsMutation(t *testing.T) {
	ctx := context.Background()
	repo := NewItemRepository(&recordingPublisher{err: errors.New("bus closed")}, logger.Discard())
	if err := repo.Save(ctx, newItem(t, "Milk")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	items, _ := repo.List(ctx)
	if len(items) != 1 {
		t.Errorf("len = %d, want 1", len(items))
	}
}

func TestItemRepository_ConcurrentSaves(t *testing.T) {
	ctx := context.Background()
	repo := NewItemRepository(&recordingPublisher{}, logger.Discard())

	const n = 100
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			it := models.NewItem(models.ItemName("Item"), "", models.Optional[int]{})
			if err := repo.Save(ctx, it); err != nil {
				t.Errorf("Save: %v", err)
				return
			}
			_, _ = repo.List(ctx)
			_, _ = repo.Update(ctx, it.ID, models.ItemPatch{Completed: models.Some(true)})
		}()
	}
	wg.Wait()

	items, _ := repo.List(ctx)
	if len(items) != n {
		t.Fatalf("len = %d, want %d", len(items), n)
	}
	seen := make(map[uuid.UUID]bool, n)
	for _, it := range items {
		if seen[it.ID] {
			t.Fatalf("duplicate id %s", it.ID)
		}
		seen[it.ID] = true
		if !it.Completed {
			t.Errorf("item %s not completed", it.ID)
		}
	}
}
