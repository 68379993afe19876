// Package memory holds the process-lifetime item store. Nothing is persisted:
// the collection starts empty and is discarded when the process exits.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/ghuser/shoppinglist/pkg/logger"
	itemdomain "github.com/ghuser/shoppinglist/services/item/domain"
	domainevents "github.com/ghuser/shoppinglist/services/item/domain/events"
	"github.com/ghuser/shoppinglist/services/item/domain/models"
)

const eventVersion = 1

// Publisher is the subset of events.EventBus the repository needs.
type Publisher interface {
	Publish(ctx context.Context, topic string, msgs ...*message.Message) error
}

// ItemRepository implements repositories.ItemRepository over an ordered slice.
// One RWMutex guards the whole collection; every mutation holds the write lock
// for its full read-modify-write, including the event publish.
type ItemRepository struct {
	mu    sync.RWMutex
	items []models.Item
	bus   Publisher
	log   logger.Logger
}

// NewItemRepository returns an empty ItemRepository. bus may be nil, in which
// case no events are published.
func NewItemRepository(bus Publisher, log logger.Logger) *ItemRepository {
	return &ItemRepository{bus: bus, log: log}
}

// List returns a copy of every item in insertion order. The result is never nil.
func (r *ItemRepository) List(_ context.Context) ([]models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Item, len(r.items))
	copy(out, r.items)
	return out, nil
}

// GetByID returns a copy of the item with the given ID, or ErrItemNotFound.
func (r *ItemRepository) GetByID(_ context.Context, id uuid.UUID) (*models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, itemdomain.ErrItemNotFound
	}
	item := r.items[i]
	return &item, nil
}

// Save appends item and publishes an ItemCreatedEvent.
// Returns ErrItemAlreadyExists if an item with the same ID is already stored.
func (r *ItemRepository) Save(ctx context.Context, item *models.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(item.ID) >= 0 {
		return itemdomain.ErrItemAlreadyExists
	}
	r.items = append(r.items, *item)

	r.publish(ctx, domainevents.TopicItemCreated, domainevents.ItemCreatedEvent{
		EventID:    uuid.New(),
		Version:    eventVersion,
		Item:       snapshot(item),
		OccurredAt: item.CreatedAt,
	})
	return nil
}

// Update applies patch to the stored item in place and publishes an ItemUpdatedEvent.
// Returns ErrItemNotFound if the ID is unknown.
func (r *ItemRepository) Update(ctx context.Context, id uuid.UUID, patch models.ItemPatch) (*models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, itemdomain.ErrItemNotFound
	}
	patch.Apply(&r.items[i])
	updated := r.items[i]

	r.publish(ctx, domainevents.TopicItemUpdated, domainevents.ItemUpdatedEvent{
		EventID:    uuid.New(),
		Version:    eventVersion,
		Item:       snapshot(&updated),
		Fields:     patch.Fields(),
		OccurredAt: time.Now().UTC(),
	})
	return &updated, nil
}

// Delete removes the item with the given ID and publishes an ItemDeletedEvent.
// The relative order of the remaining items is unchanged.
func (r *ItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return itemdomain.ErrItemNotFound
	}
	r.items = append(r.items[:i], r.items[i+1:]...)

	r.publish(ctx, domainevents.TopicItemDeleted, domainevents.ItemDeletedEvent{
		EventID:    uuid.New(),
		Version:    eventVersion,
		ItemID:     id,
		OccurredAt: time.Now().UTC(),
	})
	return nil
}

// indexOf must be called with r.mu held.
func (r *ItemRepository) indexOf(id uuid.UUID) int {
	for i := range r.items {
		if r.items[i].ID == id {
			return i
		}
	}
	return -1
}

// publish sends event on topic. The mutation has already happened, so a
// failure is logged rather than returned.
func (r *ItemRepository) publish(ctx context.Context, topic string, event any) {
	if r.bus == nil {
		return
	}
	if err := r.sendEvent(ctx, topic, event); err != nil {
		r.log.WarnContext(ctx, "item event not published", "topic", topic, "error", err)
	}
}

func (r *ItemRepository) sendEvent(ctx context.Context, topic string, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_version", strconv.Itoa(eventVersion))
	return r.bus.Publish(ctx, topic, msg)
}

func snapshot(item *models.Item) domainevents.ItemSnapshot {
	return domainevents.ItemSnapshot{
		ItemID:    item.ID,
		Name:      item.Name.String(),
		Category:  item.Category,
		Quantity:  item.Quantity,
		Completed: item.Completed,
		CreatedAt: item.CreatedAt,
	}
}
