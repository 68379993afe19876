package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics published when items change.
const (
	TopicItemCreated = "item.created"
	TopicItemUpdated = "item.updated"
	TopicItemDeleted = "item.deleted"
)

// Topics lists every item topic, in the order subscribers are registered.
var Topics = []string{TopicItemCreated, TopicItemUpdated, TopicItemDeleted}

// ItemSnapshot is the item state carried by created and updated events.
type ItemSnapshot struct {
	ItemID    uuid.UUID `json:"item_id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Quantity  int       `json:"quantity"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}

// ItemCreatedEvent is published after a new Item is added to the store.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicItemCreated, ...).
type ItemCreatedEvent struct {
	EventID    uuid.UUID    `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int          `json:"version"`  // Schema version; increment on breaking changes
	Item       ItemSnapshot `json:"item"`
	OccurredAt time.Time    `json:"occurred_at"`
}

// ItemUpdatedEvent is published after a patch is applied. Fields lists the
// JSON names of the attributes the patch carried.
type ItemUpdatedEvent struct {
	EventID    uuid.UUID    `json:"event_id"`
	Version    int          `json:"version"`
	Item       ItemSnapshot `json:"item"`
	Fields     []string     `json:"fields"`
	OccurredAt time.Time    `json:"occurred_at"`
}

// ItemDeletedEvent is published after an item is removed.
type ItemDeletedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	ItemID     uuid.UUID `json:"item_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
