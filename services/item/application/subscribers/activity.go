// Package subscribers holds in-process consumers of item domain events.
package subscribers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/ghuser/shoppinglist/pkg/events"
	"github.com/ghuser/shoppinglist/pkg/logger"
	domainevents "github.com/ghuser/shoppinglist/services/item/domain/events"
)

// Subscriber is the subset of events.EventBus used to register handlers.
type Subscriber interface {
	Subscribe(ctx context.Context, topic string, handler events.Handler) (<-chan error, error)
}

// Activity logs every item event and counts them per topic in the
// "shoppinglist.item.events" counter.
type Activity struct {
	log     logger.Logger
	counter metric.Int64Counter
}

// NewActivity creates the counter on meter and returns an Activity.
func NewActivity(meter metric.Meter, log logger.Logger) (*Activity, error) {
	counter, err := meter.Int64Counter("shoppinglist.item.events",
		metric.WithDescription("Item domain events handled, by topic"),
		metric.WithUnit("{event}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create item events counter: %w", err)
	}
	return &Activity{log: log, counter: counter}, nil
}

// Register subscribes to every item topic. Handler failures that exhaust their
// retries are logged until ctx is canceled or the bus closes.
func (a *Activity) Register(ctx context.Context, bus Subscriber) error {
	for _, topic := range domainevents.Topics {
		errCh, err := bus.Subscribe(ctx, topic, a.handlerFor(topic))
		if err != nil {
			return fmt.Errorf("subscribe %s: %w", topic, err)
		}
		go func() {
			for err := range errCh {
				a.log.ErrorContext(ctx, "item activity handler failed", "topic", topic, "error", err)
			}
		}()
	}
	return nil
}

func (a *Activity) handlerFor(topic string) events.Handler {
	return func(ctx context.Context, msg *message.Message) error {
		args, err := decodeEvent(topic, msg.Payload)
		if err != nil {
			return err
		}
		a.counter.Add(ctx, 1, metric.WithAttributes(attribute.String("topic", topic)))
		a.log.InfoContext(ctx, "item activity", append([]any{"topic", topic, "message_id", msg.UUID}, args...)...)
		return nil
	}
}

// decodeEvent returns log attributes describing the event payload.
func decodeEvent(topic string, payload []byte) ([]any, error) {
	switch topic {
	case domainevents.TopicItemCreated:
		var e domainevents.ItemCreatedEvent
		if err := json.Unmarshal(payload, &e); err != nil {
			return nil, fmt.Errorf("decode %s: %w", topic, err)
		}
		return []any{"event_id", e.EventID, "item_id", e.Item.ItemID, "name", e.Item.Name, "category", e.Item.Category}, nil
	case domainevents.TopicItemUpdated:
		var e domainevents.ItemUpdatedEvent
		if err := json.Unmarshal(payload, &e); err != nil {
			return nil, fmt.Errorf("decode %s: %w", topic, err)
		}
		return []any{"event_id", e.EventID, "item_id", e.Item.ItemID, "fields", e.Fields, "completed", e.Item.Completed}, nil
	case domainevents.TopicItemDeleted:
		var e domainevents.ItemDeletedEvent
		if err := json.Unmarshal(payload, &e); err != nil {
			return nil, fmt.Errorf("decode %s: %w", topic, err)
		}
		return []any{"event_id", e.EventID, "item_id", e.ItemID}, nil
	default:
		return nil, fmt.Errorf("unknown topic %q", topic)
	}
}
