package services

import (
	"github.com/ghuser/shoppinglist/pkg/app"
	"github.com/ghuser/shoppinglist/services/item/infrastructure/persistence/memory"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Item *ItemService
}

// New wires all item application services with infrastructure from the Application
// container. Call it once: each call creates a new, empty item store.
func New(a *app.Application) *Services {
	var bus memory.Publisher
	if a.EventBus != nil {
		bus = a.EventBus
	}
	return &Services{
		Item: NewItemService(memory.NewItemRepository(bus, a.Logger)),
	}
}
