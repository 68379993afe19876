package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/shoppinglist/services/item/domain/models"
)

// ItemRepository is the persistence interface for the Item aggregate.
// The domain layer owns this interface; infrastructure implements it.
//
// Implementations hold the canonical collection and must serialise mutations
// so that no two operations interleave their read-modify-write sequences.
type ItemRepository interface {
	// List returns every item in insertion order. The returned values are copies.
	List(ctx context.Context) ([]models.Item, error)

	// GetByID returns a copy of the item, or ErrItemNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*models.Item, error)

	// Save appends a new item. Returns ErrItemAlreadyExists if the ID is taken.
	Save(ctx context.Context, item *models.Item) error

	// Update applies patch to the stored item in place and returns a copy of the
	// result, or ErrItemNotFound. Position in the collection is unchanged.
	Update(ctx context.Context, id uuid.UUID, patch models.ItemPatch) (*models.Item, error)

	// Delete removes an item by ID, keeping the order of the rest, or returns ErrItemNotFound.
	Delete(ctx context.Context, id uuid.UUID) error
}
