package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	itemdomain "github.com/ghuser/shoppinglist/services/item/domain"
	"github.com/ghuser/shoppinglist/services/item/domain/models"
	"github.com/ghuser/shoppinglist/services/item/domain/repositories"
	domainsvcs "github.com/ghuser/shoppinglist/services/item/domain/services"
)

// CreateItemParams carries the caller-supplied fields of a new item.
// Category and Quantity fall back to their defaults when empty or absent.
type CreateItemParams struct {
	Name     string
	Category string
	Quantity models.Optional[int]
}

// ItemService orchestrates the shopping-list operations.
// Event publishing is handled by the repository layer.
type ItemService struct {
	repo repositories.ItemRepository
}

// NewItemService returns an ItemService wired with the given repository.
func NewItemService(repo repositories.ItemRepository) *ItemService {
	return &ItemService{repo: repo}
}

// List returns every item in insertion order.
func (s *ItemService) List(ctx context.Context) ([]models.Item, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// GetByID returns a single item or ErrItemNotFound.
func (s *ItemService) GetByID(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	return item, nil
}

// Create validates and stores a new Item. The repository publishes ItemCreatedEvent.
// A name that is empty after trimming yields ErrInvalidItemName and leaves the store unchanged.
func (s *ItemService) Create(ctx context.Context, p CreateItemParams) (*models.Item, error) {
	name, err := models.NewItemName(p.Name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", itemdomain.ErrInvalidItemName, err)
	}

	item := models.NewItem(name, p.Category, p.Quantity)
	if err := domainsvcs.ValidateItemForCreation(item); err != nil {
		return nil, fmt.Errorf("%w: %w", itemdomain.ErrInvalidItemName, err)
	}

	if err := s.repo.Save(ctx, item); err != nil {
		return nil, fmt.Errorf("save item: %w", err)
	}
	return item, nil
}

// Update applies the present fields of patch to the item and returns the result.
// Returns ErrItemNotFound if no item has the given ID.
func (s *ItemService) Update(ctx context.Context, id uuid.UUID, patch models.ItemPatch) (*models.Item, error) {
	item, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}
	return item, nil
}

// Delete removes an item. Returns ErrItemNotFound if no item has the given ID.
func (s *ItemService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}
