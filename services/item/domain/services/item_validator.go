// Package services contains stateless domain services for the item bounded context.
// Domain services enforce business rules that operate purely on domain types
// and have zero external dependencies beyond stdlib and the domain layer.
package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ghuser/shoppinglist/services/item/domain/models"
)

// ValidateName enforces the creation rule for ItemName: the name must be
// non-empty and carry no surrounding whitespace. Names reaching here through
// models.NewItemName always satisfy both.
func ValidateName(name models.ItemName) error {
	s := name.String()

	if s == "" {
		return fmt.Errorf("item name must not be empty")
	}

	if s != strings.TrimSpace(s) {
		return fmt.Errorf("item name must not have leading or trailing whitespace")
	}

	return nil
}

// ValidateItemForCreation performs cross-field validation on a fully-constructed
// Item before it is added to the store. Updates are not routed through here, so a
// patched item may legitimately carry an empty name.
func ValidateItemForCreation(item *models.Item) error {
	if item == nil {
		return fmt.Errorf("item cannot be nil")
	}

	if err := ValidateName(item.Name); err != nil {
		return fmt.Errorf("invalid name: %w", err)
	}

	if item.ID == uuid.Nil {
		return fmt.Errorf("id must be set")
	}

	if item.CreatedAt.IsZero() {
		return fmt.Errorf("created_at must be set")
	}

	return nil
}
