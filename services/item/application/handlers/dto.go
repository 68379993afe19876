package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	itemdomain "github.com/ghuser/shoppinglist/services/item/domain"
	"github.com/ghuser/shoppinglist/services/item/domain/models"
)

// createdAtLayout renders timestamps as ISO-8601 UTC with millisecond precision.
const createdAtLayout = "2006-01-02T15:04:05.000Z"

// ItemResponse is the wire representation of an item.
type ItemResponse struct {
	ID        uuid.UUID `json:"id"        example:"123e4567-e89b-12d3-a456-426614174000"`
	Name      string    `json:"name"      example:"Milk"`
	Category  string    `json:"category"  example:"Groceries"`
	Quantity  int       `json:"quantity"  example:"2"`
	Completed bool      `json:"completed" example:"false"`
	CreatedAt string    `json:"createdAt" example:"2024-01-15T10:30:00.000Z"`
} // @name ItemResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"Item not found"`
} // @name ErrorResponse

func toItemResponse(item *models.Item) ItemResponse {
	return ItemResponse{
		ID:        item.ID,
		Name:      item.Name.String(),
		Category:  item.Category,
		Quantity:  item.Quantity,
		Completed: item.Completed,
		CreatedAt: item.CreatedAt.UTC().Format(createdAtLayout),
	}
}

// itemIDParam reads the {id} URL parameter. An ID that is not a UUID cannot
// name a stored item, so it is reported as ErrItemNotFound.
func itemIDParam(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, itemdomain.ErrItemNotFound
	}
	return id, nil
}
