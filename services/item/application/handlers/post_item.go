package handlers

import (
	"net/http"

	"github.com/ghuser/shoppinglist/pkg/errhttp"
	"github.com/ghuser/shoppinglist/pkg/httpx"
	pkgvalidator "github.com/ghuser/shoppinglist/pkg/validator"
	appsvcs "github.com/ghuser/shoppinglist/services/item/application/services"
	"github.com/ghuser/shoppinglist/services/item/domain/models"
)

// CreateItemRequest is the request body for POST /items.
type CreateItemRequest struct {
	Name     *string              `json:"name"     validate:"required" example:"Milk"`
	Category string               `json:"category" example:"Groceries"`
	Quantity models.Optional[int] `json:"quantity" swaggertype:"integer" example:"2"`
} // @name CreateItemRequest

// ValidationMessage reports a missing name the same way as a blank one.
func (CreateItemRequest) ValidationMessage(map[string]string) string {
	return errhttp.MsgItemNameRequired
}

// PostItemHandler handles POST /items requests.
type PostItemHandler struct {
	svc  *appsvcs.Services
	errw *errhttp.Writer
}

// NewPostItemHandler returns a PostItemHandler backed by the given services.
func NewPostItemHandler(svc *appsvcs.Services, errw *errhttp.Writer) *PostItemHandler {
	return &PostItemHandler{svc: svc, errw: errw}
}

// Execute creates a new item.
//
//	@Summary		Create item
//	@Description	Adds an item to the end of the list. Category defaults to "Other" and quantity to 1.
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateItemRequest	true	"Item creation request"
//	@Success		201		{object}	ItemResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		413		{object}	ErrorResponse
//	@Router			/items [post]
func (h *PostItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Item.Create(r.Context(), appsvcs.CreateItemParams{
		Name:     *req.Name,
		Category: req.Category,
		Quantity: req.Quantity,
	})
	if err != nil {
		h.errw.WriteError(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toItemResponse(item))
}
