package handlers

import (
	"net/http"

	"github.com/ghuser/shoppinglist/pkg/errhttp"
	"github.com/ghuser/shoppinglist/pkg/httpx"
	pkgvalidator "github.com/ghuser/shoppinglist/pkg/validator"
	appsvcs "github.com/ghuser/shoppinglist/services/item/application/services"
	"github.com/ghuser/shoppinglist/services/item/domain/models"
)

// UpdateItemRequest is the request body for PUT /items/{id}. Every field is
// optional; only the ones present in the body are written.
type UpdateItemRequest struct {
	Name      models.Optional[string] `json:"name"      swaggertype:"string"  example:"Oat milk"`
	Category  models.Optional[string] `json:"category"  swaggertype:"string"  example:"Groceries"`
	Quantity  models.Optional[int]    `json:"quantity"  swaggertype:"integer" example:"3"`
	Completed models.Optional[bool]   `json:"completed" swaggertype:"boolean" example:"true"`
} // @name UpdateItemRequest

func (req UpdateItemRequest) patch() models.ItemPatch {
	return models.ItemPatch{
		Name:      req.Name,
		Category:  req.Category,
		Quantity:  req.Quantity,
		Completed: req.Completed,
	}
}

// PutItemHandler handles PUT /items/{id} requests.
type PutItemHandler struct {
	svc  *appsvcs.Services
	errw *errhttp.Writer
}

// NewPutItemHandler returns a PutItemHandler backed by the given services.
func NewPutItemHandler(svc *appsvcs.Services, errw *errhttp.Writer) *PutItemHandler {
	return &PutItemHandler{svc: svc, errw: errw}
}

// Execute applies a partial update to an item.
//
//	@Summary		Update item
//	@Description	Applies the fields present in the body. A name may be set to an empty string here.
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Item ID"
//	@Param			request	body		UpdateItemRequest	true	"Fields to change"
//	@Success		200		{object}	ItemResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/items/{id} [put]
func (h *PutItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := itemIDParam(r)
	if err != nil {
		h.errw.WriteError(w, r, err)
		return
	}

	req, ok := pkgvalidator.ValidateRequest[UpdateItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Item.Update(r.Context(), id, req.patch())
	if err != nil {
		h.errw.WriteError(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toItemResponse(item))
}
