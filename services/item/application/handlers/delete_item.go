package handlers

import (
	"net/http"

	"github.com/ghuser/shoppinglist/pkg/errhttp"
	"github.com/ghuser/shoppinglist/pkg/httpx"
	appsvcs "github.com/ghuser/shoppinglist/services/item/application/services"
)

// DeleteItemHandler handles DELETE /items/{id} requests.
type DeleteItemHandler struct {
	svc  *appsvcs.Services
	errw *errhttp.Writer
}

// NewDeleteItemHandler returns a DeleteItemHandler backed by the given services.
func NewDeleteItemHandler(svc *appsvcs.Services, errw *errhttp.Writer) *DeleteItemHandler {
	return &DeleteItemHandler{svc: svc, errw: errw}
}

// Execute removes an item.
//
//	@Summary	Delete item
//	@Tags		items
//	@Param		id	path	string	true	"Item ID"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Router		/items/{id} [delete]
func (h *DeleteItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := itemIDParam(r)
	if err != nil {
		h.errw.WriteError(w, r, err)
		return
	}

	if err := h.svc.Item.Delete(r.Context(), id); err != nil {
		h.errw.WriteError(w, r, err)
		return
	}

	httpx.NoContent(w)
}
