package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	appsvcs "github.com/ghuser/fridgekeeper/services/fridge/application/services"
)

// DeleteItemHandler handles DELETE /fridge/items/{itemUUID} requests.
type DeleteItemHandler struct {
	svc *appsvcs.Services
}

// NewDeleteItemHandler returns a DeleteItemHandler backed by the given services.
func NewDeleteItemHandler(svc *appsvcs.Services) *DeleteItemHandler {
	return &DeleteItemHandler{svc: svc}
}

// Execute records an item taken out of the fridge.
//
//	@Summary		Remove item
//	@Description	Stops tracking the item. Unknown UUIDs are accepted and ignored.
//	@Tags			fridge
//	@Param			itemUUID	path	string	true	"Item UUID"
//	@Success		204
//	@Router			/fridge/items/{itemUUID} [delete]
func (h *DeleteItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	h.svc.Fridge.HandleItemRemoved(r.Context(), chi.URLParam(r, "itemUUID"))
	w.WriteHeader(http.StatusNoContent)
}
