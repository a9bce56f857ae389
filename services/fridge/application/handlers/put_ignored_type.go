package handlers

import (
	"net/http"

	appsvcs "github.com/ghuser/fridgekeeper/services/fridge/application/services"
)

// PutIgnoredTypeHandler handles PUT /fridge/ignored-types/{itemType} requests.
type PutIgnoredTypeHandler struct {
	svc *appsvcs.Services
}

// NewPutIgnoredTypeHandler returns a PutIgnoredTypeHandler backed by the given services.
func NewPutIgnoredTypeHandler(svc *appsvcs.Services) *PutIgnoredTypeHandler {
	return &PutIgnoredTypeHandler{svc: svc}
}

// Execute stops reporting an item type in restock queries.
//
//	@Summary		Forget item type
//	@Description	Excludes the item type from restock queries. Items of that type stay tracked. Idempotent.
//	@Tags			fridge
//	@Produce		json
//	@Param			itemType	path	int	true	"Item type"
//	@Success		204
//	@Failure		400	{object}	ErrorResponse
//	@Router			/fridge/ignored-types/{itemType} [put]
func (h *PutIgnoredTypeHandler) Execute(w http.ResponseWriter, r *http.Request) {
	itemType, ok := itemTypeParam(w, r)
	if !ok {
		return
	}
	h.svc.Fridge.ForgetItem(r.Context(), itemType)
	w.WriteHeader(http.StatusNoContent)
}
