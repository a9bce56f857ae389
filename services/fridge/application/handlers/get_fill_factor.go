package handlers

import (
	"net/http"

	"github.com/ghuser/fridgekeeper/pkg/httpx"
	appsvcs "github.com/ghuser/fridgekeeper/services/fridge/application/services"
)

// GetFillFactorHandler handles GET /fridge/item-types/{itemType}/fill-factor requests.
type GetFillFactorHandler struct {
	svc *appsvcs.Services
}

// NewGetFillFactorHandler returns a GetFillFactorHandler backed by the given services.
func NewGetFillFactorHandler(svc *appsvcs.Services) *GetFillFactorHandler {
	return &GetFillFactorHandler{svc: svc}
}

// Execute returns the average fill of an item type.
//
//	@Summary		Fill factor of an item type
//	@Description	Average fill of the non-empty items of the type; 0 when there are none. Forgotten types are still reported.
//	@Tags			fridge
//	@Produce		json
//	@Param			itemType	path		int	true	"Item type"
//	@Success		200			{object}	TypeFillResponse
//	@Failure		400			{object}	ErrorResponse
//	@Router			/fridge/item-types/{itemType}/fill-factor [get]
func (h *GetFillFactorHandler) Execute(w http.ResponseWriter, r *http.Request) {
	itemType, ok := itemTypeParam(w, r)
	if !ok {
		return
	}
	httpx.JSON(w, http.StatusOK, TypeFillResponse{
		ItemType:   itemType,
		FillFactor: h.svc.Fridge.FillFactor(itemType),
	})
}
