package handlers

import (
	"math"
	"net/http"
	"strconv"

	"github.com/ghuser/fridgekeeper/pkg/httpx"
	appsvcs "github.com/ghuser/fridgekeeper/services/fridge/application/services"
)

// RestockResponse lists the item types at or below the threshold.
type RestockResponse struct {
	Threshold float64            `json:"threshold" example:"0.25"`
	Items     []TypeFillResponse `json:"items"`
} // @name RestockResponse

// GetItemsHandler handles GET /fridge/items requests.
type GetItemsHandler struct {
	svc *appsvcs.Services
}

// NewGetItemsHandler returns a GetItemsHandler backed by the given services.
func NewGetItemsHandler(svc *appsvcs.Services) *GetItemsHandler {
	return &GetItemsHandler{svc: svc}
}

// Execute answers which item types need restocking.
//
//	@Summary		Restock report
//	@Description	Item types, excluding forgotten ones, whose average fill is at or below the threshold. Sorted by item type.
//	@Tags			fridge
//	@Produce		json
//	@Param			threshold	query		number	false	"Fill threshold; defaults to RESTOCK_THRESHOLD"
//	@Success		200			{object}	RestockResponse
//	@Failure		400			{object}	ErrorResponse
//	@Router			/fridge/items [get]
func (h *GetItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	threshold := h.svc.RestockThreshold
	if raw := r.URL.Query().Get("threshold"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(v) {
			httpx.JSON(w, http.StatusBadRequest, ErrorResponse{Error: "threshold must be a number"})
			return
		}
		threshold = v
	}

	httpx.JSON(w, http.StatusOK, RestockResponse{
		Threshold: threshold,
		Items:     toTypeFillResponses(h.svc.Fridge.Items(threshold)),
	})
}
