package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/fridgekeeper/pkg/httpx"
	"github.com/ghuser/fridgekeeper/services/fridge/domain/models"
)

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"invalid fill factor: 1.5 outside [0, 1]"`
} // @name ErrorResponse

// TypeFillResponse is the average fill of one item type.
type TypeFillResponse struct {
	ItemType   int64   `json:"item_type"   example:"2"`
	FillFactor float64 `json:"fill_factor" example:"0.25"`
} // @name TypeFillResponse

func toTypeFillResponses(in []models.TypeFill) []TypeFillResponse {
	out := make([]TypeFillResponse, 0, len(in))
	for _, tf := range in {
		out = append(out, TypeFillResponse{ItemType: tf.ItemType, FillFactor: tf.FillFactor})
	}
	return out
}

// itemTypeParam parses the {itemType} path segment, answering 400 on failure.
func itemTypeParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "itemType")
	itemType, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		httpx.JSON(w, http.StatusBadRequest, ErrorResponse{Error: "item type must be an integer"})
		return 0, false
	}
	return itemType, true
}
