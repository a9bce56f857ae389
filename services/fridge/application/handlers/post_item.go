package handlers

import (
	"net/http"

	"github.com/ghuser/fridgekeeper/pkg/errhttp"
	"github.com/ghuser/fridgekeeper/pkg/httpx"
	pkgvalidator "github.com/ghuser/fridgekeeper/pkg/validator"
	appsvcs "github.com/ghuser/fridgekeeper/services/fridge/application/services"
)

// AddItemRequest is the request body for POST /fridge/items.
// Pointers distinguish a missing field from an explicit zero.
type AddItemRequest struct {
	ItemType   *int64   `json:"item_type"   validate:"required"         example:"1"`
	ItemUUID   string   `json:"item_uuid"   validate:"required,max=128" example:"123e4567-e89b-12d3-a456-426614174000"`
	Name       string   `json:"name"        validate:"max=255"          example:"milk"`
	FillFactor *float64 `json:"fill_factor" validate:"required"         example:"0.5"`
} // @name AddItemRequest

// ItemResponse echoes the stored item.
type ItemResponse struct {
	ItemType   int64   `json:"item_type"   example:"1"`
	ItemUUID   string  `json:"item_uuid"   example:"123e4567-e89b-12d3-a456-426614174000"`
	Name       string  `json:"name"        example:"milk"`
	FillFactor float64 `json:"fill_factor" example:"0.5"`
} // @name ItemResponse

// PostItemHandler handles POST /fridge/items requests.
type PostItemHandler struct {
	svc *appsvcs.Services
}

// NewPostItemHandler returns a PostItemHandler backed by the given services.
func NewPostItemHandler(svc *appsvcs.Services) *PostItemHandler {
	return &PostItemHandler{svc: svc}
}

// Execute records an item placed in the fridge.
//
//	@Summary		Add item
//	@Description	Tracks an item placed in the fridge. An item with the same UUID is replaced.
//	@Tags			fridge
//	@Accept			json
//	@Produce		json
//	@Param			request	body		AddItemRequest	true	"Item placed in the fridge"
//	@Success		201		{object}	ItemResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/fridge/items [post]
func (h *PostItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[AddItemRequest](w, r)
	if !ok {
		return
	}

	err := h.svc.Fridge.HandleItemAdded(r.Context(), *req.ItemType, req.ItemUUID, req.Name, *req.FillFactor)
	if err != nil {
		errhttp.WriteSafeError(w, err, h.svc.IsProduction)
		return
	}

	httpx.JSON(w, http.StatusCreated, ItemResponse{
		ItemType:   *req.ItemType,
		ItemUUID:   req.ItemUUID,
		Name:       req.Name,
		FillFactor: *req.FillFactor,
	})
}
