package handlers

import (
	"net/http"

	"github.com/ghuser/fridgekeeper/pkg/httpx"
	appsvcs "github.com/ghuser/fridgekeeper/services/fridge/application/services"
)

// GetDebugHandler handles GET /fridge/debug requests.
type GetDebugHandler struct {
	svc *appsvcs.Services
}

// NewGetDebugHandler returns a GetDebugHandler backed by the given services.
func NewGetDebugHandler(svc *appsvcs.Services) *GetDebugHandler {
	return &GetDebugHandler{svc: svc}
}

// Execute writes the inventory rendering.
//
//	@Summary		Inventory dump
//	@Description	Human-readable rendering of every tracked item, ordered by UUID.
//	@Tags			fridge
//	@Produce		plain
//	@Success		200	{string}	string
//	@Router			/fridge/debug [get]
func (h *GetDebugHandler) Execute(w http.ResponseWriter, r *http.Request) {
	httpx.Text(w, http.StatusOK, h.svc.Fridge.String())
}
