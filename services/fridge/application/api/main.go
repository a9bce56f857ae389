package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/fridgekeeper/services/fridge/application/handlers"
	appsvcs "github.com/ghuser/fridgekeeper/services/fridge/application/services"
)

// FridgeRoutes registers fridge endpoints on the provided chi router.
// svcs is shared with the event subscriber.
func FridgeRoutes(r chi.Router, svcs *appsvcs.Services) {
	r.Group(func(r chi.Router) {
		r.Route("/fridge", func(r chi.Router) {
			r.Post("/items", handlers.NewPostItemHandler(svcs).Execute)
			r.Get("/items", handlers.NewGetItemsHandler(svcs).Execute)
			r.Delete("/items/{itemUUID}", handlers.NewDeleteItemHandler(svcs).Execute)
			r.Put("/ignored-types/{itemType}", handlers.NewPutIgnoredTypeHandler(svcs).Execute)
			r.Get("/item-types/{itemType}/fill-factor", handlers.NewGetFillFactorHandler(svcs).Execute)
			r.Get("/debug", handlers.NewGetDebugHandler(svcs).Execute)
		})
	})
}
