package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/shoppinglist/pkg/errhttp"
	"github.com/ghuser/shoppinglist/services/item/application/handlers"
	appsvcs "github.com/ghuser/shoppinglist/services/item/application/services"
)

// ItemRoutes registers item endpoints on the provided chi router. svcs owns the
// item store, so every route registered here shares one collection.
func ItemRoutes(r chi.Router, svcs *appsvcs.Services, errw *errhttp.Writer) {
	r.Route("/items", func(r chi.Router) {
		r.Get("/", handlers.NewGetItemsHandler(svcs, errw).Execute)
		r.Post("/", handlers.NewPostItemHandler(svcs, errw).Execute)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", handlers.NewGetItemHandler(svcs, errw).Execute)
			r.Put("/", handlers.NewPutItemHandler(svcs, errw).Execute)
			r.Delete("/", handlers.NewDeleteItemHandler(svcs, errw).Execute)
		})
	})
}
