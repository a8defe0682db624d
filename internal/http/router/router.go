package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ashik3031/inventory-management/internal/http/handlers"
	mw "github.com/ashik3031/inventory-management/internal/http/middleware"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Use(mw.RateLimitMiddleware)
			r.Post("/register", handlers.RegisterHandler)
			r.Post("/login", handlers.LoginHandler)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", handlers.GetProductsHandler)
			r.Get("/stats", handlers.GetInventoryStatsHandler)
			r.Get("/recent", handlers.GetRecentProductsHandler)
			r.Get("/{id}", handlers.GetProductByIDHandler)
			r.Post("/add", handlers.CreateProductHandler)
			r.Put("/edit/{id}", handlers.UpdateProductHandler)
			r.With(mw.AuthMiddleware).Delete("/{id}", handlers.DeleteProductHandler)
		})
	})

	return r
}
