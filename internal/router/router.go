package router

import (
	"net/http"
	"time"

	"foodcourt/internal/handler"
	"foodcourt/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	customerHandler *handler.CustomerHandler,
	restaurantHandler *handler.RestaurantHandler,
	menuHandler *handler.MenuHandler,
	orderHandler *handler.OrderHandler,
	requestTimeout time.Duration,
	logger zerolog.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logging(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))
	r.Use(chimiddleware.Timeout(requestTimeout))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	r.Route("/customers", func(r chi.Router) {
		r.Post("/", customerHandler.Create)
		r.Get("/top", customerHandler.Top)
		r.Get("/{id}", customerHandler.GetByID)
		r.Get("/{id}/orders", customerHandler.ListOrders)
	})

	r.Route("/restaurants", func(r chi.Router) {
		r.Post("/", restaurantHandler.Create)
		r.Get("/{id}/menu", restaurantHandler.GetMenu)
		r.Post("/{id}/menu", restaurantHandler.AddMenuItem)
		r.Get("/{id}/revenue", restaurantHandler.Revenue)
	})

	r.Route("/menu", func(r chi.Router) {
		r.Get("/top-items", menuHandler.TopItem)
		r.Patch("/{id}", menuHandler.Update)
	})

	r.Route("/orders", func(r chi.Router) {
		r.Post("/", orderHandler.Create)
		r.Get("/{id}", orderHandler.GetByID)
		r.Patch("/{id}/status", orderHandler.UpdateStatus)
	})

	return r
}
