package httpapi

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires the handlers into a chi router with standard middleware.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Post("/chunk", h.ChunkHandler)
	r.Post("/embed-and-store", h.StoreHandler)
	r.Post("/search", h.SearchHandler)
	r.Get("/health", h.HealthHandler)

	return r
}
