package routes

import (
	"github.com/go-chi/chi/v5"

	"fyyur/internal/handlers"
)

func RegisterShowRoutes(router chi.Router, h *handlers.ShowHandler) {
	router.Route("/shows", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/create", h.CreateForm)
		r.Post("/create", h.Create)
	})
}
