package routes

import (
	"github.com/go-chi/chi/v5"

	"fyyur/internal/handlers"
)

func RegisterArtistRoutes(router chi.Router, h *handlers.ArtistHandler) {
	router.Route("/artists", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/search", h.Search)
		r.Get("/create", h.CreateForm)
		r.Post("/create", h.Create)

		r.Route("/{id:[0-9]+}", func(r chi.Router) {
			r.Get("/", h.Show)
			r.Get("/edit", h.EditForm)
			r.Post("/edit", h.Edit)
		})
	})
}
