package routes

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"fyyur/internal/handlers"
)

// RegisterAPIRoutes mounts the read-only JSON endpoints. Browsers on the
// allowed origins may call them cross-site.
func RegisterAPIRoutes(router chi.Router, h *handlers.APIHandler, allowedOrigins []string) {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		MaxAge:         300,
	}))

	router.Get("/venues", h.ListVenues)
	router.Get("/venues/search", h.SearchVenues)
	router.Get("/venues/{id:[0-9]+}", h.GetVenue)
	router.Get("/artists", h.ListArtists)
	router.Get("/artists/search", h.SearchArtists)
	router.Get("/artists/{id:[0-9]+}", h.GetArtist)
	router.Get("/shows", h.ListShows)
}
