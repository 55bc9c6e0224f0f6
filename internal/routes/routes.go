// internal/routes/routes.go
package routes

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"fyyur/internal/config"
	"fyyur/internal/handlers"
	"fyyur/internal/interfaces"
	"fyyur/internal/services"
	"fyyur/internal/views"
)

// SetupRoutes builds the whole HTTP surface. s3Config may be nil, which
// leaves image uploads disabled.
func SetupRoutes(db *sql.DB, cfg *config.Config, s3Config *config.S3Config) (*chi.Mux, error) {
	renderer, err := views.NewRenderer()
	if err != nil {
		return nil, err
	}

	var images interfaces.ImageStore
	if s3Config != nil {
		images = services.NewS3ImageStore(s3Config)
	}

	directory := services.NewDirectory(db)
	bookings := services.NewBookings(db)
	base := handlers.NewBaseHandler(renderer, cfg.Location(), images)

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.NotFound(base.NotFound)

	r.Get("/health", healthHandler(db))
	r.Get("/", base.Home)

	RegisterVenueRoutes(r, handlers.NewVenueHandler(base, directory, bookings))
	RegisterArtistRoutes(r, handlers.NewArtistHandler(base, directory, bookings))
	RegisterShowRoutes(r, handlers.NewShowHandler(base, directory, bookings))

	r.Route("/api/v1", func(r chi.Router) {
		RegisterAPIRoutes(r, handlers.NewAPIHandler(directory), cfg.CORSAllowedOrigins)
	})

	return r, nil
}

type dbHealth struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type healthResponse struct {
	Status string   `json:"status"`
	DB     dbHealth `json:"db"`
}

func healthHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		resp := healthResponse{Status: "ok", DB: dbHealth{Status: "ok"}}
		status := http.StatusOK
		if err := db.PingContext(ctx); err != nil {
			resp.Status = "down"
			resp.DB = dbHealth{Status: "down", Error: err.Error()}
			status = http.StatusServiceUnavailable
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(resp)
	}
}
