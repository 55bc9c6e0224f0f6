package handlers

import (
	"database/sql"
	"errors"
	"log"
	"net/http"

	"fyyur/internal/interfaces"
)

// APIHandler serves the read-only JSON mirror of the directory pages.
type APIHandler struct {
	directory interfaces.Directory
}

func NewAPIHandler(directory interfaces.Directory) *APIHandler {
	return &APIHandler{directory: directory}
}

func (h *APIHandler) ListVenues(w http.ResponseWriter, r *http.Request) {
	areas, err := h.directory.VenuesByArea(r.Context())
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, areas)
}

func (h *APIHandler) GetVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSONErrorResponse(w, http.StatusNotFound, "not_found", "Venue not found")
		return
	}

	venue, err := h.directory.Venue(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeJSONErrorResponse(w, http.StatusNotFound, "not_found", "Venue not found")
			return
		}
		h.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, venue)
}

func (h *APIHandler) SearchVenues(w http.ResponseWriter, r *http.Request) {
	results, err := h.directory.SearchVenues(r.Context(), r.URL.Query().Get("search_term"))
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, results)
}

func (h *APIHandler) ListArtists(w http.ResponseWriter, r *http.Request) {
	artists, err := h.directory.Artists(r.Context())
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, artists)
}

func (h *APIHandler) GetArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSONErrorResponse(w, http.StatusNotFound, "not_found", "Artist not found")
		return
	}

	artist, err := h.directory.Artist(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeJSONErrorResponse(w, http.StatusNotFound, "not_found", "Artist not found")
			return
		}
		h.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, artist)
}

func (h *APIHandler) SearchArtists(w http.ResponseWriter, r *http.Request) {
	results, err := h.directory.SearchArtists(r.Context(), r.URL.Query().Get("search_term"))
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, results)
}

func (h *APIHandler) ListShows(w http.ResponseWriter, r *http.Request) {
	shows, err := h.directory.Shows(r.Context())
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, shows)
}

func (h *APIHandler) internalError(w http.ResponseWriter, r *http.Request, err error) {
	log.Printf("%s %s: %v", r.Method, r.URL.Path, err)
	writeJSONErrorResponse(w, http.StatusInternalServerError, "internal_error", "Internal server error")
}
