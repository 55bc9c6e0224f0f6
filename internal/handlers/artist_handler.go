package handlers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"fyyur/internal/interfaces"
	"fyyur/internal/models"
	"fyyur/internal/views"
)

type ArtistHandler struct {
	*BaseHandler
	directory interfaces.Directory
	bookings  interfaces.Bookings
}

func NewArtistHandler(base *BaseHandler, directory interfaces.Directory, bookings interfaces.Bookings) *ArtistHandler {
	return &ArtistHandler{
		BaseHandler: base,
		directory:   directory,
		bookings:    bookings,
	}
}

func (h *ArtistHandler) List(w http.ResponseWriter, r *http.Request) {
	artists, err := h.directory.Artists(r.Context())
	if err != nil {
		h.ServerError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "pages/artists", "Artists", artists)
}

func (h *ArtistHandler) Search(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render(w, r, http.StatusBadRequest, "pages/home", "", nil, "Invalid search.")
		return
	}
	term := strings.TrimSpace(r.PostForm.Get("search_term"))

	results, err := h.directory.SearchArtists(r.Context(), term)
	if err != nil {
		h.ServerError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "pages/search_artists", "Artists", views.SearchPage[models.ArtistSummary]{
		SearchTerm: term,
		Results:    results,
	})
}

func (h *ArtistHandler) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.NotFound(w, r)
		return
	}

	artist, err := h.directory.Artist(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			h.NotFound(w, r)
			return
		}
		h.ServerError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "pages/show_artist", artist.Name, views.NewArtistPage(artist, h.Location))
}

func (h *ArtistHandler) CreateForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "forms/new_artist", "New Artist", views.NewFormPage("/artists/create", models.ArtistForm{}, nil))
}

func (h *ArtistHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := parseSubmission(r); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	form := artistFormFromRequest(r)
	failed := "An error occurred. Artist " + form.Name + " could not be listed."

	uploaded, errs, err := h.bindArtistImage(r.Context(), r, &form)
	if err != nil {
		log.Printf("create artist %q: %v", form.Name, err)
		h.redirect(w, r, "/", failed)
		return
	}
	if len(errs) > 0 {
		h.render(w, r, http.StatusBadRequest, "forms/new_artist", "New Artist", views.NewFormPage("/artists/create", form, errs), failed)
		return
	}

	artist := form.Artist()
	if err := h.bookings.CreateArtist(r.Context(), &artist); err != nil {
		log.Printf("create artist %q: %v", form.Name, err)
		h.discardImage(r.Context(), uploaded)
		h.redirect(w, r, "/", failed)
		return
	}
	h.redirect(w, r, "/", "Artist "+artist.Name+" was successfully listed!")
}

func (h *ArtistHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.NotFound(w, r)
		return
	}

	artist, err := h.directory.Artist(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			h.NotFound(w, r)
			return
		}
		h.ServerError(w, r, err)
		return
	}

	page := views.NewFormPage(fmt.Sprintf("/artists/%d/edit", id), models.ArtistFormFrom(artist.Artist), nil)
	page.ID = id
	h.render(w, r, http.StatusOK, "forms/edit_artist", "Edit Artist", page)
}

func (h *ArtistHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.NotFound(w, r)
		return
	}
	existing, err := h.directory.Artist(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			h.NotFound(w, r)
			return
		}
		h.ServerError(w, r, err)
		return
	}
	if err := parseSubmission(r); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	form := artistFormFromRequest(r)
	ctx := withStoredGenres(r.Context(), existing.Genres)
	uploaded, errs, err := h.bindArtistImage(ctx, r, &form)
	if err != nil {
		h.ServerError(w, r, err)
		return
	}
	if len(errs) > 0 {
		page := views.NewFormPage(fmt.Sprintf("/artists/%d/edit", id), form, errs)
		page.ID = id
		h.render(w, r, http.StatusBadRequest, "forms/edit_artist", "Edit Artist", page,
			"An error occurred. Artist "+form.Name+" could not be updated.")
		return
	}

	artist := form.Artist()
	artist.ID = id
	if err := h.bookings.UpdateArtist(r.Context(), &artist); err != nil {
		h.discardImage(r.Context(), uploaded)
		if errors.Is(err, sql.ErrNoRows) {
			h.NotFound(w, r)
			return
		}
		h.ServerError(w, r, err)
		return
	}
	h.redirect(w, r, fmt.Sprintf("/artists/%d", id), "Artist "+artist.Name+" was successfully updated!")
}

func (h *ArtistHandler) bindArtistImage(ctx context.Context, r *http.Request, form *models.ArtistForm) (string, map[string]string, error) {
	errs := h.validateForm(ctx, form)
	if len(errs) > 0 {
		return "", errs, nil
	}
	url, err := h.uploadImage(r, errs)
	if err != nil {
		return "", nil, err
	}
	if url != "" {
		form.ImageLink = url
	}
	return url, errs, nil
}
