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

type VenueHandler struct {
	*BaseHandler
	directory interfaces.Directory
	bookings  interfaces.Bookings
}

func NewVenueHandler(base *BaseHandler, directory interfaces.Directory, bookings interfaces.Bookings) *VenueHandler {
	return &VenueHandler{
		BaseHandler: base,
		directory:   directory,
		bookings:    bookings,
	}
}

func (h *VenueHandler) List(w http.ResponseWriter, r *http.Request) {
	areas, err := h.directory.VenuesByArea(r.Context())
	if err != nil {
		h.ServerError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "pages/venues", "Venues", areas)
}

func (h *VenueHandler) Search(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render(w, r, http.StatusBadRequest, "pages/home", "", nil, "Invalid search.")
		return
	}
	term := strings.TrimSpace(r.PostForm.Get("search_term"))

	results, err := h.directory.SearchVenues(r.Context(), term)
	if err != nil {
		h.ServerError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "pages/search_venues", "Venues", views.SearchPage[models.VenueSummary]{
		SearchTerm: term,
		Results:    results,
	})
}

func (h *VenueHandler) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.NotFound(w, r)
		return
	}

	venue, err := h.directory.Venue(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			h.NotFound(w, r)
			return
		}
		h.ServerError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "pages/show_venue", venue.Name, views.NewVenuePage(venue, h.Location))
}

func (h *VenueHandler) CreateForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "forms/new_venue", "New Venue", views.NewFormPage("/venues/create", models.VenueForm{}, nil))
}

func (h *VenueHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := parseSubmission(r); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	form := venueFormFromRequest(r)
	failed := "An error occurred. Venue " + form.Name + " could not be listed."

	uploaded, errs, err := h.bindVenueImage(r.Context(), r, &form)
	if err != nil {
		log.Printf("create venue %q: %v", form.Name, err)
		h.redirect(w, r, "/", failed)
		return
	}
	if len(errs) > 0 {
		h.render(w, r, http.StatusBadRequest, "forms/new_venue", "New Venue", views.NewFormPage("/venues/create", form, errs), failed)
		return
	}

	venue := form.Venue()
	if err := h.bookings.CreateVenue(r.Context(), &venue); err != nil {
		log.Printf("create venue %q: %v", form.Name, err)
		h.discardImage(r.Context(), uploaded)
		h.redirect(w, r, "/", failed)
		return
	}
	h.redirect(w, r, "/", "Venue "+venue.Name+" was successfully listed!")
}

func (h *VenueHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.NotFound(w, r)
		return
	}

	venue, err := h.directory.Venue(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			h.NotFound(w, r)
			return
		}
		h.ServerError(w, r, err)
		return
	}

	page := views.NewFormPage(fmt.Sprintf("/venues/%d/edit", id), models.VenueFormFrom(venue.Venue), nil)
	page.ID = id
	h.render(w, r, http.StatusOK, "forms/edit_venue", "Edit Venue", page)
}

// Edit replaces every field of the venue with the submission.
func (h *VenueHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.NotFound(w, r)
		return
	}
	existing, err := h.directory.Venue(r.Context(), id)
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

	form := venueFormFromRequest(r)
	ctx := withStoredGenres(r.Context(), existing.Genres)
	uploaded, errs, err := h.bindVenueImage(ctx, r, &form)
	if err != nil {
		h.ServerError(w, r, err)
		return
	}
	if len(errs) > 0 {
		page := views.NewFormPage(fmt.Sprintf("/venues/%d/edit", id), form, errs)
		page.ID = id
		h.render(w, r, http.StatusBadRequest, "forms/edit_venue", "Edit Venue", page,
			"An error occurred. Venue "+form.Name+" could not be updated.")
		return
	}

	venue := form.Venue()
	venue.ID = id
	if err := h.bookings.UpdateVenue(r.Context(), &venue); err != nil {
		h.discardImage(r.Context(), uploaded)
		if errors.Is(err, sql.ErrNoRows) {
			h.NotFound(w, r)
			return
		}
		h.ServerError(w, r, err)
		return
	}
	h.redirect(w, r, fmt.Sprintf("/venues/%d", id), "Venue "+venue.Name+" was successfully updated!")
}

// Delete answers the DELETE verb: an empty 200 on success.
func (h *VenueHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSONErrorResponse(w, http.StatusNotFound, "not_found", "Venue not found")
		return
	}

	err := h.bookings.DeleteVenue(r.Context(), id)
	var blocked *interfaces.DeletionBlockedError
	switch {
	case err == nil:
		w.WriteHeader(http.StatusOK)
	case errors.Is(err, sql.ErrNoRows):
		writeJSONErrorResponse(w, http.StatusNotFound, "not_found", "Venue not found")
	case errors.As(err, &blocked):
		writeJSONErrorResponse(w, http.StatusConflict, "conflict", "Venue still has shows")
	default:
		log.Printf("delete venue %d: %v", id, err)
		writeJSONErrorResponse(w, http.StatusInternalServerError, "internal_error", "Venue could not be deleted")
	}
}

// DeleteForm is the form-post variant of Delete for browsers.
func (h *VenueHandler) DeleteForm(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.NotFound(w, r)
		return
	}

	err := h.bookings.DeleteVenue(r.Context(), id)
	var blocked *interfaces.DeletionBlockedError
	switch {
	case err == nil:
		h.redirect(w, r, "/", "Venue was successfully deleted.")
	case errors.Is(err, sql.ErrNoRows):
		h.NotFound(w, r)
	case errors.As(err, &blocked):
		h.redirect(w, r, fmt.Sprintf("/venues/%d", id),
			fmt.Sprintf("Venue could not be deleted: it still has %d shows.", blocked.References["shows"]))
	default:
		h.ServerError(w, r, err)
	}
}

// bindVenueImage validates the form and, when valid, stores an uploaded
// image in place of image_link. It returns the uploaded URL so a failed
// write can discard it.
func (h *VenueHandler) bindVenueImage(ctx context.Context, r *http.Request, form *models.VenueForm) (string, map[string]string, error) {
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
