package handlers

import (
	"log"
	"net/http"

	"fyyur/internal/interfaces"
	"fyyur/internal/models"
	"fyyur/internal/views"
)

const showFailed = "An error occurred. Show could not be listed."

type ShowHandler struct {
	*BaseHandler
	directory interfaces.Directory
	bookings  interfaces.Bookings
}

func NewShowHandler(base *BaseHandler, directory interfaces.Directory, bookings interfaces.Bookings) *ShowHandler {
	return &ShowHandler{
		BaseHandler: base,
		directory:   directory,
		bookings:    bookings,
	}
}

func (h *ShowHandler) List(w http.ResponseWriter, r *http.Request) {
	shows, err := h.directory.Shows(r.Context())
	if err != nil {
		h.ServerError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "pages/shows", "Shows", views.NewShowRows(shows, h.Location))
}

// CreateForm pre-fills start_time with the current time in the display zone.
func (h *ShowHandler) CreateForm(w http.ResponseWriter, r *http.Request) {
	form := models.ShowForm{StartTime: h.now().In(h.Location).Format(models.ShowTimeLayouts[0])}
	h.render(w, r, http.StatusOK, "forms/new_show", "New Show", views.NewFormPage("/shows/create", form, nil))
}

func (h *ShowHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	form := showFormFromRequest(r)
	if errs := h.validateForm(r.Context(), form); len(errs) > 0 {
		h.render(w, r, http.StatusBadRequest, "forms/new_show", "New Show", views.NewFormPage("/shows/create", form, errs), showFailed)
		return
	}

	show, err := form.Show(h.Location)
	if err == nil {
		err = h.bookings.CreateShow(r.Context(), &show)
	}
	if err != nil {
		log.Printf("create show artist=%s venue=%s: %v", form.ArtistID, form.VenueID, err)
		h.redirect(w, r, "/", showFailed)
		return
	}
	h.redirect(w, r, "/", "Show was successfully listed!")
}
