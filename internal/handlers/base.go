// internal/handlers/base.go
package handlers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"fyyur/internal/interfaces"
	"fyyur/internal/views"
)

// BaseHandler carries what every HTML handler needs. Images is nil when no
// bucket is configured.
type BaseHandler struct {
	Views     *views.Renderer
	Location  *time.Location
	Images    interfaces.ImageStore
	Now       func() time.Time
	validator *validator.Validate
}

func NewBaseHandler(renderer *views.Renderer, loc *time.Location, images interfaces.ImageStore) *BaseHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &BaseHandler{
		Views:     renderer,
		Location:  loc,
		Images:    images,
		Now:       time.Now,
		validator: newValidator(),
	}
}

func (h *BaseHandler) now() time.Time {
	if h.Now == nil {
		return time.Now()
	}
	return h.Now()
}

// render shows the named template with any pending flash plus the extra
// messages given.
func (h *BaseHandler) render(w http.ResponseWriter, r *http.Request, status int, name string, title string, data any, messages ...string) {
	page := views.Page{
		Title:   title,
		Flashes: append(popFlashes(w, r), messages...),
		Data:    data,
	}
	if err := h.Views.Render(w, status, name, page); err != nil {
		log.Printf("render %s: %v", name, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (h *BaseHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "pages/home", "", nil)
}

func (h *BaseHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusNotFound, "errors/404", "Not Found", nil)
}

func (h *BaseHandler) ServerError(w http.ResponseWriter, r *http.Request, err error) {
	log.Printf("%s %s: %v", r.Method, r.URL.Path, err)
	h.render(w, r, http.StatusInternalServerError, "errors/500", "Server Error", nil)
}

// redirect finishes a successful or failed POST with a flash message.
func (h *BaseHandler) redirect(w http.ResponseWriter, r *http.Request, to string, message string) {
	if message != "" {
		setFlash(w, message)
	}
	http.Redirect(w, r, to, http.StatusSeeOther)
}

// pathID reads the {id} URL parameter. Routes only match digits, so a
// failure here means the value overflowed.
func pathID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
