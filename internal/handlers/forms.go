package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"mime"
	"net/http"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"fyyur/internal/models"
)

const maxUploadMemory = 10 << 20

// parseSubmission accepts url-encoded and multipart bodies. Either way the
// values end up in r.PostForm.
func parseSubmission(r *http.Request) error {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		return r.ParseMultipartForm(maxUploadMemory)
	}
	return r.ParseForm()
}

func formString(r *http.Request, key string) string {
	return strings.TrimSpace(r.PostForm.Get(key))
}

// formBool follows HTML checkbox semantics: any submitted value but an
// explicit false means checked.
func formBool(r *http.Request, key string) bool {
	switch strings.ToLower(formString(r, key)) {
	case "", "false", "n", "no", "off", "0":
		return false
	}
	return true
}

func venueFormFromRequest(r *http.Request) models.VenueForm {
	return models.VenueForm{
		Name:               formString(r, "name"),
		City:               formString(r, "city"),
		State:              formString(r, "state"),
		Address:            formString(r, "address"),
		Phone:              formString(r, "phone"),
		Genres:             models.NormalizeGenres(r.PostForm["genres"]),
		FacebookLink:       formString(r, "facebook_link"),
		ImageLink:          formString(r, "image_link"),
		WebsiteLink:        formString(r, "website_link"),
		SeekingTalent:      formBool(r, "seeking_talent"),
		SeekingDescription: formString(r, "seeking_description"),
	}
}

func artistFormFromRequest(r *http.Request) models.ArtistForm {
	return models.ArtistForm{
		Name:               formString(r, "name"),
		City:               formString(r, "city"),
		State:              formString(r, "state"),
		Phone:              formString(r, "phone"),
		Genres:             models.NormalizeGenres(r.PostForm["genres"]),
		FacebookLink:       formString(r, "facebook_link"),
		ImageLink:          formString(r, "image_link"),
		WebsiteLink:        formString(r, "website_link"),
		SeekingVenue:       formBool(r, "seeking_venue"),
		SeekingDescription: formString(r, "seeking_description"),
	}
}

func showFormFromRequest(r *http.Request) models.ShowForm {
	return models.ShowForm{
		ArtistID:  formString(r, "artist_id"),
		VenueID:   formString(r, "venue_id"),
		StartTime: formString(r, "start_time"),
	}
}

// uploadImage stores the optional image_file part and returns its public
// URL, or "" when no file was sent. A non-image file is a field error.
func (h *BaseHandler) uploadImage(r *http.Request, errs map[string]string) (string, error) {
	if r.MultipartForm == nil {
		return "", nil
	}
	file, header, err := r.FormFile("image_file")
	if errors.Is(err, http.ErrMissingFile) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read image_file: %w", err)
	}
	defer file.Close()

	if h.Images == nil {
		errs["image_file"] = "Image uploads are not available."
		return "", nil
	}

	mtype, err := mimetype.DetectReader(file)
	if err != nil {
		return "", fmt.Errorf("detect image type: %w", err)
	}
	if !strings.HasPrefix(mtype.String(), "image/") {
		errs["image_file"] = "Must be an image."
		return "", nil
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("rewind image_file: %w", err)
	}

	return h.Images.Upload(r.Context(), header.Filename, mtype.String(), file)
}

// discardImage removes an image uploaded for a write that did not happen.
func (h *BaseHandler) discardImage(ctx context.Context, url string) {
	if url == "" || h.Images == nil {
		return
	}
	if err := h.Images.Delete(ctx, url); err != nil {
		log.Printf("discard image %s: %v", url, err)
	}
}
