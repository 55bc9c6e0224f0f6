package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"fyyur/internal/models"
)

func TestValidateVenueForm(t *testing.T) {
	h := &BaseHandler{validator: newValidator()}

	valid := models.VenueForm{Name: "The Hop", City: "SF", State: "CA", Address: "1 Main St", Genres: []string{"Jazz"}}
	assert.Empty(t, h.validateForm(context.Background(), valid))

	tests := []struct {
		name  string
		edit  func(f *models.VenueForm)
		field string
		msg   string
	}{
		{name: "missing name", edit: func(f *models.VenueForm) { f.Name = "" }, field: "name", msg: "This field is required."},
		{name: "unknown state", edit: func(f *models.VenueForm) { f.State = "XX" }, field: "state", msg: "Not a valid choice."},
		{name: "no genres", edit: func(f *models.VenueForm) { f.Genres = []string{} }, field: "genres", msg: "This field is required."},
		{name: "unknown genre", edit: func(f *models.VenueForm) { f.Genres = []string{"Jazz", "Polka"} }, field: "genres", msg: "Not a valid choice."},
		{name: "bad phone", edit: func(f *models.VenueForm) { f.Phone = "12345" }, field: "phone", msg: "Invalid phone number."},
		{name: "bad url", edit: func(f *models.VenueForm) { f.WebsiteLink = "not a url" }, field: "website_link", msg: "Invalid URL."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := valid
			form.Genres = append([]string(nil), valid.Genres...)
			tt.edit(&form)

			errs := h.validateForm(context.Background(), form)
			assert.Equal(t, tt.msg, errs[tt.field])
		})
	}
}

func TestValidatePhoneFormats(t *testing.T) {
	valid := []string{
		"123-123-1234", "(415) 555-0100", "4155550100", "415.555.0100",
		"+1 415-555-0100", "+44 20 7946 0958", "+33 1 23 45 67 89", "+61 2 9374 4000",
	}
	for _, phone := range valid {
		assert.True(t, validPhone(phone), phone)
	}
	invalid := []string{"555-0100", "phone", "+44 20 7946 0958 123 456", "415-555-0100 ext", "++44 20 7946 0958", "-415-555-0100"}
	for _, phone := range invalid {
		assert.False(t, validPhone(phone), phone)
	}
}

func TestValidateGenreAllowsStoredOnly(t *testing.T) {
	h := &BaseHandler{validator: newValidator()}
	form := models.ArtistForm{Name: "Guns N Petals", City: "San Francisco", State: "CA", Genres: []string{"Jazz", "Swing"}}

	errs := h.validateForm(context.Background(), form)
	assert.Equal(t, "Not a valid choice.", errs["genres"])

	ctx := withStoredGenres(context.Background(), []string{"Swing"})
	assert.Empty(t, h.validateForm(ctx, form))

	form.Genres = []string{"Swing", "Polka"}
	assert.Equal(t, "Not a valid choice.", h.validateForm(ctx, form)["genres"])
}

func TestValidateShowForm(t *testing.T) {
	h := &BaseHandler{validator: newValidator()}

	assert.Empty(t, h.validateForm(context.Background(), models.ShowForm{ArtistID: "1", VenueID: "2", StartTime: "2019-05-21T21:30"}))

	errs := h.validateForm(context.Background(), models.ShowForm{})
	assert.Equal(t, "This field is required.", errs["artist_id"])
	assert.Equal(t, "This field is required.", errs["venue_id"])
	assert.Equal(t, "This field is required.", errs["start_time"])
}
