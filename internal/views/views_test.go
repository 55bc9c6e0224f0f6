package views

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fyyur/internal/models"
)

func TestFormatDateTime(t *testing.T) {
	start := time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)

	tests := []struct {
		name   string
		format string
		loc    *time.Location
		want   string
	}{
		{name: "full", format: "full", loc: time.UTC, want: "Tuesday May, 21, 2019 at 9:30PM"},
		{name: "medium", format: "medium", loc: time.UTC, want: "Tue 05, 21, 2019 9:30PM"},
		{name: "unknown falls back to medium", format: "short", loc: time.UTC, want: "Tue 05, 21, 2019 9:30PM"},
		{name: "nil location is UTC", format: "medium", loc: nil, want: "Tue 05, 21, 2019 9:30PM"},
		{name: "display zone", format: "full", loc: time.FixedZone("PDT", -7*3600), want: "Tuesday May, 21, 2019 at 2:30PM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDateTime(start, tt.format, tt.loc))
		})
	}
}

func TestNewVenuePageRenamesWebsite(t *testing.T) {
	detail := &models.VenueDetail{
		Venue: models.Venue{ID: 1, Name: "The Musical Hop", WebsiteLink: "https://www.themusicalhop.com"},
		PastShows: []models.Appearance{{
			CounterpartID:   4,
			CounterpartName: "Guns N Petals",
			StartTime:       time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC),
		}},
		UpcomingShows:  []models.Appearance{},
		PastShowsCount: 1,
	}

	page := NewVenuePage(detail, time.UTC)
	assert.Equal(t, "https://www.themusicalhop.com", page.Website)
	require.Len(t, page.PastShows, 1)
	assert.Equal(t, "Tuesday May, 21, 2019 at 9:30PM", page.PastShows[0].StartTime)
	assert.Equal(t, 4, page.PastShows[0].ID)
	assert.NotNil(t, page.UpcomingShows)
}

func TestNewShowRowsUseMediumFormat(t *testing.T) {
	rows := NewShowRows([]models.ShowListing{{
		VenueID:    1,
		VenueName:  "The Musical Hop",
		ArtistID:   2,
		ArtistName: "Guns N Petals",
		StartTime:  time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC),
	}}, time.UTC)

	require.Len(t, rows, 1)
	assert.Equal(t, "Tue 05, 21, 2019 9:30PM", rows[0].StartTime)
}

func TestRendererParsesEveryTemplate(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	for _, name := range []string{
		"pages/home", "pages/venues", "pages/search_venues", "pages/show_venue",
		"pages/artists", "pages/search_artists", "pages/show_artist", "pages/shows",
		"forms/new_venue", "forms/edit_venue", "forms/new_artist", "forms/edit_artist", "forms/new_show",
		"errors/404", "errors/500",
	} {
		assert.Contains(t, r.pages, name)
	}
}

func TestRenderShowVenue(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	page := VenuePage{
		ID:                 1,
		Name:               "The Musical Hop",
		Genres:             []string{"Jazz", "Reggae"},
		Website:            "https://www.themusicalhop.com",
		SeekingTalent:      true,
		SeekingDescription: "We are on the lookout for a local artist",
		UpcomingShows:      []ShowCard{{ID: 6, Name: "The Wild Sax Band", StartTime: "Friday April, 1, 2035 at 8:00PM"}},
		PastShows:          []ShowCard{},
		UpcomingShowsCount: 1,
	}

	rec := httptest.NewRecorder()
	require.NoError(t, r.Render(rec, http.StatusOK, "pages/show_venue", Page{Title: page.Name, Flashes: []string{"Venue The Musical Hop was successfully listed!"}, Data: page}))

	body := rec.Body.String()
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, body, "The Musical Hop")
	assert.Contains(t, body, "Jazz")
	assert.Contains(t, body, "1 Upcoming Shows")
	assert.Contains(t, body, "0 Past Shows")
	assert.Contains(t, body, `href="/artists/6"`)
	assert.Contains(t, body, "Friday April, 1, 2035 at 8:00PM")
	assert.Contains(t, body, "was successfully listed!")
}

func TestRenderFormMarksSelections(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	form := models.VenueForm{Name: "The Hop", State: "CA", Genres: []string{"Jazz"}}
	data := NewFormPage("/venues/create", form, map[string]string{"address": "This field is required."})

	rec := httptest.NewRecorder()
	require.NoError(t, r.Render(rec, http.StatusBadRequest, "forms/new_venue", Page{Data: data}))

	body := rec.Body.String()
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, body, `<option value="CA" selected>`)
	assert.Contains(t, body, `<option value="Jazz" selected>`)
	assert.Contains(t, body, `<option value="Blues">`)
	assert.Contains(t, body, "This field is required.")
}

func TestRenderEscapesUserInput(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	data := SearchPage[models.VenueSummary]{
		SearchTerm: "<script>",
		Results:    models.NewSearchResult[models.VenueSummary](nil),
	}
	require.NoError(t, r.Render(rec, http.StatusOK, "pages/search_venues", Page{Data: data}))

	assert.NotContains(t, rec.Body.String(), "<script>")
	assert.Contains(t, rec.Body.String(), ": 0")
}

func TestRenderUnknownTemplate(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	err = r.Render(rec, http.StatusOK, "pages/missing", Page{})
	require.Error(t, err)
	assert.Equal(t, 0, rec.Body.Len())
}
