package handlers

import (
	"context"
	"database/sql"
	"io"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"fyyur/internal/interfaces"
	"fyyur/internal/models"
	"fyyur/internal/views"
)

type mockDirectory struct {
	areas   []models.Area
	venue   *models.VenueDetail
	artist  *models.ArtistDetail
	artists []models.ArtistSummary
	shows   []models.ShowListing
	found   []models.VenueSummary
	err     error

	searchTerm string
}

var _ interfaces.Directory = (*mockDirectory)(nil)

func (m *mockDirectory) VenuesByArea(ctx context.Context) ([]models.Area, error) {
	return m.areas, m.err
}
func (m *mockDirectory) SearchVenues(ctx context.Context, term string) (models.SearchResult[models.VenueSummary], error) {
	m.searchTerm = term
	return models.NewSearchResult(m.found), m.err
}
func (m *mockDirectory) Venue(ctx context.Context, id int) (*models.VenueDetail, error) {
	if m.venue == nil && m.err == nil {
		return nil, sql.ErrNoRows
	}
	return m.venue, m.err
}
func (m *mockDirectory) Artists(ctx context.Context) ([]models.ArtistSummary, error) {
	return m.artists, m.err
}
func (m *mockDirectory) SearchArtists(ctx context.Context, term string) (models.SearchResult[models.ArtistSummary], error) {
	m.searchTerm = term
	return models.NewSearchResult(m.artists), m.err
}
func (m *mockDirectory) Artist(ctx context.Context, id int) (*models.ArtistDetail, error) {
	if m.artist == nil && m.err == nil {
		return nil, sql.ErrNoRows
	}
	return m.artist, m.err
}
func (m *mockDirectory) Shows(ctx context.Context) ([]models.ShowListing, error) {
	return m.shows, m.err
}

type mockBookings struct {
	err error

	venues  []models.Venue
	artists []models.Artist
	shows   []models.Show
	deleted []int
}

var _ interfaces.Bookings = (*mockBookings)(nil)

func (m *mockBookings) CreateVenue(ctx context.Context, venue *models.Venue) error {
	if m.err != nil {
		return m.err
	}
	venue.ID = len(m.venues) + 1
	m.venues = append(m.venues, *venue)
	return nil
}
func (m *mockBookings) UpdateVenue(ctx context.Context, venue *models.Venue) error {
	if m.err != nil {
		return m.err
	}
	m.venues = append(m.venues, *venue)
	return nil
}
func (m *mockBookings) DeleteVenue(ctx context.Context, id int) error {
	if m.err != nil {
		return m.err
	}
	m.deleted = append(m.deleted, id)
	return nil
}
func (m *mockBookings) CreateArtist(ctx context.Context, artist *models.Artist) error {
	if m.err != nil {
		return m.err
	}
	artist.ID = len(m.artists) + 1
	m.artists = append(m.artists, *artist)
	return nil
}
func (m *mockBookings) UpdateArtist(ctx context.Context, artist *models.Artist) error {
	if m.err != nil {
		return m.err
	}
	m.artists = append(m.artists, *artist)
	return nil
}
func (m *mockBookings) CreateShow(ctx context.Context, show *models.Show) error {
	if m.err != nil {
		return m.err
	}
	show.ID = len(m.shows) + 1
	m.shows = append(m.shows, *show)
	return nil
}

type mockImageStore struct {
	filename    string
	contentType string
	url         string
	err         error

	deleted []string
}

var _ interfaces.ImageStore = (*mockImageStore)(nil)

func (m *mockImageStore) Upload(ctx context.Context, filename string, contentType string, body io.Reader) (string, error) {
	m.filename = filename
	m.contentType = contentType
	if _, err := io.Copy(io.Discard, body); err != nil {
		return "", err
	}
	return m.url, m.err
}

func (m *mockImageStore) Delete(ctx context.Context, url string) error {
	m.deleted = append(m.deleted, url)
	return nil
}

var testNow = time.Date(2024, 6, 1, 20, 0, 0, 0, time.UTC)

func newTestBase(t *testing.T, images interfaces.ImageStore) *BaseHandler {
	t.Helper()
	renderer, err := views.NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	base := NewBaseHandler(renderer, time.UTC, images)
	base.Now = func() time.Time { return testNow }
	return base
}

// newTestRouter wires the HTML and API handlers the same way the server does.
func newTestRouter(t *testing.T, dir *mockDirectory, book *mockBookings, images interfaces.ImageStore) *chi.Mux {
	t.Helper()
	base := newTestBase(t, images)
	venues := NewVenueHandler(base, dir, book)
	artists := NewArtistHandler(base, dir, book)
	shows := NewShowHandler(base, dir, book)
	api := NewAPIHandler(dir)

	r := chi.NewRouter()
	r.NotFound(base.NotFound)
	r.Get("/", base.Home)

	r.Get("/venues", venues.List)
	r.Post("/venues/search", venues.Search)
	r.Get("/venues/create", venues.CreateForm)
	r.Post("/venues/create", venues.Create)
	r.Get("/venues/{id:[0-9]+}", venues.Show)
	r.Delete("/venues/{id:[0-9]+}", venues.Delete)
	r.Post("/venues/{id:[0-9]+}/delete", venues.DeleteForm)
	r.Get("/venues/{id:[0-9]+}/edit", venues.EditForm)
	r.Post("/venues/{id:[0-9]+}/edit", venues.Edit)

	r.Get("/artists", artists.List)
	r.Post("/artists/search", artists.Search)
	r.Get("/artists/create", artists.CreateForm)
	r.Post("/artists/create", artists.Create)
	r.Get("/artists/{id:[0-9]+}", artists.Show)
	r.Get("/artists/{id:[0-9]+}/edit", artists.EditForm)
	r.Post("/artists/{id:[0-9]+}/edit", artists.Edit)

	r.Get("/shows", shows.List)
	r.Get("/shows/create", shows.CreateForm)
	r.Post("/shows/create", shows.Create)

	r.Get("/api/v1/venues", api.ListVenues)
	r.Get("/api/v1/venues/{id:[0-9]+}", api.GetVenue)
	r.Get("/api/v1/shows", api.ListShows)
	return r
}
