package interfaces

import (
	"context"
	"io"

	"fyyur/internal/models"
)

// Directory is the read side of the booking directory.
type Directory interface {
	VenuesByArea(ctx context.Context) ([]models.Area, error)
	SearchVenues(ctx context.Context, term string) (models.SearchResult[models.VenueSummary], error)
	Venue(ctx context.Context, id int) (*models.VenueDetail, error)
	Artists(ctx context.Context) ([]models.ArtistSummary, error)
	SearchArtists(ctx context.Context, term string) (models.SearchResult[models.ArtistSummary], error)
	Artist(ctx context.Context, id int) (*models.ArtistDetail, error)
	Shows(ctx context.Context) ([]models.ShowListing, error)
}

// Bookings is the write side. Each call is one transaction.
type Bookings interface {
	CreateVenue(ctx context.Context, venue *models.Venue) error
	UpdateVenue(ctx context.Context, venue *models.Venue) error
	DeleteVenue(ctx context.Context, id int) error
	CreateArtist(ctx context.Context, artist *models.Artist) error
	UpdateArtist(ctx context.Context, artist *models.Artist) error
	CreateShow(ctx context.Context, show *models.Show) error
}

// ImageStore stores an uploaded image and returns its public URL. Delete
// takes a URL returned by Upload.
type ImageStore interface {
	Upload(ctx context.Context, filename string, contentType string, body io.Reader) (string, error)
	Delete(ctx context.Context, url string) error
}
