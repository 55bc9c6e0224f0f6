package interfaces

import (
	"context"
	"time"

	"fyyur/internal/models"
)

// VenueRepository defines the data operations on venues. Lookups of a
// missing id return sql.ErrNoRows.
type VenueRepository interface {
	Create(ctx context.Context, venue *models.Venue) error
	GetByID(ctx context.Context, id int) (*models.Venue, error)
	Update(ctx context.Context, venue *models.Venue) error
	Delete(ctx context.Context, id int) error
	ListWithUpcoming(ctx context.Context, now time.Time) ([]models.VenueSummary, error)
	SearchByName(ctx context.Context, term string, now time.Time) ([]models.VenueSummary, error)
}

// ArtistRepository defines the data operations on artists.
type ArtistRepository interface {
	Create(ctx context.Context, artist *models.Artist) error
	GetByID(ctx context.Context, id int) (*models.Artist, error)
	Update(ctx context.Context, artist *models.Artist) error
	List(ctx context.Context) ([]models.ArtistSummary, error)
	SearchByName(ctx context.Context, term string, now time.Time) ([]models.ArtistSummary, error)
}

// ShowRepository defines the data operations on shows.
type ShowRepository interface {
	Create(ctx context.Context, show *models.Show) error
	ListAll(ctx context.Context) ([]models.ShowListing, error)
	ListByVenue(ctx context.Context, venueID int) ([]models.Appearance, error)
	ListByArtist(ctx context.Context, artistID int) ([]models.Appearance, error)
}
