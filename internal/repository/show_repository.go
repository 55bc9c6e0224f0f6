package repository

import (
	"context"
	"fmt"

	"fyyur/internal/db"
	"fyyur/internal/interfaces"
	"fyyur/internal/models"
)

type showRepository struct {
	db db.DBTX
}

func NewShowRepository(conn db.DBTX) interfaces.ShowRepository {
	return &showRepository{db: conn}
}

// Create relies on the foreign keys to reject unknown venues or artists.
func (r *showRepository) Create(ctx context.Context, show *models.Show) error {
	query := `
		INSERT INTO shows (venue_id, artist_id, start_time)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query, show.VenueID, show.ArtistID, show.StartTime.UTC()).Scan(&show.ID)
	if err != nil {
		return fmt.Errorf("create show: %w", err)
	}
	return nil
}

func (r *showRepository) ListAll(ctx context.Context) ([]models.ShowListing, error) {
	query := `
		SELECT s.id, s.venue_id, v.name, s.artist_id, a.name, COALESCE(a.image_link, ''), s.start_time
		FROM shows s
		JOIN venues v ON v.id = s.venue_id
		JOIN artists a ON a.id = s.artist_id
		ORDER BY s.start_time, s.id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list shows: %w", err)
	}
	defer rows.Close()

	shows := []models.ShowListing{}
	for rows.Next() {
		var s models.ShowListing
		if err := rows.Scan(
			&s.ID,
			&s.VenueID,
			&s.VenueName,
			&s.ArtistID,
			&s.ArtistName,
			&s.ArtistImageLink,
			&s.StartTime,
		); err != nil {
			return nil, fmt.Errorf("scan show: %w", err)
		}
		shows = append(shows, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list shows: %w", err)
	}
	return shows, nil
}

// ListByVenue returns the venue's shows with the performing artist as
// counterpart.
func (r *showRepository) ListByVenue(ctx context.Context, venueID int) ([]models.Appearance, error) {
	query := `
		SELECT s.id, a.id, a.name, COALESCE(a.image_link, ''), s.start_time
		FROM shows s
		JOIN artists a ON a.id = s.artist_id
		WHERE s.venue_id = $1
		ORDER BY s.start_time, s.id
	`
	return r.queryAppearances(ctx, "list shows by venue", query, venueID)
}

// ListByArtist returns the artist's shows with the hosting venue as
// counterpart.
func (r *showRepository) ListByArtist(ctx context.Context, artistID int) ([]models.Appearance, error) {
	query := `
		SELECT s.id, v.id, v.name, COALESCE(v.image_link, ''), s.start_time
		FROM shows s
		JOIN venues v ON v.id = s.venue_id
		WHERE s.artist_id = $1
		ORDER BY s.start_time, s.id
	`
	return r.queryAppearances(ctx, "list shows by artist", query, artistID)
}

func (r *showRepository) queryAppearances(ctx context.Context, op string, query string, id int) ([]models.Appearance, error) {
	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	shows := []models.Appearance{}
	for rows.Next() {
		var a models.Appearance
		if err := rows.Scan(&a.ShowID, &a.CounterpartID, &a.CounterpartName, &a.CounterpartImageLink, &a.StartTime); err != nil {
			return nil, fmt.Errorf("scan show: %w", err)
		}
		shows = append(shows, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return shows, nil
}
