package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"fyyur/internal/db"
	"fyyur/internal/interfaces"
	"fyyur/internal/models"
)

type artistRepository struct {
	db db.DBTX
}

func NewArtistRepository(conn db.DBTX) interfaces.ArtistRepository {
	return &artistRepository{db: conn}
}

func (r *artistRepository) Create(ctx context.Context, artist *models.Artist) error {
	query := `
		INSERT INTO artists (
			name, city, state, phone, genres, facebook_link,
			image_link, website_link, seeking_venue, seeking_description
		) VALUES ($1, $2, $3, NULLIF($4, ''), $5, NULLIF($6, ''), NULLIF($7, ''), NULLIF($8, ''), $9, NULLIF($10, ''))
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		artist.Name,
		artist.City,
		artist.State,
		artist.Phone,
		pq.Array(nonNilGenres(artist.Genres)),
		artist.FacebookLink,
		artist.ImageLink,
		artist.WebsiteLink,
		artist.SeekingVenue,
		artist.SeekingDescription,
	).Scan(&artist.ID)
	if err != nil {
		return fmt.Errorf("create artist: %w", err)
	}
	return nil
}

func (r *artistRepository) GetByID(ctx context.Context, id int) (*models.Artist, error) {
	query := `
		SELECT id, name, city, state, COALESCE(phone, ''), genres,
			COALESCE(facebook_link, ''), COALESCE(image_link, ''), COALESCE(website_link, ''),
			seeking_venue, COALESCE(seeking_description, '')
		FROM artists
		WHERE id = $1
	`

	var artist models.Artist
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&artist.ID,
		&artist.Name,
		&artist.City,
		&artist.State,
		&artist.Phone,
		pq.Array(&artist.Genres),
		&artist.FacebookLink,
		&artist.ImageLink,
		&artist.WebsiteLink,
		&artist.SeekingVenue,
		&artist.SeekingDescription,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		return nil, fmt.Errorf("get artist by id: %w", err)
	}

	artist.Genres = nonNilGenres(artist.Genres)
	return &artist, nil
}

// Update replaces every mutable column of the artist.
func (r *artistRepository) Update(ctx context.Context, artist *models.Artist) error {
	query := `
		UPDATE artists
		SET name = $1,
			city = $2,
			state = $3,
			phone = NULLIF($4, ''),
			genres = $5,
			facebook_link = NULLIF($6, ''),
			image_link = NULLIF($7, ''),
			website_link = NULLIF($8, ''),
			seeking_venue = $9,
			seeking_description = NULLIF($10, '')
		WHERE id = $11
	`

	result, err := r.db.ExecContext(ctx, query,
		artist.Name,
		artist.City,
		artist.State,
		artist.Phone,
		pq.Array(nonNilGenres(artist.Genres)),
		artist.FacebookLink,
		artist.ImageLink,
		artist.WebsiteLink,
		artist.SeekingVenue,
		artist.SeekingDescription,
		artist.ID,
	)
	if err != nil {
		return fmt.Errorf("update artist: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *artistRepository) List(ctx context.Context) ([]models.ArtistSummary, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM artists ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("list artists: %w", err)
	}
	defer rows.Close()

	artists := []models.ArtistSummary{}
	for rows.Next() {
		var a models.ArtistSummary
		if err := rows.Scan(&a.ID, &a.Name); err != nil {
			return nil, fmt.Errorf("scan artist: %w", err)
		}
		artists = append(artists, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list artists: %w", err)
	}
	return artists, nil
}

func (r *artistRepository) SearchByName(ctx context.Context, term string, now time.Time) ([]models.ArtistSummary, error) {
	query := `
		SELECT a.id, a.name,
			COUNT(s.id) FILTER (WHERE s.start_time > $1) AS num_upcoming_shows
		FROM artists a
		LEFT JOIN shows s ON s.artist_id = a.id
		WHERE a.name ILIKE $2
		GROUP BY a.id
		ORDER BY a.name, a.id
	`

	rows, err := r.db.QueryContext(ctx, query, now, containsPattern(term))
	if err != nil {
		return nil, fmt.Errorf("search artists: %w", err)
	}
	defer rows.Close()

	artists := []models.ArtistSummary{}
	for rows.Next() {
		var a models.ArtistSummary
		if err := rows.Scan(&a.ID, &a.Name, &a.NumUpcomingShows); err != nil {
			return nil, fmt.Errorf("scan artist: %w", err)
		}
		artists = append(artists, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("search artists: %w", err)
	}
	return artists, nil
}
