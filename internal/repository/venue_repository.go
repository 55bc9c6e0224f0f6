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

type venueRepository struct {
	db db.DBTX
}

func NewVenueRepository(conn db.DBTX) interfaces.VenueRepository {
	return &venueRepository{db: conn}
}

const venueColumns = `id, name, city, state, address, COALESCE(phone, ''), genres,
	COALESCE(facebook_link, ''), COALESCE(image_link, ''), COALESCE(website_link, ''),
	seeking_talent, COALESCE(seeking_description, '')`

func (r *venueRepository) Create(ctx context.Context, venue *models.Venue) error {
	query := `
		INSERT INTO venues (
			name, city, state, address, phone, genres, facebook_link,
			image_link, website_link, seeking_talent, seeking_description
		) VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, NULLIF($7, ''), NULLIF($8, ''), NULLIF($9, ''), $10, NULLIF($11, ''))
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		venue.Name,
		venue.City,
		venue.State,
		venue.Address,
		venue.Phone,
		pq.Array(nonNilGenres(venue.Genres)),
		venue.FacebookLink,
		venue.ImageLink,
		venue.WebsiteLink,
		venue.SeekingTalent,
		venue.SeekingDescription,
	).Scan(&venue.ID)
	if err != nil {
		return fmt.Errorf("create venue: %w", err)
	}
	return nil
}

func (r *venueRepository) GetByID(ctx context.Context, id int) (*models.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues WHERE id = $1`

	var venue models.Venue
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&venue.ID,
		&venue.Name,
		&venue.City,
		&venue.State,
		&venue.Address,
		&venue.Phone,
		pq.Array(&venue.Genres),
		&venue.FacebookLink,
		&venue.ImageLink,
		&venue.WebsiteLink,
		&venue.SeekingTalent,
		&venue.SeekingDescription,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		return nil, fmt.Errorf("get venue by id: %w", err)
	}

	venue.Genres = nonNilGenres(venue.Genres)
	return &venue, nil
}

// Update replaces every mutable column of the venue.
func (r *venueRepository) Update(ctx context.Context, venue *models.Venue) error {
	query := `
		UPDATE venues
		SET name = $1,
			city = $2,
			state = $3,
			address = $4,
			phone = NULLIF($5, ''),
			genres = $6,
			facebook_link = NULLIF($7, ''),
			image_link = NULLIF($8, ''),
			website_link = NULLIF($9, ''),
			seeking_talent = $10,
			seeking_description = NULLIF($11, '')
		WHERE id = $12
	`

	result, err := r.db.ExecContext(ctx, query,
		venue.Name,
		venue.City,
		venue.State,
		venue.Address,
		venue.Phone,
		pq.Array(nonNilGenres(venue.Genres)),
		venue.FacebookLink,
		venue.ImageLink,
		venue.WebsiteLink,
		venue.SeekingTalent,
		venue.SeekingDescription,
		venue.ID,
	)
	if err != nil {
		return fmt.Errorf("update venue: %w", err)
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

// Delete refuses to remove a venue that still has shows.
func (r *venueRepository) Delete(ctx context.Context, id int) error {
	var showCount int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM shows WHERE venue_id = $1`, id).Scan(&showCount); err != nil {
		return fmt.Errorf("check venue references: %w", err)
	}
	if showCount > 0 {
		return &interfaces.DeletionBlockedError{
			Resource: "venue",
			References: map[string]int64{
				"shows": showCount,
			},
		}
	}

	result, err := r.db.ExecContext(ctx, `DELETE FROM venues WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete venue: %w", err)
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

func (r *venueRepository) ListWithUpcoming(ctx context.Context, now time.Time) ([]models.VenueSummary, error) {
	query := `
		SELECT v.id, v.name, v.city, v.state,
			COUNT(s.id) FILTER (WHERE s.start_time > $1) AS num_upcoming_shows
		FROM venues v
		LEFT JOIN shows s ON s.venue_id = v.id
		GROUP BY v.id
		ORDER BY v.state, v.city, v.name, v.id
	`
	return r.querySummaries(ctx, "list venues", query, now)
}

func (r *venueRepository) SearchByName(ctx context.Context, term string, now time.Time) ([]models.VenueSummary, error) {
	query := `
		SELECT v.id, v.name, v.city, v.state,
			COUNT(s.id) FILTER (WHERE s.start_time > $1) AS num_upcoming_shows
		FROM venues v
		LEFT JOIN shows s ON s.venue_id = v.id
		WHERE v.name ILIKE $2
		GROUP BY v.id
		ORDER BY v.name, v.id
	`
	return r.querySummaries(ctx, "search venues", query, now, containsPattern(term))
}

func (r *venueRepository) querySummaries(ctx context.Context, op string, query string, args ...any) ([]models.VenueSummary, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	venues := []models.VenueSummary{}
	for rows.Next() {
		var v models.VenueSummary
		if err := rows.Scan(&v.ID, &v.Name, &v.City, &v.State, &v.NumUpcomingShows); err != nil {
			return nil, fmt.Errorf("scan venue: %w", err)
		}
		venues = append(venues, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return venues, nil
}
