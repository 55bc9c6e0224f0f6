package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"fyyur/internal/interfaces"
	"fyyur/internal/models"
	"fyyur/internal/repository"
)

// Directory answers the read-only views. Counts and the past/upcoming split
// are computed on every read against Now.
type Directory struct {
	venues  interfaces.VenueRepository
	artists interfaces.ArtistRepository
	shows   interfaces.ShowRepository

	Now func() time.Time
}

var _ interfaces.Directory = (*Directory)(nil)

func NewDirectory(db *sql.DB) *Directory {
	return &Directory{
		venues:  repository.NewVenueRepository(db),
		artists: repository.NewArtistRepository(db),
		shows:   repository.NewShowRepository(db),
		Now:     time.Now,
	}
}

// VenuesByArea groups venues by (city, state). Areas arrive ordered by
// state then city and venues by name, so grouping is a single pass.
func (d *Directory) VenuesByArea(ctx context.Context) ([]models.Area, error) {
	venues, err := d.venues.ListWithUpcoming(ctx, d.Now())
	if err != nil {
		return nil, err
	}

	areas := []models.Area{}
	index := map[[2]string]int{}
	for _, v := range venues {
		key := [2]string{v.City, v.State}
		i, ok := index[key]
		if !ok {
			i = len(areas)
			index[key] = i
			areas = append(areas, models.Area{City: v.City, State: v.State})
		}
		areas[i].Venues = append(areas[i].Venues, v)
	}
	return areas, nil
}

func (d *Directory) SearchVenues(ctx context.Context, term string) (models.SearchResult[models.VenueSummary], error) {
	venues, err := d.venues.SearchByName(ctx, term, d.Now())
	if err != nil {
		return models.SearchResult[models.VenueSummary]{}, err
	}
	return models.NewSearchResult(venues), nil
}

func (d *Directory) Venue(ctx context.Context, id int) (*models.VenueDetail, error) {
	venue, err := d.venues.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	shows, err := d.shows.ListByVenue(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("venue %d shows: %w", id, err)
	}

	past, upcoming := models.SplitAppearances(shows, d.Now())
	return &models.VenueDetail{
		Venue:              *venue,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

func (d *Directory) Artists(ctx context.Context) ([]models.ArtistSummary, error) {
	return d.artists.List(ctx)
}

func (d *Directory) SearchArtists(ctx context.Context, term string) (models.SearchResult[models.ArtistSummary], error) {
	artists, err := d.artists.SearchByName(ctx, term, d.Now())
	if err != nil {
		return models.SearchResult[models.ArtistSummary]{}, err
	}
	return models.NewSearchResult(artists), nil
}

func (d *Directory) Artist(ctx context.Context, id int) (*models.ArtistDetail, error) {
	artist, err := d.artists.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	shows, err := d.shows.ListByArtist(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("artist %d shows: %w", id, err)
	}

	past, upcoming := models.SplitAppearances(shows, d.Now())
	return &models.ArtistDetail{
		Artist:             *artist,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

func (d *Directory) Shows(ctx context.Context) ([]models.ShowListing, error) {
	return d.shows.ListAll(ctx)
}
