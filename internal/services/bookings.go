package services

import (
	"context"
	"database/sql"

	"fyyur/internal/db"
	"fyyur/internal/interfaces"
	"fyyur/internal/models"
	"fyyur/internal/repository"
)

// Bookings performs every write in its own transaction: the whole
// operation commits or nothing does.
type Bookings struct {
	db *sql.DB
}

var _ interfaces.Bookings = (*Bookings)(nil)

func NewBookings(conn *sql.DB) *Bookings {
	return &Bookings{db: conn}
}

func (b *Bookings) CreateVenue(ctx context.Context, venue *models.Venue) error {
	err := db.WithTx(ctx, b.db, func(tx *sql.Tx) error {
		return repository.NewVenueRepository(tx).Create(ctx, venue)
	})
	return mutationErr("create", "venue", err)
}

// UpdateVenue replaces every mutable field of an existing venue.
func (b *Bookings) UpdateVenue(ctx context.Context, venue *models.Venue) error {
	err := db.WithTx(ctx, b.db, func(tx *sql.Tx) error {
		repo := repository.NewVenueRepository(tx)
		if _, err := repo.GetByID(ctx, venue.ID); err != nil {
			return err
		}
		return repo.Update(ctx, venue)
	})
	return mutationErr("update", "venue", err)
}

// DeleteVenue removes a venue with no shows. A venue that still hosts
// shows yields *interfaces.DeletionBlockedError and is left untouched.
func (b *Bookings) DeleteVenue(ctx context.Context, id int) error {
	err := db.WithTx(ctx, b.db, func(tx *sql.Tx) error {
		repo := repository.NewVenueRepository(tx)
		if _, err := repo.GetByID(ctx, id); err != nil {
			return err
		}
		return repo.Delete(ctx, id)
	})
	return mutationErr("delete", "venue", err)
}

func (b *Bookings) CreateArtist(ctx context.Context, artist *models.Artist) error {
	err := db.WithTx(ctx, b.db, func(tx *sql.Tx) error {
		return repository.NewArtistRepository(tx).Create(ctx, artist)
	})
	return mutationErr("create", "artist", err)
}

func (b *Bookings) UpdateArtist(ctx context.Context, artist *models.Artist) error {
	err := db.WithTx(ctx, b.db, func(tx *sql.Tx) error {
		repo := repository.NewArtistRepository(tx)
		if _, err := repo.GetByID(ctx, artist.ID); err != nil {
			return err
		}
		return repo.Update(ctx, artist)
	})
	return mutationErr("update", "artist", err)
}

func (b *Bookings) CreateShow(ctx context.Context, show *models.Show) error {
	err := db.WithTx(ctx, b.db, func(tx *sql.Tx) error {
		return repository.NewShowRepository(tx).Create(ctx, show)
	})
	return mutationErr("create", "show", err)
}
