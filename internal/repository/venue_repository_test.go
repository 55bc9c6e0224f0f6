package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"

	"fyyur/internal/interfaces"
	"fyyur/internal/models"
)

var venueRowColumns = []string{
	"id", "name", "city", "state", "address", "phone", "genres",
	"facebook_link", "image_link", "website_link", "seeking_talent", "seeking_description",
}

func TestVenueCreateReturnsID(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer conn.Close()

	mock.ExpectQuery("INSERT INTO venues").
		WithArgs("The Hop", "SF", "CA", "1 Main St", "", sqlmock.AnyArg(), "", "", "", false, "").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	venue := &models.Venue{Name: "The Hop", City: "SF", State: "CA", Address: "1 Main St"}
	if err := NewVenueRepository(conn).Create(context.Background(), venue); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if venue.ID != 7 {
		t.Fatalf("expected id 7, got %d", venue.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestVenueCreateWrapsDriverError(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer conn.Close()

	mock.ExpectQuery("INSERT INTO venues").WillReturnError(sql.ErrConnDone)

	err = NewVenueRepository(conn).Create(context.Background(), &models.Venue{Name: "x"})
	if !errors.Is(err, sql.ErrConnDone) {
		t.Fatalf("expected wrapped ErrConnDone, got %v", err)
	}
}

func TestVenueGetByIDParsesGenres(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer conn.Close()

	mock.ExpectQuery("FROM venues WHERE id = \\$1").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(venueRowColumns).
			AddRow(1, "The Hop", "SF", "CA", "1 Main St", "", "{Jazz,Reggae}", "", "", "https://hop.example", true, "Looking"))

	venue, err := NewVenueRepository(conn).GetByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if len(venue.Genres) != 2 || venue.Genres[0] != "Jazz" || venue.Genres[1] != "Reggae" {
		t.Fatalf("unexpected genres %#v", venue.Genres)
	}
	if venue.WebsiteLink != "https://hop.example" || !venue.SeekingTalent {
		t.Fatalf("unexpected venue %+v", venue)
	}
}

func TestVenueGetByIDNotFound(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer conn.Close()

	mock.ExpectQuery("FROM venues WHERE id").WithArgs(99).WillReturnRows(sqlmock.NewRows(venueRowColumns))

	_, err = NewVenueRepository(conn).GetByID(context.Background(), 99)
	if !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows, got %v", err)
	}
}

func TestVenueUpdateMissingReturnsNoRows(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer conn.Close()

	mock.ExpectExec("UPDATE venues").WillReturnResult(sqlmock.NewResult(0, 0))

	err = NewVenueRepository(conn).Update(context.Background(), &models.Venue{ID: 5, Name: "x"})
	if !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows, got %v", err)
	}
}

func TestVenueDeleteBlockedByShows(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer conn.Close()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM shows WHERE venue_id").
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	err = NewVenueRepository(conn).Delete(context.Background(), 3)
	var blocked *interfaces.DeletionBlockedError
	if !errors.As(err, &blocked) {
		t.Fatalf("expected DeletionBlockedError, got %v", err)
	}
	if blocked.References["shows"] != 2 {
		t.Fatalf("expected 2 show references, got %+v", blocked.References)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestVenueDeleteMissingReturnsNoRows(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer conn.Close()

	mock.ExpectQuery("SELECT COUNT").WithArgs(4).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec("DELETE FROM venues").WithArgs(4).WillReturnResult(sqlmock.NewResult(0, 0))

	err = NewVenueRepository(conn).Delete(context.Background(), 4)
	if !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows, got %v", err)
	}
}

func TestVenueSearchEscapesWildcards(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer conn.Close()

	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery("WHERE v.name ILIKE \\$2").
		WithArgs(now, `%50\% off\_%`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "city", "state", "num_upcoming_shows"}).
			AddRow(1, "50% off_club", "SF", "CA", 3))

	venues, err := NewVenueRepository(conn).SearchByName(context.Background(), "50% off_", now)
	if err != nil {
		t.Fatalf("SearchByName: %v", err)
	}
	if len(venues) != 1 || venues[0].NumUpcomingShows != 3 {
		t.Fatalf("unexpected venues %+v", venues)
	}
}

func TestContainsPattern(t *testing.T) {
	cases := map[string]string{
		"":        "%%",
		"hop":     "%hop%",
		`a\b`:     `%a\\b%`,
		"100%":    `%100\%%`,
		"under_s": `%under\_s%`,
	}
	for in, want := range cases {
		if got := containsPattern(in); got != want {
			t.Fatalf("containsPattern(%q) = %q, want %q", in, got, want)
		}
	}
}
