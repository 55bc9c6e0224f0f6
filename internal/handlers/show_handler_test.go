package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"fyyur/internal/models"
)

func TestShowListUsesMediumFormat(t *testing.T) {
	dir := &mockDirectory{shows: []models.ShowListing{{
		ID:         1,
		VenueID:    1,
		VenueName:  "The Musical Hop",
		ArtistID:   2,
		ArtistName: "Guns N Petals",
		StartTime:  time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC),
	}}}
	r := newTestRouter(t, dir, &mockBookings{}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/shows", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	body := w.Body.String()
	if strings.Count(body, `class="show"`) != 1 {
		t.Fatalf("expected exactly one show row")
	}
	for _, want := range []string{"The Musical Hop", "Guns N Petals", "Tue 05, 21, 2019 9:30PM"} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %q in body", want)
		}
	}
}

func TestShowCreateFormDefaultsToNow(t *testing.T) {
	r := newTestRouter(t, &mockDirectory{}, &mockBookings{}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/shows/create", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `value="2024-06-01 20:00:00"`) {
		t.Fatalf("expected start_time default")
	}
}

func TestShowCreateSuccess(t *testing.T) {
	book := &mockBookings{}
	r := newTestRouter(t, &mockDirectory{}, book, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, postForm("/shows/create", url.Values{
		"artist_id":  {"2"},
		"venue_id":   {"1"},
		"start_time": {"2019-05-21 21:30:00"},
	}))

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303 got %d (%s)", w.Code, w.Body.String())
	}
	if got := flashFrom(t, w); got != "Show was successfully listed!" {
		t.Fatalf("unexpected flash %q", got)
	}
	if len(book.shows) != 1 {
		t.Fatalf("expected one show")
	}
	show := book.shows[0]
	if show.ArtistID != 2 || show.VenueID != 1 || !show.StartTime.Equal(time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)) {
		t.Fatalf("unexpected show %+v", show)
	}
}

func TestShowCreateInvalidInput(t *testing.T) {
	book := &mockBookings{}
	r := newTestRouter(t, &mockDirectory{}, book, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, postForm("/shows/create", url.Values{
		"artist_id":  {"two"},
		"venue_id":   {"1"},
		"start_time": {"tomorrow night"},
	}))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{showFailed, "Must be a number.", "Not a valid datetime value."} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %q in body", want)
		}
	}
	if len(book.shows) != 0 {
		t.Fatalf("invalid show reached bookings")
	}
}

func TestShowCreateUnknownArtistFlashesGenericError(t *testing.T) {
	book := &mockBookings{err: errors.New("create show: pq: insert or update on table \"shows\" violates foreign key constraint")}
	r := newTestRouter(t, &mockDirectory{}, book, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, postForm("/shows/create", url.Values{
		"artist_id":  {"999"},
		"venue_id":   {"1"},
		"start_time": {"2019-05-21 21:30:00"},
	}))

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303 got %d", w.Code)
	}
	if got := flashFrom(t, w); got != showFailed {
		t.Fatalf("unexpected flash %q", got)
	}
}
