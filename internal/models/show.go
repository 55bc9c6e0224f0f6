package models

import "time"

type Show struct {
	ID        int       `json:"id" db:"id"`
	VenueID   int       `json:"venue_id" db:"venue_id"`
	ArtistID  int       `json:"artist_id" db:"artist_id"`
	StartTime time.Time `json:"start_time" db:"start_time"`
}

// Appearance is one show seen from a venue or an artist page: the
// counterpart is the artist on a venue page and the venue on an artist page.
type Appearance struct {
	ShowID               int       `json:"-"`
	CounterpartID        int       `json:"counterpart_id"`
	CounterpartName      string    `json:"counterpart_name"`
	CounterpartImageLink string    `json:"counterpart_image_link"`
	StartTime            time.Time `json:"start_time"`
}

// ShowListing is a show joined with its venue and artist.
type ShowListing struct {
	ID              int       `json:"id"`
	VenueID         int       `json:"venue_id"`
	VenueName       string    `json:"venue_name"`
	ArtistID        int       `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

// SplitAppearances partitions shows around now. A show starting exactly at
// now is neither past nor upcoming.
func SplitAppearances(shows []Appearance, now time.Time) (past, upcoming []Appearance) {
	past = []Appearance{}
	upcoming = []Appearance{}
	for _, s := range shows {
		switch {
		case s.StartTime.Before(now):
			past = append(past, s)
		case s.StartTime.After(now):
			upcoming = append(upcoming, s)
		}
	}
	return past, upcoming
}
