package models

type Artist struct {
	ID                 int      `json:"id" db:"id"`
	Name               string   `json:"name" db:"name"`
	City               string   `json:"city" db:"city"`
	State              string   `json:"state" db:"state"`
	Phone              string   `json:"phone" db:"phone"`
	Genres             []string `json:"genres" db:"genres"`
	FacebookLink       string   `json:"facebook_link" db:"facebook_link"`
	ImageLink          string   `json:"image_link" db:"image_link"`
	WebsiteLink        string   `json:"website" db:"website_link"`
	SeekingVenue       bool     `json:"seeking_venue" db:"seeking_venue"`
	SeekingDescription string   `json:"seeking_description" db:"seeking_description"`
}

type ArtistSummary struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

type ArtistDetail struct {
	Artist
	PastShows          []Appearance `json:"past_shows"`
	UpcomingShows      []Appearance `json:"upcoming_shows"`
	PastShowsCount     int          `json:"past_shows_count"`
	UpcomingShowsCount int          `json:"upcoming_shows_count"`
}
