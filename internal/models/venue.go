package models

type Venue struct {
	ID                 int      `json:"id" db:"id"`
	Name               string   `json:"name" db:"name"`
	City               string   `json:"city" db:"city"`
	State              string   `json:"state" db:"state"`
	Address            string   `json:"address" db:"address"`
	Phone              string   `json:"phone" db:"phone"`
	Genres             []string `json:"genres" db:"genres"`
	FacebookLink       string   `json:"facebook_link" db:"facebook_link"`
	ImageLink          string   `json:"image_link" db:"image_link"`
	WebsiteLink        string   `json:"website" db:"website_link"`
	SeekingTalent      bool     `json:"seeking_talent" db:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description" db:"seeking_description"`
}

// VenueSummary is a venue annotated with its live upcoming show count.
type VenueSummary struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	City             string `json:"-"`
	State            string `json:"-"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// Area groups the venues sharing one (city, state) pair.
type Area struct {
	City   string         `json:"city"`
	State  string         `json:"state"`
	Venues []VenueSummary `json:"venues"`
}

// VenueDetail is a venue with its shows split around the query instant.
type VenueDetail struct {
	Venue
	PastShows          []Appearance `json:"past_shows"`
	UpcomingShows      []Appearance `json:"upcoming_shows"`
	PastShowsCount     int          `json:"past_shows_count"`
	UpcomingShowsCount int          `json:"upcoming_shows_count"`
}
