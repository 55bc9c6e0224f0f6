package views

import (
	"time"

	"fyyur/internal/models"
)

// Page is what every template receives.
type Page struct {
	Title   string
	Flashes []string
	Data    any
}

// ShowCard is one show on a venue or artist page.
type ShowCard struct {
	ID        int
	Name      string
	ImageLink string
	StartTime string
}

type VenuePage struct {
	ID                 int
	Name               string
	Genres             []string
	Address            string
	City               string
	State              string
	Phone              string
	Website            string
	FacebookLink       string
	SeekingTalent      bool
	SeekingDescription string
	ImageLink          string
	PastShows          []ShowCard
	UpcomingShows      []ShowCard
	PastShowsCount     int
	UpcomingShowsCount int
}

func NewVenuePage(d *models.VenueDetail, loc *time.Location) VenuePage {
	return VenuePage{
		ID:                 d.ID,
		Name:               d.Name,
		Genres:             d.Genres,
		Address:            d.Address,
		City:               d.City,
		State:              d.State,
		Phone:              d.Phone,
		Website:            d.WebsiteLink,
		FacebookLink:       d.FacebookLink,
		SeekingTalent:      d.SeekingTalent,
		SeekingDescription: d.SeekingDescription,
		ImageLink:          d.ImageLink,
		PastShows:          showCards(d.PastShows, loc),
		UpcomingShows:      showCards(d.UpcomingShows, loc),
		PastShowsCount:     d.PastShowsCount,
		UpcomingShowsCount: d.UpcomingShowsCount,
	}
}

type ArtistPage struct {
	ID                 int
	Name               string
	Genres             []string
	City               string
	State              string
	Phone              string
	Website            string
	FacebookLink       string
	SeekingVenue       bool
	SeekingDescription string
	ImageLink          string
	PastShows          []ShowCard
	UpcomingShows      []ShowCard
	PastShowsCount     int
	UpcomingShowsCount int
}

func NewArtistPage(d *models.ArtistDetail, loc *time.Location) ArtistPage {
	return ArtistPage{
		ID:                 d.ID,
		Name:               d.Name,
		Genres:             d.Genres,
		City:               d.City,
		State:              d.State,
		Phone:              d.Phone,
		Website:            d.WebsiteLink,
		FacebookLink:       d.FacebookLink,
		SeekingVenue:       d.SeekingVenue,
		SeekingDescription: d.SeekingDescription,
		ImageLink:          d.ImageLink,
		PastShows:          showCards(d.PastShows, loc),
		UpcomingShows:      showCards(d.UpcomingShows, loc),
		PastShowsCount:     d.PastShowsCount,
		UpcomingShowsCount: d.UpcomingShowsCount,
	}
}

// Detail pages use the full format.
func showCards(shows []models.Appearance, loc *time.Location) []ShowCard {
	cards := make([]ShowCard, 0, len(shows))
	for _, s := range shows {
		cards = append(cards, ShowCard{
			ID:        s.CounterpartID,
			Name:      s.CounterpartName,
			ImageLink: s.CounterpartImageLink,
			StartTime: FormatDateTime(s.StartTime, "full", loc),
		})
	}
	return cards
}

type ShowRow struct {
	VenueID         int
	VenueName       string
	ArtistID        int
	ArtistName      string
	ArtistImageLink string
	StartTime       string
}

func NewShowRows(shows []models.ShowListing, loc *time.Location) []ShowRow {
	rows := make([]ShowRow, 0, len(shows))
	for _, s := range shows {
		rows = append(rows, ShowRow{
			VenueID:         s.VenueID,
			VenueName:       s.VenueName,
			ArtistID:        s.ArtistID,
			ArtistName:      s.ArtistName,
			ArtistImageLink: s.ArtistImageLink,
			StartTime:       FormatDateTime(s.StartTime, "medium", loc),
		})
	}
	return rows
}

// SearchPage backs both search result pages.
type SearchPage[T any] struct {
	SearchTerm string
	Results    models.SearchResult[T]
}

// FormPage backs the create and edit forms. Errors is keyed by form field
// name.
type FormPage struct {
	Action string
	ID     int
	Form   any
	Errors map[string]string
	States []string
	Genres []string
}

func NewFormPage(action string, form any, errs map[string]string) FormPage {
	if errs == nil {
		errs = map[string]string{}
	}
	return FormPage{
		Action: action,
		Form:   form,
		Errors: errs,
		States: models.States,
		Genres: models.Genres,
	}
}
