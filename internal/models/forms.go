package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// VenueForm is a venue create/edit submission. Every field is always
// present: an edit replaces the whole row.
type VenueForm struct {
	Name               string   `form:"name" validate:"required,max=70"`
	City               string   `form:"city" validate:"required,max=120"`
	State              string   `form:"state" validate:"required,state"`
	Address            string   `form:"address" validate:"required,max=120"`
	Phone              string   `form:"phone" validate:"omitempty,phone,max=120"`
	Genres             []string `form:"genres" validate:"required,min=1,dive,genre"`
	FacebookLink       string   `form:"facebook_link" validate:"omitempty,url,max=120"`
	ImageLink          string   `form:"image_link" validate:"omitempty,url,max=500"`
	WebsiteLink        string   `form:"website_link" validate:"omitempty,url,max=120"`
	SeekingTalent      bool     `form:"seeking_talent"`
	SeekingDescription string   `form:"seeking_description" validate:"max=500"`
}

func (f VenueForm) Venue() Venue {
	return Venue{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Address:            f.Address,
		Phone:              f.Phone,
		Genres:             f.Genres,
		FacebookLink:       f.FacebookLink,
		ImageLink:          f.ImageLink,
		WebsiteLink:        f.WebsiteLink,
		SeekingTalent:      f.SeekingTalent,
		SeekingDescription: f.SeekingDescription,
	}
}

func VenueFormFrom(v Venue) VenueForm {
	return VenueForm{
		Name:               v.Name,
		City:               v.City,
		State:              v.State,
		Address:            v.Address,
		Phone:              v.Phone,
		Genres:             v.Genres,
		FacebookLink:       v.FacebookLink,
		ImageLink:          v.ImageLink,
		WebsiteLink:        v.WebsiteLink,
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
	}
}

type ArtistForm struct {
	Name               string   `form:"name" validate:"required,max=70"`
	City               string   `form:"city" validate:"required,max=120"`
	State              string   `form:"state" validate:"required,state"`
	Phone              string   `form:"phone" validate:"omitempty,phone,max=120"`
	Genres             []string `form:"genres" validate:"required,min=1,dive,genre"`
	FacebookLink       string   `form:"facebook_link" validate:"omitempty,url,max=120"`
	ImageLink          string   `form:"image_link" validate:"omitempty,url,max=500"`
	WebsiteLink        string   `form:"website_link" validate:"omitempty,url,max=120"`
	SeekingVenue       bool     `form:"seeking_venue"`
	SeekingDescription string   `form:"seeking_description" validate:"max=500"`
}

func (f ArtistForm) Artist() Artist {
	return Artist{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Phone:              f.Phone,
		Genres:             f.Genres,
		FacebookLink:       f.FacebookLink,
		ImageLink:          f.ImageLink,
		WebsiteLink:        f.WebsiteLink,
		SeekingVenue:       f.SeekingVenue,
		SeekingDescription: f.SeekingDescription,
	}
}

func ArtistFormFrom(a Artist) ArtistForm {
	return ArtistForm{
		Name:               a.Name,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		Genres:             a.Genres,
		FacebookLink:       a.FacebookLink,
		ImageLink:          a.ImageLink,
		WebsiteLink:        a.WebsiteLink,
		SeekingVenue:       a.SeekingVenue,
		SeekingDescription: a.SeekingDescription,
	}
}

// ShowForm keeps the raw submitted strings so an invalid submission can be
// shown back unchanged.
type ShowForm struct {
	ArtistID  string `form:"artist_id" validate:"required,number"`
	VenueID   string `form:"venue_id" validate:"required,number"`
	StartTime string `form:"start_time" validate:"required,showtime"`
}

// ShowTimeLayouts are the accepted start_time inputs, tried in order. The
// first matches the original form default; the second is what an HTML
// datetime-local input submits.
var ShowTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	time.RFC3339,
}

// ParseShowTime parses a submitted start time. Inputs without an offset
// are read in loc.
func ParseShowTime(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range ShowTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid start time %q", s)
}

func (f ShowForm) Show(loc *time.Location) (Show, error) {
	artistID, err := strconv.Atoi(f.ArtistID)
	if err != nil {
		return Show{}, fmt.Errorf("invalid artist id %q: %w", f.ArtistID, err)
	}
	venueID, err := strconv.Atoi(f.VenueID)
	if err != nil {
		return Show{}, fmt.Errorf("invalid venue id %q: %w", f.VenueID, err)
	}
	start, err := ParseShowTime(f.StartTime, loc)
	if err != nil {
		return Show{}, err
	}
	return Show{ArtistID: artistID, VenueID: venueID, StartTime: start.UTC()}, nil
}
