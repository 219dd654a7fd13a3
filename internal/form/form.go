package form

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// startTimeLayout is the format the show form's datetime field submits.
const startTimeLayout = "2006-01-02 15:04:05"

// VenueForm carries the validated fields of the venue create/edit form.
type VenueForm struct {
	Name               string   `validate:"required"`
	City               string   `validate:"required,max=120"`
	State              string   `validate:"required,usstate"`
	Address            string   `validate:"required,max=120"`
	Phone              string   `validate:"required,phone"`
	ImageLink          string   `validate:"required,url,max=500"`
	FacebookLink       string   `validate:"required,url,max=120"`
	Website            string   `validate:"required,url,max=120"`
	Genres             []string `validate:"required,min=1,dive,genre"`
	SeekingTalent      bool
	SeekingDescription string `validate:"max=500"`
}

// ArtistForm carries the validated fields of the artist create/edit form.
type ArtistForm struct {
	Name               string   `validate:"required"`
	City               string   `validate:"required,max=120"`
	State              string   `validate:"required,usstate"`
	Phone              string   `validate:"required,phone"`
	ImageLink          string   `validate:"required,url,max=500"`
	FacebookLink       string   `validate:"required,url,max=120"`
	Website            string   `validate:"required,url,max=120"`
	Genres             []string `validate:"required,min=1,dive,genre"`
	SeekingVenue       bool
	SeekingDescription string `validate:"max=500"`
}

// ShowForm carries the validated fields of the show booking form.
type ShowForm struct {
	VenueID   uint64 `validate:"required,gt=0"`
	ArtistID  uint64 `validate:"required,gt=0"`
	StartTime time.Time
}

// ParseVenueForm builds a VenueForm from raw POST values and validates it.
func ParseVenueForm(values url.Values) (*VenueForm, error) {
	f := &VenueForm{
		Name:               strings.TrimSpace(values.Get("name")),
		City:               strings.TrimSpace(values.Get("city")),
		State:              strings.TrimSpace(values.Get("state")),
		Address:            strings.TrimSpace(values.Get("address")),
		Phone:              strings.TrimSpace(values.Get("phone")),
		ImageLink:          strings.TrimSpace(values.Get("image_link")),
		FacebookLink:       strings.TrimSpace(values.Get("facebook_link")),
		Website:            strings.TrimSpace(values.Get("website")),
		Genres:             values["genres"],
		SeekingTalent:      parseCheckbox(values.Get("seeking_talent")),
		SeekingDescription: strings.TrimSpace(values.Get("seeking_description")),
	}
	if err := checkStruct(f); err != nil {
		return nil, err
	}
	return f, nil
}

// ParseArtistForm builds an ArtistForm from raw POST values and validates it.
func ParseArtistForm(values url.Values) (*ArtistForm, error) {
	f := &ArtistForm{
		Name:               strings.TrimSpace(values.Get("name")),
		City:               strings.TrimSpace(values.Get("city")),
		State:              strings.TrimSpace(values.Get("state")),
		Phone:              strings.TrimSpace(values.Get("phone")),
		ImageLink:          strings.TrimSpace(values.Get("image_link")),
		FacebookLink:       strings.TrimSpace(values.Get("facebook_link")),
		Website:            strings.TrimSpace(values.Get("website")),
		Genres:             values["genres"],
		SeekingVenue:       parseCheckbox(values.Get("seeking_venue")),
		SeekingDescription: strings.TrimSpace(values.Get("seeking_description")),
	}
	if err := checkStruct(f); err != nil {
		return nil, err
	}
	return f, nil
}

// ParseShowForm builds a ShowForm from raw POST values and validates it.
// The start time must parse with startTimeLayout; the ids must be positive
// integers. Whether they reference existing rows is the store's call.
func ParseShowForm(values url.Values) (*ShowForm, error) {
	venueID, err := parseID(values.Get("venue_id"), "venue_id")
	if err != nil {
		return nil, err
	}
	artistID, err := parseID(values.Get("artist_id"), "artist_id")
	if err != nil {
		return nil, err
	}
	raw := strings.TrimSpace(values.Get("start_time"))
	if raw == "" {
		return nil, fmt.Errorf("start_time is required")
	}
	start, err := time.Parse(startTimeLayout, raw)
	if err != nil {
		return nil, fmt.Errorf("start_time must look like %s", startTimeLayout)
	}
	f := &ShowForm{VenueID: venueID, ArtistID: artistID, StartTime: start}
	if err := checkStruct(f); err != nil {
		return nil, err
	}
	return f, nil
}

// parseCheckbox maps the checkbox literals: "on" is true, "off" and absence
// are false.
func parseCheckbox(v string) bool {
	return v == "on"
}

func parseID(v, field string) (uint64, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, fmt.Errorf("%s is required", field)
	}
	id, err := strconv.ParseUint(v, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%s must be a positive id", field)
	}
	return id, nil
}
