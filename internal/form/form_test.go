package form

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validVenueValues() url.Values {
	return url.Values{
		"name":                {"The Musical Hop"},
		"city":                {"San Francisco"},
		"state":               {"CA"},
		"address":             {"1015 Folsom Street"},
		"phone":               {"123-123-1234"},
		"image_link":          {"https://example.com/hop.jpg"},
		"facebook_link":       {"https://facebook.com/themusicalhop"},
		"website":             {"https://themusicalhop.com"},
		"genres":              {"Jazz", "Reggae"},
		"seeking_talent":      {"on"},
		"seeking_description": {"We are on the lookout for a local artist."},
	}
}

func validArtistValues() url.Values {
	return url.Values{
		"name":          {"Guns N Petals"},
		"city":          {"San Francisco"},
		"state":         {"CA"},
		"phone":         {"326-123-5000"},
		"image_link":    {"https://example.com/gnp.jpg"},
		"facebook_link": {"https://facebook.com/gunsnpetals"},
		"website":       {"https://gunsnpetalsband.com"},
		"genres":        {"Rock n Roll"},
	}
}

func TestParseVenueFormValid(t *testing.T) {
	f, err := ParseVenueForm(validVenueValues())
	require.NoError(t, err)
	assert.Equal(t, "The Musical Hop", f.Name)
	assert.Equal(t, []string{"Jazz", "Reggae"}, f.Genres)
	assert.True(t, f.SeekingTalent)
}

func TestParseVenueFormCheckbox(t *testing.T) {
	cases := []struct {
		value []string
		want  bool
	}{
		{[]string{"on"}, true},
		{[]string{"off"}, false},
		{nil, false}, // absent field defaults to false
	}
	for _, tc := range cases {
		values := validVenueValues()
		if tc.value == nil {
			values.Del("seeking_talent")
		} else {
			values["seeking_talent"] = tc.value
		}
		f, err := ParseVenueForm(values)
		require.NoError(t, err)
		assert.Equal(t, tc.want, f.SeekingTalent)
	}
}

func TestParseVenueFormRejections(t *testing.T) {
	breakField := func(key string, vals ...string) url.Values {
		v := validVenueValues()
		if len(vals) == 0 {
			v.Del(key)
		} else {
			v[key] = vals
		}
		return v
	}

	cases := map[string]url.Values{
		"missing name":      breakField("name"),
		"bad website url":   breakField("website", "not a url"),
		"unknown state":     breakField("state", "ZZ"),
		"bad phone":         breakField("phone", "call me"),
		"no genres":         breakField("genres"),
		"unknown genre":     breakField("genres", "Jazz", "Polka"),
		"long description":  breakField("seeking_description", longString(501)),
		"missing image url": breakField("image_link"),
	}
	for name, values := range cases {
		_, err := ParseVenueForm(values)
		assert.Error(t, err, name)
	}
}

func TestParseArtistForm(t *testing.T) {
	f, err := ParseArtistForm(validArtistValues())
	require.NoError(t, err)
	assert.False(t, f.SeekingVenue)

	values := validArtistValues()
	values.Set("seeking_venue", "on")
	f, err = ParseArtistForm(values)
	require.NoError(t, err)
	assert.True(t, f.SeekingVenue)
}

func TestParseShowForm(t *testing.T) {
	values := url.Values{
		"venue_id":   {"1"},
		"artist_id":  {"4"},
		"start_time": {"2026-06-15 20:00:00"},
	}
	f, err := ParseShowForm(values)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), f.VenueID)
	assert.Equal(t, uint64(4), f.ArtistID)
	assert.Equal(t, time.Date(2026, 6, 15, 20, 0, 0, 0, time.UTC), f.StartTime)
}

func TestParseShowFormRejections(t *testing.T) {
	cases := map[string]url.Values{
		"missing venue": {"artist_id": {"4"}, "start_time": {"2026-06-15 20:00:00"}},
		"zero artist":   {"venue_id": {"1"}, "artist_id": {"0"}, "start_time": {"2026-06-15 20:00:00"}},
		"bad id":        {"venue_id": {"abc"}, "artist_id": {"4"}, "start_time": {"2026-06-15 20:00:00"}},
		"missing time":  {"venue_id": {"1"}, "artist_id": {"4"}},
		"bad time":      {"venue_id": {"1"}, "artist_id": {"4"}, "start_time": {"tomorrow"}},
	}
	for name, values := range cases {
		_, err := ParseShowForm(values)
		assert.Error(t, err, name)
	}
}

func longString(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = 'x'
	}
	return string(b)
}
