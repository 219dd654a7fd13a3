package view

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"showbill/internal/repository"
)

type fakeArtistStore struct {
	artists []*repository.Artist
}

func (f *fakeArtistStore) ListAll(_ context.Context) ([]*repository.Artist, error) {
	return f.artists, nil
}

func seedVenues() *fakeVenueStore {
	return &fakeVenueStore{venues: []*repository.Venue{
		{ID: 1, Name: "The Musical Hop", City: "San Francisco"},
		{ID: 2, Name: "The Dueling Pianos Bar", City: "New York"},
		{ID: 3, Name: "Park Square Live Music & Coffee", City: "San Francisco"},
	}}
}

func seedArtists() *fakeArtistStore {
	return &fakeArtistStore{artists: []*repository.Artist{
		{ID: 4, Name: "Guns N Petals"},
		{ID: 5, Name: "Matt Quevado"},
		{ID: 6, Name: "The Wild Sax Band"},
	}}
}

func venueNames(hits []VenueHit) []string {
	names := make([]string, 0, len(hits))
	for _, h := range hits {
		names = append(names, h.Name)
	}
	return names
}

func artistNames(hits []ArtistHit) []string {
	names := make([]string, 0, len(hits))
	for _, h := range hits {
		names = append(names, h.Name)
	}
	return names
}

func TestSearchVenuesCaseInsensitive(t *testing.T) {
	res, err := SearchVenues(context.Background(), seedVenues(), "hop")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Count)
	assert.Equal(t, []string{"The Musical Hop"}, venueNames(res.Data))

	res, err = SearchVenues(context.Background(), seedVenues(), "Music")
	require.NoError(t, err)
	assert.Equal(t, 2, res.Count)
	assert.Equal(t,
		[]string{"The Musical Hop", "Park Square Live Music & Coffee"},
		venueNames(res.Data))
}

func TestSearchVenuesCarriesCity(t *testing.T) {
	res, err := SearchVenues(context.Background(), seedVenues(), "hop")
	require.NoError(t, err)
	require.Len(t, res.Data, 1)
	assert.Equal(t, "San Francisco", res.Data[0].City)
}

func TestSearchArtists(t *testing.T) {
	res, err := SearchArtists(context.Background(), seedArtists(), "A")
	require.NoError(t, err)
	assert.Equal(t, 3, res.Count)
	assert.Equal(t,
		[]string{"Guns N Petals", "Matt Quevado", "The Wild Sax Band"},
		artistNames(res.Data))

	res, err = SearchArtists(context.Background(), seedArtists(), "band")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Count)
	assert.Equal(t, []string{"The Wild Sax Band"}, artistNames(res.Data))
}

func TestSearchEmptyTermMatchesAll(t *testing.T) {
	venues, err := SearchVenues(context.Background(), seedVenues(), "")
	require.NoError(t, err)
	assert.Equal(t, 3, venues.Count)

	artists, err := SearchArtists(context.Background(), seedArtists(), "")
	require.NoError(t, err)
	assert.Equal(t, 3, artists.Count)
}

func TestSearchNoMatches(t *testing.T) {
	res, err := SearchVenues(context.Background(), seedVenues(), "opera house")
	require.NoError(t, err)
	assert.Equal(t, 0, res.Count)
	assert.NotNil(t, res.Data)
}
