package view

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"showbill/internal/repository"
)

type fakeVenueStore struct {
	venues []*repository.Venue
}

func (f *fakeVenueStore) ListAll(_ context.Context) ([]*repository.Venue, error) {
	return f.venues, nil
}

func TestGroupVenuesMergesNonAdjacent(t *testing.T) {
	// Venues sharing a city/state but separated by another city must still
	// land in one group; the legacy adjacency behavior would produce three.
	venues := &fakeVenueStore{venues: []*repository.Venue{
		{ID: 1, Name: "A", City: "NY", State: "NY"},
		{ID: 2, Name: "B", City: "LA", State: "CA"},
		{ID: 3, Name: "C", City: "NY", State: "NY"},
	}}
	shows := &fakeShowStore{byVenue: map[uint64][]repository.ShowDetail{}}

	groups, err := GroupVenues(context.Background(), venues, shows, time.Now())
	require.NoError(t, err)
	require.Len(t, groups, 2)

	assert.Equal(t, "NY", groups[0].City)
	assert.Equal(t, "NY", groups[0].State)
	require.Len(t, groups[0].Venues, 2)
	assert.Equal(t, "A", groups[0].Venues[0].Name)
	assert.Equal(t, "C", groups[0].Venues[1].Name)

	assert.Equal(t, "LA", groups[1].City)
	assert.Equal(t, "CA", groups[1].State)
	require.Len(t, groups[1].Venues, 1)
	assert.Equal(t, "B", groups[1].Venues[0].Name)
}

func TestGroupVenuesFirstSeenOrder(t *testing.T) {
	venues := &fakeVenueStore{venues: []*repository.Venue{
		{ID: 1, Name: "Park Square Live Music & Coffee", City: "San Francisco", State: "CA"},
		{ID: 2, Name: "The Dueling Pianos Bar", City: "New York", State: "NY"},
		{ID: 3, Name: "The Musical Hop", City: "San Francisco", State: "CA"},
	}}
	shows := &fakeShowStore{byVenue: map[uint64][]repository.ShowDetail{}}

	groups, err := GroupVenues(context.Background(), venues, shows, time.Now())
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "San Francisco", groups[0].City)
	assert.Equal(t, "New York", groups[1].City)
}

func TestGroupVenuesDistinguishesStateWithSameCity(t *testing.T) {
	// Same city name in two states must not collapse into one bucket.
	venues := &fakeVenueStore{venues: []*repository.Venue{
		{ID: 1, Name: "Left", City: "Springfield", State: "IL"},
		{ID: 2, Name: "Right", City: "Springfield", State: "MO"},
	}}
	shows := &fakeShowStore{byVenue: map[uint64][]repository.ShowDetail{}}

	groups, err := GroupVenues(context.Background(), venues, shows, time.Now())
	require.NoError(t, err)
	assert.Len(t, groups, 2)
}

func TestGroupVenuesUpcomingCounts(t *testing.T) {
	ref := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	venues := &fakeVenueStore{venues: []*repository.Venue{
		{ID: 1, Name: "The Musical Hop", City: "San Francisco", State: "CA"},
	}}
	shows := &fakeShowStore{byVenue: map[uint64][]repository.ShowDetail{
		1: {
			detailAt(ref.Add(-time.Hour)),     // past
			detailAt(ref),                     // boundary, past
			detailAt(ref.Add(time.Hour)),      // upcoming
			detailAt(ref.Add(48 * time.Hour)), // upcoming
		},
	}}

	groups, err := GroupVenues(context.Background(), venues, shows, ref)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Venues, 1)
	assert.Equal(t, 2, groups[0].Venues[0].UpcomingShowCount)
}

func TestGroupVenuesEmptyStore(t *testing.T) {
	groups, err := GroupVenues(context.Background(),
		&fakeVenueStore{}, &fakeShowStore{}, time.Now())
	require.NoError(t, err)
	assert.NotNil(t, groups)
	assert.Empty(t, groups)
}
