package view

import (
	"context"
	"time"
)

// GroupedVenue is one venue inside a city/state group, annotated with its
// number of upcoming shows at the reference time.
type GroupedVenue struct {
	ID                uint64
	Name              string
	UpcomingShowCount int
}

// VenueGroup collects the venues of one city/state pair.
type VenueGroup struct {
	City   string
	State  string
	Venues []GroupedVenue
}

// GroupVenues buckets every venue by (city, state), groups ordered by first
// appearance in the store listing and venues keeping store order within a
// group. This is a true group-by: venues sharing a city/state end up in one
// group regardless of how the listing interleaves them.
//
// Each venue's upcoming count is computed against ref via the show
// classifier, so a venue page and the grouping view agree on what counts as
// upcoming.
func GroupVenues(ctx context.Context, venues VenueLister, shows VenueShowLister, ref time.Time) ([]VenueGroup, error) {
	all, err := venues.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	groups := []VenueGroup{}
	index := map[[2]string]int{} // (city,state) -> position in groups
	for _, v := range all {
		part, err := VenueShows(ctx, shows, v.ID, ref)
		if err != nil {
			return nil, err
		}
		gv := GroupedVenue{
			ID:                v.ID,
			Name:              v.Name,
			UpcomingShowCount: part.UpcomingCount,
		}
		key := [2]string{v.City, v.State}
		if i, ok := index[key]; ok {
			groups[i].Venues = append(groups[i].Venues, gv)
			continue
		}
		index[key] = len(groups)
		groups = append(groups, VenueGroup{
			City:   v.City,
			State:  v.State,
			Venues: []GroupedVenue{gv},
		})
	}
	return groups, nil
}
