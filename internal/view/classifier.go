package view

import (
	"context"
	"time"

	"showbill/internal/repository"
)

// Role selects which side of a show is "the entity" and which is the
// counterpart projected into the partition entries.
type Role int

const (
	RoleVenue  Role = iota // shows at a venue; counterpart is the artist
	RoleArtist             // shows by an artist; counterpart is the venue
)

// ShowEntry is the projection of one show as seen from a venue or artist
// page: the counterpart's identity plus the start time.
type ShowEntry struct {
	CounterpartID    uint64
	CounterpartName  string
	CounterpartImage string
	StartTime        time.Time
}

// ShowPartition splits an entity's shows around a reference time. A show
// starting exactly at the reference time is past, never upcoming; only a
// strictly later start counts as upcoming. Both slices keep the store's
// start-time ordering and are non-nil even when empty.
type ShowPartition struct {
	Upcoming      []ShowEntry
	Past          []ShowEntry
	UpcomingCount int
	PastCount     int
}

// ClassifyShows partitions joined show rows around ref. StartTime is a
// parsed time.Time throughout, so the comparison is never lexical.
func ClassifyShows(details []repository.ShowDetail, role Role, ref time.Time) ShowPartition {
	p := ShowPartition{
		Upcoming: []ShowEntry{},
		Past:     []ShowEntry{},
	}
	for _, d := range details {
		e := ShowEntry{StartTime: d.StartTime}
		switch role {
		case RoleVenue:
			e.CounterpartID = d.ArtistID
			e.CounterpartName = d.ArtistName
			e.CounterpartImage = d.ArtistImageLink
		case RoleArtist:
			e.CounterpartID = d.VenueID
			e.CounterpartName = d.VenueName
			e.CounterpartImage = d.VenueImageLink
		}
		if d.StartTime.After(ref) {
			p.Upcoming = append(p.Upcoming, e)
		} else {
			p.Past = append(p.Past, e)
		}
	}
	p.UpcomingCount = len(p.Upcoming)
	p.PastCount = len(p.Past)
	return p
}

// VenueShows loads and classifies the shows booked at a venue. An entity
// with zero shows yields empty slices and zero counts, not an error.
func VenueShows(ctx context.Context, shows VenueShowLister, venueID uint64, ref time.Time) (ShowPartition, error) {
	details, err := shows.ListByVenue(ctx, venueID)
	if err != nil {
		return ShowPartition{}, err
	}
	return ClassifyShows(details, RoleVenue, ref), nil
}

// ArtistShows loads and classifies the shows an artist is booked for.
func ArtistShows(ctx context.Context, shows ArtistShowLister, artistID uint64, ref time.Time) (ShowPartition, error) {
	details, err := shows.ListByArtist(ctx, artistID)
	if err != nil {
		return ShowPartition{}, err
	}
	return ClassifyShows(details, RoleArtist, ref), nil
}
