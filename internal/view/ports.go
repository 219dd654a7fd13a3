// Package view builds the read models the pages render: the upcoming/past
// show partition, the city/state venue grouping, and the name search
// projection. Everything here is a pure function of store contents plus the
// reference time the caller supplies; no state is held between calls.
package view

import (
	"context"

	"showbill/internal/repository"
)

// VenueLister is the slice of the venue store the grouping and search views
// need. *repository.VenueRepo satisfies it; tests use in-memory fakes.
type VenueLister interface {
	ListAll(ctx context.Context) ([]*repository.Venue, error)
}

// ArtistLister is the slice of the artist store the search view needs.
type ArtistLister interface {
	ListAll(ctx context.Context) ([]*repository.Artist, error)
}

// VenueShowLister yields a venue's shows joined with artist info.
type VenueShowLister interface {
	ListByVenue(ctx context.Context, venueID uint64) ([]repository.ShowDetail, error)
}

// ArtistShowLister yields an artist's shows joined with venue info.
type ArtistShowLister interface {
	ListByArtist(ctx context.Context, artistID uint64) ([]repository.ShowDetail, error)
}
