package view

import (
	"context"
	"strings"
)

// VenueHit is the short venue projection a search results page renders.
type VenueHit struct {
	ID   uint64
	Name string
	City string
}

// ArtistHit is the short artist projection for artist search results.
type ArtistHit struct {
	ID   uint64
	Name string
}

// VenueSearchResult carries the matches and their count.
type VenueSearchResult struct {
	Count int
	Data  []VenueHit
}

// ArtistSearchResult carries the matches and their count.
type ArtistSearchResult struct {
	Count int
	Data  []ArtistHit
}

// matchesName reports case-insensitive substring containment. The empty
// term matches every name.
func matchesName(name, term string) bool {
	return strings.Contains(strings.ToLower(name), strings.ToLower(term))
}

// SearchVenues returns every venue whose name contains term, in store
// order. No pagination, no ranking.
func SearchVenues(ctx context.Context, venues VenueLister, term string) (VenueSearchResult, error) {
	all, err := venues.ListAll(ctx)
	if err != nil {
		return VenueSearchResult{}, err
	}
	res := VenueSearchResult{Data: []VenueHit{}}
	for _, v := range all {
		if matchesName(v.Name, term) {
			res.Data = append(res.Data, VenueHit{ID: v.ID, Name: v.Name, City: v.City})
		}
	}
	res.Count = len(res.Data)
	return res, nil
}

// SearchArtists returns every artist whose name contains term, in store
// order.
func SearchArtists(ctx context.Context, artists ArtistLister, term string) (ArtistSearchResult, error) {
	all, err := artists.ListAll(ctx)
	if err != nil {
		return ArtistSearchResult{}, err
	}
	res := ArtistSearchResult{Data: []ArtistHit{}}
	for _, a := range all {
		if matchesName(a.Name, term) {
			res.Data = append(res.Data, ArtistHit{ID: a.ID, Name: a.Name})
		}
	}
	res.Count = len(res.Data)
	return res, nil
}
