package repository

import "strings"

// Genres are a list on the model but a single delimited column in the
// database. The join/split pair below is the only place that serialization
// happens; nothing above this package sees the delimiter.

const genreSeparator = ","

func joinGenres(genres []string) string {
	return strings.Join(genres, genreSeparator)
}

func splitGenres(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, genreSeparator)
}
