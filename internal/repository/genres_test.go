package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenresRoundTrip(t *testing.T) {
	genres := []string{"Jazz", "Rock n Roll", "R&B"}
	assert.Equal(t, genres, splitGenres(joinGenres(genres)))
}

func TestGenresEmpty(t *testing.T) {
	assert.Equal(t, "", joinGenres(nil))
	assert.Nil(t, splitGenres(""))
}

func TestGenresSingle(t *testing.T) {
	assert.Equal(t, []string{"Folk"}, splitGenres("Folk"))
}
