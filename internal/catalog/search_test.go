package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmunix/binge/pkg/title"
)

func TestLibrary_Search(t *testing.T) {
	lib := newTestLibrary(t, nil)
	mustMovie(t, lib, mediaFile(t, "m.mkv"), "The Matrix", English, "Warner")
	mustMovie(t, lib, mediaFile(t, "h.mkv"), "Heat", English, "Warner")
	lib.GenerateTVShow("Matrix", English, "Warner")

	results := lib.Search("matrix", title.ConfidenceHigh)

	require.Len(t, results, 2)
	kinds := []Kind{results[0].Kind, results[1].Kind}
	assert.ElementsMatch(t, []Kind{KindMovie, KindShow}, kinds, "movies and shows sharing a title are both found")
	for _, r := range results {
		assert.Equal(t, title.ConfidenceHigh, r.Confidence)
		assert.InDelta(t, 1.0, r.Score, 0.0001)
	}
}

func TestLibrary_Search_OrderedByScore(t *testing.T) {
	lib := newTestLibrary(t, nil)
	mustMovie(t, lib, mediaFile(t, "r.mkv"), "The Matrix Reloaded", English, "Warner")
	mustMovie(t, lib, mediaFile(t, "m.mkv"), "The Matrix", English, "Warner")

	results := lib.Search("matrix", title.ConfidenceNone)

	require.Len(t, results, 2)
	assert.Equal(t, "The Matrix", results[0].Item.Title())
	assert.Greater(t, results[0].Score, results[1].Score)
}

func TestLibrary_Search_NoMatch(t *testing.T) {
	lib := newTestLibrary(t, nil)
	mustMovie(t, lib, mediaFile(t, "m.mkv"), "Alien", English, "Fox")

	assert.Empty(t, lib.Search("xyz", title.ConfidenceLow))
}
