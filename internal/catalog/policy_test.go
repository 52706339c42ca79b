package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilters(t *testing.T) {
	lib := newTestLibrary(t, nil)
	alien := mustMovie(t, lib, mediaFile(t, "alien.mkv"), "Alien", English, "20th Century Fox")
	amelie := mustMovie(t, lib, missingFile(t, "amelie.mkv"), "Amélie", French, "UGC")
	alien.SetInfo("genre", "horror")

	assert.True(t, MatchAll(amelie))
	assert.True(t, MatchLanguage(English)(alien))
	assert.False(t, MatchLanguage(English)(amelie))
	assert.True(t, MatchStudio("20TH CENTURY FOX")(alien))
	assert.False(t, MatchStudio("UGC")(alien))
	assert.True(t, MatchInfo("genre", "horror")(alien))
	assert.False(t, MatchInfo("genre", "comedy")(alien))
	assert.False(t, MatchInfo("genre", "horror")(amelie), "unset keys never match")
	assert.True(t, MatchValid(alien))
	assert.False(t, MatchValid(amelie))

	both := AllOf(MatchLanguage(English), MatchInfo("genre", "horror"))
	assert.True(t, both(alien))
	assert.False(t, both(amelie))
	assert.True(t, AllOf()(amelie))
}

func TestComparators(t *testing.T) {
	lib := newTestLibrary(t, nil)
	matrix := mustMovie(t, lib, mediaFile(t, "m.mkv"), "The Matrix", English, "Warner")
	amelie := mustMovie(t, lib, mediaFile(t, "a.mkv"), "Amélie", French, "ugc")
	brazil := mustMovie(t, lib, mediaFile(t, "b.mkv"), "Brazil", English, "Universal")

	assert.Negative(t, ByTitle(amelie, brazil))
	assert.Positive(t, ByTitle(matrix, brazil), "leading articles are ignored")
	assert.Negative(t, ByStudio(amelie, brazil), "studio order ignores case")
	assert.Negative(t, ByLanguage(brazil, amelie))
	assert.Positive(t, Reverse(ByTitle)(amelie, brazil))

	byLangThenTitle := Then(ByLanguage, ByTitle)
	assert.Negative(t, byLangThenTitle(brazil, matrix))
	assert.Negative(t, byLangThenTitle(matrix, amelie))
	assert.Zero(t, Then()(matrix, amelie))
}

func TestNewPolicy_Defaults(t *testing.T) {
	lib := newTestLibrary(t, nil)
	m := mustMovie(t, lib, mediaFile(t, "m.mkv"), "M", English, "S")
	n := mustMovie(t, lib, mediaFile(t, "n.mkv"), "N", English, "S")

	p := NewPolicy(nil, nil)

	assert.True(t, p.Filter(m))
	assert.Zero(t, p.Compare(m, n))
}
