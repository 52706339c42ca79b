// Package catalog is the canonical in-memory registry of movies, TV shows and
// watchlists.
//
// Movies and shows are flyweights: a Library hands out at most one instance
// per title, and constructors are not exported. Watchlists are ordered views
// over catalog items, built by hand or generated from the registry with a
// Policy.
package catalog

// Watchable is implemented by every playable catalog item.
type Watchable interface {
	Title() string
	Language() Language
	Studio() string

	// HasInfo reports whether a metadata tag is set for key.
	HasInfo(key string) bool
	// Info returns the tag value for key. The key must be set.
	Info(key string) string

	// Valid reports whether the item can currently be played.
	Valid() bool
	// Watch plays the item.
	Watch()

	Equal(other Watchable) bool
}

// Bingeable is a sequence consumed in a circle. Next never runs dry: after
// the last item it wraps back to the first.
type Bingeable[T any] interface {
	TotalCount() int
	RemainingCount() int
	Next() T
	Reset()
}

// Kind distinguishes the concrete catalog item types.
type Kind string

const (
	KindMovie   Kind = "movie"
	KindShow    Kind = "show"
	KindEpisode Kind = "episode"
)

// KindOf returns the kind of w, or "" for Watchable implementations outside
// this package.
func KindOf(w Watchable) Kind {
	switch w.(type) {
	case *Movie:
		return KindMovie
	case *TVShow:
		return KindShow
	case *Episode:
		return KindEpisode
	default:
		return ""
	}
}

var (
	_ Watchable            = (*Movie)(nil)
	_ Watchable            = (*TVShow)(nil)
	_ Watchable            = (*Episode)(nil)
	_ Bingeable[*Episode]  = (*TVShow)(nil)
	_ Bingeable[Watchable] = (*WatchList)(nil)
)
