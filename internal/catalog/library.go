package catalog

import (
	"fmt"
	"log/slog"
	"maps"
	"os"
	"slices"
	"sync"
)

const defaultLibraryName = "unnamed"

// Library is the registry of canonical movies and shows, keyed by title, plus
// every watchlist and episode registered with it.
type Library struct {
	mu         sync.RWMutex
	name       string
	owner      string
	movies     map[string]*Movie
	shows      map[string]*TVShow
	watchLists []*WatchList
	listed     map[*WatchList]struct{}
	episodes   map[*Episode]struct{}

	player Player
	logger *slog.Logger
}

var defaultLibrary = sync.OnceValue(func() *Library { return New(nil, nil) })

// Default returns the process-wide library, creating it on first use. Every
// call returns the same instance.
func Default() *Library {
	return defaultLibrary()
}

// New creates an empty library. A nil player logs playback instead; a nil
// logger uses slog.Default().
func New(player Player, logger *slog.Logger) *Library {
	if logger == nil {
		logger = slog.Default()
	}
	if player == nil {
		player = logPlayer{logger: logger}
	}
	return &Library{
		name:     defaultLibraryName,
		movies:   make(map[string]*Movie),
		shows:    make(map[string]*TVShow),
		listed:   make(map[*WatchList]struct{}),
		episodes: make(map[*Episode]struct{}),
		player:   player,
		logger:   logger,
	}
}

func (l *Library) Name() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.name
}

func (l *Library) SetName(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.name = name
}

// Owner returns the contact email of the library owner.
func (l *Library) Owner() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.owner
}

func (l *Library) SetOwner(email string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.owner = email
}

// GenerateMovie returns the movie registered under title, creating and
// registering it if there is none. On a hit the other arguments are ignored.
// Returns ErrInvalidPath if a new movie's path is an existing directory.
func (l *Library) GenerateMovie(path, title string, lang Language, studio string) (*Movie, error) {
	contract(path != "" && title != "", "movie needs a path and a title")
	contract(lang.IsValid(), "movie %q has invalid language %d", title, int(lang))

	l.mu.Lock()
	defer l.mu.Unlock()
	if m, ok := l.movies[title]; ok {
		return m, nil
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return nil, fmt.Errorf("movie %q at %s: %w", title, path, ErrInvalidPath)
	}

	m := newMovie(path, title, lang, studio, l.player)
	l.movies[title] = m
	l.logger.Debug("movie registered", "title", title, "path", path)
	return m, nil
}

// GenerateTVShow returns the show registered under title, creating and
// registering it if there is none. On a hit the other arguments are ignored.
func (l *Library) GenerateTVShow(title string, lang Language, studio string) *TVShow {
	contract(title != "", "show needs a title")
	contract(lang.IsValid(), "show %q has invalid language %d", title, int(lang))

	l.mu.Lock()
	defer l.mu.Unlock()
	if t, ok := l.shows[title]; ok {
		return t
	}

	t := newTVShow(title, lang, studio, l.player)
	l.shows[title] = t
	l.logger.Debug("show registered", "title", title)
	return t
}

// RegisterMovie stores m under its title, replacing any movie already there.
func (l *Library) RegisterMovie(m *Movie) {
	contract(m != nil, "nil movie")
	l.mu.Lock()
	defer l.mu.Unlock()
	l.movies[m.title] = m
}

// RegisterTVShow stores t under its title, replacing any show already there,
// and records each of its episodes.
func (l *Library) RegisterTVShow(t *TVShow) {
	contract(t != nil, "nil show")
	eps := t.Episodes()

	l.mu.Lock()
	defer l.mu.Unlock()
	l.shows[t.title] = t
	for _, ep := range eps {
		l.episodes[ep] = struct{}{}
	}
}

// RegisterWatchList records w and registers every movie it contains. Shows
// and episodes in the list are not registered.
func (l *Library) RegisterWatchList(w *WatchList) {
	contract(w != nil, "nil watchlist")
	items := w.Items()

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.listed[w]; !ok {
		l.listed[w] = struct{}{}
		l.watchLists = append(l.watchLists, w)
	}
	for _, item := range items {
		if m, ok := item.(*Movie); ok {
			l.movies[m.title] = m
		}
	}
}

func (l *Library) HasMovie(title string) bool {
	_, ok := l.LookupMovie(title)
	return ok
}

// Movie returns the movie registered under title. The title must be
// registered; use HasMovie or LookupMovie when unsure.
func (l *Library) Movie(title string) *Movie {
	m, ok := l.LookupMovie(title)
	contract(ok, "no movie titled %q", title)
	return m
}

func (l *Library) LookupMovie(title string) (*Movie, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	m, ok := l.movies[title]
	return m, ok
}

func (l *Library) HasTVShow(title string) bool {
	_, ok := l.LookupTVShow(title)
	return ok
}

// TVShow returns the show registered under title. The title must be
// registered; use HasTVShow or LookupTVShow when unsure.
func (l *Library) TVShow(title string) *TVShow {
	t, ok := l.LookupTVShow(title)
	contract(ok, "no show titled %q", title)
	return t
}

func (l *Library) LookupTVShow(title string) (*TVShow, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	t, ok := l.shows[title]
	return t, ok
}

// Movies returns every registered movie ordered by title.
func (l *Library) Movies() []*Movie {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]*Movie, 0, len(l.movies))
	for _, key := range slices.Sorted(maps.Keys(l.movies)) {
		out = append(out, l.movies[key])
	}
	return out
}

// TVShows returns every registered show ordered by title.
func (l *Library) TVShows() []*TVShow {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]*TVShow, 0, len(l.shows))
	for _, key := range slices.Sorted(maps.Keys(l.shows)) {
		out = append(out, l.shows[key])
	}
	return out
}

// WatchLists returns the registered watchlists in registration order.
func (l *Library) WatchLists() []*WatchList {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.watchLists)
}

// GenerateWatchList builds a new watchlist from the registry. Episodes of
// every show accepted by the policy filter are candidates if the filter also
// accepts them, as is every accepted movie. Candidates are sorted with the
// policy's comparison. The list is returned unregistered.
func (l *Library) GenerateWatchList(name string, policy Policy) *WatchList {
	contract(policy != nil, "nil watchlist policy")

	var candidates []Watchable
	for _, show := range l.TVShows() {
		if !policy.Filter(show) {
			continue
		}
		for _, ep := range show.Episodes() {
			if policy.Filter(ep) {
				candidates = append(candidates, ep)
			}
		}
	}
	for _, m := range l.Movies() {
		if policy.Filter(m) {
			candidates = append(candidates, m)
		}
	}
	slices.SortStableFunc(candidates, policy.Compare)

	w := NewWatchList(name)
	for _, item := range candidates {
		w.Add(item)
	}
	l.logger.Debug("watchlist generated", "name", name, "items", len(candidates))
	return w
}

// String gives a one-line summary, e.g. for logs.
func (l *Library) String() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return fmt.Sprintf("%s: %d movies, %d shows, %d episodes, %d watchlists",
		l.name, len(l.movies), len(l.shows), len(l.episodes), len(l.watchLists))
}
