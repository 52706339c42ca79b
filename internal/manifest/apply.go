package manifest

import (
	"errors"
	"fmt"
	"os"

	"github.com/vmunix/binge/internal/catalog"
)

// Apply validates m, checks it against what lib already holds, and loads it
// into lib. Titles already present in lib are reused rather than replaced,
// and an existing show keeps its episodes. When any check fails lib is left
// untouched. Apply assumes nothing else writes to lib while it runs.
func (m *Manifest) Apply(lib *catalog.Library) (*Result, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if err := m.checkLibrary(lib); err != nil {
		return nil, err
	}

	res := &Result{}
	for _, mv := range m.Movies {
		movie, err := lib.GenerateMovie(mv.Path, mv.Title, mv.Language, mv.Studio)
		if err != nil {
			return nil, fmt.Errorf("apply manifest: %w", err)
		}
		for k, v := range mv.Info {
			movie.SetInfo(k, v)
		}
		res.Movies++
	}

	for _, mv := range m.Movies {
		if mv.Previous == "" {
			continue
		}
		lib.Movie(mv.Title).SetPrevious(lib.Movie(mv.Previous))
	}

	for _, s := range m.Shows {
		show := lib.GenerateTVShow(s.Title, s.Language, s.Studio)
		for k, v := range s.Info {
			show.SetInfo(k, v)
		}
		if show.TotalCount() == 0 {
			for _, ep := range s.Episodes {
				show.CreateAndAddEpisode(ep.Path, ep.Title)
				res.Episodes++
			}
		}
		lib.RegisterTVShow(show)
		res.Shows++
	}

	for _, wl := range m.WatchLists {
		list := catalog.NewWatchList(wl.Name)
		for _, it := range wl.Items {
			list.Add(it.resolve(lib))
		}
		lib.RegisterWatchList(list)
		res.WatchLists++
	}

	return res, nil
}

func (it Item) resolve(lib *catalog.Library) catalog.Watchable {
	if it.Movie != "" {
		return lib.Movie(it.Movie)
	}
	show := lib.TVShow(it.Show)
	if it.Episode != nil {
		return show.Episode(*it.Episode)
	}
	return show
}

// checkLibrary finds everything that Validate cannot see because it depends
// on lib: new movie paths that are directories, episode numbers of shows
// whose existing episodes win over the manifest's, and prequel links that
// would close a loop with links already in lib.
func (m *Manifest) checkLibrary(lib *catalog.Library) error {
	var errs []error

	nodes := make(map[string]linkNode, len(m.Movies))
	for _, mv := range m.Movies {
		if existing, ok := lib.LookupMovie(mv.Title); ok {
			nodes[mv.Title] = linkNode{movie: existing}
			continue
		}
		nodes[mv.Title] = linkNode{title: mv.Title}
		if info, err := os.Stat(mv.Path); err == nil && info.IsDir() {
			errs = append(errs, fmt.Errorf("movie %q at %s: %w", mv.Title, mv.Path, catalog.ErrInvalidPath))
		}
	}
	if err := checkLinks(m.Movies, nodes); err != nil {
		errs = append(errs, err)
	}

	episodes := make(map[string]int, len(m.Shows))
	for _, s := range m.Shows {
		episodes[s.Title] = len(s.Episodes)
		if existing, ok := lib.LookupTVShow(s.Title); ok && existing.TotalCount() > 0 {
			episodes[s.Title] = existing.TotalCount()
		}
	}
	for _, wl := range m.WatchLists {
		for j, it := range wl.Items {
			if it.Show == "" || it.Episode == nil || *it.Episode <= episodes[it.Show] {
				continue
			}
			errs = append(errs, fmt.Errorf("watchlist %q: items[%d]: show %q has %d episodes in the library, no episode %d: %w",
				wl.Name, j, it.Show, episodes[it.Show], *it.Episode, ErrInvalid))
		}
	}

	return errors.Join(errs...)
}

// linkNode identifies a movie while prequel links are replayed: an existing
// movie by pointer, a movie Apply has yet to create by title.
type linkNode struct {
	movie *catalog.Movie
	title string
}

// checkLinks replays the manifest's prequel links over the chains already
// in the library, following the same teardown as Movie.SetPrevious, and
// reports the first link that would close a loop.
func checkLinks(movies []Movie, nodes map[string]linkNode) error {
	prev := make(map[linkNode]linkNode)
	next := make(map[linkNode]linkNode)

	seeded := make(map[*catalog.Movie]bool)
	for _, n := range nodes {
		if n.movie == nil || seeded[n.movie] {
			continue
		}
		head := n.movie
		for p := head.Previous(); p != nil; p = p.Previous() {
			head = p
		}
		for cur := head; cur != nil; cur = cur.Next() {
			seeded[cur] = true
			if nx := cur.Next(); nx != nil {
				next[linkNode{movie: cur}] = linkNode{movie: nx}
				prev[linkNode{movie: nx}] = linkNode{movie: cur}
			}
		}
	}

	for _, mv := range movies {
		if mv.Previous == "" {
			continue
		}
		m, p := nodes[mv.Title], nodes[mv.Previous]
		for s, ok := next[m]; ok; s, ok = next[s] {
			if s == p {
				return fmt.Errorf("movie %q: previous %q would close a loop with existing links: %w", mv.Title, mv.Previous, ErrInvalid)
			}
		}
		if old, ok := prev[m]; ok {
			delete(next, old)
		}
		if old, ok := next[p]; ok {
			delete(prev, old)
		}
		prev[m] = p
		next[p] = m
	}
	return nil
}
