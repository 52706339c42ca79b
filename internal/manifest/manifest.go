// Package manifest declares a media catalog in TOML and loads it into a
// catalog.Library.
package manifest

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/vmunix/binge/internal/catalog"
)

var (
	ErrInvalid        = errors.New("invalid manifest")
	ErrUnknownTitle   = errors.New("unknown title")
	ErrDuplicateTitle = errors.New("duplicate title")
)

// Manifest is the decoded form of a catalog file.
type Manifest struct {
	Movies     []Movie     `toml:"movies"`
	Shows      []Show      `toml:"shows"`
	WatchLists []WatchList `toml:"watchlists"`
}

type Movie struct {
	Title    string            `toml:"title"`
	Path     string            `toml:"path"`
	Language catalog.Language  `toml:"language"`
	Studio   string            `toml:"studio"`
	Previous string            `toml:"previous"` // title of the prequel
	Info     map[string]string `toml:"info"`
}

type Show struct {
	Title    string            `toml:"title"`
	Language catalog.Language  `toml:"language"`
	Studio   string            `toml:"studio"`
	Info     map[string]string `toml:"info"`
	Episodes []Episode         `toml:"episodes"`
}

type Episode struct {
	Title string `toml:"title"`
	Path  string `toml:"path"`
}

type WatchList struct {
	Name  string `toml:"name"`
	Items []Item `toml:"items"`
}

// Item references a movie, a whole show, or one episode of a show by its
// number, counting from 1.
type Item struct {
	Movie   string `toml:"movie"`
	Show    string `toml:"show"`
	Episode *int   `toml:"episode"`
}

// Result counts what Apply placed in the library.
type Result struct {
	Movies     int `json:"movies"`
	Shows      int `json:"shows"`
	Episodes   int `json:"episodes"`
	WatchLists int `json:"watchlists"`
}

// Load reads and decodes a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	return Decode(string(data))
}

// Decode parses manifest TOML. Keys that map to no field are rejected.
func Decode(data string) (*Manifest, error) {
	var m Manifest
	md, err := toml.Decode(data, &m)
	if err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys %s", ErrInvalid, strings.Join(keys, ", "))
	}
	return &m, nil
}

// Validate checks field presence, title uniqueness, prequel references and
// watchlist references. All problems are joined into one error.
func (m *Manifest) Validate() error {
	var errs []error
	add := func(err error) { errs = append(errs, err) }

	movies := make(map[string]*Movie, len(m.Movies))
	for i := range m.Movies {
		mv := &m.Movies[i]
		where := fmt.Sprintf("movies[%d]", i)
		if mv.Title == "" {
			add(fmt.Errorf("%s: title: %w", where, ErrInvalid))
			continue
		}
		where = fmt.Sprintf("movie %q", mv.Title)
		if mv.Path == "" {
			add(fmt.Errorf("%s: path: %w", where, ErrInvalid))
		}
		if !mv.Language.IsValid() {
			add(fmt.Errorf("%s: language: %w", where, ErrInvalid))
		}
		for k := range mv.Info {
			if strings.TrimSpace(k) == "" {
				add(fmt.Errorf("%s: blank info key: %w", where, ErrInvalid))
			}
		}
		if _, dup := movies[mv.Title]; dup {
			add(fmt.Errorf("%s: %w", where, ErrDuplicateTitle))
			continue
		}
		movies[mv.Title] = mv
	}

	claimed := make(map[string]string)
	for _, mv := range m.Movies {
		if mv.Previous == "" || mv.Title == "" {
			continue
		}
		where := fmt.Sprintf("movie %q", mv.Title)
		switch {
		case mv.Previous == mv.Title:
			add(fmt.Errorf("%s: previous is itself: %w", where, ErrInvalid))
		case movies[mv.Previous] == nil:
			add(fmt.Errorf("%s: previous %q: %w", where, mv.Previous, ErrUnknownTitle))
		case claimed[mv.Previous] != "":
			add(fmt.Errorf("%s: previous %q already followed by %q: %w", where, mv.Previous, claimed[mv.Previous], ErrInvalid))
		default:
			claimed[mv.Previous] = mv.Title
		}
	}
	if cycle := findCycle(m.Movies, movies); cycle != "" {
		add(fmt.Errorf("movie %q: prequel chain loops: %w", cycle, ErrInvalid))
	}

	shows := make(map[string]*Show, len(m.Shows))
	for i := range m.Shows {
		s := &m.Shows[i]
		if s.Title == "" {
			add(fmt.Errorf("shows[%d]: title: %w", i, ErrInvalid))
			continue
		}
		where := fmt.Sprintf("show %q", s.Title)
		if !s.Language.IsValid() {
			add(fmt.Errorf("%s: language: %w", where, ErrInvalid))
		}
		for j, ep := range s.Episodes {
			if ep.Title == "" || ep.Path == "" {
				add(fmt.Errorf("%s: episodes[%d]: title and path required: %w", where, j, ErrInvalid))
			}
		}
		if _, dup := shows[s.Title]; dup {
			add(fmt.Errorf("%s: %w", where, ErrDuplicateTitle))
			continue
		}
		shows[s.Title] = s
	}

	names := make(map[string]bool, len(m.WatchLists))
	for i, wl := range m.WatchLists {
		where := fmt.Sprintf("watchlists[%d]", i)
		if wl.Name != "" {
			where = fmt.Sprintf("watchlist %q", wl.Name)
			if names[wl.Name] {
				add(fmt.Errorf("%s: %w", where, ErrDuplicateTitle))
			}
			names[wl.Name] = true
		}
		for j, it := range wl.Items {
			if err := it.validate(movies, shows); err != nil {
				add(fmt.Errorf("%s: items[%d]: %w", where, j, err))
			}
		}
	}

	return errors.Join(errs...)
}

func (it Item) validate(movies map[string]*Movie, shows map[string]*Show) error {
	switch {
	case it.Movie != "" && it.Show != "":
		return fmt.Errorf("movie and show both set: %w", ErrInvalid)
	case it.Movie != "":
		if it.Episode != nil {
			return fmt.Errorf("episode set on movie %q: %w", it.Movie, ErrInvalid)
		}
		if movies[it.Movie] == nil {
			return fmt.Errorf("movie %q: %w", it.Movie, ErrUnknownTitle)
		}
	case it.Show != "":
		s := shows[it.Show]
		if s == nil {
			return fmt.Errorf("show %q: %w", it.Show, ErrUnknownTitle)
		}
		if it.Episode != nil && (*it.Episode < 1 || *it.Episode > len(s.Episodes)) {
			return fmt.Errorf("show %q has no episode %d: %w", it.Show, *it.Episode, ErrInvalid)
		}
	default:
		return fmt.Errorf("empty item: %w", ErrInvalid)
	}
	return nil
}

// findCycle follows each prequel chain and returns a title on the first loop
// found, or "".
func findCycle(list []Movie, movies map[string]*Movie) string {
	for _, mv := range list {
		seen := map[string]bool{}
		for cur := movies[mv.Title]; cur != nil && cur.Previous != ""; cur = movies[cur.Previous] {
			if seen[cur.Title] {
				return cur.Title
			}
			seen[cur.Title] = true
		}
	}
	return ""
}
