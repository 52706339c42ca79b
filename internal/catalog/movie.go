package catalog

import (
	"errors"
	"io/fs"
	"os"
	"sync"
)

// chainMu guards the prequel and sequel links of every Movie, so a relink is
// never observed half-done.
var chainMu sync.RWMutex

// Movie is a single film backed by one file. Obtain movies through
// Library.GenerateMovie.
//
// Movies may form a prequel/sequel chain. Links are non-owning and always
// symmetric: if a.Next() == b then b.Previous() == a.
type Movie struct {
	tags

	path     string
	title    string
	language Language
	studio   string
	player   Player

	prequel *Movie
	sequel  *Movie
}

func newMovie(path, title string, lang Language, studio string, player Player) *Movie {
	return &Movie{
		path:     path,
		title:    title,
		language: lang,
		studio:   studio,
		player:   player,
	}
}

// Path returns the location of the movie file.
func (m *Movie) Path() string { return m.path }

func (m *Movie) Title() string      { return m.title }
func (m *Movie) Language() Language { return m.language }
func (m *Movie) Studio() string     { return m.studio }

// Valid reports whether the movie file exists and is readable.
func (m *Movie) Valid() bool { return checkFile(m.path) == "" }

// Watch plays the movie.
func (m *Movie) Watch() { m.player.Play(m.path, m.title) }

func (m *Movie) HasPrevious() bool { return m.Previous() != nil }
func (m *Movie) HasNext() bool     { return m.Next() != nil }

// Previous returns the prequel, or nil.
func (m *Movie) Previous() *Movie {
	chainMu.RLock()
	defer chainMu.RUnlock()
	return m.prequel
}

// Next returns the sequel, or nil.
func (m *Movie) Next() *Movie {
	chainMu.RLock()
	defer chainMu.RUnlock()
	return m.sequel
}

// SetPrevious makes prev the prequel of m (and m the sequel of prev).
// Whatever m was previously following, and whatever previously followed
// prev, lose their link to m and prev respectively. Linking a movie to itself
// or closing a loop in the chain panics.
func (m *Movie) SetPrevious(prev *Movie) {
	contract(prev != nil, "nil prequel for %q", m.title)
	contract(prev != m, "movie %q cannot be its own prequel", m.title)

	chainMu.Lock()
	defer chainMu.Unlock()

	for s := m.sequel; s != nil; s = s.sequel {
		contract(s != prev, "linking %q after %q would close a loop", m.title, prev.title)
	}

	if m.prequel != nil {
		m.prequel.sequel = nil
	}
	if prev.sequel != nil {
		prev.sequel.prequel = nil
	}
	m.prequel = prev
	prev.sequel = m
}

func (m *Movie) links() (prequel, sequel *Movie) {
	chainMu.RLock()
	defer chainMu.RUnlock()
	return m.prequel, m.sequel
}

// Equal compares the movie's own fields and tags. Prequel and sequel are
// compared by identity, not by walking the chain.
func (m *Movie) Equal(other Watchable) bool {
	o, ok := other.(*Movie)
	if !ok || o == nil {
		return false
	}
	if m == o {
		return true
	}
	if m.path != o.path || m.title != o.title || m.language != o.language || m.studio != o.studio {
		return false
	}
	mPre, mSeq := m.links()
	oPre, oSeq := o.links()
	if mPre != oPre || mSeq != oSeq {
		return false
	}
	return m.sameTags(&o.tags)
}

// checkFile returns a short description of why path can't be played, or ""
// if it is a readable regular file.
func checkFile(path string) string {
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "file missing"
	case err != nil:
		return err.Error()
	case info.IsDir():
		return "path is a directory"
	case !info.Mode().IsRegular():
		return "not a regular file"
	}

	f, err := os.Open(path)
	if err != nil {
		return "file not readable"
	}
	_ = f.Close()
	return ""
}
