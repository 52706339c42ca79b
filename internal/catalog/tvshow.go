package catalog

import (
	"slices"
	"sync"
)

// TVShow is a series of episodes. Obtain shows through
// Library.GenerateTVShow.
//
// A show is Bingeable over its episodes: Next walks them in order and starts
// again from the first after the last one.
type TVShow struct {
	tags

	title    string
	language Language
	studio   string
	player   Player

	mu       sync.RWMutex
	episodes []*Episode
	cursor   cursor
}

func newTVShow(title string, lang Language, studio string, player Player) *TVShow {
	return &TVShow{
		title:    title,
		language: lang,
		studio:   studio,
		player:   player,
	}
}

func (t *TVShow) Title() string      { return t.title }
func (t *TVShow) Language() Language { return t.language }
func (t *TVShow) Studio() string     { return t.studio }

// CreateAndAddEpisode appends a new episode numbered after the current last one.
func (t *TVShow) CreateAndAddEpisode(path, title string) *Episode {
	contract(path != "" && title != "", "episode of %q needs a path and a title", t.title)

	t.mu.Lock()
	defer t.mu.Unlock()
	ep := &Episode{
		show:   t,
		path:   path,
		title:  title,
		number: len(t.episodes) + 1,
	}
	t.episodes = append(t.episodes, ep)
	return ep
}

// Episode returns episode number n, counting from 1.
func (t *TVShow) Episode(n int) *Episode {
	t.mu.RLock()
	defer t.mu.RUnlock()
	contract(n >= 1 && n <= len(t.episodes), "%q has no episode %d (have %d)", t.title, n, len(t.episodes))
	return t.episodes[n-1]
}

// Episodes returns the episodes in order.
func (t *TVShow) Episodes() []*Episode {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Clone(t.episodes)
}

func (t *TVShow) TotalCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.episodes)
}

func (t *TVShow) RemainingCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.cursor.remaining(len(t.episodes))
}

// Next returns the episode under the cursor and advances it. The show must
// have at least one episode.
func (t *TVShow) Next() *Episode {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.episodes[t.cursor.advance(len(t.episodes))]
}

// Reset moves the cursor back to the first episode.
func (t *TVShow) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cursor.reset()
}

// Valid reports whether at least one episode is playable.
func (t *TVShow) Valid() bool {
	for _, ep := range t.Episodes() {
		if ep.Valid() {
			return true
		}
	}
	return false
}

// Watch plays every valid episode in order. The cursor is not used.
func (t *TVShow) Watch() {
	for _, ep := range t.Episodes() {
		if ep.Valid() {
			ep.Watch()
		}
	}
}

// Equal compares metadata, tags and the episode lists. Cursor position is
// ignored.
func (t *TVShow) Equal(other Watchable) bool {
	o, ok := other.(*TVShow)
	if !ok || o == nil {
		return false
	}
	if t == o {
		return true
	}
	if t.title != o.title || t.language != o.language || t.studio != o.studio {
		return false
	}
	if !t.sameTags(&o.tags) {
		return false
	}
	return slices.EqualFunc(t.Episodes(), o.Episodes(), (*Episode).sameContent)
}
