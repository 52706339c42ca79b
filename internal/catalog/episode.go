package catalog

// Episode is one numbered part of a TVShow. Episodes are created through
// TVShow.CreateAndAddEpisode and never change afterwards. Language, studio
// and tags are the owning show's.
type Episode struct {
	show   *TVShow
	path   string
	title  string
	number int
}

// Show returns the show the episode belongs to.
func (e *Episode) Show() *TVShow { return e.show }

// Number is the 1-based position of the episode within its show.
func (e *Episode) Number() int { return e.number }

func (e *Episode) Path() string       { return e.path }
func (e *Episode) Title() string      { return e.title }
func (e *Episode) Language() Language { return e.show.language }
func (e *Episode) Studio() string     { return e.show.studio }

func (e *Episode) HasInfo(key string) bool { return e.show.HasInfo(key) }
func (e *Episode) Info(key string) string  { return e.show.Info(key) }

// Valid reports whether the episode file exists and is readable.
func (e *Episode) Valid() bool { return checkFile(e.path) == "" }

// Watch plays the episode.
func (e *Episode) Watch() { e.show.player.Play(e.path, e.title) }

// Equal reports whether other is an episode of the same show with the same
// path, title and number.
func (e *Episode) Equal(other Watchable) bool {
	o, ok := other.(*Episode)
	if !ok || o == nil {
		return false
	}
	return e.show == o.show && e.sameContent(o)
}

func (e *Episode) sameContent(o *Episode) bool {
	return e.path == o.path && e.title == o.title && e.number == o.number
}
