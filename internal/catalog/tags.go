package catalog

import (
	"maps"
	"strings"
	"sync"
)

// tags is the mutable key/value metadata carried by movies and shows.
type tags struct {
	mu sync.RWMutex
	m  map[string]string
}

func checkKey(key string) {
	contract(strings.TrimSpace(key) != "", "blank info key")
}

// HasInfo reports whether a tag is set for key.
func (t *tags) HasInfo(key string) bool {
	checkKey(key)
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.m[key]
	return ok
}

// Info returns the tag stored under key. Check HasInfo first: asking for an
// unset key panics.
func (t *tags) Info(key string) string {
	checkKey(key)
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.m[key]
	contract(ok, "no info for key %q", key)
	return v
}

// SetInfo stores value under key and returns the value it replaced, if any.
func (t *tags) SetInfo(key, value string) (string, bool) {
	checkKey(key)
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.m == nil {
		t.m = make(map[string]string)
	}
	prev, ok := t.m[key]
	t.m[key] = value
	return prev, ok
}

// DeleteInfo removes key and returns the value it held, if any.
func (t *tags) DeleteInfo(key string) (string, bool) {
	checkKey(key)
	t.mu.Lock()
	defer t.mu.Unlock()
	prev, ok := t.m[key]
	delete(t.m, key)
	return prev, ok
}

// InfoMap returns a copy of all tags.
func (t *tags) InfoMap() map[string]string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make(map[string]string, len(t.m))
	maps.Copy(out, t.m)
	return out
}

func (t *tags) sameTags(o *tags) bool {
	return maps.Equal(t.InfoMap(), o.InfoMap())
}
