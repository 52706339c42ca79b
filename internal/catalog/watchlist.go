package catalog

import (
	"slices"
	"sync"
)

// WatchList is a named, ordered list of items to watch.
//
// It can be consumed two ways: RemoveNext pops items off the front, while
// the Bingeable methods cycle through the list without changing it.
type WatchList struct {
	mu     sync.RWMutex
	name   string
	items  []Watchable
	cursor cursor
}

// NewWatchList creates an empty watchlist.
func NewWatchList(name string) *WatchList {
	return &WatchList{name: name}
}

func (w *WatchList) Name() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.name
}

func (w *WatchList) SetName(name string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.name = name
}

// Add appends item to the end of the list.
func (w *WatchList) Add(item Watchable) {
	contract(item != nil, "nil item added to watchlist")
	w.mu.Lock()
	defer w.mu.Unlock()
	w.items = append(w.items, item)
}

// RemoveNext removes and returns the first item. The list must not be empty.
func (w *WatchList) RemoveNext() Watchable {
	w.mu.Lock()
	defer w.mu.Unlock()
	contract(len(w.items) > 0, "watchlist %q is empty", w.name)
	first := w.items[0]
	w.items = slices.Delete(w.items, 0, 1)
	w.cursor.shift(len(w.items))
	return first
}

// Items returns the contents in order.
func (w *WatchList) Items() []Watchable {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return slices.Clone(w.items)
}

// ValidCount returns how many items are currently playable.
func (w *WatchList) ValidCount() int {
	n := 0
	for _, item := range w.Items() {
		if item.Valid() {
			n++
		}
	}
	return n
}

func (w *WatchList) TotalCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.items)
}

func (w *WatchList) RemainingCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.cursor.remaining(len(w.items))
}

// Next returns the item under the cursor and advances it, wrapping after the
// last item. The list must not be empty.
func (w *WatchList) Next() Watchable {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.items[w.cursor.advance(len(w.items))]
}

// Reset moves the cursor back to the first item.
func (w *WatchList) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.cursor.reset()
}

// Equal reports whether both lists hold equal items in the same order.
// Names and cursor positions don't matter; two empty lists are equal.
func (w *WatchList) Equal(other *WatchList) bool {
	if other == nil {
		return false
	}
	if w == other {
		return true
	}
	return slices.EqualFunc(w.Items(), other.Items(), Watchable.Equal)
}
