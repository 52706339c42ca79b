package catalog

import (
	"cmp"
	"strings"

	"github.com/vmunix/binge/pkg/title"
)

// Policy decides which items go into a generated watchlist and in what
// order. Filter sees shows, episodes and movies alike.
type Policy interface {
	Filter(w Watchable) bool
	Compare(a, b Watchable) int
}

// FilterFunc admits or rejects a single item.
type FilterFunc func(w Watchable) bool

// CompareFunc orders two items like cmp.Compare.
type CompareFunc func(a, b Watchable) int

type funcPolicy struct {
	filter  FilterFunc
	compare CompareFunc
}

func (p funcPolicy) Filter(w Watchable) bool    { return p.filter(w) }
func (p funcPolicy) Compare(a, b Watchable) int { return p.compare(a, b) }

// NewPolicy combines a filter and a comparison. A nil filter admits
// everything; a nil comparison keeps the registry order.
func NewPolicy(filter FilterFunc, compare CompareFunc) Policy {
	if filter == nil {
		filter = MatchAll
	}
	if compare == nil {
		compare = func(Watchable, Watchable) int { return 0 }
	}
	return funcPolicy{filter: filter, compare: compare}
}

// MatchAll admits every item.
func MatchAll(Watchable) bool { return true }

// MatchValid admits items that are currently playable.
func MatchValid(w Watchable) bool { return w.Valid() }

// MatchLanguage admits items in lang.
func MatchLanguage(lang Language) FilterFunc {
	return func(w Watchable) bool { return w.Language() == lang }
}

// MatchStudio admits items from studio, ignoring case.
func MatchStudio(studio string) FilterFunc {
	return func(w Watchable) bool { return strings.EqualFold(w.Studio(), studio) }
}

// MatchInfo admits items tagged key=value.
func MatchInfo(key, value string) FilterFunc {
	return func(w Watchable) bool { return w.HasInfo(key) && w.Info(key) == value }
}

// AllOf admits items accepted by every filter.
func AllOf(filters ...FilterFunc) FilterFunc {
	return func(w Watchable) bool {
		for _, f := range filters {
			if !f(w) {
				return false
			}
		}
		return true
	}
}

// ByTitle orders by normalized title, so leading articles and accents don't
// affect the order.
func ByTitle(a, b Watchable) int { return title.Compare(a.Title(), b.Title()) }

// ByStudio orders by studio name, ignoring case.
func ByStudio(a, b Watchable) int {
	return strings.Compare(strings.ToLower(a.Studio()), strings.ToLower(b.Studio()))
}

// ByLanguage orders by language display name.
func ByLanguage(a, b Watchable) int {
	return cmp.Compare(a.Language().String(), b.Language().String())
}

// Reverse inverts c.
func Reverse(c CompareFunc) CompareFunc {
	return func(a, b Watchable) int { return c(b, a) }
}

// Then returns the first non-zero result of cmps.
func Then(cmps ...CompareFunc) CompareFunc {
	return func(a, b Watchable) int {
		for _, c := range cmps {
			if r := c(a, b); r != 0 {
				return r
			}
		}
		return 0
	}
}
