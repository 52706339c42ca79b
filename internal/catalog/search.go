package catalog

import (
	"cmp"
	"slices"

	"github.com/vmunix/binge/pkg/title"
)

// SearchResult is one catalog item matched by Search.
type SearchResult struct {
	Item       Watchable
	Kind       Kind
	Score      float64
	Confidence title.Confidence
}

// Search fuzzy-matches query against every movie and show title and returns
// the matches at or above threshold, best first.
func (l *Library) Search(query string, threshold title.Confidence) []SearchResult {
	var items []Watchable
	for _, m := range l.Movies() {
		items = append(items, m)
	}
	for _, t := range l.TVShows() {
		items = append(items, t)
	}

	var results []SearchResult
	for _, item := range items {
		score := title.Score(query, item.Title())
		conf := title.ConfidenceFor(score)
		if conf < threshold {
			continue
		}
		results = append(results, SearchResult{
			Item:       item,
			Kind:       KindOf(item),
			Score:      score,
			Confidence: conf,
		})
	}
	slices.SortStableFunc(results, func(a, b SearchResult) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return results
}
