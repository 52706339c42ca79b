package title

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/hbollon/go-edlib"
)

// numberRegex extracts sequence numbers from titles (e.g., "2", "3")
var numberRegex = regexp.MustCompile(`\b(\d+)\b`)

// Confidence represents the confidence level of a title match.
type Confidence int

const (
	ConfidenceNone   Confidence = iota // Score < 0.70
	ConfidenceLow                      // Score >= 0.70
	ConfidenceMedium                   // Score >= 0.85
	ConfidenceHigh                     // Score >= 0.95
)

func (c Confidence) String() string {
	switch c {
	case ConfidenceHigh:
		return "high"
	case ConfidenceMedium:
		return "medium"
	case ConfidenceLow:
		return "low"
	default:
		return "none"
	}
}

// ParseConfidence converts a config string ("none", "low", "medium", "high")
// into a Confidence.
func ParseConfidence(s string) (Confidence, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "":
		return ConfidenceNone, nil
	case "low":
		return ConfidenceLow, nil
	case "medium":
		return ConfidenceMedium, nil
	case "high":
		return ConfidenceHigh, nil
	}
	return ConfidenceNone, fmt.Errorf("unknown confidence %q", s)
}

// ConfidenceFor maps a similarity score to a Confidence level.
func ConfidenceFor(score float64) Confidence {
	switch {
	case score >= 0.95:
		return ConfidenceHigh
	case score >= 0.85:
		return ConfidenceMedium
	case score >= 0.70:
		return ConfidenceLow
	default:
		return ConfidenceNone
	}
}

// MatchResult represents the result of a fuzzy title match.
type MatchResult struct {
	Title      string     // The matched candidate title
	Score      float64    // Jaro-Winkler similarity score (0.0-1.0)
	Confidence Confidence // Confidence level based on score
}

// Score returns the similarity of two titles after normalization.
// Uses Jaro-Winkler similarity, which favors prefix matches, and adjusts for
// matching or mismatching sequence numbers ("Alien 3" vs "Alien").
func Score(query, candidate string) float64 {
	q := CleanTitle(query)
	c := CleanTitle(candidate)
	score := float64(edlib.JaroWinklerSimilarity(q, c))
	return adjustScoreForNumbers(score, extractNumbers(q), extractNumbers(c))
}

// Match finds the best candidate for query.
// Title is empty when no candidate reaches ConfidenceLow.
func Match(query string, candidates []string) MatchResult {
	best := MatchResult{Confidence: ConfidenceNone}
	for _, candidate := range candidates {
		if score := Score(query, candidate); score > best.Score {
			best.Title = candidate
			best.Score = score
		}
	}

	best.Confidence = ConfidenceFor(best.Score)
	if best.Confidence == ConfidenceNone {
		best.Title = ""
	}
	return best
}

func extractNumbers(title string) []string {
	return numberRegex.FindAllString(title, -1)
}

// adjustScoreForNumbers modifies the similarity score based on sequence number matching.
// When the query has numbers:
// - Matching numbers get a bonus
// - Mismatched numbers get a penalty
// - Missing numbers in candidate also get a penalty
func adjustScoreForNumbers(score float64, queryNums, candidateNums []string) float64 {
	if len(queryNums) == 0 {
		return score
	}
	if len(candidateNums) == 0 {
		return score * 0.85
	}

	candidateSet := make(map[string]bool, len(candidateNums))
	for _, n := range candidateNums {
		candidateSet[n] = true
	}
	for _, n := range queryNums {
		if candidateSet[n] {
			return min(score*1.05, 1.0)
		}
	}
	return score * 0.90
}
