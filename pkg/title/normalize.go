// Package title normalizes media titles and ranks them by similarity.
package title

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// romanNumeralRegex matches Roman numerals II-IX when preceded by a space.
// Standalone "I" and "X" are skipped ("I Robot", "American History X").
var romanNumeralRegex = regexp.MustCompile(`(?i) (ii|iii|iv|v|vi|vii|viii|ix)\b`)

var romanToArabic = map[string]string{
	"II": "2", "III": "3", "IV": "4", "V": "5",
	"VI": "6", "VII": "7", "VIII": "8", "IX": "9",
}

var leadingArticles = []string{"the ", "a ", "an "}

// NormalizeRomanNumerals converts Roman numerals (II-IX) to Arabic numbers.
// Numerals at the start of the string are left alone.
func NormalizeRomanNumerals(s string) string {
	return romanNumeralRegex.ReplaceAllStringFunc(s, func(match string) string {
		roman := strings.TrimSpace(match)
		if arabic, ok := romanToArabic[strings.ToUpper(roman)]; ok {
			return " " + arabic
		}
		return match
	})
}

// CleanTitle normalizes a title for matching and sorting.
// Lowercases, folds accents, drops leading articles and punctuation,
// converts Roman numerals and collapses whitespace.
func CleanTitle(title string) string {
	s := strings.ToLower(title)
	s = NormalizeRomanNumerals(s)
	s = removeAccents(s)

	s = strings.ReplaceAll(s, "&", " and ")
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "'", "")
	s = strings.ReplaceAll(s, ".", " ")

	// Subtitles ("Léon: The Professional") get their own article stripped.
	parts := strings.Split(s, ":")
	for i, part := range parts {
		parts[i] = stripLeadingArticle(strings.TrimSpace(part))
	}
	s = strings.Join(parts, " ")

	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// Compare orders two titles by their cleaned form, falling back to the raw
// strings so distinct titles never compare equal.
func Compare(a, b string) int {
	if c := strings.Compare(CleanTitle(a), CleanTitle(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}

func stripLeadingArticle(s string) string {
	s = strings.TrimSpace(s)
	for _, art := range leadingArticles {
		if strings.HasPrefix(s, art) {
			return strings.TrimPrefix(s, art)
		}
	}
	return s
}
