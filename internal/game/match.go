package game

import (
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/gosimple/unidecode"
)

// matchThreshold is the similarity ratio a guess must exceed to count as
// a hit. High enough to reject different country names, low enough to
// absorb a typo or two.
const matchThreshold = 90.0

// Normalize folds diacritics to base Latin letters, lowercases, and trims
// surrounding whitespace. Guess and target are always compared in this
// form.
func Normalize(s string) string {
	return strings.TrimSpace(strings.ToLower(unidecode.Unidecode(s)))
}

// Ratio computes a symmetric 0-100 similarity score between two strings
// from their rune-wise edit distance:
//
//	ratio = 100 * (1 - distance / max(len(a)+len(b), 1))
//
// Equal strings score 100; strings with nothing in common score near 0.
func Ratio(a, b string) float64 {
	dist := levenshtein.ComputeDistance(a, b)
	den := len([]rune(a)) + len([]rune(b))
	if den < 1 {
		den = 1
	}
	return 100 * (1 - float64(dist)/float64(den))
}

// Matches reports whether guess names the target country, tolerating
// accents, case, stray whitespace, and minor typos.
func Matches(guess, target string) bool {
	return Ratio(Normalize(guess), Normalize(target)) > matchThreshold
}
