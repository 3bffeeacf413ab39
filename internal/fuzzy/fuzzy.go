// Package fuzzy scores string similarity on a 0-100 scale.
package fuzzy

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agext/levenshtein"
)

// indel counts a substitution as one deletion plus one insertion, so the
// distance is len(a)+len(b)-2*LCS(a, b).
var indel = levenshtein.NewParams().SubCost(2)

// Scorer compares two strings and returns a similarity in [0, 100].
type Scorer func(a, b string) float64

// Ratio returns the normalized indel similarity of a and b.
func Ratio(a, b string) float64 {
	la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
	if la+lb == 0 {
		return 100
	}
	if la == 0 || lb == 0 {
		return 0
	}
	dist := levenshtein.Distance(a, b, indel)
	return 100 * (1 - float64(dist)/float64(la+lb))
}

// TokenSortRatio compares a and b after sorting their whitespace-separated
// tokens, so word order does not matter.
func TokenSortRatio(a, b string) float64 {
	return Ratio(sortTokens(a), sortTokens(b))
}

func sortTokens(s string) string {
	tokens := strings.Fields(s)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

// Match is the best choice found by ExtractOne.
type Match struct {
	Choice string
	Score  float64
	Index  int
}

// ExtractOne returns the highest scoring choice for query. Ties keep the
// earliest choice. ok is false when choices is empty.
func ExtractOne(query string, choices []string, scorer Scorer) (best Match, ok bool) {
	if scorer == nil {
		scorer = Ratio
	}
	best.Index = -1
	for i, c := range choices {
		score := scorer(query, c)
		if best.Index < 0 || score > best.Score {
			best = Match{Choice: c, Score: score, Index: i}
		}
	}
	return best, best.Index >= 0
}
