package numtext

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// maxSuggestDistance bounds the edit distance of a suggestion.
const maxSuggestDistance = 2

// vocabulary holds every word the parser accepts, in lexicon order.
var vocabulary = func() []string {
	words := make([]string, 0, len(fundamentals)+len(denominations)+1)
	for _, f := range fundamentals {
		words = append(words, f.word)
	}
	for _, d := range denominations {
		words = append(words, d.label)
	}
	return append(words, wordAnd)
}()

// suggest returns the known word closest to word, or "".
// Truncated words ("thousnd") are found by subsequence ranking; other
// misspellings fall back to Levenshtein distance.
func suggest(word string) string {
	if word == "" {
		return ""
	}

	ranks := fuzzy.RankFindFold(word, vocabulary)
	if len(ranks) > 0 {
		sort.Sort(ranks)
		return ranks[0].Target
	}

	best, bestDist := "", maxSuggestDistance+1
	for _, w := range vocabulary {
		if d := fuzzy.LevenshteinDistance(word, w); d < bestDist {
			best, bestDist = w, d
		}
	}
	return best
}
