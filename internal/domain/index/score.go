package index

import (
	"strings"

	"github.com/junetapa-juncheol/portfolio-search/internal/ports"
)

// fuzzyThreshold is the minimum fuzzy score for a candidate to survive.
const fuzzyThreshold = 0.3

// KeywordScore computes the relevance of one matched keyword for an item.
// Title matches outrank content matches, a title prefix match outranks a
// plain containment, and an exact title == full-query match outranks both.
// The sum is multiplied by the item's static weight. Scores for the same
// item across multiple matched keywords are accumulated by the caller.
func KeywordScore(item *ports.IndexedItem, keyword, fullQuery string) float64 {
	var score float64

	title := strings.ToLower(item.Title)
	content := strings.ToLower(item.Content)
	kw := strings.ToLower(keyword)

	if strings.Contains(title, kw) {
		score += 10
		if strings.HasPrefix(title, kw) {
			score += 5
		}
	}

	if strings.Contains(content, kw) {
		score += 5
	}

	if title == strings.ToLower(fullQuery) {
		score += 20
	}

	weight := item.Weight
	if weight <= 0 {
		weight = 1
	}
	return score * float64(weight)
}

// FuzzyScore computes an edit-distance similarity between the query and the
// item's title and content. Title similarity is weighted double.
func FuzzyScore(item *ports.IndexedItem, query string) float64 {
	q := strings.ToLower(query)
	titleSim := Similarity(strings.ToLower(item.Title), q)
	contentSim := Similarity(strings.ToLower(item.Content), q)

	if t := titleSim * 2; t > contentSim {
		return t
	}
	return contentSim
}

// Similarity is a normalized Levenshtein similarity:
// (max(len) - distance) / max(len), over runes. Two empty strings score 0.
func Similarity(a, b string) float64 {
	ra := []rune(a)
	rb := []rune(b)

	longest := len(ra)
	if len(rb) > longest {
		longest = len(rb)
	}
	if longest == 0 {
		return 0
	}

	dist := levenshtein(ra, rb)
	return float64(longest-dist) / float64(longest)
}

// Levenshtein returns the minimum number of single-rune insertions,
// deletions, or substitutions to transform a into b.
func Levenshtein(a, b string) int {
	return levenshtein([]rune(a), []rune(b))
}

// levenshtein is the standard two-row DP over the full rune pair. O(n*m),
// bounded by the small size of indexed content.
func levenshtein(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(a)+1)
	cur := make([]int, len(a)+1)
	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		cur[0] = j
		for i := 1; i <= len(a); i++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			del := prev[i] + 1
			ins := cur[i-1] + 1
			sub := prev[i-1] + cost

			m := del
			if ins < m {
				m = ins
			}
			if sub < m {
				m = sub
			}
			cur[i] = m
		}
		prev, cur = cur, prev
	}

	return prev[len(a)]
}
