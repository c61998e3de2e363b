package index

import (
	"strings"
	"unicode/utf8"
)

// maxSuggestions caps the combined suggestion list per query.
const maxSuggestions = 5

// maxRelated caps the related keywords mined from matched items.
const maxRelated = 3

// Suggest derives up to 5 suggestions for a query: static suggestions that
// contain the query as a substring, plus up to 3 related keywords mined from
// tokens co-occurring with the query's tokens in indexed items.
func (e *Engine) Suggest(query string) []string {
	q := strings.ToLower(query)

	var out []string
	for _, s := range e.cfg.Suggestions {
		lower := strings.ToLower(s)
		if strings.Contains(lower, q) && lower != q {
			out = append(out, s)
		}
	}

	out = append(out, e.relatedKeywords(query)...)

	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out
}

// relatedKeywords collects tokens that co-occur with the query's tokens in
// any indexed item. A related token must be longer than 2 runes and not
// already part of the query.
func (e *Engine) relatedKeywords(query string) []string {
	queryTokens := Tokenize(query)
	if len(queryTokens) == 0 {
		return nil
	}
	inQuery := make(map[string]bool, len(queryTokens))
	for _, t := range queryTokens {
		inQuery[t] = true
	}

	e.mu.RLock()
	idx := e.idx
	e.mu.RUnlock()

	var related []string
	seen := make(map[string]bool)

	for i := range idx.Items {
		item := &idx.Items[i]
		itemTokens := Tokenize(item.Title + " " + item.Content)

		shared := false
		for _, t := range itemTokens {
			if inQuery[t] {
				shared = true
				break
			}
		}
		if !shared {
			continue
		}

		for _, t := range itemTokens {
			if inQuery[t] || seen[t] || utf8.RuneCountInString(t) <= 2 {
				continue
			}
			seen[t] = true
			related = append(related, t)
			if len(related) >= maxRelated {
				return related
			}
		}
	}

	return related
}
