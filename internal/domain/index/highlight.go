package index

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Highlight wraps every case-insensitive occurrence of any query token in
// the given marker pair. Overlapping or adjacent matches from different
// tokens are merged into one marked span, so markers never nest.
func Highlight(text, query, openMark, closeMark string) string {
	tokens := Tokenize(query)
	if len(tokens) == 0 {
		return text
	}

	lower := strings.ToLower(text)
	if len(lower) != len(text) {
		// Case folding changed byte offsets (rare outside ASCII/Hangul
		// content); match against the original text instead.
		lower = text
	}

	type span struct{ start, end int }
	var spans []span
	for _, tok := range tokens {
		from := 0
		for {
			i := strings.Index(lower[from:], tok)
			if i < 0 {
				break
			}
			start := from + i
			spans = append(spans, span{start, start + len(tok)})
			from = start + len(tok)
		}
	}
	if len(spans) == 0 {
		return text
	}

	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })

	// Merge overlaps
	merged := spans[:1]
	for _, s := range spans[1:] {
		last := &merged[len(merged)-1]
		if s.start <= last.end {
			if s.end > last.end {
				last.end = s.end
			}
			continue
		}
		merged = append(merged, s)
	}

	var b strings.Builder
	b.Grow(len(text) + len(merged)*(len(openMark)+len(closeMark)))
	pos := 0
	for _, s := range merged {
		b.WriteString(text[pos:s.start])
		b.WriteString(openMark)
		b.WriteString(text[s.start:s.end])
		b.WriteString(closeMark)
		pos = s.end
	}
	b.WriteString(text[pos:])
	return b.String()
}

// TruncateContent shortens a snippet to at most max bytes, cutting at the
// last word boundary and appending an ellipsis.
func TruncateContent(content string, max int) string {
	if len(content) <= max {
		return content
	}

	truncated := content[:max]
	// Avoid splitting a multi-byte rune
	for len(truncated) > 0 {
		r, size := utf8.DecodeLastRuneInString(truncated)
		if r == utf8.RuneError && size <= 1 {
			truncated = truncated[:len(truncated)-1]
			continue
		}
		break
	}
	if i := strings.LastIndex(truncated, " "); i > 0 {
		truncated = truncated[:i]
	}
	return truncated + "..."
}
