package index

import (
	"github.com/junetapa-juncheol/portfolio-search/internal/ports"
)

// Index is the searchable content index: the flat item list in
// source-then-record order plus the inverted token map. It is built once
// from the full content set and never mutated afterward; when content
// changes, the whole index is rebuilt and swapped in.
type Index struct {
	Items  []ports.IndexedItem
	Tokens map[string][]string // token -> item ids, no duplicates per token

	byID map[string]int // id -> position in Items

	// Dropped counts records rejected during the build: duplicates of an
	// already-indexed id, or records missing an id or title.
	Dropped int
}

// BuildIndex maps every source's records into indexed items and builds the
// inverted keyword index over title + content. Malformed records and
// duplicate ids are dropped; an id that appears twice keeps its first
// occurrence, so lookups stay unambiguous. Empty sources are fine.
func BuildIndex(sources []ports.ContentSource) *Index {
	idx := &Index{
		Tokens: make(map[string][]string),
		byID:   make(map[string]int),
	}

	for _, src := range sources {
		if src == nil {
			continue
		}
		for _, item := range src.Items() {
			idx.add(item)
		}
	}

	return idx
}

// add appends one item and indexes its tokens. Returns silently on
// malformed or duplicate input, bumping Dropped.
func (idx *Index) add(item ports.IndexedItem) {
	if item.ID == "" || item.Title == "" {
		idx.Dropped++
		return
	}
	if _, exists := idx.byID[item.ID]; exists {
		idx.Dropped++
		return
	}
	if item.Weight <= 0 {
		item.Weight = 1
	}

	idx.byID[item.ID] = len(idx.Items)
	idx.Items = append(idx.Items, item)

	seen := make(map[string]bool)
	for _, tok := range Tokenize(item.Title + " " + item.Content) {
		if seen[tok] {
			continue
		}
		seen[tok] = true
		idx.Tokens[tok] = append(idx.Tokens[tok], item.ID)
	}
}

// ItemByID returns the item with the given id, or nil when absent.
func (idx *Index) ItemByID(id string) *ports.IndexedItem {
	pos, ok := idx.byID[id]
	if !ok {
		return nil
	}
	return &idx.Items[pos]
}

// Len returns the number of indexed items.
func (idx *Index) Len() int { return len(idx.Items) }
