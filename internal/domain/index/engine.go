package index

import (
	"context"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/junetapa-juncheol/portfolio-search/internal/ports"
)

// Engine orchestrates per-query searches: exact keyword lookup via the
// inverted index, fuzzy matching via linear scan, optional remote merge on
// submit, ranking, and truncation. The engine itself is synchronous;
// debouncing and stale-result suppression live in the session controller.
type Engine struct {
	mu  sync.RWMutex
	idx *Index

	cfg    ports.Config
	remote ports.RemoteSearcher // nil disables remote merge

	// debug enables phase timing output (PSEARCH_DEBUG=1).
	debug bool
}

// NewEngine creates an engine over a built index. remote may be nil.
func NewEngine(idx *Index, cfg ports.Config, remote ports.RemoteSearcher) *Engine {
	return &Engine{
		idx:    idx,
		cfg:    cfg.Normalize(),
		remote: remote,
		debug:  os.Getenv("PSEARCH_DEBUG") == "1",
	}
}

// SwapIndex replaces the index wholesale. Used when content changes: the
// old index is discarded, never patched in place.
func (e *Engine) SwapIndex(idx *Index) {
	e.mu.Lock()
	e.idx = idx
	e.mu.Unlock()
}

// Index returns the current index.
func (e *Engine) Index() *Index {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.idx
}

// Search executes one query. submit additionally triggers the remote merge
// when an endpoint is configured. A remote failure degrades to zero remote
// results; local results are always returned.
//
// Keyword and fuzzy hits for the same item are both appended, matching the
// site's observed ranking behavior (see DESIGN.md open questions).
func (e *Engine) Search(ctx context.Context, query string, filters ports.FilterState, submit bool) []ports.SearchResult {
	start := time.Now()

	e.mu.RLock()
	idx := e.idx
	e.mu.RUnlock()

	results := e.searchKeyword(idx, query, filters)
	results = append(results, e.searchFuzzy(idx, query, filters)...)

	if submit && e.remote != nil {
		results = e.mergeRemote(ctx, query, results)
	}

	ranked := rank(results, e.cfg.MaxResults)

	if e.debug {
		fmt.Fprintf(os.Stderr, "[debug] search query=%q hits=%d elapsed=%v\n",
			query, len(ranked), time.Since(start))
	}

	return ranked
}

// searchKeyword accumulates per-item keyword scores across all query tokens
// via the inverted index.
func (e *Engine) searchKeyword(idx *Index, query string, filters ports.FilterState) []ports.SearchResult {
	scores := make(map[string]float64)
	var order []string // first-match order, for stable output

	for _, token := range Tokenize(query) {
		for _, id := range idx.Tokens[token] {
			item := idx.ItemByID(id)
			if item == nil || !filters.Matches(item) {
				continue
			}
			if _, seen := scores[id]; !seen {
				order = append(order, id)
			}
			scores[id] += KeywordScore(item, token, query)
		}
	}

	results := make([]ports.SearchResult, 0, len(order))
	for _, id := range order {
		results = append(results, ports.SearchResult{
			IndexedItem: *idx.ItemByID(id),
			Score:       scores[id],
		})
	}
	return results
}

// searchFuzzy scans the whole item collection for partial and typo matches.
// Every candidate passing the filters is edit-distance scored; only scores
// above the threshold are kept. The full scan is bounded by the small size
// of the indexed catalog.
func (e *Engine) searchFuzzy(idx *Index, query string, filters ports.FilterState) []ports.SearchResult {
	var results []ports.SearchResult
	for i := range idx.Items {
		item := &idx.Items[i]
		if !filters.Matches(item) {
			continue
		}

		score := FuzzyScore(item, query)
		if score > fuzzyThreshold {
			results = append(results, ports.SearchResult{IndexedItem: *item, Score: score})
		}
	}
	return results
}

// mergeRemote appends remote results that do not duplicate a local result's
// url or title. The local result always wins a collision.
func (e *Engine) mergeRemote(ctx context.Context, query string, local []ports.SearchResult) []ports.SearchResult {
	remote, err := e.remote.Search(ctx, query, e.cfg.MaxResults)
	if err != nil {
		if e.debug {
			fmt.Fprintf(os.Stderr, "[debug] remote search failed: %v\n", err)
		}
		return local
	}

	combined := local
	for _, r := range remote {
		dup := false
		for _, l := range local {
			if l.URL == r.URL || l.Title == r.Title {
				dup = true
				break
			}
		}
		if !dup {
			r.IsRemote = true
			combined = append(combined, r)
		}
	}
	return combined
}

// rank sorts descending by score (stable) and truncates to maxResults.
func rank(results []ports.SearchResult, maxResults int) []ports.SearchResult {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if maxResults > 0 && len(results) > maxResults {
		results = results[:maxResults]
	}
	return results
}
