package ports

// ItemType classifies an indexed item. Controls icon/label only; ranking
// is driven by Weight.
type ItemType string

const (
	TypePage    ItemType = "page"
	TypeProject ItemType = "project"
	TypePost    ItemType = "post"
	TypeTrack   ItemType = "track"
)

// Category groups items for filtering.
type Category string

const (
	CategoryAbout     Category = "about"
	CategoryPortfolio Category = "portfolio"
	CategoryBlog      Category = "blog"
	CategoryMusic     Category = "music"
)

// IndexedItem is one searchable unit. Items are built once at startup and
// are immutable for the process lifetime.
type IndexedItem struct {
	ID       string            `json:"id"`
	Title    string            `json:"title"`
	Content  string            `json:"content"`
	URL      string            `json:"url"`
	Type     ItemType          `json:"type"`
	Category Category          `json:"category"`
	Weight   int               `json:"weight"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// SearchResult is an indexed item plus its relevance score for one search
// invocation. Scores are only comparable within a single invocation.
type SearchResult struct {
	IndexedItem
	Score    float64 `json:"score"`
	IsRemote bool    `json:"isRemote"`
}

// HistoryEntry records a past query, optionally annotated with the result
// the user selected. Title/URL/Type are empty for bare query submissions.
type HistoryEntry struct {
	Query string `json:"query"`
	Title string `json:"title,omitempty"`
	URL   string `json:"url,omitempty"`
	Type  string `json:"type,omitempty"`
}

// FilterAll is the unconstrained filter value.
const FilterAll = "all"

// FilterState narrows search results. "all" means unconstrained; any other
// value must exactly equal the item's corresponding field.
type FilterState struct {
	Category string `json:"category"`
	Type     string `json:"type"`
	Date     string `json:"date"`
}

// DefaultFilters returns an unconstrained filter state.
func DefaultFilters() FilterState {
	return FilterState{Category: FilterAll, Type: FilterAll, Date: FilterAll}
}

// Matches reports whether an item passes the active filters.
// Date filters compare against the item's "date" metadata field.
func (f FilterState) Matches(item *IndexedItem) bool {
	if f.Category != FilterAll && f.Category != "" && string(item.Category) != f.Category {
		return false
	}
	if f.Type != FilterAll && f.Type != "" && string(item.Type) != f.Type {
		return false
	}
	if f.Date != FilterAll && f.Date != "" && item.Metadata["date"] != f.Date {
		return false
	}
	return true
}

// SearchEvent is emitted after every completed search.
type SearchEvent struct {
	Query       string `json:"query"`
	ResultCount int    `json:"resultsCount"`
	Timestamp   int64  `json:"timestamp"`
}

// SelectEvent is emitted when a result is chosen.
type SelectEvent struct {
	Query     string `json:"query"`
	URL       string `json:"url"`
	Type      string `json:"type"`
	Timestamp int64  `json:"timestamp"`
}
