package ports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassifyURL(t *testing.T) {
	assert.Equal(t, NavAnchor, ClassifyURL("#portfolio"))
	assert.Equal(t, NavExternal, ClassifyURL("http://example.com"))
	assert.Equal(t, NavExternal, ClassifyURL("https://example.com/page"))
	assert.Equal(t, NavRelative, ClassifyURL("blog/post-1"))
	assert.Equal(t, NavRelative, ClassifyURL(""))
}

func TestFilterState_Matches(t *testing.T) {
	item := &IndexedItem{
		Type:     TypePost,
		Category: CategoryBlog,
		Metadata: map[string]string{"date": "2025-07-12"},
	}

	assert.True(t, DefaultFilters().Matches(item))
	assert.True(t, FilterState{Category: "blog", Type: FilterAll, Date: FilterAll}.Matches(item))
	assert.False(t, FilterState{Category: "music", Type: FilterAll, Date: FilterAll}.Matches(item))
	assert.False(t, FilterState{Category: FilterAll, Type: "track", Date: FilterAll}.Matches(item))
	assert.True(t, FilterState{Category: FilterAll, Type: FilterAll, Date: "2025-07-12"}.Matches(item))
	assert.False(t, FilterState{Category: FilterAll, Type: FilterAll, Date: "2024-01-01"}.Matches(item))

	// Empty filter values behave like "all".
	assert.True(t, FilterState{}.Matches(item))
}

func TestFilterState_DateWithoutMetadata(t *testing.T) {
	item := &IndexedItem{Type: TypePage, Category: CategoryAbout}
	assert.False(t, FilterState{Category: FilterAll, Type: FilterAll, Date: "2025-01-01"}.Matches(item))
}

func TestConfig_Normalize(t *testing.T) {
	cfg := Config{}.Normalize()
	def := DefaultConfig()

	assert.Equal(t, def.MinCharacters, cfg.MinCharacters)
	assert.Equal(t, def.MaxResults, cfg.MaxResults)
	assert.Equal(t, def.MaxHistoryItems, cfg.MaxHistoryItems)
	assert.Equal(t, def.DebounceDelay, cfg.DebounceDelay)
	assert.Equal(t, def.HistoryKey, cfg.HistoryKey)
	assert.Equal(t, def.RemoteTimeout, cfg.RemoteTimeout)
}

func TestConfig_NormalizeKeepsExplicitValues(t *testing.T) {
	cfg := Config{
		MinCharacters: 3,
		MaxResults:    25,
		DebounceDelay: 50 * time.Millisecond,
		HistoryKey:    "custom",
	}.Normalize()

	assert.Equal(t, 3, cfg.MinCharacters)
	assert.Equal(t, 25, cfg.MaxResults)
	assert.Equal(t, 50*time.Millisecond, cfg.DebounceDelay)
	assert.Equal(t, "custom", cfg.HistoryKey)
}

func TestConfig_NormalizeClampsNegatives(t *testing.T) {
	cfg := Config{MinCharacters: -1, MaxResults: -5}.Normalize()
	def := DefaultConfig()
	assert.Equal(t, def.MinCharacters, cfg.MinCharacters)
	assert.Equal(t, def.MaxResults, cfg.MaxResults)
}
