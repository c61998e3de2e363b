package history

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junetapa-juncheol/portfolio-search/internal/ports"
)

// memKV is an in-memory KVStore for tests.
type memKV struct {
	data map[string][]byte
	sets int
}

func newMemKV() *memKV { return &memKV{data: make(map[string][]byte)} }

func (m *memKV) Get(key string) ([]byte, error) { return m.data[key], nil }

func (m *memKV) Set(key string, value []byte) error {
	m.sets++
	m.data[key] = value
	return nil
}

func (m *memKV) Remove(key string) error {
	delete(m.data, key)
	return nil
}

func TestAdd_MostRecentFirst(t *testing.T) {
	s := NewStore(newMemKV(), "h", 10)
	s.Add("first", nil)
	s.Add("second", nil)

	entries := s.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "second", entries[0].Query)
	assert.Equal(t, "first", entries[1].Query)
}

func TestAdd_DeduplicatesAndPromotes(t *testing.T) {
	s := NewStore(newMemKV(), "h", 10)
	s.Add("react", nil)
	s.Add("blog", nil)
	s.Add("react", nil)

	entries := s.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "react", entries[0].Query)
	assert.Equal(t, "blog", entries[1].Query)
}

func TestAdd_Bounded(t *testing.T) {
	s := NewStore(newMemKV(), "h", 3)
	for _, q := range []string{"q1", "q2", "q3", "q4", "q5"} {
		s.Add(q, nil)
	}

	entries := s.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "q5", entries[0].Query)
	assert.Equal(t, "q3", entries[2].Query)
}

func TestAdd_TrimsAndSkipsEmpty(t *testing.T) {
	s := NewStore(newMemKV(), "h", 10)
	s.Add("  react  ", nil)
	s.Add("   ", nil)

	entries := s.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "react", entries[0].Query)
}

func TestAdd_SelectedAnnotation(t *testing.T) {
	s := NewStore(newMemKV(), "h", 10)
	s.Add("react", &ports.HistoryEntry{Title: "React Hooks 완벽 가이드", URL: "#blog-1", Type: "post"})

	entries := s.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "react", entries[0].Query)
	assert.Equal(t, "React Hooks 완벽 가이드", entries[0].Title)
	assert.Equal(t, "#blog-1", entries[0].URL)
}

func TestPersistenceRoundTrip(t *testing.T) {
	kv := newMemKV()

	s := NewStore(kv, "h", 10)
	s.Add("react", nil)
	s.Add("블로그", nil)

	reloaded := NewStore(kv, "h", 10)
	entries := reloaded.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "블로그", entries[0].Query)
}

func TestLoad_CorruptDataResets(t *testing.T) {
	kv := newMemKV()
	kv.data["h"] = []byte("{not json")

	s := NewStore(kv, "h", 10)
	assert.Empty(t, s.Entries())

	// The store must stay usable after a corrupt load.
	s.Add("react", nil)
	assert.Len(t, s.Entries(), 1)
}

func TestLoad_TruncatesOversized(t *testing.T) {
	kv := newMemKV()
	big := make([]ports.HistoryEntry, 20)
	for i := range big {
		big[i] = ports.HistoryEntry{Query: "q"}
	}
	data, err := json.Marshal(big)
	require.NoError(t, err)
	kv.data["h"] = data

	s := NewStore(kv, "h", 5)
	assert.Len(t, s.Entries(), 5)
}

func TestRemoveAndClear(t *testing.T) {
	kv := newMemKV()
	s := NewStore(kv, "h", 10)
	s.Add("react", nil)
	s.Add("blog", nil)

	s.Remove("react")
	require.Len(t, s.Entries(), 1)

	s.Clear()
	assert.Empty(t, s.Entries())
	assert.Nil(t, kv.data["h"])
}

func TestNilKVIsInMemory(t *testing.T) {
	s := NewStore(nil, "h", 10)
	s.Add("react", nil)
	assert.Len(t, s.Entries(), 1)
	s.Clear()
	assert.Empty(t, s.Entries())
}
