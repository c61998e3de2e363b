// Package history maintains the bounded, deduplicated, most-recent-first
// list of past search queries. Persistence is best-effort: storage failures
// are logged and never propagated to the search flow.
package history

import (
	"encoding/json"
	"log"
	"strings"

	"github.com/junetapa-juncheol/portfolio-search/internal/ports"
)

// Store holds search history in memory and flushes it to a KV store on
// every mutation. All methods are safe to call on an empty history.
type Store struct {
	kv  ports.KVStore
	key string
	max int

	entries []ports.HistoryEntry
}

// NewStore creates a history store and loads any persisted entries.
// Corrupt or missing stored data resets to an empty history.
func NewStore(kv ports.KVStore, key string, maxItems int) *Store {
	s := &Store{kv: kv, key: key, max: maxItems}
	if s.max <= 0 {
		s.max = 10
	}
	s.load()
	return s
}

// Entries returns a copy of the history, most recent first.
func (s *Store) Entries() []ports.HistoryEntry {
	out := make([]ports.HistoryEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Add records a query, optionally annotated with the selected result.
// Any existing entry with the same query (case-sensitive, as typed) is
// removed first, then the new entry is prepended and the list truncated.
func (s *Store) Add(query string, selected *ports.HistoryEntry) {
	query = strings.TrimSpace(query)
	if query == "" {
		return
	}

	s.removeQuery(query)

	entry := ports.HistoryEntry{Query: query}
	if selected != nil {
		entry.Title = selected.Title
		entry.URL = selected.URL
		entry.Type = selected.Type
	}
	s.entries = append([]ports.HistoryEntry{entry}, s.entries...)

	if len(s.entries) > s.max {
		s.entries = s.entries[:s.max]
	}

	s.persist()
}

// Remove deletes all entries matching query and persists.
func (s *Store) Remove(query string) {
	s.removeQuery(query)
	s.persist()
}

// Clear empties the history and removes the persisted value.
func (s *Store) Clear() {
	s.entries = nil
	if s.kv == nil {
		return
	}
	if err := s.kv.Remove(s.key); err != nil {
		log.Printf("history: clear failed: %v", err)
	}
}

func (s *Store) removeQuery(query string) {
	kept := s.entries[:0]
	for _, e := range s.entries {
		if e.Query != query {
			kept = append(kept, e)
		}
	}
	s.entries = kept
}

func (s *Store) load() {
	if s.kv == nil {
		return
	}
	data, err := s.kv.Get(s.key)
	if err != nil {
		log.Printf("history: load failed: %v", err)
		return
	}
	if data == nil {
		return
	}
	if err := json.Unmarshal(data, &s.entries); err != nil {
		// Corrupt history resets to empty, it is not worth failing over.
		log.Printf("history: corrupt stored data, resetting: %v", err)
		s.entries = nil
	}
	if len(s.entries) > s.max {
		s.entries = s.entries[:s.max]
	}
}

func (s *Store) persist() {
	if s.kv == nil {
		return
	}
	data, err := json.Marshal(s.entries)
	if err != nil {
		log.Printf("history: marshal failed: %v", err)
		return
	}
	if err := s.kv.Set(s.key, data); err != nil {
		log.Printf("history: persist failed: %v", err)
	}
}
