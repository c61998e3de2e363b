// Package ports defines the interfaces (contracts) that adapters must implement.
// These are the boundaries of the hexagonal architecture. Domain logic depends
// only on these interfaces, never on concrete implementations.
package ports

import "context"

// KVStore is the persistence boundary for small JSON blobs (search history).
// Implementations must make each write atomic; a crash mid-write must not
// corrupt previously committed data.
type KVStore interface {
	// Get returns the raw JSON stored under key, or nil, nil when absent.
	Get(key string) ([]byte, error)

	// Set stores raw JSON under key, overwriting any prior value.
	Set(key string, value []byte) error

	// Remove deletes the value under key. Removing an absent key is not
	// an error.
	Remove(key string) error
}

// RawRecord is one untyped record from a content source. The indexer maps
// it into an IndexedItem using the source's field mapping.
type RawRecord map[string]any

// ContentSource yields raw records for indexing. A source that cannot load
// should return an empty slice rather than failing the whole build.
type ContentSource interface {
	// Name identifies the source in logs ("sections", "tracks", ...).
	Name() string

	// Items returns the mapped items in record order. Malformed records
	// are skipped, never propagated as errors.
	Items() []IndexedItem
}

// RemoteSearcher queries an external search endpoint. Implementations treat
// every transport or parse failure as zero results.
type RemoteSearcher interface {
	Search(ctx context.Context, query string, limit int) ([]SearchResult, error)
}

// EventSink receives analytics events. Calls are fire-and-forget: they must
// never block or fail the search flow.
type EventSink interface {
	SearchPerformed(ev SearchEvent)
	ResultSelected(ev SelectEvent)
}

// NavKind classifies where a selected result leads.
type NavKind int

const (
	// NavAnchor is an internal anchor ("#section") — scroll in place.
	NavAnchor NavKind = iota
	// NavExternal is an absolute URL — open in a new context.
	NavExternal
	// NavRelative is any other relative path — full navigation.
	NavRelative
)

// Navigator resolves the navigation side effect of selecting a result.
type Navigator interface {
	Navigate(url string, kind NavKind)
}

// ClassifyURL maps a result URL to its navigation kind.
func ClassifyURL(url string) NavKind {
	switch {
	case len(url) > 0 && url[0] == '#':
		return NavAnchor
	case len(url) >= 7 && (url[:7] == "http://" || (len(url) >= 8 && url[:8] == "https://")):
		return NavExternal
	default:
		return NavRelative
	}
}
