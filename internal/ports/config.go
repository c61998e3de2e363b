package ports

import "time"

// Config is the single explicit configuration structure for the search
// subsystem. It is defaulted and validated once at construction and passed
// down by value; components never reach into ambient globals.
type Config struct {
	// MinCharacters is the minimum query length before a search runs.
	MinCharacters int

	// MaxResults caps the ranked result list per search.
	MaxResults int

	// MaxHistoryItems bounds the persisted search history.
	MaxHistoryItems int

	// DebounceDelay is the quiet period after a keystroke before a
	// search fires.
	DebounceDelay time.Duration

	// HistoryKey is the persistence key for search history.
	HistoryKey string

	// RemoteEndpoint is the optional remote search URL. Empty disables
	// remote merge.
	RemoteEndpoint string

	// RemoteTimeout bounds the remote search call.
	RemoteTimeout time.Duration

	// HighlightResults toggles match highlighting in rendered output.
	HighlightResults bool

	// Suggestions is the static suggestion list filtered per query.
	Suggestions []string
}

// DefaultConfig returns the configuration defaults observed by the rest of
// the system when a field is left unset.
func DefaultConfig() Config {
	return Config{
		MinCharacters:    2,
		MaxResults:       10,
		MaxHistoryItems:  10,
		DebounceDelay:    300 * time.Millisecond,
		HistoryKey:       "search_history",
		RemoteTimeout:    10 * time.Second,
		HighlightResults: true,
	}
}

// Normalize fills zero-valued fields with defaults and clamps nonsense
// values. Returns the receiver for chaining.
func (c Config) Normalize() Config {
	def := DefaultConfig()
	if c.MinCharacters <= 0 {
		c.MinCharacters = def.MinCharacters
	}
	if c.MaxResults <= 0 {
		c.MaxResults = def.MaxResults
	}
	if c.MaxHistoryItems <= 0 {
		c.MaxHistoryItems = def.MaxHistoryItems
	}
	if c.DebounceDelay <= 0 {
		c.DebounceDelay = def.DebounceDelay
	}
	if c.HistoryKey == "" {
		c.HistoryKey = def.HistoryKey
	}
	if c.RemoteTimeout <= 0 {
		c.RemoteTimeout = def.RemoteTimeout
	}
	return c
}
