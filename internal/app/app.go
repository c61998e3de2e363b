// Package app wires together the adapters and domain logic: catalog,
// index, engine, history, and session controller. It provides lifecycle
// management for the psearch commands.
package app

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/junetapa-juncheol/portfolio-search/internal/adapters/bbolt"
	"github.com/junetapa-juncheol/portfolio-search/internal/adapters/content"
	"github.com/junetapa-juncheol/portfolio-search/internal/adapters/remote"
	"github.com/junetapa-juncheol/portfolio-search/internal/domain/history"
	"github.com/junetapa-juncheol/portfolio-search/internal/domain/index"
	"github.com/junetapa-juncheol/portfolio-search/internal/ports"
	"github.com/junetapa-juncheol/portfolio-search/internal/session"
)

// DataDirName is the project-local directory for the history database.
const DataDirName = ".psearch"

// App is the top-level container wiring all components together.
type App struct {
	Config  ports.Config
	Store   *bbolt.Store
	Engine  *index.Engine
	History *history.Store

	catalogPath string
	mu          sync.Mutex
}

// Options tweak construction. Zero values take defaults from the catalog.
type Options struct {
	// RemoteEndpoint overrides the catalog's api_endpoint when non-empty.
	RemoteEndpoint string

	// NoStore skips opening the history database; history becomes
	// in-memory only. Used by one-shot commands that never mutate it.
	NoStore bool

	// DBPath overrides the default .psearch/search.db location.
	DBPath string
}

// New loads the catalog, builds the index, and opens the history store.
func New(catalogPath string, opts Options) (*App, error) {
	cat, err := content.Load(catalogPath)
	if err != nil {
		return nil, err
	}

	cfg := cat.Config()
	if opts.RemoteEndpoint != "" {
		cfg.RemoteEndpoint = opts.RemoteEndpoint
	}

	idx := index.BuildIndex(cat.Sources())
	if idx.Dropped > 0 {
		log.Printf("index: dropped %d malformed or duplicate records", idx.Dropped)
	}

	var remoteSearcher ports.RemoteSearcher
	if cfg.RemoteEndpoint != "" {
		remoteSearcher = remote.NewClient(cfg.RemoteEndpoint, cfg.RemoteTimeout)
	}

	a := &App{
		Config:      cfg,
		Engine:      index.NewEngine(idx, cfg, remoteSearcher),
		catalogPath: catalogPath,
	}

	if !opts.NoStore {
		dbPath := opts.DBPath
		if dbPath == "" {
			dbPath = defaultDBPath(catalogPath)
		}
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
		store, err := bbolt.NewStore(dbPath)
		if err != nil {
			return nil, err
		}
		a.Store = store
		a.History = history.NewStore(store, cfg.HistoryKey, cfg.MaxHistoryItems)
	} else {
		a.History = history.NewStore(nil, cfg.HistoryKey, cfg.MaxHistoryItems)
	}

	return a, nil
}

// NewController builds a session controller bound to this app's engine and
// history. events and nav may be nil.
func (a *App) NewController(renderer session.Renderer, events ports.EventSink, nav ports.Navigator) *session.Controller {
	return session.NewController(a.Config, a.Engine, a.History, renderer, events, nav)
}

// Rebuild reloads the catalog and swaps in a freshly built index. The old
// index is discarded whole; token buckets are never patched in place.
func (a *App) Rebuild() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	cat, err := content.Load(a.catalogPath)
	if err != nil {
		return err
	}
	idx := index.BuildIndex(cat.Sources())
	if idx.Dropped > 0 {
		log.Printf("index: dropped %d malformed or duplicate records", idx.Dropped)
	}
	a.Engine.SwapIndex(idx)
	return nil
}

// Close releases the history database.
func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}

// defaultDBPath puts the history database next to the catalog, under the
// project-local data directory.
func defaultDBPath(catalogPath string) string {
	dir := filepath.Dir(catalogPath)
	return filepath.Join(dir, DataDirName, "search.db")
}
