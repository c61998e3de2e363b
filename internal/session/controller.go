// Package session owns the UI-facing search state: current query, ranked
// results, selection, dropdown visibility, and filters. The controller is
// constructed with explicit references to its engine, history store, and
// render sink; there is no ambient global lookup.
package session

import (
	"context"
	"log"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/junetapa-juncheol/portfolio-search/internal/domain/history"
	"github.com/junetapa-juncheol/portfolio-search/internal/domain/index"
	"github.com/junetapa-juncheol/portfolio-search/internal/ports"
)

// Snapshot is the render-ready view of the session, emitted to the
// renderer on every state change.
type Snapshot struct {
	Query         string
	IsSearching   bool
	Failed        bool
	Results       []ports.SearchResult
	Suggestions   []string
	History       []ports.HistoryEntry
	Filters       ports.FilterState
	SelectedIndex int // -1 = none
	ShowDropdown  bool
	ShowHistory   bool
}

// Renderer receives a snapshot whenever session state changes.
type Renderer interface {
	Render(Snapshot)
}

// Controller drives the search session. All exported methods are safe for
// use from UI callbacks and timer goroutines; internally a single mutex
// serializes state mutation, and every search carries a sequence number so
// a slow completion can never overwrite a newer query's results.
type Controller struct {
	cfg      ports.Config
	engine   *index.Engine
	history  *history.Store
	renderer Renderer
	events   ports.EventSink // nil = analytics disabled
	nav      ports.Navigator // nil = navigation is a no-op

	deb *Debouncer

	mu    sync.Mutex
	seq   uint64 // latest issued search sequence number
	state Snapshot
}

// NewController wires a session controller. renderer is required; events
// and nav may be nil.
func NewController(cfg ports.Config, engine *index.Engine, hist *history.Store, renderer Renderer, events ports.EventSink, nav ports.Navigator) *Controller {
	cfg = cfg.Normalize()
	c := &Controller{
		cfg:      cfg,
		engine:   engine,
		history:  hist,
		renderer: renderer,
		events:   events,
		nav:      nav,
		deb:      NewDebouncer(cfg.DebounceDelay),
	}
	c.state = Snapshot{
		SelectedIndex: -1,
		Filters:       ports.DefaultFilters(),
		History:       hist.Entries(),
	}
	return c
}

// Snapshot returns a copy of the current session state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Input handles one keystroke's worth of query text. Queries at or above
// the minimum length are debounced and searched; shorter queries clear the
// results, and an empty query shows history instead.
func (c *Controller) Input(query string) {
	c.mu.Lock()
	c.state.Query = query
	c.state.SelectedIndex = -1

	if utf8.RuneCountInString(query) >= c.cfg.MinCharacters {
		c.state.ShowDropdown = true
		c.state.ShowHistory = false
		c.mu.Unlock()
		c.render()
		c.deb.Trigger(func() { c.runSearch(query, false) })
		return
	}

	// Below threshold: cancel any pending search, invalidate in-flight
	// completions, and clear results.
	c.deb.Cancel()
	c.seq++
	c.state.IsSearching = false
	c.state.Failed = false
	c.state.Results = nil
	c.state.Suggestions = nil
	c.state.ShowHistory = query == ""
	if c.state.ShowHistory {
		c.state.History = c.history.Entries()
	}
	c.mu.Unlock()
	c.render()
}

// Submit commits the current query: it is recorded in history, searched
// immediately (including the remote merge), and the dropdown closes.
func (c *Controller) Submit() {
	c.mu.Lock()
	query := c.state.Query
	c.mu.Unlock()

	if utf8.RuneCountInString(query) < c.cfg.MinCharacters {
		return
	}

	c.deb.Cancel()
	c.history.Add(query, nil)
	c.runSearch(query, true)

	c.mu.Lock()
	resultCount := len(c.state.Results)
	c.state.ShowDropdown = false
	c.state.SelectedIndex = -1
	c.state.History = c.history.Entries()
	c.mu.Unlock()
	c.render()

	c.emitSearch(query, resultCount)
}

// Search is the public one-shot entry point: set the query and submit it.
func (c *Controller) Search(query string) {
	c.mu.Lock()
	c.state.Query = query
	c.state.ShowDropdown = true
	c.state.ShowHistory = false
	c.mu.Unlock()
	c.Submit()
}

// MoveSelection moves the highlighted result by delta, clamped to
// [-1, len(results)-1].
func (c *Controller) MoveSelection(delta int) {
	c.mu.Lock()
	if !c.state.ShowDropdown {
		c.mu.Unlock()
		return
	}
	i := c.state.SelectedIndex + delta
	if max := len(c.state.Results) - 1; i > max {
		i = max
	}
	if i < -1 {
		i = -1
	}
	c.state.SelectedIndex = i
	c.mu.Unlock()
	c.render()
}

// SelectCurrent selects the highlighted result. With no highlight it
// falls back to submitting the raw query (the Enter contract). Tab should
// call SelectHighlighted instead, which does nothing without a highlight.
func (c *Controller) SelectCurrent() {
	c.mu.Lock()
	i := c.state.SelectedIndex
	c.mu.Unlock()

	if i < 0 {
		c.Submit()
		return
	}
	c.SelectIndex(i)
}

// SelectHighlighted selects the highlighted result, if any.
func (c *Controller) SelectHighlighted() {
	c.mu.Lock()
	i := c.state.SelectedIndex
	c.mu.Unlock()
	if i >= 0 {
		c.SelectIndex(i)
	}
}

// SelectIndex commits the result at position i: history is annotated with
// the chosen result, navigation resolves, then the dropdown closes.
func (c *Controller) SelectIndex(i int) {
	c.mu.Lock()
	if i < 0 || i >= len(c.state.Results) {
		c.mu.Unlock()
		return
	}
	result := c.state.Results[i]
	query := c.state.Query
	c.mu.Unlock()

	c.history.Add(query, &ports.HistoryEntry{
		Title: result.Title,
		URL:   result.URL,
		Type:  string(result.Type),
	})

	if c.nav != nil {
		c.nav.Navigate(result.URL, ports.ClassifyURL(result.URL))
	}

	c.mu.Lock()
	c.state.ShowDropdown = false
	c.state.SelectedIndex = -1
	c.state.History = c.history.Entries()
	c.mu.Unlock()
	c.render()

	c.emitSelect(query, result)
}

// Escape closes the dropdown and clears the selection. An in-flight search
// keeps running; its completion renders into the closed dropdown state.
func (c *Controller) Escape() {
	c.mu.Lock()
	c.state.ShowDropdown = false
	c.state.SelectedIndex = -1
	c.mu.Unlock()
	c.render()
}

// Focus opens the dropdown; with an empty query it shows history.
func (c *Controller) Focus() {
	c.mu.Lock()
	c.state.ShowDropdown = true
	if c.state.Query == "" {
		c.state.ShowHistory = true
		c.state.History = c.history.Entries()
	}
	c.mu.Unlock()
	c.render()
}

// SetFilters replaces the active filters and re-runs the current query if
// it is long enough.
func (c *Controller) SetFilters(f ports.FilterState) {
	c.mu.Lock()
	c.state.Filters = f
	query := c.state.Query
	c.mu.Unlock()
	c.render()

	if utf8.RuneCountInString(query) >= c.cfg.MinCharacters {
		c.runSearch(query, false)
	}
}

// RemoveHistory deletes one history entry and re-renders.
func (c *Controller) RemoveHistory(query string) {
	c.history.Remove(query)
	c.mu.Lock()
	c.state.History = c.history.Entries()
	c.mu.Unlock()
	c.render()
}

// ClearHistory empties the history and re-renders.
func (c *Controller) ClearHistory() {
	c.history.Clear()
	c.mu.Lock()
	c.state.History = nil
	c.mu.Unlock()
	c.render()
}

// Close cancels any pending debounced search.
func (c *Controller) Close() {
	c.deb.Cancel()
}

// runSearch executes one search invocation. The sequence number issued
// here guards against a slow completion overwriting a newer query's
// results: completions with a stale sequence are discarded.
func (c *Controller) runSearch(query string, submit bool) {
	c.mu.Lock()
	c.seq++
	seq := c.seq
	c.state.IsSearching = true
	c.state.Failed = false
	c.state.ShowHistory = false
	filters := c.state.Filters
	c.mu.Unlock()
	c.render()

	var (
		results     []ports.SearchResult
		suggestions []string
		failed      bool
	)
	func() {
		defer func() {
			if r := recover(); r != nil {
				// A panic must not strand the UI in the loading
				// state.
				log.Printf("session: search panic: %v", r)
				failed = true
				results = nil
			}
		}()
		ctx, cancel := context.WithTimeout(context.Background(), c.cfg.RemoteTimeout+time.Second)
		defer cancel()
		results = c.engine.Search(ctx, query, filters, submit)
		suggestions = c.engine.Suggest(query)
	}()

	c.mu.Lock()
	if seq != c.seq {
		// A newer search was issued while this one ran; drop it.
		c.mu.Unlock()
		return
	}
	c.state.IsSearching = false
	c.state.Failed = failed
	c.state.Results = results
	c.state.Suggestions = suggestions
	if n := len(results); c.state.SelectedIndex >= n {
		c.state.SelectedIndex = n - 1
	}
	c.mu.Unlock()
	c.render()

	if !submit && !failed {
		c.emitSearch(query, len(results))
	}
}

func (c *Controller) snapshotLocked() Snapshot {
	snap := c.state
	snap.Results = append([]ports.SearchResult(nil), c.state.Results...)
	snap.Suggestions = append([]string(nil), c.state.Suggestions...)
	snap.History = append([]ports.HistoryEntry(nil), c.state.History...)
	return snap
}

func (c *Controller) render() {
	if c.renderer == nil {
		return
	}
	c.mu.Lock()
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.renderer.Render(snap)
}

// emitSearch fires the analytics hook on its own goroutine; a panicking or
// slow sink must never block the search flow.
func (c *Controller) emitSearch(query string, count int) {
	if c.events == nil {
		return
	}
	ev := ports.SearchEvent{Query: query, ResultCount: count, Timestamp: time.Now().Unix()}
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("session: event sink panic: %v", r)
			}
		}()
		c.events.SearchPerformed(ev)
	}()
}

func (c *Controller) emitSelect(query string, result ports.SearchResult) {
	if c.events == nil {
		return
	}
	ev := ports.SelectEvent{Query: query, URL: result.URL, Type: string(result.Type), Timestamp: time.Now().Unix()}
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("session: event sink panic: %v", r)
			}
		}()
		c.events.ResultSelected(ev)
	}()
}
