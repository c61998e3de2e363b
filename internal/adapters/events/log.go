// Package events provides an analytics sink that writes search events to
// the standard logger. The session controller treats every sink as
// fire-and-forget, so this is the whole implementation.
package events

import (
	"log"

	"github.com/junetapa-juncheol/portfolio-search/internal/ports"
)

// LogSink logs events to stderr. Useful for debugging and as the default
// sink when no real analytics backend is configured.
type LogSink struct{}

// NewLogSink creates a stderr-logging event sink.
func NewLogSink() *LogSink { return &LogSink{} }

// SearchPerformed implements ports.EventSink.
func (s *LogSink) SearchPerformed(ev ports.SearchEvent) {
	log.Printf("event: search query=%q results=%d", ev.Query, ev.ResultCount)
}

// ResultSelected implements ports.EventSink.
func (s *LogSink) ResultSelected(ev ports.SelectEvent) {
	log.Printf("event: select query=%q url=%s type=%s", ev.Query, ev.URL, ev.Type)
}
