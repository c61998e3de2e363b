// Package content loads the site's content catalog from YAML and exposes
// it as content sources for the indexer. The per-source field mapping here
// is the only place the raw record shapes are interpreted.
package content

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/junetapa-juncheol/portfolio-search/internal/ports"
)

// Settings mirrors the catalog's search settings block. Durations are in
// milliseconds, matching the site's original configuration keys.
type Settings struct {
	MinLength       int    `yaml:"min_length"`
	MaxResults      int    `yaml:"max_results"`
	DebounceMs      int    `yaml:"debounce"`
	Highlight       *bool  `yaml:"highlight"`
	MaxHistoryItems int    `yaml:"max_history_items"`
	HistoryKey      string `yaml:"history_key"`
	APIEndpoint     string `yaml:"api_endpoint"`
	RemoteTimeoutMs int    `yaml:"remote_timeout"`
}

// Catalog is the full content catalog document.
type Catalog struct {
	Settings      Settings       `yaml:"settings"`
	Suggestions   []string       `yaml:"suggestions"`
	Sections      []Section      `yaml:"sections"`
	Projects      []Project      `yaml:"projects"`
	Tracks        []Track        `yaml:"tracks"`
	Posts         []Post         `yaml:"posts"`
	Tutorials     []Tutorial     `yaml:"tutorials"`
	Announcements []Announcement `yaml:"announcements"`
}

// Load reads and decodes a catalog file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return &cat, nil
}

// Config folds the catalog settings over the defaults into one explicit
// configuration value.
func (c *Catalog) Config() ports.Config {
	cfg := ports.DefaultConfig()
	s := c.Settings

	if s.MinLength > 0 {
		cfg.MinCharacters = s.MinLength
	}
	if s.MaxResults > 0 {
		cfg.MaxResults = s.MaxResults
	}
	if s.DebounceMs > 0 {
		cfg.DebounceDelay = msToDuration(s.DebounceMs)
	}
	if s.Highlight != nil {
		cfg.HighlightResults = *s.Highlight
	}
	if s.MaxHistoryItems > 0 {
		cfg.MaxHistoryItems = s.MaxHistoryItems
	}
	if s.HistoryKey != "" {
		cfg.HistoryKey = s.HistoryKey
	}
	if s.RemoteTimeoutMs > 0 {
		cfg.RemoteTimeout = msToDuration(s.RemoteTimeoutMs)
	}
	cfg.RemoteEndpoint = s.APIEndpoint
	cfg.Suggestions = append([]string(nil), c.Suggestions...)

	return cfg.Normalize()
}

// Sources returns one content source per catalog section, in the order the
// site indexed them. Empty sections yield empty sources, never errors.
func (c *Catalog) Sources() []ports.ContentSource {
	return []ports.ContentSource{
		sectionSource{c.Sections},
		projectSource{c.Projects},
		trackSource{c.Tracks},
		postSource{c.Posts},
		tutorialSource{c.Tutorials},
		announcementSource{c.Announcements},
	}
}
