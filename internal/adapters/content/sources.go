package content

import (
	"fmt"
	"strings"
	"time"

	"github.com/junetapa-juncheol/portfolio-search/internal/ports"
)

func msToDuration(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

// Static item weights per source, mirroring the site's ranking: pages
// outrank projects, which outrank posts, which outrank tracks.
const (
	weightSection = 10
	weightProject = 8
	weightPost    = 7
	weightTrack   = 6
)

// sectionCategories maps a page section id to its filter category.
var sectionCategories = map[string]ports.Category{
	"home":      ports.CategoryAbout,
	"about":     ports.CategoryAbout,
	"skills":    ports.CategoryAbout,
	"contact":   ports.CategoryAbout,
	"portfolio": ports.CategoryPortfolio,
	"music":     ports.CategoryMusic,
	"blog":      ports.CategoryBlog,
}

// Section is a static page section.
type Section struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

type sectionSource struct {
	sections []Section
}

func (s sectionSource) Name() string { return "sections" }

func (s sectionSource) Items() []ports.IndexedItem {
	var items []ports.IndexedItem
	for _, sec := range s.sections {
		if sec.ID == "" || sec.Title == "" {
			continue
		}
		category, ok := sectionCategories[sec.ID]
		if !ok {
			category = ports.CategoryAbout
		}
		items = append(items, ports.IndexedItem{
			ID:       "section-" + sec.ID,
			Title:    sec.Title,
			Content:  sec.Body,
			URL:      "#" + sec.ID,
			Type:     ports.TypePage,
			Category: category,
			Weight:   weightSection,
		})
	}
	return items
}

// Project is a portfolio entry.
type Project struct {
	ID           int      `yaml:"id"`
	Title        string   `yaml:"title"`
	Description  string   `yaml:"description"`
	Category     string   `yaml:"category"`
	Status       string   `yaml:"status"`
	Progress     int      `yaml:"progress"`
	Technologies []string `yaml:"technologies"`
	URL          string   `yaml:"url"`
	GitHub       string   `yaml:"github"`
}

type projectSource struct {
	projects []Project
}

func (s projectSource) Name() string { return "projects" }

func (s projectSource) Items() []ports.IndexedItem {
	var items []ports.IndexedItem
	for _, p := range s.projects {
		if p.ID == 0 || p.Title == "" {
			continue
		}
		id := fmt.Sprintf("portfolio-%d", p.ID)
		url := p.URL
		if url == "" {
			url = "#" + id
		}
		items = append(items, ports.IndexedItem{
			ID:       id,
			Title:    p.Title,
			Content:  p.Description + " " + strings.Join(p.Technologies, " "),
			URL:      url,
			Type:     ports.TypeProject,
			Category: ports.CategoryPortfolio,
			Weight:   weightProject,
			Metadata: map[string]string{
				"technologies": strings.Join(p.Technologies, ","),
				"category":     p.Category,
				"status":       p.Status,
			},
		})
	}
	return items
}

// Track is a music track.
type Track struct {
	ID       int    `yaml:"id"`
	Title    string `yaml:"title"`
	Artist   string `yaml:"artist"`
	Album    string `yaml:"album"`
	Genre    string `yaml:"genre"`
	Duration int    `yaml:"duration"`
	Year     int    `yaml:"year"`
}

type trackSource struct {
	tracks []Track
}

func (s trackSource) Name() string { return "tracks" }

func (s trackSource) Items() []ports.IndexedItem {
	var items []ports.IndexedItem
	for _, t := range s.tracks {
		if t.ID == 0 || t.Title == "" {
			continue
		}
		id := fmt.Sprintf("track-%d", t.ID)
		items = append(items, ports.IndexedItem{
			ID:       id,
			Title:    t.Title,
			Content:  fmt.Sprintf("%s %s %s", t.Artist, t.Album, t.Genre),
			URL:      fmt.Sprintf("#music-%d", t.ID),
			Type:     ports.TypeTrack,
			Category: ports.CategoryMusic,
			Weight:   weightTrack,
			Metadata: map[string]string{
				"artist":   t.Artist,
				"album":    t.Album,
				"genre":    t.Genre,
				"duration": fmt.Sprintf("%d", t.Duration),
			},
		})
	}
	return items
}

// Post is a blog post.
type Post struct {
	ID      int      `yaml:"id"`
	Title   string   `yaml:"title"`
	Excerpt string   `yaml:"excerpt"`
	Tags    []string `yaml:"tags"`
	Author  string   `yaml:"author"`
	Date    string   `yaml:"date"`
	URL     string   `yaml:"url"`
}

type postSource struct {
	posts []Post
}

func (s postSource) Name() string { return "posts" }

func (s postSource) Items() []ports.IndexedItem {
	var items []ports.IndexedItem
	for _, p := range s.posts {
		if p.ID == 0 || p.Title == "" {
			continue
		}
		id := fmt.Sprintf("blog-%d", p.ID)
		url := p.URL
		if url == "" {
			url = "#" + id
		}
		items = append(items, ports.IndexedItem{
			ID:       id,
			Title:    p.Title,
			Content:  p.Excerpt + " " + strings.Join(p.Tags, " "),
			URL:      url,
			Type:     ports.TypePost,
			Category: ports.CategoryBlog,
			Weight:   weightPost,
			Metadata: map[string]string{
				"tags":   strings.Join(p.Tags, ","),
				"author": p.Author,
				"date":   p.Date,
			},
		})
	}
	return items
}

// Tutorial is a learning-track entry. Indexed alongside posts since the
// site presents them in the blog category.
type Tutorial struct {
	ID          int    `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Category    string `yaml:"category"`
	Level       string `yaml:"level"`
	URL         string `yaml:"url"`
}

type tutorialSource struct {
	tutorials []Tutorial
}

func (s tutorialSource) Name() string { return "tutorials" }

func (s tutorialSource) Items() []ports.IndexedItem {
	var items []ports.IndexedItem
	for _, t := range s.tutorials {
		if t.ID == 0 || t.Title == "" {
			continue
		}
		id := fmt.Sprintf("tutorial-%d", t.ID)
		url := t.URL
		if url == "" {
			url = "#" + id
		}
		items = append(items, ports.IndexedItem{
			ID:       id,
			Title:    t.Title,
			Content:  t.Description,
			URL:      url,
			Type:     ports.TypePost,
			Category: ports.CategoryBlog,
			Weight:   weightPost,
			Metadata: map[string]string{
				"category": t.Category,
				"level":    t.Level,
			},
		})
	}
	return items
}

// Announcement is a site notice.
type Announcement struct {
	ID       int    `yaml:"id"`
	Title    string `yaml:"title"`
	Summary  string `yaml:"summary"`
	Category string `yaml:"category"`
	Priority string `yaml:"priority"`
	Date     string `yaml:"date"`
	URL      string `yaml:"url"`
}

type announcementSource struct {
	announcements []Announcement
}

func (s announcementSource) Name() string { return "announcements" }

func (s announcementSource) Items() []ports.IndexedItem {
	var items []ports.IndexedItem
	for _, a := range s.announcements {
		if a.ID == 0 || a.Title == "" {
			continue
		}
		id := fmt.Sprintf("announcement-%d", a.ID)
		url := a.URL
		if url == "" {
			url = "#" + id
		}
		items = append(items, ports.IndexedItem{
			ID:       id,
			Title:    a.Title,
			Content:  a.Summary,
			URL:      url,
			Type:     ports.TypePost,
			Category: ports.CategoryBlog,
			Weight:   weightPost,
			Metadata: map[string]string{
				"category": a.Category,
				"priority": a.Priority,
				"date":     a.Date,
			},
		})
	}
	return items
}
