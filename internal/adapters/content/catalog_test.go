package content

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junetapa-juncheol/portfolio-search/internal/domain/index"
	"github.com/junetapa-juncheol/portfolio-search/internal/ports"
)

const testCatalog = `
settings:
  min_length: 3
  max_results: 5
  debounce: 150
  highlight: false
  history_key: my_history
  api_endpoint: "http://127.0.0.1:9999/api/search"
  remote_timeout: 2000

suggestions: [포트폴리오, 블로그]

sections:
  - id: blog
    title: 블로그
    body: IT 기술 블로그
  - id: unknown-section
    title: 기타
    body: something

projects:
  - id: 1
    title: E-Commerce Platform
    description: React 쇼핑몰
    technologies: [React, Node.js]
  - id: 0
    title: malformed project

tracks:
  - id: 1
    title: 폭염 속 불꽃
    artist: Jun.C
    genre: Electronic

posts:
  - id: 1
    title: React Hooks 완벽 가이드
    excerpt: useState useEffect
    tags: [React]
    date: "2025-07-12"

tutorials:
  - id: 1
    title: Git 입문
    description: 버전 관리 기초

announcements:
  - id: 1
    title: 사이트 리뉴얼 안내
    summary: 새 단장
    date: "2025-08-01"
`

func loadTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	path := filepath.Join(t.TempDir(), "portfolio.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testCatalog), 0644))

	cat, err := Load(path)
	require.NoError(t, err)
	return cat
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\n  - not: [valid"), 0644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestConfig_FoldsOverDefaults(t *testing.T) {
	cfg := loadTestCatalog(t).Config()

	assert.Equal(t, 3, cfg.MinCharacters)
	assert.Equal(t, 5, cfg.MaxResults)
	assert.Equal(t, 150*time.Millisecond, cfg.DebounceDelay)
	assert.False(t, cfg.HighlightResults)
	assert.Equal(t, "my_history", cfg.HistoryKey)
	assert.Equal(t, "http://127.0.0.1:9999/api/search", cfg.RemoteEndpoint)
	assert.Equal(t, 2*time.Second, cfg.RemoteTimeout)
	assert.Equal(t, []string{"포트폴리오", "블로그"}, cfg.Suggestions)

	// Unset keys keep their defaults.
	assert.Equal(t, 10, cfg.MaxHistoryItems)
}

func TestConfig_EmptyCatalogIsAllDefaults(t *testing.T) {
	cfg := (&Catalog{}).Config()
	def := ports.DefaultConfig()

	assert.Equal(t, def.MinCharacters, cfg.MinCharacters)
	assert.Equal(t, def.MaxResults, cfg.MaxResults)
	assert.Equal(t, def.DebounceDelay, cfg.DebounceDelay)
	assert.Equal(t, def.HistoryKey, cfg.HistoryKey)
	assert.Empty(t, cfg.RemoteEndpoint)
}

func TestSources_FieldMapping(t *testing.T) {
	idx := index.BuildIndex(loadTestCatalog(t).Sources())

	section := idx.ItemByID("section-blog")
	require.NotNil(t, section)
	assert.Equal(t, ports.TypePage, section.Type)
	assert.Equal(t, ports.CategoryBlog, section.Category)
	assert.Equal(t, "#blog", section.URL)

	project := idx.ItemByID("portfolio-1")
	require.NotNil(t, project)
	assert.Equal(t, ports.TypeProject, project.Type)
	assert.Contains(t, project.Content, "React")
	assert.Contains(t, project.Content, "Node.js")
	assert.Equal(t, "#portfolio-1", project.URL)

	track := idx.ItemByID("track-1")
	require.NotNil(t, track)
	assert.Equal(t, ports.TypeTrack, track.Type)
	assert.Equal(t, ports.CategoryMusic, track.Category)
	assert.Equal(t, "Jun.C", track.Metadata["artist"])

	post := idx.ItemByID("blog-1")
	require.NotNil(t, post)
	assert.Equal(t, ports.TypePost, post.Type)
	assert.Equal(t, "2025-07-12", post.Metadata["date"])

	tutorial := idx.ItemByID("tutorial-1")
	require.NotNil(t, tutorial)
	assert.Equal(t, ports.TypePost, tutorial.Type)
	assert.Equal(t, ports.CategoryBlog, tutorial.Category)

	announcement := idx.ItemByID("announcement-1")
	require.NotNil(t, announcement)
	assert.Equal(t, "2025-08-01", announcement.Metadata["date"])
}

func TestSources_MalformedRecordsSkipped(t *testing.T) {
	idx := index.BuildIndex(loadTestCatalog(t).Sources())

	// The project with id 0 is dropped by its source, not the indexer.
	assert.Nil(t, idx.ItemByID("portfolio-0"))
	assert.Equal(t, 0, idx.Dropped)
}

func TestSources_UnknownSectionDefaultsToAbout(t *testing.T) {
	idx := index.BuildIndex(loadTestCatalog(t).Sources())

	sec := idx.ItemByID("section-unknown-section")
	require.NotNil(t, sec)
	assert.Equal(t, ports.CategoryAbout, sec.Category)
}
