package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junetapa-juncheol/portfolio-search/internal/ports"
)

const testCatalog = `
settings:
  min_length: 2
  max_results: 10

suggestions: [블로그]

sections:
  - id: blog
    title: 블로그
    body: IT 기술 블로그

posts:
  - id: 1
    title: React Hooks 완벽 가이드
    excerpt: useState useEffect
`

func writeCatalog(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "portfolio.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestNew_WiresEverything(t *testing.T) {
	a, err := New(writeCatalog(t, testCatalog), Options{})
	require.NoError(t, err)
	defer a.Close()

	assert.NotNil(t, a.Store)
	assert.NotNil(t, a.History)
	assert.Equal(t, 2, a.Engine.Index().Len())

	results := a.Engine.Search(context.Background(), "react", ports.DefaultFilters(), false)
	assert.NotEmpty(t, results)
}

func TestNew_NoStoreKeepsHistoryInMemory(t *testing.T) {
	a, err := New(writeCatalog(t, testCatalog), Options{NoStore: true})
	require.NoError(t, err)
	defer a.Close()

	assert.Nil(t, a.Store)
	a.History.Add("react", nil)
	assert.Len(t, a.History.Entries(), 1)
}

func TestNew_MissingCatalog(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope.yaml"), Options{})
	assert.Error(t, err)
}

func TestNew_RemoteEndpointOverride(t *testing.T) {
	a, err := New(writeCatalog(t, testCatalog), Options{
		NoStore:        true,
		RemoteEndpoint: "http://127.0.0.1:9999/api/search",
	})
	require.NoError(t, err)
	defer a.Close()

	assert.Equal(t, "http://127.0.0.1:9999/api/search", a.Config.RemoteEndpoint)
}

func TestRebuild_SwapsIndex(t *testing.T) {
	path := writeCatalog(t, testCatalog)
	a, err := New(path, Options{NoStore: true})
	require.NoError(t, err)
	defer a.Close()
	require.Equal(t, 2, a.Engine.Index().Len())

	updated := testCatalog + `
tracks:
  - id: 1
    title: 폭염 속 불꽃
    artist: Jun.C
`
	require.NoError(t, os.WriteFile(path, []byte(updated), 0644))
	require.NoError(t, a.Rebuild())

	assert.Equal(t, 3, a.Engine.Index().Len())
	results := a.Engine.Search(context.Background(), "폭염", ports.DefaultFilters(), false)
	assert.NotEmpty(t, results)
}

func TestRebuild_BadCatalogKeepsOldIndex(t *testing.T) {
	path := writeCatalog(t, testCatalog)
	a, err := New(path, Options{NoStore: true})
	require.NoError(t, err)
	defer a.Close()

	require.NoError(t, os.WriteFile(path, []byte(":\n  - not: [valid"), 0644))
	assert.Error(t, a.Rebuild())
	assert.Equal(t, 2, a.Engine.Index().Len(), "failed rebuild must not clobber the index")
}

func TestHistoryPersistsAcrossRestart(t *testing.T) {
	path := writeCatalog(t, testCatalog)

	a, err := New(path, Options{})
	require.NoError(t, err)
	a.History.Add("react", nil)
	require.NoError(t, a.Close())

	b, err := New(path, Options{})
	require.NoError(t, err)
	defer b.Close()

	entries := b.History.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "react", entries[0].Query)
}
