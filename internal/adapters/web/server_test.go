package web

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junetapa-juncheol/portfolio-search/internal/adapters/remote"
	"github.com/junetapa-juncheol/portfolio-search/internal/domain/index"
	"github.com/junetapa-juncheol/portfolio-search/internal/ports"
)

type staticSource struct{ items []ports.IndexedItem }

func (s staticSource) Name() string               { return "static" }
func (s staticSource) Items() []ports.IndexedItem { return s.items }

func startTestServer(t *testing.T) *Server {
	t.Helper()

	idx := index.BuildIndex([]ports.ContentSource{staticSource{[]ports.IndexedItem{
		{ID: "blog-1", Title: "React Hooks 완벽 가이드", Content: "useState useEffect",
			URL: "#blog-1", Type: ports.TypePost, Category: ports.CategoryBlog, Weight: 7},
		{ID: "portfolio-1", Title: "React Shop", Content: "fullstack commerce",
			URL: "#portfolio-1", Type: ports.TypeProject, Category: ports.CategoryPortfolio, Weight: 8},
	}}})
	srv := NewServer(index.NewEngine(idx, ports.DefaultConfig(), nil))
	require.NoError(t, srv.Start(0))
	t.Cleanup(srv.Stop)
	return srv
}

func TestServer_Search(t *testing.T) {
	srv := startTestServer(t)

	resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/api/search?q=react", srv.Port()))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Results []ports.SearchResult `json:"results"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body.Results)
}

func TestServer_SearchLimit(t *testing.T) {
	srv := startTestServer(t)

	resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/api/search?q=react&limit=1", srv.Port()))
	require.NoError(t, err)
	defer resp.Body.Close()

	var body struct {
		Results []ports.SearchResult `json:"results"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Results, 1)
}

func TestServer_SearchMissingQuery(t *testing.T) {
	srv := startTestServer(t)

	resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/api/search", srv.Port()))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestServer_SearchEmptyResultsIsArray(t *testing.T) {
	srv := startTestServer(t)

	resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/api/search?q=zzzqqq", srv.Port()))
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.JSONEq(t, `[]`, string(body["results"]), "absent results must encode as [], not null")
}

func TestServer_Health(t *testing.T) {
	srv := startTestServer(t)

	resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/api/health", srv.Port()))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, float64(2), body["items"])
}

// The server speaks the same wire format the remote client consumes, so one
// psearch instance can serve as another's remote endpoint.
func TestServer_CompatibleWithRemoteClient(t *testing.T) {
	srv := startTestServer(t)

	c := remote.NewClient(fmt.Sprintf("http://127.0.0.1:%d/api/search", srv.Port()), time.Second)
	results, err := c.Search(context.Background(), "react", 10)
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "React Shop", results[0].Title)
}
