// Package remote implements the ports.RemoteSearcher interface over HTTP.
// The wire contract: GET <endpoint>?q=<query>&limit=<n> returning a JSON
// body {"results": [...]}. Callers treat every returned error as zero
// remote results; local search never depends on this path succeeding.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/junetapa-juncheol/portfolio-search/internal/ports"
)

// searchResponse is the remote endpoint's JSON body.
type searchResponse struct {
	Results []ports.SearchResult `json:"results"`
}

// Client queries a remote search endpoint.
type Client struct {
	endpoint string
	http     *http.Client
}

// NewClient creates a remote search client. The timeout is a hard
// client-side bound on the whole call.
func NewClient(endpoint string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: timeout},
	}
}

// Search issues the remote query. IsRemote tagging is the merger's job,
// not the transport's; flags from the wire are discarded.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]ports.SearchResult, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("remote endpoint: %w", err)
	}
	q := u.Query()
	q.Set("q", query)
	q.Set("limit", strconv.Itoa(limit))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("remote request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("remote search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("remote search: status %d", resp.StatusCode)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("remote decode: %w", err)
	}

	for i := range body.Results {
		body.Results[i].IsRemote = false
	}
	return body.Results, nil
}
