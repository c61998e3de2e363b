// Package web serves the local search engine over HTTP using the same wire
// format the remote client consumes, so one instance can act as another's
// remote endpoint.
package web

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/junetapa-juncheol/portfolio-search/internal/domain/index"
	"github.com/junetapa-juncheol/portfolio-search/internal/ports"
)

// Server exposes /api/search and /api/health.
type Server struct {
	engine   *index.Engine
	listener net.Listener
	httpSrv  *http.Server
	port     int
	started  time.Time
	stopOnce sync.Once
}

// NewServer creates an HTTP server over a search engine.
func NewServer(engine *index.Engine) *Server {
	return &Server{engine: engine}
}

// Start begins listening on the given port (0 picks a free one).
func (s *Server) Start(port int) error {
	addr := fmt.Sprintf("127.0.0.1:%d", port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	s.listener = ln
	s.port = ln.Addr().(*net.TCPAddr).Port
	s.started = time.Now()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/search", s.handleSearch)
	mux.HandleFunc("GET /api/health", s.handleHealth)

	s.httpSrv = &http.Server{Handler: mux}

	go func() {
		_ = s.httpSrv.Serve(ln)
	}()

	return nil
}

// Port returns the bound port after Start.
func (s *Server) Port() int { return s.port }

// Stop shuts the server down. Safe to call multiple times.
func (s *Server) Stop() {
	s.stopOnce.Do(func() {
		if s.httpSrv != nil {
			_ = s.httpSrv.Close()
		}
	})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		http.Error(w, `missing "q" parameter`, http.StatusBadRequest)
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			http.Error(w, `invalid "limit" parameter`, http.StatusBadRequest)
			return
		}
		limit = n
	}

	results := s.engine.Search(r.Context(), query, ports.DefaultFilters(), false)
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	if results == nil {
		results = []ports.SearchResult{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"results": results})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":  "ok",
		"items":   s.engine.Index().Len(),
		"uptime":  time.Since(s.started).Round(time.Second).String(),
		"started": s.started.Unix(),
	})
}
