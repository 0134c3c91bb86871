// Package leaderboard provides a small HTTP API for sharing scores between
// machines, plus a client that the round engine can submit scores through.
// The server is backed by the same SQLite store the TUI uses locally.
package leaderboard

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/avasilyev/chainpop/internal/storage"
)

// Server serves the leaderboard API over HTTP.
type Server struct {
	r     *chi.Mux
	store *storage.Store
}

// submitReq is the payload for POST /scores.
type submitReq struct {
	Name     string `json:"name"`
	Score    int    `json:"score"`
	MaxChain int    `json:"maxChain"`
}

// scoreRes is one leaderboard row in GET /scores responses.
type scoreRes struct {
	Name     string `json:"name"`
	Score    int    `json:"score"`
	MaxChain int    `json:"maxChain"`
}

// NewServer constructs a Server, installs middleware, and registers routes.
func NewServer(store *storage.Store) *Server {
	s := &Server{r: chi.NewRouter(), store: store}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(jsonContentType)

	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/scores", s.handleTopScores)
	s.r.Post("/scores", s.handleSubmit)

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr. Blocks until the listener fails.
func (s *Server) Start(addr string) error {
	log.Info("leaderboard API listening", "addr", addr)
	return http.ListenAndServe(addr, s.r)
}

// Router exposes the internal router for tests.
func (s *Server) Router() chi.Router { return s.r }

// handleSubmit records one finished round.
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req submitReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	if req.Name == "" || req.Score < 0 {
		http.Error(w, `{"error":"invalid_score"}`, http.StatusBadRequest)
		return
	}

	if err := s.store.SubmitScore(req.Name, req.Score, req.MaxChain); err != nil {
		log.Error("save score", "err", err, "player", req.Name)
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	_, _ = w.Write([]byte(`{"ok":true}`))
}

// handleTopScores returns the top rounds, best first. Accepts ?limit=N.
func (s *Server) handleTopScores(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > 100 {
			http.Error(w, `{"error":"bad_limit"}`, http.StatusBadRequest)
			return
		}
		limit = n
	}

	entries, err := s.store.TopScores(limit)
	if err != nil {
		log.Error("query scores", "err", err)
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}

	out := make([]scoreRes, 0, len(entries))
	for _, e := range entries {
		out = append(out, scoreRes{Name: e.Name, Score: e.Score, MaxChain: e.MaxChain})
	}
	_ = json.NewEncoder(w).Encode(out)
}

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}
