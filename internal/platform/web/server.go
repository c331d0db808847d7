// Package web serves the leaderboard as a read-only JSON API.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"

	"github.com/minigamehub/arcade/internal/registry"
	"github.com/minigamehub/arcade/internal/storage"
)

// maxLimit caps the number of rows a single scores request may ask for.
const maxLimit = 100

// Server exposes registered games and their leaderboards over HTTP.
type Server struct {
	store  *storage.Store
	logger *log.Logger
	router *mux.Router
}

// NewServer builds the router. A nil logger discards request logs.
func NewServer(store *storage.Store, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Server{
		store:  store,
		logger: logger,
		router: mux.NewRouter(),
	}

	s.router.Use(s.logRequests)
	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/games", s.handleGames).Methods(http.MethodGet)
	api.HandleFunc("/games/{id}/scores", s.handleScores).Methods(http.MethodGet)
	api.HandleFunc("/games/{id}/stats", s.handleStats).Methods(http.MethodGet)

	return s
}

// ServeHTTP makes Server an http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("starting HTTP server", "address", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("web: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// statusRecorder remembers the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Debug("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}

type errorBody struct {
	Error string `json:"error"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("cannot encode response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorBody{Error: msg})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleGames(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, registry.List())
}

// game resolves the {id} route variable, answering 404 for unknown games
// and 503 when no store is attached.
func (s *Server) game(w http.ResponseWriter, r *http.Request) (registry.GameInfo, bool) {
	id := mux.Vars(r)["id"]
	info, ok := registry.Info(id)
	if !ok {
		s.writeError(w, http.StatusNotFound, fmt.Sprintf("unknown game %q", id))
		return info, false
	}
	if s.store == nil {
		s.writeError(w, http.StatusServiceUnavailable, "leaderboard storage is not available")
		return info, false
	}
	return info, true
}

type scoresResponse struct {
	Game    registry.GameInfo    `json:"game"`
	Ranking string               `json:"ranking"`
	Entries []storage.ScoreEntry `json:"entries"`
}

func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	info, ok := s.game(w, r)
	if !ok {
		return
	}

	limit := storage.DefaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			s.writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = min(n, maxLimit)
	}

	entries, err := s.store.Leaderboard(info.ID, info.RankByTime, limit)
	if err != nil {
		s.logger.Error("cannot load leaderboard", "game", info.ID, "error", err)
		s.writeError(w, http.StatusInternalServerError, "cannot load leaderboard")
		return
	}
	if entries == nil {
		entries = []storage.ScoreEntry{}
	}

	ranking := "score"
	if info.RankByTime {
		ranking = "fastest_win"
	}
	s.writeJSON(w, http.StatusOK, scoresResponse{Game: info, Ranking: ranking, Entries: entries})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	info, ok := s.game(w, r)
	if !ok {
		return
	}

	stats, err := s.store.GetGameStats(info.ID)
	if err != nil {
		s.logger.Error("cannot load stats", "game", info.ID, "error", err)
		s.writeError(w, http.StatusInternalServerError, "cannot load stats")
		return
	}
	s.writeJSON(w, http.StatusOK, stats)
}
