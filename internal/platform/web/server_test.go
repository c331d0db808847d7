package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/minigamehub/arcade/internal/core"
	_ "github.com/minigamehub/arcade/internal/games/maze"
	_ "github.com/minigamehub/arcade/internal/games/shooter"
	"github.com/minigamehub/arcade/internal/registry"
	"github.com/minigamehub/arcade/internal/storage"
)

func newTestServer(t *testing.T) (*Server, *storage.Store) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return NewServer(store, nil), store
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t)
	rec := get(t, srv, "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestGamesList(t *testing.T) {
	srv, _ := newTestServer(t)
	rec := get(t, srv, "/api/games")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var games []registry.GameInfo
	if err := json.NewDecoder(rec.Body).Decode(&games); err != nil {
		t.Fatalf("decode: %v", err)
	}

	byID := map[string]registry.GameInfo{}
	for _, g := range games {
		byID[g.ID] = g
	}
	if maze, ok := byID["maze"]; !ok || !maze.RankByTime {
		t.Errorf("maze = %+v, want a time-ranked entry", maze)
	}
	if shooter, ok := byID["shooter"]; !ok || shooter.RankByTime || shooter.Description == "" {
		t.Errorf("shooter = %+v, want a score-ranked entry with a description", shooter)
	}
}

func TestScoresRanking(t *testing.T) {
	srv, store := newTestServer(t)
	store.SaveRun("maze", core.RunSummary{Level: 15, Moves: 40, Seconds: 50, Won: true})
	store.SaveRun("maze", core.RunSummary{Level: 15, Moves: 90, Seconds: 20, Won: true})
	store.SaveRun("maze", core.RunSummary{Level: 15, Moves: 5, Seconds: 3})
	store.SaveRun("shooter", core.RunSummary{Score: 30, Level: 2, Seconds: 20})
	store.SaveRun("shooter", core.RunSummary{Score: 300, Level: 6, Seconds: 95})

	tests := []struct {
		path    string
		ranking string
		count   int
		check   func(storage.ScoreEntry) bool
	}{
		{"/api/games/maze/scores", "fastest_win", 2, func(e storage.ScoreEntry) bool { return e.Duration == 20 }},
		{"/api/games/shooter/scores", "score", 2, func(e storage.ScoreEntry) bool { return e.Score == 300 }},
		{"/api/games/shooter/scores?limit=1", "score", 1, func(e storage.ScoreEntry) bool { return e.Level == 6 }},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := get(t, srv, tt.path)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
			}
			var resp scoresResponse
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Ranking != tt.ranking {
				t.Errorf("ranking = %q, want %q", resp.Ranking, tt.ranking)
			}
			if len(resp.Entries) != tt.count {
				t.Fatalf("got %d entries, want %d", len(resp.Entries), tt.count)
			}
			if !tt.check(resp.Entries[0]) {
				t.Errorf("first entry = %+v", resp.Entries[0])
			}
		})
	}
}

func TestScoresEmptyIsArray(t *testing.T) {
	srv, _ := newTestServer(t)
	rec := get(t, srv, "/api/games/shooter/scores")

	var raw map[string]json.RawMessage
	if err := json.NewDecoder(rec.Body).Decode(&raw); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if string(raw["entries"]) != "[]" {
		t.Errorf("entries = %s, want []", raw["entries"])
	}
}

func TestScoresErrors(t *testing.T) {
	srv, _ := newTestServer(t)

	tests := []struct {
		path string
		code int
	}{
		{"/api/games/nope/scores", http.StatusNotFound},
		{"/api/games/nope/stats", http.StatusNotFound},
		{"/api/games/shooter/scores?limit=zero", http.StatusBadRequest},
		{"/api/games/shooter/scores?limit=-3", http.StatusBadRequest},
		{"/api/unknown", http.StatusNotFound},
	}
	for _, tt := range tests {
		if rec := get(t, srv, tt.path); rec.Code != tt.code {
			t.Errorf("GET %s = %d, want %d", tt.path, rec.Code, tt.code)
		}
	}

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/games", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("POST /api/games = %d, want 405", rec.Code)
	}
}

func TestWithoutStore(t *testing.T) {
	srv := NewServer(nil, nil)
	if rec := get(t, srv, "/api/games/maze/stats"); rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
	if rec := get(t, srv, "/api/games"); rec.Code != http.StatusOK {
		t.Errorf("game list should not need storage, got %d", rec.Code)
	}
}

func TestStats(t *testing.T) {
	srv, store := newTestServer(t)
	store.SaveRun("maze", core.RunSummary{Seconds: 44, Moves: 60, Won: true})
	store.SaveRun("maze", core.RunSummary{Seconds: 31, Moves: 70, Won: true})

	rec := get(t, srv, "/api/games/maze/stats")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var stats storage.GameStats
	if err := json.NewDecoder(rec.Body).Decode(&stats); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if stats.GamesCount != 2 || stats.Wins != 2 || stats.BestTime != 31 {
		t.Errorf("stats = %+v", stats)
	}
}
