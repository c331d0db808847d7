package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/minigamehub/arcade/internal/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveRunRoundTrip(t *testing.T) {
	store := openTestStore(t)

	run := core.RunSummary{Score: 420, Level: 5, Seconds: 93}
	runID, err := store.SaveRun("shooter", run)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := uuid.Parse(runID); err != nil {
		t.Errorf("run id %q is not a uuid: %v", runID, err)
	}

	got, err := store.RunByID(runID)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("saved run not found")
	}
	if got.GameID != "shooter" || got.Score != 420 || got.Level != 5 || got.Duration != 93 || got.Won {
		t.Errorf("round trip = %+v, want shooter 420 L5 93s", got)
	}

	missing, err := store.RunByID(uuid.NewString())
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if missing != nil {
		t.Errorf("unknown run returned %+v", missing)
	}
}

func TestStoreTopScoresOrder(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{100, 50, 200} {
		if _, err := store.SaveScore("shooter", s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	store.SaveScore("maze", 500)

	scores, err := store.TopScores("shooter", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in descending order: %v", scores)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100)
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	all, err := store.TopScores("test", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("non-positive limit returned %d rows, want default limit", len(all))
	}
}

func TestStoreFastestWins(t *testing.T) {
	store := openTestStore(t)

	runs := []core.RunSummary{
		{Level: 15, Moves: 80, Seconds: 40, Won: true},
		{Level: 15, Moves: 60, Seconds: 40, Won: true},
		{Level: 15, Moves: 90, Seconds: 25, Won: true},
		{Level: 15, Moves: 10, Seconds: 5, Won: false},
	}
	for _, r := range runs {
		if _, err := store.SaveRun("maze", r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	wins, err := store.FastestWins("maze", 10)
	if err != nil {
		t.Fatalf("FastestWins() failed: %v", err)
	}
	if len(wins) != 3 {
		t.Fatalf("Expected 3 wins, got %d", len(wins))
	}

	want := [][2]int{{25, 90}, {40, 60}, {40, 80}}
	for i, w := range want {
		if wins[i].Duration != w[0] || wins[i].Moves != w[1] || !wins[i].Won {
			t.Errorf("win %d = %ds/%d moves, want %ds/%d moves", i, wins[i].Duration, wins[i].Moves, w[0], w[1])
		}
	}
}

func TestStoreLeaderboard(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun("maze", core.RunSummary{Seconds: 70, Won: true})
	store.SaveRun("maze", core.RunSummary{Seconds: 20, Won: true})
	store.SaveRun("shooter", core.RunSummary{Score: 10})
	store.SaveRun("shooter", core.RunSummary{Score: 90})

	tests := []struct {
		game   string
		byTime bool
		first  func(ScoreEntry) bool
	}{
		{"maze", true, func(e ScoreEntry) bool { return e.Duration == 20 }},
		{"shooter", false, func(e ScoreEntry) bool { return e.Score == 90 }},
	}
	for _, tt := range tests {
		t.Run(tt.game, func(t *testing.T) {
			entries, err := store.Leaderboard(tt.game, tt.byTime, 5)
			if err != nil {
				t.Fatalf("Leaderboard() failed: %v", err)
			}
			if len(entries) != 2 || !tt.first(entries[0]) {
				t.Errorf("leaderboard = %+v", entries)
			}
		})
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("shooter")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("shooter", 100)
	store.SaveScore("shooter", 300)
	store.SaveScore("shooter", 200)

	high, err = store.HighScore("shooter")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("shooter", 100)
	store.SaveScore("shooter", 200)
	store.SaveRun("maze", core.RunSummary{Seconds: 30, Won: true})

	if err := store.ClearScores("shooter"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	shooter, _ := store.TopScores("shooter", 10)
	if len(shooter) != 0 {
		t.Errorf("Expected 0 shooter scores after clear, got %d", len(shooter))
	}

	maze, _ := store.FastestWins("maze", 10)
	if len(maze) != 1 {
		t.Errorf("Maze runs should not be affected by clearing the shooter")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveScore("test", i*10)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("maze")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.BestTime != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveRun("maze", core.RunSummary{Seconds: 50, Moves: 70, Won: true})
	store.SaveRun("maze", core.RunSummary{Seconds: 30, Moves: 70, Won: true})
	store.SaveRun("shooter", core.RunSummary{Score: 120, Level: 3})
	store.SaveRun("shooter", core.RunSummary{Score: 80, Level: 2})

	maze, err := store.GetGameStats("maze")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if maze.GamesCount != 2 || maze.Wins != 2 || maze.BestTime != 30 {
		t.Errorf("maze stats = %+v, want 2 games, 2 wins, best 30s", maze)
	}
	if maze.LastPlayed.IsZero() {
		t.Error("last played not set")
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected stats for 2 games, got %d", len(all))
	}
	sh := all["shooter"]
	if sh == nil || sh.HighScore != 120 || sh.TotalScore != 200 || sh.AvgScore != 100 || sh.Wins != 0 {
		t.Errorf("shooter stats = %+v", sh)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
