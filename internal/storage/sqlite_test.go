package storage

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.SetLogger(log.New(io.Discard))
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
	if err := store.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreTopScores(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{100, 500, 200, 400, 300} {
		if _, err := store.SaveScore("gridshift", s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	store.SaveScore("gridshift_campaign", 999)

	scores, err := store.TopScores("gridshift", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
	for _, s := range scores {
		if s.GameID != "gridshift" {
			t.Errorf("score from wrong mode: %+v", s)
		}
		if s.CreatedAt.IsZero() {
			t.Errorf("CreatedAt not parsed: %+v", s)
		}
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("gridshift", 100)
	store.SaveScore("gridshift_campaign", 300)

	if err := store.ClearScores("gridshift"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if s, _ := store.TopScores("gridshift", 10); len(s) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(s))
	}
	if s, _ := store.TopScores("gridshift_campaign", 10); len(s) != 1 {
		t.Error("Campaign scores should not be affected")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("gridshift")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.HighScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveScore("gridshift", 100)
	store.SaveScore("gridshift", 300)

	stats, err := store.GetGameStats("gridshift")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.TotalScore != 400 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, want 200", stats.AvgScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed not set")
	}
}

func TestHighScore(t *testing.T) {
	store := openTestStore(t)
	hs := store.HighScore("gridshift")

	if got := hs.GetHighScore(); got != 0 {
		t.Fatalf("initial high score = %d, want 0", got)
	}
	if !hs.SaveHighScore(300) {
		t.Fatal("SaveHighScore(300) should beat 0")
	}
	if hs.SaveHighScore(300) {
		t.Error("equal score must not replace the high score")
	}
	if hs.SaveHighScore(100) {
		t.Error("lower score must not replace the high score")
	}
	if got := hs.GetHighScore(); got != 300 {
		t.Errorf("high score = %d, want 300", got)
	}

	other := store.HighScore("gridshift_campaign")
	if got := other.GetHighScore(); got != 0 {
		t.Errorf("modes must not share high scores, got %d", got)
	}
}

func TestHighScoreCorrupt(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"text", "not-a-number"},
		{"negative", "-5"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := openTestStore(t)
			if err := store.SetValue("highscore:gridshift", tt.value); err != nil {
				t.Fatal(err)
			}
			hs := store.HighScore("gridshift")
			if got := hs.GetHighScore(); got != 0 {
				t.Errorf("GetHighScore() = %d, want 0", got)
			}
			if !hs.SaveHighScore(10) {
				t.Error("a corrupt value should be overwritten by any positive score")
			}
			if got := hs.GetHighScore(); got != 10 {
				t.Errorf("after save = %d, want 10", got)
			}
		})
	}
}

func TestHighScorePersists(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	store.HighScore("gridshift").SaveHighScore(750)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	if got := store.HighScore("gridshift").GetHighScore(); got != 750 {
		t.Errorf("reopened high score = %d, want 750", got)
	}
}

func TestRuns(t *testing.T) {
	store := openTestStore(t)

	records := []RunRecord{
		{RunID: "a", Mode: "gridshift", Seed: 1, Score: 100, Outcome: "lost", Depth: 2, Duration: 60},
		{RunID: "b", Mode: "gridshift", Seed: 2, Score: 900, Outcome: "won", Depth: 5, Duration: 300},
		{RunID: "c", Mode: "gridshift_campaign", Score: 50, Outcome: "lost", Depth: 1},
	}
	for _, r := range records {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun(%s) failed: %v", r.RunID, err)
		}
	}
	if _, err := store.SaveRun(records[0]); err == nil {
		t.Error("saving a duplicate run id should fail")
	}

	runs, err := store.RecentRuns("gridshift", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(runs))
	}
	if runs[0].RunID != "b" || runs[1].RunID != "a" {
		t.Errorf("order = %s,%s, want b,a", runs[0].RunID, runs[1].RunID)
	}
	if runs[0].Outcome != "won" || runs[0].Depth != 5 || runs[0].Duration != 300 || runs[0].Seed != 2 {
		t.Errorf("run b = %+v", runs[0])
	}

	all, err := store.RecentRuns("", 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 || all[0].RunID != "c" {
		t.Errorf("all runs = %+v", all)
	}
}
