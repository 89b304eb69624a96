package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
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

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("courier", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("other", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("courier", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in descending order: %v", scores)
	}

	otherScores, err := store.TopScores("other", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(otherScores) != 1 {
		t.Errorf("Expected 1 score for the other game, got %d", len(otherScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("courier", (i+1)*100)
	}

	scores, err := store.TopScores("courier", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("courier")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("courier", 100)
	store.SaveScore("courier", 300)
	store.SaveScore("courier", 200)

	high, err = store.HighScore("courier")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("courier", 100)
	store.SaveScore("courier", 200)
	store.SaveScore("other", 300)

	if err := store.ClearScores("courier"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("courier", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}

	otherScores, _ := store.TopScores("other", 10)
	if len(otherScores) != 1 {
		t.Error("Clearing one game must not touch another")
	}
}

func TestStoreSaveAndListRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []RunRecord{
		{GameID: "courier", Score: 450, Delivered: 4, Lost: 1, Level: 1, DurationSecs: 90},
		{GameID: "courier", Score: 1250, Delivered: 11, Lost: 0, Level: 2, DurationSecs: 240},
		{GameID: "courier", Score: -50, Delivered: 0, Lost: 2, Level: 1, DurationSecs: 35},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	got, err := store.RecentRuns("courier", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(got))
	}

	// Most recent first
	if got[0].Score != -50 {
		t.Errorf("Expected the last saved run first, got score %d", got[0].Score)
	}
	if got[0].Lost != 2 || got[0].DurationSecs != 35 {
		t.Errorf("Run fields not round-tripped: %+v", got[0])
	}
}

func TestStoreRecentRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 8; i++ {
		store.SaveRun(RunRecord{GameID: "courier", Score: i * 100, Level: 1})
	}

	got, err := store.RecentRuns("courier", 5)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(got) != 5 {
		t.Errorf("Expected 5 runs with limit, got %d", len(got))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	// Empty stats
	stats, err := store.Stats("courier")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 0 || stats.HighScore != 0 {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.SaveRun(RunRecord{GameID: "courier", Score: 400, Delivered: 4, Lost: 1, Level: 1, DurationSecs: 80})
	store.SaveRun(RunRecord{GameID: "courier", Score: 1000, Delivered: 9, Lost: 0, Level: 2, DurationSecs: 200})

	stats, err = store.Stats("courier")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 2 {
		t.Errorf("Runs = %d, want 2", stats.Runs)
	}
	if stats.HighScore != 1000 {
		t.Errorf("HighScore = %d, want 1000", stats.HighScore)
	}
	if stats.AvgScore != 700 {
		t.Errorf("AvgScore = %v, want 700", stats.AvgScore)
	}
	if stats.TotalDelivered != 13 || stats.TotalLost != 1 {
		t.Errorf("Totals = %d/%d, want 13/1", stats.TotalDelivered, stats.TotalLost)
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
