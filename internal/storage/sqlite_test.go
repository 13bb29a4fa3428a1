package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
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
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreInMemory(t *testing.T) {
	store, err := Open(MemoryPath)
	if err != nil {
		t.Fatalf("Open(:memory:) failed: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveScore("Player", 3); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	high, err := store.HighScore()
	if err != nil || high != 3 {
		t.Errorf("HighScore() = %d, %v; want 3", high, err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	rounds := []struct {
		identity string
		score    int
	}{
		{"Player", 10},
		{"alice", 5},
		{"Player", 20},
		{"bob", 10},
	}
	for _, r := range rounds {
		if _, err := store.SaveScore(r.identity, r.score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 4 {
		t.Fatalf("Expected 4 scores, got %d", len(scores))
	}

	want := []struct {
		identity string
		score    int
	}{
		{"Player", 20},
		{"Player", 10},
		{"bob", 10},
		{"alice", 5},
	}
	for i, w := range want {
		if scores[i].Identity != w.identity || scores[i].Score != w.score {
			t.Errorf("scores[%d] = %s/%d, want %s/%d", i, scores[i].Identity, scores[i].Score, w.identity, w.score)
		}
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt was not parsed")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.SaveScore("Player", (i+1)*100) //nolint:errcheck
	}

	scores, err := store.TopScores(3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	all, _ := store.TopScores(0)
	if len(all) != 5 {
		t.Errorf("default limit returned %d, want 5", len(all))
	}
}

func TestStoreHighScores(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty store, got %d", high)
	}

	store.SaveScore("alice", 7) //nolint:errcheck
	store.SaveScore("bob", 12)  //nolint:errcheck
	store.SaveScore("alice", 9) //nolint:errcheck

	if high, _ := store.HighScore(); high != 12 {
		t.Errorf("HighScore() = %d, want 12", high)
	}
	if best, _ := store.PersonalBest("alice"); best != 9 {
		t.Errorf("PersonalBest(alice) = %d, want 9", best)
	}
	if best, _ := store.PersonalBest("carol"); best != 0 {
		t.Errorf("PersonalBest(carol) = %d, want 0", best)
	}

	mine, err := store.ScoresFor("alice", 10)
	if err != nil {
		t.Fatalf("ScoresFor() failed: %v", err)
	}
	if len(mine) != 2 || mine[0].Score != 9 {
		t.Errorf("ScoresFor(alice) = %v", mine)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("Player", 100) //nolint:errcheck
	store.SaveScore("Player", 200) //nolint:errcheck

	if err := store.ClearScores(); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores(10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Rounds != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveScore("alice", 4) //nolint:errcheck
	store.SaveScore("bob", 8)   //nolint:errcheck
	store.SaveScore("alice", 6) //nolint:errcheck

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Rounds != 3 || stats.Players != 2 || stats.HighScore != 8 || stats.TotalScore != 18 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 6 {
		t.Errorf("AvgScore = %v, want 6", stats.AvgScore)
	}
	if time.Since(stats.LastPlayed) > 24*time.Hour {
		t.Errorf("LastPlayed = %v, expected recent", stats.LastPlayed)
	}
}

func TestStoreMigrationsAreIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	first, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	first.SaveScore("Player", 5) //nolint:errcheck
	first.Close()

	second, err := Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer second.Close()

	v, err := second.SchemaVersion(context.Background())
	if err != nil {
		t.Fatalf("SchemaVersion() failed: %v", err)
	}
	if v != 1 {
		t.Errorf("schema version = %d, want 1", v)
	}
	if high, _ := second.HighScore(); high != 5 {
		t.Errorf("HighScore() after reopen = %d, want 5", high)
	}
}
