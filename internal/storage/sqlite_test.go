package storage

import (
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	games := []struct {
		id                   string
		score, lines, pieces int
	}{
		{"blocks", 100, 1, 20},
		{"blocks", 50, 0, 12},
		{"blocks", 200, 2, 31},
		{"blocks_mini", 500, 3, 40},
	}
	for _, g := range games {
		if _, err := store.SaveGame(g.id, g.score, g.lines, g.pieces); err != nil {
			t.Fatalf("SaveGame() failed: %v", err)
		}
	}

	scores, err := store.TopScores("blocks", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	expected := []int{200, 100, 50}
	for i, want := range expected {
		if scores[i].Score != want {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, want)
		}
	}
	if scores[0].Lines != 2 || scores[0].Pieces != 31 {
		t.Errorf("top entry lost its counters: %+v", scores[0])
	}

	mini, err := store.TopScores("blocks_mini", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(mini) != 1 || mini[0].Score != 500 {
		t.Errorf("Expected one blocks_mini score of 500, got %+v", mini)
	}
}

func TestTopScoresLimitAndTies(t *testing.T) {
	store := openTestStore(t)

	var ids []int64
	for range 5 {
		id, err := store.SaveGame("blocks", 10, 1, 5)
		if err != nil {
			t.Fatalf("SaveGame() failed: %v", err)
		}
		ids = append(ids, id)
	}

	scores, err := store.TopScores("blocks", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	for i, s := range scores {
		if s.ID != ids[i] {
			t.Errorf("tie order: scores[%d].ID = %d, expected %d", i, s.ID, ids[i])
		}
	}

	// Non-positive limit falls back to 10
	all, err := store.TopScores("blocks", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("Expected 5 scores, got %d", len(all))
	}
}

func TestHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("blocks")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty table, got %d", high)
	}

	for _, score := range []int{100, 300, 200} {
		if _, err := store.SaveGame("blocks", score, 0, 0); err != nil {
			t.Fatalf("SaveGame() failed: %v", err)
		}
	}

	high, err = store.HighScore("blocks")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score 300, got %d", high)
	}
}

func TestStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("blocks")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty != (GameStats{}) {
		t.Errorf("Expected zero stats, got %+v", empty)
	}

	store.SaveGame("blocks", 100, 1, 10)
	store.SaveGame("blocks", 1100, 4, 30)
	store.SaveGame("blocks_mini", 64, 1, 8)

	st, err := store.Stats("blocks")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	expected := GameStats{Games: 2, BestScore: 1100, TotalLines: 5, MostLines: 4}
	if st != expected {
		t.Errorf("Stats() = %+v, expected %+v", st, expected)
	}
}

func TestSaveGameRejectsEmptyID(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveGame("", 10, 0, 0); err == nil {
		t.Error("SaveGame with empty id should fail")
	}
}

func TestStoresAreIndependent(t *testing.T) {
	a := openTestStore(t)
	b := openTestStore(t)

	if _, err := a.SaveGame("blocks", 42, 0, 0); err != nil {
		t.Fatalf("SaveGame() failed: %v", err)
	}

	high, err := b.HighScore("blocks")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("second store should be empty, got high score %d", high)
	}
}

func TestParseTimestamp(t *testing.T) {
	want := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)

	tests := []struct {
		name string
		in   any
	}{
		{"time value", want},
		{"sqlite text", "2026-03-14 15:09:26"},
		{"rfc3339 text", "2026-03-14T15:09:26Z"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := parseTimestamp(tc.in); !got.Equal(want) {
				t.Errorf("parseTimestamp(%v) = %v, expected %v", tc.in, got, want)
			}
		})
	}

	if got := parseTimestamp(nil); !got.IsZero() {
		t.Errorf("parseTimestamp(nil) = %v, expected zero time", got)
	}
}
