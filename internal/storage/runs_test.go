package storage

import (
	"testing"

	"github.com/google/uuid"
)

func TestSaveRunAndTopRuns(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []Run{
		{Owner: "alice", GameID: "ascent", Score: 100, Coins: 2, Ticks: 600, Seed: 1, SkinID: "cyan"},
		{Owner: "bob", GameID: "ascent", Score: 350, Coins: 5, Ticks: 1800, Seed: 2, SkinID: "pink"},
		{Owner: "alice", GameID: "ascent", Score: 200, Coins: 0, Ticks: 900, Seed: 3, SkinID: "cyan"},
		{Owner: "alice", GameID: "other", Score: 999},
	} {
		id, err := store.SaveRun(r)
		if err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
		if _, err := uuid.Parse(id); err != nil {
			t.Errorf("run id %q is not a UUID: %v", id, err)
		}
	}

	runs, err := store.TopRuns("ascent", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("TopRuns() returned %d runs, want 3", len(runs))
	}
	wantScores := []int{350, 200, 100}
	for i, r := range runs {
		if r.Score != wantScores[i] {
			t.Errorf("runs[%d].Score = %d, want %d", i, r.Score, wantScores[i])
		}
	}
	top := runs[0]
	if top.Owner != "bob" || top.Coins != 5 || top.Ticks != 1800 || top.Seed != 2 || top.SkinID != "pink" {
		t.Errorf("top run = %+v", top)
	}
	if top.CreatedAt.IsZero() {
		t.Error("CreatedAt not populated")
	}
}

func TestTopRunsLimit(t *testing.T) {
	store := openTestStore(t)
	for i := 0; i < 20; i++ {
		if _, err := store.SaveRun(Run{GameID: "ascent", Score: i * 10}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.TopRuns("ascent", 5)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 5 {
		t.Errorf("TopRuns(5) returned %d runs", len(runs))
	}
	if runs[0].Score != 190 {
		t.Errorf("top score = %d, want 190", runs[0].Score)
	}

	runs, err = store.TopRuns("ascent", 0)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 10 {
		t.Errorf("TopRuns(0) returned %d runs, want default of 10", len(runs))
	}
}

func TestSaveRunDefaultsOwner(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveRun(Run{GameID: "ascent", Score: 5, Coins: 3}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	runs, err := store.RecentRuns(LocalOwner, "ascent", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 || runs[0].Owner != LocalOwner {
		t.Errorf("RecentRuns() = %+v", runs)
	}
}

func TestSaveRunCreditsWallet(t *testing.T) {
	store := openTestStore(t)
	store.SaveRun(Run{Owner: "alice", GameID: "ascent", Score: 10, Coins: 4})
	store.SaveRun(Run{Owner: "alice", GameID: "ascent", Score: 20, Coins: 6})

	p, err := store.Profile("alice")
	if err != nil {
		t.Fatalf("Profile() failed: %v", err)
	}
	if p.Coins != 10 {
		t.Errorf("wallet = %d, want 10", p.Coins)
	}
}

func TestHighScoreByOwner(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("ascent", "")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore() on empty db = %d, want 0", high)
	}

	store.SaveRun(Run{Owner: "alice", GameID: "ascent", Score: 120})
	store.SaveRun(Run{Owner: "bob", GameID: "ascent", Score: 480})

	tests := []struct {
		owner string
		want  int
	}{
		{"", 480},
		{"alice", 120},
		{"bob", 480},
		{"carol", 0},
	}
	for _, tt := range tests {
		got, err := store.HighScore("ascent", tt.owner)
		if err != nil {
			t.Fatalf("HighScore(%q) failed: %v", tt.owner, err)
		}
		if got != tt.want {
			t.Errorf("HighScore(%q) = %d, want %d", tt.owner, got, tt.want)
		}
	}
}

func TestClearRunsKeepsWallet(t *testing.T) {
	store := openTestStore(t)
	store.SaveRun(Run{Owner: "alice", GameID: "ascent", Score: 100, Coins: 7})

	if err := store.ClearRuns("ascent"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	runs, _ := store.TopRuns("ascent", 10)
	if len(runs) != 0 {
		t.Errorf("runs after clear = %d", len(runs))
	}
	p, _ := store.Profile("alice")
	if p.Coins != 7 {
		t.Errorf("wallet after clear = %d, want 7", p.Coins)
	}
}

func TestStats(t *testing.T) {
	store := openTestStore(t)
	store.SaveRun(Run{Owner: "alice", GameID: "ascent", Score: 100, Coins: 1})
	store.SaveRun(Run{Owner: "alice", GameID: "ascent", Score: 300, Coins: 2})
	store.SaveRun(Run{Owner: "bob", GameID: "ascent", Score: 900, Coins: 9})

	stats, err := store.Stats("ascent", "alice")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.AvgScore != 200 || stats.TotalCoins != 3 {
		t.Errorf("stats = %+v", stats)
	}

	empty, err := store.Stats("ascent", "nobody")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}
}
