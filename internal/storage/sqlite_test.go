package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "arena.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestSaveAndListSessions(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "arena.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	base := time.Unix(1_700_000_000, 0)
	for i := 0; i < 3; i++ {
		_, err := store.SaveSession(ctx, Session{
			Mode:           "sim",
			Seed:           int64(i + 1),
			StartedAt:      base.Add(time.Duration(i) * time.Minute),
			Ticks:          60 * (i + 1),
			Elapsed:        float64(i + 1),
			PlayerDistance: 100.5,
			PeakSpeed:      400,
			WallHits:       i,
		})
		if err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	sessions, err := store.RecentSessions(ctx, 2)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("got %d sessions, expected 2", len(sessions))
	}
	if sessions[0].Seed != 3 || sessions[1].Seed != 2 {
		t.Errorf("expected newest first, got seeds %d, %d", sessions[0].Seed, sessions[1].Seed)
	}
	got := sessions[0]
	if got.Ticks != 180 || got.WallHits != 2 || got.PeakSpeed != 400 || got.PlayerDistance != 100.5 {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if !got.StartedAt.Equal(base.Add(2 * time.Minute)) {
		t.Errorf("started_at = %v", got.StartedAt)
	}
}

func TestRecentSessionsDefaultLimit(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "arena.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	sessions, err := store.RecentSessions(context.Background(), 0)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(sessions) != 0 {
		t.Errorf("expected empty result, got %d", len(sessions))
	}
}
