package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	_, err = store.SaveSession(SessionResult{LeftScore: 3, RightScore: 1, DurationSecs: 90})
	if err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}
	_, err = store.SaveSession(SessionResult{LeftScore: 0, RightScore: 2, DurationSecs: 45, Remote: true})
	if err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}

	sessions, err := store.RecentSessions(10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}

	if len(sessions) != 2 {
		t.Fatalf("Expected 2 sessions, got %d", len(sessions))
	}

	// Newest first
	if sessions[0].RightScore != 2 || !sessions[0].Remote {
		t.Errorf("Expected newest session first, got %+v", sessions[0])
	}
	if sessions[1].LeftScore != 3 || sessions[1].DurationSecs != 90 {
		t.Errorf("Unexpected oldest session: %+v", sessions[1])
	}
}

func TestStoreRecentSessionsLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 5; i++ {
		store.SaveSession(SessionResult{LeftScore: i, RightScore: 0, DurationSecs: 10})
	}

	sessions, err := store.RecentSessions(3)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}

	if len(sessions) != 3 {
		t.Errorf("Expected 3 sessions with limit, got %d", len(sessions))
	}

	// Inserted in the same second; ordering falls back to id descending
	if sessions[0].LeftScore != 4 {
		t.Errorf("Expected most recent session first, got left score %d", sessions[0].LeftScore)
	}
}

func TestStoreStats(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No sessions yet
	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Sessions != 0 || stats.TotalGoals != 0 {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.SaveSession(SessionResult{LeftScore: 3, RightScore: 1})
	store.SaveSession(SessionResult{LeftScore: 0, RightScore: 2})
	store.SaveSession(SessionResult{LeftScore: 1, RightScore: 1})

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}

	if stats.Sessions != 3 {
		t.Errorf("Expected 3 sessions, got %d", stats.Sessions)
	}
	if stats.LeftWins != 1 || stats.RightWins != 1 || stats.Draws != 1 {
		t.Errorf("Unexpected win counts: %+v", stats)
	}
	if stats.TotalGoals != 8 {
		t.Errorf("Expected 8 total goals, got %d", stats.TotalGoals)
	}
}

func TestStoreClearSessions(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveSession(SessionResult{LeftScore: 1, RightScore: 0})
	store.SaveSession(SessionResult{LeftScore: 2, RightScore: 2})

	if err := store.ClearSessions(); err != nil {
		t.Fatalf("ClearSessions() failed: %v", err)
	}

	sessions, _ := store.RecentSessions(10)
	if len(sessions) != 0 {
		t.Errorf("Expected 0 sessions after clear, got %d", len(sessions))
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

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
