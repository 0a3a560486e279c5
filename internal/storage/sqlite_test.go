package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/match3/internal/session"
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

func record(id, preset string, cleared int) SessionRecord {
	return SessionRecord{
		ID:           id,
		Preset:       preset,
		Supplier:     "random",
		Seed:         42,
		Width:        8,
		Height:       8,
		Moves:        10,
		Matches:      12,
		Refills:      11,
		TilesCleared: cleared,
		MaxCascade:   2,
		Duration:     3 * time.Second,
	}
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
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

func TestStoreReopenKeepsHistory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.SaveSession(record("a", "classic", 30)); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	rec, err := store.SessionByID("a")
	if err != nil || rec == nil {
		t.Fatalf("SessionByID() = %v, %v; want record", rec, err)
	}
}

func TestStoreSaveAndLookup(t *testing.T) {
	store := openTestStore(t)

	want := record("0d4c5d1a", "small", 45)
	want.Deadlocked = true
	if err := store.SaveSession(want); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}

	got, err := store.SessionByID(want.ID)
	if err != nil {
		t.Fatalf("SessionByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("SessionByID() = nil, want record")
	}

	if got.Preset != "small" || got.TilesCleared != 45 || !got.Deadlocked || got.Seed != 42 {
		t.Errorf("SessionByID() = %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt was not populated")
	}

	if err := store.SaveSession(want); err == nil {
		t.Error("saving a duplicate ID should fail")
	}
}

func TestStoreSessionByIDMissing(t *testing.T) {
	store := openTestStore(t)

	got, err := store.SessionByID("nope")
	if err != nil {
		t.Fatalf("SessionByID() failed: %v", err)
	}
	if got != nil {
		t.Errorf("SessionByID() = %+v, want nil", got)
	}
}

func TestStoreSaveSummary(t *testing.T) {
	store := openTestStore(t)

	var saver session.SummarySaver = store
	sum := session.Summary{
		ID:           "summary-1",
		Preset:       "classic",
		Supplier:     "cycle",
		Seed:         7,
		Width:        8,
		Height:       8,
		Moves:        4,
		TilesCleared: 15,
		MaxCascade:   3,
		Duration:     2500 * time.Millisecond,
	}
	if err := saver.SaveSummary(sum); err != nil {
		t.Fatalf("SaveSummary() failed: %v", err)
	}

	got, err := store.SessionByID("summary-1")
	if err != nil || got == nil {
		t.Fatalf("SessionByID() = %v, %v", got, err)
	}
	if got.Supplier != "cycle" || got.MaxCascade != 3 {
		t.Errorf("stored summary = %+v", got)
	}
	if got.Duration != 2500*time.Millisecond {
		t.Errorf("Duration = %v, want 2.5s", got.Duration)
	}
}

func TestStoreKeepsSubSecondDuration(t *testing.T) {
	store := openTestStore(t)

	rec := record("fast", "small", 9)
	rec.Duration = 37 * time.Millisecond
	if err := store.SaveSession(rec); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}

	got, err := store.SessionByID("fast")
	if err != nil || got == nil {
		t.Fatalf("SessionByID() = %v, %v", got, err)
	}
	if got.Duration != 37*time.Millisecond {
		t.Errorf("Duration = %v, want 37ms", got.Duration)
	}
}

func TestStoreRecentSessions(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		if err := store.SaveSession(record(fmt.Sprintf("s%d", i), "classic", i)); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	recent, err := store.RecentSessions(3)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Expected 3 sessions with limit, got %d", len(recent))
	}
	// Same-second inserts fall back to insertion order
	if recent[0].ID != "s4" || recent[2].ID != "s2" {
		t.Errorf("unexpected order: %s, %s, %s", recent[0].ID, recent[1].ID, recent[2].ID)
	}

	all, err := store.RecentSessions(0)
	if err != nil {
		t.Fatalf("RecentSessions(0) failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("Expected default limit to return all 5, got %d", len(all))
	}
}

func TestStoreBestSessions(t *testing.T) {
	store := openTestStore(t)

	store.SaveSession(record("a", "classic", 30))
	store.SaveSession(record("b", "classic", 90))
	store.SaveSession(record("c", "small", 500))
	store.SaveSession(record("d", "classic", 60))

	best, err := store.BestSessions("classic", 2)
	if err != nil {
		t.Fatalf("BestSessions() failed: %v", err)
	}
	if len(best) != 2 {
		t.Fatalf("Expected 2 sessions, got %d", len(best))
	}
	if best[0].ID != "b" || best[1].ID != "d" {
		t.Errorf("BestSessions() = %s, %s; want b, d", best[0].ID, best[1].ID)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	st, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() on empty store failed: %v", err)
	}
	if st != (Stats{}) {
		t.Errorf("empty Stats() = %+v, want zero", st)
	}

	deep := record("deep", "large", 80)
	deep.MaxCascade = 6
	deep.Deadlocked = true
	store.SaveSession(record("a", "classic", 20))
	store.SaveSession(deep)

	st, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	want := Stats{Sessions: 2, TotalMoves: 20, TilesCleared: 100, BestCascade: 6, Deadlocked: 1}
	if st != want {
		t.Errorf("Stats() = %+v, want %+v", st, want)
	}
}

func TestStoreClearSessions(t *testing.T) {
	store := openTestStore(t)

	store.SaveSession(record("a", "classic", 1))
	store.SaveSession(record("b", "classic", 2))

	if err := store.ClearSessions(); err != nil {
		t.Fatalf("ClearSessions() failed: %v", err)
	}

	recent, err := store.RecentSessions(10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(recent) != 0 {
		t.Errorf("Expected no sessions after clear, got %d", len(recent))
	}
}
