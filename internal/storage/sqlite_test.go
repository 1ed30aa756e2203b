package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/hexdraw/internal/core"
	"github.com/vovakirdan/hexdraw/internal/drawing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "gallery.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleDrawing() *drawing.Drawing {
	d := drawing.New(4, 2, 0)
	d.Add(
		drawing.Stroke(core.Down, 2, 1),
		drawing.Stroke(core.Right, 1, 2),
		drawing.Move(core.Up, 1),
		drawing.Stroke(core.Up, 1, 9),
		drawing.Stroke(core.Down, 0, 4),
	)
	return d
}

func TestStoreOpenCreatesFile(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "gallery.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndGet(t *testing.T) {
	store := openTestStore(t)
	d := sampleDrawing()

	if _, err := store.Save("example", d); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	got, err := store.Get("example")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if got == nil {
		t.Fatal("Get() returned nil for a saved drawing")
	}
	if got.String() != d.String() {
		t.Errorf("Get() returned:\n%sexpected:\n%s", got, d)
	}
}

func TestStoreGetUnknown(t *testing.T) {
	store := openTestStore(t)

	got, err := store.Get("missing")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if got != nil {
		t.Error("Get() should return nil for an unknown name")
	}
}

func TestStoreSaveOverwrites(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.Save("example", sampleDrawing()); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	smaller := drawing.New(4, 2, 0)
	smaller.Add(drawing.Stroke(core.Down, 0, 4))
	if _, err := store.Save("example", smaller); err != nil {
		t.Fatalf("second Save() failed: %v", err)
	}

	entries, err := store.List()
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry after overwrite, got %d", len(entries))
	}
	if entries[0].CommandCount != 1 {
		t.Errorf("CommandCount = %d, expected 1 after overwrite", entries[0].CommandCount)
	}
}

func TestStoreSaveEmptyName(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.Save("", sampleDrawing()); err == nil {
		t.Error("Save() with an empty name should fail")
	}
}

func TestStoreList(t *testing.T) {
	store := openTestStore(t)

	store.Save("a", sampleDrawing())
	store.Save("b", sampleDrawing())
	store.Save("c", sampleDrawing())

	entries, err := store.List()
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	for _, e := range entries {
		if e.Height != 4 || e.Width != 2 || e.CommandCount != 5 {
			t.Errorf("entry %q = %dx%d, %d commands", e.Name, e.Height, e.Width, e.CommandCount)
		}
	}
}

func TestStoreDelete(t *testing.T) {
	store := openTestStore(t)
	store.Save("keep", sampleDrawing())
	store.Save("drop", sampleDrawing())

	removed, err := store.Delete("drop")
	if err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if !removed {
		t.Error("Delete() should report removal of an existing drawing")
	}

	removed, err = store.Delete("drop")
	if err != nil {
		t.Fatalf("second Delete() failed: %v", err)
	}
	if removed {
		t.Error("Delete() should report nothing removed for an unknown name")
	}

	if got, _ := store.Get("keep"); got == nil {
		t.Error("Delete() should not affect other drawings")
	}
}

func TestStoreGalleryStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GalleryStats()
	if err != nil {
		t.Fatalf("GalleryStats() failed: %v", err)
	}
	if stats.Drawings != 0 || stats.TotalCommands != 0 || stats.TotalCells != 0 {
		t.Errorf("empty gallery stats = %+v", stats)
	}

	store.Save("a", sampleDrawing())
	store.Save("b", sampleDrawing())

	stats, err = store.GalleryStats()
	if err != nil {
		t.Fatalf("GalleryStats() failed: %v", err)
	}
	if stats.Drawings != 2 {
		t.Errorf("Drawings = %d, expected 2", stats.Drawings)
	}
	if stats.TotalCommands != 10 {
		t.Errorf("TotalCommands = %d, expected 10", stats.TotalCommands)
	}
	if stats.TotalCells != 16 {
		t.Errorf("TotalCells = %d, expected 16", stats.TotalCells)
	}
}
