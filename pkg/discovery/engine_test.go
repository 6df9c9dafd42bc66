package discovery

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEngineScansAndCaches(t *testing.T) {
	root := t.TempDir()
	mustMkdir(t, filepath.Join(root, "proj", ".git"))
	cachePath := filepath.Join(t.TempDir(), "code.json")

	engine := NewEngine(root, Unbounded, cachePath, time.Hour)
	entries := engine.Entries(false)
	if len(entries) != 1 || entries[0].Display != "proj" {
		t.Fatalf("Expected proj entry, got %v", entries)
	}

	if _, err := os.Stat(cachePath); err != nil {
		t.Fatalf("Cache file not written: %v", err)
	}

	// Remove the repository; a fresh engine must still answer from cache.
	if err := os.RemoveAll(filepath.Join(root, "proj")); err != nil {
		t.Fatal(err)
	}
	cached := NewEngine(root, Unbounded, cachePath, time.Hour)
	entries = cached.Entries(false)
	if len(entries) != 1 {
		t.Errorf("Expected cached entry, got %v", entries)
	}

	// forceRefresh bypasses the cache and sees the deletion.
	entries = cached.Entries(true)
	if len(entries) != 0 {
		t.Errorf("Expected no entries after refresh, got %v", entries)
	}
}

func TestEngineIgnoresStaleCache(t *testing.T) {
	root := t.TempDir()
	mustMkdir(t, filepath.Join(root, "proj", ".git"))
	cachePath := filepath.Join(t.TempDir(), "code.json")

	stale := NewCache(cachePath)
	stale.Update(root, []Entry{{Display: "ghost", Path: filepath.Join(root, "ghost")}})
	stale.LastScanned = time.Now().Add(-48 * time.Hour)
	if err := stale.Save(); err != nil {
		t.Fatal(err)
	}

	engine := NewEngine(root, Unbounded, cachePath, 24*time.Hour)
	entries := engine.Entries(false)
	if len(entries) != 1 || entries[0].Display != "proj" {
		t.Errorf("Expected fresh scan result, got %v", entries)
	}
}

func TestEngineStructuredMode(t *testing.T) {
	root := t.TempDir()
	mustMkdir(t, filepath.Join(root, "acme", "widgets", ".git"))
	// Nested deeper than two levels, invisible to structured mode.
	mustMkdir(t, filepath.Join(root, "acme", "group", "deep", ".git"))

	engine := NewEngine(root, Structured, "", time.Hour)
	entries := engine.Entries(false)
	if len(entries) != 1 || entries[0].Display != "acme/widgets" {
		t.Errorf("Expected acme/widgets only, got %v", entries)
	}
}

func TestEngineWithoutCachePath(t *testing.T) {
	root := t.TempDir()
	mustMkdir(t, filepath.Join(root, "proj", ".git"))

	engine := NewEngine(root, Unbounded, "", time.Hour)
	if engine.Cache != nil {
		t.Fatal("Expected caching to be disabled")
	}
	entries := engine.Entries(false)
	if len(entries) != 1 {
		t.Errorf("Expected 1 entry, got %v", entries)
	}
}
