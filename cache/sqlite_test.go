package cache

import (
	"path/filepath"
	"testing"
)

func newTestSQLiteCache(t *testing.T, ttlSeconds int) *SQLiteCache {
	t.Helper()

	c, err := NewSQLiteCache(filepath.Join(t.TempDir(), "cache.db"), ttlSeconds)
	if err != nil {
		t.Fatalf("NewSQLiteCache failed: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestSQLiteCache_GetSet(t *testing.T) {
	c := newTestSQLiteCache(t, 3600)

	if err := c.Set("page:zh_CN", "hash1"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	val, ok := c.Get("page:zh_CN")
	if !ok {
		t.Error("Get should return true for existing key")
	}
	if val != "hash1" {
		t.Errorf("Get returned %q, want %q", val, "hash1")
	}

	if _, ok := c.Get("nonexistent"); ok {
		t.Error("Get should return false for missing key")
	}
}

func TestSQLiteCache_Overwrite(t *testing.T) {
	c := newTestSQLiteCache(t, 0)

	c.Set("page:zh_CN", "hash1")
	c.Set("page:zh_CN", "hash2")

	val, ok := c.Get("page:zh_CN")
	if !ok || val != "hash2" {
		t.Errorf("Value should be overwritten, got %q (ok=%v)", val, ok)
	}

	n, err := c.Len()
	if err != nil {
		t.Fatalf("Len failed: %v", err)
	}
	if n != 1 {
		t.Errorf("Len() = %d, want 1 after overwrite", n)
	}
}

func TestSQLiteCache_Persistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")

	c1, err := NewSQLiteCache(path, 0)
	if err != nil {
		t.Fatalf("NewSQLiteCache failed: %v", err)
	}
	if err := c1.Set("page:zh_CN", "hash1"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := c1.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	// Reopen and verify the entry survived
	c2, err := NewSQLiteCache(path, 0)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer c2.Close()

	val, ok := c2.Get("page:zh_CN")
	if !ok || val != "hash1" {
		t.Errorf("entry did not survive reopen: got %q (ok=%v)", val, ok)
	}
}

func TestSQLiteCache_Len(t *testing.T) {
	c := newTestSQLiteCache(t, 3600)

	n, err := c.Len()
	if err != nil {
		t.Fatalf("Len failed: %v", err)
	}
	if n != 0 {
		t.Errorf("Empty cache should have length 0, got %d", n)
	}

	c.Set("page:zh_CN", "hash1")
	c.Set("page:de_DE", "hash2")

	n, err = c.Len()
	if err != nil {
		t.Fatalf("Len failed: %v", err)
	}
	if n != 2 {
		t.Errorf("Cache should have length 2, got %d", n)
	}
}
