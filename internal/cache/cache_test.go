package cache

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T, maxEntries int) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "palettes.db"), maxEntries)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})

	return store
}

func TestStoreLookupRoundTrip(t *testing.T) {
	t.Parallel()

	store := openTestStore(t, 0)

	if _, ok, err := store.Lookup("hash", "options"); err != nil || ok {
		t.Fatalf("lookup before store = (%t, %v), want miss", ok, err)
	}

	payload := []byte(`{"swatches":[]}`)
	if err := store.Store("hash", "options", payload); err != nil {
		t.Fatalf("store: %v", err)
	}

	got, ok, err := store.Lookup("hash", "options")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if !ok {
		t.Fatal("expected a cache hit")
	}
	if string(got) != string(payload) {
		t.Fatalf("payload = %q, want %q", got, payload)
	}

	if _, ok, err := store.Lookup("hash", "other-options"); err != nil || ok {
		t.Fatalf("different options should miss, got (%t, %v)", ok, err)
	}
}

func TestStoreReplacesExistingEntry(t *testing.T) {
	t.Parallel()

	store := openTestStore(t, 0)

	if err := store.Store("hash", "options", []byte("first")); err != nil {
		t.Fatalf("store: %v", err)
	}
	if err := store.Store("hash", "options", []byte("second")); err != nil {
		t.Fatalf("store again: %v", err)
	}

	got, ok, err := store.Lookup("hash", "options")
	if err != nil || !ok {
		t.Fatalf("lookup = (%t, %v)", ok, err)
	}
	if string(got) != "second" {
		t.Fatalf("payload = %q, want the replacement", got)
	}
}

func TestStoreEvictsOldestBeyondCap(t *testing.T) {
	t.Parallel()

	store := openTestStore(t, 2)

	for _, name := range []string{"first", "second", "third"} {
		if err := store.Store(name, "options", []byte(name)); err != nil {
			t.Fatalf("store %s: %v", name, err)
		}
	}

	if _, ok, err := store.Lookup("first", "options"); err != nil || ok {
		t.Fatalf("oldest entry should be evicted, got (%t, %v)", ok, err)
	}
	for _, name := range []string{"second", "third"} {
		if _, ok, err := store.Lookup(name, "options"); err != nil || !ok {
			t.Fatalf("%s should survive eviction, got (%t, %v)", name, ok, err)
		}
	}
}

func TestHashFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "input.bin")
	if err := os.WriteFile(path, []byte("swatch"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	first, err := HashFile(path)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if len(first) != 64 {
		t.Fatalf("hash length = %d, want 64 hex characters", len(first))
	}

	second, err := HashFile(path)
	if err != nil {
		t.Fatalf("hash again: %v", err)
	}
	if first != second {
		t.Fatal("hash should be stable for identical content")
	}
}
