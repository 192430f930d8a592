package macro

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestLibraryDefaults(t *testing.T) {
	lib := NewLibrary([]string{t.TempDir()})
	if err := lib.Load(); err != nil {
		t.Fatalf("failed to load empty library: %v", err)
	}

	roll, ok := lib.Get("default")
	if !ok {
		t.Fatal("expected built-in default die")
	}
	if roll != "3x 3d20 *2 +1 s2" {
		t.Errorf("unexpected default notation: %s", roll)
	}
}

func TestLibraryDirFallback(t *testing.T) {
	primary := t.TempDir()
	fallback := t.TempDir()

	content := []byte("dice:\n  stats: 6x 4d6 s1\n")
	if err := os.WriteFile(filepath.Join(fallback, FileName), content, 0644); err != nil {
		t.Fatalf("failed to write library file: %v", err)
	}

	lib := NewLibrary([]string{primary, fallback})
	if err := lib.Load(); err != nil {
		t.Fatalf("failed to load library: %v", err)
	}

	roll, ok := lib.Get("stats")
	if !ok {
		t.Fatal("expected stats die from fallback dir")
	}
	if roll != "6x 4d6 s1" {
		t.Errorf("unexpected notation: %s", roll)
	}
}

func TestLibrarySaveRoundTrip(t *testing.T) {
	dir := t.TempDir()

	lib := NewLibrary([]string{dir})
	lib.Set("sneak", "4d6")
	if err := lib.Save(); err != nil {
		t.Fatalf("failed to save library: %v", err)
	}

	reloaded := NewLibrary([]string{dir})
	if err := reloaded.Load(); err != nil {
		t.Fatalf("failed to reload library: %v", err)
	}

	roll, ok := reloaded.Get("sneak")
	if !ok {
		t.Fatal("expected sneak die after reload")
	}
	if roll != "4d6" {
		t.Errorf("unexpected notation: %s", roll)
	}
}

func TestLibraryDelete(t *testing.T) {
	lib := NewLibrary(nil)
	lib.Set("doomed", "1d4")

	if !lib.Delete("doomed") {
		t.Error("expected delete to report an existing binding")
	}
	if lib.Delete("doomed") {
		t.Error("expected second delete to report a missing binding")
	}
	if _, ok := lib.Get("doomed"); ok {
		t.Error("binding should be gone")
	}
}

func TestLibraryNamesSorted(t *testing.T) {
	lib := NewLibrary(nil)
	lib.Set("zeta", "1d6")
	lib.Set("alpha", "1d8")

	names := lib.Names()
	if len(names) != 3 {
		t.Fatalf("expected 3 names, got %d", len(names))
	}
	if names[0] != "alpha" || names[1] != "default" || names[2] != "zeta" {
		t.Errorf("names not sorted: %v", names)
	}
}

func TestLibraryConcurrentAccess(t *testing.T) {
	lib := NewLibrary(nil)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if i%2 == 0 {
					lib.Set("default", "2d8+3")
				} else {
					lib.Get("default")
					lib.Names()
				}
			}
		}(i)
	}
	wg.Wait()

	if _, ok := lib.Get("default"); !ok {
		t.Error("default binding should survive concurrent access")
	}
}
