package entry

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRecursiveSizeSumsSubtree(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "small"), 10)
	writeFile(t, filepath.Join(dir, "mid"), 2048)
	writeFile(t, filepath.Join(dir, "big"), 5_000_000)

	s := NewStore()
	id := s.FromPath(dir, Base)

	if got := s.RecursiveSize(id); got != 5_002_058 {
		t.Errorf("RecursiveSize() = %d, want 5002058", got)
	}
}

func TestRecursiveSizeIncludesHiddenAndNested(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "sub"), 0755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(dir, ".dot"), 100)
	writeFile(t, filepath.Join(dir, "sub", "leaf"), 200)

	s := NewStore()
	id := s.FromPath(dir, Base)

	if got := s.RecursiveSize(id); got != 300 {
		t.Errorf("RecursiveSize() = %d, want 300", got)
	}

	// invariant: dir total equals the sum over all children, hidden included
	var sum uint64
	for _, c := range s.Children(id, true) {
		sum += s.RecursiveSize(c.ID)
	}
	if sum != s.RecursiveSize(id) {
		t.Errorf("child sum %d != directory total %d", sum, s.RecursiveSize(id))
	}
}

func TestRecursiveSizeComputedOnce(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "sub"), 0755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(dir, "sub", "leaf"), 42)

	s, reads := newCountingStore(t)
	id := s.FromPath(dir, Base)

	first := s.RecursiveSize(id)
	readsAfterFirst := *reads
	second := s.RecursiveSize(id)

	if first != second {
		t.Errorf("memoized size changed: %d then %d", first, second)
	}
	if *reads != readsAfterFirst {
		t.Error("second RecursiveSize call touched the OS")
	}

	e, _ := s.Get(id)
	if !e.hasRecSize || e.recSize != first {
		t.Error("recursive size was not memoized on the entry")
	}
}

func TestRecursiveSizeOfFileIsDirectSize(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "f"), 1234)

	s := NewStore()
	id := s.FromPath(filepath.Join(dir, "f"), NewNormal())
	if got := s.RecursiveSize(id); got != 1234 {
		t.Errorf("RecursiveSize(file) = %d, want 1234", got)
	}
}

func TestRecursiveSizeOfSyntheticIsZero(t *testing.T) {
	s := NewStore()
	if got := s.RecursiveSize(s.FromErrorMessage("x")); got != 0 {
		t.Errorf("RecursiveSize(synthetic) = %d, want 0", got)
	}
	if got := s.RecursiveSize(NewNormal()); got != 0 {
		t.Errorf("RecursiveSize(unknown id) = %d, want 0", got)
	}
}
