package render

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/filequery/fq/entry"
)

// buildTree creates a temp directory with one subdirectory per count,
// each holding that many files, and returns the expanded root listing.
func buildTree(t *testing.T, counts []int) (*entry.Store, []*entry.Entry) {
	t.Helper()
	dir := t.TempDir()
	for i, n := range counts {
		sub := filepath.Join(dir, fmt.Sprintf("d%02d", i))
		if err := os.Mkdir(sub, 0o755); err != nil {
			t.Fatal(err)
		}
		for j := 0; j < n; j++ {
			name := filepath.Join(sub, fmt.Sprintf("f%03d.txt", j))
			if err := os.WriteFile(name, []byte("x"), 0o644); err != nil {
				t.Fatal(err)
			}
		}
	}
	s := entry.NewStore()
	root := s.FromPath(dir, entry.Base)
	contents := s.Children(root, false)
	s.SortEntries(contents, entry.SortByName, false)
	return s, contents
}

func TestSelectNestedBudget(t *testing.T) {
	counts := make([]int, 10)
	for i := range counts {
		counts[i] = 100
	}
	s, contents := buildTree(t, counts)

	cfg := NewDirConfig()
	cfg.MaxRow = 60

	sel := selectNested(s, contents, cfg)
	if len(sel.Entries) > cfg.MaxRow {
		t.Fatalf("selection has %d rows, budget is %d", len(sel.Entries), cfg.MaxRow)
	}
	if len(sel.Entries) != len(sel.Levels) {
		t.Fatalf("entries/levels length mismatch: %d vs %d", len(sel.Entries), len(sel.Levels))
	}

	top := 0
	for _, level := range sel.Levels {
		if level == 0 {
			top++
		}
	}
	if top != len(contents) {
		t.Errorf("expected all %d top-level rows, got %d", len(contents), top)
	}
}

func TestSelectNestedFairness(t *testing.T) {
	s, contents := buildTree(t, []int{1, 100, 2})

	cfg := NewDirConfig()
	cfg.MaxRow = 20

	sel := selectNested(s, contents, cfg)
	if len(sel.Entries) > cfg.MaxRow {
		t.Fatalf("selection has %d rows, budget is %d", len(sel.Entries), cfg.MaxRow)
	}

	// nested rows per top-level directory, in listing order
	nested := make([]int, 0, len(contents))
	markers := make([]bool, 0, len(contents))
	for i, e := range sel.Entries {
		if sel.Levels[i] == 0 {
			nested = append(nested, 0)
			markers = append(markers, false)
			continue
		}
		if e.IsSpecial() {
			markers[len(markers)-1] = true
			continue
		}
		nested[len(nested)-1]++
	}

	if nested[0] != 1 {
		t.Errorf("d00 has 1 child, expected 1 nested row, got %d", nested[0])
	}
	if markers[0] {
		t.Error("fully shown d00 must not get a truncation marker")
	}
	if nested[2] != 2 {
		t.Errorf("d02 has 2 children, expected both shown, got %d", nested[2])
	}
	if markers[2] {
		t.Error("fully shown d02 must not get a truncation marker")
	}
	if nested[1] == 0 {
		t.Error("d01 got no nested rows despite available budget")
	}
	if !markers[1] {
		t.Error("partially shown d01 must get a truncation marker")
	}
}

func TestSelectNestedEmptyDirsGetNoRows(t *testing.T) {
	s, contents := buildTree(t, []int{0, 0, 3})

	cfg := NewDirConfig()
	cfg.MaxRow = 30

	sel := selectNested(s, contents, cfg)
	for i, e := range sel.Entries {
		if sel.Levels[i] == 1 && e.HasParent && e.Parent == contents[0].ID {
			t.Errorf("empty directory %s got nested row %q", contents[0].Name, e.Name)
		}
	}
}

func TestFlatSelection(t *testing.T) {
	_, contents := buildTree(t, []int{2, 2})
	sel := flatSelection(contents)
	if len(sel.Entries) != len(contents) {
		t.Fatalf("got %d entries, want %d", len(sel.Entries), len(contents))
	}
	for i, level := range sel.Levels {
		if level != 0 {
			t.Errorf("row %d: level %d, want 0", i, level)
		}
	}
}

func TestLastOfRun(t *testing.T) {
	sel := Selection{
		Entries: make([]*entry.Entry, 5),
		Levels:  []int{0, 1, 1, 0, 1},
	}
	want := []bool{false, false, true, false, true}
	for i, w := range want {
		if got := sel.LastOfRun(i); got != w {
			t.Errorf("LastOfRun(%d) = %v, want %v", i, got, w)
		}
	}
}
