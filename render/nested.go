package render

import "github.com/filequery/fq/entry"

// minSlackRows is how much budget the fairness round leaves untouched so
// a truncation footer always has room.
const minSlackRows = 4

// Selection is the flattened display list of a directory view: top-level
// rows interleaved with the nested child rows inlined under them, with a
// parallel indent level per row (0 or 1; deeper inlining is an
// unimplemented extension).
type Selection struct {
	Entries []*entry.Entry
	Levels  []int
}

// LastOfRun reports whether row i closes its nested run, i.e. whether the
// renderer should draw the half arrow instead of the branch glyph.
func (sel *Selection) LastOfRun(i int) bool {
	if sel.Levels[i] == 0 {
		return false
	}
	return i == len(sel.Levels)-1 || sel.Levels[i+1] < sel.Levels[i]
}

func flatSelection(contents []*entry.Entry) Selection {
	return Selection{
		Entries: contents,
		Levels:  make([]int, len(contents)),
	}
}

// selectNested decides how many of each subdirectory's own children to
// inline under a listing, given the remaining row budget, and returns the
// flattened result.
//
// Every directory child with visible children gets one nested row while
// budget remains; further rows are granted round-robin, one per directory
// per pass, so a huge directory cannot starve its siblings. The fairness
// rounds stop once the budget drops below a small slack. A directory
// whose children were not all granted gets a level-1 truncation marker
// reporting the elided count.
func selectNested(s *entry.Store, contents []*entry.Entry, cfg *DirConfig) Selection {
	remaining := cfg.MaxRow - len(contents)
	grants := make(map[entry.ID]int, len(contents))

	for _, c := range contents {
		n := s.ChildrenCount(c.ID, cfg.ShowHidden)
		if c.IsDir() && n > 0 && remaining > 0 {
			grants[c.ID] = 1
			remaining--
		} else {
			grants[c.ID] = 0
		}
	}

	for remaining >= minSlackRows {
		granted := false
		for _, c := range contents {
			n := s.ChildrenCount(c.ID, cfg.ShowHidden)
			if remaining > 0 && grants[c.ID] < n {
				grants[c.ID]++
				remaining--
				granted = true
			}
		}
		if !granted {
			break
		}
	}

	// Truncation markers occupy rows of their own, so the grants may
	// overshoot the budget; give rows back, largest grant first, until
	// the flattened total fits. Taking from the largest keeps every
	// directory's single guaranteed row for as long as possible.
	counts := make(map[entry.ID]int, len(contents))
	for _, c := range contents {
		counts[c.ID] = s.ChildrenCount(c.ID, cfg.ShowHidden)
	}
	for totalRows(contents, grants, counts) > cfg.MaxRow {
		var victim *entry.Entry
		for _, c := range contents {
			if grants[c.ID] > 0 && (victim == nil || grants[c.ID] > grants[victim.ID]) {
				victim = c
			}
		}
		if victim == nil {
			break
		}
		grants[victim.ID]--
	}

	sel := Selection{
		Entries: make([]*entry.Entry, 0, cfg.MaxRow),
		Levels:  make([]int, 0, cfg.MaxRow),
	}
	for _, c := range contents {
		sel.Entries = append(sel.Entries, c)
		sel.Levels = append(sel.Levels, 0)

		show := grants[c.ID]
		if show == 0 {
			continue
		}

		children := s.Children(c.ID, cfg.ShowHidden)
		s.SortEntries(children, cfg.SortBy, cfg.SortReverse)

		for _, child := range children[:show] {
			sel.Entries = append(sel.Entries, child)
			sel.Levels = append(sel.Levels, 1)
		}
		if len(children) > show {
			id := s.RegisterTruncatedMarker(len(children) - show)
			if marker, ok := s.Get(id); ok {
				sel.Entries = append(sel.Entries, marker)
				sel.Levels = append(sel.Levels, 1)
			}
		}
	}
	return sel
}

// totalRows counts the flattened rows a grant assignment would produce:
// top-level rows, nested rows, and one marker per partially shown
// directory.
func totalRows(contents []*entry.Entry, grants, counts map[entry.ID]int) int {
	total := len(contents)
	for _, c := range contents {
		g := grants[c.ID]
		total += g
		if g > 0 && g < counts[c.ID] {
			total++
		}
	}
	return total
}
