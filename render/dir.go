package render

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/filequery/fq/entry"
	"github.com/filequery/fq/layout"
)

// PrintDir renders the bordered directory listing for id: a path header,
// one row per (possibly nested) child, a truncation marker when rows were
// elided, and the cosmetic query summary underneath. All failures render
// as inline panels; the function never panics on bad ids.
func PrintDir(w io.Writer, s *entry.Store, id entry.ID, cfg *DirConfig) DirResult {
	started := time.Now()

	e, ok := s.Get(id)
	if !ok {
		ErrorPanel(w, nil, "", fmt.Sprintf("listing %s: %v", id.DebugString(), entry.ErrEntryNotFound), cfg.MinWidth, cfg.MaxWidth)
		return DirResult{IsError: true}
	}
	if !e.IsDir() {
		ErrorPanel(w, e, "", fmt.Sprintf("listing %q: %v", e.Name, entry.ErrNotDirectory), cfg.MinWidth, cfg.MaxWidth)
		return DirResult{IsError: true}
	}

	path, err := s.Path(id)
	if err != nil {
		ErrorPanel(w, e, "", fmt.Sprintf("resolving path of %s: %v", id.DebugString(), err), cfg.MinWidth, cfg.MaxWidth)
		return DirResult{IsError: true}
	}

	s.InitChildren(id)
	contents := s.Children(id, cfg.ShowHidden)
	childrenNum := len(contents)

	s.SortEntries(contents, cfg.SortBy, cfg.SortReverse)

	if cfg.Offset > 0 && len(contents) > 0 {
		off := cfg.Offset
		if off > len(contents)-1 {
			off = len(contents) - 1
		}
		contents = contents[off:]
	}

	var sel Selection
	switch {
	case len(contents) > cfg.MaxRow:
		// no nesting when the top level alone overflows
		sel = flatSelection(contents[:cfg.MaxRow])
	case len(contents)+minSlackRows < cfg.MaxRow:
		sel = selectNested(s, contents, cfg)
	default:
		sel = flatSelection(contents)
	}

	shown := 0
	for _, level := range sel.Levels {
		if level == 0 {
			shown++
		}
	}
	// offset rows are skipped, not truncated
	truncated := childrenNum
	if shown+cfg.Offset > truncated {
		truncated = shown + cfg.Offset
	}
	truncated -= shown + cfg.Offset

	if truncated > 0 {
		if marker, ok := s.Get(s.RegisterTruncatedMarker(truncated)); ok {
			sel.Entries = append(sel.Entries, marker)
			sel.Levels = append(sel.Levels, 0)
		}
	}
	if childrenNum == 0 {
		if msg, ok := s.Get(s.Message("Empty Directory")); ok {
			sel.Entries = append(sel.Entries, msg)
			sel.Levels = append(sel.Levels, 0)
		}
	}

	now := time.Now()
	rows := make([][]cell, 0, len(sel.Entries)+1)

	header := make([]cell, len(cfg.Columns))
	for i, col := range cfg.Columns {
		header[i] = plainCell(col.Header(), styleWhite, layout.Center)
	}
	rows = append(rows, header)

	tableIndex := cfg.Offset
	tableSubIndex := 0

	for i, child := range sel.Entries {
		level := sel.Levels[i]
		halfArrow := sel.LastOfRun(i)

		if child.IsSpecial() {
			rows = append(rows, []cell{
				plainCell("", styleWhite, layout.Right),
				arrowCell(level, halfArrow, child.Name, styleWhite),
			})
			continue
		}

		if level == 0 {
			tableIndex++
			tableSubIndex = 0
		} else {
			tableSubIndex++
		}

		indexFmt := fmt.Sprintf("%d   ", tableIndex)
		if tableSubIndex > 0 {
			pad := " "
			if tableSubIndex >= 10 {
				pad = ""
			}
			indexFmt = fmt.Sprintf("%d-%d%s", tableIndex, tableSubIndex, pad)
		}

		name := child.Name
		if level == 0 && cfg.ShowFullPath {
			if p, err := s.Path(child.ID); err == nil {
				name = p
			}
		}

		row := make([]cell, 0, len(cfg.Columns))
		for _, col := range cfg.Columns {
			switch col {
			case ColIndex:
				row = append(row, plainCell(indexFmt, styleWhite, layout.Right))
			case ColName:
				row = append(row, arrowCell(level, halfArrow, name, colorizeName(child)))
			case ColKind:
				row = append(row, plainCell(child.Kind.String(), colorizeKind(child.Kind), layout.Left))
			case ColModified:
				row = append(row, plainCell(PrettyTime(now, child.ModTime), colorizeTime(now, child.ModTime), layout.Right))
			case ColSize:
				row = append(row, plainCell(PrettySize(child.Size), colorizeSize(child.Size), layout.Right))
			case ColTotalSize:
				total := s.RecursiveSize(child.ID)
				row = append(row, plainCell(PrettySize(total), colorizeSize(total), layout.Right))
			case ColExt:
				row = append(row, plainCell(child.Ext, extStyle(child.Ext), layout.Left))
			}
		}
		rows = append(rows, row)
	}

	widths := layout.ColumnWidths(cellTexts(rows), cfg.MaxWidth, cfg.MinWidth, columnMargin)
	interior := tableWidth(widths[len(cfg.Columns)], columnMargin)

	horizontalLine(w, interior, true, false)
	printPathHeader(w, interior, path, fmt.Sprintf("%d elements", childrenNum), 13)
	horizontalLine(w, interior, false, false)

	for i, row := range rows {
		printRow(w, i&1 == 1, row, widths[len(row)], columnMargin)
	}

	horizontalLine(w, interior, false, true)
	fmt.Fprintln(w, styleGray.Render(cfg.SQLString(path)))
	fmt.Fprintln(w, "took "+formatDuration(time.Since(started)))
	if cfg.Alert != "" {
		fmt.Fprintln(w, styleRed.Render(cfg.Alert))
	}

	return DirResult{Shown: shown}
}

// printPathHeader draws the "path | meta" row above a table body.
func printPathHeader(w io.Writer, interior int, path, meta string, metaWidth int) {
	pathWidth := interior - metaWidth - columnMargin*3
	if pathWidth < 1 {
		pathWidth = 1
	}
	printRow(w, false, []cell{
		plainCell(path, styleWhite, layout.Left),
		plainCell(meta, styleYellow, layout.Right),
	}, []int{pathWidth, metaWidth}, columnMargin)
}

// indentPrefix returns the tree glyph for a nested row. Levels past 1 are
// unreachable until multi-level inlining is implemented.
func indentPrefix(level int, halfArrow bool) string {
	switch {
	case level == 0:
		return ""
	case level == 1 && halfArrow:
		return "╰── "
	case level == 1:
		return "├── "
	default:
		panic(fmt.Sprintf("nested level %d not implemented", level))
	}
}

// arrowCell builds a name cell with the tree connector painted green and
// the remainder in the row's own color.
func arrowCell(level int, halfArrow bool, text string, style lipgloss.Style) cell {
	prefix := indentPrefix(level, halfArrow)
	if prefix == "" {
		return plainCell(text, style, layout.Left)
	}
	return spanCell([]span{
		{text: prefix, style: styleGreen},
		{text: text, style: style},
	}, layout.Left)
}
