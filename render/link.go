package render

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/filequery/fq/entry"
	"github.com/filequery/fq/layout"
)

// PrintLink renders a symlink as a small bordered panel showing the link
// path and its target, without following the target.
func PrintLink(w io.Writer, s *entry.Store, id entry.ID, cfg *LinkConfig) LinkResult {
	started := time.Now()

	e, ok := s.Get(id)
	if !ok {
		ErrorPanel(w, nil, "", fmt.Sprintf("reading %s: %v", id.DebugString(), entry.ErrEntryNotFound), cfg.MinWidth, cfg.MaxWidth)
		return LinkResult{IsError: true}
	}
	path, err := s.Path(id)
	if err != nil {
		ErrorPanel(w, e, "", fmt.Sprintf("resolving path of %s: %v", id.DebugString(), err), cfg.MinWidth, cfg.MaxWidth)
		return LinkResult{IsError: true}
	}

	target, err := os.Readlink(path)
	if err != nil {
		ErrorPanel(w, e, path, fmt.Sprintf("reading link: %v", err), cfg.MinWidth, cfg.MaxWidth)
		return LinkResult{IsError: true}
	}

	rows := [][]cell{
		{
			plainCell("link", styleWhite, layout.Right),
			plainCell(path, styleLinkName, layout.Left),
		},
		{
			plainCell("target", styleWhite, layout.Right),
			plainCell(target, styleWhite, layout.Left),
		},
	}

	widths := layout.ColumnWidths(cellTexts(rows), cfg.MaxWidth, cfg.MinWidth, columnMargin)
	interior := tableWidth(widths[2], columnMargin)

	horizontalLine(w, interior, true, false)
	for _, row := range rows {
		printRow(w, false, row, widths[len(row)], columnMargin)
	}
	horizontalLine(w, interior, false, true)
	fmt.Fprintln(w, "took "+formatDuration(time.Since(started)))
	if cfg.Alert != "" {
		fmt.Fprintln(w, styleRed.Render(cfg.Alert))
	}

	return LinkResult{Target: target}
}
