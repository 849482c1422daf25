package render

import (
	"io"

	"github.com/filequery/fq/entry"
	"github.com/filequery/fq/layout"
)

// ErrorPanel renders a recoverable failure as an inline bordered panel:
// the failed operation with the raw OS error, plus whatever context is
// known. It is the display path for every error that must not abort the
// session.
func ErrorPanel(w io.Writer, e *entry.Entry, path string, message string, minWidth, maxWidth int) {
	rows := [][]cell{
		{plainCell(message, styleRed, layout.Left)},
	}
	if path != "" {
		rows = append(rows, []cell{plainCell("path: "+path, styleWhite, layout.Left)})
	}
	if e != nil {
		rows = append(rows, []cell{plainCell("entry: "+e.ID.DebugString(), styleGray, layout.Left)})
	}

	widths := layout.ColumnWidths(cellTexts(rows), maxWidth, minWidth, columnMargin)
	interior := tableWidth(widths[1], columnMargin)

	horizontalLine(w, interior, true, false)
	for _, row := range rows {
		printRow(w, false, row, widths[len(row)], columnMargin)
	}
	horizontalLine(w, interior, false, true)
}
