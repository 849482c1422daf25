package layout

import (
	"strings"
	"unicode/utf8"
)

// Alignment controls how a cell is padded inside its column.
type Alignment uint8

const (
	Left Alignment = iota
	Center
	Right
)

// shrinkFloor is the narrowest a column may be squeezed to when the table
// exceeds the terminal width. Below this, breaking the width bound reads
// better than the column would.
const shrinkFloor = 16

// ColumnWidths computes per-column widths for a table of text cells.
//
// The first row fixes the column count M. A later row may have fewer
// cells; its last cell then spans all remaining columns (the rowspan
// convention used by nested and message rows), and spanned cells do not
// contribute to the natural width of the column they start in.
//
// When the natural total exceeds maxWidth, columns wider than the shrink
// floor give up one character per pass until the table fits or nothing
// can shrink. When the total falls short of minWidth, the deficit is
// spread evenly over all columns (ceiling division). Bounds of 0 mean
// unbounded.
//
// The result maps each observed row length N to its width vector: the
// first N-1 columns keep their computed widths and the final column
// absorbs everything that remains, so shorter rows line up with the full
// ones.
func ColumnWidths(rows [][]string, maxWidth, minWidth, margin int) map[int][]int {
	m := len(rows[0])
	widths := make([]int, m)

	for _, row := range rows {
		real := len(row)
		if real < m {
			// last cell spans; it has no column of its own
			real--
		}
		for c := 0; c < real; c++ {
			if w := utf8.RuneCountInString(row[c]); w > widths[c] {
				widths[c] = w
			}
		}
	}

	total := margin * (m + 1)
	for _, w := range widths {
		total += w
	}

	if maxWidth > 0 && total > maxWidth {
		for total > maxWidth {
			shrunk := false
			for c := 0; c < m && total > maxWidth; c++ {
				if widths[c] > shrinkFloor {
					widths[c]--
					total--
					shrunk = true
				}
			}
			if !shrunk {
				break
			}
		}
	}

	if minWidth > 0 && total < minWidth {
		extra := (minWidth - total + m - 1) / m
		for c := range widths {
			widths[c] += extra
		}
		total += extra * m
	}

	out := make(map[int][]int, 4)
	for _, row := range rows {
		n := len(row)
		if _, ok := out[n]; ok {
			continue
		}
		v := make([]int, n)
		copy(v, widths[:n-1])
		head := 0
		for _, w := range v[:n-1] {
			head += w
		}
		v[n-1] = total - margin*(n+1) - head
		out[n] = v
	}
	return out
}

// EllipsisCut returns how many leading and trailing characters of an
// n-character string survive truncation to width, with "..." taking the
// middle. The cut keeps the visual center; width is clamped so the
// ellipsis itself always fits.
func EllipsisCut(n, width int) (prefix, suffix int) {
	if width < 3 {
		width = 3
	}
	prefix = (width - 3) / 2
	suffix = width - 3 - prefix
	return prefix, suffix
}

// PadSplit returns the left and right padding for an n-character string in
// a cell of the given width. Centered cells put the odd space on the
// right.
func PadSplit(n, width int, align Alignment) (left, right int) {
	gap := width - n
	if gap <= 0 {
		return 0, 0
	}
	switch align {
	case Right:
		return gap, 0
	case Center:
		return gap / 2, gap - gap/2
	default:
		return 0, gap
	}
}

// RenderCell fits s into a cell of the given width: oversized content is
// truncated around a centered "..." (never splitting a character),
// anything else is padded per the alignment.
func RenderCell(s string, width int, align Alignment) string {
	rs := []rune(s)
	if len(rs) > width {
		pre, post := EllipsisCut(len(rs), width)
		return string(rs[:pre]) + "..." + string(rs[len(rs)-post:])
	}
	left, right := PadSplit(len(rs), width, align)
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
