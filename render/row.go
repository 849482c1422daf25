package render

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/filequery/fq/layout"
)

// span is a run of text painted in one style.
type span struct {
	text  string
	style lipgloss.Style
}

// cell is one table cell: plain text for measurement plus optional style
// spans for painting. When spans is nil the whole cell uses style.
type cell struct {
	text  string
	style lipgloss.Style
	spans []span
	align layout.Alignment
}

func plainCell(text string, style lipgloss.Style, align layout.Alignment) cell {
	return cell{text: text, style: style, align: align}
}

func spanCell(spans []span, align layout.Alignment) cell {
	var b strings.Builder
	for _, sp := range spans {
		b.WriteString(sp.text)
	}
	return cell{text: b.String(), spans: spans, align: align}
}

func (c cell) cellSpans() []span {
	if c.spans != nil {
		return c.spans
	}
	return []span{{text: c.text, style: c.style}}
}

// spansHead returns the first n runes of spans.
func spansHead(spans []span, n int) []span {
	out := make([]span, 0, len(spans))
	for _, sp := range spans {
		if n <= 0 {
			break
		}
		w := utf8.RuneCountInString(sp.text)
		if w <= n {
			out = append(out, sp)
			n -= w
			continue
		}
		rs := []rune(sp.text)
		out = append(out, span{text: string(rs[:n]), style: sp.style})
		n = 0
	}
	return out
}

// spansTail returns the last n runes of spans.
func spansTail(spans []span, n int) []span {
	total := 0
	for _, sp := range spans {
		total += utf8.RuneCountInString(sp.text)
	}
	skip := total - n
	out := make([]span, 0, len(spans))
	for _, sp := range spans {
		w := utf8.RuneCountInString(sp.text)
		if skip >= w {
			skip -= w
			continue
		}
		if skip > 0 {
			rs := []rune(sp.text)
			out = append(out, span{text: string(rs[skip:]), style: sp.style})
			skip = 0
			continue
		}
		out = append(out, sp)
	}
	return out
}

// cellTexts projects styled rows to the plain matrix the layout engine
// measures.
func cellTexts(rows [][]cell) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		texts := make([]string, len(row))
		for j, c := range row {
			texts[j] = c.text
		}
		out[i] = texts
	}
	return out
}

const columnMargin = 2

// printRow paints one bordered table row. Oversized cells are truncated
// around a centered ellipsis using the same cuts the layout engine
// computes, so styled and plain cells line up identically.
func printRow(w io.Writer, shaded bool, cells []cell, widths []int, margin int) {
	var b strings.Builder

	paint := func(text string, style lipgloss.Style) {
		if text == "" {
			return
		}
		if shaded {
			style = style.Background(colorRowBg)
		}
		b.WriteString(style.Render(text))
	}

	b.WriteString(styleBorder.Render("│"))
	paint(strings.Repeat(" ", margin), styleWhite)

	for i, c := range cells {
		n := utf8.RuneCountInString(c.text)
		spans := c.cellSpans()

		if n > widths[i] {
			pre, post := layout.EllipsisCut(n, widths[i])
			for _, sp := range spansHead(spans, pre) {
				paint(sp.text, sp.style)
			}
			paint("...", styleWhite)
			for _, sp := range spansTail(spans, post) {
				paint(sp.text, sp.style)
			}
		} else {
			left, right := layout.PadSplit(n, widths[i], c.align)
			paint(strings.Repeat(" ", left), styleWhite)
			for _, sp := range spans {
				paint(sp.text, sp.style)
			}
			paint(strings.Repeat(" ", right), styleWhite)
		}

		paint(strings.Repeat(" ", margin), styleWhite)
	}

	b.WriteString(styleBorder.Render("│"))
	fmt.Fprintln(w, b.String())
}

// horizontalLine draws one border rule of the given interior width.
func horizontalLine(w io.Writer, width int, top, bottom bool) {
	left, right := "├", "┤"
	switch {
	case top:
		left, right = "┌", "┐"
	case bottom:
		left, right = "└", "┘"
	}
	fmt.Fprintln(w, styleBorder.Render(left+strings.Repeat("─", width)+right))
}

// tableWidth returns the interior width of a table given any one of its
// width vectors.
func tableWidth(widths []int, margin int) int {
	sum := margin * (len(widths) + 1)
	for _, w := range widths {
		sum += w
	}
	return sum
}
