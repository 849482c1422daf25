package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"

	"github.com/filequery/fq/entry"
	"github.com/filequery/fq/layout"
)

// maxContentBytes bounds how much of a file the viewer loads. Anything
// past it shows up in the truncation footer instead.
const maxContentBytes = 1 << 18

// PrintFile renders a file either as syntax-highlighted text (when the
// loaded prefix is valid UTF-8) or as a hex dump. The result reports
// which viewer ran so callers can scroll by line or by row of bytes.
func PrintFile(w io.Writer, s *entry.Store, id entry.ID, cfg *FileConfig) FileResult {
	started := time.Now()

	e, ok := s.Get(id)
	if !ok {
		ErrorPanel(w, nil, "", fmt.Sprintf("reading %s: %v", id.DebugString(), entry.ErrEntryNotFound), cfg.MinWidth, cfg.MaxWidth)
		return FileResult{IsError: true}
	}
	path, err := s.Path(id)
	if err != nil {
		ErrorPanel(w, e, "", fmt.Sprintf("resolving path of %s: %v", id.DebugString(), err), cfg.MinWidth, cfg.MaxWidth)
		return FileResult{IsError: true}
	}

	f, err := os.Open(path)
	if err != nil {
		ErrorPanel(w, e, path, fmt.Sprintf("opening file: %v", err), cfg.MinWidth, cfg.MaxWidth)
		return FileResult{IsError: true}
	}
	defer f.Close()

	var content []byte
	var truncated uint64

	if e.Size <= maxContentBytes {
		content, err = io.ReadAll(f)
		if err != nil {
			ErrorPanel(w, e, path, fmt.Sprintf("reading file: %v", err), cfg.MinWidth, cfg.MaxWidth)
			return FileResult{IsError: true}
		}
	} else {
		content = make([]byte, maxContentBytes)
		if _, err := io.ReadFull(f, content); err != nil {
			ErrorPanel(w, e, path, fmt.Sprintf("reading file: %v", err), cfg.MinWidth, cfg.MaxWidth)
			return FileResult{IsError: true}
		}
		truncated = e.Size - uint64(len(content))
	}

	if utf8.Valid(content) {
		return printTextFile(w, e, path, string(content), truncated, cfg, started)
	}
	return printHexFile(w, f, e, path, cfg, started)
}

func printTextFile(w io.Writer, e *entry.Entry, path, text string, truncated uint64, cfg *FileConfig, started time.Time) FileResult {
	highlights := cfg.Highlights

	rows := [][]cell{{
		plainCell("line", styleWhite, layout.Center),
		plainCell("", styleWhite, layout.Center),
		plainCell("content", styleWhite, layout.Center),
	}}

	lineNo := 1
	lastLine := 0
	chCount := uint64(0)
	var curSpans []span
	var run strings.Builder
	var runStyle lipgloss.Style
	runSet := false

	flushRun := func() {
		if run.Len() > 0 {
			curSpans = append(curSpans, span{text: run.String(), style: runStyle})
			run.Reset()
		}
		runSet = false
	}

	emitLine := func() {
		if lineNo > cfg.Offset {
			noCell := plainCell(fmt.Sprint(lineNo), styleWhite, layout.Right)
			if len(highlights) > 0 && highlights[0] == lineNo {
				noCell = spanCell([]span{
					{text: ">>>", style: styleRed},
					{text: fmt.Sprintf(" %d", lineNo), style: styleWhite},
				}, layout.Right)
				highlights = highlights[1:]
			}
			rows = append(rows, []cell{
				noCell,
				plainCell("│", styleWhite, layout.Left),
				spanCell(curSpans, layout.Left),
			})
			lastLine = lineNo
		}
		curSpans = nil
	}

tokens:
	for _, tok := range highlightTokens(path, text) {
		for _, ch := range tok.text {
			chCount++
			if ch == '\n' {
				flushRun()
				emitLine()
				lineNo++
				if lineNo == cfg.MaxRow+cfg.Offset {
					truncated = e.Size - chCount
					break tokens
				}
				continue
			}
			if ch == '\r' {
				ch = ' '
			}
			if !runSet || !sameStyle(runStyle, tok.style) {
				flushRun()
				runStyle = tok.style
				runSet = true
			}
			run.WriteRune(ch)
		}
	}
	flushRun()
	if len(curSpans) > 0 {
		emitLine()
	}

	if truncated > 0 {
		rows = append(rows, []cell{
			plainCell(fmt.Sprintf("... (truncated %s)", strings.TrimSpace(PrettySize(truncated))), styleWhite, layout.Left),
		})
	}

	widths := layout.ColumnWidths(cellTexts(rows), cfg.MaxWidth, cfg.MinWidth, columnMargin)
	interior := tableWidth(widths[3], columnMargin)

	horizontalLine(w, interior, true, false)
	printPathHeader(w, interior, path, PrettySize(e.Size), 16)
	horizontalLine(w, interior, false, false)
	for _, row := range rows {
		printRow(w, false, row, widths[len(row)], columnMargin)
	}
	horizontalLine(w, interior, false, true)
	fmt.Fprintln(w, "took "+formatDuration(time.Since(started)))
	if cfg.Alert != "" {
		fmt.Fprintln(w, styleRed.Render(cfg.Alert))
	}

	return FileResult{Viewer: ViewerText, LastLine: lastLine}
}

// token is one run of highlighted text.
type token struct {
	text  string
	style lipgloss.Style
}

// highlightTokens colors text with chroma, picking a lexer by file name,
// then by content, then falling back to plain text.
func highlightTokens(path, text string) []token {
	lexer := lexers.Match(filepath.Base(path))
	if lexer == nil {
		lexer = lexers.Analyse(text)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get("nord")
	if style == nil {
		style = styles.Fallback
	}

	it, err := lexer.Tokenise(nil, text)
	if err != nil {
		return []token{{text: text, style: styleWhite}}
	}

	var out []token
	for _, tok := range it.Tokens() {
		st := styleWhite
		if c := style.Get(tok.Type).Colour; c.IsSet() {
			st = lipgloss.NewStyle().Foreground(lipgloss.Color(c.String()))
		}
		out = append(out, token{text: tok.Value, style: st})
	}
	return out
}

func sameStyle(a, b lipgloss.Style) bool {
	return a.GetForeground() == b.GetForeground()
}

// Hex viewer geometry. The comments show a full row at each tier.

// '  00000000  7f 45 4c 46  .ELF  '
const hexViewer4Bytes = 23 + 4*columnMargin

// '  00000000  7f 45 4c 46 02 01 01 00  .ELF....  '
const hexViewer8Bytes = 39 + 4*columnMargin

// '  00000000  7f 45 4c 46 02 01 01 00  00 00 00 00 00 00 00 00  .ELF....  ........  '
const hexViewer16Bytes = 74 + 4*columnMargin

// '  00000000  7f 45 4c 46 02 01 01 00  00 00 00 00 00 00 00 00  03 00 3e 00 01 00 00 00  a0 a1 03 00 00 00 00 00  .ELF....  ........  ..>.....  ........  '
const hexViewer32Bytes = 144 + 4*columnMargin

func hexViewerRowWidth(maxWidth int) (bytesPerRow, totalWidth, offsetW, hexW, asciiW int) {
	switch {
	case maxWidth < hexViewer8Bytes:
		return 4, hexViewer4Bytes, 8, 11, 4
	case maxWidth < hexViewer16Bytes:
		return 8, hexViewer8Bytes, 8, 23, 8
	case maxWidth < hexViewer32Bytes:
		return 16, hexViewer16Bytes, 8, 48, 18
	default:
		return 32, hexViewer32Bytes, 8, 98, 38
	}
}

func printHexFile(w io.Writer, f *os.File, e *entry.Entry, path string, cfg *FileConfig, started time.Time) FileResult {
	highlights := cfg.Highlights

	// keep the offset a multiple of 8, and at least 32 bytes left to show
	offset := uint64(cfg.Offset &^ 7)
	offset += 32
	if offset > e.Size {
		offset = e.Size
	}
	if offset < 32 {
		offset = 32
	}
	offset -= 32

	// no point reading more than 16KiB at once
	buffer := make([]byte, 16384)
	n, err := f.ReadAt(buffer, int64(offset))
	if err != nil && err != io.EOF {
		ErrorPanel(w, e, path, fmt.Sprintf("reading file: %v", err), cfg.MinWidth, cfg.MaxWidth)
		return FileResult{IsError: true}
	}
	buffer = buffer[:n]

	bytesPerRow, totalWidth, offsetW, hexW, asciiW := hexViewerRowWidth(cfg.MaxWidth)
	colWidths := []int{offsetW, hexW, asciiW}

	horizontalLine(w, totalWidth, true, false)
	printPathHeader(w, totalWidth, path, PrettySize(e.Size), 16)
	horizontalLine(w, totalWidth, false, false)

	printRow(w, false, []cell{
		plainCell("offset", styleWhite, layout.Center),
		plainCell("hex", styleWhite, layout.Center),
		plainCell("ascii", styleWhite, layout.Center),
	}, colWidths, columnMargin)

	var truncatedBytes uint64

	for lineNo := 0; lineNo*bytesPerRow < len(buffer); lineNo++ {
		bytes := buffer[lineNo*bytesPerRow:]
		if len(bytes) > bytesPerRow {
			bytes = bytes[:bytesPerRow]
		}

		offsetCell := plainCell(fmt.Sprintf("%08x", offset), styleWhite, layout.Right)
		if offset&255 == 0 {
			offsetCell = plainCell(fmt.Sprintf("%08x", offset), styleGreen, layout.Right)
		}
		if len(highlights) > 0 {
			h := uint64(highlights[0])
			if offset <= h && h < offset+uint64(bytesPerRow) {
				offsetCell = plainCell(">>>>>>>>", styleRed, layout.Right)
			}
			for len(highlights) > 0 {
				h := uint64(highlights[0])
				if offset <= h && h < offset+uint64(bytesPerRow) {
					highlights = highlights[1:]
				} else {
					break
				}
			}
		}

		var hexSpans, asciiSpans []span
		for i, b := range bytes {
			byteStyle := styleYellow
			if b == 0 {
				byteStyle = styleGray
			}
			hexSpans = append(hexSpans, span{text: fmt.Sprintf("%02x", b), style: byteStyle})

			if ' ' <= b && b <= '~' {
				asciiSpans = append(asciiSpans, span{text: string(rune(b)), style: styleYellow})
			} else {
				asciiSpans = append(asciiSpans, span{text: ".", style: styleGray})
			}

			switch {
			case i == len(bytes)-1:
			case i&7 == 7:
				hexSpans = append(hexSpans, span{text: "  ", style: styleWhite})
				asciiSpans = append(asciiSpans, span{text: "  ", style: styleWhite})
			default:
				hexSpans = append(hexSpans, span{text: " ", style: styleWhite})
			}
		}

		printRow(w, false, []cell{
			offsetCell,
			spanCell(hexSpans, layout.Left),
			spanCell(asciiSpans, layout.Left),
		}, colWidths, columnMargin)

		offset += uint64(bytesPerRow)

		if lineNo == cfg.MaxRow {
			if e.Size > offset {
				truncatedBytes = e.Size - offset
			}
			break
		}
	}

	if truncatedBytes > 0 {
		printRow(w, false, []cell{
			plainCell(fmt.Sprintf("... (truncated %s)", strings.TrimSpace(PrettySize(truncatedBytes))), styleWhite, layout.Left),
		}, []int{totalWidth - columnMargin*2}, columnMargin)
	}

	horizontalLine(w, totalWidth, false, true)
	fmt.Fprintln(w, "took "+formatDuration(time.Since(started)))
	if cfg.Alert != "" {
		fmt.Fprintln(w, styleRed.Render(cfg.Alert))
	}

	return FileResult{Viewer: ViewerHex, Width: bytesPerRow}
}
