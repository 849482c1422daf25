package render

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/filequery/fq/entry"
)

const (
	defaultMaxRow   = 60
	defaultMaxWidth = 96
	defaultMinWidth = 40
)

// DirConfig controls the directory view.
type DirConfig struct {
	MaxRow       int
	SortBy       entry.SortKey
	SortReverse  bool
	ShowFullPath bool
	ShowHidden   bool
	Offset       int
	MinWidth     int
	MaxWidth     int
	Columns      []Column

	// Alert is a one-shot message shown under the table, e.g. a failed
	// navigation. Cleared by ResetAlert before each command.
	Alert string
}

// FileConfig controls the file view (text and hex).
type FileConfig struct {
	MaxRow   int
	Offset   int
	MinWidth int
	MaxWidth int

	// Highlights are line numbers (text) or byte offsets (hex) to mark,
	// ascending.
	Highlights []int

	Alert string
}

// LinkConfig controls the symlink view.
type LinkConfig struct {
	MinWidth int
	MaxWidth int

	Alert string
}

// NewDirConfig returns the default directory view configuration.
func NewDirConfig() *DirConfig {
	return &DirConfig{
		MaxRow:   defaultMaxRow,
		SortBy:   entry.SortByName,
		MinWidth: defaultMinWidth,
		MaxWidth: defaultMaxWidth,
		Columns:  append([]Column(nil), DefaultColumns...),
	}
}

// NewFileConfig returns the default file view configuration.
func NewFileConfig() *FileConfig {
	return &FileConfig{
		MaxRow:   defaultMaxRow,
		MinWidth: defaultMinWidth,
		MaxWidth: defaultMaxWidth,
	}
}

// NewLinkConfig returns the default symlink view configuration.
func NewLinkConfig() *LinkConfig {
	return &LinkConfig{
		MinWidth: defaultMinWidth,
		MaxWidth: defaultMaxWidth,
	}
}

// terminalSize is swapped out in tests.
var terminalSize = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

func adjustedDimensions() (minWidth, maxWidth, maxRow int) {
	w, h, err := terminalSize()
	if err != nil || w <= 0 || h <= 0 {
		return defaultMinWidth, defaultMaxWidth, defaultMaxRow
	}
	maxWidth = w - 1
	minWidth = defaultMinWidth
	if minWidth > maxWidth {
		minWidth = maxWidth
	}
	maxRow = h - 8
	if maxRow < 8 {
		maxRow = 8
	}
	return minWidth, maxWidth, maxRow
}

// AdjustToTerminal clamps the view geometry to the live terminal.
func (c *DirConfig) AdjustToTerminal() {
	c.MinWidth, c.MaxWidth, c.MaxRow = adjustedDimensions()
}

// AdjustToTerminal clamps the view geometry to the live terminal.
func (c *FileConfig) AdjustToTerminal() {
	c.MinWidth, c.MaxWidth, c.MaxRow = adjustedDimensions()
}

// AdjustToTerminal clamps the view geometry to the live terminal.
func (c *LinkConfig) AdjustToTerminal() {
	c.MinWidth, c.MaxWidth, _ = adjustedDimensions()
}

func (c *DirConfig) ResetAlert()  { c.Alert = "" }
func (c *FileConfig) ResetAlert() { c.Alert = "" }
func (c *LinkConfig) ResetAlert() { c.Alert = "" }

// SQLString renders the cosmetic query-style summary line printed under a
// listing. It is decoration, not a query engine.
func (c *DirConfig) SQLString(path string) string {
	var b strings.Builder
	cols := make([]string, 0, len(c.Columns))
	for _, col := range c.Columns {
		cols = append(cols, strings.ReplaceAll(col.Header(), " ", "_"))
	}
	fmt.Fprintf(&b, "SELECT %s FROM '%s'", strings.Join(cols, ", "), path)
	if !c.ShowHidden {
		b.WriteString(" WHERE NOT hidden")
	}
	fmt.Fprintf(&b, " ORDER BY %s", c.SortBy)
	if c.SortReverse {
		b.WriteString(" DESC")
	}
	fmt.Fprintf(&b, " LIMIT %d", c.MaxRow)
	if c.Offset > 0 {
		fmt.Fprintf(&b, " OFFSET %d", c.Offset)
	}
	b.WriteString(";")
	return b.String()
}
