package render

import (
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/taigrr/colorhash"

	"github.com/filequery/fq/entry"
)

var (
	colorWhite  = lipgloss.Color("252")
	colorGray   = lipgloss.Color("245")
	colorGreen  = lipgloss.Color("114")
	colorYellow = lipgloss.Color("221")
	colorRed    = lipgloss.Color("203")

	// alternating row background
	colorRowBg = lipgloss.Color("236")

	styleWhite  = lipgloss.NewStyle().Foreground(colorWhite)
	styleGray   = lipgloss.NewStyle().Foreground(colorGray)
	styleGreen  = lipgloss.NewStyle().Foreground(colorGreen)
	styleYellow = lipgloss.NewStyle().Foreground(colorYellow)
	styleRed    = lipgloss.NewStyle().Foreground(colorRed)

	styleDirName  = lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Bold(true)
	styleLinkName = lipgloss.NewStyle().Foreground(colorYellow)
	styleExec     = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	styleBorder   = lipgloss.NewStyle().Foreground(colorGray)
)

// extStyle returns a deterministic color for a file extension. The hash
// keeps every .go the same shade across listings without a hand-kept
// extension table.
func extStyle(ext string) lipgloss.Style {
	if ext == "" {
		return styleWhite
	}
	h := int(colorhash.HashString(ext))
	if h < 0 {
		h = -h
	}
	// stay inside the 6x6x6 color cube, skipping the darkest slice
	c := 52 + h%(232-52)
	return lipgloss.NewStyle().Foreground(lipgloss.Color(strconv.Itoa(c)))
}

func colorizeName(e *entry.Entry) lipgloss.Style {
	switch {
	case e.IsDir():
		return styleDirName
	case e.IsSymlink():
		return styleLinkName
	case e.IsExecutable:
		return styleExec
	default:
		return extStyle(e.Ext)
	}
}

func colorizeKind(k entry.Kind) lipgloss.Style {
	switch k {
	case entry.KindDir:
		return styleGreen
	case entry.KindSymlink:
		return styleYellow
	default:
		return styleWhite
	}
}

func colorizeSize(size uint64) lipgloss.Style {
	switch {
	case size < 1<<10:
		return styleGreen
	case size < 32<<20:
		return styleWhite
	case size < 1<<30:
		return styleYellow
	default:
		return styleRed
	}
}

func colorizeTime(now time.Time, t time.Time) lipgloss.Style {
	secs := int64(now.Sub(t) / time.Second)
	switch {
	case secs < 10:
		return styleGreen
	case secs < 3*7*24*60*60:
		return styleWhite
	case secs < 99*24*60*60:
		return styleYellow
	default:
		return styleRed
	}
}
