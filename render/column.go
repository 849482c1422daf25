package render

import (
	"github.com/filequery/fq/entry"
	"github.com/filequery/fq/layout"
)

// Column selects one attribute column of the directory table.
type Column uint8

const (
	ColIndex Column = iota
	ColName
	ColKind
	ColModified
	ColSize
	ColTotalSize
	ColExt
)

// DefaultColumns is the column set of a plain listing.
var DefaultColumns = []Column{ColIndex, ColName, ColKind, ColModified, ColSize}

func (c Column) Header() string {
	switch c {
	case ColIndex:
		return "index"
	case ColName:
		return "name"
	case ColKind:
		return "type"
	case ColModified:
		return "modified"
	case ColSize:
		return "size"
	case ColTotalSize:
		return "total size"
	case ColExt:
		return "ext"
	default:
		return "?"
	}
}

func (c Column) Alignment() layout.Alignment {
	switch c {
	case ColIndex, ColModified, ColSize, ColTotalSize:
		return layout.Right
	default:
		return layout.Left
	}
}

// SortKey maps a column to the sort key it orders by.
func (c Column) SortKey() entry.SortKey {
	switch c {
	case ColSize:
		return entry.SortBySize
	case ColTotalSize:
		return entry.SortByTotalSize
	case ColModified:
		return entry.SortByModified
	case ColKind:
		return entry.SortByKind
	case ColExt:
		return entry.SortByExt
	default:
		return entry.SortByName
	}
}
