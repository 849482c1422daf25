package entry

import (
	"strings"
	"time"
)

// Kind is the filesystem type of an entry. Synthetic status is carried by
// the id's subspace tag, never by a Kind value.
type Kind uint8

const (
	KindFile Kind = iota
	KindDir
	KindSymlink
)

func (k Kind) String() string {
	switch k {
	case KindDir:
		return "dir"
	case KindSymlink:
		return "link"
	default:
		return "file"
	}
}

// Entry is one cached filesystem object or one synthetic row. Entries are
// created only through Store registration and live for the process's
// duration; the cache is strictly additive.
type Entry struct {
	ID   ID
	Name string // last path component, not a full path
	Kind Kind

	// Parent is a weak back-reference, valid only when HasParent is set.
	// An unset parent means "compute from the entry's own path" or that
	// this is the root.
	Parent    ID
	HasParent bool

	ModTime      time.Time
	Size         uint64 // direct size; 0 for directories until computed
	Ext          string // derived once from Name, "" when absent
	IsExecutable bool

	// recursive size memo: set exactly once, never invalidated
	recSize    uint64
	hasRecSize bool

	// children ids; expanded distinguishes "not yet read" from "empty"
	children []ID
	expanded bool
}

// IsSpecial reports whether this is a synthetic row (error, message,
// truncation marker).
func (e *Entry) IsSpecial() bool {
	return e.ID.IsSpecial()
}

// IsDir reports whether the entry is a real directory.
func (e *Entry) IsDir() bool {
	return !e.IsSpecial() && e.Kind == KindDir
}

// IsFile reports whether the entry is a real regular file.
func (e *Entry) IsFile() bool {
	return !e.IsSpecial() && e.Kind == KindFile
}

// IsSymlink reports whether the entry is a real symlink.
func (e *Entry) IsSymlink() bool {
	return !e.IsSpecial() && e.Kind == KindSymlink
}

// IsHidden reports whether the entry is a dotfile. Synthetic entries are
// never hidden.
func (e *Entry) IsHidden() bool {
	return !e.IsSpecial() && strings.HasPrefix(e.Name, ".")
}

// Expanded reports whether the entry's children have been read from disk.
func (e *Entry) Expanded() bool {
	return e.expanded
}
