package entry

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"
)

// Store is the single owner of all discovered entries and their resolved
// paths. Every other component reaches entries only through it. It is not
// safe for concurrent use; the explorer runs one logical operation at a
// time and all mutation funnels through the owning goroutine.
type Store struct {
	entries map[ID]*Entry
	paths   map[ID]string

	// readDir is swapped out in tests to count OS directory reads.
	readDir func(path string) ([]os.DirEntry, error)
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		entries: make(map[ID]*Entry, 65536),
		paths:   make(map[ID]string, 65536),
		readDir: os.ReadDir,
	}
}

// Get returns the entry for id. A false result signals an unknown id and
// must be handled as a recoverable display error, never a crash.
func (s *Store) Get(id ID) (*Entry, bool) {
	e, ok := s.entries[id]
	return e, ok
}

// Len returns the number of registered entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// register inserts e and returns its id. Explicit ids that are already
// registered keep the existing entry; this is what deduplicates the
// deterministic truncation-marker ids and the lazily registered root.
func (s *Store) register(e *Entry) ID {
	if _, ok := s.entries[e.ID]; ok {
		return e.ID
	}
	s.entries[e.ID] = e
	return e.ID
}

// FromPath registers the filesystem object at path under the given id and
// returns the id actually registered. Metadata failures and non-UTF8
// names degrade to synthetic error entries instead of propagating.
func (s *Store) FromPath(path string, id ID) ID {
	if _, ok := s.entries[id]; ok {
		return id
	}

	name := filepath.Base(path)
	if name == string(filepath.Separator) {
		if id != Root {
			return s.FromErrorMessage(fmt.Sprintf("no file name in %q", path))
		}
		name = ""
	}
	if !utf8.ValidString(name) {
		return s.FromErrorMessage(fmt.Sprintf("non-UTF8 file name in %q", path))
	}

	info, err := os.Lstat(path)
	if err != nil {
		return s.FromIOError(err)
	}

	e := &Entry{
		ID:           id,
		Name:         name,
		Kind:         kindOf(info.Mode()),
		ModTime:      info.ModTime(),
		Size:         uint64(info.Size()),
		Ext:          extOf(name),
		IsExecutable: isExecutable(info.Mode()),
	}
	if e.Kind == KindFile {
		e.recSize, e.hasRecSize = e.Size, true
	}

	s.register(e)
	s.paths[id] = path
	return id
}

// fromDirEntry registers one child discovered during directory expansion.
// The child's path is not cached here; it is reconstructed lazily from the
// parent chain on first use.
func (s *Store) fromDirEntry(de os.DirEntry, parent ID) ID {
	info, err := de.Info()
	if err != nil {
		return s.FromIOError(err)
	}

	name := de.Name()
	if !utf8.ValidString(name) {
		return s.FromErrorMessage("non-UTF8 file name")
	}

	e := &Entry{
		ID:           NewNormal(),
		Name:         name,
		Kind:         kindOf(info.Mode()),
		Parent:       parent,
		HasParent:    true,
		ModTime:      info.ModTime(),
		Size:         uint64(info.Size()),
		Ext:          extOf(name),
		IsExecutable: isExecutable(info.Mode()),
	}
	if e.Kind == KindFile {
		e.recSize, e.hasRecSize = e.Size, true
	}

	return s.register(e)
}

// FromIOError registers a synthetic error row wrapping an OS error.
func (s *Store) FromIOError(err error) ID {
	return s.registerSpecial(NewError(), fmt.Sprintf("<<Error: %v>>", err))
}

// FromErrorMessage registers a synthetic error row with a free-text cause.
func (s *Store) FromErrorMessage(msg string) ID {
	if msg == "" {
		return s.registerSpecial(NewError(), "<<Error>>")
	}
	return s.registerSpecial(NewError(), fmt.Sprintf("<<Error: %s>>", msg))
}

// Message registers a synthetic free-text row, e.g. "Empty Directory".
func (s *Store) Message(text string) ID {
	return s.registerSpecial(NewMessage(), text)
}

// RegisterTruncatedMarker registers (or reuses) the synthetic row that
// reports n elided rows. Repeated calls with the same n return the same id.
func (s *Store) RegisterTruncatedMarker(n int) ID {
	plural := "s"
	if n < 2 {
		plural = ""
	}
	return s.registerSpecial(TruncatedMarker(n), fmt.Sprintf("... (truncated %d row%s)", n, plural))
}

func (s *Store) registerSpecial(id ID, name string) ID {
	return s.register(&Entry{
		ID:      id,
		Name:    name,
		Kind:    KindFile,
		ModTime: time.Now(),
	})
}

func kindOf(mode os.FileMode) Kind {
	switch {
	case mode&os.ModeSymlink != 0:
		return KindSymlink
	case mode.IsDir():
		return KindDir
	default:
		return KindFile
	}
}

func isExecutable(mode os.FileMode) bool {
	return mode.IsRegular() && mode.Perm()&0111 != 0
}

func extOf(name string) string {
	ext := filepath.Ext(name)
	if len(ext) < 2 {
		return ""
	}
	return ext[1:]
}
