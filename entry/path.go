package entry

import "path/filepath"

// Path returns the absolute path of id, reconstructing it from the parent
// chain on first use and memoizing the result. It returns
// ErrEntryNotFound for unregistered ids and ErrSpecialEntry for synthetic
// rows; it never panics on unknown input.
func (s *Store) Path(id ID) (string, error) {
	if p, ok := s.paths[id]; ok {
		return p, nil
	}

	e, ok := s.entries[id]
	if !ok {
		return "", ErrEntryNotFound
	}
	if e.IsSpecial() {
		return "", ErrSpecialEntry
	}

	p, err := s.resolvePath(e)
	if err != nil {
		return "", err
	}
	s.paths[id] = p
	return p, nil
}

func (s *Store) resolvePath(e *Entry) (string, error) {
	if e.HasParent {
		parentPath, err := s.Path(e.Parent)
		if err != nil {
			return "", err
		}
		return filepath.Join(parentPath, e.Name), nil
	}
	if e.ID == Root {
		return string(filepath.Separator), nil
	}
	return "", ErrNoParent
}

// ParentID returns the id of the entry's parent directory.
//
// When the parent link is unset and the entry is not the root, the entry
// was created directly from a path (first discovery, e.g. the process
// start directory). The OS-level parent of the entry's own path is then
// registered lazily (under the root sentinel when it is the filesystem
// root, otherwise under a fresh id) and the entry's parent link is
// back-patched, so this slow branch runs at most once per id.
func (s *Store) ParentID(id ID) (ID, error) {
	e, ok := s.entries[id]
	if !ok {
		return ID{}, ErrEntryNotFound
	}
	if e.IsSpecial() {
		return ID{}, ErrSpecialEntry
	}
	if e.HasParent {
		return e.Parent, nil
	}

	path, err := s.Path(id)
	if err != nil {
		return ID{}, err
	}
	parentPath := filepath.Dir(path)
	if parentPath == path {
		// Already at the filesystem root. Callers guarantee well-formed
		// real paths, so treat this as a harmless self-parent.
		return id, nil
	}

	pid := NewNormal()
	if parentPath == string(filepath.Separator) {
		pid = Root
	}
	pid = s.FromPath(parentPath, pid)

	e.Parent, e.HasParent = pid, true
	return pid, nil
}
