package entry

// InitChildren performs the one-time on-disk read that fills a directory's
// children. It is safe (and cheap) to call any number of times; only the
// first call on a directory does work. Read failures never abort: a child
// whose metadata cannot be read becomes a synthetic error row, and a
// directory that cannot be read at all gets a single synthetic error row
// as its only child.
func (s *Store) InitChildren(id ID) {
	e, ok := s.entries[id]
	if !ok || !e.IsDir() || e.expanded {
		return
	}

	path, err := s.Path(id)
	if err != nil {
		e.children = []ID{s.FromErrorMessage(err.Error())}
		e.expanded = true
		return
	}

	dirEntries, err := s.readDir(path)
	if err != nil {
		e.children = []ID{s.FromIOError(err)}
		e.expanded = true
		return
	}

	children := make([]ID, 0, len(dirEntries))
	for _, de := range dirEntries {
		children = append(children, s.fromDirEntry(de, id))
	}
	e.children = children
	e.expanded = true
}

// Children returns the directory's children, expanding it first if
// needed. Dotfiles are filtered out unless showHidden is set; synthetic
// rows are never treated as hidden. Non-directories return nil.
func (s *Store) Children(id ID, showHidden bool) []*Entry {
	e, ok := s.entries[id]
	if !ok || !e.IsDir() {
		return nil
	}
	s.InitChildren(id)

	out := make([]*Entry, 0, len(e.children))
	for _, cid := range e.children {
		c, ok := s.entries[cid]
		if !ok {
			continue
		}
		if !showHidden && c.IsHidden() {
			continue
		}
		out = append(out, c)
	}
	return out
}

// ChildrenCount returns the number of children, expanding the directory
// if needed. With includeHidden it is O(1) after expansion; otherwise it
// walks the children to apply the dotfile filter.
func (s *Store) ChildrenCount(id ID, includeHidden bool) int {
	e, ok := s.entries[id]
	if !ok || !e.IsDir() {
		return 0
	}
	s.InitChildren(id)

	if includeHidden {
		return len(e.children)
	}
	n := 0
	for _, cid := range e.children {
		if c, ok := s.entries[cid]; ok && !c.IsHidden() {
			n++
		}
	}
	return n
}
