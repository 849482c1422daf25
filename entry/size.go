package entry

// RecursiveSize returns the total size in bytes of the subtree rooted at
// id. Files are memoized at registration; a directory is summed over all
// of its children (hidden included) exactly once and the result is cached
// on the entry, so repeated calls are O(1). Synthetic entries and unknown
// ids contribute zero.
func (s *Store) RecursiveSize(id ID) uint64 {
	e, ok := s.entries[id]
	if !ok || e.IsSpecial() {
		return 0
	}
	if e.hasRecSize {
		return e.recSize
	}

	var sum uint64
	for _, c := range s.Children(id, true) {
		sum += s.RecursiveSize(c.ID)
	}
	e.recSize, e.hasRecSize = sum, true
	return sum
}
