package entry

import "sort"

// SortKey selects the attribute a listing is ordered by.
type SortKey uint8

const (
	SortByName SortKey = iota
	SortBySize
	SortByTotalSize
	SortByModified
	SortByKind
	SortByExt
)

func (k SortKey) String() string {
	switch k {
	case SortBySize:
		return "size"
	case SortByTotalSize:
		return "total_size"
	case SortByModified:
		return "modified"
	case SortByKind:
		return "type"
	case SortByExt:
		return "ext"
	default:
		return "name"
	}
}

// SortEntries orders es in place by the given key. Sorting by total size
// forces recursive size computation, which may expand directories. The
// sort is stable so equal keys keep their on-disk order.
func (s *Store) SortEntries(es []*Entry, key SortKey, reverse bool) {
	var less func(a, b *Entry) bool
	switch key {
	case SortBySize:
		less = func(a, b *Entry) bool { return a.Size < b.Size }
	case SortByTotalSize:
		less = func(a, b *Entry) bool { return s.RecursiveSize(a.ID) < s.RecursiveSize(b.ID) }
	case SortByModified:
		less = func(a, b *Entry) bool { return a.ModTime.Before(b.ModTime) }
	case SortByKind:
		less = func(a, b *Entry) bool { return a.Kind < b.Kind }
	case SortByExt:
		less = func(a, b *Entry) bool { return a.Ext < b.Ext }
	default:
		less = func(a, b *Entry) bool { return a.Name < b.Name }
	}

	sort.SliceStable(es, func(i, j int) bool { return less(es[i], es[j]) })
	if reverse {
		for i, j := 0, len(es)-1; i < j; i, j = i+1, j-1 {
			es[i], es[j] = es[j], es[i]
		}
	}
}
