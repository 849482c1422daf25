package entry

import (
	"encoding/binary"
	"fmt"

	"github.com/google/uuid"
)

// ID identifies one cached entry. It is a 128-bit value; the top 4 bits
// select a subspace so synthetic rows (errors, messages, truncation
// markers) can share the id pipeline with real filesystem entries.
// It has nothing to do with inode numbers.
type ID struct {
	hi uint64
	lo uint64
}

const (
	tagNormal    = 0x0
	tagError     = 0x1
	tagTruncated = 0x2
	tagMessage   = 0x3

	tagShift = 60
	tagMask  = uint64(0xf) << tagShift
)

var (
	// Base is the entry the process started in.
	Base = ID{}

	// Root is the filesystem root sentinel.
	Root = ID{lo: 1}
)

func random128() (uint64, uint64) {
	u := uuid.New()
	return binary.BigEndian.Uint64(u[:8]), binary.BigEndian.Uint64(u[8:])
}

// NewNormal returns a fresh random id for a real filesystem entry.
func NewNormal() ID {
	hi, lo := random128()
	return ID{hi: hi &^ tagMask, lo: lo}
}

// NewError returns a fresh random id in the error subspace.
func NewError() ID {
	hi, lo := random128()
	return ID{hi: hi&^tagMask | tagError<<tagShift, lo: lo}
}

// NewMessage returns a fresh random id in the message subspace.
func NewMessage() ID {
	hi, lo := random128()
	return ID{hi: hi&^tagMask | tagMessage<<tagShift, lo: lo}
}

// TruncatedMarker returns the id of the synthetic row reporting n elided
// rows. The id is a pure function of n, so the store can reuse one Entry
// per distinct count instead of allocating duplicates.
func TruncatedMarker(n int) ID {
	return ID{hi: tagTruncated << tagShift, lo: uint64(n)}
}

// Tag returns the subspace tag of the id.
func (id ID) Tag() uint8 {
	return uint8(id.hi >> tagShift)
}

// IsSpecial reports whether the id belongs to a synthetic subspace.
// Special entries never have children and are excluded from path and
// size resolution.
func (id ID) IsSpecial() bool {
	return id.Tag() != tagNormal
}

// DebugString renders the id for error panels.
func (id ID) DebugString() string {
	payloadHi := id.hi &^ tagMask
	switch id.Tag() {
	case tagError:
		return fmt.Sprintf("ID::error(%016x%016x)", payloadHi, id.lo)
	case tagTruncated:
		return fmt.Sprintf("ID::truncated_rows(%d)", id.lo)
	case tagMessage:
		return fmt.Sprintf("ID::message(%016x%016x)", payloadHi, id.lo)
	default:
		return fmt.Sprintf("ID::normal(%016x%016x)", id.hi, id.lo)
	}
}
