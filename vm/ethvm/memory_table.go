package ethvm

import (
	"github.com/holiman/uint256"
)

// MemoryRange is the byte region [Offset, Offset+Size) addressed by an
// instruction. Both bounds are full words, so the end is computed with one
// extra carry bit and never wraps.
type MemoryRange struct {
	Offset uint256.Int
	Size   uint256.Int
}

func NewMemoryRange(offset, size *uint256.Int) MemoryRange {
	return MemoryRange{Offset: *offset, Size: *size}
}

// Empty reports whether the range covers no bytes. An empty range never
// requires memory, wherever it starts.
func (r MemoryRange) Empty() bool {
	return r.Size.IsZero()
}

// End returns Offset+Size as a 257 bit value: the low 256 bits and the carry.
func (r MemoryRange) End() (end uint256.Int, carry bool) {
	_, carry = end.AddOverflow(&r.Offset, &r.Size)
	return end, carry
}

// Uint64End returns the end of the range if it fits a uint64. Empty ranges end
// at zero.
func (r MemoryRange) Uint64End() (uint64, bool) {
	if r.Empty() {
		return 0, true
	}
	end, carry := r.End()
	if carry || !end.IsUint64() {
		return 0, false
	}
	return end.Uint64(), true
}

// toWordSize returns the ceiled word size required for memory expansion.
func toWordSize(size uint64) uint64 {
	if size > maxUint64-31 {
		return maxUint64/32 + 1
	}
	return (size + 31) / 32
}

const maxUint64 = ^uint64(0)
