package core

// Cell is the read-only view of one lattice cell shared by both automaton
// kinds.
type Cell interface {
	IsActive() bool
	Raw() int8
}

// PlainCell holds liveness in bit 0. Used by the elementary automaton.
type PlainCell int8

func (c PlainCell) IsActive() bool { return c&1 != 0 }
func (c PlainCell) Raw() int8      { return int8(c) }

// Packed cell layout: the low nibble counts live neighbors (0-8), bit 4 is
// the cell's own liveness.
const (
	PackedCountMask int8 = 0b0000_1111
	PackedAliveBit  int8 = 0b0001_0000
)

// PackedCell carries both liveness and the live-neighbor count so that
// neighbor totals are maintained incrementally instead of by rescanning.
type PackedCell int8

func (c PackedCell) IsActive() bool { return int8(c)&PackedAliveBit != 0 }
func (c PackedCell) Raw() int8      { return int8(c) }

// Neighbors returns the stored live-neighbor count.
func (c PackedCell) Neighbors() int { return int(int8(c) & PackedCountMask) }

// WithNeighbors returns c with its count replaced by n.
func (c PackedCell) WithNeighbors(n int) PackedCell {
	return PackedCell(int8(c)&^PackedCountMask | int8(n)&PackedCountMask)
}

// Next applies the B3/S23 transition to a single packed value. A birth seeds
// the count with 3; a death keeps the count bits.
func (c PackedCell) Next() PackedCell {
	n := c.Neighbors()
	if !c.IsActive() {
		if n == 3 {
			return PackedCell(PackedAliveBit | 3)
		}
		return c
	}
	if n < 2 || n > 3 {
		return PackedCell(int8(c) & PackedCountMask)
	}
	return c
}
