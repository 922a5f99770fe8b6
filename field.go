package ral

import (
	"math/bits"

	"github.com/clktmr/ral/debug"
)

// Word is the set of storage widths a register cell can have.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Field describes a contiguous run of bits inside a register of width T.
//
// Mask has exactly the field's bits set and already incorporates Offset, i.e.
// a field value v occupies the bits (v<<Offset)&Mask. Peripheral descriptions
// declare one Field per register field:
//
//	var CTRL_MODE = ral.Field[uint32]{Mask: 0x3 << 4, Offset: 4}
type Field[T Word] struct {
	Mask   T
	Offset uint
}

// Get extracts the field from a register snapshot, shifted down to bit 0.
func (f Field[T]) Get(v T) T {
	return (v & f.Mask) >> f.Offset
}

// Is reports whether the field in snapshot v has the given value.
func (f Field[T]) Is(v T, val T) bool {
	return f.Get(v) == val
}

// Value positions v in the field, yielding an assignment for [WriteBits] and
// [Modify]. Bits of v wider than the field are silently truncated by the
// mask.
func (f Field[T]) Value(v T) Bits[T] {
	if debug.Enabled {
		debug.Assert(f.contiguous(), "ral: field mask not contiguous")
	}
	return Bits[T]{Mask: f.Mask, Bits: (v << f.Offset) & f.Mask}
}

// Width returns the field's size in bits.
func (f Field[T]) Width() int {
	if debug.Enabled {
		debug.Assert(f.contiguous(), "ral: field mask not contiguous")
	}
	return bits.OnesCount64(uint64(f.Mask) >> f.Offset)
}

func (f Field[T]) contiguous() bool {
	m := uint64(f.Mask) >> f.Offset
	return m != 0 && m&(m+1) == 0
}

// Bits is a single field assignment, pre-shifted and pre-masked. Create with
// [Field.Value].
type Bits[T Word] struct {
	Mask T
	Bits T
}
