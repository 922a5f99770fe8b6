package ral

// Cell is implemented by pointers to register cells of width T, e.g.
// *mmio.U32, *devmem.Reg[uint32] or *raltest.Reg[uint32]. Load and Store must
// each issue exactly one volatile access to the underlying storage word.
type Cell[T Word] interface {
	Load() T
	Store(T)
}

// Read returns the register's value with a single volatile load.
func Read[T Word](r Cell[T]) T {
	return r.Load()
}

// ReadField returns a single field's value, shifted down to bit 0. One
// volatile load.
func ReadField[T Word](r Cell[T], f Field[T]) T {
	return f.Get(r.Load())
}

// Read2 returns two fields extracted from the same snapshot. One volatile
// load.
func Read2[T Word](r Cell[T], f1, f2 Field[T]) (T, T) {
	v := r.Load()
	return f1.Get(v), f2.Get(v)
}

// Read3 returns three fields extracted from the same snapshot. One volatile
// load.
func Read3[T Word](r Cell[T], f1, f2, f3 Field[T]) (T, T, T) {
	v := r.Load()
	return f1.Get(v), f2.Get(v), f3.Get(v)
}

// Read4 returns four fields extracted from the same snapshot. One volatile
// load.
func Read4[T Word](r Cell[T], f1, f2, f3, f4 Field[T]) (T, T, T, T) {
	v := r.Load()
	return f1.Get(v), f2.Get(v), f3.Get(v), f4.Get(v)
}

// ReadEq reports whether the field currently has the given value. One
// volatile load.
func ReadEq[T Word](r Cell[T], f Field[T], v T) bool {
	return f.Get(r.Load()) == v
}

// Write stores v as the whole register value. One volatile store, no load.
func Write[T Word](r Cell[T], v T) {
	r.Store(v)
}

// WriteBits composes a register value from field assignments and stores it.
// Bits outside the assigned fields' masks are zero. The register is not read;
// one volatile store. Assignments with overlapping masks are OR'd.
func WriteBits[T Word](r Cell[T], bits ...Bits[T]) {
	var v T
	for _, b := range bits {
		v |= b.Bits
	}
	r.Store(v)
}

// Modify performs a read-modify-write, changing only the assigned fields'
// bits and preserving all others. One volatile load followed by one volatile
// store; the pair is not atomic. Assignments with overlapping masks are OR'd.
func Modify[T Word](r Cell[T], bits ...Bits[T]) {
	old := r.Load()
	var mask, v T
	for _, b := range bits {
		mask |= b.Mask
		v |= b.Bits
	}
	r.Store(old&^mask | v)
}

// ModifyFunc performs a read-modify-write with a whole-register transform.
// fn is called exactly once, between one volatile load and one volatile
// store; the pair is not atomic.
func ModifyFunc[T Word](r Cell[T], fn func(T) T) {
	r.Store(fn(r.Load()))
}

// Reset stores the register's reset value, taken from the instance's reset
// value record. One volatile store, no load. For register arrays the same
// scalar reset value applies to every element.
func Reset[T Word](r Cell[T], reset T) {
	r.Store(reset)
}

// ResetFields restores the named fields to their reset bits, preserving all
// bits outside their masks. One volatile load followed by one volatile store;
// the pair is not atomic.
func ResetFields[T Word](r Cell[T], reset T, fields ...Field[T]) {
	var mask T
	for _, f := range fields {
		mask |= f.Mask
	}
	r.Store(r.Load()&^mask | reset&mask)
}
