// Package raltest provides fake register cells for testing register access
// code on the host, without hardware.
package raltest

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Reg is a fake register cell that counts its accesses. Its pointer satisfies
// ral.Cell.
//
// The zero value is a register holding zero, like a zeroed register block.
type Reg[T constraints.Unsigned] struct {
	v      T
	Loads  int
	Stores int
}

func (r *Reg[T]) Load() T {
	r.Loads++
	return r.v
}

func (r *Reg[T]) Store(v T) {
	r.Stores++
	r.v = v
}

// Raw returns the stored value without counting a load.
func (r *Reg[T]) Raw() T { return r.v }

// SetRaw sets the stored value without counting a store.
func (r *Reg[T]) SetRaw(v T) { r.v = v }

// ResetCounts zeroes the access counters.
func (r *Reg[T]) ResetCounts() { r.Loads, r.Stores = 0, 0 }

// Trace records the order of accesses across a set of [TraceReg] cells.
type Trace struct {
	ops []string
}

// Ops returns the recorded accesses, oldest first, each formatted as
// "load NAME 0xVAL" or "store NAME 0xVAL".
func (t *Trace) Ops() []string { return t.ops }

func (t *Trace) record(kind, name string, v any) {
	t.ops = append(t.ops, fmt.Sprintf("%s %s %#x", kind, name, v))
}

// TraceReg is a fake register cell that appends every access to a shared
// [Trace]. Its pointer satisfies ral.Cell.
type TraceReg[T constraints.Unsigned] struct {
	Reg[T]

	Name  string
	Trace *Trace
}

func (r *TraceReg[T]) Load() T {
	v := r.Reg.Load()
	r.Trace.record("load", r.Name, v)
	return v
}

func (r *TraceReg[T]) Store(v T) {
	r.Reg.Store(v)
	r.Trace.record("store", r.Name, v)
}
