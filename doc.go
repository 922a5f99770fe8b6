// Package ral implements the access core of a register abstraction layer for
// memory-mapped IO.
//
// A peripheral is described by passive data: a fixed-layout register block
// whose members are register cells or arrays of cells, one [Field] descriptor
// per named bitfield, and a set of scalar reset values per instance. Such
// descriptions are usually emitted by a code generator, but can just as well
// be written by hand. The package itself only provides the operations that
// read, write, read-modify-write and reset registers through those
// descriptions.
//
// A register is selected with an ordinary Go expression that yields its cell,
// e.g. &uart.CTRL or &gpio.DATA[pin/32]. Unknown register or field names are
// therefore compile errors, array indexes are evaluated exactly once in the
// caller's scope, and an out-of-range index panics before any access to the
// hardware is made. All field arithmetic is done on compile-time constant
// masks and offsets; after inlining, an invocation reduces to the same loads,
// shifts and stores that would be written by hand.
//
// The cell primitives themselves are not part of this package. Any type whose
// pointer provides Load and Store with volatile semantics satisfies [Cell],
// e.g. the types of embedded/mmio on bare-metal targets, devmem.Reg for
// mapped device memory on hosts, or raltest.Reg in tests.
package ral
