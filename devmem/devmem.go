// Package devmem maps device memory into the process and exposes it as
// register cells.
//
// It provides the cell primitives for using the ral package from a host
// process, e.g. against a UIO device, a PCI resource file or /dev/mem. The
// kernel maps these files uncached, so plain loads and stores through the
// mapping reach the device.
package devmem

import (
	"fmt"
	"reflect"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/clktmr/ral"
)

// Reg is a register cell of width T inside a mapped [Region]. Its pointer
// satisfies ral.Cell. Regs are never created directly, use [RegAt] or place a
// register block with [BlockAt].
type Reg[T ral.Word] struct {
	r T
}

func (r *Reg[T]) Load() T { return r.r }

func (r *Reg[T]) Store(v T) { r.r = v }

// Addr returns the register's address in the process's address space.
func (r *Reg[T]) Addr() uintptr { return uintptr(unsafe.Pointer(&r.r)) }

// Region is a window of device memory mapped into the process.
type Region struct {
	mem []byte
}

// Map maps size bytes of the device file at path, starting at byte offset
// off. Offset and size must be multiples of the page size.
func Map(path string, off int64, size int) (*Region, error) {
	fd, err := unix.Open(path, unix.O_RDWR|unix.O_SYNC, 0)
	if err != nil {
		return nil, fmt.Errorf("devmem: open %s: %w", path, err)
	}
	defer unix.Close(fd)

	mem, err := unix.Mmap(fd, off, size,
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("devmem: mmap %s: %w", path, err)
	}
	return &Region{mem: mem}, nil
}

// MapAnon maps size bytes of anonymous memory. It behaves like a zeroed
// register block and is intended for tests and examples.
func MapAnon(size int) (*Region, error) {
	mem, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED|unix.MAP_ANON)
	if err != nil {
		return nil, fmt.Errorf("devmem: mmap anon: %w", err)
	}
	return &Region{mem: mem}, nil
}

// Close unmaps the region. All cells obtained from it become invalid.
func (r *Region) Close() error {
	if r.mem == nil {
		return nil
	}
	mem := r.mem
	r.mem = nil
	return unix.Munmap(mem)
}

// Size returns the region's size in bytes.
func (r *Region) Size() int { return len(r.mem) }

// RegAt returns the register cell of width T at byte offset off in the
// region. It panics if off isn't naturally aligned or outside the region.
func RegAt[T ral.Word](r *Region, off int) *Reg[T] {
	size := int(reflect.TypeOf((*T)(nil)).Elem().Size())
	if off%size != 0 {
		panic("devmem: unaligned register offset")
	}
	if off < 0 || off+size > len(r.mem) {
		panic("devmem: register outside region")
	}
	return (*Reg[T])(unsafe.Pointer(&r.mem[off]))
}

// BlockAt places a register block of type B at byte offset off in the region.
// B must be a fixed-layout struct whose members are Reg or arrays of Reg.
func BlockAt[B any](r *Region, off int) *B {
	typ := reflect.TypeOf((*B)(nil)).Elem()
	size, align := int(typ.Size()), typ.Align()
	if off%align != 0 {
		panic("devmem: unaligned register block offset")
	}
	if off < 0 || off+size > len(r.mem) {
		panic("devmem: register block outside region")
	}
	return (*B)(unsafe.Pointer(&r.mem[off]))
}
