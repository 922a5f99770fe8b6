package devmem

// Byte-granular IO over a region that only supports whole-word bus accesses.
// The bus is little-endian, matching all supported hosts (amd64, arm64,
// riscv64).

// WriteIO copies slice p to the region at byte offset off using whole-word
// MMIO stores. Note that it needs to read from the region if p's start or end
// aren't 4 byte aligned. This might lead to unexpected behaviour of
// write-only address ranges.
func WriteIO(r *Region, off int, p []byte) {
	for len(p) > 0 {
		shift := off & 0x3
		n := min(len(p), 4-shift)
		reg := RegAt[uint32](r, off&^0x3)

		data, mask := uint32(0), uint32(0)
		for i := 0; i < n; i++ {
			data |= uint32(p[i]) << ((shift + i) << 3)
			mask |= 0xff << ((shift + i) << 3)
		}
		if mask != 0xffff_ffff { // read data before writing
			data |= reg.Load() &^ mask
		}
		reg.Store(data)

		p = p[n:]
		off += n
	}
}

// ReadIO copies from the region at byte offset off to slice p using
// whole-word MMIO loads.
func ReadIO(r *Region, off int, p []byte) {
	for len(p) > 0 {
		shift := off & 0x3
		n := min(len(p), 4-shift)
		data := RegAt[uint32](r, off&^0x3).Load()

		for i := 0; i < n; i++ {
			p[i] = byte(data >> ((shift + i) << 3))
		}

		p = p[n:]
		off += n
	}
}
