// Package bus defines the memory/IO fabric interface the CPU core borrows
// for every read and write it issues, plus a flat RAM implementation
// suitable for tests and hosts that don't need bank-switching.
package bus

import (
	"math/rand"
)

// Bus is the capability the CPU core requires of its memory/IO fabric.
// Both methods are synchronous and total: no failure mode exists at this
// layer, address decoding/mirroring/open-bus behavior is the bus's concern.
type Bus interface {
	// Read returns the byte stored at addr.
	Read(addr uint16) uint8
	// Write stores val at addr. Writes to read-only regions are the bus
	// implementation's concern (typically a silent no-op).
	Write(addr uint16, val uint8)
}

// RAM is a flat 64KB RAM implementing Bus. It is the default bus used by
// this module's own tests and is a reasonable starting point for hosts
// that map the whole address space to a single block of RAM.
type RAM struct {
	mem [65536]uint8
}

// NewRAM returns a RAM bank with all 64KB zeroed.
func NewRAM() *RAM {
	return &RAM{}
}

// Read implements Bus.
func (r *RAM) Read(addr uint16) uint8 {
	return r.mem[addr]
}

// Write implements Bus.
func (r *RAM) Write(addr uint16, val uint8) {
	r.mem[addr] = val
}

// PowerOn randomizes the contents of RAM, mirroring real hardware where
// RAM holds whatever pattern the capacitors settled on at power-up.
// Vectors and any program image must be (re)written after calling this.
func (r *RAM) PowerOn() {
	for i := range r.mem {
		r.mem[i] = uint8(rand.Intn(256))
	}
}

// LoadVector writes a little-endian 16 bit vector (reset/NMI/IRQ) at addr.
func (r *RAM) LoadVector(addr uint16, target uint16) {
	r.mem[addr] = uint8(target & 0xFF)
	r.mem[addr+1] = uint8(target >> 8)
}

// LoadBytes copies data into RAM starting at addr.
func (r *RAM) LoadBytes(addr uint16, data []uint8) {
	copy(r.mem[int(addr):], data)
}
