package cpu

import "fmt"

// IllegalOpcodeError is returned by Step when the fetched opcode is
// marked illegal in the decode table and the CPU's IllegalPolicy is
// PolicyPanic.
type IllegalOpcodeError struct {
	Opcode  uint8
	PC      uint16
	Variant Variant
}

// Error implements the error interface.
func (e IllegalOpcodeError) Error() string {
	return fmt.Sprintf("illegal opcode 0x%.2X at PC 0x%.4X on %s", e.Opcode, e.PC, e.Variant)
}

// HaltError is returned by every Step call once a KIL/JAM opcode has
// executed, until Reset is called. Cycles() stops advancing while halted.
type HaltError struct {
	Opcode uint8
	PC     uint16
}

// Error implements the error interface.
func (e HaltError) Error() string {
	return fmt.Sprintf("HALT(0x%.2X) executed at PC 0x%.4X", e.Opcode, e.PC)
}

// InvalidStateError indicates an internal precondition the core assumes
// was violated (e.g. an out of range enum). It should never surface from
// a correctly constructed Chip.
type InvalidStateError struct {
	Reason string
}

// Error implements the error interface.
func (e InvalidStateError) Error() string {
	return fmt.Sprintf("invalid CPU state: %s", e.Reason)
}
