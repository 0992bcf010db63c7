// Package trace formats a single CPU instruction and its register state
// for logging, matching the one-line-per-instruction convention used by
// reference 6502 trace logs. It looks only one instruction ahead of PC
// and never follows jumps.
package trace

import (
	"fmt"

	"github.com/voidkernel/m6502/bus"
	"github.com/voidkernel/m6502/cpu"
)

// State formats the visible register file in the layout nestest-style
// trace logs expect.
func State(c *cpu.Chip) string {
	return c.StateSnapshot()
}

// Decode disassembles the single instruction at pc, returning a
// formatted "PC *mnemonic operand" line (the '*' marks an undocumented
// opcode and is a space otherwise) and the number of bytes (1-3)
// the instruction occupies. It reads up to two bytes past pc so the
// caller must ensure that range is addressable; it does not mutate r or
// follow control flow.
func Decode(pc uint16, r bus.Bus) (string, int) {
	opcode := r.Read(pc)
	mnemonic, mode, illegal := cpu.Describe(opcode)
	operandLen := cpu.OperandLength(mode)

	var operand string
	switch operandLen {
	case 0:
		operand = ""
	case 1:
		b := r.Read(pc + 1)
		operand = formatOneByteOperand(mode, pc, b)
	case 2:
		lo := r.Read(pc + 1)
		hi := r.Read(pc + 2)
		operand = formatTwoByteOperand(mode, lo, hi)
	}

	marker := " "
	if illegal {
		marker = "*"
	}
	line := fmt.Sprintf("%04X  %s%s", pc, marker, mnemonic)
	if operand != "" {
		line += " " + operand
	}
	return line, operandLen + 1
}

func formatOneByteOperand(mode cpu.AddressMode, pc uint16, b uint8) string {
	switch mode {
	case cpu.AmImmediate:
		return fmt.Sprintf("#$%02X", b)
	case cpu.AmZeroPage:
		return fmt.Sprintf("$%02X", b)
	case cpu.AmZeroPageX:
		return fmt.Sprintf("$%02X,X", b)
	case cpu.AmZeroPageY:
		return fmt.Sprintf("$%02X,Y", b)
	case cpu.AmIndexedIndirect:
		return fmt.Sprintf("($%02X,X)", b)
	case cpu.AmIndirectIndexed:
		return fmt.Sprintf("($%02X),Y", b)
	case cpu.AmRelative:
		target := uint16(int32(pc) + 2 + int32(int8(b)))
		return fmt.Sprintf("$%02X ($%04X)", b, target)
	default:
		return fmt.Sprintf("$%02X", b)
	}
}

func formatTwoByteOperand(mode cpu.AddressMode, lo, hi uint8) string {
	addr := uint16(hi)<<8 | uint16(lo)
	switch mode {
	case cpu.AmAbsoluteX:
		return fmt.Sprintf("$%04X,X", addr)
	case cpu.AmAbsoluteY:
		return fmt.Sprintf("$%04X,Y", addr)
	case cpu.AmIndirect:
		return fmt.Sprintf("($%04X)", addr)
	default:
		return fmt.Sprintf("$%04X", addr)
	}
}
