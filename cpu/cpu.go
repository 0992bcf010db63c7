// Package cpu implements a cycle-approximate software core for the MOS
// 6502 family: NMOS 6502, its Ricoh 2A03/2A07 NES derivative (no BCD),
// and the CMOS 65C02 (ex-illegal opcodes become documented NOPs, ROR
// rotates correctly on every revision modeled here).
//
// The core owns registers, flags, the decode table and cycle counting.
// It knows nothing about what memory actually backs an address; callers
// supply a Bus implementation (see package bus) wired to RAM, ROM,
// mapped peripherals, or a test fixture.
package cpu

import (
	"fmt"

	"github.com/voidkernel/m6502/bus"
	"github.com/voidkernel/m6502/irq"
)

// Interrupt vector addresses, fixed by the hardware regardless of
// variant.
const (
	nmiVector   = uint16(0xFFFA)
	resetVector = uint16(0xFFFC)
	irqVector   = uint16(0xFFFE)
)

// ChipDef configures a Chip at construction time.
type ChipDef struct {
	// Bus is the memory/peripheral fabric the core reads and writes.
	// Required.
	Bus bus.Bus

	// Variant selects NMOS, NES (Ricoh, no BCD) or CMOS semantics.
	Variant Variant

	// IllegalPolicy selects what happens when the decode table marks an
	// opcode as undocumented: PolicyExecute runs the commonly cited
	// behavior, PolicyPanic returns an IllegalOpcodeError instead.
	// There is no default: the zero value is the unimplemented sentinel
	// and New rejects it, so callers must set one explicitly.
	IllegalPolicy IllegalPolicy

	// IRQSource and NMISource are optional edge/level sources the Chip
	// will poll once per Step via their Raised method, in addition to
	// whatever SetIRQ/TriggerNMI calls the caller makes directly. Either
	// may be left nil.
	IRQSource irq.Sender
	NMISource irq.Sender
}

// Chip is one MOS 6502 family core. Zero value is not usable; construct
// with New.
type Chip struct {
	A, X, Y uint8
	SP      uint8
	PC      uint16
	P       uint8

	bus           bus.Bus
	variant       Variant
	illegalPolicy IllegalPolicy
	irqSource     irq.Sender
	nmiSource     irq.Sender

	cycles       uint64
	irqLine      bool
	nmiPending   bool
	halted       bool
	haltOpcode   uint8
	haltPC       uint16
	pendingTicks uint8
}

// New constructs a Chip from def and performs the hardware reset
// sequence (equivalent to calling Reset immediately).
func New(def ChipDef) (*Chip, error) {
	if def.Bus == nil {
		return nil, InvalidStateError{Reason: "ChipDef.Bus is nil"}
	}
	if !def.Variant.valid() {
		return nil, InvalidStateError{Reason: fmt.Sprintf("invalid variant %d", def.Variant)}
	}
	if !def.IllegalPolicy.valid() {
		return nil, InvalidStateError{Reason: fmt.Sprintf("invalid illegal opcode policy %d", def.IllegalPolicy)}
	}
	c := &Chip{
		bus:           def.Bus,
		variant:       def.Variant,
		illegalPolicy: def.IllegalPolicy,
		irqSource:     def.IRQSource,
		nmiSource:     def.NMISource,
	}
	c.Reset()
	return c, nil
}

// Reset performs the power-on/reset entry path: SP -= 3 worth of the
// usual stack-pointer decay is skipped (software reset, not power-on;
// this core starts SP at the conventional 0xFD), I is set, PC loads
// from resetVector, any pending interrupt/halt/tick-remainder state is
// cleared, and the cycle counter restarts from the 8 cycles the reset
// sequence itself takes.
func (c *Chip) Reset() {
	c.SP = 0xFD
	c.P = powerOnP
	c.PC = c.readWord(resetVector)
	c.cycles = 8
	c.irqLine = false
	c.nmiPending = false
	c.halted = false
	c.pendingTicks = 0
}

// SetIRQ sets the level of the core's IRQ line directly. Level
// triggered: stays pending every Step until deasserted and I is clear.
func (c *Chip) SetIRQ(asserted bool) {
	c.irqLine = asserted
}

// TriggerNMI latches an edge-triggered NMI request. It will be serviced
// on the next Step regardless of the I flag, then cleared.
func (c *Chip) TriggerNMI() {
	c.nmiPending = true
}

// Cycles returns the running total of cycles this Chip has accounted
// for since the last Reset.
func (c *Chip) Cycles() uint64 {
	return c.cycles
}

// StateSnapshot formats the visible register file for logging/tracing.
func (c *Chip) StateSnapshot() string {
	return fmt.Sprintf("A:%02X X:%02X Y:%02X P:%02X SP:%02X PC:%04X CYC:%d",
		c.A, c.X, c.Y, c.P, c.SP, c.PC, c.cycles)
}

func (c *Chip) pollInterruptSources() {
	if c.nmiSource != nil && c.nmiSource.Raised() {
		c.nmiPending = true
	}
	if c.irqSource != nil {
		c.irqLine = c.irqLine || c.irqSource.Raised()
	}
}

// enterInterrupt runs the common IRQ/NMI/BRK stacking sequence:
// push PCH, PCL, then P (with the Break bit set only for a software
// BRK), set I, and load PC from vector. Reset itself doesn't go through
// here; it doesn't touch the stack at all on this core.
func (c *Chip) enterInterrupt(vector uint16, brk bool) {
	c.push(uint8(c.PC >> 8))
	c.push(uint8(c.PC))
	pushed := c.P | flagUnused
	if brk {
		pushed |= flagBreak
	} else {
		pushed &^= flagBreak
	}
	c.push(pushed)
	c.P |= flagInterrupt
	c.PC = c.readWord(vector)
}

// Step executes exactly one instruction: if a pending NMI or an
// asserted-and-unmasked IRQ is outstanding, it services that interrupt
// and returns its 7 cycles without fetching an instruction; otherwise it
// fetches, decodes, resolves the addressing mode, executes, and returns
// the total cycle cost of whatever just ran. Once halted by a KIL/JAM
// opcode, Step returns a HaltError on every subsequent call until
// Reset.
func (c *Chip) Step() (uint8, error) {
	if c.halted {
		return 0, HaltError{Opcode: c.haltOpcode, PC: c.haltPC}
	}

	c.pollInterruptSources()

	if c.nmiPending {
		c.nmiPending = false
		c.enterInterrupt(nmiVector, false)
		c.cycles += 7
		return 7, nil
	}
	if c.irqLine && c.P&flagInterrupt == 0 {
		c.enterInterrupt(irqVector, false)
		c.cycles += 7
		return 7, nil
	}

	opPC := c.PC
	opcode := c.bus.Read(c.PC)
	c.PC++

	entry := opcodeTable[opcode]
	exec := entry.exec

	if entry.illegal {
		switch c.illegalPolicy {
		case PolicyPanic:
			return 0, IllegalOpcodeError{Opcode: opcode, PC: opPC, Variant: c.variant}
		case PolicyExecute:
			if c.variant == VariantCMOS {
				exec = opCMOSNOP
			}
		}
	}

	op, crossed := resolve(c, entry.mode)
	extra, err := exec(c, op, crossed)
	if err != nil {
		return 0, err
	}

	total := entry.base + extra
	if entry.pageCross && crossed {
		total++
	}
	c.cycles += uint64(total)

	if c.halted {
		c.haltOpcode = opcode
		c.haltPC = opPC
	}

	return total, nil
}

// Clock advances the core by one notional "tick" of a caller-driven
// clock rather than one whole instruction. Internally this core is
// instruction-granular (see Step); the full instruction effect runs on
// the first tick of its cost, and Clock spends the remaining ticks
// silently waiting out the cycle count Step reported, so a caller
// ticking once per cycle still sees the right number of ticks elapse
// per instruction. It returns true on the tick where a new instruction
// was actually fetched and executed, false on every tick spent waiting
// out the remainder of its cycle cost.
func (c *Chip) Clock() (bool, error) {
	if c.pendingTicks > 0 {
		c.pendingTicks--
		return false, nil
	}
	n, err := c.Step()
	if err != nil {
		return false, err
	}
	if n > 0 {
		c.pendingTicks = n - 1
	}
	return true, nil
}
