package cpu

// Bit masks for the packed status register P, matching the layout pushed
// onto the stack by PHP/BRK/IRQ/NMI: N V 1 B D I Z C.
const (
	flagNegative  = uint8(0x80)
	flagOverflow  = uint8(0x40)
	flagUnused    = uint8(0x20) // always reads/pushes as 1
	flagBreak     = uint8(0x10) // only meaningful on the pushed byte
	flagDecimal   = uint8(0x08)
	flagInterrupt = uint8(0x04)
	flagZero      = uint8(0x02)
	flagCarry     = uint8(0x01)

	// powerOnP is the value loaded into P on reset: I=1 (interrupts
	// masked), U=1 (always reads as 1), everything else clear.
	powerOnP = flagUnused | flagInterrupt
)

// setZN sets the Z and N flags from the given result byte. Every
// documented and undocumented operation that touches N/Z routes through
// this helper so the derivation can't drift between call sites.
func (c *Chip) setZN(v uint8) {
	if v == 0 {
		c.P |= flagZero
	} else {
		c.P &^= flagZero
	}
	if v&flagNegative != 0 {
		c.P |= flagNegative
	} else {
		c.P &^= flagNegative
	}
}

// setCarry sets C based on whether an 8 bit ALU result (carried as a
// wider intermediate) produced a carry out, i.e. res >= 0x100. BCD
// fixups can push this as high as 0x200 and it's still a carry.
func (c *Chip) setCarry(res uint16) {
	if res >= 0x100 {
		c.P |= flagCarry
	} else {
		c.P &^= flagCarry
	}
}

// setOverflow sets V when adding arg to reg produced a two's-complement
// sign change that isn't explained by the inputs' own signs differing.
// See http://www.righto.com/2012/12/the-6502-overflow-flag-explained.html
func (c *Chip) setOverflow(reg, arg, res uint8) {
	if (reg^res)&(arg^res)&flagNegative != 0 {
		c.P |= flagOverflow
	} else {
		c.P &^= flagOverflow
	}
}
