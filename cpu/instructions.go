package cpu

// execFunc performs the semantic mutation for one opcode given its
// resolved operand and whether the addressing mode crossed a page while
// computing it (only branches and the generic page-cross charge in Step
// care about the latter). It returns the extra cycles the operation
// itself contributes (as distinct from the generic page-cross cycle,
// which Step adds on its own from the table's page-cross-sensitivity
// flag).
type execFunc func(c *Chip, op operand, crossed bool) (uint8, error)

// load reads the operand: the accumulator if this is accumulator mode,
// otherwise a bus read at the resolved address.
func (c *Chip) load(op operand) uint8 {
	if op.accumulator {
		return c.A
	}
	return c.bus.Read(op.address)
}

// store writes v to the operand's destination.
func (c *Chip) store(op operand, v uint8) {
	if op.accumulator {
		c.A = v
	} else {
		c.bus.Write(op.address, v)
	}
}

// --- Load/Store ---

func opLDA(c *Chip, op operand, _ bool) (uint8, error) {
	c.A = c.load(op)
	c.setZN(c.A)
	return 0, nil
}

func opLDX(c *Chip, op operand, _ bool) (uint8, error) {
	c.X = c.load(op)
	c.setZN(c.X)
	return 0, nil
}

func opLDY(c *Chip, op operand, _ bool) (uint8, error) {
	c.Y = c.load(op)
	c.setZN(c.Y)
	return 0, nil
}

func opSTA(c *Chip, op operand, _ bool) (uint8, error) {
	c.store(op, c.A)
	return 0, nil
}

func opSTX(c *Chip, op operand, _ bool) (uint8, error) {
	c.store(op, c.X)
	return 0, nil
}

func opSTY(c *Chip, op operand, _ bool) (uint8, error) {
	c.store(op, c.Y)
	return 0, nil
}

// --- Transfers ---

func opTAX(c *Chip, _ operand, _ bool) (uint8, error) { c.X = c.A; c.setZN(c.X); return 0, nil }
func opTAY(c *Chip, _ operand, _ bool) (uint8, error) { c.Y = c.A; c.setZN(c.Y); return 0, nil }
func opTSX(c *Chip, _ operand, _ bool) (uint8, error) { c.X = c.SP; c.setZN(c.X); return 0, nil }
func opTXA(c *Chip, _ operand, _ bool) (uint8, error) { c.A = c.X; c.setZN(c.A); return 0, nil }
func opTYA(c *Chip, _ operand, _ bool) (uint8, error) { c.A = c.Y; c.setZN(c.A); return 0, nil }

// opTXS copies X into SP with no flag change, per spec.
func opTXS(c *Chip, _ operand, _ bool) (uint8, error) {
	c.SP = c.X
	return 0, nil
}

// --- Stack ---

func (c *Chip) push(v uint8) {
	c.bus.Write(0x0100+uint16(c.SP), v)
	c.SP--
}

func (c *Chip) pop() uint8 {
	c.SP++
	return c.bus.Read(0x0100 + uint16(c.SP))
}

func opPHA(c *Chip, _ operand, _ bool) (uint8, error) {
	c.push(c.A)
	return 0, nil
}

// opPHP pushes P with B and U forced to 1.
func opPHP(c *Chip, _ operand, _ bool) (uint8, error) {
	c.push(c.P | flagBreak | flagUnused)
	return 0, nil
}

func opPLA(c *Chip, _ operand, _ bool) (uint8, error) {
	c.A = c.pop()
	c.setZN(c.A)
	return 0, nil
}

// opPLP pulls P but the effective B stays 0 and U stays 1 regardless of
// the popped bits (the Break flag has no physical existence in the
// register; it's only ever synthesized when P gets pushed).
func opPLP(c *Chip, _ operand, _ bool) (uint8, error) {
	c.P = (c.pop() &^ flagBreak) | flagUnused
	return 0, nil
}

// --- Arithmetic ---

// opADC implements binary and BCD addition per the NMOS algorithm. On
// VariantNES the D flag never applies (2A03 lacks BCD).
func opADC(c *Chip, op operand, _ bool) (uint8, error) {
	c.adc(c.load(op))
	return 0, nil
}

func (c *Chip) adc(val uint8) {
	carry := c.P & flagCarry
	if c.P&flagDecimal != 0 && c.variant != VariantNES {
		c.adcDecimal(val, carry)
		return
	}
	sum := uint16(c.A) + uint16(val) + uint16(carry)
	res := uint8(sum)
	c.setOverflow(c.A, val, res)
	c.setCarry(sum)
	c.A = res
	c.setZN(c.A)
}

// adcDecimal implements BCD add. The nibble fixup (lo, then sum) is the
// same on every variant; where NMOS and CMOS part ways is which stage of
// that fixup N, V and Z get read from. NMOS reads N/V off the
// high-nibble-not-yet-corrected intermediate and Z off the plain binary
// sum, reproducing the documented-but-messy NMOS datasheet behavior.
// CMOS re-derives all three off the final, fully corrected decimal
// result, which is what the 65C02 actually does and what its datasheet
// promises.
func (c *Chip) adcDecimal(val uint8, carry uint8) {
	lo := (c.A & 0x0F) + (val & 0x0F) + carry
	if lo >= 0x0A {
		lo = ((lo + 0x06) & 0x0F) + 0x10
	}
	sum := uint16(c.A&0xF0) + uint16(val&0xF0) + uint16(lo)
	if sum >= 0xA0 {
		sum += 0x60
	}
	c.setCarry(sum)
	if c.variant == VariantCMOS {
		res := uint8(sum)
		c.setOverflow(c.A, val, res)
		c.setZN(res)
	} else {
		seq := (c.A & 0xF0) + (val & 0xF0) + lo
		bin := c.A + val + carry
		c.setOverflow(c.A, val, seq)
		c.setNegative(seq)
		c.setZeroFlag(bin == 0)
	}
	c.A = uint8(sum)
}

func (c *Chip) setNegative(v uint8) {
	if v&flagNegative != 0 {
		c.P |= flagNegative
	} else {
		c.P &^= flagNegative
	}
}

func (c *Chip) setZeroFlag(zero bool) {
	if zero {
		c.P |= flagZero
	} else {
		c.P &^= flagZero
	}
}

// opSBC implements binary and BCD subtraction. Binary SBC is ADC of the
// ones' complement of the operand; BCD SBC follows its own nibble
// borrow-correction algorithm.
func opSBC(c *Chip, op operand, _ bool) (uint8, error) {
	val := c.load(op)
	carry := c.P & flagCarry
	if c.P&flagDecimal != 0 && c.variant != VariantNES {
		c.sbcDecimal(val, carry)
		return 0, nil
	}
	c.adc(^val)
	return 0, nil
}

func (c *Chip) sbcDecimal(val uint8, carry uint8) {
	borrow := uint8(1) - carry
	lo := int16(c.A&0x0F) - int16(val&0x0F) - int16(borrow)
	hi := int16(c.A&0xF0) - int16(val&0xF0)
	if lo < 0 {
		lo -= 0x06
		hi -= 0x10
	}
	if hi < 0 {
		hi -= 0x60
	}
	res := uint8((hi & 0xF0) + (lo & 0x0F))

	binSum := uint16(c.A) + uint16(^val) + uint16(carry)
	c.setCarry(binSum)
	if c.variant == VariantCMOS {
		// CMOS re-derives N/V/Z off the decimal-corrected result rather
		// than the binary one, same split as adcDecimal.
		c.setOverflow(c.A, ^val, res)
		c.setZN(res)
	} else {
		c.setOverflow(c.A, ^val, uint8(binSum))
		c.setZN(uint8(binSum))
	}
	c.A = res
}

// --- Logical ---

func opAND(c *Chip, op operand, _ bool) (uint8, error) {
	c.A &= c.load(op)
	c.setZN(c.A)
	return 0, nil
}

func opORA(c *Chip, op operand, _ bool) (uint8, error) {
	c.A |= c.load(op)
	c.setZN(c.A)
	return 0, nil
}

func opEOR(c *Chip, op operand, _ bool) (uint8, error) {
	c.A ^= c.load(op)
	c.setZN(c.A)
	return 0, nil
}

// opBIT tests A & M without mutating A: Z from the AND result, N and V
// copied directly from bits 7 and 6 of M.
func opBIT(c *Chip, op operand, _ bool) (uint8, error) {
	m := c.load(op)
	c.setZeroFlag(c.A&m == 0)
	c.setNegative(m)
	if m&flagOverflow != 0 {
		c.P |= flagOverflow
	} else {
		c.P &^= flagOverflow
	}
	return 0, nil
}

// --- Shifts and rotates ---

func opASL(c *Chip, op operand, _ bool) (uint8, error) {
	v := c.load(op)
	c.setCarry(uint16(v) << 1)
	res := v << 1
	c.store(op, res)
	c.setZN(res)
	return 0, nil
}

func opLSR(c *Chip, op operand, _ bool) (uint8, error) {
	v := c.load(op)
	if v&flagCarry != 0 {
		c.P |= flagCarry
	} else {
		c.P &^= flagCarry
	}
	res := v >> 1
	c.store(op, res)
	c.setZN(res)
	return 0, nil
}

func opROL(c *Chip, op operand, _ bool) (uint8, error) {
	v := c.load(op)
	carryIn := c.P & flagCarry
	c.setCarry(uint16(v) << 1)
	res := (v << 1) | carryIn
	c.store(op, res)
	c.setZN(res)
	return 0, nil
}

// opROR implements ROR. On the base NMOS revision this opcode behaved as
// LSR (the rotate-in bug); this core always implements the corrected
// rotate semantics, matching every NMOS revision actually found in
// deployed hardware (Atari, NES, C64) and CMOS.
func opROR(c *Chip, op operand, _ bool) (uint8, error) {
	v := c.load(op)
	carryIn := c.P & flagCarry
	carryOut := v & flagCarry
	res := (v >> 1) | (carryIn << 7)
	c.store(op, res)
	if carryOut != 0 {
		c.P |= flagCarry
	} else {
		c.P &^= flagCarry
	}
	c.setZN(res)
	return 0, nil
}

// --- Increment/Decrement ---

func opINC(c *Chip, op operand, _ bool) (uint8, error) {
	res := c.load(op) + 1
	c.store(op, res)
	c.setZN(res)
	return 0, nil
}

func opDEC(c *Chip, op operand, _ bool) (uint8, error) {
	res := c.load(op) - 1
	c.store(op, res)
	c.setZN(res)
	return 0, nil
}

func opINX(c *Chip, _ operand, _ bool) (uint8, error) { c.X++; c.setZN(c.X); return 0, nil }
func opINY(c *Chip, _ operand, _ bool) (uint8, error) { c.Y++; c.setZN(c.Y); return 0, nil }
func opDEX(c *Chip, _ operand, _ bool) (uint8, error) { c.X--; c.setZN(c.X); return 0, nil }
func opDEY(c *Chip, _ operand, _ bool) (uint8, error) { c.Y--; c.setZN(c.Y); return 0, nil }

// --- Compare ---

func (c *Chip) compare(reg, val uint8) {
	t := reg - val
	c.setZeroFlag(reg == val)
	c.setNegative(t)
	c.setCarry(uint16(reg) + uint16(^val) + 1)
}

func opCMP(c *Chip, op operand, _ bool) (uint8, error) {
	c.compare(c.A, c.load(op))
	return 0, nil
}

func opCPX(c *Chip, op operand, _ bool) (uint8, error) {
	c.compare(c.X, c.load(op))
	return 0, nil
}

func opCPY(c *Chip, op operand, _ bool) (uint8, error) {
	c.compare(c.Y, c.load(op))
	return 0, nil
}

// --- Branches ---

// branch centralizes the taken/not-taken cycle accounting: +1 if taken,
// one more +1 if the branch target crosses a page, tested against the
// PC as it stood right after the operand byte.
func (c *Chip) branch(op operand, crossed, taken bool) (uint8, error) {
	if !taken {
		return 0, nil
	}
	c.PC = op.address
	extra := uint8(1)
	if crossed {
		extra++
	}
	return extra, nil
}

func opBCC(c *Chip, op operand, crossed bool) (uint8, error) {
	return c.branch(op, crossed, c.P&flagCarry == 0)
}
func opBCS(c *Chip, op operand, crossed bool) (uint8, error) {
	return c.branch(op, crossed, c.P&flagCarry != 0)
}
func opBEQ(c *Chip, op operand, crossed bool) (uint8, error) {
	return c.branch(op, crossed, c.P&flagZero != 0)
}
func opBNE(c *Chip, op operand, crossed bool) (uint8, error) {
	return c.branch(op, crossed, c.P&flagZero == 0)
}
func opBMI(c *Chip, op operand, crossed bool) (uint8, error) {
	return c.branch(op, crossed, c.P&flagNegative != 0)
}
func opBPL(c *Chip, op operand, crossed bool) (uint8, error) {
	return c.branch(op, crossed, c.P&flagNegative == 0)
}
func opBVC(c *Chip, op operand, crossed bool) (uint8, error) {
	return c.branch(op, crossed, c.P&flagOverflow == 0)
}
func opBVS(c *Chip, op operand, crossed bool) (uint8, error) {
	return c.branch(op, crossed, c.P&flagOverflow != 0)
}

// --- Jumps/Subroutines ---

func opJMP(c *Chip, op operand, _ bool) (uint8, error) {
	c.PC = op.address
	return 0, nil
}

// opJSR pushes the address of the last byte of the JSR instruction
// (PC-1, where PC already points past the 2 byte operand) then jumps.
func opJSR(c *Chip, op operand, _ bool) (uint8, error) {
	ret := c.PC - 1
	c.push(uint8(ret >> 8))
	c.push(uint8(ret))
	c.PC = op.address
	return 0, nil
}

func opRTS(c *Chip, _ operand, _ bool) (uint8, error) {
	lo := c.pop()
	hi := c.pop()
	c.PC = (uint16(hi)<<8 | uint16(lo)) + 1
	return 0, nil
}

// opRTI pops P (forcing effective B=0, U=1) then PC, with no +1
// adjustment (unlike RTS).
func opRTI(c *Chip, _ operand, _ bool) (uint8, error) {
	c.P = (c.pop() &^ flagBreak) | flagUnused
	lo := c.pop()
	hi := c.pop()
	c.PC = uint16(hi)<<8 | uint16(lo)
	return 0, nil
}

// --- Flag mutators ---

func opCLC(c *Chip, _ operand, _ bool) (uint8, error) { c.P &^= flagCarry; return 0, nil }
func opSEC(c *Chip, _ operand, _ bool) (uint8, error) { c.P |= flagCarry; return 0, nil }
func opCLD(c *Chip, _ operand, _ bool) (uint8, error) { c.P &^= flagDecimal; return 0, nil }
func opSED(c *Chip, _ operand, _ bool) (uint8, error) { c.P |= flagDecimal; return 0, nil }
func opCLI(c *Chip, _ operand, _ bool) (uint8, error) { c.P &^= flagInterrupt; return 0, nil }
func opSEI(c *Chip, _ operand, _ bool) (uint8, error) { c.P |= flagInterrupt; return 0, nil }
func opCLV(c *Chip, _ operand, _ bool) (uint8, error) { c.P &^= flagOverflow; return 0, nil }

// --- BRK / NOP ---

// opBRK skips the padding byte, then stacks exactly like an IRQ except
// B=1 on the pushed P, and vectors through irqVector (or nmiVector if
// an NMI is pending at the same instant it runs).
func opBRK(c *Chip, _ operand, _ bool) (uint8, error) {
	c.PC++
	vector := uint16(irqVector)
	if c.nmiPending {
		vector = nmiVector
		c.nmiPending = false
	}
	c.enterInterrupt(vector, true)
	return 0, nil
}

// opNOP covers documented and undocumented NOPs alike. The addressing
// mode resolver has already consumed any operand bytes; there's nothing
// left to do.
func opNOP(c *Chip, _ operand, _ bool) (uint8, error) {
	return 0, nil
}

// opHLT implements the KIL/JAM family: halts the fetch loop until Reset.
func opHLT(c *Chip, _ operand, _ bool) (uint8, error) {
	c.halted = true
	return 0, nil
}
