package cpu

// AddressMode tags one of the 13 effective-address contracts a decode
// table entry can specify.
type AddressMode int

const (
	AmImplicit AddressMode = iota
	AmAccumulator
	AmImmediate
	AmZeroPage
	AmZeroPageX
	AmZeroPageY
	AmAbsolute
	AmAbsoluteX
	AmAbsoluteY
	AmIndirect // JMP only
	AmIndexedIndirect // (zp,X)
	AmIndirectIndexed // (zp),Y
	AmRelative
)

// operand is what an addressing-mode resolver hands to an operation: the
// accumulator sentinel, or a concrete effective address. Keeping this
// explicit (rather than stashing a fetched value on the Chip) keeps the
// resolver and the operation decoupled.
type operand struct {
	accumulator bool
	address     uint16
}

// resolverFunc consumes bytes at PC, advances PC past them, and reports
// the effective address (or the accumulator sentinel) plus whether a
// page boundary was crossed while forming it.
type resolverFunc func(c *Chip) (operand, bool)

// resolve dispatches to the resolver for mode.
func resolve(c *Chip, mode AddressMode) (operand, bool) {
	return resolvers[mode](c)
}

// OperandLength reports how many bytes follow the opcode byte itself
// for a given addressing mode. Used by tools that need to walk an
// instruction stream without executing it (trace, disassembly).
func OperandLength(mode AddressMode) int {
	switch mode {
	case AmImplicit, AmAccumulator:
		return 0
	case AmImmediate, AmZeroPage, AmZeroPageX, AmZeroPageY,
		AmIndexedIndirect, AmIndirectIndexed, AmRelative:
		return 1
	case AmAbsolute, AmAbsoluteX, AmAbsoluteY, AmIndirect:
		return 2
	default:
		return 0
	}
}

var resolvers = [...]resolverFunc{
	AmImplicit:        resolveImplicit,
	AmAccumulator:     resolveAccumulator,
	AmImmediate:       resolveImmediate,
	AmZeroPage:        resolveZeroPage,
	AmZeroPageX:       resolveZeroPageX,
	AmZeroPageY:       resolveZeroPageY,
	AmAbsolute:        resolveAbsolute,
	AmAbsoluteX:       resolveAbsoluteX,
	AmAbsoluteY:       resolveAbsoluteY,
	AmIndirect:        resolveIndirect,
	AmIndexedIndirect: resolveIndexedIndirect,
	AmIndirectIndexed: resolveIndirectIndexed,
	AmRelative:        resolveRelative,
}

func resolveImplicit(c *Chip) (operand, bool) {
	return operand{}, false
}

func resolveAccumulator(c *Chip) (operand, bool) {
	return operand{accumulator: true}, false
}

func resolveImmediate(c *Chip) (operand, bool) {
	ea := c.PC
	c.PC++
	return operand{address: ea}, false
}

func resolveZeroPage(c *Chip) (operand, bool) {
	ea := uint16(c.bus.Read(c.PC))
	c.PC++
	return operand{address: ea}, false
}

func resolveZeroPageIndexed(c *Chip, reg uint8) (operand, bool) {
	base := c.bus.Read(c.PC)
	c.PC++
	ea := uint16(base + reg) // wraps within the zero page
	return operand{address: ea}, false
}

func resolveZeroPageX(c *Chip) (operand, bool) {
	return resolveZeroPageIndexed(c, c.X)
}

func resolveZeroPageY(c *Chip) (operand, bool) {
	return resolveZeroPageIndexed(c, c.Y)
}

func (c *Chip) readWord(addr uint16) uint16 {
	lo := c.bus.Read(addr)
	hi := c.bus.Read(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

func resolveAbsolute(c *Chip) (operand, bool) {
	ea := c.readWord(c.PC)
	c.PC += 2
	return operand{address: ea}, false
}

func resolveAbsoluteIndexed(c *Chip, reg uint8) (operand, bool) {
	base := c.readWord(c.PC)
	c.PC += 2
	ea := base + uint16(reg)
	crossed := (base & 0xFF00) != (ea & 0xFF00)
	return operand{address: ea}, crossed
}

func resolveAbsoluteX(c *Chip) (operand, bool) {
	return resolveAbsoluteIndexed(c, c.X)
}

func resolveAbsoluteY(c *Chip) (operand, bool) {
	return resolveAbsoluteIndexed(c, c.Y)
}

// resolveIndirect implements JMP (a), including the NMOS page-wrap bug:
// when the pointer's low byte is 0xFF the high byte of the target is
// fetched from ptr & 0xFF00 instead of ptr+1.
func resolveIndirect(c *Chip) (operand, bool) {
	ptr := c.readWord(c.PC)
	c.PC += 2
	lo := c.bus.Read(ptr)
	hiAddr := ptr + 1
	if ptr&0x00FF == 0x00FF {
		hiAddr = ptr & 0xFF00
	}
	hi := c.bus.Read(hiAddr)
	ea := uint16(hi)<<8 | uint16(lo)
	return operand{address: ea}, false
}

// resolveIndexedIndirect implements (zp,X): the zero-page pointer add
// wraps within the zero page, as does the pointer+1 fetch for the high
// byte.
func resolveIndexedIndirect(c *Chip) (operand, bool) {
	zp := c.bus.Read(c.PC) + c.X // wraps as uint8
	c.PC++
	lo := c.bus.Read(uint16(zp))
	hi := c.bus.Read(uint16(zp + 1))
	ea := uint16(hi)<<8 | uint16(lo)
	return operand{address: ea}, false
}

// resolveIndirectIndexed implements (zp),Y: the pointer is read from the
// zero page (with wraparound on the high-byte fetch), then Y is added to
// the 16 bit result with normal 16 bit wraparound.
func resolveIndirectIndexed(c *Chip) (operand, bool) {
	zp := c.bus.Read(c.PC)
	c.PC++
	lo := c.bus.Read(uint16(zp))
	hi := c.bus.Read(uint16(zp + 1))
	base := uint16(hi)<<8 | uint16(lo)
	ea := base + uint16(c.Y)
	crossed := (base & 0xFF00) != (ea & 0xFF00)
	return operand{address: ea}, crossed
}

// resolveRelative computes a branch target from a signed 8 bit offset.
// The page-cross test compares against the PC as it stands right after
// the operand byte (i.e. before any branch is actually taken).
func resolveRelative(c *Chip) (operand, bool) {
	offset := int8(c.bus.Read(c.PC))
	c.PC++
	base := c.PC
	ea := uint16(int32(base) + int32(offset))
	crossed := (base & 0xFF00) != (ea & 0xFF00)
	return operand{address: ea}, crossed
}
