package cpu

// opcodeEntry is one slot of the dense 256 entry decode table: mnemonic,
// addressing mode, base cycle count (no page cross, branch not taken),
// whether the opcode is undocumented, and whether the table's page-cross
// charge applies to it. That charge only ever applies to documented
// memory-read opcodes and their undocumented load cousins; stores and
// RMW opcodes never get it, since they already pay the worst-case cycle
// in base.
type opcodeEntry struct {
	mnemonic  string
	mode      AddressMode
	base      uint8
	illegal   bool
	pageCross bool
	exec      execFunc
}

// Describe exposes the static decode-table metadata for opcode without
// touching any Chip state, so tools like package trace can render a
// mnemonic and operand without reaching into CPU internals.
func Describe(opcode uint8) (mnemonic string, mode AddressMode, illegal bool) {
	e := opcodeTable[opcode]
	return e.mnemonic, e.mode, e.illegal
}

// opcodeTable is the fixed 256 entry decode table, indexed by opcode
// byte. Source: http://wiki.nesdev.com/w/index.php/CPU_unofficial_opcodes
// and http://obelisk.me.uk/6502/reference.html.
var opcodeTable = [256]opcodeEntry{
	0x00: {"BRK", AmImplicit, 7, false, false, opBRK},
	0x01: {"ORA", AmIndexedIndirect, 6, false, false, opORA},
	0x02: {"KIL", AmImplicit, 2, true, false, opHLT},
	0x03: {"SLO", AmIndexedIndirect, 8, true, false, opSLO},
	0x04: {"NOP", AmZeroPage, 3, true, false, opNOP},
	0x05: {"ORA", AmZeroPage, 3, false, false, opORA},
	0x06: {"ASL", AmZeroPage, 5, false, false, opASL},
	0x07: {"SLO", AmZeroPage, 5, true, false, opSLO},
	0x08: {"PHP", AmImplicit, 3, false, false, opPHP},
	0x09: {"ORA", AmImmediate, 2, false, false, opORA},
	0x0A: {"ASL", AmAccumulator, 2, false, false, opASL},
	0x0B: {"ANC", AmImmediate, 2, true, false, opANC},
	0x0C: {"NOP", AmAbsolute, 4, true, false, opNOP},
	0x0D: {"ORA", AmAbsolute, 4, false, false, opORA},
	0x0E: {"ASL", AmAbsolute, 6, false, false, opASL},
	0x0F: {"SLO", AmAbsolute, 6, true, false, opSLO},

	0x10: {"BPL", AmRelative, 2, false, false, opBPL},
	0x11: {"ORA", AmIndirectIndexed, 5, false, true, opORA},
	0x12: {"KIL", AmImplicit, 2, true, false, opHLT},
	0x13: {"SLO", AmIndirectIndexed, 8, true, false, opSLO},
	0x14: {"NOP", AmZeroPageX, 4, true, false, opNOP},
	0x15: {"ORA", AmZeroPageX, 4, false, false, opORA},
	0x16: {"ASL", AmZeroPageX, 6, false, false, opASL},
	0x17: {"SLO", AmZeroPageX, 6, true, false, opSLO},
	0x18: {"CLC", AmImplicit, 2, false, false, opCLC},
	0x19: {"ORA", AmAbsoluteY, 4, false, true, opORA},
	0x1A: {"NOP", AmImplicit, 2, true, false, opNOP},
	0x1B: {"SLO", AmAbsoluteY, 7, true, false, opSLO},
	0x1C: {"NOP", AmAbsoluteX, 4, true, true, opNOP},
	0x1D: {"ORA", AmAbsoluteX, 4, false, true, opORA},
	0x1E: {"ASL", AmAbsoluteX, 7, false, false, opASL},
	0x1F: {"SLO", AmAbsoluteX, 7, true, false, opSLO},

	0x20: {"JSR", AmAbsolute, 6, false, false, opJSR},
	0x21: {"AND", AmIndexedIndirect, 6, false, false, opAND},
	0x22: {"KIL", AmImplicit, 2, true, false, opHLT},
	0x23: {"RLA", AmIndexedIndirect, 8, true, false, opRLA},
	0x24: {"BIT", AmZeroPage, 3, false, false, opBIT},
	0x25: {"AND", AmZeroPage, 3, false, false, opAND},
	0x26: {"ROL", AmZeroPage, 5, false, false, opROL},
	0x27: {"RLA", AmZeroPage, 5, true, false, opRLA},
	0x28: {"PLP", AmImplicit, 4, false, false, opPLP},
	0x29: {"AND", AmImmediate, 2, false, false, opAND},
	0x2A: {"ROL", AmAccumulator, 2, false, false, opROL},
	0x2B: {"ANC", AmImmediate, 2, true, false, opANC},
	0x2C: {"BIT", AmAbsolute, 4, false, false, opBIT},
	0x2D: {"AND", AmAbsolute, 4, false, false, opAND},
	0x2E: {"ROL", AmAbsolute, 6, false, false, opROL},
	0x2F: {"RLA", AmAbsolute, 6, true, false, opRLA},

	0x30: {"BMI", AmRelative, 2, false, false, opBMI},
	0x31: {"AND", AmIndirectIndexed, 5, false, true, opAND},
	0x32: {"KIL", AmImplicit, 2, true, false, opHLT},
	0x33: {"RLA", AmIndirectIndexed, 8, true, false, opRLA},
	0x34: {"NOP", AmZeroPageX, 4, true, false, opNOP},
	0x35: {"AND", AmZeroPageX, 4, false, false, opAND},
	0x36: {"ROL", AmZeroPageX, 6, false, false, opROL},
	0x37: {"RLA", AmZeroPageX, 6, true, false, opRLA},
	0x38: {"SEC", AmImplicit, 2, false, false, opSEC},
	0x39: {"AND", AmAbsoluteY, 4, false, true, opAND},
	0x3A: {"NOP", AmImplicit, 2, true, false, opNOP},
	0x3B: {"RLA", AmAbsoluteY, 7, true, false, opRLA},
	0x3C: {"NOP", AmAbsoluteX, 4, true, true, opNOP},
	0x3D: {"AND", AmAbsoluteX, 4, false, true, opAND},
	0x3E: {"ROL", AmAbsoluteX, 7, false, false, opROL},
	0x3F: {"RLA", AmAbsoluteX, 7, true, false, opRLA},

	0x40: {"RTI", AmImplicit, 6, false, false, opRTI},
	0x41: {"EOR", AmIndexedIndirect, 6, false, false, opEOR},
	0x42: {"KIL", AmImplicit, 2, true, false, opHLT},
	0x43: {"SRE", AmIndexedIndirect, 8, true, false, opSRE},
	0x44: {"NOP", AmZeroPage, 3, true, false, opNOP},
	0x45: {"EOR", AmZeroPage, 3, false, false, opEOR},
	0x46: {"LSR", AmZeroPage, 5, false, false, opLSR},
	0x47: {"SRE", AmZeroPage, 5, true, false, opSRE},
	0x48: {"PHA", AmImplicit, 3, false, false, opPHA},
	0x49: {"EOR", AmImmediate, 2, false, false, opEOR},
	0x4A: {"LSR", AmAccumulator, 2, false, false, opLSR},
	0x4B: {"ALR", AmImmediate, 2, true, false, opALR},
	0x4C: {"JMP", AmAbsolute, 3, false, false, opJMP},
	0x4D: {"EOR", AmAbsolute, 4, false, false, opEOR},
	0x4E: {"LSR", AmAbsolute, 6, false, false, opLSR},
	0x4F: {"SRE", AmAbsolute, 6, true, false, opSRE},

	0x50: {"BVC", AmRelative, 2, false, false, opBVC},
	0x51: {"EOR", AmIndirectIndexed, 5, false, true, opEOR},
	0x52: {"KIL", AmImplicit, 2, true, false, opHLT},
	0x53: {"SRE", AmIndirectIndexed, 8, true, false, opSRE},
	0x54: {"NOP", AmZeroPageX, 4, true, false, opNOP},
	0x55: {"EOR", AmZeroPageX, 4, false, false, opEOR},
	0x56: {"LSR", AmZeroPageX, 6, false, false, opLSR},
	0x57: {"SRE", AmZeroPageX, 6, true, false, opSRE},
	0x58: {"CLI", AmImplicit, 2, false, false, opCLI},
	0x59: {"EOR", AmAbsoluteY, 4, false, true, opEOR},
	0x5A: {"NOP", AmImplicit, 2, true, false, opNOP},
	0x5B: {"SRE", AmAbsoluteY, 7, true, false, opSRE},
	0x5C: {"NOP", AmAbsoluteX, 4, true, true, opNOP},
	0x5D: {"EOR", AmAbsoluteX, 4, false, true, opEOR},
	0x5E: {"LSR", AmAbsoluteX, 7, false, false, opLSR},
	0x5F: {"SRE", AmAbsoluteX, 7, true, false, opSRE},

	0x60: {"RTS", AmImplicit, 6, false, false, opRTS},
	0x61: {"ADC", AmIndexedIndirect, 6, false, false, opADC},
	0x62: {"KIL", AmImplicit, 2, true, false, opHLT},
	0x63: {"RRA", AmIndexedIndirect, 8, true, false, opRRA},
	0x64: {"NOP", AmZeroPage, 3, true, false, opNOP},
	0x65: {"ADC", AmZeroPage, 3, false, false, opADC},
	0x66: {"ROR", AmZeroPage, 5, false, false, opROR},
	0x67: {"RRA", AmZeroPage, 5, true, false, opRRA},
	0x68: {"PLA", AmImplicit, 4, false, false, opPLA},
	0x69: {"ADC", AmImmediate, 2, false, false, opADC},
	0x6A: {"ROR", AmAccumulator, 2, false, false, opROR},
	0x6B: {"ARR", AmImmediate, 2, true, false, opARR},
	0x6C: {"JMP", AmIndirect, 5, false, false, opJMP},
	0x6D: {"ADC", AmAbsolute, 4, false, false, opADC},
	0x6E: {"ROR", AmAbsolute, 6, false, false, opROR},
	0x6F: {"RRA", AmAbsolute, 6, true, false, opRRA},

	0x70: {"BVS", AmRelative, 2, false, false, opBVS},
	0x71: {"ADC", AmIndirectIndexed, 5, false, true, opADC},
	0x72: {"KIL", AmImplicit, 2, true, false, opHLT},
	0x73: {"RRA", AmIndirectIndexed, 8, true, false, opRRA},
	0x74: {"NOP", AmZeroPageX, 4, true, false, opNOP},
	0x75: {"ADC", AmZeroPageX, 4, false, false, opADC},
	0x76: {"ROR", AmZeroPageX, 6, false, false, opROR},
	0x77: {"RRA", AmZeroPageX, 6, true, false, opRRA},
	0x78: {"SEI", AmImplicit, 2, false, false, opSEI},
	0x79: {"ADC", AmAbsoluteY, 4, false, true, opADC},
	0x7A: {"NOP", AmImplicit, 2, true, false, opNOP},
	0x7B: {"RRA", AmAbsoluteY, 7, true, false, opRRA},
	0x7C: {"NOP", AmAbsoluteX, 4, true, true, opNOP},
	0x7D: {"ADC", AmAbsoluteX, 4, false, true, opADC},
	0x7E: {"ROR", AmAbsoluteX, 7, false, false, opROR},
	0x7F: {"RRA", AmAbsoluteX, 7, true, false, opRRA},

	0x80: {"NOP", AmImmediate, 2, true, false, opNOP},
	0x81: {"STA", AmIndexedIndirect, 6, false, false, opSTA},
	0x82: {"NOP", AmImmediate, 2, true, false, opNOP},
	0x83: {"SAX", AmIndexedIndirect, 6, true, false, opSAX},
	0x84: {"STY", AmZeroPage, 3, false, false, opSTY},
	0x85: {"STA", AmZeroPage, 3, false, false, opSTA},
	0x86: {"STX", AmZeroPage, 3, false, false, opSTX},
	0x87: {"SAX", AmZeroPage, 3, true, false, opSAX},
	0x88: {"DEY", AmImplicit, 2, false, false, opDEY},
	0x89: {"NOP", AmImmediate, 2, true, false, opNOP},
	0x8A: {"TXA", AmImplicit, 2, false, false, opTXA},
	0x8B: {"XAA", AmImmediate, 2, true, false, opXAA},
	0x8C: {"STY", AmAbsolute, 4, false, false, opSTY},
	0x8D: {"STA", AmAbsolute, 4, false, false, opSTA},
	0x8E: {"STX", AmAbsolute, 4, false, false, opSTX},
	0x8F: {"SAX", AmAbsolute, 4, true, false, opSAX},

	0x90: {"BCC", AmRelative, 2, false, false, opBCC},
	0x91: {"STA", AmIndirectIndexed, 6, false, false, opSTA},
	0x92: {"KIL", AmImplicit, 2, true, false, opHLT},
	0x93: {"AHX", AmIndirectIndexed, 6, true, false, opAHX},
	0x94: {"STY", AmZeroPageX, 4, false, false, opSTY},
	0x95: {"STA", AmZeroPageX, 4, false, false, opSTA},
	0x96: {"STX", AmZeroPageY, 4, false, false, opSTX},
	0x97: {"SAX", AmZeroPageY, 4, true, false, opSAX},
	0x98: {"TYA", AmImplicit, 2, false, false, opTYA},
	0x99: {"STA", AmAbsoluteY, 5, false, false, opSTA},
	0x9A: {"TXS", AmImplicit, 2, false, false, opTXS},
	0x9B: {"TAS", AmAbsoluteY, 5, true, false, opTAS},
	0x9C: {"SHY", AmAbsoluteX, 5, true, false, opSHY},
	0x9D: {"STA", AmAbsoluteX, 5, false, false, opSTA},
	0x9E: {"SHX", AmAbsoluteY, 5, true, false, opSHX},
	0x9F: {"AHX", AmAbsoluteY, 5, true, false, opAHX},

	0xA0: {"LDY", AmImmediate, 2, false, false, opLDY},
	0xA1: {"LDA", AmIndexedIndirect, 6, false, false, opLDA},
	0xA2: {"LDX", AmImmediate, 2, false, false, opLDX},
	0xA3: {"LAX", AmIndexedIndirect, 6, true, false, opLAX},
	0xA4: {"LDY", AmZeroPage, 3, false, false, opLDY},
	0xA5: {"LDA", AmZeroPage, 3, false, false, opLDA},
	0xA6: {"LDX", AmZeroPage, 3, false, false, opLDX},
	0xA7: {"LAX", AmZeroPage, 3, true, false, opLAX},
	0xA8: {"TAY", AmImplicit, 2, false, false, opTAY},
	0xA9: {"LDA", AmImmediate, 2, false, false, opLDA},
	0xAA: {"TAX", AmImplicit, 2, false, false, opTAX},
	0xAB: {"OAL", AmImmediate, 2, true, false, opOAL},
	0xAC: {"LDY", AmAbsolute, 4, false, false, opLDY},
	0xAD: {"LDA", AmAbsolute, 4, false, false, opLDA},
	0xAE: {"LDX", AmAbsolute, 4, false, false, opLDX},
	0xAF: {"LAX", AmAbsolute, 4, true, false, opLAX},

	0xB0: {"BCS", AmRelative, 2, false, false, opBCS},
	0xB1: {"LDA", AmIndirectIndexed, 5, false, true, opLDA},
	0xB2: {"KIL", AmImplicit, 2, true, false, opHLT},
	0xB3: {"LAX", AmIndirectIndexed, 5, true, true, opLAX},
	0xB4: {"LDY", AmZeroPageX, 4, false, false, opLDY},
	0xB5: {"LDA", AmZeroPageX, 4, false, false, opLDA},
	0xB6: {"LDX", AmZeroPageY, 4, false, false, opLDX},
	0xB7: {"LAX", AmZeroPageY, 4, true, false, opLAX},
	0xB8: {"CLV", AmImplicit, 2, false, false, opCLV},
	0xB9: {"LDA", AmAbsoluteY, 4, false, true, opLDA},
	0xBA: {"TSX", AmImplicit, 2, false, false, opTSX},
	0xBB: {"LAS", AmAbsoluteY, 4, true, true, opLAS},
	0xBC: {"LDY", AmAbsoluteX, 4, false, true, opLDY},
	0xBD: {"LDA", AmAbsoluteX, 4, false, true, opLDA},
	0xBE: {"LDX", AmAbsoluteY, 4, false, true, opLDX},
	0xBF: {"LAX", AmAbsoluteY, 4, true, true, opLAX},

	0xC0: {"CPY", AmImmediate, 2, false, false, opCPY},
	0xC1: {"CMP", AmIndexedIndirect, 6, false, false, opCMP},
	0xC2: {"NOP", AmImmediate, 2, true, false, opNOP},
	0xC3: {"DCP", AmIndexedIndirect, 8, true, false, opDCP},
	0xC4: {"CPY", AmZeroPage, 3, false, false, opCPY},
	0xC5: {"CMP", AmZeroPage, 3, false, false, opCMP},
	0xC6: {"DEC", AmZeroPage, 5, false, false, opDEC},
	0xC7: {"DCP", AmZeroPage, 5, true, false, opDCP},
	0xC8: {"INY", AmImplicit, 2, false, false, opINY},
	0xC9: {"CMP", AmImmediate, 2, false, false, opCMP},
	0xCA: {"DEX", AmImplicit, 2, false, false, opDEX},
	0xCB: {"AXS", AmImmediate, 2, true, false, opAXS},
	0xCC: {"CPY", AmAbsolute, 4, false, false, opCPY},
	0xCD: {"CMP", AmAbsolute, 4, false, false, opCMP},
	0xCE: {"DEC", AmAbsolute, 6, false, false, opDEC},
	0xCF: {"DCP", AmAbsolute, 6, true, false, opDCP},

	0xD0: {"BNE", AmRelative, 2, false, false, opBNE},
	0xD1: {"CMP", AmIndirectIndexed, 5, false, true, opCMP},
	0xD2: {"KIL", AmImplicit, 2, true, false, opHLT},
	0xD3: {"DCP", AmIndirectIndexed, 8, true, false, opDCP},
	0xD4: {"NOP", AmZeroPageX, 4, true, false, opNOP},
	0xD5: {"CMP", AmZeroPageX, 4, false, false, opCMP},
	0xD6: {"DEC", AmZeroPageX, 6, false, false, opDEC},
	0xD7: {"DCP", AmZeroPageX, 6, true, false, opDCP},
	0xD8: {"CLD", AmImplicit, 2, false, false, opCLD},
	0xD9: {"CMP", AmAbsoluteY, 4, false, true, opCMP},
	0xDA: {"NOP", AmImplicit, 2, true, false, opNOP},
	0xDB: {"DCP", AmAbsoluteY, 7, true, false, opDCP},
	0xDC: {"NOP", AmAbsoluteX, 4, true, true, opNOP},
	0xDD: {"CMP", AmAbsoluteX, 4, false, true, opCMP},
	0xDE: {"DEC", AmAbsoluteX, 7, false, false, opDEC},
	0xDF: {"DCP", AmAbsoluteX, 7, true, false, opDCP},

	0xE0: {"CPX", AmImmediate, 2, false, false, opCPX},
	0xE1: {"SBC", AmIndexedIndirect, 6, false, false, opSBC},
	0xE2: {"NOP", AmImmediate, 2, true, false, opNOP},
	0xE3: {"ISC", AmIndexedIndirect, 8, true, false, opISC},
	0xE4: {"CPX", AmZeroPage, 3, false, false, opCPX},
	0xE5: {"SBC", AmZeroPage, 3, false, false, opSBC},
	0xE6: {"INC", AmZeroPage, 5, false, false, opINC},
	0xE7: {"ISC", AmZeroPage, 5, true, false, opISC},
	0xE8: {"INX", AmImplicit, 2, false, false, opINX},
	0xE9: {"SBC", AmImmediate, 2, false, false, opSBC},
	0xEA: {"NOP", AmImplicit, 2, false, false, opNOP},
	0xEB: {"SBC", AmImmediate, 2, true, false, opSBC},
	0xEC: {"CPX", AmAbsolute, 4, false, false, opCPX},
	0xED: {"SBC", AmAbsolute, 4, false, false, opSBC},
	0xEE: {"INC", AmAbsolute, 6, false, false, opINC},
	0xEF: {"ISC", AmAbsolute, 6, true, false, opISC},

	0xF0: {"BEQ", AmRelative, 2, false, false, opBEQ},
	0xF1: {"SBC", AmIndirectIndexed, 5, false, true, opSBC},
	0xF2: {"KIL", AmImplicit, 2, true, false, opHLT},
	0xF3: {"ISC", AmIndirectIndexed, 8, true, false, opISC},
	0xF4: {"NOP", AmZeroPageX, 4, true, false, opNOP},
	0xF5: {"SBC", AmZeroPageX, 4, false, false, opSBC},
	0xF6: {"INC", AmZeroPageX, 6, false, false, opINC},
	0xF7: {"ISC", AmZeroPageX, 6, true, false, opISC},
	0xF8: {"SED", AmImplicit, 2, false, false, opSED},
	0xF9: {"SBC", AmAbsoluteY, 4, false, true, opSBC},
	0xFA: {"NOP", AmImplicit, 2, true, false, opNOP},
	0xFB: {"ISC", AmAbsoluteY, 7, true, false, opISC},
	0xFC: {"NOP", AmAbsoluteX, 4, true, true, opNOP},
	0xFD: {"SBC", AmAbsoluteX, 4, false, true, opSBC},
	0xFE: {"INC", AmAbsoluteX, 7, false, false, opINC},
	0xFF: {"ISC", AmAbsoluteX, 7, true, false, opISC},
}
