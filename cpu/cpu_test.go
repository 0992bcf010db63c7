package cpu

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-test/deep"

	"github.com/voidkernel/m6502/bus"
)

const (
	testReset = uint16(0x1000)
	testIRQ   = uint16(0x2000)
	testNMI   = uint16(0x3000)
)

// newTestChip wires a flat 64KB RAM bus with fixed vectors so every test
// starts from a known reset state without depending on PowerOn's
// randomized fill.
func newTestChip(t *testing.T, variant Variant, policy IllegalPolicy) (*Chip, *bus.RAM) {
	t.Helper()
	r := bus.NewRAM()
	r.LoadVector(resetVector, testReset)
	r.LoadVector(irqVector, testIRQ)
	r.LoadVector(nmiVector, testNMI)
	c, err := New(ChipDef{Bus: r, Variant: variant, IllegalPolicy: policy})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c, r
}

func TestReset(t *testing.T) {
	c, _ := newTestChip(t, VariantNMOS, PolicyExecute)
	if c.PC != testReset {
		t.Errorf("PC after reset = %04X, want %04X", c.PC, testReset)
	}
	if c.SP != 0xFD {
		t.Errorf("SP after reset = %02X, want FD", c.SP)
	}
	if c.P != powerOnP {
		t.Errorf("P after reset = %02X, want %02X", c.P, powerOnP)
	}
	if c.Cycles() != 8 {
		t.Errorf("Cycles after reset = %d, want 8 (the reset sequence itself is charged)", c.Cycles())
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	r := bus.NewRAM()
	if _, err := New(ChipDef{Bus: nil, Variant: VariantNMOS, IllegalPolicy: PolicyExecute}); err == nil {
		t.Error("New with nil bus: got nil error, want one")
	}
	if _, err := New(ChipDef{Bus: r, Variant: 99, IllegalPolicy: PolicyExecute}); err == nil {
		t.Error("New with invalid variant: got nil error, want one")
	}
	if _, err := New(ChipDef{Bus: r, Variant: VariantNMOS, IllegalPolicy: 99}); err == nil {
		t.Error("New with invalid illegal policy: got nil error, want one")
	}
}

func TestLoadImmediateAndFlags(t *testing.T) {
	tests := []struct {
		name    string
		opcode  uint8
		operand uint8
		wantZ   bool
		wantN   bool
	}{
		{"LDA zero", 0xA9, 0x00, true, false},
		{"LDA negative", 0xA9, 0x80, false, true},
		{"LDA positive", 0xA9, 0x42, false, false},
		{"LDX zero", 0xA2, 0x00, true, false},
		{"LDY negative", 0xA0, 0xFF, false, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, r := newTestChip(t, VariantNMOS, PolicyExecute)
			r.LoadBytes(testReset, []uint8{tc.opcode, tc.operand})
			if _, err := c.Step(); err != nil {
				t.Fatalf("Step: %v\n%s", err, spew.Sdump(c))
			}
			if got := c.P&flagZero != 0; got != tc.wantZ {
				t.Errorf("Z = %v, want %v\n%s", got, tc.wantZ, spew.Sdump(c))
			}
			if got := c.P&flagNegative != 0; got != tc.wantN {
				t.Errorf("N = %v, want %v\n%s", got, tc.wantN, spew.Sdump(c))
			}
		})
	}
}

func TestZeroPageWraparound(t *testing.T) {
	c, r := newTestChip(t, VariantNMOS, PolicyExecute)
	c.X = 0x01
	r.LoadBytes(testReset, []uint8{0xB5, 0xFF}) // LDA $FF,X -> reads $00
	r.LoadBytes(0x0000, []uint8{0x77})
	if _, err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.A != 0x77 {
		t.Errorf("A = %02X, want 77", c.A)
	}
}

func TestIndirectJMPPageWrapBug(t *testing.T) {
	c, r := newTestChip(t, VariantNMOS, PolicyExecute)
	r.LoadBytes(testReset, []uint8{0x6C, 0xFF, 0x02}) // JMP ($02FF)
	r.Write(0x02FF, 0x34)
	r.Write(0x0200, 0x12) // high byte comes from 0x0200, not 0x0300
	r.Write(0x0300, 0xFF) // if the bug weren't modeled, this would be read instead
	if _, err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.PC != 0x1234 {
		t.Errorf("PC = %04X, want 1234", c.PC)
	}
}

func TestPageCrossCycleCost(t *testing.T) {
	tests := []struct {
		name       string
		x          uint8
		wantCycles uint8
	}{
		{"no page cross", 0x01, 4},
		{"page cross", 0xFF, 5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, r := newTestChip(t, VariantNMOS, PolicyExecute)
			c.X = tc.x
			r.LoadBytes(testReset, []uint8{0xBD, 0x01, 0x02}) // LDA $0201,X
			cycles, err := c.Step()
			if err != nil {
				t.Fatalf("Step: %v", err)
			}
			if cycles != tc.wantCycles {
				t.Errorf("cycles = %d, want %d", cycles, tc.wantCycles)
			}
		})
	}
}

func TestBranchCycleCost(t *testing.T) {
	tests := []struct {
		name       string
		zeroFlag   bool
		offset     uint8
		pc         uint16
		wantCycles uint8
	}{
		{"not taken", false, 0x10, 0x1000, 2},
		{"taken same page", true, 0x10, 0x1000, 3},
		{"taken crosses page", true, 0x10, 0x10F0, 4},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, r := newTestChip(t, VariantNMOS, PolicyExecute)
			r.LoadVector(resetVector, tc.pc)
			c.Reset()
			r.LoadBytes(tc.pc, []uint8{0xF0, tc.offset}) // BEQ offset
			if tc.zeroFlag {
				c.P |= flagZero
			} else {
				c.P &^= flagZero
			}
			cycles, err := c.Step()
			if err != nil {
				t.Fatalf("Step: %v", err)
			}
			if cycles != tc.wantCycles {
				t.Errorf("cycles = %d, want %d", cycles, tc.wantCycles)
			}
		})
	}
}

func TestBCDAddition(t *testing.T) {
	tests := []struct {
		name     string
		a, val   uint8
		carry    bool
		wantA    uint8
		wantC    bool
	}{
		{"9+1=10", 0x09, 0x01, false, 0x10, false},
		{"99+1=00 carry", 0x99, 0x01, false, 0x00, true},
		{"50+50=100 carry", 0x50, 0x50, false, 0x00, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, r := newTestChip(t, VariantNMOS, PolicyExecute)
			c.A = tc.a
			c.P |= flagDecimal
			if tc.carry {
				c.P |= flagCarry
			} else {
				c.P &^= flagCarry
			}
			r.LoadBytes(testReset, []uint8{0x69, tc.val}) // ADC #val
			if _, err := c.Step(); err != nil {
				t.Fatalf("Step: %v", err)
			}
			if c.A != tc.wantA {
				t.Errorf("A = %02X, want %02X\n%s", c.A, tc.wantA, spew.Sdump(c))
			}
			if got := c.P&flagCarry != 0; got != tc.wantC {
				t.Errorf("C = %v, want %v", got, tc.wantC)
			}
		})
	}
}

func TestNESVariantSkipsBCD(t *testing.T) {
	c, r := newTestChip(t, VariantNES, PolicyExecute)
	c.A = 0x09
	c.P |= flagDecimal
	r.LoadBytes(testReset, []uint8{0x69, 0x01}) // ADC #1
	if _, err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.A != 0x0A {
		t.Errorf("NES ADC with D set: A = %02X, want 0A (binary result)", c.A)
	}
}

func TestBinaryADCOverflow(t *testing.T) {
	c, r := newTestChip(t, VariantNMOS, PolicyExecute)
	r.LoadBytes(testReset, []uint8{0xA9, 0x7F, 0x69, 0x01}) // LDA #$7F; ADC #$01
	if _, err := c.Step(); err != nil {
		t.Fatalf("Step (LDA): %v", err)
	}
	if _, err := c.Step(); err != nil {
		t.Fatalf("Step (ADC): %v", err)
	}
	if c.A != 0x80 {
		t.Errorf("A = %02X, want 80", c.A)
	}
	if c.P&flagOverflow == 0 {
		t.Errorf("V not set after 7F+01 signed overflow\n%s", spew.Sdump(c))
	}
	if c.P&flagNegative == 0 {
		t.Errorf("N not set after 7F+01 (result 80)")
	}
	if c.P&flagCarry != 0 {
		t.Errorf("C set after 7F+01, want clear (no unsigned overflow)")
	}
}

func TestPHPPLPRoundTrip(t *testing.T) {
	c, r := newTestChip(t, VariantNMOS, PolicyExecute)
	c.P = flagCarry | flagZero | flagNegative | flagUnused
	want := c.P
	r.LoadBytes(testReset, []uint8{0x08, 0x28}) // PHP; PLP
	if _, err := c.Step(); err != nil {
		t.Fatalf("Step (PHP): %v", err)
	}
	if _, err := c.Step(); err != nil {
		t.Fatalf("Step (PLP): %v", err)
	}
	if c.P != want {
		t.Errorf("P after PHP/PLP round trip = %02X, want %02X", c.P, want)
	}
}

func TestStackPushPull(t *testing.T) {
	c, _ := newTestChip(t, VariantNMOS, PolicyExecute)
	sp := c.SP
	c.A = 0x42
	c.push(c.A)
	if c.SP != sp-1 {
		t.Errorf("SP after push = %02X, want %02X", c.SP, sp-1)
	}
	got := c.pop()
	if got != 0x42 {
		t.Errorf("pop = %02X, want 42", got)
	}
	if c.SP != sp {
		t.Errorf("SP after pop = %02X, want %02X", c.SP, sp)
	}
}

func TestJSRRTS(t *testing.T) {
	c, r := newTestChip(t, VariantNMOS, PolicyExecute)
	r.LoadBytes(testReset, []uint8{0x20, 0x00, 0x20}) // JSR $2000
	r.LoadBytes(0x2000, []uint8{0x60})                // RTS
	if _, err := c.Step(); err != nil {
		t.Fatalf("JSR Step: %v", err)
	}
	if c.PC != 0x2000 {
		t.Fatalf("PC after JSR = %04X, want 2000", c.PC)
	}
	if _, err := c.Step(); err != nil {
		t.Fatalf("RTS Step: %v", err)
	}
	if c.PC != testReset+3 {
		t.Errorf("PC after RTS = %04X, want %04X", c.PC, testReset+3)
	}
}

func TestBRKAndRTI(t *testing.T) {
	c, r := newTestChip(t, VariantNMOS, PolicyExecute)
	r.LoadBytes(testReset, []uint8{0x00, 0x00}) // BRK + padding byte
	r.LoadBytes(testIRQ, []uint8{0x40})         // RTI
	if _, err := c.Step(); err != nil {
		t.Fatalf("BRK Step: %v", err)
	}
	if c.PC != testIRQ {
		t.Fatalf("PC after BRK = %04X, want %04X", c.PC, testIRQ)
	}
	if c.P&flagInterrupt == 0 {
		t.Error("I flag not set after BRK")
	}
	if _, err := c.Step(); err != nil {
		t.Fatalf("RTI Step: %v", err)
	}
	if c.PC != testReset+2 {
		t.Errorf("PC after RTI = %04X, want %04X", c.PC, testReset+2)
	}
}

func TestIRQRespectsI(t *testing.T) {
	c, r := newTestChip(t, VariantNMOS, PolicyExecute)
	r.LoadBytes(testReset, []uint8{0xEA, 0xEA, 0xEA}) // NOP NOP NOP
	c.P |= flagInterrupt
	c.SetIRQ(true)
	if _, err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.PC != testReset+1 {
		t.Errorf("IRQ serviced while I set: PC = %04X, want %04X", c.PC, testReset+1)
	}

	c.P &^= flagInterrupt
	if _, err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.PC != testIRQ {
		t.Errorf("IRQ not serviced once I cleared: PC = %04X, want %04X", c.PC, testIRQ)
	}
}

func TestNMIAlwaysServiced(t *testing.T) {
	c, r := newTestChip(t, VariantNMOS, PolicyExecute)
	r.LoadBytes(testReset, []uint8{0xEA}) // NOP
	c.P |= flagInterrupt
	c.TriggerNMI()
	if _, err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.PC != testNMI {
		t.Errorf("PC = %04X, want %04X", c.PC, testNMI)
	}
}

func TestHaltOpcode(t *testing.T) {
	c, r := newTestChip(t, VariantNMOS, PolicyExecute)
	r.LoadBytes(testReset, []uint8{0x02}) // KIL
	if _, err := c.Step(); err != nil {
		t.Fatalf("first Step: %v", err)
	}
	if _, err := c.Step(); err == nil {
		t.Fatal("Step after halt: got nil error, want HaltError")
	} else if _, ok := err.(HaltError); !ok {
		t.Errorf("Step after halt: got %T, want HaltError", err)
	}
	c.Reset()
	if _, err := c.Step(); err != nil {
		t.Fatalf("Step after Reset cleared halt: %v", err)
	}
}

func TestIllegalOpcodePolicyPanic(t *testing.T) {
	c, r := newTestChip(t, VariantNMOS, PolicyPanic)
	r.LoadBytes(testReset, []uint8{0x03}) // SLO, undocumented
	_, err := c.Step()
	if err == nil {
		t.Fatal("Step: got nil error, want IllegalOpcodeError")
	}
	if _, ok := err.(IllegalOpcodeError); !ok {
		t.Errorf("Step: got %T, want IllegalOpcodeError", err)
	}
}

func TestCMOSIllegalOpcodesBecomeNOPs(t *testing.T) {
	c, r := newTestChip(t, VariantCMOS, PolicyExecute)
	c.A = 0x11
	r.LoadBytes(testReset, []uint8{0x03, 0x00}) // SLO (zp,x) on NMOS, NOP on CMOS
	if _, err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.A != 0x11 {
		t.Errorf("A mutated by ex-illegal opcode on CMOS: A = %02X, want 11", c.A)
	}
}

func TestClockMatchesStepCycleCount(t *testing.T) {
	c, r := newTestChip(t, VariantNMOS, PolicyExecute)
	r.LoadBytes(testReset, []uint8{0xA9, 0x01}) // LDA #1, 2 cycles
	boundaries := 0
	for i := 0; i < 2; i++ {
		done, err := c.Clock()
		if err != nil {
			t.Fatalf("Clock: %v", err)
		}
		if done {
			boundaries++
		}
	}
	if boundaries != 1 {
		t.Errorf("instruction boundaries over 2 ticks = %d, want 1", boundaries)
	}
	if c.A != 0x01 {
		t.Errorf("A after 2 ticks = %02X, want 01", c.A)
	}
}

// TestClockAndStepReachIdenticalState runs the same program through a
// Step-driven core and a Clock-driven core and diffs the resulting
// register/flag/PC state, guarding against Clock's cycle-spending logic
// silently diverging from a plain Step loop.
func TestClockAndStepReachIdenticalState(t *testing.T) {
	program := []uint8{
		0xA9, 0x7F, // LDA #$7F
		0x18,       // CLC
		0x69, 0x01, // ADC #$01
		0x85, 0x10, // STA $10
		0xE6, 0x10, // INC $10
	}

	stepped, stepBus := newTestChip(t, VariantNMOS, PolicyExecute)
	stepBus.LoadBytes(testReset, program)
	for totalSteps := 0; totalSteps < 5; totalSteps++ {
		if _, err := stepped.Step(); err != nil {
			t.Fatalf("Step: %v", err)
		}
	}

	clocked, clockBus := newTestChip(t, VariantNMOS, PolicyExecute)
	clockBus.LoadBytes(testReset, program)
	instructionsRun := 0
	for instructionsRun < 5 {
		done, err := clocked.Clock()
		if err != nil {
			t.Fatalf("Clock: %v", err)
		}
		if done {
			instructionsRun++
		}
	}

	if diff := deep.Equal(stepped, clocked); diff != nil {
		t.Errorf("Step-driven and Clock-driven state diverged: %v", diff)
	}
}
