// This file is part of GopherNES.
//
// GopherNES is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherNES is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherNES.  If not, see <https://www.gnu.org/licenses/>.

package cpu_test

import (
	"testing"

	"github.com/gophernes/gophernes/curated"
	"github.com/gophernes/gophernes/hardware/cpu"
	"github.com/gophernes/gophernes/hardware/cpu/execution"
	"github.com/gophernes/gophernes/hardware/cpu/instructions"
	"github.com/gophernes/gophernes/hardware/memory/cpubus"
	"github.com/gophernes/gophernes/test"
)

func TestReset(t *testing.T) {
	mc, _ := newTestCPU()

	test.ExpectEquality(t, mc.PC.Address(), origin)
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xfd))
	test.ExpectEquality(t, mc.A.Value(), uint8(0))
	test.ExpectEquality(t, mc.X.Value(), uint8(0))
	test.ExpectEquality(t, mc.Y.Value(), uint8(0))
	test.ExpectEquality(t, mc.Status.Value(), uint8(0x24))
	test.ExpectEquality(t, mc.Status.String(), "nv--dIzc")
	test.ExpectEquality(t, mc.LastResult.Interrupt, execution.Reset)
	test.ExpectEquality(t, mc.LastResult.Cycles, 7)
	test.ExpectSuccess(t, mc.LastResult.IsValid())

	// registers are returned to the power-on values on every reset
	mc.A.Load(0x12)
	mc.SP.Load(0x40)
	mc.Status.Carry = true
	mc.Reset()
	test.ExpectEquality(t, mc.A.Value(), uint8(0))
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xfd))
	test.ExpectEquality(t, mc.Status.Value(), uint8(0x24))
}

func TestLoadStore(t *testing.T) {
	// LDA #$45; STA $00
	mc, mem := newTestCPU(0xa9, 0x45, 0x85, 0x00)

	test.ExpectEquality(t, step(t, mc), 2)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x45))
	test.ExpectEquality(t, step(t, mc), 3)
	mem.assert(t, 0x0000, 0x45)
	test.ExpectEquality(t, mc.Status.Zero, false)
	test.ExpectEquality(t, mc.Status.Sign, false)
	test.ExpectEquality(t, mc.LastResult.String(), "$8002 STA $00 [3]")
}

func TestZeroAndSign(t *testing.T) {
	for _, opcode := range []uint8{0xa9, 0xa2, 0xa0} {
		for r := range 256 {
			mc, _ := newTestCPU(opcode, uint8(r))
			step(t, mc)
			test.ExpectEquality(t, mc.Status.Zero, r == 0, opcode, r)
			test.ExpectEquality(t, mc.Status.Sign, r&0x80 == 0x80, opcode, r)
		}
	}
}

func TestStack(t *testing.T) {
	mem := newMockMem()
	address := origin
	for range 256 {
		address = mem.putInstructions(address, 0x48) // PHA
	}
	for range 256 {
		address = mem.putInstructions(address, 0x68) // PLA
	}

	mc := cpu.NewCPU(mem)
	mc.Reset()
	mc.SP.Load(0xff)

	for i := range 256 {
		mc.A.Load(uint8(i))
		test.ExpectEquality(t, step(t, mc), 3)
	}
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xff))

	for i := range 256 {
		test.ExpectEquality(t, step(t, mc), 4)
		test.ExpectEquality(t, mc.A.Value(), uint8(255-i))
	}
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xff))
}

func TestStatusStack(t *testing.T) {
	// SEC; PHP; CLC; PLP
	mc, mem := newTestCPU(0x38, 0x08, 0x18, 0x28)
	mc.SP.Load(0xff)

	step(t, mc)
	step(t, mc)

	// the break and unused bits are set in the pushed value
	mem.assert(t, 0x01ff, 0x35)

	step(t, mc)
	test.ExpectEquality(t, mc.Status.Carry, false)
	test.ExpectEquality(t, step(t, mc), 4)
	test.ExpectEquality(t, mc.Status.Carry, true)
	test.ExpectEquality(t, mc.Status.Value(), uint8(0x25))
}

func TestBranching(t *testing.T) {
	// branch not taken. LDA #0; BNE +5
	mc, _ := newTestCPU(0xa9, 0x00, 0xd0, 0x05)
	step(t, mc)
	test.ExpectEquality(t, step(t, mc), 2)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x8004))

	// branch taken on the same page. LDA #1; BNE +2
	mc, _ = newTestCPU(0xa9, 0x01, 0xd0, 0x02)
	step(t, mc)
	test.ExpectEquality(t, step(t, mc), 3)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x8006))
	test.ExpectEquality(t, mc.LastResult.BranchSuccess, true)
	test.ExpectEquality(t, mc.LastResult.PageFault, false)

	// branch taken across a page boundary
	mc, mem := newTestCPU()
	mem.putInstructions(0x80f0, 0xa9, 0x01, 0xd0, 0x10)
	mc.LoadPC(0x80f0)
	step(t, mc)
	test.ExpectEquality(t, step(t, mc), 4)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x8104))
	test.ExpectEquality(t, mc.LastResult.PageFault, true)

	// backwards branch across a page boundary. BNE -16
	mem.putInstructions(0x8104, 0xd0, 0xf0)
	test.ExpectEquality(t, step(t, mc), 4)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x80f6))

	// backwards branch to self. BEQ -2 with zero flag set
	mc, _ = newTestCPU(0xa9, 0x00, 0xf0, 0xfe)
	step(t, mc)
	test.ExpectEquality(t, step(t, mc), 3)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x8002))
}

func TestPageCross(t *testing.T) {
	defns := instructions.GetDefinitions()

	for _, defn := range defns {
		if !defn.PageSensitive || defn.IsBranch() {
			continue
		}

		for _, cross := range []bool{false, true} {
			mc, mem := newTestCPU()
			mc.X.Load(0x10)
			mc.Y.Load(0x10)

			lo := uint8(0x00)
			if cross {
				lo = 0xf8
			}

			switch defn.AddressingMode {
			case instructions.AbsoluteIndexedX, instructions.AbsoluteIndexedY:
				mem.putInstructions(origin, defn.OpCode, lo, 0x20)
			case instructions.IndirectIndexed:
				mem.putInstructions(origin, defn.OpCode, 0x40)
				mem.putInstructions(0x0040, lo, 0x20)
			default:
				t.Fatalf("unexpected page sensitive addressing mode for %s", defn)
			}

			expected := defn.Cycles
			if cross {
				expected++
			}
			test.ExpectEquality(t, step(t, mc), expected, defn.String(), cross)
			test.ExpectEquality(t, mc.LastResult.PageFault, cross, defn.String())
		}
	}
}

func TestAllOpcodes(t *testing.T) {
	defns := instructions.GetDefinitions()

	for i := range 256 {
		mc, mem := newTestCPU(uint8(i), 0x10, 0x20)
		mem.putVector(cpubus.IRQ, 0x9000)
		mc.X.Load(0x01)
		mc.Y.Load(0x02)

		step(t, mc)
		test.ExpectEquality(t, mc.LastResult.Defn.OpCode, uint8(i))
		test.ExpectEquality(t, mc.LastResult.Defn, &defns[i])
		test.ExpectEquality(t, mc.LastResult.Final, true)
		test.ExpectEquality(t, mc.Killed, defns[i].Operator == instructions.KIL, defns[i].String())
	}
}

func TestLengthOfInstructions(t *testing.T) {
	for i, defn := range instructions.GetDefinitions() {
		if defn.Effect == instructions.Flow || defn.Effect == instructions.Subroutine || defn.Effect == instructions.Interrupt {
			continue
		}
		if defn.Operator == instructions.KIL {
			continue
		}

		mc, _ := newTestCPU(uint8(i), 0x10, 0x20)
		step(t, mc)
		test.ExpectEquality(t, mc.PC.Address(), origin+uint16(defn.Bytes), defn.String())
	}
}

func TestBRK(t *testing.T) {
	mc, mem := newTestCPU(0x00)
	mem.putVector(cpubus.BRK, 0x9000)
	mc.SP.Load(0xff)

	test.ExpectEquality(t, step(t, mc), 7)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x9000))
	test.ExpectEquality(t, mc.Status.InterruptDisable, true)
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xfc))
	mem.assert(t, 0x01ff, 0x80)
	mem.assert(t, 0x01fe, 0x02)
	test.ExpectEquality(t, mem.internal[0x01fd]&0x10, uint8(0x10))

	// RTI returns to the byte after the padding byte
	mc.Status.Carry = true
	mem.putInstructions(0x9000, 0x40)
	test.ExpectEquality(t, step(t, mc), 6)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x8002))
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xff))
	test.ExpectEquality(t, mc.Status.Carry, false)
}

func TestNMI(t *testing.T) {
	// NOP; NOP
	mc, mem := newTestCPU(0xea, 0xea)
	mem.putVector(cpubus.NMI, 0xa000)
	mem.putInstructions(0xa000, 0xea)
	mc.SP.Load(0xff)

	// the NMI is not masked by the interrupt disable flag
	test.ExpectEquality(t, mc.Status.InterruptDisable, true)

	mc.AssertNMI()
	test.ExpectEquality(t, mc.NMIPending(), true)
	test.ExpectEquality(t, step(t, mc), 7)
	test.ExpectEquality(t, mc.LastResult.Interrupt, execution.NMI)
	test.ExpectEquality(t, mc.LastResult.String(), "NMI [7]")
	test.ExpectEquality(t, mc.PC.Address(), uint16(0xa000))
	test.ExpectEquality(t, mc.NMIPending(), false)
	mem.assert(t, 0x01ff, 0x80)
	mem.assert(t, 0x01fe, 0x00)
	test.ExpectEquality(t, mem.internal[0x01fd]&0x10, uint8(0x00))

	// the NMI is serviced once only
	step(t, mc)
	test.ExpectEquality(t, mc.LastResult.Interrupt, execution.NoInterrupt)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0xa001))
}

func TestIRQ(t *testing.T) {
	// CLI; NOP
	mc, mem := newTestCPU(0x58, 0xea)
	mem.putVector(cpubus.IRQ, 0xb000)
	mem.putInstructions(0xb000, 0xea)
	mc.SP.Load(0xff)

	// the interrupt disable flag is set after reset so the IRQ is masked
	mc.AssertIRQ()
	test.ExpectEquality(t, step(t, mc), 2)
	test.ExpectEquality(t, mc.LastResult.Interrupt, execution.NoInterrupt)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x8001))

	// the interrupt is taken now that the flag is clear
	test.ExpectEquality(t, step(t, mc), 7)
	test.ExpectEquality(t, mc.LastResult.Interrupt, execution.IRQ)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0xb000))
	test.ExpectEquality(t, mc.Status.InterruptDisable, true)
	mem.assert(t, 0x01fd, 0x20)

	// the line is still asserted but the flag masks the interrupt
	step(t, mc)
	test.ExpectEquality(t, mc.LastResult.Interrupt, execution.NoInterrupt)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0xb001))

	mc.ReleaseIRQ()
	test.ExpectEquality(t, mc.IRQAsserted(), false)
}

func TestSubroutine(t *testing.T) {
	// JSR $9000
	mc, mem := newTestCPU(0x20, 0x00, 0x90)
	mem.putInstructions(0x9000, 0x60) // RTS
	mc.SP.Load(0xff)

	test.ExpectEquality(t, step(t, mc), 6)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x9000))
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xfd))
	mem.assert(t, 0x01ff, 0x80)
	mem.assert(t, 0x01fe, 0x02)

	test.ExpectEquality(t, step(t, mc), 6)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x8003))
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xff))
}

func TestJumps(t *testing.T) {
	// JMP $9000
	mc, _ := newTestCPU(0x4c, 0x00, 0x90)
	test.ExpectEquality(t, step(t, mc), 3)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x9000))

	// JMP ($3000)
	mc, mem := newTestCPU(0x6c, 0x00, 0x30)
	mem.putInstructions(0x3000, 0x40, 0x90)
	test.ExpectEquality(t, step(t, mc), 5)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x9040))
	test.ExpectEquality(t, mc.LastResult.CPUBug, execution.NoBug)

	// JMP ($30ff) takes the high byte from $3000 and not $3100
	mc, mem = newTestCPU(0x6c, 0xff, 0x30)
	mem.putInstructions(0x30ff, 0x40)
	mem.putInstructions(0x3000, 0x80)
	mem.putInstructions(0x3100, 0x50)
	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x8040))
	test.ExpectEquality(t, mc.LastResult.CPUBug, execution.JmpIndirectAddressingBug)
}

func TestArithmetic(t *testing.T) {
	// LDA #$50; ADC #$50
	mc, _ := newTestCPU(0xa9, 0x50, 0x69, 0x50)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0xa0))
	test.ExpectEquality(t, mc.Status.Overflow, true)
	test.ExpectEquality(t, mc.Status.Carry, false)
	test.ExpectEquality(t, mc.Status.Sign, true)

	// SEC; LDA #$50; SBC #$f0
	mc, _ = newTestCPU(0x38, 0xa9, 0x50, 0xe9, 0xf0)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x60))
	test.ExpectEquality(t, mc.Status.Carry, false)
	test.ExpectEquality(t, mc.Status.Overflow, false)

	// the decimal flag has no effect. SED; CLC; LDA #$09; ADC #$01
	mc, _ = newTestCPU(0xf8, 0x18, 0xa9, 0x09, 0x69, 0x01)
	for range 4 {
		step(t, mc)
	}
	test.ExpectEquality(t, mc.Status.DecimalMode, true)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x0a))

	// CMP. LDA #$40; CMP #$40; CMP #$41
	mc, _ = newTestCPU(0xa9, 0x40, 0xc9, 0x40, 0xc9, 0x41)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.Status.Zero, true)
	test.ExpectEquality(t, mc.Status.Carry, true)
	step(t, mc)
	test.ExpectEquality(t, mc.Status.Zero, false)
	test.ExpectEquality(t, mc.Status.Carry, false)
	test.ExpectEquality(t, mc.Status.Sign, true)
}

func TestBit(t *testing.T) {
	// LDA #$01; BIT $10
	mc, mem := newTestCPU(0xa9, 0x01, 0x24, 0x10)
	mem.putInstructions(0x0010, 0xc0)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.Status.Sign, true)
	test.ExpectEquality(t, mc.Status.Overflow, true)
	test.ExpectEquality(t, mc.Status.Zero, true)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x01))
}

func TestReadModifyWrite(t *testing.T) {
	// INC $10
	mc, mem := newTestCPU(0xe6, 0x10)
	mem.putInstructions(0x0010, 0x05)
	mem.writes = mem.writes[:0]

	test.ExpectEquality(t, step(t, mc), 5)
	mem.assert(t, 0x0010, 0x06)

	// the unmodified value is written before the modified value
	test.DemandEquality(t, len(mem.writes), 2)
	test.ExpectEquality(t, mem.writes[0], access{address: 0x0010, data: 0x05})
	test.ExpectEquality(t, mem.writes[1], access{address: 0x0010, data: 0x06})

	// ROR A
	mc, _ = newTestCPU(0x38, 0xa9, 0x02, 0x6a)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, step(t, mc), 2)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x81))
	test.ExpectEquality(t, mc.Status.Carry, false)
	test.ExpectEquality(t, mc.Status.Sign, true)
}

func TestIndexedAddressing(t *testing.T) {
	// LDX #$01; LDA ($10,X)
	mc, mem := newTestCPU(0xa2, 0x01, 0xa1, 0x10)
	mem.putInstructions(0x0011, 0x00, 0x30)
	mem.putInstructions(0x3000, 0x99)
	step(t, mc)
	test.ExpectEquality(t, step(t, mc), 6)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x99))

	// the zero page pointer wraps around. LDX #$01; LDA ($ff,X)
	mc, mem = newTestCPU(0xa2, 0x01, 0xa1, 0xff)
	mem.putInstructions(0x0000, 0x00, 0x31)
	mem.putInstructions(0x3100, 0x77)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x77))

	// zero page indexing wraps around. LDX #$02; LDA $ff,X
	mc, mem = newTestCPU(0xa2, 0x02, 0xb5, 0xff)
	mem.putInstructions(0x0001, 0x55)
	mem.putInstructions(0x0101, 0x66)
	step(t, mc)
	test.ExpectEquality(t, step(t, mc), 4)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x55))

	// stores always take the extra cycle. LDX #$01; STA $2000,X
	mc, mem = newTestCPU(0xa2, 0x01, 0x9d, 0x00, 0x20)
	mc.A.Load(0x42)
	step(t, mc)
	test.ExpectEquality(t, step(t, mc), 5)
	mem.assert(t, 0x2001, 0x42)
}

func TestKIL(t *testing.T) {
	mc, _ := newTestCPU(0x02)
	step(t, mc)
	test.ExpectEquality(t, mc.Killed, true)

	pc := mc.PC.Address()
	test.ExpectEquality(t, mc.Step(), 1)
	test.ExpectEquality(t, mc.PC.Address(), pc)

	// interrupts do not revive the CPU
	mc.AssertNMI()
	test.ExpectEquality(t, mc.Step(), 1)
	test.ExpectEquality(t, mc.PC.Address(), pc)

	mc.Reset()
	test.ExpectEquality(t, mc.Killed, false)
	test.ExpectEquality(t, mc.NMIPending(), false)
}

func TestCycleCallbackError(t *testing.T) {
	// LDA $1000
	mc, _ := newTestCPU(0xad, 0x00, 0x10)

	var n int
	err := mc.ExecuteInstruction(func() error {
		n++
		if n == 2 {
			return curated.Errorf("test error")
		}
		return nil
	})
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, "test error"), true)
	test.ExpectEquality(t, mc.LastResult.Final, false)
}

func TestStep(t *testing.T) {
	// NOP; LDA $1000,X
	mc, _ := newTestCPU(0xea, 0xbd, 0xff, 0x10)
	mc.X.Load(0x01)
	test.ExpectEquality(t, mc.Step(), 2)
	test.ExpectEquality(t, mc.Step(), 5)
}
