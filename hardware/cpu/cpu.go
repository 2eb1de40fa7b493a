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

package cpu

import (
	"fmt"

	"github.com/gophernes/gophernes/hardware/cpu/execution"
	"github.com/gophernes/gophernes/hardware/cpu/instructions"
	"github.com/gophernes/gophernes/hardware/cpu/registers"
	"github.com/gophernes/gophernes/hardware/memory/cpubus"
)

// CPU implements the 2A03 as found in the NES. Register logic is implemented
// by the types in the registers sub-package.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.StatusRegister

	mem          cpubus.Memory
	instructions *[256]instructions.Definition

	// cycleCallback is called after every memory access
	cycleCallback func() error

	// the result of the most recent instruction or interrupt sequence
	LastResult execution.Result

	// whether the last memory access by the CPU was a phantom access
	PhantomMemAccess bool

	// the cpu has encountered a KIL instruction. requires a Reset()
	Killed bool

	// interrupt lines. the NMI line is latched on assertion and the latch is
	// cleared when the interrupt is serviced
	nmiLatch bool
	irqLine  bool
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// CPU should be Reset() before executing any instructions.
func NewCPU(mem cpubus.Memory) *CPU {
	return &CPU{
		mem:          mem,
		A:            registers.NewRegister(0, "A"),
		X:            registers.NewRegister(0, "X"),
		Y:            registers.NewRegister(0, "Y"),
		instructions: instructions.GetDefinitions(),
	}
}

// Plumb a new memory bus into the CPU.
func (mc *CPU) Plumb(mem cpubus.Memory) {
	mc.mem = mem
}

// Snapshot creates a copy of the CPU in its current state. The copy is
// plumbed into the same memory as the original.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	return &n
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s %s %s %s %s=%s",
		mc.PC.Label(), mc.PC, mc.A, mc.X, mc.Y,
		mc.SP, mc.Status.Label(), mc.Status)
}

// NilCycleCallback can be provided as an argument to ExecuteInstruction().
// It's a convenient do-nothing function.
func NilCycleCallback() error {
	return nil
}

// Step executes one instruction, or services one interrupt, and returns the
// number of cycles taken.
func (mc *CPU) Step() int {
	// the nil callback never returns an error
	_ = mc.ExecuteInstruction(NilCycleCallback)
	return mc.LastResult.Cycles
}

// AssertNMI signals the NMI line. The interrupt will be serviced before the
// next instruction.
func (mc *CPU) AssertNMI() {
	mc.nmiLatch = true
}

// AssertIRQ pulls the IRQ line low. The line stays asserted until
// ReleaseIRQ() is called.
func (mc *CPU) AssertIRQ() {
	mc.irqLine = true
}

// ReleaseIRQ releases the IRQ line.
func (mc *CPU) ReleaseIRQ() {
	mc.irqLine = false
}

// IRQAsserted returns the state of the IRQ line.
func (mc *CPU) IRQAsserted() bool {
	return mc.irqLine
}

// NMIPending returns true if an NMI has been asserted but not yet serviced.
func (mc *CPU) NMIPending() bool {
	return mc.nmiLatch
}

// cycle is called after every memory access.
func (mc *CPU) cycle() error {
	mc.LastResult.Cycles++
	return mc.cycleCallback()
}

// read8Bit returns 8bit value from the specified address
//
// side-effects:
//   - calls cycleCallback after memory read
func (mc *CPU) read8Bit(address uint16, phantom bool) (uint8, error) {
	mc.PhantomMemAccess = phantom
	v := mc.mem.Read(address)
	return v, mc.cycle()
}

// write8Bit writes 8 bits to the specified address
//
// side-effects:
//   - calls cycleCallback after memory write
func (mc *CPU) write8Bit(address uint16, value uint8, phantom bool) error {
	mc.PhantomMemAccess = phantom
	mc.mem.Write(address, value)
	return mc.cycle()
}

// read8BitPC reads 8 bits from the memory location pointed to by PC
//
// side-effects:
//   - updates program counter
//   - updates LastResult.ByteCount
//   - calls cycleCallback after memory read
func (mc *CPU) read8BitPC() (uint8, error) {
	mc.PhantomMemAccess = false
	v := mc.mem.Read(mc.PC.Address())
	mc.PC.Add(1)
	mc.LastResult.ByteCount++
	return v, mc.cycle()
}

// read16BitPC reads 16 bits from the memory location pointed to by PC. The
// InstructionData field of LastResult is updated with the operand.
//
// side-effects:
//   - as for read8BitPC() but for two memory reads
func (mc *CPU) read16BitPC() (uint16, error) {
	lo, err := mc.read8BitPC()
	if err != nil {
		return 0, err
	}
	mc.LastResult.InstructionData = uint16(lo)

	hi, err := mc.read8BitPC()
	if err != nil {
		return 0, err
	}
	mc.LastResult.InstructionData |= uint16(hi) << 8

	return mc.LastResult.InstructionData, nil
}

// push value onto the stack. the stack pointer is decremented after the
// write and wraps around within the stack page.
func (mc *CPU) push(value uint8) error {
	err := mc.write8Bit(mc.SP.Address(), value, false)
	mc.SP.Decrement()
	return err
}

// pull value from the stack. the stack pointer is incremented before the
// read and wraps around within the stack page.
func (mc *CPU) pull() (uint8, error) {
	mc.SP.Increment()
	return mc.read8Bit(mc.SP.Address(), false)
}

// the stack is read without moving the stack pointer while the CPU is busy
// with the stack pointer adjustment.
func (mc *CPU) phantomStackRead() error {
	_, err := mc.read8Bit(mc.SP.Address(), true)
	return err
}
