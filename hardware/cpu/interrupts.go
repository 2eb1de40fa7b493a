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
	"github.com/gophernes/gophernes/hardware/cpu/execution"
	"github.com/gophernes/gophernes/hardware/memory/cpubus"
)

// Reset the CPU. The registers are set to their power-on values and the PC
// is loaded from the reset vector. The reset sequence takes seven cycles and
// the result is recorded in LastResult.
//
// The stack pointer is decremented three times during the sequence, as
// though the program counter and status register were being pushed, but
// nothing is written to memory.
func (mc *CPU) Reset() {
	mc.LastResult.Reset()
	mc.LastResult.Interrupt = execution.Reset
	mc.cycleCallback = NilCycleCallback

	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.SP.Load(0)
	mc.Status.Reset()

	mc.Killed = false
	mc.nmiLatch = false

	// the nil callback never returns an error so the errors from the reset
	// sequence can be safely ignored
	_, _ = mc.read8Bit(mc.PC.Address(), true)
	_, _ = mc.read8Bit(mc.PC.Address(), true)
	for range 3 {
		_ = mc.phantomStackRead()
		mc.SP.Decrement()
	}

	_ = mc.loadVector(cpubus.Reset)

	mc.LastResult.Final = true
}

// LoadPC loads the PC directly, without any bus activity.
func (mc *CPU) LoadPC(address uint16) {
	mc.PC.Load(address)
}

// loadVector reads the interrupt vector and places it in the PC.
func (mc *CPU) loadVector(vector uint16) error {
	lo, err := mc.read8Bit(vector, false)
	if err != nil {
		return err
	}
	hi, err := mc.read8Bit(vector+1, false)
	if err != nil {
		return err
	}
	mc.PC.Load((uint16(hi) << 8) | uint16(lo))
	return nil
}

// pushPC pushes the high byte of the PC and then the low byte.
func (mc *CPU) pushPC() error {
	if err := mc.push(mc.PC.Hi()); err != nil {
		return err
	}
	return mc.push(mc.PC.Lo())
}

// interrupt services a hardware interrupt. the sequence is the same as BRK
// except that the opcode fetch is discarded and the status register is
// pushed with the break flag clear.
func (mc *CPU) interrupt(irq execution.Interrupt) error {
	mc.LastResult.Interrupt = irq

	if _, err := mc.read8Bit(mc.PC.Address(), true); err != nil {
		return err
	}
	if _, err := mc.read8Bit(mc.PC.Address(), true); err != nil {
		return err
	}

	if err := mc.pushPC(); err != nil {
		return err
	}
	if err := mc.push(mc.Status.PushValue(false)); err != nil {
		return err
	}

	mc.Status.InterruptDisable = true

	vector := cpubus.IRQ
	if irq == execution.NMI {
		vector = cpubus.NMI
	}
	if err := mc.loadVector(vector); err != nil {
		return err
	}

	mc.LastResult.Final = true

	return nil
}

// brk is the software interrupt. the PC pushed to the stack points past the
// padding byte.
func (mc *CPU) brk() error {
	if err := mc.pushPC(); err != nil {
		return err
	}
	if err := mc.push(mc.Status.PushValue(true)); err != nil {
		return err
	}
	mc.Status.InterruptDisable = true
	return mc.loadVector(cpubus.BRK)
}

// rti restores the status register and the PC from the stack.
func (mc *CPU) rti() error {
	if err := mc.phantomStackRead(); err != nil {
		return err
	}

	v, err := mc.pull()
	if err != nil {
		return err
	}
	mc.Status.FromValue(v)

	lo, err := mc.pull()
	if err != nil {
		return err
	}
	hi, err := mc.pull()
	if err != nil {
		return err
	}
	mc.PC.Load((uint16(hi) << 8) | uint16(lo))

	return nil
}

// jsr pushes the address of the last byte of the instruction. the high byte
// of the target address is read after the push.
func (mc *CPU) jsr() error {
	lo, err := mc.read8BitPC()
	if err != nil {
		return err
	}
	mc.LastResult.InstructionData = uint16(lo)

	if err := mc.phantomStackRead(); err != nil {
		return err
	}

	if err := mc.pushPC(); err != nil {
		return err
	}

	hi, err := mc.read8BitPC()
	if err != nil {
		return err
	}
	mc.LastResult.InstructionData |= uint16(hi) << 8

	mc.PC.Load(mc.LastResult.InstructionData)

	return nil
}

// rts pulls the return address from the stack. the address points to the
// last byte of the JSR instruction so is incremented before the PC is loaded.
func (mc *CPU) rts() error {
	if err := mc.phantomStackRead(); err != nil {
		return err
	}

	lo, err := mc.pull()
	if err != nil {
		return err
	}
	hi, err := mc.pull()
	if err != nil {
		return err
	}

	address := (uint16(hi) << 8) | uint16(lo)
	if _, err := mc.read8Bit(address, true); err != nil {
		return err
	}
	mc.PC.Load(address + 1)

	return nil
}
