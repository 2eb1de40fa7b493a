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
	"github.com/gophernes/gophernes/curated"
	"github.com/gophernes/gophernes/hardware/cpu/execution"
	"github.com/gophernes/gophernes/hardware/cpu/instructions"
	"github.com/gophernes/gophernes/hardware/cpu/registers"
	"github.com/gophernes/gophernes/logger"
)

// ExecuteInstruction steps CPU forward one instruction. The basic process when
// executing an instruction is this:
//
//  1. check for pending interrupts and service them instead of an instruction
//  2. read opcode and look up instruction definition
//  3. read operands (if any) according to the addressing mode of the instruction
//  4. using the operator as a guide, perform the instruction on the data
//
// All instructions take at least 2 cycles. After each cycle, the
// cycleCallback() function is run, thereby allowing the rest of the hardware
// to keep in step with the CPU.
//
// Errors are only ever returned by the cycleCallback function.
func (mc *CPU) ExecuteInstruction(cycleCallback func() error) error {
	mc.cycleCallback = cycleCallback

	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	// a jammed CPU does nothing but burn cycles until it is reset
	if mc.Killed {
		mc.PhantomMemAccess = false
		if err := mc.cycle(); err != nil {
			return err
		}
		mc.LastResult.Final = true
		return nil
	}

	// NMI takes priority over IRQ
	if mc.nmiLatch {
		mc.nmiLatch = false
		return mc.interrupt(execution.NMI)
	}
	if mc.irqLine && !mc.Status.InterruptDisable {
		return mc.interrupt(execution.IRQ)
	}

	// read next instruction (end of cycle 1)
	operator, err := mc.read8BitPC()
	if err != nil {
		return err
	}
	defn := &mc.instructions[operator]
	mc.LastResult.Defn = defn

	// the address and value the instruction works on. not all instructions
	// use both
	var address uint16
	var value uint8

	// the high byte of the base address before indexing. used by the
	// unstable store instructions
	var baseHi uint8

	switch defn.AddressingMode {
	case instructions.Implied:
		if defn.Operator == instructions.Brk {
			// BRK is a two byte instruction. the second byte is padding
			if _, err := mc.read8BitPC(); err != nil {
				return err
			}
		} else {
			if _, err := mc.read8Bit(mc.PC.Address(), true); err != nil {
				return err
			}
		}

	case instructions.Accumulator:
		if _, err := mc.read8Bit(mc.PC.Address(), true); err != nil {
			return err
		}
		value = mc.A.Value()

	case instructions.Immediate:
		value, err = mc.read8BitPC()
		if err != nil {
			return err
		}
		mc.LastResult.InstructionData = uint16(value)

	case instructions.Relative:
		v, err := mc.read8BitPC()
		if err != nil {
			return err
		}
		mc.LastResult.InstructionData = uint16(v)
		address = uint16(v)

	case instructions.Absolute:
		// JSR reads its operand in an unusual order and is handled along
		// with the operator
		if defn.Operator != instructions.Jsr {
			address, err = mc.read16BitPC()
			if err != nil {
				return err
			}
		}

	case instructions.ZeroPage:
		v, err := mc.read8BitPC()
		if err != nil {
			return err
		}
		mc.LastResult.InstructionData = uint16(v)
		address = uint16(v)

	case instructions.ZeroPageIndexedX, instructions.ZeroPageIndexedY:
		v, err := mc.read8BitPC()
		if err != nil {
			return err
		}
		mc.LastResult.InstructionData = uint16(v)

		// the base address is read while the index is added
		if _, err := mc.read8Bit(uint16(v), true); err != nil {
			return err
		}

		// indexing wraps around within the zero page
		if defn.AddressingMode == instructions.ZeroPageIndexedX {
			address = uint16(v + mc.X.Value())
		} else {
			address = uint16(v + mc.Y.Value())
		}

	case instructions.Indirect:
		// JMP is the only instruction to use this mode
		indirect, err := mc.read16BitPC()
		if err != nil {
			return err
		}

		lo, err := mc.read8Bit(indirect, false)
		if err != nil {
			return err
		}

		// the high byte of the pointer is not incremented if the low byte
		// overflows. the address is taken from the start of the same page
		hiAddr := (indirect & 0xff00) | uint16(uint8(indirect)+1)
		if indirect&0x00ff == 0x00ff {
			mc.LastResult.CPUBug = execution.JmpIndirectAddressingBug
		}

		hi, err := mc.read8Bit(hiAddr, false)
		if err != nil {
			return err
		}

		address = (uint16(hi) << 8) | uint16(lo)

	case instructions.IndexedIndirect:
		ptr, err := mc.read8BitPC()
		if err != nil {
			return err
		}
		mc.LastResult.InstructionData = uint16(ptr)

		if _, err := mc.read8Bit(uint16(ptr), true); err != nil {
			return err
		}
		ptr += mc.X.Value()

		lo, err := mc.read8Bit(uint16(ptr), false)
		if err != nil {
			return err
		}
		hi, err := mc.read8Bit(uint16(ptr+1), false)
		if err != nil {
			return err
		}

		address = (uint16(hi) << 8) | uint16(lo)

	case instructions.IndirectIndexed:
		ptr, err := mc.read8BitPC()
		if err != nil {
			return err
		}
		mc.LastResult.InstructionData = uint16(ptr)

		lo, err := mc.read8Bit(uint16(ptr), false)
		if err != nil {
			return err
		}
		hi, err := mc.read8Bit(uint16(ptr+1), false)
		if err != nil {
			return err
		}

		baseHi = hi
		address, err = mc.indexed((uint16(hi)<<8)|uint16(lo), mc.Y.Value(), defn.Effect)
		if err != nil {
			return err
		}

	case instructions.AbsoluteIndexedX, instructions.AbsoluteIndexedY:
		base, err := mc.read16BitPC()
		if err != nil {
			return err
		}

		idx := mc.X.Value()
		if defn.AddressingMode == instructions.AbsoluteIndexedY {
			idx = mc.Y.Value()
		}

		baseHi = uint8(base >> 8)
		address, err = mc.indexed(base, idx, defn.Effect)
		if err != nil {
			return err
		}

	default:
		return curated.Errorf("cpu: unknown addressing mode for %s", defn.Operator)
	}

	// read value from memory using address found in AddressingMode switch above only when:
	// a) addressing mode is not 'implied', 'immediate', 'accumulator' or 'relative'
	//    - for implied and accumulator modes there is nothing to read
	//    - for immediate mode we already have the value
	//    - for relative mode the address field holds the branch offset
	// b) instruction is 'Read' OR 'ReadWrite'
	//    - for write modes, we only use the address field to write to the bus
	//
	// read-modify-write instructions write the unmodified value back to memory
	// while the modification is taking place
	if usesMemory(defn.AddressingMode) {
		switch defn.Effect {
		case instructions.Read:
			value, err = mc.read8Bit(address, false)
			if err != nil {
				return err
			}
		case instructions.RMW:
			value, err = mc.read8Bit(address, false)
			if err != nil {
				return err
			}
			if err := mc.write8Bit(address, value, true); err != nil {
				return err
			}
		}
	}

	// actually perform instruction based on operator group
	switch defn.Operator {
	case instructions.Nop:
	case instructions.NOP:
		// undocumented NOPs still perform their memory read

	case instructions.Cli:
		mc.Status.InterruptDisable = false
	case instructions.Sei:
		mc.Status.InterruptDisable = true
	case instructions.Clc:
		mc.Status.Carry = false
	case instructions.Sec:
		mc.Status.Carry = true
	case instructions.Cld:
		mc.Status.DecimalMode = false
	case instructions.Sed:
		mc.Status.DecimalMode = true
	case instructions.Clv:
		mc.Status.Overflow = false

	case instructions.Pha:
		if err := mc.push(mc.A.Value()); err != nil {
			return err
		}

	case instructions.Php:
		if err := mc.push(mc.Status.PushValue(true)); err != nil {
			return err
		}

	case instructions.Pla:
		if err := mc.phantomStackRead(); err != nil {
			return err
		}
		v, err := mc.pull()
		if err != nil {
			return err
		}
		mc.A.Load(v)
		mc.Status.SetZN(v)

	case instructions.Plp:
		if err := mc.phantomStackRead(); err != nil {
			return err
		}
		v, err := mc.pull()
		if err != nil {
			return err
		}
		mc.Status.FromValue(v)

	case instructions.Txa:
		mc.A.Load(mc.X.Value())
		mc.Status.SetZN(mc.A.Value())
	case instructions.Tax:
		mc.X.Load(mc.A.Value())
		mc.Status.SetZN(mc.X.Value())
	case instructions.Tay:
		mc.Y.Load(mc.A.Value())
		mc.Status.SetZN(mc.Y.Value())
	case instructions.Tya:
		mc.A.Load(mc.Y.Value())
		mc.Status.SetZN(mc.A.Value())
	case instructions.Tsx:
		mc.X.Load(mc.SP.Value())
		mc.Status.SetZN(mc.X.Value())
	case instructions.Txs:
		// TXS does not affect the status register
		mc.SP.Load(mc.X.Value())

	case instructions.Eor:
		mc.A.EOR(value)
		mc.Status.SetZN(mc.A.Value())
	case instructions.Ora:
		mc.A.ORA(value)
		mc.Status.SetZN(mc.A.Value())
	case instructions.And:
		mc.A.AND(value)
		mc.Status.SetZN(mc.A.Value())

	case instructions.Lda:
		mc.A.Load(value)
		mc.Status.SetZN(value)
	case instructions.Ldx:
		mc.X.Load(value)
		mc.Status.SetZN(value)
	case instructions.Ldy:
		mc.Y.Load(value)
		mc.Status.SetZN(value)

	case instructions.Sta:
		value = mc.A.Value()
	case instructions.Stx:
		value = mc.X.Value()
	case instructions.Sty:
		value = mc.Y.Value()

	case instructions.Inx:
		mc.X.Load(mc.X.Value() + 1)
		mc.Status.SetZN(mc.X.Value())
	case instructions.Iny:
		mc.Y.Load(mc.Y.Value() + 1)
		mc.Status.SetZN(mc.Y.Value())
	case instructions.Dex:
		mc.X.Load(mc.X.Value() - 1)
		mc.Status.SetZN(mc.X.Value())
	case instructions.Dey:
		mc.Y.Load(mc.Y.Value() - 1)
		mc.Status.SetZN(mc.Y.Value())

	case instructions.Asl:
		value = mc.shift(value, (*registers.Register).ASL)
		mc.Status.SetZN(value)
	case instructions.Lsr:
		value = mc.shift(value, (*registers.Register).LSR)
		mc.Status.SetZN(value)
	case instructions.Rol:
		value = mc.rotate(value, (*registers.Register).ROL)
		mc.Status.SetZN(value)
	case instructions.Ror:
		value = mc.rotate(value, (*registers.Register).ROR)
		mc.Status.SetZN(value)

	case instructions.Adc, instructions.Sbc, instructions.SBC:
		mc.adc(value, defn.Operator != instructions.Adc)

	case instructions.Cmp:
		mc.compare(mc.A, value)
	case instructions.Cpx:
		mc.compare(mc.X, value)
	case instructions.Cpy:
		mc.compare(mc.Y, value)

	case instructions.Bit:
		mc.Status.Sign = value&registers.FlagSign == registers.FlagSign
		mc.Status.Overflow = value&registers.FlagOverflow == registers.FlagOverflow
		mc.Status.Zero = mc.A.Value()&value == 0

	case instructions.Inc:
		value++
		mc.Status.SetZN(value)
	case instructions.Dec:
		value--
		mc.Status.SetZN(value)

	case instructions.Jmp:
		mc.PC.Load(address)

	case instructions.Bcc:
		err = mc.branch(!mc.Status.Carry, address)
	case instructions.Bcs:
		err = mc.branch(mc.Status.Carry, address)
	case instructions.Bpl:
		err = mc.branch(!mc.Status.Sign, address)
	case instructions.Bmi:
		err = mc.branch(mc.Status.Sign, address)
	case instructions.Bvc:
		err = mc.branch(!mc.Status.Overflow, address)
	case instructions.Bvs:
		err = mc.branch(mc.Status.Overflow, address)
	case instructions.Bne:
		err = mc.branch(!mc.Status.Zero, address)
	case instructions.Beq:
		err = mc.branch(mc.Status.Zero, address)

	case instructions.Jsr:
		err = mc.jsr()

	case instructions.Rts:
		err = mc.rts()

	case instructions.Brk:
		err = mc.brk()

	case instructions.Rti:
		err = mc.rti()

	// undocumented instructions

	case instructions.KIL:
		mc.Killed = true
		logger.Logf(logger.Allow, "cpu", "KIL instruction (%#02x) at PC %#04x", defn.OpCode, mc.LastResult.Address)

	case instructions.SLO:
		value = mc.shift(value, (*registers.Register).ASL)
		mc.A.ORA(value)
		mc.Status.SetZN(mc.A.Value())

	case instructions.RLA:
		value = mc.rotate(value, (*registers.Register).ROL)
		mc.A.AND(value)
		mc.Status.SetZN(mc.A.Value())

	case instructions.SRE:
		value = mc.shift(value, (*registers.Register).LSR)
		mc.A.EOR(value)
		mc.Status.SetZN(mc.A.Value())

	case instructions.RRA:
		value = mc.rotate(value, (*registers.Register).ROR)
		mc.adc(value, false)

	case instructions.SAX:
		value = mc.A.Value() & mc.X.Value()

	case instructions.LAX:
		mc.A.Load(value)
		mc.X.Load(value)
		mc.Status.SetZN(value)

	case instructions.DCP:
		value--
		mc.compare(mc.A, value)

	case instructions.ISC:
		value++
		mc.adc(value, true)

	case instructions.ANC:
		mc.A.AND(value)
		mc.Status.SetZN(mc.A.Value())
		mc.Status.Carry = mc.Status.Sign

	case instructions.ASR:
		mc.A.AND(value)
		mc.Status.Carry = mc.A.LSR()
		mc.Status.SetZN(mc.A.Value())

	case instructions.ARR:
		mc.A.AND(value)
		mc.A.ROR(mc.Status.Carry)
		v := mc.A.Value()
		mc.Status.SetZN(v)
		mc.Status.Carry = v&0x40 == 0x40
		mc.Status.Overflow = (v>>6)&0x01 != (v>>5)&0x01

	case instructions.XAA:
		// the result depends on the analogue properties of the chip. the
		// magic constant is the most commonly observed value
		mc.A.Load((mc.A.Value() | magicConstant) & mc.X.Value() & value)
		mc.Status.SetZN(mc.A.Value())

	case instructions.LXA:
		v := (mc.A.Value() | magicConstant) & value
		mc.A.Load(v)
		mc.X.Load(v)
		mc.Status.SetZN(v)

	case instructions.AXS:
		ax := mc.A.Value() & mc.X.Value()
		mc.Status.Carry = ax >= value
		mc.X.Load(ax - value)
		mc.Status.SetZN(mc.X.Value())

	case instructions.AHX:
		value = mc.A.Value() & mc.X.Value() & (baseHi + 1)
		address = mc.unstableAddress(address, baseHi, value)

	case instructions.SHY:
		value = mc.Y.Value() & (baseHi + 1)
		address = mc.unstableAddress(address, baseHi, value)

	case instructions.SHX:
		value = mc.X.Value() & (baseHi + 1)
		address = mc.unstableAddress(address, baseHi, value)

	case instructions.TAS:
		mc.SP.Load(mc.A.Value() & mc.X.Value())
		value = mc.SP.Value() & (baseHi + 1)
		address = mc.unstableAddress(address, baseHi, value)

	case instructions.LAS:
		v := value & mc.SP.Value()
		mc.A.Load(v)
		mc.X.Load(v)
		mc.SP.Load(v)
		mc.Status.SetZN(v)

	default:
		return curated.Errorf("cpu: unknown operator (%s)", defn.Operator)
	}

	if err != nil {
		return err
	}

	// write value back to memory. stack instructions have already written to
	// the stack in the operator switch
	switch defn.Effect {
	case instructions.Write:
		if defn.AddressingMode != instructions.Implied {
			if err := mc.write8Bit(address, value, false); err != nil {
				return err
			}
		}
	case instructions.RMW:
		if defn.AddressingMode == instructions.Accumulator {
			mc.A.Load(value)
		} else {
			if err := mc.write8Bit(address, value, false); err != nil {
				return err
			}
		}
	}

	mc.LastResult.Final = true

	return nil
}

// the constant used by the XAA and LXA instructions.
const magicConstant = 0xee

// usesMemory returns true if the addressing mode results in an effective
// address.
func usesMemory(mode instructions.AddressingMode) bool {
	switch mode {
	case instructions.Implied, instructions.Accumulator, instructions.Immediate, instructions.Relative:
		return false
	}
	return true
}

// indexed adds idx to the base address. if the addition crosses a page
// boundary then an extra cycle is required to fix the high byte of the
// address. during that cycle the address with the unfixed high byte is read.
// write and RMW instructions always take the extra cycle.
func (mc *CPU) indexed(base uint16, idx uint8, effect instructions.EffectCategory) (uint16, error) {
	address := base + uint16(idx)
	mc.LastResult.PageFault = base&0xff00 != address&0xff00

	if mc.LastResult.PageFault || effect != instructions.Read {
		unfixed := (base & 0xff00) | (address & 0x00ff)
		if _, err := mc.read8Bit(unfixed, true); err != nil {
			return 0, err
		}
	}

	return address, nil
}

// the AHX, SHX, SHY and TAS instructions replace the high byte of the
// effective address with the value being stored when indexing crosses a
// page boundary.
func (mc *CPU) unstableAddress(address uint16, baseHi uint8, value uint8) uint16 {
	if uint8(address>>8) == baseHi {
		return address
	}
	mc.LastResult.CPUBug = execution.UnstableHighByteBug
	return (uint16(value) << 8) | (address & 0x00ff)
}

// shift value with the supplied register function. the carry flag is set
// from the bit shifted out of the value.
func (mc *CPU) shift(value uint8, f func(*registers.Register) bool) uint8 {
	r := registers.NewRegister(value, "")
	mc.Status.Carry = f(&r)
	return r.Value()
}

// rotate value through the carry flag with the supplied register function.
func (mc *CPU) rotate(value uint8, f func(*registers.Register, bool) bool) uint8 {
	r := registers.NewRegister(value, "")
	mc.Status.Carry = f(&r, mc.Status.Carry)
	return r.Value()
}

// adc adds value and the carry flag to the accumulator. if subtract is true
// then the value is subtracted with the carry flag acting as the inverse of
// borrow.
func (mc *CPU) adc(value uint8, subtract bool) {
	if subtract {
		mc.Status.Carry, mc.Status.Overflow = mc.A.Subtract(value, mc.Status.Carry)
	} else {
		mc.Status.Carry, mc.Status.Overflow = mc.A.Add(value, mc.Status.Carry)
	}
	mc.Status.SetZN(mc.A.Value())
}

func (mc *CPU) compare(r registers.Register, value uint8) {
	var diff uint8
	mc.Status.Carry, diff = r.Compare(value)
	mc.Status.SetZN(diff)
}

// branch to the relative address if the flag is true. a successful branch
// costs one extra cycle and a further cycle if the destination is on a
// different page.
func (mc *CPU) branch(flag bool, offset uint16) error {
	if !flag {
		return nil
	}

	mc.LastResult.BranchSuccess = true

	// the opcode of the next instruction is read while the offset is added
	if _, err := mc.read8Bit(mc.PC.Address(), true); err != nil {
		return err
	}

	pc := mc.PC.Address()
	dest := pc + uint16(int16(int8(offset)))

	if pc&0xff00 != dest&0xff00 {
		mc.LastResult.PageFault = true
		if _, err := mc.read8Bit((pc&0xff00)|(dest&0x00ff), true); err != nil {
			return err
		}
	}

	mc.PC.Load(dest)

	return nil
}
