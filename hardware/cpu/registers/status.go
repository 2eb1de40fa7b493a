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

package registers

import (
	"strings"
)

// bit positions of the flags when the status register is in value form.
const (
	FlagCarry            = uint8(0x01)
	FlagZero             = uint8(0x02)
	FlagInterruptDisable = uint8(0x04)
	FlagDecimalMode      = uint8(0x08)
	FlagBreak            = uint8(0x10)
	FlagUnused           = uint8(0x20)
	FlagOverflow         = uint8(0x40)
	FlagSign             = uint8(0x80)
)

// StatusRegister is the special purpose register that stores the flags of
// the CPU.
//
// There is no Break flag in the live register. The break bit only exists in
// the copy of the register pushed to the stack. See PushValue().
type StatusRegister struct {
	Sign             bool
	Overflow         bool
	DecimalMode      bool
	InterruptDisable bool
	Zero             bool
	Carry            bool
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "SR"
}

func (sr StatusRegister) String() string {
	s := strings.Builder{}

	flag := func(f bool, on rune, off rune) {
		if f {
			s.WriteRune(on)
		} else {
			s.WriteRune(off)
		}
	}

	flag(sr.Sign, 'N', 'n')
	flag(sr.Overflow, 'V', 'v')
	s.WriteRune('-')
	s.WriteRune('-')
	flag(sr.DecimalMode, 'D', 'd')
	flag(sr.InterruptDisable, 'I', 'i')
	flag(sr.Zero, 'Z', 'z')
	flag(sr.Carry, 'C', 'c')

	return s.String()
}

// Reset status flags to the power-on state. Only the interrupt disable flag
// is set.
func (sr *StatusRegister) Reset() {
	sr.FromValue(FlagInterruptDisable)
}

// Value converts the StatusRegister into its byte form. The unused bit is
// always 1 and the break bit is always 0.
func (sr StatusRegister) Value() uint8 {
	v := FlagUnused

	if sr.Sign {
		v |= FlagSign
	}
	if sr.Overflow {
		v |= FlagOverflow
	}
	if sr.DecimalMode {
		v |= FlagDecimalMode
	}
	if sr.InterruptDisable {
		v |= FlagInterruptDisable
	}
	if sr.Zero {
		v |= FlagZero
	}
	if sr.Carry {
		v |= FlagCarry
	}

	return v
}

// PushValue is the value of the status register as it is pushed to the
// stack. The break bit is set for the BRK and PHP instructions and is clear
// for hardware interrupts.
func (sr StatusRegister) PushValue(brk bool) uint8 {
	v := sr.Value()
	if brk {
		v |= FlagBreak
	}
	return v
}

// FromValue converts an 8 bit value (pulled from the stack, for example) to
// the StatusRegister receiver. The break and unused bits are ignored.
func (sr *StatusRegister) FromValue(v uint8) {
	sr.Sign = v&FlagSign == FlagSign
	sr.Overflow = v&FlagOverflow == FlagOverflow
	sr.DecimalMode = v&FlagDecimalMode == FlagDecimalMode
	sr.InterruptDisable = v&FlagInterruptDisable == FlagInterruptDisable
	sr.Zero = v&FlagZero == FlagZero
	sr.Carry = v&FlagCarry == FlagCarry
}

// SetZN sets the zero and sign flags according to the value.
func (sr *StatusRegister) SetZN(v uint8) {
	sr.Zero = v == 0
	sr.Sign = v&0x80 == 0x80
}
