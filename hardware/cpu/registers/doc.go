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

// Package registers implements the three types of register found in the 6502
// family of CPUs: the 8 bit general purpose register (used for the
// accumulator, X and Y registers), the 16 bit program counter and the status
// register. The stack pointer is an 8 bit register with its own type because
// it is always interpreted as an offset into page one.
//
// The general purpose Register type implements the ALU operations. Results
// are returned where they affect a flag, but no flags are set by this
// package. Setting of the status flags is left to the CPU. For instance:
//
//	a.Load(10)
//	carry, overflow := a.Subtract(11, true)
//	sr.Zero = a.IsZero()
//
// In this case, the zero flag in the status register will be false.
package registers
