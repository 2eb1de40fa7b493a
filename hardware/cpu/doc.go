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

// Package cpu emulates the 2A03 CPU found in the NES. The 2A03 is a 6502
// without the decimal mode circuitry. The decimal flag can still be set and
// cleared but it has no effect on the ADC and SBC instructions.
//
// The CPU is cycle accurate in the sense that every cycle of every
// instruction results in exactly one access of the memory bus, including the
// "phantom" reads and writes that the 6502 performs while it is busy
// calculating addresses. After every cycle the callback function supplied to
// ExecuteInstruction() is called. The callback is the place to step other
// parts of the hardware, like the PPU, in lockstep with the CPU.
//
// For simpler uses the Step() function executes one instruction and returns
// the number of cycles taken.
//
// Interrupts are signalled with AssertNMI(), AssertIRQ() and ReleaseIRQ().
// The NMI line is edge triggered, so one call to AssertNMI() results in one
// interrupt. The IRQ line is level triggered and the CPU will continue to be
// interrupted while the line is asserted and the interrupt disable flag is
// clear. Interrupts are checked at the start of each call to
// ExecuteInstruction(), before the next opcode is fetched. Servicing an
// interrupt takes the place of an instruction.
//
// The CPU does not know anything about the NES memory map. All memory access
// goes through the cpubus.Memory interface, including the reading of the
// interrupt vectors.
package cpu
