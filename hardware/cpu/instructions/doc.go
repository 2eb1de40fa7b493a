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

// Package instructions defines the instruction set of the 2A03 CPU. Every
// one of the 256 possible opcode values has a definition, including the
// undocumented opcodes of the NMOS 6502 family.
//
// The Definition type describes how many bytes an instruction occupies, how
// many cycles it takes (not including the page fault and branch penalties),
// the addressing mode and the broad effect of the instruction. The CPU uses
// the addressing mode and the effect category to decide how memory is
// accessed and the Operator to decide what happens to the data.
package instructions
