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

// Package disassembly decodes the contents of memory into 6502 instructions
// without executing them.
//
// Decoding is linear. Every address is assumed to be the start of an
// instruction and the next instruction is assumed to start immediately after
// the last byte of the previous one. This means that data in memory will also
// be presented as instructions.
//
// Memory is accessed through the Peeker interface. A Peek() must have no side
// effects, so it is always safe to disassemble the memory of a running
// emulation.
package disassembly
