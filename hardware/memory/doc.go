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

// Package memory implements the NES memory bus. The Memory type decodes
// every address in the 16 bit address space and routes the access to the
// owner of that address: internal RAM, the PPU registers, the APU/IO
// registers or the cartridge.
//
// Reads of addresses that are not driven by anything return the value last
// seen on the data bus (open bus). Writes are always forwarded to the owner
// of the address, even for addresses that have no storage.
//
// The Peek() and Poke() functions allow the debugger to access memory
// without affecting the state of the data bus.
package memory
