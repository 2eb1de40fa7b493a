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

// Package cpubus defines the view of memory from the CPU. The Memory
// interface is implemented by the NES memory bus and by the test memories in
// the CPU package.
package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. Every address in the 16 bit address space must have a defined result
// for both Read() and Write(). There is no failure case.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// The interrupt vectors. The address of the interrupt handler is stored in
// the two bytes at the vector address, least significant byte first.
const (
	NMI   = uint16(0xfffa)
	Reset = uint16(0xfffc)
	IRQ   = uint16(0xfffe)
	BRK   = IRQ
)
