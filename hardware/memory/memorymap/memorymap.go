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

package memorymap

import "fmt"

// Area represents the different areas of memory.
type Area int

func (a Area) String() string {
	switch a {
	case RAM:
		return "RAM"
	case PPU:
		return "PPU"
	case APU:
		return "APU"
	case Unused:
		return "Unused"
	case Cartridge:
		return "Cartridge"
	}

	return "undefined"
}

// The different memory areas in the NES. Every address belongs to exactly
// one area.
const (
	RAM Area = iota
	PPU
	APU
	Unused
	Cartridge
)

// The origin and memory top for each area of memory. Checking which area an
// address falls within and forcing the address into the normalised range is
// all handled by the MapAddress() function.
const (
	OriginRAM    = uint16(0x0000)
	MemtopRAM    = uint16(0x1fff)
	OriginPPU    = uint16(0x2000)
	MemtopPPU    = uint16(0x3fff)
	OriginAPU    = uint16(0x4000)
	MemtopAPU    = uint16(0x4017)
	OriginUnused = uint16(0x4018)
	MemtopUnused = uint16(0x401f)
	OriginCart   = uint16(0x4020)
	MemtopCart   = uint16(0xffff)
)

// The RAM and PPU areas are made up of mirrors of a much smaller area of
// memory. The masks keep only the relevant bits.
const (
	MaskRAM = uint16(0x07ff)
	MaskPPU = uint16(0x0007)
)

// Memtop is the top most address of memory.
const Memtop = uint16(0xffff)

// MapAddress translates the address argument from mirror space to primary
// space. The returned address is an offset into the area. Except for the
// cartridge area, which is returned unchanged because mappers decode the
// cartridge space for themselves.
func MapAddress(address uint16) (uint16, Area) {
	// note that the order of these filters is important

	if address <= MemtopRAM {
		return address & MaskRAM, RAM
	}

	if address <= MemtopPPU {
		return address & MaskPPU, PPU
	}

	if address <= MemtopAPU {
		return address - OriginAPU, APU
	}

	if address <= MemtopUnused {
		return address - OriginUnused, Unused
	}

	return address, Cartridge
}

// Summary returns a string listing the memory areas and their address
// ranges.
func Summary() string {
	return fmt.Sprintf("%s: %#04x -> %#04x (mirrored every %#04x)\n", RAM, OriginRAM, MemtopRAM, MaskRAM+1) +
		fmt.Sprintf("%s: %#04x -> %#04x (mirrored every %#04x)\n", PPU, OriginPPU, MemtopPPU, MaskPPU+1) +
		fmt.Sprintf("%s: %#04x -> %#04x\n", APU, OriginAPU, MemtopAPU) +
		fmt.Sprintf("%s: %#04x -> %#04x\n", Unused, OriginUnused, MemtopUnused) +
		fmt.Sprintf("%s: %#04x -> %#04x\n", Cartridge, OriginCart, MemtopCart)
}
