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

package memorymap_test

import (
	"testing"

	"github.com/gophernes/gophernes/hardware/memory/memorymap"
	"github.com/gophernes/gophernes/test"
)

func TestRAMMirrors(t *testing.T) {
	for a := uint16(0x0000); a <= 0x07ff; a++ {
		for _, m := range []uint16{0x0000, 0x0800, 0x1000, 0x1800} {
			ma, area := memorymap.MapAddress(a | m)
			test.ExpectEquality(t, area, memorymap.RAM)
			test.ExpectEquality(t, ma, a)
		}
	}
}

func TestPPUMirrors(t *testing.T) {
	for a := uint32(memorymap.OriginPPU); a <= uint32(memorymap.MemtopPPU); a++ {
		ma, area := memorymap.MapAddress(uint16(a))
		test.ExpectEquality(t, area, memorymap.PPU)
		test.ExpectEquality(t, ma, uint16(a)&0x0007)
	}
}

func TestAreaBoundaries(t *testing.T) {
	_, area := memorymap.MapAddress(0x1fff)
	test.ExpectEquality(t, area, memorymap.RAM)
	_, area = memorymap.MapAddress(0x2000)
	test.ExpectEquality(t, area, memorymap.PPU)
	ma, area := memorymap.MapAddress(0x4000)
	test.ExpectEquality(t, area, memorymap.APU)
	test.ExpectEquality(t, ma, 0x0000)
	ma, area = memorymap.MapAddress(0x4017)
	test.ExpectEquality(t, area, memorymap.APU)
	test.ExpectEquality(t, ma, 0x0017)
	_, area = memorymap.MapAddress(0x4018)
	test.ExpectEquality(t, area, memorymap.Unused)
	_, area = memorymap.MapAddress(0x401f)
	test.ExpectEquality(t, area, memorymap.Unused)
	ma, area = memorymap.MapAddress(0x4020)
	test.ExpectEquality(t, area, memorymap.Cartridge)
	test.ExpectEquality(t, ma, 0x4020)
	_, area = memorymap.MapAddress(0xffff)
	test.ExpectEquality(t, area, memorymap.Cartridge)
}

// every address has exactly one owner and the areas are contiguous
func TestTotality(t *testing.T) {
	counts := make(map[memorymap.Area]int)
	prev := memorymap.RAM
	for a := 0; a <= 0xffff; a++ {
		_, area := memorymap.MapAddress(uint16(a))
		test.DemandEquality(t, area >= prev, true, a)
		counts[area]++
		prev = area
	}

	test.ExpectEquality(t, counts[memorymap.RAM], 0x2000)
	test.ExpectEquality(t, counts[memorymap.PPU], 0x2000)
	test.ExpectEquality(t, counts[memorymap.APU], 0x18)
	test.ExpectEquality(t, counts[memorymap.Unused], 0x08)
	test.ExpectEquality(t, counts[memorymap.Cartridge], 0x10000-0x4020)
}
