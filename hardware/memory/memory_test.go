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

package memory_test

import (
	"testing"

	"github.com/gophernes/gophernes/hardware/memory"
	"github.com/gophernes/gophernes/hardware/memory/cartridge"
	"github.com/gophernes/gophernes/hardware/memory/chipbus"
	"github.com/gophernes/gophernes/test"
)

// mockChip records every access to its registers.
type mockChip struct {
	regs   [0x18]uint8
	mask   uint8
	reads  []uint16
	writes []uint16
}

func (c *mockChip) ChipRead(reg uint16) (uint8, uint8) {
	c.reads = append(c.reads, reg)
	return c.regs[reg], c.mask
}

func (c *mockChip) ChipWrite(reg uint16, data uint8) {
	c.writes = append(c.writes, reg)
	c.regs[reg] = data
}

func TestRAMMirroring(t *testing.T) {
	mem := memory.NewMemory()

	mem.Write(0x0000, 0x45)
	test.ExpectEquality(t, mem.Read(0x0000), 0x45)
	test.ExpectEquality(t, mem.Read(0x0800), 0x45)
	test.ExpectEquality(t, mem.Read(0x1000), 0x45)
	test.ExpectEquality(t, mem.Read(0x1800), 0x45)

	mem.Write(0x1fff, 0x12)
	test.ExpectEquality(t, mem.Read(0x07ff), 0x12)
}

func TestOpenBus(t *testing.T) {
	mem := memory.NewMemory()

	// nothing attached to the PPU or the APU sockets and no cartridge
	mem.Write(0x0010, 0x5a)
	test.ExpectEquality(t, mem.Read(0x0010), 0x5a)
	test.ExpectEquality(t, mem.Read(0x2002), 0x5a)
	test.ExpectEquality(t, mem.Read(0x4015), 0x5a)
	test.ExpectEquality(t, mem.Read(0x4018), 0x5a)
	test.ExpectEquality(t, mem.Read(0x8000), 0x5a)
	test.ExpectEquality(t, mem.OpenBus(), 0x5a)

	// the last write is the open bus value
	mem.Write(0x401f, 0xa5)
	test.ExpectEquality(t, mem.Read(0xfffc), 0xa5)
	test.ExpectEquality(t, mem.Peek(0x4018), 0xa5)
}

func TestChipRouting(t *testing.T) {
	mem := memory.NewMemory()
	ppu := &mockChip{mask: chipbus.DrivenPins}
	apu := &mockChip{mask: chipbus.DrivenPins}
	mem.AttachPPU(ppu)
	mem.AttachAPU(apu)

	// PPU registers are mirrored every eight bytes
	mem.Write(0x2000, 0x80)
	mem.Write(0x3ff9, 0x1e)
	test.ExpectEquality(t, ppu.regs[0], 0x80)
	test.ExpectEquality(t, ppu.regs[1], 0x1e)
	test.ExpectEquality(t, mem.Read(0x2008), 0x80)

	// every write is forwarded
	for range 3 {
		mem.Write(0x2006, 0x00)
	}
	test.ExpectEquality(t, len(ppu.writes), 5)

	// APU/IO registers are not mirrored
	mem.Write(0x4014, 0x02)
	test.ExpectEquality(t, apu.regs[0x14], 0x02)
	mem.Write(0x4017, 0x40)
	test.ExpectEquality(t, apu.regs[0x17], 0x40)

	// peeking does not access the chip
	n := len(ppu.reads)
	mem.Peek(0x2002)
	test.ExpectEquality(t, len(ppu.reads), n)

	// disconnecting returns the socket to open bus
	mem.AttachPPU(nil)
	mem.Write(0x0000, 0x33)
	test.ExpectEquality(t, mem.Read(0x2000), 0x33)
}

func TestPartiallyDrivenRead(t *testing.T) {
	mem := memory.NewMemory()
	apu := &mockChip{mask: 0x1f}
	mem.AttachAPU(apu)

	apu.regs[0x16] = 0x01
	mem.Write(0x0000, 0x40)
	mem.Read(0x0000)

	// the controller port only drives the low bits of the data bus
	test.ExpectEquality(t, mem.Read(0x4016), 0x41)
}

func TestCartridgeRouting(t *testing.T) {
	mem := memory.NewMemory()

	prg := make([]uint8, 0x4000)
	prg[0x3ffc] = 0x00
	prg[0x3ffd] = 0x80
	test.DemandSuccess(t, mem.Cart.Attach(cartridge.Image{PRG: prg, PRGRAM: true}))

	test.ExpectEquality(t, mem.Read(0xfffd), 0x80)
	test.ExpectEquality(t, mem.Read(0xbffd), 0x80)

	mem.Write(0x6000, 0x77)
	test.ExpectEquality(t, mem.Read(0x6000), 0x77)

	// writes to ROM are ignored
	mem.Write(0xfffd, 0x00)
	test.ExpectEquality(t, mem.Read(0xfffd), 0x80)

	// but pokes are not
	test.ExpectSuccess(t, mem.Poke(0xfffd, 0x90))
	test.ExpectEquality(t, mem.Peek(0xfffd), 0x90)
	test.ExpectEquality(t, mem.Peek(0xbffd), 0x90)

	test.ExpectSuccess(t, mem.Poke(0x0801, 0x01))
	test.ExpectEquality(t, mem.Peek(0x0001), 0x01)
	test.ExpectFailure(t, mem.Poke(0x2000, 0x01))
}

// every address can be read and written
func TestTotality(t *testing.T) {
	mem := memory.NewMemory()
	for a := 0; a <= 0xffff; a++ {
		mem.Write(uint16(a), uint8(a))
		mem.Read(uint16(a))
		test.DemandEquality(t, mem.LastAccessAddress, uint16(a))
	}
}
