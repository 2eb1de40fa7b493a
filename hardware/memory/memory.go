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

package memory

import (
	"github.com/gophernes/gophernes/curated"
	"github.com/gophernes/gophernes/hardware/memory/cartridge"
	"github.com/gophernes/gophernes/hardware/memory/chipbus"
	"github.com/gophernes/gophernes/hardware/memory/memorymap"
)

// Memory is the memory bus of the NES. It implements the cpubus.Memory
// interface.
type Memory struct {
	RAM  *RAM
	Cart *cartridge.Cartridge

	ppu chipbus.Handler
	apu chipbus.Handler

	// the last value seen on the data bus
	lastData uint8

	// the most recent address accessed by the CPU
	LastAccessAddress uint16
	LastAccessWrite   bool
}

// NewMemory is the preferred method of initialisation for Memory. The PPU and
// APU sockets are disconnected and the cartridge is ejected.
func NewMemory() *Memory {
	return &Memory{
		RAM:  &RAM{},
		Cart: cartridge.NewCartridge(),
		ppu:  chipbus.Disconnected{},
		apu:  chipbus.Disconnected{},
	}
}

// AttachPPU connects a chip to the PPU registers. A value of nil disconnects
// the current chip.
func (mem *Memory) AttachPPU(h chipbus.Handler) {
	if h == nil {
		h = chipbus.Disconnected{}
	}
	mem.ppu = h
}

// AttachAPU connects a chip to the APU/IO registers. A value of nil
// disconnects the current chip.
func (mem *Memory) AttachAPU(h chipbus.Handler) {
	if h == nil {
		h = chipbus.Disconnected{}
	}
	mem.apu = h
}

// Reset contents of RAM and the cartridge. The open bus value is also reset.
func (mem *Memory) Reset() {
	mem.RAM.Reset()
	mem.Cart.Reset()
	mem.lastData = 0
}

// Snapshot returns a copy of the memory bus. RAM and cartridge memory are
// copied. The PPU and APU handlers are shared with the original.
func (mem *Memory) Snapshot() *Memory {
	n := *mem
	ram := *mem.RAM
	n.RAM = &ram
	n.Cart = mem.Cart.Snapshot()
	return &n
}

// OpenBus returns the last value seen on the data bus.
func (mem *Memory) OpenBus() uint8 {
	return mem.lastData
}

// Read implements the cpubus.Memory interface.
func (mem *Memory) Read(address uint16) uint8 {
	mem.LastAccessAddress = address
	mem.LastAccessWrite = false

	ma, area := memorymap.MapAddress(address)

	var data uint8
	var mask uint8

	switch area {
	case memorymap.RAM:
		data = mem.RAM.Read(ma)
		mask = chipbus.DrivenPins
	case memorymap.PPU:
		data, mask = mem.ppu.ChipRead(ma)
	case memorymap.APU:
		data, mask = mem.apu.ChipRead(ma)
	case memorymap.Unused:
		mask = chipbus.UndrivenPins
	case memorymap.Cartridge:
		data, mask = mem.Cart.Read(ma)
	}

	// pins not driven take the value of the last data on the bus
	mem.lastData = (data & mask) | (mem.lastData &^ mask)

	return mem.lastData
}

// Write implements the cpubus.Memory interface.
func (mem *Memory) Write(address uint16, data uint8) {
	mem.LastAccessAddress = address
	mem.LastAccessWrite = true
	mem.lastData = data

	ma, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.RAM:
		mem.RAM.Write(ma, data)
	case memorymap.PPU:
		mem.ppu.ChipWrite(ma, data)
	case memorymap.APU:
		mem.apu.ChipWrite(ma, data)
	case memorymap.Unused:
	case memorymap.Cartridge:
		mem.Cart.Write(ma, data)
	}
}

// Peek returns the contents of memory without side effects. The PPU and APU
// registers cannot be peeked because reading them can change the state of
// the chip. For those addresses, and for any other address that is not
// driven, the current open bus value is returned.
func (mem *Memory) Peek(address uint16) uint8 {
	ma, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.RAM:
		return mem.RAM.Read(ma)
	case memorymap.Cartridge:
		if data, ok := mem.Cart.Peek(ma); ok {
			return data
		}
	}

	return mem.lastData
}

// Poke writes to memory without side effects. Poking the cartridge area
// changes the data in the cartridge, including ROM.
func (mem *Memory) Poke(address uint16, data uint8) error {
	ma, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.RAM:
		mem.RAM.Write(ma, data)
		return nil
	case memorymap.Cartridge:
		return mem.Cart.Patch(ma, data)
	}

	return curated.Errorf("memory: cannot poke %s address (%#04x)", area, address)
}
