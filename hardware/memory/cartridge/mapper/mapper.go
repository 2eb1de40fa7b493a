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

// Package mapper defines the interfaces implemented by the cartridge mapper
// types. The memory bus only ever talks to the cartridge through the
// CartMapper interface, so new mapper types can be added without changing the
// bus or the CPU.
package mapper

import "fmt"

// CartDrivenPins is included for clarity. In the vast majority of cases a
// cartridge mapper will drive all pins on the data bus during a read. Use
// CartDrivenPins rather than 0xff.
//
// In the case where the data bus pins are not driven then CartUndrivenPins
// should be used.
const (
	CartDrivenPins   = uint8(0xff)
	CartUndrivenPins = uint8(0x00)
)

// CartMapper implementations hold the actual data from the loaded ROM and
// keep track of which banks are mapped to individual addresses.
//
// Addresses are the full CPU address, in the range 0x4020 to 0xffff. Mappers
// decode the cartridge space for themselves.
type CartMapper interface {
	ID() string
	String() string

	// reset volatile areas of the cartridge. for mappers with bank switching
	// this returns the banks to the power-on configuration
	Reset()

	// Read the cartridge at the specified address. The mask return value
	// identifies which pins of the data bus are driven by the cartridge.
	//
	// A read must never change the state of the mapper.
	Read(addr uint16) (data uint8, mask uint8)

	// Write to the cartridge at the specified address. Depending on the
	// mapper and the address the write may change a bank selection, write to
	// cartridge RAM, or be ignored.
	Write(addr uint16, data uint8)

	// Patch the data at the specified address whether or not it is ROM. Used
	// by the debugger.
	Patch(addr uint16, data uint8) error

	NumBanks() int
	GetBank(addr uint16) BankInfo

	Mirroring() Mirroring

	// Snapshot returns a copy of the mapper. The copy must not share any
	// mutable state with the original.
	Snapshot() CartMapper
}

// CartCHRBus is implemented by cartridge mappers that connect memory to the
// PPU address bus. CHR ROM and CHR RAM are both accessed through this
// interface. Writes to CHR ROM are ignored.
type CartCHRBus interface {
	ReadCHR(addr uint16) uint8
	WriteCHR(addr uint16, data uint8)
}

// CartRAMBus is implemented by cartridge mappers that have an addressable
// PRG RAM area. GetRAM() returns nil if there is no RAM in the cartridge.
type CartRAMBus interface {
	GetRAM() []uint8
}

// BankInfo is used to identify the cartridge bank referenced by an address.
type BankInfo struct {
	// bank number
	Number int

	// is bank RAM
	IsRAM bool

	// the address is not mapped to any bank. reading from the address will
	// result in the open bus value
	NonCart bool
}

func (b BankInfo) String() string {
	if b.NonCart {
		return "-"
	}
	if b.IsRAM {
		return fmt.Sprintf("%d (RAM)", b.Number)
	}
	return fmt.Sprintf("%d", b.Number)
}

// Mirroring describes how the nametables of the PPU are arranged by the
// cartridge.
type Mirroring int

// List of valid Mirroring values.
const (
	Horizontal Mirroring = iota
	Vertical
	FourScreen
)

func (m Mirroring) String() string {
	switch m {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case FourScreen:
		return "four-screen"
	}
	return "unknown mirroring"
}
