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

package cartridge

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gophernes/gophernes/curated"
	"github.com/gophernes/gophernes/hardware/memory/cartridge/mapper"
)

// the size of the components of an NROM cartridge.
const (
	nromBankSize = 0x4000
	nromCHRSize  = 0x2000
	nromRAMSize  = 0x2000
)

// the regions of the cartridge space decoded by the NROM mapper.
const (
	nromOriginRAM = uint16(0x6000)
	nromMemtopRAM = uint16(0x7fff)
	nromOriginPRG = uint16(0x8000)
)

// nrom implements the mapper.CartMapper interface for NROM cartridges
// (mapper number 0). There is no bank switching.
//
// The PRG ROM is either 16K or 32K. A 16K PRG ROM is mirrored in both halves
// of the 0x8000 to 0xffff range. Some NROM boards (eg. Family BASIC) have 8K
// of RAM in the 0x6000 to 0x7fff range.
//
// The CHR is 8K of ROM. If the image has no CHR data then 8K of CHR RAM is
// fitted instead.
type nrom struct {
	mappingID string

	prg []uint8
	chr []uint8
	ram []uint8

	chrRAM    bool
	mirroring mapper.Mirroring
}

func newNROM(img Image) (mapper.CartMapper, error) {
	cart := &nrom{
		mappingID: "NROM",
		mirroring: img.Mirroring,
	}

	if len(img.PRG) != nromBankSize && len(img.PRG) != nromBankSize*2 {
		return nil, curated.Errorf(InvalidPRGSize, cart.mappingID, len(img.PRG))
	}

	switch len(img.CHR) {
	case 0:
		cart.chrRAM = true
		cart.chr = make([]uint8, nromCHRSize)
	case nromCHRSize:
		cart.chr = make([]uint8, nromCHRSize)
		copy(cart.chr, img.CHR)
	default:
		return nil, curated.Errorf(InvalidCHRSize, cart.mappingID, len(img.CHR))
	}

	cart.prg = make([]uint8, len(img.PRG))
	copy(cart.prg, img.PRG)

	if img.PRGRAM {
		cart.ram = make([]uint8, nromRAMSize)
	}

	return cart, nil
}

func (cart *nrom) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s [%dK PRG]", cart.mappingID, len(cart.prg)/1024))
	if cart.chrRAM {
		s.WriteString(" [8K CHR RAM]")
	} else {
		s.WriteString(" [8K CHR ROM]")
	}
	if cart.ram != nil {
		s.WriteString(" [8K PRG RAM]")
	}
	s.WriteString(fmt.Sprintf(" [%s]", cart.mirroring))
	return s.String()
}

// ID implements the mapper.CartMapper interface.
func (cart *nrom) ID() string {
	return cart.mappingID
}

// Reset implements the mapper.CartMapper interface. The contents of PRG RAM
// survive a reset.
func (cart *nrom) Reset() {
}

// Snapshot implements the mapper.CartMapper interface.
func (cart *nrom) Snapshot() mapper.CartMapper {
	n := *cart
	n.prg = slices.Clone(cart.prg)
	n.chr = slices.Clone(cart.chr)
	n.ram = slices.Clone(cart.ram)
	return &n
}

// Read implements the mapper.CartMapper interface.
func (cart *nrom) Read(addr uint16) (uint8, uint8) {
	if addr >= nromOriginPRG {
		return cart.prg[int(addr-nromOriginPRG)%len(cart.prg)], mapper.CartDrivenPins
	}

	if cart.ram != nil && addr >= nromOriginRAM && addr <= nromMemtopRAM {
		return cart.ram[addr-nromOriginRAM], mapper.CartDrivenPins
	}

	return 0, mapper.CartUndrivenPins
}

// Write implements the mapper.CartMapper interface. Writes to ROM are
// ignored.
func (cart *nrom) Write(addr uint16, data uint8) {
	if cart.ram != nil && addr >= nromOriginRAM && addr <= nromMemtopRAM {
		cart.ram[addr-nromOriginRAM] = data
	}
}

// Patch implements the mapper.CartMapper interface.
func (cart *nrom) Patch(addr uint16, data uint8) error {
	if addr >= nromOriginPRG {
		cart.prg[int(addr-nromOriginPRG)%len(cart.prg)] = data
		return nil
	}

	if cart.ram != nil && addr >= nromOriginRAM && addr <= nromMemtopRAM {
		cart.ram[addr-nromOriginRAM] = data
		return nil
	}

	return curated.Errorf("cartridge: %s: address %#04x is not in cartridge memory", cart.mappingID, addr)
}

// NumBanks implements the mapper.CartMapper interface.
func (cart *nrom) NumBanks() int {
	return len(cart.prg) / nromBankSize
}

// GetBank implements the mapper.CartMapper interface.
func (cart *nrom) GetBank(addr uint16) mapper.BankInfo {
	if addr >= nromOriginPRG {
		return mapper.BankInfo{Number: int(addr-nromOriginPRG) % len(cart.prg) / nromBankSize}
	}

	if cart.ram != nil && addr >= nromOriginRAM && addr <= nromMemtopRAM {
		return mapper.BankInfo{IsRAM: true}
	}

	return mapper.BankInfo{NonCart: true}
}

// Mirroring implements the mapper.CartMapper interface.
func (cart *nrom) Mirroring() mapper.Mirroring {
	return cart.mirroring
}

// ReadCHR implements the mapper.CartCHRBus interface.
func (cart *nrom) ReadCHR(addr uint16) uint8 {
	return cart.chr[addr%nromCHRSize]
}

// WriteCHR implements the mapper.CartCHRBus interface. Writes to CHR ROM are
// ignored.
func (cart *nrom) WriteCHR(addr uint16, data uint8) {
	if cart.chrRAM {
		cart.chr[addr%nromCHRSize] = data
	}
}

// GetRAM implements the mapper.CartRAMBus interface.
func (cart *nrom) GetRAM() []uint8 {
	return cart.ram
}
