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
	"crypto/sha1"
	"fmt"

	"github.com/gophernes/gophernes/curated"
	"github.com/gophernes/gophernes/hardware/memory/cartridge/mapper"
	"github.com/gophernes/gophernes/logger"
)

// Sentinal error patterns.
const (
	UnsupportedMapper = "cartridge: unsupported mapper (%d)"
	InvalidPRGSize    = "cartridge: %s: invalid PRG size (%d bytes)"
	InvalidCHRSize    = "cartridge: %s: invalid CHR size (%d bytes)"
)

// Cartridge defines the information and operations for an NES cartridge.
type Cartridge struct {
	Filename string
	Hash     string

	// the cartridge RAM is battery backed and would survive power off
	Battery bool

	// the specific cartridge data, mapped appropriately to the memory
	// interfaces
	mapper mapper.CartMapper
}

// NewCartridge is the preferred method of initialisation for the cartridge
// type. The new cartridge is ejected.
func NewCartridge() *Cartridge {
	cart := &Cartridge{}
	cart.Eject()
	return cart
}

func (cart *Cartridge) String() string {
	return cart.Summary()
}

// Snapshot returns a copy of the cartridge. Cartridge memory, including ROM,
// is copied.
func (cart *Cartridge) Snapshot() *Cartridge {
	n := *cart
	n.mapper = cart.mapper.Snapshot()
	return &n
}

// Summary returns brief information about the cartridge. Two lines: first line
// is the name of the cartridge and the second line is information about the
// mapper.
func (cart *Cartridge) Summary() string {
	if cart.Battery {
		return fmt.Sprintf("%s\n%s [battery]", cart.Filename, cart.mapper)
	}
	return fmt.Sprintf("%s\n%s", cart.Filename, cart.mapper)
}

// ID returns the cartridge mapper ID.
func (cart *Cartridge) ID() string {
	return cart.mapper.ID()
}

// Eject removes memory from cartridge space. Reads from the cartridge space
// will return the open bus value.
func (cart *Cartridge) Eject() {
	cart.Filename = ejectedName
	cart.Hash = ejectedHash
	cart.Battery = false
	cart.mapper = newEjected()
}

// IsEjected returns true if no cartridge is attached.
func (cart *Cartridge) IsEjected() bool {
	return cart.Hash == ejectedHash
}

// Attach the cartridge image. On error the cartridge will be left in the
// ejected state.
func (cart *Cartridge) Attach(img Image) error {
	cart.Eject()

	var m mapper.CartMapper
	var err error

	switch img.MapperID {
	case 0:
		m, err = newNROM(img)
	default:
		return curated.Errorf(UnsupportedMapper, img.MapperID)
	}

	if err != nil {
		return curated.Errorf("cartridge: %v", err)
	}

	cart.mapper = m
	cart.Filename = img.Filename
	cart.Hash = img.Hash
	cart.Battery = img.Battery
	if cart.Hash == "" {
		h := sha1.New()
		h.Write(img.PRG)
		h.Write(img.CHR)
		cart.Hash = fmt.Sprintf("%x", h.Sum(nil))
	}

	logger.Logf(logger.Allow, "cartridge", "attached %s (%s)", cart.mapper, cart.Hash)

	return nil
}

// Reset volatile areas of the cartridge.
func (cart *Cartridge) Reset() {
	cart.mapper.Reset()
}

// Read is an implementation of cpubus.Memory, except for the additional mask
// return value. See the mapper.CartMapper interface.
func (cart *Cartridge) Read(addr uint16) (uint8, uint8) {
	return cart.mapper.Read(addr)
}

// Write is an implementation of cpubus.Memory.
func (cart *Cartridge) Write(addr uint16, data uint8) {
	cart.mapper.Write(addr, data)
}

// Peek reads the cartridge without any side effects. The boolean return value
// is false if the address is not driven by the cartridge.
func (cart *Cartridge) Peek(addr uint16) (uint8, bool) {
	data, mask := cart.mapper.Read(addr)
	return data, mask != mapper.CartUndrivenPins
}

// Patch writes to cartridge memory, including ROM.
func (cart *Cartridge) Patch(addr uint16, data uint8) error {
	return cart.mapper.Patch(addr, data)
}

// NumBanks returns the number of banks in the cartridge.
func (cart *Cartridge) NumBanks() int {
	return cart.mapper.NumBanks()
}

// GetBank returns the current bank information for the specified address.
func (cart *Cartridge) GetBank(addr uint16) mapper.BankInfo {
	return cart.mapper.GetBank(addr)
}

// Mirroring returns the nametable mirroring of the cartridge.
func (cart *Cartridge) Mirroring() mapper.Mirroring {
	return cart.mapper.Mirroring()
}

// GetCHRBus returns the CHR bus of the cartridge, for use by the PPU. Returns
// nil if the cartridge has no CHR memory.
func (cart *Cartridge) GetCHRBus() mapper.CartCHRBus {
	if bus, ok := cart.mapper.(mapper.CartCHRBus); ok {
		return bus
	}
	return nil
}

// GetRAMBus returns the PRG RAM bus of the cartridge. Returns nil if the
// cartridge mapper does not support PRG RAM.
func (cart *Cartridge) GetRAMBus() mapper.CartRAMBus {
	if bus, ok := cart.mapper.(mapper.CartRAMBus); ok {
		return bus
	}
	return nil
}
