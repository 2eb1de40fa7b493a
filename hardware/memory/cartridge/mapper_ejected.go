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
	"github.com/gophernes/gophernes/curated"
	"github.com/gophernes/gophernes/hardware/memory/cartridge/mapper"
)

const ejectedName = "ejected"
const ejectedHash = "nohash"

// ejected implements the mapper.CartMapper interface. Nothing is driven on
// the data bus.
type ejected struct{}

func newEjected() *ejected {
	return &ejected{}
}

func (cart *ejected) String() string {
	return cart.ID()
}

func (cart *ejected) ID() string {
	return "-"
}

func (cart *ejected) Reset() {
}

func (cart *ejected) Snapshot() mapper.CartMapper {
	return cart
}

func (cart *ejected) Read(_ uint16) (uint8, uint8) {
	return 0, mapper.CartUndrivenPins
}

func (cart *ejected) Write(_ uint16, _ uint8) {
}

func (cart *ejected) Patch(_ uint16, _ uint8) error {
	return curated.Errorf("cartridge: patching not possible on ejected cartridge")
}

func (cart *ejected) NumBanks() int {
	return 0
}

func (cart *ejected) GetBank(_ uint16) mapper.BankInfo {
	return mapper.BankInfo{NonCart: true}
}

func (cart *ejected) Mirroring() mapper.Mirroring {
	return mapper.Horizontal
}
