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
	"github.com/gophernes/gophernes/hardware/memory/memorymap"
)

// RAM is the 2K of internal RAM. Addresses should be normalised with
// memorymap.MapAddress() before being passed to the RAM functions.
type RAM struct {
	data [memorymap.MaskRAM + 1]uint8
}

// Reset clears the contents of RAM.
func (ram *RAM) Reset() {
	clear(ram.data[:])
}

// Read implements the cpubus.Memory interface.
func (ram *RAM) Read(address uint16) uint8 {
	return ram.data[address&memorymap.MaskRAM]
}

// Write implements the cpubus.Memory interface.
func (ram *RAM) Write(address uint16, data uint8) {
	ram.data[address&memorymap.MaskRAM] = data
}
