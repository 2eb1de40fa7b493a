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
	"github.com/gophernes/gophernes/hardware/memory/cartridge/mapper"
)

// Image is the contents of a cartridge, ready to be attached.
type Image struct {
	// the name of the file the image was loaded from. can be empty
	Filename string

	// SHA1 hash of the image file. if the field is empty then a hash of the
	// PRG and CHR data is used
	Hash string

	PRG []uint8

	// if the CHR slice is empty then the cartridge is assumed to have 8K of
	// CHR RAM
	CHR []uint8

	MapperID  int
	Mirroring mapper.Mirroring

	// the cartridge has RAM in the 0x6000 to 0x7fff range
	PRGRAM bool

	// the PRG RAM is battery backed
	Battery bool
}
