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

// Package memorymap facilitates the translation of addresses to primary
// address equivalents.
//
// Because of the limited number of address lines decoded by the NES, a
// number of different addresses map to the same memory location. The 2K of
// internal RAM is mirrored four times across the first 8K of the address
// space and the eight PPU registers are mirrored across the following 8K.
//
// The MapAddress() function returns the area an address belongs to and the
// offset of the address within that area, with mirroring removed.
package memorymap
