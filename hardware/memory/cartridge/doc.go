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

// Package cartridge fully implements loading of mapping of cartridge memory.
//
// A cartridge is attached with the Attach() function, which takes an Image.
// The Image contains the PRG and CHR data along with the mapper number and
// nametable mirroring. Images are usually created by the cartridgeloader
// package but can be created in any way, which is useful for testing.
//
// Only the NROM mapper (mapper number 0) is currently supported. Attaching an
// image with any other mapper number results in an UnsupportedMapper error.
//
// When no cartridge is attached the cartridge space of the memory bus is
// undriven and reads of that space return the open bus value.
package cartridge
