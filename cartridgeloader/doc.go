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

// Package cartridgeloader is used to specify the data that is to be attached
// to the emulated NES.
//
// When the cartridge is ready to be loaded into the emulator, the Load()
// function should be used. The Load() function handles loading of data from
// different sources. Currently local files and data over HTTP are supported.
//
// The loaded data should be in the iNES format, or the later NES 2.0
// extension of that format. The Image() function parses the data and returns
// a cartridge.Image that can be attached to the console.
//
//	cl := cartridgeloader.NewLoader("roms/nestest.nes")
//	err := cl.Load()
//	if err != nil {
//		return err
//	}
//	img, err := cl.Image()
//	if err != nil {
//		return err
//	}
//	err = nes.AttachCartridge(img)
package cartridgeloader
