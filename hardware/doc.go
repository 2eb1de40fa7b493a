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

// Package hardware is the base package for the NES emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The NES type is the root of the emulation and contains external references
// to all the console sub-systems. From here, the emulation can either be
// started to run continuously (with optional hooks to check for continuation
// of the emulation), or it can be stepped instruction by instruction.
//
// The OnCycle field of the NES type is called after every CPU cycle. It is the
// point at which other chips, like the PPU and APU, should be synchronised
// with the CPU. The number of PPU ticks for every CPU cycle is given by the
// Clock field.
package hardware
