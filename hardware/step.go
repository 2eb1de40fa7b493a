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

package hardware

// Step the emulation one CPU instruction. Returns the number of cycles taken
// by the instruction or interrupt sequence.
//
// An error is only returned if the OnCycle hook returns an error, in which
// case the instruction may not have completed.
func (nes *NES) Step() (int, error) {
	err := nes.CPU.ExecuteInstruction(nes.cycle)
	return nes.CPU.LastResult.Cycles, err
}
