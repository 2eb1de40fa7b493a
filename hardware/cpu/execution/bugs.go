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

package execution

// Bug describes a known hardware bug that was triggered by an instruction.
type Bug string

// List of known CPU bugs.
const (
	NoBug Bug = ""

	// JMP (ind) does not carry into the high byte of the pointer when the
	// pointer is at the end of a page.
	JmpIndirectAddressingBug Bug = "indirect addressing bug"

	// SHA, SHX, SHY and TAS corrupt the high byte of the address when the
	// index crosses a page.
	UnstableHighByteBug Bug = "unstable high byte"
)
