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

package disassembly_test

import (
	"testing"

	"github.com/gophernes/gophernes/disassembly"
	"github.com/gophernes/gophernes/hardware/cpu/instructions"
	"github.com/gophernes/gophernes/test"
)

type mockMem map[uint16]uint8

func (mem mockMem) Peek(address uint16) uint8 {
	return mem[address]
}

func TestDecode(t *testing.T) {
	mem := mockMem{
		0x8000: 0xa9, 0x8001: 0x45, // LDA #$45
		0x8002: 0x8d, 0x8003: 0x00, 0x8004: 0x20, // STA $2000
		0x8005: 0xd0, 0x8006: 0xfe, // BNE $8005
		0x8007: 0x0a, // ASL A
	}

	entries := disassembly.Linear(mem, 0x8000, 4)
	test.DemandEquality(t, len(entries), 4)

	test.ExpectEquality(t, entries[0].String(), "a9 45    $8000 LDA #$45")
	test.ExpectEquality(t, entries[1].Bytecode(), "8d 00 20")
	test.ExpectEquality(t, entries[1].Result.InstructionData, uint16(0x2000))
	test.ExpectEquality(t, entries[1].Result.String(), "$8002 STA $2000")
	test.ExpectEquality(t, entries[2].Result.String(), "$8005 BNE $8005")
	test.ExpectEquality(t, entries[3].Result.String(), "$8007 ASL A")
	test.ExpectEquality(t, entries[3].Result.Defn.Operator, instructions.Asl)
}

func TestWrap(t *testing.T) {
	mem := mockMem{
		0xffff: 0x4c, 0x0000: 0x34, 0x0001: 0x12, // JMP $1234
	}
	e := disassembly.Decode(mem, 0xffff)
	test.ExpectEquality(t, e.Result.InstructionData, uint16(0x1234))

	entries := disassembly.Linear(mem, 0xffff, 2)
	test.ExpectEquality(t, entries[1].Result.Address, uint16(0x0002))
}
