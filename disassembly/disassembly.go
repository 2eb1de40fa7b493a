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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/gophernes/gophernes/hardware/cpu/execution"
	"github.com/gophernes/gophernes/hardware/cpu/instructions"
)

// Peeker is the interface to memory required by the disassembler.
type Peeker interface {
	Peek(address uint16) uint8
}

// Entry is a disassembled instruction.
type Entry struct {
	// the Result will not be Final and has no cycle information
	Result execution.Result

	// the bytes that make up the instruction, including the opcode
	Bytes []uint8
}

// Bytecode returns the instruction bytes as a string of hex values.
func (e Entry) Bytecode() string {
	s := strings.Builder{}
	for i, b := range e.Bytes {
		if i > 0 {
			s.WriteRune(' ')
		}
		s.WriteString(fmt.Sprintf("%02x", b))
	}
	return s.String()
}

// String returns the address, the bytecode and the instruction in columns.
func (e Entry) String() string {
	return fmt.Sprintf("%-9s%s", e.Bytecode(), e.Result)
}

// Decode the instruction at the address.
func Decode(mem Peeker, address uint16) Entry {
	defns := instructions.GetDefinitions()

	opcode := mem.Peek(address)
	defn := &defns[opcode]

	e := Entry{
		Result: execution.Result{
			Address:   address,
			Defn:      defn,
			ByteCount: defn.Bytes,
		},
		Bytes: make([]uint8, 0, defn.Bytes),
	}

	e.Bytes = append(e.Bytes, opcode)
	for i := 1; i < defn.Bytes; i++ {
		e.Bytes = append(e.Bytes, mem.Peek(address+uint16(i)))
	}

	switch len(e.Bytes) {
	case 2:
		e.Result.InstructionData = uint16(e.Bytes[1])
	case 3:
		e.Result.InstructionData = uint16(e.Bytes[1]) | uint16(e.Bytes[2])<<8
	}

	return e
}

// Linear decodes count instructions starting at the address. Decoding wraps
// around at the top of memory.
func Linear(mem Peeker, address uint16, count int) []Entry {
	entries := make([]Entry, 0, count)
	for range count {
		e := Decode(mem, address)
		entries = append(entries, e)
		address += uint16(len(e.Bytes))
	}
	return entries
}
