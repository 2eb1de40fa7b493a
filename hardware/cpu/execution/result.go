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

import (
	"fmt"
	"strings"

	"github.com/gophernes/gophernes/hardware/cpu/instructions"
)

// Interrupt indicates that the Result describes an interrupt sequence rather
// than an instruction.
type Interrupt int

// List of valid Interrupt values.
const (
	NoInterrupt Interrupt = iota
	Reset
	NMI
	IRQ
)

func (i Interrupt) String() string {
	switch i {
	case Reset:
		return "RESET"
	case NMI:
		return "NMI"
	case IRQ:
		return "IRQ"
	}
	return ""
}

// Result records the state/result of the most recent CPU instruction or
// interrupt sequence.
type Result struct {
	// address of the instruction
	Address uint16

	// the definition of the instruction. will be nil for interrupt sequences
	Defn *instructions.Definition

	// the number of bytes read during instruction decode. should be the same
	// as Defn.Bytes once the instruction has completed
	ByteCount int

	// the operand of the instruction. for branch instructions this is the
	// offset value
	InstructionData uint16

	// the actual number of cycles taken by the instruction
	Cycles int

	// whether an extra cycle was required because of 8 bit adder overflow
	PageFault bool

	// whether branch instruction test passed (ie. branched) or not
	BranchSuccess bool

	// whether a known buggy code path was triggered
	CPUBug Bug

	Interrupt Interrupt

	// whether this data has been finalised
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

// String returns a disassembly of the instruction. For example:
//
//	$8000 LDA #$45 [2]
func (r Result) String() string {
	if r.Interrupt != NoInterrupt {
		return fmt.Sprintf("%s [%d]", r.Interrupt, r.Cycles)
	}

	if r.Defn == nil {
		return fmt.Sprintf("$%04x ???", r.Address)
	}

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("$%04x %s", r.Address, r.Defn.Operator))

	if operand := r.operand(); operand != "" {
		s.WriteString(" ")
		s.WriteString(operand)
	}

	if r.Final {
		s.WriteString(fmt.Sprintf(" [%d]", r.Cycles))
	}

	return s.String()
}

func (r Result) operand() string {
	d := r.InstructionData

	switch r.Defn.AddressingMode {
	case instructions.Accumulator:
		return "A"
	case instructions.Immediate:
		return fmt.Sprintf("#$%02x", d)
	case instructions.Relative:
		// show the destination of the branch rather than the offset value
		dest := r.Address + 2 + uint16(int16(int8(d)))
		return fmt.Sprintf("$%04x", dest)
	case instructions.ZeroPage:
		return fmt.Sprintf("$%02x", d)
	case instructions.ZeroPageIndexedX:
		return fmt.Sprintf("$%02x,X", d)
	case instructions.ZeroPageIndexedY:
		return fmt.Sprintf("$%02x,Y", d)
	case instructions.Absolute:
		return fmt.Sprintf("$%04x", d)
	case instructions.AbsoluteIndexedX:
		return fmt.Sprintf("$%04x,X", d)
	case instructions.AbsoluteIndexedY:
		return fmt.Sprintf("$%04x,Y", d)
	case instructions.Indirect:
		return fmt.Sprintf("($%04x)", d)
	case instructions.IndexedIndirect:
		return fmt.Sprintf("($%02x,X)", d)
	case instructions.IndirectIndexed:
		return fmt.Sprintf("($%02x),Y", d)
	}

	return ""
}
