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

package monitor

import (
	"io"

	"github.com/bradleyjkemp/memviz"
	"github.com/gophernes/gophernes/hardware"
	"github.com/gophernes/gophernes/hardware/cpu/execution"
	"github.com/gophernes/gophernes/hardware/cpu/registers"
)

// state is the view of the emulation given to the graphviz generator. the
// complete NES type is too large to be useful as a graph.
type state struct {
	PC     uint16
	A      uint8
	X      uint8
	Y      uint8
	SP     uint8
	Status registers.StatusRegister

	LastResult execution.Result

	Killed     bool
	NMIPending bool
	IRQLine    bool

	// stack contents from the top of the stack to the end of the stack page
	Stack []uint8

	Cycles  uint64
	OpenBus uint8
}

// DumpState writes a graphviz description of the CPU state to w.
func DumpState(w io.Writer, nes *hardware.NES) {
	mc := nes.CPU

	s := &state{
		PC:         mc.PC.Address(),
		A:          mc.A.Value(),
		X:          mc.X.Value(),
		Y:          mc.Y.Value(),
		SP:         mc.SP.Value(),
		Status:     mc.Status,
		LastResult: mc.LastResult,
		Killed:     mc.Killed,
		NMIPending: mc.NMIPending(),
		IRQLine:    mc.IRQAsserted(),
		Cycles:     nes.Cycles,
		OpenBus:    nes.Mem.OpenBus(),
	}

	for a := uint16(mc.SP.Value()) + 1; a <= 0xff; a++ {
		s.Stack = append(s.Stack, nes.Mem.Peek(registers.StackOrigin|a))
	}

	memviz.Map(w, s)
}
