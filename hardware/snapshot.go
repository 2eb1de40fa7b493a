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

import (
	"github.com/gophernes/gophernes/hardware/cpu"
	"github.com/gophernes/gophernes/hardware/memory"
)

// State stores the NES sub-systems. It is produced by the Snapshot() function
// and can be restored with the Plumb() function.
type State struct {
	CPU    *cpu.CPU
	Mem    *memory.Memory
	Cycles uint64
}

// Snapshot the state of the NES sub-systems.
func (nes *NES) Snapshot() *State {
	return &State{
		CPU:    nes.CPU.Snapshot(),
		Mem:    nes.Mem.Snapshot(),
		Cycles: nes.Cycles,
	}
}

// Plumb a previously snapshotted system.
func (nes *NES) Plumb(state *State) {
	if state == nil {
		panic("nes: cannot plumb in a nil state")
	}

	// take another snapshot of the state before plumbing. we don't want the
	// machine to change what we have stored in the state
	nes.CPU = state.CPU.Snapshot()
	nes.Mem = state.Mem.Snapshot()
	nes.Cycles = state.Cycles

	nes.CPU.Plumb(nes.Mem)
}
