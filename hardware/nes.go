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
	"github.com/gophernes/gophernes/hardware/clocks"
	"github.com/gophernes/gophernes/hardware/cpu"
	"github.com/gophernes/gophernes/hardware/memory"
	"github.com/gophernes/gophernes/hardware/memory/cartridge"
	"github.com/gophernes/gophernes/logger"
)

// NES struct is the main container for the emulated components of the NES.
type NES struct {
	CPU *cpu.CPU
	Mem *memory.Memory

	// the timing of the console
	Clock clocks.Spec

	// the number of CPU cycles since power on
	Cycles uint64

	// OnCycle is called after every CPU cycle. can be nil
	OnCycle func() error
}

// NewNES creates a new NES and everything associated with the hardware. The
// cartridge slot is empty.
func NewNES() *NES {
	nes := &NES{
		Clock: clocks.SpecNTSC,
	}
	nes.Mem = memory.NewMemory()
	nes.CPU = cpu.NewCPU(nes.Mem)
	return nes
}

func (nes *NES) String() string {
	return nes.CPU.String()
}

// AttachCartridge inserts the cartridge image into the cartridge slot and
// powers on the console.
func (nes *NES) AttachCartridge(img cartridge.Image) error {
	if err := nes.Mem.Cart.Attach(img); err != nil {
		return err
	}
	nes.PowerOn()
	return nil
}

// Eject removes the cartridge and powers on the console.
func (nes *NES) Eject() {
	nes.Mem.Cart.Eject()
	nes.PowerOn()
}

// PowerOn clears the console memory and resets the CPU. The cycle count
// restarts from zero.
func (nes *NES) PowerOn() {
	nes.Mem.Reset()
	nes.Cycles = 0
	nes.Reset()
}

// Reset emulates the reset button on the console. Memory is not cleared.
func (nes *NES) Reset() {
	nes.CPU.Reset()
	nes.Cycles += uint64(nes.CPU.LastResult.Cycles)
	logger.Logf(logger.Allow, "nes", "reset: PC=%s", nes.CPU.PC)
}

// AssertNMI signals a non-maskable interrupt to the CPU.
func (nes *NES) AssertNMI() {
	nes.CPU.AssertNMI()
}

// AssertIRQ pulls the IRQ line low.
func (nes *NES) AssertIRQ() {
	nes.CPU.AssertIRQ()
}

// ReleaseIRQ releases the IRQ line.
func (nes *NES) ReleaseIRQ() {
	nes.CPU.ReleaseIRQ()
}

// cycle is the callback given to the CPU.
func (nes *NES) cycle() error {
	nes.Cycles++
	if nes.OnCycle != nil {
		return nes.OnCycle()
	}
	return nil
}
