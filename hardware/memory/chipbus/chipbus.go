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

// Package chipbus defines how the memory bus talks to the chips that sit on
// it, namely the PPU and the APU (which on the NES also handles the
// controller ports and sprite DMA).
//
// Chips are attached to the memory bus with an implementation of the Handler
// interface. Until a chip is attached the bus uses the Disconnected type,
// which drives none of the data pins and so every read of the chip's
// registers returns the open bus value.
package chipbus

// Pins on the data bus driven by a chip. Chips should use DrivenPins rather
// than 0xff for clarity. Partially driven reads (eg. the controller ports)
// can use any appropriate value.
const (
	DrivenPins   = uint8(0xff)
	UndrivenPins = uint8(0x00)
)

// Handler is implemented by chips that have registers on the memory bus.
//
// The reg argument is the register number relative to the start of the
// chip's area, with mirroring removed. For the PPU this is 0 to 7 and for the
// APU it is 0 to 0x17.
type Handler interface {
	// ChipRead is called when the CPU reads a chip register. The mask return
	// value indicates which pins of the data bus are driven by the chip. Pins
	// that are not driven will take the open bus value.
	ChipRead(reg uint16) (data uint8, mask uint8)

	// ChipWrite is called when the CPU writes to a chip register. Every
	// write is forwarded, even writes to registers that are read-only.
	ChipWrite(reg uint16, data uint8)
}

// Disconnected is the Handler for a chip socket with nothing attached.
type Disconnected struct{}

// ChipRead implements the Handler interface.
func (Disconnected) ChipRead(_ uint16) (uint8, uint8) {
	return 0, UndrivenPins
}

// ChipWrite implements the Handler interface.
func (Disconnected) ChipWrite(_ uint16, _ uint8) {
}

// PPURegisters are the names of the eight PPU registers.
var PPURegisters = [8]string{
	"PPUCTRL", "PPUMASK", "PPUSTATUS", "OAMADDR",
	"OAMDATA", "PPUSCROLL", "PPUADDR", "PPUDATA",
}

// APURegisters are the names of the registers in the APU/IO area.
var APURegisters = [0x18]string{
	"SQ1_VOL", "SQ1_SWEEP", "SQ1_LO", "SQ1_HI",
	"SQ2_VOL", "SQ2_SWEEP", "SQ2_LO", "SQ2_HI",
	"TRI_LINEAR", "", "TRI_LO", "TRI_HI",
	"NOISE_VOL", "", "NOISE_LO", "NOISE_HI",
	"DMC_FREQ", "DMC_RAW", "DMC_START", "DMC_LEN",
	"OAMDMA", "SND_CHN", "JOY1", "JOY2",
}
