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

package cartridgeloader

import (
	"fmt"

	"github.com/gophernes/gophernes/curated"
	"github.com/gophernes/gophernes/hardware/clocks"
	"github.com/gophernes/gophernes/hardware/memory/cartridge/mapper"
)

// Sentinal error patterns.
const (
	NotAnINESFile = "cartridgeloader: not an iNES file"
	TruncatedFile = "cartridgeloader: truncated file (%d bytes expected, %d bytes available)"
	InvalidSize   = "cartridgeloader: %s size in header is too large"
)

// the size of the iNES header and of the optional trainer that follows it.
const (
	headerSize  = 16
	trainerSize = 512
)

// the units in which PRG and CHR sizes are given in the header.
const (
	prgUnit = 0x4000
	chrUnit = 0x2000
)

// PRG and CHR sizes must be smaller than this.
const maxSize = 1 << 31

// ConsoleType is the type of console the cartridge was made for.
type ConsoleType int

// List of valid ConsoleType values.
const (
	ConsoleNES ConsoleType = iota
	ConsoleVsSystem
	ConsolePlaychoice
	ConsoleExtended
)

func (c ConsoleType) String() string {
	switch c {
	case ConsoleNES:
		return "NES/Famicom"
	case ConsoleVsSystem:
		return "Vs. System"
	case ConsolePlaychoice:
		return "Playchoice 10"
	case ConsoleExtended:
		return "extended"
	}
	return "unknown console"
}

// TimingMode is the television standard the cartridge was made for.
type TimingMode int

// List of valid TimingMode values.
const (
	TimingNTSC TimingMode = iota
	TimingPAL
	TimingMulti
	TimingDendy
)

func (t TimingMode) String() string {
	switch t {
	case TimingNTSC:
		return "NTSC"
	case TimingPAL:
		return "PAL"
	case TimingMulti:
		return "multi-region"
	case TimingDendy:
		return "Dendy"
	}
	return "unknown timing"
}

// Clock returns the clock specification for the timing mode. Multi-region
// cartridges are run with NTSC timing.
func (t TimingMode) Clock() clocks.Spec {
	switch t {
	case TimingPAL:
		return clocks.SpecPAL
	case TimingDendy:
		return clocks.SpecDendy
	}
	return clocks.SpecNTSC
}

// Header is the information in the 16 byte header of an iNES file.
type Header struct {
	// NES 2.0 format
	NES2 bool

	// sizes in bytes
	PRGSize int
	CHRSize int

	MapperID  int
	Mirroring mapper.Mirroring
	Battery   bool
	Trainer   bool

	// the cartridge has PRG RAM. for iNES files this is assumed if the
	// cartridge is battery backed
	PRGRAM bool

	Console ConsoleType
	Timing  TimingMode
}

func (h Header) String() string {
	format := "iNES"
	if h.NES2 {
		format = "NES 2.0"
	}
	return fmt.Sprintf("%s: mapper %d, %dK PRG, %dK CHR, %s, %s",
		format, h.MapperID, h.PRGSize/1024, h.CHRSize/1024, h.Mirroring, h.Timing)
}

// size decodes the PRG or CHR size from the LSB byte and the MSB nibble. An
// MSB nibble of 0xf means the LSB byte is in exponent-multiplier form.
func size(lsb uint8, msb uint8, unit int, name string) (int, error) {
	if msb != 0x0f {
		return (int(msb)<<8 | int(lsb)) * unit, nil
	}

	exponent := lsb >> 2
	if exponent >= 31 {
		return 0, curated.Errorf(InvalidSize, name)
	}

	sz := (uint64(1) << exponent) * uint64(lsb&0x03*2+1)
	if sz >= maxSize {
		return 0, curated.Errorf(InvalidSize, name)
	}

	return int(sz), nil
}

// ParseHeader decodes the iNES header at the start of the data.
func ParseHeader(data []byte) (Header, error) {
	var h Header

	if len(data) < 4 || string(data[:4]) != "NES\x1a" {
		return h, curated.Errorf(NotAnINESFile)
	}
	if len(data) < headerSize {
		return h, curated.Errorf(TruncatedFile, headerSize, len(data))
	}

	h.NES2 = data[7]&0x0c == 0x08

	var prgMSB, chrMSB uint8
	if h.NES2 {
		prgMSB = data[9] & 0x0f
		chrMSB = data[9] >> 4
	}
	var err error
	h.PRGSize, err = size(data[4], prgMSB, prgUnit, "PRG")
	if err != nil {
		return h, err
	}
	h.CHRSize, err = size(data[5], chrMSB, chrUnit, "CHR")
	if err != nil {
		return h, err
	}

	h.MapperID = int(data[6]>>4) | int(data[7]&0xf0)
	if h.NES2 {
		h.MapperID |= int(data[8]&0x0f) << 8
	}

	switch {
	case data[6]&0x08 == 0x08:
		h.Mirroring = mapper.FourScreen
	case data[6]&0x01 == 0x01:
		h.Mirroring = mapper.Vertical
	default:
		h.Mirroring = mapper.Horizontal
	}

	h.Battery = data[6]&0x02 == 0x02
	h.Trainer = data[6]&0x04 == 0x04
	h.Console = ConsoleType(data[7] & 0x03)

	if h.NES2 {
		h.Timing = TimingMode(data[12] & 0x03)
		h.PRGRAM = data[10] != 0
	} else {
		if data[9]&0x01 == 0x01 {
			h.Timing = TimingPAL
		}
		h.PRGRAM = h.Battery
	}

	return h, nil
}
