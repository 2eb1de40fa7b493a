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

package cartridge_test

import (
	"strings"
	"testing"

	"github.com/gophernes/gophernes/curated"
	"github.com/gophernes/gophernes/hardware/memory/cartridge"
	"github.com/gophernes/gophernes/hardware/memory/cartridge/mapper"
	"github.com/gophernes/gophernes/test"
)

// prg returns PRG data where every byte is the bank number combined with
// the low bits of the offset.
func prg(size int) []uint8 {
	d := make([]uint8, size)
	for i := range d {
		d[i] = uint8(i/0x4000)<<7 | uint8(i&0x7f)
	}
	return d
}

func TestEjected(t *testing.T) {
	cart := cartridge.NewCartridge()
	test.ExpectSuccess(t, cart.IsEjected())

	_, mask := cart.Read(0x8000)
	test.ExpectEquality(t, mask, mapper.CartUndrivenPins)

	_, ok := cart.Peek(0xfffc)
	test.ExpectFailure(t, ok)
	test.ExpectFailure(t, cart.Patch(0x8000, 0x00))
	test.ExpectSuccess(t, cart.GetBank(0x8000).NonCart)
}

func TestNROM16K(t *testing.T) {
	cart := cartridge.NewCartridge()
	err := cart.Attach(cartridge.Image{PRG: prg(0x4000), CHR: make([]uint8, 0x2000)})
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, cart.IsEjected())
	test.ExpectEquality(t, cart.ID(), "NROM")
	test.ExpectEquality(t, cart.NumBanks(), 1)

	// 16K is mirrored into both halves
	for a := uint32(0x8000); a <= 0xbfff; a++ {
		lo, mask := cart.Read(uint16(a))
		test.DemandEquality(t, mask, mapper.CartDrivenPins)
		hi, _ := cart.Read(uint16(a + 0x4000))
		test.DemandEquality(t, lo, hi, a)
	}

	test.ExpectEquality(t, cart.GetBank(0xc000).Number, 0)

	// writes to ROM are ignored
	cart.Write(0x8001, 0xff)
	d, _ := cart.Read(0x8001)
	test.ExpectEquality(t, d, 0x01)

	// no PRG RAM
	_, mask := cart.Read(0x6000)
	test.ExpectEquality(t, mask, mapper.CartUndrivenPins)
	test.ExpectSuccess(t, cart.GetRAMBus().GetRAM() == nil)
}

func TestNROM32K(t *testing.T) {
	cart := cartridge.NewCartridge()
	err := cart.Attach(cartridge.Image{PRG: prg(0x8000), CHR: make([]uint8, 0x2000)})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cart.NumBanks(), 2)

	// 32K is not mirrored
	d, _ := cart.Read(0x8005)
	test.ExpectEquality(t, d, 0x05)
	d, _ = cart.Read(0xc005)
	test.ExpectEquality(t, d, 0x85)
	test.ExpectEquality(t, cart.GetBank(0xc000).Number, 1)

	// reading never changes the state of the mapper
	for range 10 {
		d, _ = cart.Read(0xc005)
		test.ExpectEquality(t, d, 0x85)
	}

	// patching changes ROM
	test.ExpectSuccess(t, cart.Patch(0xfffc, 0x12))
	d, _ = cart.Peek(0xfffc)
	test.ExpectEquality(t, d, 0x12)
}

func TestPRGRAM(t *testing.T) {
	cart := cartridge.NewCartridge()
	err := cart.Attach(cartridge.Image{PRG: prg(0x4000), PRGRAM: true})
	test.DemandSuccess(t, err)

	cart.Write(0x6000, 0xaa)
	cart.Write(0x7fff, 0x55)
	d, mask := cart.Read(0x6000)
	test.ExpectEquality(t, d, 0xaa)
	test.ExpectEquality(t, mask, mapper.CartDrivenPins)
	d, _ = cart.Read(0x7fff)
	test.ExpectEquality(t, d, 0x55)
	test.ExpectSuccess(t, cart.GetBank(0x6000).IsRAM)
	test.ExpectEquality(t, len(cart.GetRAMBus().GetRAM()), 0x2000)

	// the area below the RAM is never driven
	_, mask = cart.Read(0x5000)
	test.ExpectEquality(t, mask, mapper.CartUndrivenPins)
	test.ExpectFailure(t, cart.Battery)
}

func TestBattery(t *testing.T) {
	cart := cartridge.NewCartridge()
	err := cart.Attach(cartridge.Image{Filename: "save.nes", PRG: prg(0x4000), PRGRAM: true, Battery: true})
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, cart.Battery)
	test.ExpectSuccess(t, strings.HasSuffix(cart.Summary(), "[battery]"))

	cart.Eject()
	test.ExpectFailure(t, cart.Battery)
	test.ExpectFailure(t, strings.Contains(cart.Summary(), "battery"))
}

func TestCHR(t *testing.T) {
	chr := make([]uint8, 0x2000)
	chr[0x10] = 0x42

	// CHR ROM
	cart := cartridge.NewCartridge()
	test.DemandSuccess(t, cart.Attach(cartridge.Image{PRG: prg(0x4000), CHR: chr, Mirroring: mapper.Vertical}))
	bus := cart.GetCHRBus()
	test.ExpectEquality(t, bus.ReadCHR(0x0010), 0x42)
	bus.WriteCHR(0x0010, 0x00)
	test.ExpectEquality(t, bus.ReadCHR(0x0010), 0x42)
	test.ExpectEquality(t, cart.Mirroring(), mapper.Vertical)

	// CHR RAM
	cart = cartridge.NewCartridge()
	test.DemandSuccess(t, cart.Attach(cartridge.Image{PRG: prg(0x4000)}))
	bus = cart.GetCHRBus()
	bus.WriteCHR(0x1fff, 0x99)
	test.ExpectEquality(t, bus.ReadCHR(0x1fff), 0x99)
}

func TestAttachErrors(t *testing.T) {
	cart := cartridge.NewCartridge()

	err := cart.Attach(cartridge.Image{PRG: prg(0x4000), MapperID: 4})
	test.ExpectSuccess(t, curated.Is(err, cartridge.UnsupportedMapper))
	test.ExpectSuccess(t, cart.IsEjected())

	err = cart.Attach(cartridge.Image{PRG: prg(0x2000)})
	test.ExpectSuccess(t, curated.Has(err, cartridge.InvalidPRGSize))
	test.ExpectSuccess(t, cart.IsEjected())

	err = cart.Attach(cartridge.Image{PRG: prg(0x4000), CHR: make([]uint8, 0x1000)})
	test.ExpectSuccess(t, curated.Has(err, cartridge.InvalidCHRSize))
}
