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

package performance_test

import (
	"strings"
	"testing"
	"time"

	"github.com/gophernes/gophernes/hardware"
	"github.com/gophernes/gophernes/hardware/clocks"
	"github.com/gophernes/gophernes/hardware/memory/cartridge"
	"github.com/gophernes/gophernes/performance"
	"github.com/gophernes/gophernes/test"
)

func TestCalcMHz(t *testing.T) {
	mhz, accuracy := performance.CalcMHz(clocks.SpecNTSC, 1789773, 1.0)
	test.ExpectApproximate(t, mhz, 1.789773, 1e-9)
	test.ExpectApproximate(t, accuracy, 100.0, 1e-9)

	mhz, accuracy = performance.CalcMHz(clocks.SpecNTSC, 1789773, 2.0)
	test.ExpectApproximate(t, mhz, 0.8948865, 1e-9)
	test.ExpectApproximate(t, accuracy, 50.0, 1e-9)

	_, accuracy = performance.CalcMHz(clocks.SpecPAL, 1662607, 1.0)
	test.ExpectApproximate(t, accuracy, 100.0, 1e-9)

	mhz, accuracy = performance.CalcMHz(clocks.SpecPAL, 100, 0)
	test.ExpectEquality(t, mhz, 0.0)
	test.ExpectEquality(t, accuracy, 0.0)
}

func TestParseProfileString(t *testing.T) {
	p, err := performance.ParseProfileString("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)

	p, err = performance.ParseProfileString("cpu, trace")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileTrace)
	test.ExpectEquality(t, p.String(), "CPU,TRACE")

	p, err = performance.ParseProfileString("all")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p.String(), "CPU,MEM,TRACE")

	_, err = performance.ParseProfileString("disk")
	test.ExpectFailure(t, err)
}

func TestCheck(t *testing.T) {
	prg := make([]uint8, 0x4000)
	copy(prg, []uint8{0xe8, 0x4c, 0x00, 0x80}) // INX; JMP $8000
	prg[0x3ffc] = 0x00
	prg[0x3ffd] = 0x80

	nes := hardware.NewNES()
	test.DemandSuccess(t, nes.AttachCartridge(cartridge.Image{PRG: prg}))

	out := &test.Writer{}
	test.ExpectSuccess(t, performance.Check(out, performance.ProfileNone, nes, 10*time.Millisecond))
	test.ExpectSuccess(t, strings.Contains(out.String(), "MHz"))
	test.ExpectSuccess(t, strings.Contains(out.String(), "of NTSC"))
	test.ExpectSuccess(t, nes.Cycles > 7)

	test.ExpectFailure(t, performance.Check(out, performance.ProfileNone, nes, 0))
}
