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

package monitor_test

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gophernes/gophernes/hardware"
	"github.com/gophernes/gophernes/hardware/memory/cartridge"
	"github.com/gophernes/gophernes/monitor"
	"github.com/gophernes/gophernes/test"
)

// keys is an implementation of the monitor.Input interface.
type keys struct {
	k []rune
}

func (k *keys) ReadKey() (rune, error) {
	if len(k.k) == 0 {
		return 0, io.EOF
	}
	r := k.k[0]
	k.k = k.k[1:]
	return r, nil
}

func newTestNES(t *testing.T) *hardware.NES {
	t.Helper()

	prg := make([]uint8, 0x4000)
	copy(prg, []uint8{
		0xa9, 0x45, // LDA #$45
		0x85, 0x10, // STA $10
		0x02, // KIL
	})
	prg[0x3ffc] = 0x00
	prg[0x3ffd] = 0x80

	nes := hardware.NewNES()
	test.DemandSuccess(t, nes.AttachCartridge(cartridge.Image{PRG: prg}))
	return nes
}

func TestStep(t *testing.T) {
	nes := newTestNES(t)
	out := &test.Writer{}

	m := monitor.NewMonitor(nes, &keys{k: []rune("ss")}, out)
	test.DemandSuccess(t, m.Run())

	test.ExpectSuccess(t, strings.Contains(out.String(), "$8000 LDA #$45 [2]"))
	test.ExpectSuccess(t, strings.Contains(out.String(), "$8002 STA $10 [3]"))
	test.ExpectEquality(t, nes.Mem.Peek(0x0010), uint8(0x45))
}

func TestQuit(t *testing.T) {
	nes := newTestNES(t)
	out := &test.Writer{}

	m := monitor.NewMonitor(nes, &keys{k: []rune("sqs")}, out)
	test.DemandSuccess(t, m.Run())

	// the second step is never taken
	test.ExpectEquality(t, nes.CPU.PC.Address(), uint16(0x8002))
}

func TestUndo(t *testing.T) {
	nes := newTestNES(t)
	out := &test.Writer{}

	m := monitor.NewMonitor(nes, &keys{k: []rune("ssuuu")}, out)
	test.DemandSuccess(t, m.Run())

	test.ExpectEquality(t, nes.CPU.PC.Address(), uint16(0x8000))
	test.ExpectEquality(t, nes.Mem.Peek(0x0010), uint8(0x00))
	test.ExpectSuccess(t, strings.Contains(out.String(), "nothing to undo"))
}

func TestJam(t *testing.T) {
	nes := newTestNES(t)
	out := &test.Writer{}

	m := monitor.NewMonitor(nes, &keys{k: []rune("sss")}, out)
	test.DemandSuccess(t, m.Run())
	test.ExpectSuccess(t, nes.CPU.Killed)
	test.ExpectSuccess(t, strings.Contains(out.String(), "CPU is jammed"))

	_, err := m.Command(monitor.KeyReset)
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, nes.CPU.Killed)
	test.ExpectEquality(t, nes.CPU.PC.Address(), uint16(0x8000))
}

func TestInterruptKeys(t *testing.T) {
	nes := newTestNES(t)
	out := &test.Writer{}
	m := monitor.NewMonitor(nes, &keys{}, out)

	_, _ = m.Command(monitor.KeyNMI)
	test.ExpectSuccess(t, nes.CPU.NMIPending())

	_, _ = m.Command(monitor.KeyIRQ)
	test.ExpectSuccess(t, nes.CPU.IRQAsserted())
	_, _ = m.Command(monitor.KeyIRQ)
	test.ExpectFailure(t, nes.CPU.IRQAsserted())

	quit, err := m.Command('x')
	test.ExpectFailure(t, quit)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(out.String(), "unknown key"))
}

func TestList(t *testing.T) {
	nes := newTestNES(t)
	out := &test.Writer{}
	m := monitor.NewMonitor(nes, &keys{}, out)

	_, _ = m.Command(monitor.KeyList)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	test.DemandEquality(t, len(lines), 8)
	test.ExpectEquality(t, lines[0], "a9 45    $8000 LDA #$45")
	test.ExpectEquality(t, lines[2], "02       $8004 KIL")
}

func TestDump(t *testing.T) {
	nes := newTestNES(t)
	out := &test.Writer{}
	m := monitor.NewMonitor(nes, &keys{}, out)

	_, err := m.Command(monitor.KeyDump)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(out.String(), "digraph"))

	m.DotFile = filepath.Join(t.TempDir(), "state.dot")
	_, err = m.Command(monitor.KeyDump)
	test.ExpectSuccess(t, err)

	d, err := os.ReadFile(m.DotFile)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(d), "digraph"))
}

func TestCRLF(t *testing.T) {
	out := &test.Writer{}
	w := monitor.NewCRLFWriter(out)
	n, err := w.Write([]byte("a\nb\n"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 4)
	test.ExpectEquality(t, out.String(), "a\r\nb\r\n")
}

func TestHelp(t *testing.T) {
	nes := newTestNES(t)
	out := &test.Writer{}
	m := monitor.NewMonitor(nes, &keys{}, out)

	_, _ = m.Command(monitor.KeyHelp)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	for _, k := range []rune{
		monitor.KeyStep, monitor.KeyUndo, monitor.KeyNMI, monitor.KeyIRQ,
		monitor.KeyReset, monitor.KeyList, monitor.KeyZeroPage, monitor.KeyDump,
		monitor.KeyLog, monitor.KeyHelp, monitor.KeyQuit,
	} {
		var found bool
		for _, l := range lines {
			if strings.HasPrefix(l, string(k)+" ") {
				found = true
				break
			}
		}
		test.ExpectSuccess(t, found, string(k))
	}
}
