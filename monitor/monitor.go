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
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gophernes/gophernes/curated"
	"github.com/gophernes/gophernes/disassembly"
	"github.com/gophernes/gophernes/hardware"
	"github.com/gophernes/gophernes/logger"
)

// Input is the source of key presses for the monitor.
type Input interface {
	// ReadKey returns the next key press. The io.EOF error indicates that
	// there will be no more input
	ReadKey() (rune, error)
}

// List of keys recognised by the monitor.
const (
	KeyStep     = 's'
	KeyNMI      = 'n'
	KeyIRQ      = 'i'
	KeyReset    = 'r'
	KeyUndo     = 'u'
	KeyList     = 'l'
	KeyZeroPage = 'z'
	KeyDump     = 'd'
	KeyLog      = 'g'
	KeyHelp     = 'h'
	KeyQuit     = 'q'
)

// the number of instructions shown by the list command.
const listLength = 8

// the maximum number of steps that can be undone.
const maxUndo = 100

// Monitor is the interactive front-end.
type Monitor struct {
	nes    *hardware.NES
	input  Input
	output io.Writer

	// file to write the graphviz dump to. if empty the dump is written to
	// the output
	DotFile string

	// snapshots taken before each step
	undo []*hardware.State
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
func NewMonitor(nes *hardware.NES, input Input, output io.Writer) *Monitor {
	return &Monitor{
		nes:    nes,
		input:  input,
		output: output,
	}
}

func (m *Monitor) printf(format string, args ...any) {
	fmt.Fprintf(m.output, format, args...)
}

// Run the monitor until the quit key is pressed or until the input is
// exhausted.
func (m *Monitor) Run() error {
	m.printf("%s\n", m.nes.Mem.Cart.Summary())
	m.printState()

	for {
		key, err := m.input.ReadKey()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return curated.Errorf("monitor: %v", err)
		}

		quit, err := m.Command(key)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// Command performs the action for the key. Returns true if the key was the
// quit key.
func (m *Monitor) Command(key rune) (bool, error) {
	switch key {
	case KeyStep, ' ':
		m.undo = append(m.undo, m.nes.Snapshot())
		if len(m.undo) > maxUndo {
			m.undo = m.undo[1:]
		}

		if _, err := m.nes.Step(); err != nil {
			return false, err
		}
		m.printf("%s\n", m.nes.CPU.LastResult)
		m.printState()

	case KeyUndo:
		if len(m.undo) == 0 {
			m.printf("nothing to undo\n")
			break
		}
		m.nes.Plumb(m.undo[len(m.undo)-1])
		m.undo = m.undo[:len(m.undo)-1]
		m.printState()

	case KeyNMI:
		m.nes.AssertNMI()
		m.printf("NMI asserted\n")

	case KeyIRQ:
		if m.nes.CPU.IRQAsserted() {
			m.nes.ReleaseIRQ()
			m.printf("IRQ released\n")
		} else {
			m.nes.AssertIRQ()
			m.printf("IRQ asserted\n")
		}

	case KeyReset:
		m.nes.Reset()
		m.undo = m.undo[:0]
		m.printf("%s\n", m.nes.CPU.LastResult)
		m.printState()

	case KeyList:
		for _, e := range disassembly.Linear(m.nes.Mem, m.nes.CPU.PC.Address(), listLength) {
			m.printf("%s\n", e)
		}

	case KeyZeroPage:
		m.printZeroPage()

	case KeyDump:
		if err := m.dump(); err != nil {
			return false, err
		}

	case KeyLog:
		logger.Tail(m.output, 10)

	case KeyHelp:
		m.printf("%s", help)

	case KeyQuit:
		return true, nil

	default:
		m.printf("unknown key (%q). press %c for help\n", key, KeyHelp)
	}

	return false, nil
}

func (m *Monitor) printState() {
	m.printf("%s cycles=%d\n", m.nes.CPU, m.nes.Cycles)
	if m.nes.CPU.Killed {
		m.printf("CPU is jammed. press %c to reset\n", KeyReset)
	}
}

func (m *Monitor) printZeroPage() {
	s := strings.Builder{}
	for row := uint16(0); row < 0x100; row += 0x10 {
		s.WriteString(fmt.Sprintf("%02x:", row))
		for col := uint16(0); col < 0x10; col++ {
			s.WriteString(fmt.Sprintf(" %02x", m.nes.Mem.Peek(row+col)))
		}
		s.WriteString("\n")
	}
	m.printf("%s", s.String())
}

func (m *Monitor) dump() error {
	if m.DotFile == "" {
		DumpState(m.output, m.nes)
		return nil
	}

	f, err := os.Create(m.DotFile)
	if err != nil {
		return curated.Errorf("monitor: %v", err)
	}
	DumpState(f, m.nes)
	if err := f.Close(); err != nil {
		return curated.Errorf("monitor: %v", err)
	}

	m.printf("state written to %s\n", m.DotFile)
	return nil
}

var help = fmt.Sprintf(`%c or space  step one instruction
%c  undo last step
%c  assert NMI
%c  toggle IRQ line
%c  reset
%c  list upcoming instructions
%c  show zero page
%c  write state as graphviz
%c  show recent log entries
%c  show this help
%c  quit
`, KeyStep, KeyUndo, KeyNMI, KeyIRQ, KeyReset, KeyList, KeyZeroPage, KeyDump, KeyLog, KeyHelp, KeyQuit)
