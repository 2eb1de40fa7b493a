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

	"github.com/gophernes/gophernes/curated"
	"github.com/pkg/term"
)

// the device opened by OpenRawTerm().
const ttyDevice = "/dev/tty"

// RawTerm reads single key presses from the terminal. The terminal is put into
// raw mode when the RawTerm is opened and restored when it is closed.
type RawTerm struct {
	t   *term.Term
	buf [1]byte
}

// OpenRawTerm opens the controlling terminal in raw mode.
func OpenRawTerm() (*RawTerm, error) {
	t, err := term.Open(ttyDevice, term.RawMode)
	if err != nil {
		return nil, curated.Errorf("monitor: %v", err)
	}
	return &RawTerm{t: t}, nil
}

// ReadKey implements the Input interface. The interrupt and end-of-file
// control characters are returned as the quit key.
func (rt *RawTerm) ReadKey() (rune, error) {
	_, err := rt.t.Read(rt.buf[:])
	if err != nil {
		return 0, err
	}

	switch rt.buf[0] {
	case 0x03, 0x04:
		return KeyQuit, nil
	case '\r':
		return KeyStep, nil
	}

	return rune(rt.buf[0]), nil
}

// Close restores the terminal to the state it was in before it was opened.
func (rt *RawTerm) Close() error {
	if err := rt.t.Restore(); err != nil {
		_ = rt.t.Close()
		return curated.Errorf("monitor: %v", err)
	}
	return rt.t.Close()
}

// a terminal in raw mode does not translate newlines into carriage return and
// newline pairs.
type crlf struct {
	w io.Writer
}

// NewCRLFWriter returns a writer that replaces every newline with a carriage
// return and newline pair. Output to a terminal in raw mode should be wrapped
// with this writer.
func NewCRLFWriter(w io.Writer) io.Writer {
	return &crlf{w: w}
}

func (c *crlf) Write(p []byte) (int, error) {
	out := make([]byte, 0, len(p)+8)
	for _, b := range p {
		if b == '\n' {
			out = append(out, '\r')
		}
		out = append(out, b)
	}
	if _, err := c.w.Write(out); err != nil {
		return 0, err
	}
	return len(p), nil
}
