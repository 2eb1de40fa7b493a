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

package test

import (
	"strings"
	"sync"
)

// Writer is an implementation of the io.Writer interface. It should be used
// to capture output and to compare with predefined strings. It is safe to
// write to from more than one goroutine.
type Writer struct {
	crit   sync.Mutex
	buffer strings.Builder
}

func (tw *Writer) Write(p []byte) (n int, err error) {
	tw.crit.Lock()
	defer tw.crit.Unlock()
	return tw.buffer.Write(p)
}

// Clear empties the buffer.
func (tw *Writer) Clear() {
	tw.crit.Lock()
	defer tw.crit.Unlock()
	tw.buffer.Reset()
}

// Compare buffered output with predefined/example string.
func (tw *Writer) Compare(s string) bool {
	return s == tw.String()
}

func (tw *Writer) String() string {
	tw.crit.Lock()
	defer tw.crit.Unlock()
	return tw.buffer.String()
}
