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

package registers

import (
	"fmt"
)

// StackOrigin is the address of the first byte in the stack page.
const StackOrigin = uint16(0x0100)

// StackPointer is the 8 bit SP register. The value is an offset into the
// stack page. There is no overflow or underflow detection, the value simply
// wraps around within the page.
type StackPointer struct {
	value uint8
}

// NewStackPointer is the preferred method of initialisation for the
// StackPointer type.
func NewStackPointer(val uint8) StackPointer {
	return StackPointer{value: val}
}

// Label returns an identifying string for the SP.
func (sp StackPointer) Label() string {
	return "SP"
}

func (sp StackPointer) String() string {
	return fmt.Sprintf("%s=%#02x", sp.Label(), sp.value)
}

// Value returns the current value of the SP.
func (sp StackPointer) Value() uint8 {
	return sp.value
}

// Address returns the absolute address in memory the SP is pointing to.
func (sp StackPointer) Address() uint16 {
	return StackOrigin | uint16(sp.value)
}

// Load a value into the SP.
func (sp *StackPointer) Load(val uint8) {
	sp.value = val
}

// Decrement is used after a push. Wraps from 0x00 to 0xff.
func (sp *StackPointer) Decrement() {
	sp.value--
}

// Increment is used before a pull. Wraps from 0xff to 0x00.
func (sp *StackPointer) Increment() {
	sp.value++
}
