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

package cpu_test

import (
	"testing"

	"github.com/gophernes/gophernes/hardware/cpu"
	"github.com/gophernes/gophernes/hardware/memory/cpubus"
	"github.com/gophernes/gophernes/test"
)

// the address of the test programs. the reset vector points here
const origin = uint16(0x8000)

type access struct {
	address uint16
	data    uint8
}

// mockMem is a flat 64k address space. writes are recorded so that tests can
// check for phantom writes.
type mockMem struct {
	internal [0x10000]uint8
	writes   []access
	reads    int
}

func newMockMem() *mockMem {
	mem := &mockMem{}
	mem.putVector(cpubus.Reset, origin)
	return mem
}

func (mem *mockMem) Read(address uint16) uint8 {
	mem.reads++
	return mem.internal[address]
}

func (mem *mockMem) Write(address uint16, data uint8) {
	mem.writes = append(mem.writes, access{address: address, data: data})
	mem.internal[address] = data
}

func (mem *mockMem) putInstructions(address uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.internal[address+uint16(i)] = b
	}
	return address + uint16(len(bytes))
}

func (mem *mockMem) putVector(vector uint16, address uint16) {
	mem.internal[vector] = uint8(address)
	mem.internal[vector+1] = uint8(address >> 8)
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	test.ExpectEquality(t, mem.internal[address], value, address)
}

// newTestCPU returns a reset CPU with the program placed at the origin.
func newTestCPU(program ...uint8) (*cpu.CPU, *mockMem) {
	mem := newMockMem()
	mem.putInstructions(origin, program...)
	mc := cpu.NewCPU(mem)
	mc.Reset()
	return mc, mem
}

// step executes one instruction and checks the validity of the result. the
// number of calls to the cycle callback must match the cycle count.
func step(t *testing.T, mc *cpu.CPU) int {
	t.Helper()

	var callbacks int
	err := mc.ExecuteInstruction(func() error {
		callbacks++
		return nil
	})
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, mc.LastResult.IsValid(), mc.LastResult.String())
	test.ExpectEquality(t, callbacks, mc.LastResult.Cycles, mc.LastResult.String())

	return mc.LastResult.Cycles
}
