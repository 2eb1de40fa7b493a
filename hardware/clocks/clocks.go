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

// Package clocks defines the constant values that define the speed of the main
// clock in the NES console.
//
// The CPU clock is derived from the master clock. The PPU is clocked three
// times for every CPU cycle on NTSC machines and 3.2 times on PAL machines.
//
// Values taken from:
// https://www.nesdev.org/wiki/Cycle_reference_chart
package clocks

import "math"

// CPU clock speeds in MHz.
const (
	NTSC  = 1.789773
	PAL   = 1.662607
	Dendy = 1.773448
)

// PPU clock speeds in MHz.
const (
	NTSC_PPU  = NTSC * 3
	PAL_PPU   = PAL * 3.2
	Dendy_PPU = Dendy * 3
)

// Spec describes the timing of a particular type of console.
type Spec struct {
	ID string

	// CPU clock in MHz
	CPU float64

	// number of PPU dots for every CPU cycle, multiplied by ten to keep the
	// value integral
	PPUTicksPerCPUCycleX10 int
}

// The console timings.
var (
	SpecNTSC  = Spec{ID: "NTSC", CPU: NTSC, PPUTicksPerCPUCycleX10: 30}
	SpecPAL   = Spec{ID: "PAL", CPU: PAL, PPUTicksPerCPUCycleX10: 32}
	SpecDendy = Spec{ID: "Dendy", CPU: Dendy, PPUTicksPerCPUCycleX10: 30}
)

func (s Spec) String() string {
	return s.ID
}

// CyclesPerSecond returns the number of CPU cycles in one second of emulated
// time.
func (s Spec) CyclesPerSecond() uint64 {
	return uint64(math.Round(s.CPU * 1000000))
}
