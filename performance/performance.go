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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/gophernes/gophernes/curated"
	"github.com/gophernes/gophernes/govern"
	"github.com/gophernes/gophernes/hardware"
	"github.com/gophernes/gophernes/hardware/clocks"
)

// Check the performance of the emulation. The NES should already have a
// cartridge attached.
//
// Emulation will run for the specified duration and will create a cpu, memory
// profile, a trace (or a combination of those) as defined by the Profile
// argument.
func Check(output io.Writer, profile Profile, nes *hardware.NES, dur time.Duration) error {
	if dur <= 0 {
		return curated.Errorf("performance: duration must be positive (%s)", dur)
	}

	var startCycles uint64
	var startTime time.Time
	var elapsed time.Duration

	runner := func() error {
		timesUp := make(chan bool, 1)
		time.AfterFunc(dur, func() {
			timesUp <- true
		})

		// checking the channel is relatively expensive so only do it every
		// PerformanceBrake instructions
		performanceBrake := 0

		startCycles = nes.Cycles
		startTime = time.Now()

		err := nes.Run(func() (govern.State, error) {
			performanceBrake++
			if performanceBrake >= hardware.PerformanceBrake {
				performanceBrake = 0
				select {
				case <-timesUp:
					return govern.Ending, nil
				default:
				}
			}
			return govern.Running, nil
		})

		elapsed = time.Since(startTime)
		return err
	}

	if err := RunProfiler(profile, "performance", runner); err != nil {
		return curated.Errorf("performance: %v", err)
	}

	numCycles := nes.Cycles - startCycles
	mhz, accuracy := CalcMHz(nes.Clock, numCycles, elapsed.Seconds())
	fmt.Fprintf(output, "%.3f MHz (%d cycles in %.2f seconds) %.1f%% of %s\n", mhz, numCycles, elapsed.Seconds(), accuracy, nes.Clock)

	return nil
}

// CalcMHz takes the number of CPU cycles and the duration (in seconds) over
// which they were executed and returns the effective clock speed in MHz and
// the accuracy of that value as a percentage of the clock specification.
func CalcMHz(spec clocks.Spec, numCycles uint64, duration float64) (mhz float64, accuracy float64) {
	if duration <= 0 {
		return 0, 0
	}
	mhz = float64(numCycles) / duration / 1000000
	accuracy = 100 * float64(numCycles) / (duration * float64(spec.CyclesPerSecond()))
	return mhz, accuracy
}
