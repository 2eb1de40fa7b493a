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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/gophernes/gophernes/cartridgeloader"
	"github.com/gophernes/gophernes/curated"
	"github.com/gophernes/gophernes/govern"
	"github.com/gophernes/gophernes/hardware"
	"github.com/gophernes/gophernes/logger"
	"github.com/gophernes/gophernes/modalflag"
	"github.com/gophernes/gophernes/monitor"
	"github.com/gophernes/gophernes/performance"
	"github.com/gophernes/gophernes/statsview"
	"github.com/gophernes/gophernes/version"
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch processes the command line and runs the selected mode. Returns the
// value to be used with os.Exit().
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubMode("RUN", "run the emulation")
	md.AddSubMode("MONITOR", "single step the CPU from the keyboard")
	md.AddSubMode("PERFORMANCE", "measure emulation speed")
	md.AddSubMode("VERSION", "print version information")
	md.AdditionalHelp(version.String())

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "MONITOR":
		err = monitorMode(md)

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return 20
	}

	return 0
}

// loadCartridge creates a new NES with the cartridge in the named file
// attached.
func loadCartridge(md *modalflag.Modes) (*hardware.NES, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return nil, curated.Errorf("NES cartridge required for %s mode", md)
	case 1:
	default:
		return nil, curated.Errorf("too many arguments for %s mode", md)
	}

	cartload := cartridgeloader.NewLoader(md.GetArg(0))
	if err := cartload.Load(); err != nil {
		return nil, err
	}

	img, err := cartload.Image()
	if err != nil {
		return nil, err
	}

	nes := hardware.NewNES()
	nes.Clock = cartload.Header.Timing.Clock()
	if err := nes.AttachCartridge(img); err != nil {
		return nil, err
	}

	return nes, nil
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	cycles := md.AddUint64("cycles", 0, "number of CPU cycles to run for (0 to run until interrupted)")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	trace := md.AddBool("trace", false, "print every instruction as it is executed")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(md.Output)
		defer logger.SetEcho(nil)
	}

	if *stats {
		statsview.Launch(md.Output)
	}

	nes, err := loadCartridge(md)
	if err != nil {
		return err
	}

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	var performanceFilter int

	continueCheck := func() (govern.State, error) {
		if *trace {
			fmt.Fprintf(md.Output, "%-24s %s\n", nes.CPU.LastResult, nes.CPU)
		}

		if nes.CPU.Killed {
			return govern.Ending, nil
		}

		performanceFilter++
		if performanceFilter >= hardware.PerformanceBrake {
			performanceFilter = 0
			select {
			case <-intChan:
				return govern.Ending, nil
			default:
			}
		}

		return govern.Running, nil
	}

	if *cycles > 0 {
		err = nes.RunForCycles(*cycles, continueCheck)
	} else {
		err = nes.Run(continueCheck)
	}
	if err != nil {
		return err
	}

	if nes.CPU.Killed {
		fmt.Fprintf(md.Output, "CPU jammed: %s\n", nes.CPU.LastResult)
	}
	fmt.Fprintf(md.Output, "%d cycles (%s): %s\n", nes.Cycles, nes.Clock, nes.CPU)

	return nil
}

func monitorMode(md *modalflag.Modes) error {
	md.NewMode()

	log := md.AddBool("log", false, "echo debugging log to stdout")
	dot := md.AddString("dot", "", "file to write graphviz state to (default is stdout)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	nes, err := loadCartridge(md)
	if err != nil {
		return err
	}

	rt, err := monitor.OpenRawTerm()
	if err != nil {
		return err
	}
	defer rt.Close()

	output := monitor.NewCRLFWriter(md.Output)

	if *log {
		logger.SetEcho(output)
		defer logger.SetEcho(nil)
	}

	m := monitor.NewMonitor(nes, rt, output)
	m.DotFile = *dot

	return m.Run()
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddDuration("duration", 5*time.Second, "run duration")
	profile := md.AddString("profile", "none", "create profile for emulator: CPU, MEM, TRACE, ALL (comma separated)")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(md.Output)
		defer logger.SetEcho(nil)
	}

	prof, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	nes, err := loadCartridge(md)
	if err != nil {
		return err
	}

	return performance.Check(md.Output, prof, nes, *duration)
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	fmt.Fprintln(md.Output, v)
	if *revision {
		fmt.Fprintln(md.Output, r)
	}

	return nil
}
