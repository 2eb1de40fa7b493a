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

package modalflag

import (
	"flag"
	"io"
	"strings"
	"time"
)

// Modes handles a command line made up of modes, each with their own set of
// flags. The Output field should be set before calling Parse() or help
// messages will be discarded.
type Modes struct {
	Output io.Writer

	// flags for the current mode. replaced on every call to NewMode()
	flags *flag.FlagSet

	args    []string
	argsIdx int

	// sub-modes available to the next call to Parse(). the first entry is the
	// default
	subModes []subMode

	// modes selected so far
	path []string

	additionalHelp string
}

type subMode struct {
	name        string
	description string
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the most recently selected mode. Returns the empty string if
// no mode has been selected.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns all modes selected so far, separated by a slash.
func (md *Modes) Path() string {
	return strings.Join(md.path, "/")
}

// NewArgs starts processing of a new argument list. Any previously selected
// modes are forgotten.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.argsIdx = 0
	md.path = md.path[:0]
	md.NewMode()
}

// NewMode prepares for the flags and sub-modes of the next mode.
func (md *Modes) NewMode() {
	md.subModes = md.subModes[:0]
	md.additionalHelp = ""
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
}

// AdditionalHelp is printed after the flags and sub-modes in the help
// message for the current mode.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// ParseResult is returned from the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// Continue processing. Mode() will return the selected sub-mode if any
	// were specified.
	ParseContinue ParseResult = iota

	// Help was requested and has been printed. Treat as the end of command
	// line processing.
	ParseHelp

	// The arguments could not be parsed. The error is returned alongside.
	ParseError
)

// Parse flags for the current mode and select the next sub-mode, if any
// sub-modes have been added.
func (md *Modes) Parse() (ParseResult, error) {
	hw := &helpWriter{}
	md.flags.SetOutput(hw)

	err := md.flags.Parse(md.args[md.argsIdx:])
	if err != nil {
		if err == flag.ErrHelp {
			hw.help(md.Output, md.Path(), md.subModes, md.additionalHelp)
			return ParseHelp, nil
		}

		// an unrecognised flag may belong to the default sub-mode. the flags
		// are left in place for the next call to Parse()
		if len(md.subModes) == 0 {
			return ParseError, err
		}
		md.path = append(md.path, md.subModes[0].name)
		return ParseContinue, nil
	}

	md.argsIdx = len(md.args) - md.flags.NArg()

	if len(md.subModes) > 0 {
		md.path = append(md.path, md.selectSubMode())
	}

	return ParseContinue, nil
}

// selectSubMode consumes the next argument if it names a sub-mode. Returns
// the default sub-mode otherwise.
func (md *Modes) selectSubMode() string {
	arg := strings.ToUpper(md.flags.Arg(0))
	for _, m := range md.subModes {
		if m.name == arg {
			md.argsIdx++
			return m.name
		}
	}
	return md.subModes[0].name
}

// RemainingArgs returns the arguments that have not been consumed as a flag
// or as a sub-mode.
func (md *Modes) RemainingArgs() []string {
	return md.args[md.argsIdx:]
}

// GetArg returns the numbered remaining argument. Returns the empty string if
// the argument does not exist.
func (md *Modes) GetArg(i int) string {
	r := md.RemainingArgs()
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}

// AddSubModes for the next call to Parse(). The first sub-mode added is the
// default sub-mode. Names are case insensitive.
func (md *Modes) AddSubModes(subModes ...string) {
	for _, m := range subModes {
		md.AddSubMode(m, "")
	}
}

// AddSubMode adds a single sub-mode along with a description that is shown in
// the help message.
func (md *Modes) AddSubMode(name string, description string) {
	md.subModes = append(md.subModes, subMode{
		name:        strings.ToUpper(name),
		description: description,
	})
}

// AddBool flag for next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddUint64 flag for next call to Parse().
func (md *Modes) AddUint64(name string, value uint64, usage string) *uint64 {
	return md.flags.Uint64(name, value, usage)
}

// AddString flag for next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// AddDuration flag for next call to Parse(). Values are in the form accepted
// by time.ParseDuration().
func (md *Modes) AddDuration(name string, value time.Duration, usage string) *time.Duration {
	return md.flags.Duration(name, value, usage)
}
