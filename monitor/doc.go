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

// Package monitor is a simple interactive front-end for the emulation. Each
// key press is a command. The most important command is the step command,
// which executes one CPU instruction and prints the result along with the
// state of the CPU.
//
// Keys are read through the Input interface. The RawTerm type is an
// implementation of Input that reads single key presses from the controlling
// terminal.
//
// The state of the CPU can be written as a graphviz description with the
// DumpState() function.
package monitor
