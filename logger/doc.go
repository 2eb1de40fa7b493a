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

// Package logger is the central log for the emulator. Entries are made with
// the Log() and Logf() functions and can be written to any io.Writer with
// Write() or Tail().
//
// Every entry has a tag and a detail string. The tag should be short and
// identify the part of the emulation that is making the entry, for example
// "cpu" or "cartridge".
//
// Adjacent entries that are identical are collapsed into a single entry with
// a repeat count. The log holds a maximum number of entries, with older
// entries being discarded as required.
//
// Logging is not intended for use in the innermost loops of the emulation.
// Log entries should be made on exceptional events only.
package logger
