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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are used throughout the
// emulator for errors that we expect to happen and which can be reported to
// the user in a sensible way. For example, a cartridge file that is too short
// or a mapper type that is not supported.
//
// Curated errors are created with the Errorf() function. It takes a pattern
// and placeholder values in the same way as fmt.Errorf(). The pattern is kept
// and can be used to identify the error later with the Is() function.
//
//	e := curated.Errorf("cartridge: unsupported mapper (%d)", id)
//
//	if curated.Is(e, "cartridge: unsupported mapper (%d)") {
//		fmt.Println("true")
//	}
//
// Patterns that are tested for by other packages should be stored as an
// exported const string. For example, cartridge.UnsupportedMapper.
//
// The Has() function is similar to Is() but checks if a pattern occurs
// somewhere in the chain of wrapped errors, including errors wrapped with
// fmt.Errorf().
//
// The Error() function normalises the error chain so that duplicate adjacent
// parts are removed. Parts are separated by the sub-string ": ". This means
// that a function can wrap an error with its own context without worrying
// whether the called function already did the same thing:
//
//	cartridgeloader: cartridgeloader: file is truncated
//
// becomes:
//
//	cartridgeloader: file is truncated
//
// The IsAny() function answers whether the error, or an error it wraps, was
// created by curated.Errorf(). Errors that are not curated can be thought of
// as unexpected.
//
// Curated errors wrap every error in their value list so errors.Is() and
// errors.As() from the standard library work as expected.
package curated
