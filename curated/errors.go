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

package curated

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// curated is an implementation of the go language error interface.
type curated struct {
	pattern string
	values  []any
}

// Errorf creates a new curated error. The pattern is not formatted until the
// Error() function is called.
func Errorf(pattern string, values ...any) error {
	return curated{
		pattern: pattern,
		values:  values,
	}
}

// Error returns the normalised error message.
func (er curated) Error() string {
	return normalise(fmt.Sprintf(er.pattern, er.values...))
}

// normalise removes adjacent duplicate parts of an error message.
func normalise(s string) string {
	return strings.Join(slices.Compact(strings.Split(s, ": ")), ": ")
}

// Unwrap returns every error in the value list. This allows curated errors to
// work with errors.Is() and errors.As() from the standard library.
func (er curated) Unwrap() []error {
	var w []error
	for _, v := range er.values {
		if e, ok := v.(error); ok {
			w = append(w, e)
		}
	}
	return w
}

// IsAny checks if the error, or any error it wraps, is a curated error.
func IsAny(err error) bool {
	var c curated
	return errors.As(err, &c)
}

// Is checks if error is a curated error with a specific pattern. Wrapped
// errors are not considered. Use Has() for that.
func Is(err error, pattern string) bool {
	if er, ok := err.(curated); ok {
		return er.pattern == pattern
	}
	return false
}

// Has checks if error is a curated error with a specific pattern or if the
// pattern occurs anywhere in the chain of wrapped errors. Errors wrapped with
// fmt.Errorf() and the %w verb are also followed.
func Has(err error, pattern string) bool {
	if err == nil {
		return false
	}

	if Is(err, pattern) {
		return true
	}

	switch w := err.(type) {
	case interface{ Unwrap() error }:
		return Has(w.Unwrap(), pattern)
	case interface{ Unwrap() []error }:
		for _, e := range w.Unwrap() {
			if Has(e, pattern) {
				return true
			}
		}
	}

	return false
}
