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

package test

import (
	"fmt"
	"math"
	"testing"
)

// report is either t.Errorf or t.Fatalf.
type report func(format string, args ...any)

// id returns a prefix for failure messages from the optional tags. Tags are
// useful when the test is inside a loop.
func id(tags ...any) string {
	if len(tags) == 0 {
		return ""
	}
	return fmt.Sprintf("%v: ", tags)
}

// success returns true if v is a success value for its type:
//
//	bool -> bool == true
//	error -> error == nil
//	nil -> always success
//
// Any other type is a fatal test error.
func success(t *testing.T, v any, tags ...any) bool {
	t.Helper()

	switch v := v.(type) {
	case nil:
		return true
	case bool:
		return v
	case error:
		return v == nil
	default:
		t.Fatalf("%sunsupported type (%T) for expectation testing", id(tags...), v)
	}

	return false
}

func equality[T comparable](t *testing.T, r report, v T, expectedValue T, tags ...any) bool {
	t.Helper()
	if v != expectedValue {
		r("%sequality test of type %T failed: '%v' does not equal '%v'", id(tags...), v, v, expectedValue)
		return false
	}
	return true
}

func succeeds(t *testing.T, r report, v any, tags ...any) bool {
	t.Helper()
	if !success(t, v, tags...) {
		if err, ok := v.(error); ok {
			r("%sexpected success (error: %v)", id(tags...), err)
		} else {
			r("%sexpected success (%T)", id(tags...), v)
		}
		return false
	}
	return true
}

func fails(t *testing.T, r report, v any, tags ...any) bool {
	t.Helper()
	if success(t, v, tags...) {
		r("%sexpected failure (%T)", id(tags...), v)
		return false
	}
	return true
}

// ExpectEquality is used to test equality between one value and another.
func ExpectEquality[T comparable](t *testing.T, v T, expectedValue T, tags ...any) bool {
	t.Helper()
	return equality(t, t.Errorf, v, expectedValue, tags...)
}

// ExpectInequality is used to test inequality between one value and another.
func ExpectInequality[T comparable](t *testing.T, v T, unexpectedValue T, tags ...any) bool {
	t.Helper()
	if v == unexpectedValue {
		t.Errorf("%sinequality test of type %T failed: '%v' does equal '%v'", id(tags...), v, v, unexpectedValue)
		return false
	}
	return true
}

// ExpectApproximate is used to test floating point values that are the
// result of a calculation. The test passes if the difference between the
// values is no more than the tolerance.
func ExpectApproximate[T ~float32 | ~float64](t *testing.T, v T, expectedValue T, tolerance float64, tags ...any) bool {
	t.Helper()
	if math.Abs(float64(v)-float64(expectedValue)) > tolerance {
		t.Errorf("%sapproximation test of type %T failed: '%v' is not within %v of '%v'", id(tags...), v, v, tolerance, expectedValue)
		return false
	}
	return true
}

// ExpectSuccess tests argument v for a success condition suitable for its
// type. See success() for the supported types.
func ExpectSuccess(t *testing.T, v any, tags ...any) bool {
	t.Helper()
	return succeeds(t, t.Errorf, v, tags...)
}

// ExpectFailure tests argument v for a failure condition suitable for its
// type. A nil value is not a failure.
func ExpectFailure(t *testing.T, v any, tags ...any) bool {
	t.Helper()
	return fails(t, t.Errorf, v, tags...)
}

// DemandEquality is the same as ExpectEquality() but a failure is a testing
// fatality. Useful when the values are used in further tests, for example
// the lengths of two slices that are to be iterated over in unison.
func DemandEquality[T comparable](t *testing.T, v T, expectedValue T, tags ...any) {
	t.Helper()
	equality(t, t.Fatalf, v, expectedValue, tags...)
}

// DemandSuccess is the same as ExpectSuccess() but a failure is a testing
// fatality.
func DemandSuccess(t *testing.T, v any, tags ...any) {
	t.Helper()
	succeeds(t, t.Fatalf, v, tags...)
}

// DemandFailure is the same as ExpectFailure() but a failure is a testing
// fatality.
func DemandFailure(t *testing.T, v any, tags ...any) {
	t.Helper()
	fails(t, t.Fatalf, v, tags...)
}
