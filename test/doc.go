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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect functions report a failure with t.Errorf() and allow the test to
// continue. The Demand functions report a failure with t.Fatalf() and should
// be used when the result of the test is required by the remainder of the
// test function.
//
// It is worth describing how the ExpectSuccess() and ExpectFailure()
// functions handle the nil type because it is not obvious. The nil type is
// considered a success and consequently will cause ExpectFailure() to fail
// and ExpectSuccess() to succeed. This is because of how errors usually work
// (nil to indicate no error).
//
// ExpectApproximate() compares floating point values within a tolerance and
// should be used for any value that is the result of a calculation.
//
// The Writer type implements the io.Writer interface and should be used to
// capture output. The Writer.Compare() function can then be used to test for
// equality.
package test
