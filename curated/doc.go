// This file is part of Gopher32.
//
// Gopher32 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher32 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher32.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error. The pattern is remembered and is
// used to identify the error later on:
//
//	const InvalidOffset = "%s: invalid offset (%#x) for %s"
//
//	err := curated.Errorf(InvalidOffset, "GPIOA", 0xff, "read")
//
//	if curated.Is(err, InvalidOffset) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	f := curated.Errorf("bus: %v", err)
//
//	curated.Has(f, InvalidOffset) // true
//	curated.Is(f, InvalidOffset)  // false
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). We can think of the difference between curated and
// uncurated errors as being the difference between 'expected' and
// 'unexpected' errors.
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts. For example, wrapping twice with the same leading
// part:
//
//	err := curated.Errorf("console: %v", curated.Errorf("console: unknown command"))
//
// will print as:
//
//	console: unknown command
//
// and not:
//
//	console: console: unknown command
//
// For the purposes of this package we think of chains as being composed of
// parts separated by the sub-string ': ' as suggested on p239 of "The Go
// Programming Language" (Donovan, Kernighan).
//
// Sentinel patterns should be stored as a const string in the package that
// raises the error, suitably named and commented.
package curated
