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

// Package gpio implements the general purpose I/O ports of the STM32L1.
//
// Each port has sixteen pins. The MODE register selects, with two bits per
// pin, whether a pin is an input (00), an output (01), an alternate function
// (10) or analog (11).
//
// Writing to ODR, or to BSRR which sets and clears ODR bits, drives the output
// wires of the port. Only bits that have changed since the last write are
// driven and only for pins that are not in input mode. The previous value of
// ODR is kept to decide which bits have changed.
//
// Input levels from other devices are sampled into IDR, but only for pins in
// input mode with a pull-up or pull-down configured. This is stricter than the
// real hardware, where alternate function pins can still be sampled, but it
// matches the observed behaviour of the original board model.
//
// The reset values of MODE, PUPD and OSPEED depend on the port. Ports A and B
// have their own values (the debug pins), all other ports reset to zero.
package gpio
