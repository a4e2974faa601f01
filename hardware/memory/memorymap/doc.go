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

// Package memorymap describes the peripheral address map of the STM32L152
// as found on the STM32L-Discovery board. Each peripheral occupies a 1KB
// area of the AHB peripheral address space.
//
// The MapAddress() function translates an address into an area and the offset
// of the address within that area. Addresses outside of any area are
// reported as Unmapped.
package memorymap
