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

// Package registers implements the register bank used by every memory mapped
// peripheral. A Bank is a list of register definitions, each with an offset
// relative to the base address of the peripheral, a reset value and an access
// permission.
//
// Offsets must be 4-byte aligned. Accesses can be one, two or four bytes wide.
// A narrow read returns the low bytes of the register. A narrow write replaces
// the low bytes of the register and leaves the high bytes unchanged.
//
// An access to an offset that is not in the bank is a fault and is reported
// with the InvalidOffset error pattern. The bank is unchanged by the fault.
//
// Peripherals with register side effects should use Decode() to find the
// register being accessed and then Store() the new value when appropriate.
// Peripherals with no side effects can use the Read() and Write() functions
// directly.
package registers
