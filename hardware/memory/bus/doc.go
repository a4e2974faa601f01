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

// Package bus defines the Device interface implemented by every memory mapped
// peripheral and the Bus type that routes addresses to those devices.
//
// A device only ever sees offsets relative to the origin of its area. The Bus
// uses the memorymap package to translate an address into an area and
// offset. Errors from a device are returned to the caller unchanged.
package bus
