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

// Package pins connects the output pin of one device to the input pins of
// other devices.
//
// A Wire is owned by the device that drives it. Only that device calls
// SetLevel(). Devices at the other end of the wire receive the level through
// an Input function, which has no access to the wire itself.
//
// Level changes are delivered synchronously, in the order the inputs were
// connected, before SetLevel() returns. An Input function that causes another
// wire to change level will see that change delivered before SetLevel()
// continues with the next input. In other words, propagation is depth-first.
//
// Setting a wire to the level it already has does nothing. This is what stops
// a loop of wires from signalling forever.
package pins
