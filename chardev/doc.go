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

// Package chardev provides the character devices that stand in for the
// physical user interface of the board. Bytes for the button come from a
// serial port (Serial) or the terminal (Keyboard). Bytes from the LEDs go to
// websocket clients (Hub) or the log (Tagged).
//
// Devices that produce bytes are read on their own goroutine with Pump(). The
// bytes are handed to the emulation goroutine over a channel so that the
// board is only ever touched by one goroutine.
package chardev
