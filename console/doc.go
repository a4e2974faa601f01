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

// Package console is a line based command interpreter for the board. It is
// used interactively and for running scripts.
//
// Commands are case-insensitive. Arguments are split with shell-like rules
// so quoted filenames can contain spaces. Anything after a '#' is a comment.
// Numbers can be given in decimal, hexadecimal (0x) or binary (0b).
//
//	WRITE 0x40020400 0x1000   # GPIOB pin 6 as output
//	WRITE 0x40020418 0x40     # BSRR set pin 6
//	PINS
//
// Serve() is the main loop for interactive use. It multiplexes console lines
// with bytes from an external character device. Both are processed on the
// goroutine that called Serve().
package console
