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

// Package logger is the central log for the application. Entries are tagged
// with the name of the component making the entry and repeated entries are
// collapsed into a single entry with a repeat count.
//
// The package level functions log to the central logger. Other logger
// instances can be created with NewLogger(), which is useful for testing.
//
// Every log request must be accompanied by a Permission value. Devices that
// are part of a secondary emulation should pass an environment that refuses
// permission, so that the central log isn't cluttered with duplicate entries.
package logger
