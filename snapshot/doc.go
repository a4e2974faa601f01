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

// Package snapshot saves and restores the state of a board.
//
// Every device that takes part implements the Stater interface. The Fields()
// function describes the state of the device as an ordered list of named
// fields, each with a width in bits. SaveState() and LoadState() exchange the
// values of those fields in the same order.
//
// Capture() collects the state of a list of Staters into a Snapshot. Restore()
// applies a Snapshot to a list of Staters. Restoration is checked before any
// device is changed: fields must have the same width and appear in the same
// relative order as the device describes them. Fields marked as Optional can
// be missing from the snapshot, in which case the current value is kept.
// Fields in the snapshot that are unknown to the device are ignored.
//
// Snapshots are written to disk in a brotli compressed container with an
// xxhash checksum of the uncompressed contents.
package snapshot
