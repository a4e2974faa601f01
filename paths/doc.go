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

// Package paths contains functions to prepare paths to gopher32 resources.
//
// The ResourcePath() function modifies the supplied resource string such that
// it is prepended with the appropriate config directory. For example, the
// following will return the path to a saved board snapshot.
//
//	d, err := paths.ResourcePath("snapshots", "blink.g32s")
//
// For non-release builds the base path is ".gopher32" in the current working
// directory. For release builds (built with the "release" tag) the user's
// config directory is used, as reported by os.UserConfigDir().
//
// In both cases the directory (but not the file) is created if it does not
// exist.
package paths
