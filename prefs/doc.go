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

// Package prefs facilitates the storage of preference values on disk. Values
// are typed (Bool, String and Int) and can have hook functions attached that
// are called before and after a new value is set.
//
// Values are added to a Disk instance with a key, which is how the value is
// identified in the preferences file. The file is a plain text file of lines
// in the form:
//
//	key :: value
//
// More than one Disk instance can use the same file. Entries not known to a
// Disk instance are preserved when that instance saves to the file, unless
// the key has been declared defunct.
//
// Preference values can also be overridden from the command line with
// PushCommandLineStack(). The overriding values are applied during a call to
// Disk.Load() and are consumed as they are applied.
package prefs
