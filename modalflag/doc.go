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

// Package modalflag wraps the flag package of the standard library with the
// notion of program modes. Every mode has its own set of flags and can have
// its own sub-modes.
//
// The arguments are given with NewArgs() and each layer of flags is parsed
// with Parse(). After each call to Parse() the mode that was selected is
// available with Mode(). For example, for the command line:
//
//	gopher32 -log TRACE -samples 4 script.txt trace.wav
//
// The top level is parsed with:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "SCRIPT", "KEYS", "TRACE", "VIZ")
//	log := md.AddBool("log", false, "echo log to stdout")
//	p, err := md.Parse()
//
// The first sub-mode in the list is the default. If the first non-flag
// argument isn't one of the listed sub-modes then the default mode is
// selected and the argument is left for the next layer.
//
// The flags for the selected mode are then added and parsed:
//
//	md.NewMode()
//	samples := md.AddInt("samples", 8, "samples per bus tick")
//	p, err = md.Parse()
//
// The remaining arguments are then available with RemainingArgs() and
// GetArg(). Path() returns every mode selected so far, separated by a slash.
//
// A request for help (-help or -h) is handled automatically. The help message
// is written to the Output field and Parse() returns ParseHelp.
package modalflag
