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

package console

// console keywords
const (
	cmdRead    = "READ"
	cmdWrite   = "WRITE"
	cmdButton  = "BUTTON"
	cmdPress   = "PRESS"
	cmdRelease = "RELEASE"
	cmdReset   = "RESET"
	cmdPins    = "PINS"
	cmdMap     = "MAP"
	cmdSave    = "SAVE"
	cmdLoad    = "LOAD"
	cmdLog     = "LOG"
	cmdHelp    = "HELP"
	cmdQuit    = "QUIT"
)

// commands in the order they are listed by HELP
var commands = []string{
	cmdRead, cmdWrite, cmdButton, cmdPress, cmdRelease, cmdReset,
	cmdPins, cmdMap, cmdSave, cmdLoad, cmdLog, cmdHelp, cmdQuit,
}

var usage = map[string]string{
	cmdRead:    "READ address [width]",
	cmdWrite:   "WRITE address value [width]",
	cmdButton:  "BUTTON byte",
	cmdPress:   "PRESS",
	cmdRelease: "RELEASE",
	cmdReset:   "RESET",
	cmdPins:    "PINS",
	cmdMap:     "MAP",
	cmdSave:    "SAVE filename",
	cmdLoad:    "LOAD filename",
	cmdLog:     "LOG [number]",
	cmdHelp:    "HELP [command]",
	cmdQuit:    "QUIT",
}

var help = map[string]string{
	cmdRead:    "Read a peripheral register through the bus. Width is in bytes and defaults to 4",
	cmdWrite:   "Write a peripheral register through the bus. Width is in bytes and defaults to 4",
	cmdButton:  "Send a byte to the user button. Any non-zero value is a press",
	cmdPress:   "Press the user button",
	cmdRelease: "Release the user button",
	cmdReset:   "Reset the board",
	cmdPins:    "Display the mode and level of every GPIO pin and the level of every wire",
	cmdMap:     "Display the peripheral memory map",
	cmdSave:    "Save the state of the board to file",
	cmdLoad:    "Restore the state of the board from file",
	cmdLog:     "Print the log. The number of most recent entries can be specified",
	cmdHelp:    "Display help for a command or list every command",
	cmdQuit:    "Leave the console",
}

// number of arguments (excluding the command) accepted by each command
var arity = map[string][2]int{
	cmdRead:    {1, 2},
	cmdWrite:   {2, 3},
	cmdButton:  {1, 1},
	cmdPress:   {0, 0},
	cmdRelease: {0, 0},
	cmdReset:   {0, 0},
	cmdPins:    {0, 0},
	cmdMap:     {0, 0},
	cmdSave:    {1, 1},
	cmdLoad:    {1, 1},
	cmdLog:     {0, 1},
	cmdHelp:    {0, 1},
	cmdQuit:    {0, 0},
}
