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

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/shlex"
	"github.com/jetsetilly/gopher32/curated"
	"github.com/jetsetilly/gopher32/environment"
	"github.com/jetsetilly/gopher32/hardware/board"
	"github.com/jetsetilly/gopher32/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher32/logger"
	"github.com/jetsetilly/gopher32/snapshot"
)

// Sentinel error patterns.
const (
	// the command
	UnknownCommand = "console: unknown command (%s)"

	// the command and its usage
	ArgCount = "console: %s: wrong number of arguments (usage: %s)"

	// the command and the argument
	NotNumber = "console: %s: not a number (%s)"

	// the command and the underlying error
	CommandError = "console: %s: %v"

	// the line that couldn't be split
	SyntaxError = "console: syntax error (%v)"
)

// default width of READ and WRITE in bytes.
const defaultWidth = 4

// Console executes commands on a board. Output is written to the io.Writer
// given to NewConsole().
type Console struct {
	env *environment.Environment
	brd *board.Board
	out io.Writer

	quit bool
}

// NewConsole is the preferred method of initialisation for the Console type.
func NewConsole(env *environment.Environment, brd *board.Board, out io.Writer) *Console {
	return &Console{
		env: env,
		brd: brd,
		out: out,
	}
}

// Quit returns true after the QUIT command has been executed.
func (con *Console) Quit() bool {
	return con.quit
}

func (con *Console) printf(format string, args ...any) {
	fmt.Fprintf(con.out, format, args...)
}

// parse a number in decimal, hexadecimal or binary notation.
func parseNumber(cmd string, s string, bits int) (uint64, error) {
	v, err := strconv.ParseUint(s, 0, bits)
	if err != nil {
		return 0, curated.Errorf(NotNumber, cmd, s)
	}
	return v, nil
}

// Execute a single line. An empty line or a line that is just a comment is
// not an error.
func (con *Console) Execute(line string) error {
	tokens, err := shlex.Split(line)
	if err != nil {
		return curated.Errorf(SyntaxError, err)
	}
	if len(tokens) == 0 {
		return nil
	}

	cmd := strings.ToUpper(tokens[0])
	args := tokens[1:]

	n, ok := arity[cmd]
	if !ok {
		return curated.Errorf(UnknownCommand, tokens[0])
	}
	if len(args) < n[0] || len(args) > n[1] {
		return curated.Errorf(ArgCount, cmd, usage[cmd])
	}

	switch cmd {
	case cmdRead:
		address, err := parseNumber(cmd, args[0], 32)
		if err != nil {
			return err
		}
		width := uint64(defaultWidth)
		if len(args) > 1 {
			width, err = parseNumber(cmd, args[1], 8)
			if err != nil {
				return err
			}
		}
		v, err := con.brd.Read(uint32(address), int(width))
		if err != nil {
			return curated.Errorf(CommandError, cmd, err)
		}
		con.printf("%08x: %#0*x\n", address, int(width)*2, v)

	case cmdWrite:
		address, err := parseNumber(cmd, args[0], 32)
		if err != nil {
			return err
		}
		value, err := parseNumber(cmd, args[1], 32)
		if err != nil {
			return err
		}
		width := uint64(defaultWidth)
		if len(args) > 2 {
			width, err = parseNumber(cmd, args[2], 8)
			if err != nil {
				return err
			}
		}
		if err := con.brd.Write(uint32(address), int(width), uint32(value)); err != nil {
			return curated.Errorf(CommandError, cmd, err)
		}

	case cmdButton:
		v, err := parseNumber(cmd, args[0], 8)
		if err != nil {
			return err
		}
		con.brd.Button.Receive(uint8(v))

	case cmdPress:
		con.brd.Button.Receive(0x01)

	case cmdRelease:
		con.brd.Button.Receive(0x00)

	case cmdReset:
		con.brd.Reset()
		con.printf("board reset\n")

	case cmdPins:
		for _, g := range con.brd.Ports {
			con.printf("%s\n", g.PinSummary())
		}
		for _, w := range con.brd.Wires() {
			level := 0
			if w.Level() {
				level = 1
			}
			con.printf("%s = %d\n", w, level)
		}

	case cmdMap:
		con.printf("%s", memorymap.Summary())

	case cmdSave:
		if err := snapshot.Save(args[0], con.brd.Snapshot()); err != nil {
			return curated.Errorf(CommandError, cmd, err)
		}
		logger.Logf(con.env, "console", "saved state to %s", args[0])

	case cmdLoad:
		snap, err := snapshot.Load(args[0])
		if err != nil {
			return curated.Errorf(CommandError, cmd, err)
		}
		if err := con.brd.Restore(snap); err != nil {
			return curated.Errorf(CommandError, cmd, err)
		}
		logger.Logf(con.env, "console", "loaded state from %s", args[0])

	case cmdLog:
		if len(args) == 0 {
			logger.Write(con.out)
			break
		}
		n, err := parseNumber(cmd, args[0], 16)
		if err != nil {
			return err
		}
		logger.Tail(con.out, int(n))

	case cmdHelp:
		if len(args) == 0 {
			for _, c := range commands {
				con.printf("%s\n", usage[c])
			}
			break
		}
		c := strings.ToUpper(args[0])
		h, ok := help[c]
		if !ok {
			return curated.Errorf(UnknownCommand, args[0])
		}
		con.printf("%s\n  %s\n", usage[c], h)

	case cmdQuit:
		con.quit = true
	}

	return nil
}
