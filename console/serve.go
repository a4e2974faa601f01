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
	"bufio"
	"context"
	"io"

	"github.com/jetsetilly/gopher32/curated"
	"github.com/jetsetilly/gopher32/logger"
)

// Sentinel error patterns.
const (
	// line number and underlying error
	ScriptError = "console: line %d: %v"
)

// Run executes every line read from r. Run stops at the first error or after
// the QUIT command.
func (con *Console) Run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		if err := con.Execute(scanner.Text()); err != nil {
			return curated.Errorf(ScriptError, n, err)
		}
		if con.quit {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return curated.Errorf(ScriptError, n, err)
	}
	return nil
}

// ReadLines sends every line read from r to the returned channel. The channel
// is closed when the reader is exhausted. The goroutine started by ReadLines
// exits when the context is cancelled or the reader is exhausted.
func ReadLines(ctx context.Context, r io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	return lines
}

// Serve executes console lines and delivers external bytes to the button.
// Serve returns when the context is cancelled, the lines channel is closed or
// the QUIT command is executed.
//
// Errors from individual commands are printed and do not end Serve(). The
// external channel can be nil.
func (con *Console) Serve(ctx context.Context, lines <-chan string, external <-chan []byte) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case line, ok := <-lines:
			if !ok {
				return nil
			}
			if err := con.Execute(line); err != nil {
				con.printf("* %v\n", err)
				logger.Log(con.env, "console", err)
			}
			if con.quit {
				return nil
			}

		case b := <-external:
			_, _ = con.brd.Button.Write(b)
		}
	}
}
