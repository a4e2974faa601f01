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

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/jetsetilly/gopher32/environment"
	"github.com/jetsetilly/gopher32/logger"
	"github.com/jetsetilly/gopher32/modalflag"
	"github.com/jetsetilly/gopher32/prefs"
	"github.com/jetsetilly/gopher32/statsview"
	"github.com/jetsetilly/gopher32/version"
)

// exit values
const (
	exitOK    = 0
	exitFlags = 10
	exitMode  = 20
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	exitVal := launch(ctx, os.Args[1:], os.Stdin, os.Stdout)
	stop()
	os.Exit(exitVal)
}

// launch parses the command line and runs the selected mode. returns the
// value for os.Exit()
func launch(ctx context.Context, args []string, in io.Reader, out io.Writer) int {
	md := &modalflag.Modes{Output: out}
	md.NewArgs(args)
	md.AddSubModes("RUN", "SCRIPT", "KEYS", "TRACE", "VIZ")

	log := md.AddBool("log", false, "echo log to stdout")
	prefsArg := md.AddString("prefs", "", "preferences for this run only (key::value; key::value)")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (available: %v)", statsview.Available()))
	ver := md.AddBool("version", false, "print version and exit")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Fprintf(out, "* error: %v\n", err)
		return exitFlags
	}

	if *ver {
		fmt.Fprintln(out, version.String())
		return exitOK
	}

	if *log {
		logger.SetEcho(out)
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		statsview.Launch(out)
	}

	if *prefsArg != "" {
		prefs.PushCommandLineStack(*prefsArg)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				fmt.Fprintf(out, "* unused preferences: %s\n", unused)
			}
		}()
	}

	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	if err != nil {
		fmt.Fprintf(out, "* error: %v\n", err)
		return exitMode
	}

	switch md.Mode() {
	case "RUN":
		err = run(ctx, md, env, in, out)
	case "SCRIPT":
		err = script(md, env, out)
	case "KEYS":
		err = keys(ctx, md, env, out)
	case "TRACE":
		err = trace(md, env, out)
	case "VIZ":
		err = viz(md, env, out)
	}

	if err != nil {
		fmt.Fprintf(out, "* error in %s mode: %v\n", md, err)
		return exitMode
	}

	return exitOK
}
