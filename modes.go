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
	"path/filepath"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopher32/chardev"
	"github.com/jetsetilly/gopher32/console"
	"github.com/jetsetilly/gopher32/environment"
	"github.com/jetsetilly/gopher32/hardware/board"
	"github.com/jetsetilly/gopher32/logger"
	"github.com/jetsetilly/gopher32/modalflag"
	"github.com/jetsetilly/gopher32/snapshot"
	"github.com/jetsetilly/gopher32/tracker"
)

// newBoard creates a board with the LEDs writing to the log and, if the
// preferences ask for it, to a websocket hub. the hub is returned so that it
// can be served. it will be nil if no hub is required
func newBoard(env *environment.Environment) (*board.Board, *chardev.Hub, error) {
	opts := board.DefaultOptions(env)
	opts.LEDBlue = chardev.NewTagged(env, board.LabelLEDBlue)
	opts.LEDGreen = chardev.NewTagged(env, board.LabelLEDGreen)

	var hub *chardev.Hub
	if env.Prefs.LEDWebsocket.String() != "" {
		hub = chardev.NewHub(env, "hub")
		opts.LEDBlue = io.MultiWriter(opts.LEDBlue, prefixed{prefix: 'b', w: hub})
		opts.LEDGreen = io.MultiWriter(opts.LEDGreen, prefixed{prefix: 'g', w: hub})
	}

	brd, err := board.NewDiscovery(env, opts)
	if err != nil {
		return nil, nil, err
	}
	return brd, hub, nil
}

// prefixed writes every byte with a prefix so that websocket clients can tell
// the LEDs apart
type prefixed struct {
	prefix byte
	w      io.Writer
}

func (p prefixed) Write(b []byte) (int, error) {
	for _, v := range b {
		if _, err := p.w.Write([]byte{p.prefix, v}); err != nil {
			return 0, err
		}
	}
	return len(b), nil
}

func run(ctx context.Context, md *modalflag.Modes, env *environment.Environment, in io.Reader, out io.Writer) error {
	md.NewMode()
	md.AdditionalHelp("An optional state file saved with the SAVE command can be given.")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	brd, hub, err := newBoard(env)
	if err != nil {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		snap, err := snapshot.Load(md.GetArg(0))
		if err != nil {
			return err
		}
		if err := brd.Restore(snap); err != nil {
			return err
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if hub != nil {
		addr := env.Prefs.LEDWebsocket.String()
		go func() {
			if err := hub.ListenAndServe(ctx, addr); err != nil {
				logger.Log(env, "hub", err)
			}
		}()
	}

	var external chan []byte
	if device := env.Prefs.ButtonDevice.String(); device != "" {
		baud := env.Prefs.ButtonBaud.Get().(int)
		// reads block. closing the port on return is what ends the pump
		ser, err := chardev.OpenSerial(device, baud, 0)
		if err != nil {
			return err
		}
		defer ser.Close()

		external = make(chan []byte)
		go func() {
			if err := chardev.Pump(ctx, ser, external); err != nil {
				logger.Log(env, "serial", err)
			}
		}()
	}

	con := console.NewConsole(env, brd, out)
	return con.Serve(ctx, console.ReadLines(ctx, in), external)
}

func script(md *modalflag.Modes, env *environment.Environment, out io.Writer) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("%s mode requires exactly one script file", md)
	}

	brd, _, err := newBoard(env)
	if err != nil {
		return err
	}

	return runScript(md.GetArg(0), console.NewConsole(env, brd, out))
}

func runScript(filename string, con *console.Console) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return con.Run(f)
}

func keys(ctx context.Context, md *modalflag.Modes, env *environment.Environment, out io.Writer) error {
	md.NewMode()
	device := md.AddString("device", chardev.DefaultKeyboard, "terminal device")
	md.AdditionalHelp(fmt.Sprintf("Keys: '%c' press, '%c' release, space toggle, '%c' quit",
		chardev.KeyPress, chardev.KeyRelease, chardev.KeyQuit))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	brd, _, err := newBoard(env)
	if err != nil {
		return err
	}

	// LED changes are only visible through the log
	logger.SetEcho(out)

	kb, err := chardev.OpenKeyboard(*device)
	if err != nil {
		return err
	}
	defer kb.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	external := make(chan []byte)
	go func() {
		if err := chardev.Pump(ctx, kb, external); err != nil {
			logger.Log(env, "keyboard", err)
		}

		// the quit key ends the pump
		cancel()
	}()

	// there are no console lines in this mode
	con := console.NewConsole(env, brd, out)
	return con.Serve(ctx, nil, external)
}

func trace(md *modalflag.Modes, env *environment.Environment, out io.Writer) error {
	md.NewMode()
	samples := md.AddInt("samples", env.Prefs.TraceSamplesPerTick.Get().(int), "samples per bus tick in WAV output")
	md.AdditionalHelp("Arguments are the script file and the output file. The output format is\n" +
		"chosen by the extension of the output file: wav, png, svg or pdf.")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 2 {
		return fmt.Errorf("%s mode requires a script file and an output file", md)
	}

	brd, _, err := newBoard(env)
	if err != nil {
		return err
	}

	tr := tracker.NewTracker(brd)
	for _, w := range brd.Wires() {
		tr.Probe(w.String(), w)
	}

	if err := runScript(md.GetArg(0), console.NewConsole(env, brd, out)); err != nil {
		return err
	}

	return export(tr, md.GetArg(1), *samples)
}

// export the tracker history to file. the format is taken from the file
// extension
func export(tr *tracker.Tracker, filename string, samples int) (rerr error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	switch ext {
	case "wav", "png", "svg", "pdf":
	default:
		return fmt.Errorf("unsupported trace format (%s)", ext)
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = err
		}
	}()

	if ext == "wav" {
		return tr.WriteWAV(f, samples)
	}
	return tr.WritePlot(f, ext)
}

func viz(md *modalflag.Modes, env *environment.Environment, out io.Writer) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	brd, _, err := newBoard(env)
	if err != nil {
		return err
	}

	memviz.Map(out, brd)
	return nil
}
