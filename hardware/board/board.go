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

package board

import (
	"io"

	"github.com/jetsetilly/gopher32/curated"
	"github.com/jetsetilly/gopher32/environment"
	"github.com/jetsetilly/gopher32/hardware/memory/bus"
	"github.com/jetsetilly/gopher32/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher32/hardware/peripherals/button"
	"github.com/jetsetilly/gopher32/hardware/peripherals/gpio"
	"github.com/jetsetilly/gopher32/hardware/peripherals/led"
	"github.com/jetsetilly/gopher32/hardware/peripherals/rcc"
	"github.com/jetsetilly/gopher32/hardware/pins"
	"github.com/jetsetilly/gopher32/logger"
	"github.com/jetsetilly/gopher32/snapshot"
)

// Sentinel error patterns.
const (
	BoardError = "board: %v"
)

// Labels of the devices that are not attached to the bus.
const (
	LabelButton   = "BUTTON"
	LabelLEDBlue  = "LED_BLUE"
	LabelLEDGreen = "LED_GREEN"
)

// Pin assignments on the Discovery board.
const (
	ButtonPin   = 1
	LEDBluePin  = 6
	LEDGreenPin = 7
)

// Options for board construction.
type Options struct {
	// build GPIO ports C, D, E and H in addition to A and B
	AllPorts bool

	// where LED level changes are written. either can be nil
	LEDBlue  io.Writer
	LEDGreen io.Writer
}

// DefaultOptions returns the options specified by the environment
// preferences. If the environment has no preferences then every port is
// built.
func DefaultOptions(env *environment.Environment) Options {
	opts := Options{AllPorts: true}
	if env.Prefs != nil {
		opts.AllPorts = env.Prefs.AllPorts.Get().(bool)
	}
	return opts
}

// Board is the STM32L-Discovery board.
type Board struct {
	env *environment.Environment

	Bus *bus.Bus

	// GPIO ports in area order. GPIOA and GPIOB are always present
	Ports []*gpio.GPIO
	GPIOA *gpio.GPIO
	GPIOB *gpio.GPIO

	RCC *rcc.RCC

	Button   *button.Button
	LEDBlue  *led.LED
	LEDGreen *led.LED

	buttonWire   *pins.Wire
	ledBlueWire  *pins.Wire
	ledGreenWire *pins.Wire
}

type port struct {
	area     memorymap.Area
	identity gpio.Identity
}

// ports that are only built if Options.AllPorts is true
var extraPorts = []port{
	{area: memorymap.GPIOC, identity: gpio.Generic},
	{area: memorymap.GPIOD, identity: gpio.Generic},
	{area: memorymap.GPIOE, identity: gpio.Generic},
	{area: memorymap.GPIOH, identity: gpio.Generic},
}

// NewDiscovery creates a new Discovery board and everything associated with
// it. The board is in the reset state.
func NewDiscovery(env *environment.Environment, opts Options) (*Board, error) {
	brd := &Board{
		env: env,
		Bus: bus.NewBus(),
	}

	ports := []port{
		{area: memorymap.GPIOA, identity: gpio.PortA},
		{area: memorymap.GPIOB, identity: gpio.PortB},
	}
	if opts.AllPorts {
		ports = append(ports, extraPorts...)
	}

	for _, p := range ports {
		g := gpio.NewGPIO(env, p.area.String(), p.identity)
		if err := brd.Bus.Attach(p.area, g); err != nil {
			return nil, curated.Errorf(BoardError, err)
		}
		brd.Ports = append(brd.Ports, g)
	}
	brd.GPIOA = brd.Ports[0]
	brd.GPIOB = brd.Ports[1]

	brd.RCC = rcc.NewRCC(env, memorymap.RCC.String())
	if err := brd.Bus.Attach(memorymap.RCC, brd.RCC); err != nil {
		return nil, curated.Errorf(BoardError, err)
	}

	brd.Button = button.NewButton(env, LabelButton)
	brd.LEDBlue = led.NewLED(env, LabelLEDBlue, opts.LEDBlue)
	brd.LEDGreen = led.NewLED(env, LabelLEDGreen, opts.LEDGreen)

	var err error

	brd.buttonWire, err = plumb(brd.Button, LabelButton, 0, brd.GPIOA, ButtonPin)
	if err != nil {
		return nil, curated.Errorf(BoardError, err)
	}
	brd.ledBlueWire, err = plumb(brd.GPIOB, brd.GPIOB.Label(), LEDBluePin, brd.LEDBlue, 0)
	if err != nil {
		return nil, curated.Errorf(BoardError, err)
	}
	brd.ledGreenWire, err = plumb(brd.GPIOB, brd.GPIOB.Label(), LEDGreenPin, brd.LEDGreen, 0)
	if err != nil {
		return nil, curated.Errorf(BoardError, err)
	}

	logger.Logf(env, "board", "discovery board with %d GPIO ports", len(brd.Ports))

	return brd, nil
}

// plumb creates a new wire between the output pin of the source and the input
// pin of the sink.
func plumb(src pins.Source, label string, srcPin int, sink pins.Sink, sinkPin int) (*pins.Wire, error) {
	w := pins.NewWire(label, srcPin)
	if err := pins.Connect(w, sink, sinkPin); err != nil {
		return nil, err
	}
	if err := src.ConnectOutput(srcPin, w); err != nil {
		return nil, err
	}
	return w, nil
}

// Read from the bus.
func (brd *Board) Read(address uint32, width int) (uint32, error) {
	return brd.Bus.Read(address, width)
}

// Write to the bus.
func (brd *Board) Write(address uint32, width int, value uint32) error {
	return brd.Bus.Write(address, width, value)
}

// Ticks returns the number of bus accesses since the board was created.
func (brd *Board) Ticks() uint64 {
	return brd.Bus.Ticks()
}

// Reset every device on the board. Wires are returned to the low level
// without any input being called.
func (brd *Board) Reset() {
	brd.Bus.Reset()
	brd.Button.Reset()
	brd.LEDBlue.Reset()
	brd.LEDGreen.Reset()
	for _, w := range brd.Wires() {
		w.Sync(false)
	}
	logger.Log(brd.env, "board", "reset")
}

// Wires returns every wire on the board.
func (brd *Board) Wires() []*pins.Wire {
	return []*pins.Wire{brd.buttonWire, brd.ledBlueWire, brd.ledGreenWire}
}

// Staters returns every device that takes part in save and restore, in board
// order.
func (brd *Board) Staters() []snapshot.Stater {
	st := make([]snapshot.Stater, 0, len(brd.Ports)+4)
	for _, g := range brd.Ports {
		st = append(st, g)
	}
	st = append(st, brd.RCC, brd.Button, brd.LEDBlue, brd.LEDGreen)
	return st
}

// Snapshot captures the state of every device on the board.
func (brd *Board) Snapshot() *snapshot.Snapshot {
	return snapshot.Capture(brd.Staters()...)
}

// Restore the board from a snapshot. If the snapshot is not suitable then the
// board is unchanged. Wires are set to agree with the restored devices
// without any input being called.
func (brd *Board) Restore(snap *snapshot.Snapshot) error {
	if err := snapshot.Restore(snap, brd.Staters()...); err != nil {
		return curated.Errorf(BoardError, err)
	}
	brd.buttonWire.Sync(brd.Button.Pressed())
	brd.ledBlueWire.Sync(brd.LEDBlue.Lit())
	brd.ledGreenWire.Sync(brd.LEDGreen.Lit())
	logger.Log(brd.env, "board", "restored")
	return nil
}
