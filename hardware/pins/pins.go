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

package pins

import (
	"fmt"

	"github.com/jetsetilly/gopher32/curated"
)

// Sentinel error patterns.
const (
	// device label and pin number
	InvalidPin = "%s: invalid pin (%d)"
)

// Input is called with the new level of a wire whenever the level changes.
type Input func(level bool)

// Source is implemented by devices with output pins.
type Source interface {
	ConnectOutput(pin int, w *Wire) error
}

// Sink is implemented by devices with input pins.
type Sink interface {
	Input(pin int) (Input, error)
}

// Wire is a one-to-many connection from an output pin to any number of input
// pins.
type Wire struct {
	source string
	pin    int

	level  bool
	inputs []Input

	// watchers see every change of level, including those made by Sync()
	watchers []Input
}

// NewWire is the preferred method of initialisation for the Wire type. The
// source and pin arguments identify the output pin for reference.
func NewWire(source string, pin int) *Wire {
	return &Wire{
		source: source,
		pin:    pin,
	}
}

func (w *Wire) String() string {
	return fmt.Sprintf("%s:%d", w.source, w.pin)
}

// Source returns the label of the source device and the pin number.
func (w *Wire) Source() (string, int) {
	return w.source, w.pin
}

// Connect adds an input to the wire. Inputs are called in the order they are
// connected.
func (w *Wire) Connect(in Input) {
	w.inputs = append(w.inputs, in)
}

// Watch adds a function that is called whenever the level of the wire
// changes, whether by SetLevel() or Sync(). Watchers are not inputs and are
// not counted by Len().
func (w *Wire) Watch(f Input) {
	w.watchers = append(w.watchers, f)
}

// Len returns the number of inputs connected to the wire.
func (w *Wire) Len() int {
	return len(w.inputs)
}

// Level returns the current level of the wire.
func (w *Wire) Level() bool {
	return w.level
}

// SetLevel changes the level of the wire. If the level is different to the
// current level then every connected input is called with the new level.
func (w *Wire) SetLevel(level bool) {
	if level == w.level {
		return
	}
	w.level = level
	w.notify()
	for _, in := range w.inputs {
		in(level)
	}
}

func (w *Wire) notify() {
	for _, f := range w.watchers {
		f(w.level)
	}
}

// Sync sets the level of the wire without calling any of the inputs. Used
// when the devices at both ends of the wire have been reset or restored and
// already agree on the level. Watchers are still told of the change.
func (w *Wire) Sync(level bool) {
	if level == w.level {
		return
	}
	w.level = level
	w.notify()
}

// Connect the numbered input pin of the sink to the wire.
func Connect(w *Wire, sink Sink, pin int) error {
	in, err := sink.Input(pin)
	if err != nil {
		return err
	}
	w.Connect(in)
	return nil
}

// CheckPin returns an InvalidPin error if pin is not in the range 0 to
// count-1.
func CheckPin(label string, pin int, count int) error {
	if pin < 0 || pin >= count {
		return curated.Errorf(InvalidPin, label, pin)
	}
	return nil
}
