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

// Package led implements the user LEDs of the STM32L-Discovery board. An LED
// has a single input pin. Every change of level on the pin is written as a
// single byte (0x00 or 0x01) to the output of the LED.
package led

import (
	"io"

	"github.com/jetsetilly/gopher32/environment"
	"github.com/jetsetilly/gopher32/hardware/pins"
	"github.com/jetsetilly/gopher32/logger"
	"github.com/jetsetilly/gopher32/snapshot"
)

// LED is a light emitting diode with a single input pin.
type LED struct {
	env   *environment.Environment
	label string

	lastLevel uint8

	// output can be nil
	out io.Writer
}

// NewLED is the preferred method of initialisation for the LED type. The out
// argument can be nil.
func NewLED(env *environment.Environment, label string, out io.Writer) *LED {
	return &LED{
		env:   env,
		label: label,
		out:   out,
	}
}

// Label returns the name of the LED.
func (l *LED) Label() string {
	return l.label
}

// Reset turns the LED off. Nothing is written to the output.
func (l *LED) Reset() {
	l.lastLevel = 0
}

// SetOutput changes where level changes are written. Can be nil.
func (l *LED) SetOutput(out io.Writer) {
	l.out = out
}

// Lit returns true if the LED is on.
func (l *LED) Lit() bool {
	return l.lastLevel != 0
}

// Input implements the pins.Sink interface. The LED has a single input pin.
func (l *LED) Input(pin int) (pins.Input, error) {
	if err := pins.CheckPin(l.label, pin, 1); err != nil {
		return nil, err
	}
	return l.receive, nil
}

func (l *LED) receive(level bool) {
	var v uint8
	if level {
		v = 1
	}
	l.lastLevel = v

	if l.out == nil {
		return
	}

	if _, err := l.out.Write([]byte{v}); err != nil {
		logger.Logf(l.env, l.label, "output: %v", err)
	}
}

var fields = []snapshot.Field{
	{Name: "lastLevel", Width: 8},
}

// Fields implements the snapshot.Stater interface.
func (l *LED) Fields() []snapshot.Field {
	return fields
}

// SaveState implements the snapshot.Stater interface.
func (l *LED) SaveState() []uint32 {
	return []uint32{uint32(l.lastLevel)}
}

// LoadState implements the snapshot.Stater interface. Nothing is written to
// the output.
func (l *LED) LoadState(values []uint32) error {
	if err := snapshot.CheckState(l.label, values, fields); err != nil {
		return err
	}
	l.lastLevel = uint8(values[0])
	return nil
}
