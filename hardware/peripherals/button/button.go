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

// Package button implements the user push-button of the STM32L-Discovery
// board. The button is driven by a stream of bytes from a character device.
// Each byte is a new level for the output pin of the button, with any
// non-zero value meaning the button is pressed. There is no debouncing.
package button

import (
	"github.com/jetsetilly/gopher32/environment"
	"github.com/jetsetilly/gopher32/hardware/pins"
	"github.com/jetsetilly/gopher32/logger"
	"github.com/jetsetilly/gopher32/snapshot"
)

// Button is a push-button with a single output pin.
type Button struct {
	env   *environment.Environment
	label string

	// the most recent byte received
	lastLevel uint8

	output *pins.Wire
}

// NewButton is the preferred method of initialisation for the Button type.
func NewButton(env *environment.Environment, label string) *Button {
	return &Button{
		env:   env,
		label: label,
	}
}

// Label returns the name of the button.
func (b *Button) Label() string {
	return b.label
}

// Reset the button to the released state. The output wire is not driven.
func (b *Button) Reset() {
	b.lastLevel = 0
}

// Pressed returns true if the button is currently pressed.
func (b *Button) Pressed() bool {
	return b.lastLevel != 0
}

// ConnectOutput implements the pins.Source interface. The button has a single
// output pin.
func (b *Button) ConnectOutput(pin int, w *pins.Wire) error {
	if err := pins.CheckPin(b.label, pin, 1); err != nil {
		return err
	}
	b.output = w
	return nil
}

// Receive a single byte and drive the output wire.
func (b *Button) Receive(v uint8) {
	b.lastLevel = v
	if b.output != nil {
		b.output.SetLevel(v != 0)
	}
}

// Write implements the io.Writer interface. Every byte is received in turn.
// The button is always ready to receive so the whole of p is always written.
func (b *Button) Write(p []byte) (int, error) {
	for _, v := range p {
		b.Receive(v)
	}
	if len(p) > 0 {
		logger.Logf(b.env, b.label, "received %d bytes (pressed=%v)", len(p), b.Pressed())
	}
	return len(p), nil
}

var fields = []snapshot.Field{
	{Name: "lastLevel", Width: 8},
}

// Fields implements the snapshot.Stater interface.
func (b *Button) Fields() []snapshot.Field {
	return fields
}

// SaveState implements the snapshot.Stater interface.
func (b *Button) SaveState() []uint32 {
	return []uint32{uint32(b.lastLevel)}
}

// LoadState implements the snapshot.Stater interface. The output wire is not
// driven.
func (b *Button) LoadState(values []uint32) error {
	if err := snapshot.CheckState(b.label, values, fields); err != nil {
		return err
	}
	b.lastLevel = uint8(values[0])
	return nil
}
