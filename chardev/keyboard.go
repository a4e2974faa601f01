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

package chardev

import (
	"io"

	"github.com/pkg/errors"
	"github.com/pkg/term"
)

// DefaultKeyboard is the terminal device used by OpenKeyboard() when no
// device is specified.
const DefaultKeyboard = "/dev/tty"

// Keys recognised by the Keymap type.
const (
	KeyPress   = '1'
	KeyRelease = '0'
	KeyToggle  = ' '
	KeyQuit    = 'q'
)

// Keymap translates key presses to button levels. The zero value is a
// released button.
type Keymap struct {
	pressed bool
}

// Translate a key to a button level. Returns false if the key has no meaning.
// The KeyQuit key returns io.EOF.
func (km *Keymap) Translate(key byte) (byte, bool, error) {
	switch key {
	case KeyPress:
		km.pressed = true
	case KeyRelease:
		km.pressed = false
	case KeyToggle:
		km.pressed = !km.pressed
	case KeyQuit, 'Q':
		return 0, false, io.EOF
	default:
		return 0, false, nil
	}

	if km.pressed {
		return 0x01, true, nil
	}
	return 0x00, true, nil
}

// Keyboard is a terminal in cbreak mode. Key presses are translated to
// button levels.
type Keyboard struct {
	t   *term.Term
	km  Keymap
	raw []byte
}

// OpenKeyboard opens the terminal device and puts it into cbreak mode. The
// terminal should be returned to its original state with Close().
func OpenKeyboard(device string) (*Keyboard, error) {
	if device == "" {
		device = DefaultKeyboard
	}

	t, err := term.Open(device, term.CBreakMode)
	if err != nil {
		return nil, errors.Wrapf(err, "chardev: keyboard %s", device)
	}

	return &Keyboard{
		t:   t,
		raw: make([]byte, pumpBuffer),
	}, nil
}

// Read implements the io.Reader interface. Keys with no meaning are dropped
// and Read() will return zero bytes if every key read was dropped.
func (kb *Keyboard) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	raw := kb.raw
	if len(raw) > len(p) {
		raw = raw[:len(p)]
	}

	n, err := kb.t.Read(raw)
	if err != nil {
		return 0, err
	}

	c := 0
	for _, k := range raw[:n] {
		v, ok, err := kb.km.Translate(k)
		if err != nil {
			return c, err
		}
		if ok {
			p[c] = v
			c++
		}
	}

	return c, nil
}

// Close restores the terminal to its original mode and closes it.
func (kb *Keyboard) Close() error {
	if err := kb.t.Restore(); err != nil {
		return errors.Wrap(err, "chardev: keyboard")
	}
	return kb.t.Close()
}
