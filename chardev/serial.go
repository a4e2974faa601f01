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
	"time"

	"github.com/pkg/errors"
	"github.com/tarm/serial"
)

// Serial is a serial port that supplies bytes to the button.
type Serial struct {
	device string
	port   *serial.Port
}

// OpenSerial opens the named serial device at the baud rate. A read timeout
// of zero means reads block until at least one byte is available.
func OpenSerial(device string, baud int, timeout time.Duration) (*Serial, error) {
	if device == "" {
		return nil, errors.New("chardev: no serial device specified")
	}

	port, err := serial.OpenPort(&serial.Config{
		Name:        device,
		Baud:        baud,
		ReadTimeout: timeout,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "chardev: serial %s", device)
	}

	return &Serial{
		device: device,
		port:   port,
	}, nil
}

func (s *Serial) String() string {
	return s.device
}

// Read implements the io.Reader interface.
func (s *Serial) Read(p []byte) (int, error) {
	return s.port.Read(p)
}

// Write implements the io.Writer interface. Allows the LEDs to be echoed
// back to the serial device.
func (s *Serial) Write(p []byte) (int, error) {
	return s.port.Write(p)
}

// Close the serial port.
func (s *Serial) Close() error {
	if err := s.port.Close(); err != nil {
		return errors.Wrapf(err, "chardev: serial %s", s.device)
	}
	return nil
}
