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

package preferences

import (
	"github.com/jetsetilly/gopher32/curated"
	"github.com/jetsetilly/gopher32/paths"
	"github.com/jetsetilly/gopher32/prefs"
)

// Preferences defines and collates all the preference values used by the
// board and its attached devices.
type Preferences struct {
	dsk *prefs.Disk

	// build GPIO ports C, D, E and H in addition to A and B. ports A and B are
	// always present because the button and the LEDs are wired to them
	AllPorts prefs.Bool

	// serial device that supplies bytes to the button. the empty string means
	// no serial device is opened
	ButtonDevice prefs.String

	// baud rate of the button serial device
	ButtonBaud prefs.Int

	// listen address of the LED websocket. the empty string means no
	// websocket server is started
	LEDWebsocket prefs.String

	// number of WAV samples generated for each bus tick when exporting a
	// trace
	TraceSamplesPerTick prefs.Int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences type.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("hardware.board.allPorts", &p.AllPorts)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.button.device", &p.ButtonDevice)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.button.baud", &p.ButtonBaud)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.led.websocket", &p.LEDWebsocket)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.trace.samplesPerTick", &p.TraceSamplesPerTick)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all board preferences to their default values.
func (p *Preferences) SetDefaults() {
	p.AllPorts.Set(true)
	p.ButtonDevice.Set("")
	p.ButtonBaud.Set(115200)
	p.LEDWebsocket.Set("")
	p.TraceSamplesPerTick.Set(8)
}

// Load board preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current board preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
