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

package tracker

import (
	"github.com/jetsetilly/gopher32/hardware/memory/bus"
	"github.com/jetsetilly/gopher32/hardware/pins"
)

// Entry is a single change of level on a probed wire.
type Entry struct {
	Tick  uint64
	Probe string
	Level bool
}

// the label and initial level of a probe
type probe struct {
	label   string
	initial bool
}

// Tracker keeps a history of wire levels over time.
type Tracker struct {
	clock bus.Clock

	// the tick at which the tracker was created
	start uint64

	probes  []probe
	entries []Entry

	// index into probes for each entry. labels need not be unique
	lanes []int
}

// NewTracker is the preferred method of initialisation for the Tracker type.
func NewTracker(clock bus.Clock) *Tracker {
	return &Tracker{
		clock:   clock,
		start:   clock.Ticks(),
		entries: make([]Entry, 0, 1024),
	}
}

// Probe the wire. The label is used to identify the probe in the exported
// history. Changes made by a reset or restore of the board are recorded too.
func (tr *Tracker) Probe(label string, w *pins.Wire) {
	idx := len(tr.probes)
	tr.probes = append(tr.probes, probe{label: label, initial: w.Level()})
	w.Watch(func(level bool) {
		tr.entries = append(tr.entries, Entry{
			Tick:  tr.clock.Ticks(),
			Probe: label,
			Level: level,
		})
		tr.lanes = append(tr.lanes, idx)
	})
}

// Probes returns the labels of every probe in the order they were added.
func (tr *Tracker) Probes() []string {
	l := make([]string, len(tr.probes))
	for i, p := range tr.probes {
		l[i] = p.label
	}
	return l
}

// Entries returns a copy of the recorded history.
func (tr *Tracker) Entries() []Entry {
	e := make([]Entry, len(tr.entries))
	copy(e, tr.entries)
	return e
}

// walk calls f for every tick from the creation of the tracker to the current
// tick. The levels slice has one entry per probe and must not be retained by
// f.
func (tr *Tracker) walk(f func(tick uint64, levels []bool) error) error {
	levels := make([]bool, len(tr.probes))
	for i, p := range tr.probes {
		levels[i] = p.initial
	}

	e := 0
	end := tr.clock.Ticks()
	for tick := tr.start; tick <= end; tick++ {
		for e < len(tr.entries) && tr.entries[e].Tick <= tick {
			levels[tr.lanes[e]] = tr.entries[e].Level
			e++
		}
		if err := f(tick, levels); err != nil {
			return err
		}
	}

	return nil
}
