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

package snapshot

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher32/curated"
)

// Sentinel error patterns.
const (
	// section label
	SectionMissing = "snapshot: no section for %s"

	// section label, field name
	FieldMissing = "snapshot: %s: missing field (%s)"

	// section label, field name, snapshot width, device width
	FieldWidth = "snapshot: %s: field %s has width %d (expected %d)"

	// section label, field name
	FieldOrder = "snapshot: %s: field %s is out of order"

	// section label, snapshot version, minimum version
	SectionVersion = "snapshot: %s: version %d is too old (minimum %d)"

	// section label, number of values, number of fields
	StateLength = "snapshot: %s: state has %d values (expected %d)"
)

// Field describes a single item of state in a device.
type Field struct {
	Name  string
	Width int

	// an optional field is allowed to be absent from a snapshot
	Optional bool
}

// Stater is implemented by devices that can be saved and restored.
type Stater interface {
	Label() string
	Fields() []Field
	SaveState() []uint32
	LoadState(values []uint32) error
}

// Versioner is an optional interface for Staters. Sections for Staters that do
// not implement the interface have a version of one.
type Versioner interface {
	// the version of the state and the oldest version that can be restored
	StateVersion() (int, int)
}

func versions(st Stater) (int, int) {
	if v, ok := st.(Versioner); ok {
		return v.StateVersion()
	}
	return 1, 1
}

// Value is a single saved field.
type Value struct {
	Field
	Value uint32
}

// Section is the saved state of a single device.
type Section struct {
	Label   string
	Version int
	Values  []Value
}

func (sec Section) find(name string) (int, bool) {
	for i, v := range sec.Values {
		if v.Name == name {
			return i, true
		}
	}
	return -1, false
}

// Snapshot is the saved state of a list of devices.
type Snapshot struct {
	Sections []Section
}

func (snap *Snapshot) String() string {
	s := strings.Builder{}
	for _, sec := range snap.Sections {
		s.WriteString(fmt.Sprintf("%s (v%d)\n", sec.Label, sec.Version))
		for _, v := range sec.Values {
			s.WriteString(fmt.Sprintf("  %s/%d = %#x\n", v.Name, v.Width, v.Value))
		}
	}
	return s.String()
}

// Section returns the section with the label.
func (snap *Snapshot) Section(label string) (Section, bool) {
	for _, sec := range snap.Sections {
		if sec.Label == label {
			return sec, true
		}
	}
	return Section{}, false
}

// mask value to width in bits.
func mask(value uint32, width int) uint32 {
	if width >= 32 || width <= 0 {
		return value
	}
	return value & ((1 << width) - 1)
}

// Capture the state of the Staters. Staters are captured in the order they are
// supplied.
func Capture(staters ...Stater) *Snapshot {
	snap := &Snapshot{
		Sections: make([]Section, 0, len(staters)),
	}

	for _, st := range staters {
		fields := st.Fields()
		state := st.SaveState()
		version, _ := versions(st)

		sec := Section{
			Label:   st.Label(),
			Version: version,
			Values:  make([]Value, len(fields)),
		}

		for i, f := range fields {
			sec.Values[i] = Value{Field: f, Value: mask(state[i], f.Width)}
		}

		snap.Sections = append(snap.Sections, sec)
	}

	return snap
}

// resolve the state for a single Stater from the snapshot.
func resolve(snap *Snapshot, st Stater) ([]uint32, error) {
	label := st.Label()

	sec, ok := snap.Section(label)
	if !ok {
		return nil, curated.Errorf(SectionMissing, label)
	}

	_, minimum := versions(st)
	if sec.Version < minimum {
		return nil, curated.Errorf(SectionVersion, label, sec.Version, minimum)
	}

	fields := st.Fields()
	state := st.SaveState()
	if len(state) != len(fields) {
		return nil, curated.Errorf(StateLength, label, len(state), len(fields))
	}

	last := -1
	for i, f := range fields {
		idx, ok := sec.find(f.Name)
		if !ok {
			if f.Optional {
				continue
			}
			return nil, curated.Errorf(FieldMissing, label, f.Name)
		}

		v := sec.Values[idx]
		if v.Width != f.Width {
			return nil, curated.Errorf(FieldWidth, label, f.Name, v.Width, f.Width)
		}
		if idx < last {
			return nil, curated.Errorf(FieldOrder, label, f.Name)
		}
		last = idx

		state[i] = mask(v.Value, f.Width)
	}

	return state, nil
}

// Restore the state of the Staters from the snapshot. The snapshot is checked
// for every Stater before any state is changed.
func Restore(snap *Snapshot, staters ...Stater) error {
	states := make([][]uint32, len(staters))

	for i, st := range staters {
		state, err := resolve(snap, st)
		if err != nil {
			return err
		}
		states[i] = state
	}

	for i, st := range staters {
		if err := st.LoadState(states[i]); err != nil {
			return err
		}
	}

	return nil
}

// CheckState is a helper function for LoadState() implementations. It returns
// an error if the number of values does not match the number of fields.
func CheckState(label string, values []uint32, fields []Field) error {
	if len(values) != len(fields) {
		return curated.Errorf(StateLength, label, len(values), len(fields))
	}
	return nil
}
