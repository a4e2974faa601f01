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

package snapshot_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher32/curated"
	"github.com/jetsetilly/gopher32/snapshot"
	"github.com/jetsetilly/gopher32/test"
)

// a stater with three fields, the last of which is optional
type testStater struct {
	label  string
	values []uint32
	fields []snapshot.Field
}

func newTestStater(label string) *testStater {
	return &testStater{
		label:  label,
		values: []uint32{0x11223344, 0x5566, 0x77},
		fields: []snapshot.Field{
			{Name: "a", Width: 32},
			{Name: "b", Width: 16},
			{Name: "c", Width: 8, Optional: true},
		},
	}
}

func (st *testStater) Label() string {
	return st.label
}

func (st *testStater) Fields() []snapshot.Field {
	return st.fields
}

func (st *testStater) SaveState() []uint32 {
	v := make([]uint32, len(st.values))
	copy(v, st.values)
	return v
}

func (st *testStater) LoadState(values []uint32) error {
	if err := snapshot.CheckState(st.label, values, st.fields); err != nil {
		return err
	}
	copy(st.values, values)
	return nil
}

func TestCaptureRestore(t *testing.T) {
	st := newTestStater("DEV")
	snap := snapshot.Capture(st)

	st.values = []uint32{0, 0, 0}
	test.ExpectSuccess(t, snapshot.Restore(snap, st))
	test.ExpectEquality(t, st.values[0], 0x11223344)
	test.ExpectEquality(t, st.values[1], 0x5566)
	test.ExpectEquality(t, st.values[2], 0x77)
}

func TestOptionalField(t *testing.T) {
	// snapshot taken from a version of the device without field c
	snap := &snapshot.Snapshot{
		Sections: []snapshot.Section{
			{Label: "DEV", Version: 1, Values: []snapshot.Value{
				{Field: snapshot.Field{Name: "a", Width: 32}, Value: 1},
				{Field: snapshot.Field{Name: "b", Width: 16}, Value: 2},
				{Field: snapshot.Field{Name: "legacy", Width: 8}, Value: 3},
			}},
		},
	}

	st := newTestStater("DEV")
	test.ExpectSuccess(t, snapshot.Restore(snap, st))
	test.ExpectEquality(t, st.values[0], 1)
	test.ExpectEquality(t, st.values[1], 2)

	// optional field keeps current value
	test.ExpectEquality(t, st.values[2], 0x77)
}

func TestRestoreErrors(t *testing.T) {
	st := newTestStater("DEV")

	// missing section
	err := snapshot.Restore(&snapshot.Snapshot{}, st)
	test.ExpectSuccess(t, curated.Is(err, snapshot.SectionMissing))

	// missing required field
	snap := &snapshot.Snapshot{
		Sections: []snapshot.Section{
			{Label: "DEV", Version: 1, Values: []snapshot.Value{
				{Field: snapshot.Field{Name: "a", Width: 32}, Value: 1},
			}},
		},
	}
	err = snapshot.Restore(snap, st)
	test.ExpectSuccess(t, curated.Is(err, snapshot.FieldMissing))

	// width mismatch
	snap.Sections[0].Values = []snapshot.Value{
		{Field: snapshot.Field{Name: "a", Width: 32}, Value: 1},
		{Field: snapshot.Field{Name: "b", Width: 32}, Value: 2},
	}
	err = snapshot.Restore(snap, st)
	test.ExpectSuccess(t, curated.Is(err, snapshot.FieldWidth))

	// order mismatch
	snap.Sections[0].Values = []snapshot.Value{
		{Field: snapshot.Field{Name: "b", Width: 16}, Value: 2},
		{Field: snapshot.Field{Name: "a", Width: 32}, Value: 1},
	}
	err = snapshot.Restore(snap, st)
	test.ExpectSuccess(t, curated.Is(err, snapshot.FieldOrder))

	// nothing has changed
	test.ExpectEquality(t, st.values[0], 0x11223344)
}

func TestRestoreIsAtomic(t *testing.T) {
	a := newTestStater("A")
	b := newTestStater("B")
	snap := snapshot.Capture(a)

	a.values[0] = 0
	err := snapshot.Restore(snap, a, b)
	test.ExpectSuccess(t, curated.Is(err, snapshot.SectionMissing))

	// section for A was valid but not applied because section B is missing
	test.ExpectEquality(t, a.values[0], 0)
}

type versionedStater struct {
	*testStater
}

func (_ versionedStater) StateVersion() (int, int) {
	return 3, 2
}

func TestVersion(t *testing.T) {
	st := versionedStater{testStater: newTestStater("DEV")}
	snap := snapshot.Capture(st)
	sec, ok := snap.Section("DEV")
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, sec.Version, 3)

	snap.Sections[0].Version = 1
	err := snapshot.Restore(snap, st)
	test.ExpectSuccess(t, curated.Is(err, snapshot.SectionVersion))
}

func TestContainer(t *testing.T) {
	snap := snapshot.Capture(newTestStater("A"), newTestStater("B"))

	b := &bytes.Buffer{}
	test.DemandSuccess(t, snapshot.Write(b, snap))

	got, err := snapshot.Read(bytes.NewReader(b.Bytes()))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, got.String(), snap.String())

	// corrupt the checksum
	c := b.Bytes()
	c[6] ^= 0xff
	_, err = snapshot.Read(bytes.NewReader(c))
	test.ExpectSuccess(t, curated.Is(err, snapshot.Checksum))

	// not a snapshot
	_, err = snapshot.Read(bytes.NewReader([]byte("not a snapshot file")))
	test.ExpectSuccess(t, curated.Is(err, snapshot.NotSnapshot))
}

func TestFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.g32s")
	st := newTestStater("DEV")

	test.DemandSuccess(t, snapshot.Save(fn, snapshot.Capture(st)))

	st.values[1] = 0
	snap, err := snapshot.Load(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, snapshot.Restore(snap, st))
	test.ExpectEquality(t, st.values[1], 0x5566)
}
