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

package pins_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher32/curated"
	"github.com/jetsetilly/gopher32/hardware/pins"
	"github.com/jetsetilly/gopher32/test"
)

func TestFanOut(t *testing.T) {
	var calls []string

	w := pins.NewWire("SRC", 6)
	w.Connect(func(level bool) {
		calls = append(calls, fmt.Sprintf("a=%v", level))
	})
	w.Connect(func(level bool) {
		calls = append(calls, fmt.Sprintf("b=%v", level))
	})
	test.ExpectEquality(t, w.Len(), 2)
	test.ExpectEquality(t, w.String(), "SRC:6")

	w.SetLevel(true)
	test.ExpectEquality(t, strings.Join(calls, " "), "a=true b=true")
	test.ExpectSuccess(t, w.Level())
}

func TestNoChange(t *testing.T) {
	var calls int

	w := pins.NewWire("SRC", 0)
	w.Connect(func(_ bool) {
		calls++
	})

	// wire starts low so setting it low again does nothing
	w.SetLevel(false)
	test.ExpectEquality(t, calls, 0)

	w.SetLevel(true)
	w.SetLevel(true)
	test.ExpectEquality(t, calls, 1)

	w.SetLevel(false)
	test.ExpectEquality(t, calls, 2)

	// sync changes the level silently
	w.Sync(true)
	test.ExpectEquality(t, calls, 2)
	test.ExpectSuccess(t, w.Level())
}

func TestDepthFirst(t *testing.T) {
	var calls []string

	inner := pins.NewWire("INNER", 0)
	inner.Connect(func(level bool) {
		calls = append(calls, "inner")
	})

	outer := pins.NewWire("OUTER", 0)
	outer.Connect(func(level bool) {
		calls = append(calls, "first")
		inner.SetLevel(level)
	})
	outer.Connect(func(level bool) {
		calls = append(calls, "second")
	})

	outer.SetLevel(true)
	test.ExpectEquality(t, strings.Join(calls, " "), "first inner second")
}

func TestLoop(t *testing.T) {
	var calls int

	// two wires that drive each other terminate because the second call
	// to SetLevel() on each wire does not change the level
	a := pins.NewWire("A", 0)
	b := pins.NewWire("B", 0)
	a.Connect(func(level bool) {
		calls++
		b.SetLevel(level)
	})
	b.Connect(func(level bool) {
		calls++
		a.SetLevel(level)
	})

	a.SetLevel(true)
	test.ExpectEquality(t, calls, 2)
}

type testSink struct {
	levels []bool
}

func (s *testSink) Input(pin int) (pins.Input, error) {
	if err := pins.CheckPin("SINK", pin, 1); err != nil {
		return nil, err
	}
	return func(level bool) {
		s.levels = append(s.levels, level)
	}, nil
}

func TestConnect(t *testing.T) {
	s := &testSink{}
	w := pins.NewWire("SRC", 0)

	test.ExpectSuccess(t, pins.Connect(w, s, 0))
	err := pins.Connect(w, s, 1)
	test.ExpectSuccess(t, curated.Is(err, pins.InvalidPin))
	test.ExpectEquality(t, err.Error(), "SINK: invalid pin (1)")

	w.SetLevel(true)
	test.DemandEquality(t, len(s.levels), 1)
	test.ExpectSuccess(t, s.levels[0])
}

func TestWatch(t *testing.T) {
	var calls int
	var watched []bool

	w := pins.NewWire("SRC", 0)
	w.Connect(func(_ bool) {
		calls++
	})
	w.Watch(func(level bool) {
		watched = append(watched, level)
	})
	test.ExpectEquality(t, w.Len(), 1)

	w.SetLevel(true)
	test.ExpectEquality(t, calls, 1)
	test.DemandEquality(t, len(watched), 1)

	// sync is seen by watchers but not by inputs
	w.Sync(false)
	test.ExpectEquality(t, calls, 1)
	test.DemandEquality(t, len(watched), 2)
	test.ExpectFailure(t, watched[1])

	// no change in level
	w.Sync(false)
	w.SetLevel(false)
	test.ExpectEquality(t, len(watched), 2)
}
