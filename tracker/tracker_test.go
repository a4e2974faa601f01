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

package tracker_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-audio/wav"
	"github.com/jetsetilly/gopher32/curated"
	"github.com/jetsetilly/gopher32/environment"
	"github.com/jetsetilly/gopher32/hardware/board"
	"github.com/jetsetilly/gopher32/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher32/hardware/peripherals/gpio"
	"github.com/jetsetilly/gopher32/hardware/pins"
	"github.com/jetsetilly/gopher32/test"
	"github.com/jetsetilly/gopher32/tracker"
)

// clock is advanced by the test
type clock struct {
	ticks uint64
}

func (c *clock) Ticks() uint64 {
	return c.ticks
}

func TestEntries(t *testing.T) {
	clk := &clock{ticks: 10}
	tr := tracker.NewTracker(clk)

	a := pins.NewWire("A", 0)
	b := pins.NewWire("B", 1)
	tr.Probe("a", a)
	tr.Probe("b", b)
	test.ExpectEquality(t, strings.Join(tr.Probes(), ","), "a,b")

	clk.ticks = 12
	a.SetLevel(true)
	clk.ticks = 13
	b.SetLevel(true)
	a.SetLevel(true)
	clk.ticks = 15
	a.SetLevel(false)

	e := tr.Entries()
	test.DemandEquality(t, len(e), 3)
	test.ExpectEquality(t, e[0], tracker.Entry{Tick: 12, Probe: "a", Level: true})
	test.ExpectEquality(t, e[1], tracker.Entry{Tick: 13, Probe: "b", Level: true})
	test.ExpectEquality(t, e[2], tracker.Entry{Tick: 15, Probe: "a", Level: false})
}

func TestWAV(t *testing.T) {
	clk := &clock{}
	tr := tracker.NewTracker(clk)

	a := pins.NewWire("A", 0)
	tr.Probe("a", a)
	clk.ticks = 2
	a.SetLevel(true)
	clk.ticks = 3

	fn := filepath.Join(t.TempDir(), "trace.wav")
	f, err := os.Create(fn)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, tr.WriteWAV(f, 2))
	test.DemandSuccess(t, f.Close())

	f, err = os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	buf, err := dec.FullPCMBuffer()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, int(dec.NumChans), 1)

	// ticks 0 to 3 inclusive, two samples per tick
	test.DemandEquality(t, len(buf.Data), 8)
	test.ExpectSuccess(t, buf.Data[0] < 0)
	test.ExpectSuccess(t, buf.Data[3] < 0)
	test.ExpectSuccess(t, buf.Data[4] > 0)
	test.ExpectSuccess(t, buf.Data[7] > 0)
}

func TestPlot(t *testing.T) {
	clk := &clock{}
	tr := tracker.NewTracker(clk)

	buf := &bytes.Buffer{}
	err := tr.WritePlot(buf, "svg")
	test.ExpectSuccess(t, curated.Is(err, tracker.ExportError))

	a := pins.NewWire("A", 0)
	tr.Probe("a", a)
	clk.ticks = 5
	a.SetLevel(true)
	clk.ticks = 10

	test.DemandSuccess(t, tr.WritePlot(buf, "svg"))
	test.ExpectSuccess(t, strings.Contains(buf.String(), "<svg"))
}

// decode the WAV output of the tracker
func decodeWAV(t *testing.T, tr *tracker.Tracker) []int {
	t.Helper()

	fn := filepath.Join(t.TempDir(), "trace.wav")
	f, err := os.Create(fn)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, tr.WriteWAV(f, 1))
	test.DemandSuccess(t, f.Close())

	f, err = os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	buf, err := wav.NewDecoder(f).FullPCMBuffer()
	test.DemandSuccess(t, err)
	return buf.Data
}

func TestSameLabel(t *testing.T) {
	clk := &clock{}
	tr := tracker.NewTracker(clk)

	a := pins.NewWire("A", 0)
	b := pins.NewWire("B", 0)
	tr.Probe("x", a)
	tr.Probe("x", b)

	clk.ticks = 1
	a.SetLevel(true)

	// two channels, two ticks. only the first channel goes high
	data := decodeWAV(t, tr)
	test.DemandEquality(t, len(data), 4)
	test.ExpectSuccess(t, data[0] < 0)
	test.ExpectSuccess(t, data[1] < 0)
	test.ExpectSuccess(t, data[2] > 0)
	test.ExpectSuccess(t, data[3] < 0)
}

func TestBoardReset(t *testing.T) {
	brd, err := board.NewDiscovery(&environment.Environment{Label: "test"}, board.Options{})
	test.DemandSuccess(t, err)

	tr := tracker.NewTracker(brd)
	for _, w := range brd.Wires() {
		tr.Probe(w.String(), w)
	}

	lane := -1
	for i, l := range tr.Probes() {
		if l == "GPIOB:6" {
			lane = i
		}
	}
	test.DemandSuccess(t, lane >= 0)

	// blue LED on
	test.DemandSuccess(t, brd.Write(memorymap.OriginGPIOB+gpio.MODE, 4, 0b01<<12))
	test.DemandSuccess(t, brd.Write(memorymap.OriginGPIOB+gpio.BSRR, 4, 0x40))

	brd.Reset()
	_, err = brd.Read(memorymap.OriginGPIOB+gpio.IDR, 4)
	test.DemandSuccess(t, err)

	e := tr.Entries()
	test.DemandEquality(t, len(e), 2)
	test.ExpectEquality(t, e[0].Probe, "GPIOB:6")
	test.ExpectSuccess(t, e[0].Level)
	test.ExpectEquality(t, e[1].Probe, "GPIOB:6")
	test.ExpectFailure(t, e[1].Level)

	// the final frame of the export shows the LED off
	data := decodeWAV(t, tr)
	n := len(tr.Probes())
	test.DemandSuccess(t, len(data) >= n)
	test.ExpectSuccess(t, data[len(data)-n+lane] < 0)
}
