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
	"io"

	"github.com/jetsetilly/gopher32/curated"
	"github.com/jetsetilly/gopher32/wavwriter"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Sentinel error patterns.
const (
	ExportError = "tracker: %v"
)

// amplitude of a high level in the WAV export. a low level is the negative.
const amplitude = 0x3fff

// WriteWAV writes the history as a WAV file with one channel for each probe.
// Every bus tick is the given number of samples long.
func (tr *Tracker) WriteWAV(w io.WriteSeeker, samplesPerTick int) error {
	if len(tr.probes) == 0 {
		return curated.Errorf(ExportError, "no probes")
	}
	if samplesPerTick < 1 {
		samplesPerTick = 1
	}

	aw, err := wavwriter.New(len(tr.probes))
	if err != nil {
		return curated.Errorf(ExportError, err)
	}

	frame := make([]int, len(tr.probes))
	err = tr.walk(func(_ uint64, levels []bool) error {
		for i, l := range levels {
			if l {
				frame[i] = amplitude
			} else {
				frame[i] = -amplitude
			}
		}
		for s := 0; s < samplesPerTick; s++ {
			if err := aw.AddFrame(frame...); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return curated.Errorf(ExportError, err)
	}

	if err := aw.Encode(w); err != nil {
		return curated.Errorf(ExportError, err)
	}
	return nil
}

// WritePlot writes the history as a step plot. The format is any format
// supported by the gonum plot package, eg. "png", "svg" or "pdf".
func (tr *Tracker) WritePlot(w io.Writer, format string) error {
	if len(tr.probes) == 0 {
		return curated.Errorf(ExportError, "no probes")
	}

	p := plot.New()
	p.Title.Text = "Wire levels"
	p.X.Label.Text = "Bus ticks"
	p.Y.Label.Text = "Probe"

	xys := make([]plotter.XYs, len(tr.probes))
	_ = tr.walk(func(tick uint64, levels []bool) error {
		for i, l := range levels {
			// each probe has its own lane on the y axis
			y := float64(i) * 1.5
			if l {
				y += 1.0
			}
			xys[i] = append(xys[i], plotter.XY{X: float64(tick), Y: y})
		}
		return nil
	})

	for i, label := range tr.Probes() {
		line, err := plotter.NewLine(xys[i])
		if err != nil {
			return curated.Errorf(ExportError, err)
		}
		line.StepStyle = plotter.PostStep
		line.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(label, line)
	}

	wt, err := p.WriterTo(8*vg.Inch, 4*vg.Inch, format)
	if err != nil {
		return curated.Errorf(ExportError, err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return curated.Errorf(ExportError, err)
	}

	return nil
}
