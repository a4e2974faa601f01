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

package wavwriter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/jetsetilly/gopher32/curated"
	"github.com/jetsetilly/gopher32/test"
	"github.com/jetsetilly/gopher32/wavwriter"
)

func TestSave(t *testing.T) {
	aw, err := wavwriter.New(2)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, aw.AddFrame(100, -100))
	test.ExpectSuccess(t, aw.AddFrame(200, -200))
	test.ExpectSuccess(t, aw.AddFrame(300, -300))
	test.ExpectEquality(t, aw.Frames(), 3)

	err = aw.AddFrame(1)
	test.ExpectSuccess(t, curated.Is(err, wavwriter.WavWriterError))

	fn := filepath.Join(t.TempDir(), "test.wav")
	test.DemandSuccess(t, aw.Save(fn))

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.DemandSuccess(t, dec.IsValidFile())

	buf, err := dec.FullPCMBuffer()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, int(dec.NumChans), 2)
	test.ExpectEquality(t, int(dec.SampleRate), wavwriter.SampleFreq)
	test.ExpectEquality(t, int(dec.BitDepth), wavwriter.BitDepth)
	test.DemandEquality(t, len(buf.Data), 6)
	test.ExpectEquality(t, buf.Data[0], 100)
	test.ExpectEquality(t, buf.Data[5], -300)
}

func TestNoChannels(t *testing.T) {
	_, err := wavwriter.New(0)
	test.ExpectFailure(t, err)
}
