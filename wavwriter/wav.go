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

// Package wavwriter allows writing of sampled data to disk as a WAV file.
// Note that data is buffered in memory in its entirity and only written when
// Encode() or Save() is called. It is therefore probably only suitable for
// short recordings.
package wavwriter

import (
	"io"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/gopher32/curated"
)

// SampleFreq is the sample rate of every WAV file created by the package.
const SampleFreq = 44100

// BitDepth of every sample.
const BitDepth = 16

// PCM format in the WAV header.
const formatPCM = 1

// Sentinel error patterns.
const (
	WavWriterError = "wavwriter: %v"
)

// WavWriter buffers frames of samples. Every frame has one sample for each
// channel.
type WavWriter struct {
	channels int
	buffer   []int
}

// New is the preferred method of initialisation for the WavWriter type.
func New(channels int) (*WavWriter, error) {
	if channels < 1 {
		return nil, curated.Errorf(WavWriterError, "at least one channel is required")
	}
	return &WavWriter{
		channels: channels,
		buffer:   make([]int, 0),
	}, nil
}

// Channels returns the number of channels in each frame.
func (aw *WavWriter) Channels() int {
	return aw.channels
}

// Frames returns the number of frames that have been added.
func (aw *WavWriter) Frames() int {
	return len(aw.buffer) / aw.channels
}

// AddFrame adds one sample for every channel. Sample values are signed 16bit.
func (aw *WavWriter) AddFrame(samples ...int) error {
	if len(samples) != aw.channels {
		return curated.Errorf(WavWriterError, "wrong number of samples in frame")
	}
	aw.buffer = append(aw.buffer, samples...)
	return nil
}

// Encode the buffered frames as a WAV file.
func (aw *WavWriter) Encode(w io.WriteSeeker) error {
	enc := wav.NewEncoder(w, SampleFreq, BitDepth, aw.channels, formatPCM)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: aw.channels,
			SampleRate:  SampleFreq,
		},
		Data:           aw.buffer,
		SourceBitDepth: BitDepth,
	}

	if err := enc.Write(buf); err != nil {
		return curated.Errorf(WavWriterError, err)
	}
	if err := enc.Close(); err != nil {
		return curated.Errorf(WavWriterError, err)
	}

	return nil
}

// Save the buffered frames to the named file.
func (aw *WavWriter) Save(filename string) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf(WavWriterError, err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf(WavWriterError, err)
		}
	}()

	return aw.Encode(f)
}
