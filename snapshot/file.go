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
	"bufio"
	"bytes"
	"encoding/binary"
	"io"
	"os"

	"github.com/andybalholm/brotli"
	"github.com/cespare/xxhash"
	"github.com/jetsetilly/gopher32/curated"
)

// Sentinel error patterns.
const (
	NotSnapshot = "snapshot: not a snapshot file"
	Checksum    = "snapshot: checksum mismatch"
	FormatError = "snapshot: %v"
)

// the first four bytes of every snapshot file.
var magic = [4]byte{'G', '3', '2', 'S'}

// the version of the container format.
const formatVersion = uint16(1)

// flag bits for a saved field.
const flagOptional = 0x01

// the container is the magic bytes, the format version and the xxhash of the
// uncompressed body, followed by the brotli compressed body.
type header struct {
	Magic    [4]byte
	Version  uint16
	Checksum uint64
}

// Write the snapshot to the io.Writer.
func Write(w io.Writer, snap *Snapshot) error {
	body := &bytes.Buffer{}
	if err := encode(body, snap); err != nil {
		return curated.Errorf(FormatError, err)
	}

	hdr := header{
		Magic:    magic,
		Version:  formatVersion,
		Checksum: xxhash.Sum64(body.Bytes()),
	}

	if err := binary.Write(w, binary.LittleEndian, hdr); err != nil {
		return curated.Errorf(FormatError, err)
	}

	cmp := brotli.NewWriterLevel(w, brotli.DefaultCompression)
	if _, err := cmp.Write(body.Bytes()); err != nil {
		return curated.Errorf(FormatError, err)
	}
	if err := cmp.Close(); err != nil {
		return curated.Errorf(FormatError, err)
	}

	return nil
}

// Read a snapshot from the io.Reader.
func Read(r io.Reader) (*Snapshot, error) {
	var hdr header
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return nil, curated.Errorf(NotSnapshot)
	}
	if hdr.Magic != magic {
		return nil, curated.Errorf(NotSnapshot)
	}
	if hdr.Version != formatVersion {
		return nil, curated.Errorf(FormatError, "unsupported container version")
	}

	body, err := io.ReadAll(brotli.NewReader(r))
	if err != nil {
		return nil, curated.Errorf(FormatError, err)
	}

	if xxhash.Sum64(body) != hdr.Checksum {
		return nil, curated.Errorf(Checksum)
	}

	snap, err := decode(bytes.NewReader(body))
	if err != nil {
		return nil, curated.Errorf(FormatError, err)
	}

	return snap, nil
}

// Save the snapshot to the named file.
func Save(filename string, snap *Snapshot) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf(FormatError, err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf(FormatError, err)
		}
	}()

	w := bufio.NewWriter(f)
	if err := Write(w, snap); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return curated.Errorf(FormatError, err)
	}

	return nil
}

// Load a snapshot from the named file.
func Load(filename string) (*Snapshot, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf(FormatError, err)
	}
	defer f.Close()

	return Read(bufio.NewReader(f))
}

func writeString(w io.Writer, s string) error {
	if err := binary.Write(w, binary.LittleEndian, uint8(len(s))); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}

func readString(r io.Reader) (string, error) {
	var n uint8
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return "", err
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(r, b); err != nil {
		return "", err
	}
	return string(b), nil
}

func encode(w io.Writer, snap *Snapshot) error {
	le := binary.LittleEndian

	if err := binary.Write(w, le, uint16(len(snap.Sections))); err != nil {
		return err
	}

	for _, sec := range snap.Sections {
		if err := writeString(w, sec.Label); err != nil {
			return err
		}
		if err := binary.Write(w, le, uint16(sec.Version)); err != nil {
			return err
		}
		if err := binary.Write(w, le, uint16(len(sec.Values))); err != nil {
			return err
		}

		for _, v := range sec.Values {
			if err := writeString(w, v.Name); err != nil {
				return err
			}

			var flags uint8
			if v.Optional {
				flags |= flagOptional
			}

			if err := binary.Write(w, le, [2]uint8{uint8(v.Width), flags}); err != nil {
				return err
			}
			if err := binary.Write(w, le, v.Value); err != nil {
				return err
			}
		}
	}

	return nil
}

func decode(r io.Reader) (*Snapshot, error) {
	le := binary.LittleEndian

	var numSections uint16
	if err := binary.Read(r, le, &numSections); err != nil {
		return nil, err
	}

	snap := &Snapshot{
		Sections: make([]Section, numSections),
	}

	for i := range snap.Sections {
		var err error

		sec := &snap.Sections[i]
		sec.Label, err = readString(r)
		if err != nil {
			return nil, err
		}

		var version, numValues uint16
		if err := binary.Read(r, le, &version); err != nil {
			return nil, err
		}
		if err := binary.Read(r, le, &numValues); err != nil {
			return nil, err
		}
		sec.Version = int(version)
		sec.Values = make([]Value, numValues)

		for j := range sec.Values {
			v := &sec.Values[j]
			v.Name, err = readString(r)
			if err != nil {
				return nil, err
			}

			var wf [2]uint8
			if err := binary.Read(r, le, &wf); err != nil {
				return nil, err
			}
			v.Width = int(wf[0])
			v.Optional = wf[1]&flagOptional == flagOptional

			if err := binary.Read(r, le, &v.Value); err != nil {
				return nil, err
			}
		}
	}

	return snap, nil
}
