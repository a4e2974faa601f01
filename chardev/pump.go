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

package chardev

import (
	"context"
	"io"

	"github.com/pkg/errors"
)

// size of the buffer used by Pump(). button input is sparse so this can be
// small.
const pumpBuffer = 64

// Pump reads from r and sends every chunk of bytes to the out channel. Pump
// returns when the reader is exhausted or the context is cancelled. A
// reader that reaches io.EOF is not an error.
//
// Cancelling the context does not interrupt a blocked Read(). The reader
// should be closed by the caller for that.
func Pump(ctx context.Context, r io.Reader, out chan<- []byte) error {
	buf := make([]byte, pumpBuffer)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			b := make([]byte, n)
			copy(b, buf[:n])
			select {
			case out <- b:
			case <-ctx.Done():
				return nil
			}
		}
		if err != nil {
			if errors.Cause(err) == io.EOF {
				return nil
			}
			return errors.Wrap(err, "chardev: pump")
		}
		select {
		case <-ctx.Done():
			return nil
		default:
		}
	}
}
