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
	"github.com/jetsetilly/gopher32/logger"
)

// Tagged is an io.Writer that logs every byte under a tag.
type Tagged struct {
	perm logger.Permission
	tag  string
}

// NewTagged is the preferred method of initialisation for the Tagged type.
func NewTagged(perm logger.Permission, tag string) *Tagged {
	return &Tagged{
		perm: perm,
		tag:  tag,
	}
}

// Write implements the io.Writer interface.
func (tg *Tagged) Write(p []byte) (int, error) {
	for _, v := range p {
		if v == 0 {
			logger.Log(tg.perm, tg.tag, "off")
		} else {
			logger.Log(tg.perm, tg.tag, "on")
		}
	}
	return len(p), nil
}
