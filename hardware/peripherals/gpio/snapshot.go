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

package gpio

import (
	"github.com/jetsetilly/gopher32/snapshot"
)

// the saved state of a port. the order and widths of the fields must not
// change. new fields must be marked as optional.
var fields = []snapshot.Field{
	{Name: "mode", Width: 32},
	{Name: "otype", Width: 16},
	{Name: "ospeed", Width: 32},
	{Name: "pupd", Width: 32},
	{Name: "idr", Width: 16},
	{Name: "odr", Width: 16},
	{Name: "odr_old", Width: 16},
	{Name: "bsr", Width: 32},
	{Name: "lck", Width: 32, Optional: true},
	{Name: "afrl", Width: 32},
	{Name: "afrh", Width: 32},
}

// Fields implements the snapshot.Stater interface.
func (g *GPIO) Fields() []snapshot.Field {
	return fields
}

// SaveState implements the snapshot.Stater interface.
func (g *GPIO) SaveState() []uint32 {
	return []uint32{
		g.bank.Value(regMODE),
		g.bank.Value(regOTYPE),
		g.bank.Value(regOSPEED),
		g.bank.Value(regPUPD),
		g.bank.Value(regIDR),
		g.bank.Value(regODR),
		g.odrOld,
		g.bsr,
		g.bank.Value(regLCK),
		g.bank.Value(regAFRL),
		g.bank.Value(regAFRH),
	}
}

// LoadState implements the snapshot.Stater interface. Output wires are not
// driven.
func (g *GPIO) LoadState(values []uint32) error {
	if err := snapshot.CheckState(g.label, values, fields); err != nil {
		return err
	}

	g.bank.Set(regMODE, values[0])
	g.bank.Set(regOTYPE, values[1])
	g.bank.Set(regOSPEED, values[2])
	g.bank.Set(regPUPD, values[3])
	g.bank.Set(regIDR, values[4])
	g.bank.Set(regODR, values[5])
	g.odrOld = values[6] & 0xffff
	g.bsr = values[7]
	g.bank.Set(regLCK, values[8])
	g.bank.Set(regAFRL, values[9])
	g.bank.Set(regAFRH, values[10])

	return nil
}
