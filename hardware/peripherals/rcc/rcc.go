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

// Package rcc implements the reset and clock control registers of the
// STM32L1. The registers are stored and returned but have no effect on the
// rest of the board. Peripheral clocks are not gated and clock frequencies
// are not calculated.
package rcc

import (
	"github.com/jetsetilly/gopher32/environment"
	"github.com/jetsetilly/gopher32/hardware/memory/registers"
	"github.com/jetsetilly/gopher32/snapshot"
)

// register offsets relative to the origin of the RCC.
const (
	CR        = uint32(0x00)
	ICSCR     = uint32(0x04)
	CFGR      = uint32(0x08)
	CIR       = uint32(0x0c)
	AHBRSTR   = uint32(0x10)
	APB2RSTR  = uint32(0x14)
	APB1RSTR  = uint32(0x18)
	AHBENR    = uint32(0x1c)
	APB2ENR   = uint32(0x20)
	APB1ENR   = uint32(0x24)
	AHBLPENR  = uint32(0x28)
	APB2LPENR = uint32(0x2c)
	APB1LPENR = uint32(0x30)
	CSR       = uint32(0x34)
)

// the register table. reset values are from the STM32L1 reference manual
var table = []registers.Register{
	{Name: "CR", Offset: CR, Reset: 0x00000300},
	{Name: "ICSCR", Offset: ICSCR, Reset: 0x0000b000},
	{Name: "CFGR", Offset: CFGR, Reset: 0x00000000},
	{Name: "CIR", Offset: CIR, Reset: 0x00000000},
	{Name: "AHBRSTR", Offset: AHBRSTR, Reset: 0x00000000},
	{Name: "APB2RSTR", Offset: APB2RSTR, Reset: 0x00000000},
	{Name: "APB1RSTR", Offset: APB1RSTR, Reset: 0x00000000},
	{Name: "AHBENR", Offset: AHBENR, Reset: 0x00008000},
	{Name: "APB2ENR", Offset: APB2ENR, Reset: 0x00000000},
	{Name: "APB1ENR", Offset: APB1ENR, Reset: 0x00000000},
	{Name: "AHBLPENR", Offset: AHBLPENR, Reset: 0x0101903f},
	{Name: "APB2LPENR", Offset: APB2LPENR, Reset: 0x0000521d},
	{Name: "APB1LPENR", Offset: APB1LPENR, Reset: 0xb0e64a37},
	{Name: "CSR", Offset: CSR, Reset: 0x0c000000},
}

// RCC is the reset and clock control register bank.
type RCC struct {
	env   *environment.Environment
	label string
	bank  *registers.Bank
}

// NewRCC is the preferred method of initialisation for the RCC type.
func NewRCC(env *environment.Environment, label string) *RCC {
	return &RCC{
		env:   env,
		label: label,
		bank:  registers.NewBank(env, label, table),
	}
}

func (r *RCC) String() string {
	return r.bank.String()
}

// Label implements the bus.Device interface.
func (r *RCC) Label() string {
	return r.label
}

// Reset implements the bus.Device interface.
func (r *RCC) Reset() {
	r.bank.Reset()
}

// Read implements the bus.Device interface.
func (r *RCC) Read(offset uint32, width int) (uint32, error) {
	return r.bank.Read(offset, width)
}

// Write implements the bus.Device interface.
func (r *RCC) Write(offset uint32, width int, value uint32) error {
	if err := r.bank.Write(offset, width, value); err != nil {
		return err
	}
	r.update()
	return nil
}

// update is called after every successful write. clock interrupts are not
// emulated so there is nothing to do.
func (r *RCC) update() {
}

// Fields implements the snapshot.Stater interface.
func (r *RCC) Fields() []snapshot.Field {
	f := make([]snapshot.Field, len(table))
	for i, reg := range table {
		f[i] = snapshot.Field{Name: reg.Name, Width: 32}
	}
	return f
}

// SaveState implements the snapshot.Stater interface.
func (r *RCC) SaveState() []uint32 {
	v := make([]uint32, r.bank.Len())
	for i := range v {
		v[i] = r.bank.Value(i)
	}
	return v
}

// LoadState implements the snapshot.Stater interface.
func (r *RCC) LoadState(values []uint32) error {
	if err := snapshot.CheckState(r.label, values, r.Fields()); err != nil {
		return err
	}
	for i, v := range values {
		r.bank.Set(i, v)
	}
	return nil
}

// StateVersion implements the snapshot.Versioner interface.
func (r *RCC) StateVersion() (int, int) {
	return 2, 1
}
