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
	"fmt"

	"github.com/jetsetilly/gopher32/environment"
	"github.com/jetsetilly/gopher32/hardware/memory/registers"
	"github.com/jetsetilly/gopher32/hardware/pins"
)

// Identity selects the reset values of a port.
type Identity int

// List of valid Identity values.
const (
	Generic Identity = iota
	PortA
	PortB
)

func (id Identity) String() string {
	switch id {
	case PortA:
		return "A"
	case PortB:
		return "B"
	}
	return "generic"
}

// the reset values that differ between identities.
type variant struct {
	mode   uint32
	pupd   uint32
	ospeed uint32
}

var variants = map[Identity]variant{
	PortA:   {mode: 0xa8000000, pupd: 0x64000000, ospeed: 0x00000000},
	PortB:   {mode: 0x00000280, pupd: 0x00000100, ospeed: 0x000000c0},
	Generic: {mode: 0x00000000, pupd: 0x00000000, ospeed: 0x00000000},
}

// NumPins is the number of pins in a port.
const NumPins = 16

// NumLines is the number of input and output lines of a port. Only the first
// NumPins lines have any effect.
const NumLines = 64

// register indexes in the bank. indexes follow offset order.
const (
	regMODE = iota
	regOTYPE
	regOSPEED
	regPUPD
	regIDR
	regODR
	regBSRR
	regLCK
	regAFRL
	regAFRH
)

// register offsets relative to the origin of the port.
const (
	MODE   = uint32(0x00)
	OTYPE  = uint32(0x04)
	OSPEED = uint32(0x08)
	PUPD   = uint32(0x0c)
	IDR    = uint32(0x10)
	ODR    = uint32(0x14)
	BSRR   = uint32(0x18)
	LCK    = uint32(0x1c)
	AFRL   = uint32(0x20)
	AFRH   = uint32(0x24)
)

// GPIO is a single general purpose I/O port.
type GPIO struct {
	env      *environment.Environment
	label    string
	identity Identity

	bank *registers.Bank

	// the value of ODR after the most recent update of the output wires
	odrOld uint32

	// BSRR is write-only and is never stored. the field exists to keep the
	// saved state of the port complete
	bsr uint32

	outputs [NumLines]*pins.Wire
}

// NewGPIO is the preferred method of initialisation for the GPIO type.
func NewGPIO(env *environment.Environment, label string, identity Identity) *GPIO {
	v := variants[identity]

	g := &GPIO{
		env:      env,
		label:    label,
		identity: identity,
	}

	g.bank = registers.NewBank(env, label, []registers.Register{
		{Name: "MODE", Offset: MODE, Reset: v.mode},
		{Name: "OTYPE", Offset: OTYPE, Bits: 16},
		{Name: "OSPEED", Offset: OSPEED, Reset: v.ospeed},
		{Name: "PUPD", Offset: PUPD, Reset: v.pupd},
		{Name: "IDR", Offset: IDR, Bits: 16, Access: registers.ReadOnly},
		{Name: "ODR", Offset: ODR, Bits: 16},
		{Name: "BSRR", Offset: BSRR, Access: registers.WriteOnly},
		{Name: "LCK", Offset: LCK},
		{Name: "AFRL", Offset: AFRL},
		{Name: "AFRH", Offset: AFRH},
	})

	g.Reset()

	return g
}

func (g *GPIO) String() string {
	return g.bank.String()
}

// Label implements the bus.Device interface.
func (g *GPIO) Label() string {
	return g.label
}

// Identity returns the identity of the port.
func (g *GPIO) Identity() Identity {
	return g.identity
}

// Reset implements the bus.Device interface. Output wires are not driven.
func (g *GPIO) Reset() {
	g.bank.Reset()
	g.odrOld = g.bank.Value(regODR)
	g.bsr = 0
}

// Read implements the bus.Device interface.
func (g *GPIO) Read(offset uint32, width int) (uint32, error) {
	return g.bank.Read(offset, width)
}

// Write implements the bus.Device interface.
func (g *GPIO) Write(offset uint32, width int, value uint32) error {
	idx, err := g.bank.Decode(offset, width, registers.KindWrite)
	if err != nil {
		return err
	}

	switch idx {
	case regIDR:
		g.bank.Ignored(idx, value)
	case regODR:
		g.bank.Store(idx, width, value)
		g.update()
	case regBSRR:
		g.setReset(value)
		g.update()
	default:
		g.bank.Store(idx, width, value)
	}

	return nil
}

// setReset applies a BSRR value to ODR. the set bits are applied before the
// reset bits so that reset wins when both are asserted for a pin.
func (g *GPIO) setReset(value uint32) {
	odr := g.bank.Value(regODR)
	odr |= value & 0xffff
	odr &^= value >> 16
	g.bank.Set(regODR, odr)
}

// pinMask returns the mask for the two bits of the pin in the MODE, OSPEED
// and PUPD registers. pins outside of the port return a mask of zero.
func pinMask(pin int) uint32 {
	if pin < 0 || pin >= NumPins {
		return 0
	}
	return 0b11 << (pin * 2)
}

// update drives the output wires for the bits of ODR that have changed.
func (g *GPIO) update() {
	odr := g.bank.Value(regODR)
	changed := g.odrOld ^ odr
	g.odrOld = odr

	if changed == 0 {
		return
	}

	mode := g.bank.Value(regMODE)

	for pin := 0; pin < NumPins; pin++ {
		bit := uint32(1) << pin
		if changed&bit == 0 {
			continue
		}

		// pins in input mode do not drive the wire
		if mode&pinMask(pin) == 0 {
			continue
		}

		if w := g.outputs[pin]; w != nil {
			w.SetLevel(odr&bit == bit)
		}
	}
}

// SetInputLevel samples the level of an input line into IDR. The level is
// only sampled if the pin has a pull-up or pull-down and is in input mode.
func (g *GPIO) SetInputLevel(pin int, level bool) {
	m := pinMask(pin)

	if g.bank.Value(regPUPD)&m == 0 {
		return
	}
	if g.bank.Value(regMODE)&m != 0 {
		return
	}

	idr := g.bank.Value(regIDR)
	if level {
		idr |= 1 << pin
	} else {
		idr &^= 1 << pin
	}
	g.bank.Set(regIDR, idr)
}

// ConnectOutput implements the pins.Source interface.
func (g *GPIO) ConnectOutput(pin int, w *pins.Wire) error {
	if err := pins.CheckPin(g.label, pin, NumLines); err != nil {
		return err
	}
	g.outputs[pin] = w
	return nil
}

// Input implements the pins.Sink interface.
func (g *GPIO) Input(pin int) (pins.Input, error) {
	if err := pins.CheckPin(g.label, pin, NumLines); err != nil {
		return nil, err
	}
	return func(level bool) {
		g.SetInputLevel(pin, level)
	}, nil
}

// Output returns the wire connected to the output line. Returns nil if no wire
// is connected.
func (g *GPIO) Output(pin int) *pins.Wire {
	if pin < 0 || pin >= NumLines {
		return nil
	}
	return g.outputs[pin]
}

// PinSummary returns a single line describing the mode and data bits of every
// pin. Used by the console.
func (g *GPIO) PinSummary() string {
	mode := g.bank.Value(regMODE)
	idr := g.bank.Value(regIDR)
	odr := g.bank.Value(regODR)

	b := make([]byte, 0, NumPins*2)
	for pin := NumPins - 1; pin >= 0; pin-- {
		switch (mode >> (pin * 2)) & 0b11 {
		case 0b00:
			if idr&(1<<pin) != 0 {
				b = append(b, 'I')
			} else {
				b = append(b, 'i')
			}
		case 0b01:
			if odr&(1<<pin) != 0 {
				b = append(b, 'O')
			} else {
				b = append(b, 'o')
			}
		case 0b10:
			b = append(b, 'f')
		case 0b11:
			b = append(b, 'a')
		}
	}

	return fmt.Sprintf("%s [%s]", g.label, string(b))
}
