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

package bus_test

import (
	"testing"

	"github.com/jetsetilly/gopher32/curated"
	"github.com/jetsetilly/gopher32/hardware/memory/bus"
	"github.com/jetsetilly/gopher32/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher32/hardware/memory/registers"
	"github.com/jetsetilly/gopher32/logger"
	"github.com/jetsetilly/gopher32/test"
)

// a device with a single register at offset zero
type testDevice struct {
	*registers.Bank
	resets int
}

func (dev *testDevice) Reset() {
	dev.resets++
	dev.Bank.Reset()
}

func newTestDevice(label string) *testDevice {
	return &testDevice{
		Bank: registers.NewBank(logger.Allow, label, []registers.Register{
			{Name: "R0", Offset: 0x00, Reset: 0xaa},
		}),
	}
}

func TestBus(t *testing.T) {
	b := bus.NewBus()
	a := newTestDevice("A")
	r := newTestDevice("R")

	test.ExpectSuccess(t, b.Attach(memorymap.GPIOA, a))
	test.ExpectSuccess(t, b.Attach(memorymap.RCC, r))
	test.ExpectFailure(t, b.Attach(memorymap.RCC, r))

	test.ExpectSuccess(t, b.Write(memorymap.OriginRCC, 4, 0x55))

	v, err := b.Read(memorymap.OriginRCC, 4)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x55)

	v, err = b.Read(memorymap.OriginGPIOA, 4)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0xaa)

	test.ExpectEquality(t, b.Ticks(), 3)

	b.Reset()
	test.ExpectEquality(t, a.resets, 1)
	test.ExpectEquality(t, r.resets, 1)

	devs := b.Devices()
	test.DemandEquality(t, len(devs), 2)
	test.ExpectEquality(t, devs[0].Label(), "A")
	test.ExpectEquality(t, devs[1].Label(), "R")
}

func TestUnmapped(t *testing.T) {
	b := bus.NewBus()
	test.ExpectSuccess(t, b.Attach(memorymap.GPIOA, newTestDevice("A")))

	// area exists in the memory map but nothing is attached
	_, err := b.Read(memorymap.OriginGPIOB, 4)
	test.ExpectSuccess(t, curated.Is(err, bus.UnmappedAddress))

	// address is outside of the memory map
	err = b.Write(0x20000000, 4, 0)
	test.ExpectSuccess(t, curated.Is(err, bus.UnmappedAddress))
	test.ExpectEquality(t, err.Error(), "bus: unmapped address (0x20000000) for write")
}

func TestDeviceError(t *testing.T) {
	b := bus.NewBus()
	test.ExpectSuccess(t, b.Attach(memorymap.GPIOA, newTestDevice("A")))

	// device errors are returned unchanged
	_, err := b.Read(memorymap.OriginGPIOA+0xff, 4)
	test.ExpectSuccess(t, curated.Is(err, registers.InvalidOffset))
}
