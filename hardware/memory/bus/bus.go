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

package bus

import (
	"github.com/jetsetilly/gopher32/curated"
	"github.com/jetsetilly/gopher32/hardware/memory/memorymap"
)

// Device is the capability set of a memory mapped peripheral.
type Device interface {
	Label() string
	Reset()
	Read(offset uint32, width int) (uint32, error)
	Write(offset uint32, width int, value uint32) error
}

// Clock is implemented by types that count bus activity.
type Clock interface {
	Ticks() uint64
}

// Sentinel error patterns.
const (
	// address and access kind ("read" or "write")
	UnmappedAddress = "bus: unmapped address (%#08x) for %s"

	// area name
	AreaInUse = "bus: area already attached (%s)"
)

// Bus routes reads and writes to the attached devices.
type Bus struct {
	devices map[memorymap.Area]Device

	// number of accesses made through the bus, including failed accesses
	ticks uint64
}

// NewBus is the preferred method of initialisation for the Bus type.
func NewBus() *Bus {
	return &Bus{
		devices: make(map[memorymap.Area]Device),
	}
}

// Attach device to the area of the address space.
func (b *Bus) Attach(area memorymap.Area, dev Device) error {
	if area == memorymap.Unmapped {
		return curated.Errorf(UnmappedAddress, memorymap.Origin(area), "attach")
	}
	if _, ok := b.devices[area]; ok {
		return curated.Errorf(AreaInUse, area)
	}
	b.devices[area] = dev
	return nil
}

// Device returns the device attached to the area. Returns nil if there is no
// device attached.
func (b *Bus) Device(area memorymap.Area) Device {
	return b.devices[area]
}

// Devices returns the attached devices in address order.
func (b *Bus) Devices() []Device {
	d := make([]Device, 0, len(b.devices))
	for _, a := range memorymap.Areas {
		if dev, ok := b.devices[a]; ok {
			d = append(d, dev)
		}
	}
	return d
}

// Ticks implements the Clock interface.
func (b *Bus) Ticks() uint64 {
	return b.ticks
}

// Reset every attached device. The tick count is not affected.
func (b *Bus) Reset() {
	for _, dev := range b.Devices() {
		dev.Reset()
	}
}

func (b *Bus) mapAddress(address uint32, kind string) (uint32, Device, error) {
	b.ticks++

	offset, area := memorymap.MapAddress(address)
	dev, ok := b.devices[area]
	if !ok {
		return 0, nil, curated.Errorf(UnmappedAddress, address, kind)
	}

	return offset, dev, nil
}

// Read value from the address.
func (b *Bus) Read(address uint32, width int) (uint32, error) {
	offset, dev, err := b.mapAddress(address, "read")
	if err != nil {
		return 0, err
	}
	return dev.Read(offset, width)
}

// Write value to the address.
func (b *Bus) Write(address uint32, width int, value uint32) error {
	offset, dev, err := b.mapAddress(address, "write")
	if err != nil {
		return err
	}
	return dev.Write(offset, width, value)
}
