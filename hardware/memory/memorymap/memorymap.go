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

package memorymap

// Area represents the different peripheral areas in the address space.
type Area int

// The different peripheral areas of the board. Areas are listed in address
// order.
const (
	Unmapped Area = iota
	GPIOA
	GPIOB
	GPIOC
	GPIOD
	GPIOE
	GPIOH
	RCC
)

// Areas lists every mapped area in address order.
var Areas = []Area{GPIOA, GPIOB, GPIOC, GPIOD, GPIOE, GPIOH, RCC}

func (a Area) String() string {
	switch a {
	case GPIOA:
		return "GPIOA"
	case GPIOB:
		return "GPIOB"
	case GPIOC:
		return "GPIOC"
	case GPIOD:
		return "GPIOD"
	case GPIOE:
		return "GPIOE"
	case GPIOH:
		return "GPIOH"
	case RCC:
		return "RCC"
	}

	return "unmapped"
}

// AreaSize is the size of the address range occupied by every area.
const AreaSize = uint32(0x400)

// The origin of each area.
const (
	OriginGPIOA = uint32(0x40020000)
	OriginGPIOB = uint32(0x40020400)
	OriginGPIOC = uint32(0x40020800)
	OriginGPIOD = uint32(0x40020c00)
	OriginGPIOE = uint32(0x40021000)
	OriginGPIOH = uint32(0x40021400)
	OriginRCC   = uint32(0x40023800)
)

// Origin returns the first address of the area. The Unmapped area has an
// origin of zero.
func Origin(area Area) uint32 {
	switch area {
	case GPIOA:
		return OriginGPIOA
	case GPIOB:
		return OriginGPIOB
	case GPIOC:
		return OriginGPIOC
	case GPIOD:
		return OriginGPIOD
	case GPIOE:
		return OriginGPIOE
	case GPIOH:
		return OriginGPIOH
	case RCC:
		return OriginRCC
	}
	return 0
}

// Memtop returns the last address of the area.
func Memtop(area Area) uint32 {
	if area == Unmapped {
		return 0
	}
	return Origin(area) + AreaSize - 1
}

// MapAddress returns the area the address falls within and the offset of the
// address from the origin of that area.
func MapAddress(address uint32) (uint32, Area) {
	for _, a := range Areas {
		if address >= Origin(a) && address <= Memtop(a) {
			return address - Origin(a), a
		}
	}
	return address, Unmapped
}
