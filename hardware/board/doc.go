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

// Package board assembles the STM32L-Discovery board (stm32l152rbt6). The
// board is made up of the GPIO ports, the RCC, the user button and the two
// user LEDs.
//
// Peripherals are attached to the system bus at their fixed origins (see the
// memorymap package). The button and LEDs are not on the bus. They are
// connected to the GPIO ports by pins.Wire instances:
//
//	BUTTON:0 -> GPIOA input 1
//	GPIOB:6  -> LED_BLUE
//	GPIOB:7  -> LED_GREEN
//
// The Board type is also the unit of save and restore. The Snapshot() and
// Restore() functions capture every device in board order.
package board
