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

package registers

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jetsetilly/gopher32/curated"
	"github.com/jetsetilly/gopher32/logger"
)

// Sentinel error patterns.
const (
	// device label, offset and access kind
	InvalidOffset = "%s: invalid offset (%#x) for %s"

	// device label, width and access kind
	InvalidWidth = "%s: invalid access width (%d) for %s"
)

// Access indicates how a register can be accessed by the bus.
type Access int

// List of valid Access values.
const (
	ReadWrite Access = iota
	ReadOnly
	WriteOnly
)

func (a Access) String() string {
	switch a {
	case ReadOnly:
		return "RO"
	case WriteOnly:
		return "WO"
	}
	return "RW"
}

// Kind is the kind of bus access being made.
type Kind int

// List of valid Kind values.
const (
	KindRead Kind = iota
	KindWrite
)

func (k Kind) String() string {
	if k == KindWrite {
		return "write"
	}
	return "read"
}

// Register is the definition of a single register in a Bank.
type Register struct {
	Name   string
	Offset uint32
	Reset  uint32
	Access Access

	// number of implemented bits. a value of zero means all 32 bits are
	// implemented
	Bits int
}

// mask returns the mask for the implemented bits of the register.
func (r Register) mask() uint32 {
	if r.Bits <= 0 || r.Bits >= 32 {
		return 0xffffffff
	}
	return (1 << r.Bits) - 1
}

// Width returns the number of implemented bits.
func (r Register) Width() int {
	if r.Bits <= 0 || r.Bits >= 32 {
		return 32
	}
	return r.Bits
}

// widthMask returns the mask for an access width in bytes.
func widthMask(width int) uint32 {
	switch width {
	case 1:
		return 0x000000ff
	case 2:
		return 0x0000ffff
	}
	return 0xffffffff
}

// Bank is an ordered list of registers and their current values.
type Bank struct {
	label string
	perm  logger.Permission

	regs   []Register
	values []uint32
	index  map[uint32]int
}

// NewBank is the preferred method of initialisation for the Bank type. The
// label is used to identify the bank in error messages and log entries.
//
// It is a programming error for more than one register to share an offset or
// for an offset to be misaligned. NewBank() will panic in that case.
func NewBank(perm logger.Permission, label string, regs []Register) *Bank {
	bnk := &Bank{
		label:  label,
		perm:   perm,
		regs:   make([]Register, len(regs)),
		values: make([]uint32, len(regs)),
		index:  make(map[uint32]int),
	}

	copy(bnk.regs, regs)
	sort.SliceStable(bnk.regs, func(i, j int) bool {
		return bnk.regs[i].Offset < bnk.regs[j].Offset
	})

	for i, r := range bnk.regs {
		if r.Offset&0x03 != 0 {
			panic(fmt.Sprintf("registers: %s: misaligned register %s (%#x)", label, r.Name, r.Offset))
		}
		if _, ok := bnk.index[r.Offset]; ok {
			panic(fmt.Sprintf("registers: %s: duplicate register offset (%#x)", label, r.Offset))
		}
		bnk.index[r.Offset] = i
	}

	bnk.Reset()

	return bnk
}

// Label returns the label of the bank.
func (bnk *Bank) Label() string {
	return bnk.label
}

func (bnk *Bank) String() string {
	s := strings.Builder{}
	for i, r := range bnk.regs {
		if i > 0 {
			s.WriteString(" ")
		}
		s.WriteString(fmt.Sprintf("%s=%#08x", r.Name, bnk.values[i]))
	}
	return s.String()
}

// Reset restores every register to its reset value.
func (bnk *Bank) Reset() {
	for i, r := range bnk.regs {
		bnk.values[i] = r.Reset & r.mask()
	}
}

// Len returns the number of registers in the bank.
func (bnk *Bank) Len() int {
	return len(bnk.regs)
}

// Register returns the definition of the indexed register. Indexes are in
// offset order.
func (bnk *Bank) Register(idx int) Register {
	return bnk.regs[idx]
}

// Decode checks the offset and width of an access and returns the index of the
// register being accessed.
func (bnk *Bank) Decode(offset uint32, width int, kind Kind) (int, error) {
	switch width {
	case 1, 2, 4:
	default:
		return 0, curated.Errorf(InvalidWidth, bnk.label, width, kind)
	}

	if offset&0x03 != 0 {
		return 0, curated.Errorf(InvalidOffset, bnk.label, offset, kind)
	}

	idx, ok := bnk.index[offset]
	if !ok {
		return 0, curated.Errorf(InvalidOffset, bnk.label, offset, kind)
	}

	return idx, nil
}

// Value returns the current value of the indexed register.
func (bnk *Bank) Value(idx int) uint32 {
	return bnk.values[idx]
}

// Set the full value of the indexed register. Access permissions are not
// checked. Bits that are not implemented are discarded.
func (bnk *Bank) Set(idx int, value uint32) {
	bnk.values[idx] = value & bnk.regs[idx].mask()
}

// Store value in the indexed register according to the width of the access.
// Access permissions are not checked.
func (bnk *Bank) Store(idx int, width int, value uint32) {
	m := widthMask(width)
	bnk.Set(idx, (bnk.values[idx]&^m)|(value&m))
}

// Load value from the indexed register according to the width of the access.
// Access permissions are not checked.
func (bnk *Bank) Load(idx int, width int) uint32 {
	return bnk.values[idx] & widthMask(width)
}

// Read is a direct read of the register at the offset. Write-only registers
// return zero.
func (bnk *Bank) Read(offset uint32, width int) (uint32, error) {
	idx, err := bnk.Decode(offset, width, KindRead)
	if err != nil {
		return 0, err
	}

	if bnk.regs[idx].Access == WriteOnly {
		return 0, nil
	}

	return bnk.Load(idx, width), nil
}

// Write is a direct write of the register at the offset. Writes to read-only
// registers are ignored and logged.
func (bnk *Bank) Write(offset uint32, width int, value uint32) error {
	idx, err := bnk.Decode(offset, width, KindWrite)
	if err != nil {
		return err
	}

	if bnk.regs[idx].Access == ReadOnly {
		bnk.Ignored(idx, value)
		return nil
	}

	bnk.Store(idx, width, value)

	return nil
}

// Ignored logs an access to the indexed register that has been discarded.
func (bnk *Bank) Ignored(idx int, value uint32) {
	logger.Logf(bnk.perm, bnk.label, "ignored write to read-only %s (%#08x)", bnk.regs[idx].Name, value)
}
