package cpu

import (
	"fmt"

	"github.com/thelolagemann/gbcore/pkg/bits"
)

// and performs a bitwise AND operation on n and the A Register.
//
//	AND n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set.
//	C - Reset.
func (c *CPU) and(n uint8) {
	c.A &= n
	c.setFlags(c.A == 0, false, true, false)
}

// or performs a bitwise OR operation on n and the A Register.
//
//	OR n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) or(n uint8) {
	c.A |= n
	c.setFlags(c.A == 0, false, false, false)
}

// xor performs a bitwise XOR operation on n and the A Register.
//
//	XOR n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) xor(n uint8) {
	c.A ^= n
	c.setFlags(c.A == 0, false, false, false)
}

// compare compares n to the A Register. A is left unchanged.
//
//	CP n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if A == n.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if A < n.
func (c *CPU) compare(n uint8) {
	c.setFlags(c.A == n, true, bits.HalfBorrowSub(c.A, n), n > c.A)
}

func init() {
	DefineInstruction(0xE6, "AND d8", func(c *CPU) uint8 {
		c.and(c.readOperand())
		return 8
	})
	DefineInstruction(0xEE, "XOR d8", func(c *CPU) uint8 {
		c.xor(c.readOperand())
		return 8
	})
	DefineInstruction(0xF6, "OR d8", func(c *CPU) uint8 {
		c.or(c.readOperand())
		return 8
	})
	DefineInstruction(0xFE, "CP d8", func(c *CPU) uint8 {
		c.compare(c.readOperand())
		return 8
	})

	generateLogicInstructions()
}

// generateLogicInstructions generates AND, XOR, OR and CP over every
// operand.
//
//	0xA0 AND B ... 0xA7 AND A
//	0xA8 XOR B ... 0xAF XOR A
//	0xB0 OR B  ... 0xB7 OR A
//	0xB8 CP B  ... 0xBF CP A
func generateLogicInstructions() {
	for i := uint8(0); i < 8; i++ {
		index := i
		cycles := uint8(4)
		if index == 6 {
			cycles = 8
		}
		name := registerNameMap[index]

		DefineInstruction(0xA0+index, fmt.Sprintf("AND %s", name), func(c *CPU) uint8 {
			c.and(c.readIndexed(index))
			return cycles
		})
		DefineInstruction(0xA8+index, fmt.Sprintf("XOR %s", name), func(c *CPU) uint8 {
			c.xor(c.readIndexed(index))
			return cycles
		})
		DefineInstruction(0xB0+index, fmt.Sprintf("OR %s", name), func(c *CPU) uint8 {
			c.or(c.readIndexed(index))
			return cycles
		})
		DefineInstruction(0xB8+index, fmt.Sprintf("CP %s", name), func(c *CPU) uint8 {
			c.compare(c.readIndexed(index))
			return cycles
		})
	}
}
