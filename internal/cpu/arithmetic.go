package cpu

import (
	"fmt"

	"github.com/thelolagemann/gbcore/pkg/bits"
)

// increment the given value and set the flags accordingly.
//
//	INC n
//	n = 8-bit value
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
func (c *CPU) increment(value uint8) uint8 {
	incremented := value + 0x01
	c.setFlags(incremented == 0, false, bits.HalfCarryAdd(value, 1), c.isFlagSet(FlagCarry))
	return incremented
}

// decrement the given value and set the flags accordingly.
//
//	DEC n
//	n = 8-bit value
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Not affected.
func (c *CPU) decrement(value uint8) uint8 {
	decremented := value - 0x01
	c.setFlags(decremented == 0, true, bits.HalfBorrowSub(value, 1), c.isFlagSet(FlagCarry))
	return decremented
}

// add adds n to A, optionally adding the carry flag.
//
//	ADD A, n
//	ADC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) add(n uint8, useCarry bool) {
	var carry uint8
	if useCarry && c.isFlagSet(FlagCarry) {
		carry = 1
	}
	sum := uint16(c.A) + uint16(n) + uint16(carry)
	half := c.A&0xF + n&0xF + carry

	c.A = uint8(sum)
	c.setFlags(c.A == 0, false, half > 0xF, sum > 0xFF)
}

// sub subtracts n from A, optionally subtracting the carry flag.
//
//	SUB n
//	SBC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) sub(n uint8, useCarry bool) {
	var carry int16
	if useCarry && c.isFlagSet(FlagCarry) {
		carry = 1
	}
	diff := int16(c.A) - int16(n) - carry
	half := int16(c.A&0xF) - int16(n&0xF) - carry

	c.A = uint8(diff)
	c.setFlags(c.A == 0, true, half < 0, diff < 0)
}

// addHL adds the given value to HL.
//
//	ADD HL, nn
//	nn = BC, DE, HL, SP
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
func (c *CPU) addHL(value uint16) {
	hl := c.HL.Uint16()
	sum := uint32(hl) + uint32(value)

	c.setFlags(c.isFlagSet(FlagZero), false, hl&0x0FFF+value&0x0FFF > 0x0FFF, sum > 0xFFFF)
	c.HL.SetUint16(uint16(sum))
}

// addSPSigned reads a signed 8-bit operand and returns SP plus that
// operand. Carries are computed on the low byte as an unsigned addition.
//
//	ADD SP, r8
//	LD HL, SP+r8
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) addSPSigned() uint16 {
	value := c.readOperand()
	result := uint16(int32(c.SP) + int32(int8(value)))

	low := uint8(c.SP)
	c.setFlags(false, false, bits.HalfCarryAdd(low, value), uint16(low)+uint16(value) > 0xFF)
	return result
}

func init() {
	DefineInstruction(0xC6, "ADD A, d8", func(c *CPU) uint8 {
		c.add(c.readOperand(), false)
		return 8
	})
	DefineInstruction(0xCE, "ADC A, d8", func(c *CPU) uint8 {
		c.add(c.readOperand(), true)
		return 8
	})
	DefineInstruction(0xD6, "SUB d8", func(c *CPU) uint8 {
		c.sub(c.readOperand(), false)
		return 8
	})
	DefineInstruction(0xDE, "SBC A, d8", func(c *CPU) uint8 {
		c.sub(c.readOperand(), true)
		return 8
	})
	DefineInstruction(0xE8, "ADD SP, r8", func(c *CPU) uint8 {
		c.SP = c.addSPSigned()
		return 16
	})

	generateIncDecInstructions()
	generate16BitArithmeticInstructions()
	generateArithmeticInstructions()
}

// generateIncDecInstructions generates INC r and DEC r for every operand.
//
//	0x04 INC B	0x05 DEC B
//	0x0C INC C	0x0D DEC C
//	....
//	0x3C INC A	0x3D DEC A
func generateIncDecInstructions() {
	for i := uint8(0); i < 8; i++ {
		index := i
		cycles := uint8(4)
		if index == 6 {
			// read, modify and write back (HL)
			cycles = 12
		}
		DefineInstruction(0x04+index*8, fmt.Sprintf("INC %s", registerNameMap[index]), func(c *CPU) uint8 {
			c.writeIndexed(index, c.increment(c.readIndexed(index)))
			return cycles
		})
		DefineInstruction(0x05+index*8, fmt.Sprintf("DEC %s", registerNameMap[index]), func(c *CPU) uint8 {
			c.writeIndexed(index, c.decrement(c.readIndexed(index)))
			return cycles
		})
	}
}

// generate16BitArithmeticInstructions generates INC nn, DEC nn and
// ADD HL, nn. None of the INC nn and DEC nn instructions affect flags.
//
//	0x03 INC BC	0x0B DEC BC	0x09 ADD HL, BC
//	0x13 INC DE	0x1B DEC DE	0x19 ADD HL, DE
//	0x23 INC HL	0x2B DEC HL	0x29 ADD HL, HL
//	0x33 INC SP	0x3B DEC SP	0x39 ADD HL, SP
func generate16BitArithmeticInstructions() {
	names := [4]string{"BC", "DE", "HL", "SP"}
	for i := uint8(0); i < 4; i++ {
		index := i
		DefineInstruction(0x03+index*16, fmt.Sprintf("INC %s", names[index]), func(c *CPU) uint8 {
			c.setRegisterPair16(index, c.registerPair16(index)+1)
			return 8
		})
		DefineInstruction(0x0B+index*16, fmt.Sprintf("DEC %s", names[index]), func(c *CPU) uint8 {
			c.setRegisterPair16(index, c.registerPair16(index)-1)
			return 8
		})
		DefineInstruction(0x09+index*16, fmt.Sprintf("ADD HL, %s", names[index]), func(c *CPU) uint8 {
			c.addHL(c.registerPair16(index))
			return 8
		})
	}
}

// generateArithmeticInstructions generates ADD, ADC, SUB and SBC over
// every operand.
//
//	0x80 ADD A, B ... 0x87 ADD A, A
//	0x88 ADC A, B ... 0x8F ADC A, A
//	0x90 SUB B    ... 0x97 SUB A
//	0x98 SBC A, B ... 0x9F SBC A, A
func generateArithmeticInstructions() {
	for i := uint8(0); i < 8; i++ {
		index := i
		cycles := uint8(4)
		if index == 6 {
			cycles = 8
		}
		name := registerNameMap[index]

		DefineInstruction(0x80+index, fmt.Sprintf("ADD A, %s", name), func(c *CPU) uint8 {
			c.add(c.readIndexed(index), false)
			return cycles
		})
		DefineInstruction(0x88+index, fmt.Sprintf("ADC A, %s", name), func(c *CPU) uint8 {
			c.add(c.readIndexed(index), true)
			return cycles
		})
		DefineInstruction(0x90+index, fmt.Sprintf("SUB %s", name), func(c *CPU) uint8 {
			c.sub(c.readIndexed(index), false)
			return cycles
		})
		DefineInstruction(0x98+index, fmt.Sprintf("SBC A, %s", name), func(c *CPU) uint8 {
			c.sub(c.readIndexed(index), true)
			return cycles
		})
	}
}

// registerPair16 returns the value of the 16-bit register encoded in
// bits 4-5 of an opcode: 0 = BC, 1 = DE, 2 = HL, 3 = SP.
func (c *CPU) registerPair16(index uint8) uint16 {
	switch index {
	case 0:
		return c.BC.Uint16()
	case 1:
		return c.DE.Uint16()
	case 2:
		return c.HL.Uint16()
	default:
		return c.SP
	}
}

// setRegisterPair16 sets the 16-bit register encoded by index.
func (c *CPU) setRegisterPair16(index uint8, value uint16) {
	switch index {
	case 0:
		c.BC.SetUint16(value)
	case 1:
		c.DE.SetUint16(value)
	case 2:
		c.HL.SetUint16(value)
	default:
		c.SP = value
	}
}
