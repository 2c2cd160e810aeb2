package cpu

import (
	"fmt"
)

// pushStack pushes a 16 bit value onto the stack.
func (c *CPU) pushStack(value uint16) {
	c.push(uint8(value>>8), uint8(value))
}

// popStack pops a 16 bit value off the stack.
func (c *CPU) popStack() uint16 {
	high, low := c.pop()
	return uint16(high)<<8 | uint16(low)
}

// call pushes the address of the next instruction onto the stack and jumps to
// the given address.
//
//	CALL nn
//	nn = 16-bit immediate value
func (c *CPU) call(address uint16) {
	c.pushStack(c.PC)
	c.PC = address
}

// callConditional reads the target address, and calls it if the given
// condition is true.
//
//	CALL cc, nn
//	cc = NZ, Z, NC, C
//	nn = 16-bit immediate value
func (c *CPU) callConditional(condition bool) uint8 {
	address := c.readOperand16()
	if condition {
		c.call(address)
		return 24
	}
	return 12
}

// jumpRelative jumps to the address relative to the current PC.
//
//	JR e
//	e = 8-bit signed immediate value
func (c *CPU) jumpRelative(offset uint8) {
	c.PC = uint16(int32(c.PC) + int32(int8(offset)))
}

// jumpRelativeConditional reads the offset, and jumps relative to the
// current PC if the given condition is true.
//
//	JR cc, e
//	cc = NZ, Z, NC, C
//	e = 8-bit signed immediate value
func (c *CPU) jumpRelativeConditional(condition bool) uint8 {
	offset := c.readOperand()
	if condition {
		c.jumpRelative(offset)
		return 12
	}
	return 8
}

// jumpAbsoluteConditional reads the target address, and jumps to it if
// the given condition is true.
//
//	JP cc, nn
//	cc = NZ, Z, NC, C
//	nn = 16-bit immediate value
func (c *CPU) jumpAbsoluteConditional(condition bool) uint8 {
	address := c.readOperand16()
	if condition {
		c.PC = address
		return 16
	}
	return 12
}

// ret pops the top two bytes off the stack and jumps to that address.
//
//	RET
func (c *CPU) ret() {
	c.PC = c.popStack()
}

// retConditional pops the top two bytes off the stack and jumps to that
// address if the given condition is true.
//
//	RET cc
//	cc = NZ, Z, NC, C
func (c *CPU) retConditional(condition bool) uint8 {
	if condition {
		c.ret()
		return 20
	}
	return 8
}

func init() {
	DefineInstruction(0x18, "JR r8", func(c *CPU) uint8 {
		c.jumpRelative(c.readOperand())
		return 12
	})
	DefineInstruction(0xC3, "JP a16", func(c *CPU) uint8 {
		c.PC = c.readOperand16()
		return 16
	})
	DefineInstruction(0xE9, "JP HL", func(c *CPU) uint8 {
		c.PC = c.HL.Uint16()
		return 4
	})
	DefineInstruction(0xCD, "CALL a16", func(c *CPU) uint8 {
		c.call(c.readOperand16())
		return 24
	})
	DefineInstruction(0xC9, "RET", func(c *CPU) uint8 {
		c.ret()
		return 16
	})
	DefineInstruction(0xD9, "RETI", func(c *CPU) uint8 {
		c.ret()
		c.IME = true
		c.enablingIME = false
		return 16
	})

	generateConditionalInstructions()
	generateRSTInstructions()
}

// generateConditionalInstructions generates the conditional jumps, calls
// and returns. The condition is encoded in bits 3-4 of the opcode.
//
//	0x20 JR NZ, r8	0xC0 RET NZ	0xC2 JP NZ, a16	0xC4 CALL NZ, a16
//	0x28 JR Z, r8	0xC8 RET Z	0xCA JP Z, a16	0xCC CALL Z, a16
//	0x30 JR NC, r8	0xD0 RET NC	0xD2 JP NC, a16	0xD4 CALL NC, a16
//	0x38 JR C, r8	0xD8 RET C	0xDA JP C, a16	0xDC CALL C, a16
func generateConditionalInstructions() {
	for i := uint8(0); i < 4; i++ {
		cc := conditionNames[i]
		jr, ret, jp, call := 0x20+i*8, 0xC0+i*8, 0xC2+i*8, 0xC4+i*8

		DefineInstruction(jr, fmt.Sprintf("JR %s, r8", cc), func(c *CPU) uint8 {
			return c.jumpRelativeConditional(c.condition(jr))
		})
		DefineInstruction(ret, fmt.Sprintf("RET %s", cc), func(c *CPU) uint8 {
			return c.retConditional(c.condition(ret))
		})
		DefineInstruction(jp, fmt.Sprintf("JP %s, a16", cc), func(c *CPU) uint8 {
			return c.jumpAbsoluteConditional(c.condition(jp))
		})
		DefineInstruction(call, fmt.Sprintf("CALL %s, a16", cc), func(c *CPU) uint8 {
			return c.callConditional(c.condition(call))
		})
	}
}

// generateRSTInstructions generates the 8 RST instructions.
func generateRSTInstructions() {
	for i := uint8(0); i < 8; i++ {
		address := uint16(i * 8)
		DefineInstruction(0xC7+i*8, fmt.Sprintf("RST %02XH", address), func(c *CPU) uint8 {
			c.call(address)
			return 16
		})
	}
}
