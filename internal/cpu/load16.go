package cpu

// loadRegister16 loads the given value into the given Register pair.
//
//	LD nn, d16
//	nn = BC, DE, HL
//	d16 = 16-bit immediate value
func (c *CPU) loadRegister16(reg *RegisterPair) {
	*reg.Low = c.readOperand()
	*reg.High = c.readOperand()
}

// push pushes the given high and low bytes onto the stack, high first.
//
//	PUSH nn
//	nn = AF, BC, DE, HL
func (c *CPU) push(high, low uint8) {
	c.SP--
	c.writeByte(c.SP, high)
	c.SP--
	c.writeByte(c.SP, low)
}

// pop pops the top two bytes of the stack, returning them as high, low.
//
//	POP nn
//	nn = AF, BC, DE, HL
func (c *CPU) pop() (uint8, uint8) {
	low := c.readByte(c.SP)
	c.SP++
	high := c.readByte(c.SP)
	c.SP++
	return high, low
}

func init() {
	DefineInstruction(0x01, "LD BC, d16", func(c *CPU) uint8 {
		c.loadRegister16(c.BC)
		return 12
	})
	DefineInstruction(0x11, "LD DE, d16", func(c *CPU) uint8 {
		c.loadRegister16(c.DE)
		return 12
	})
	DefineInstruction(0x21, "LD HL, d16", func(c *CPU) uint8 {
		c.loadRegister16(c.HL)
		return 12
	})
	DefineInstruction(0x31, "LD SP, d16", func(c *CPU) uint8 {
		c.SP = c.readOperand16()
		return 12
	})
	DefineInstruction(0x08, "LD (a16), SP", func(c *CPU) uint8 {
		address := c.readOperand16()
		c.writeByte(address, uint8(c.SP&0xFF))
		c.writeByte(address+1, uint8(c.SP>>8))
		return 20
	})
	DefineInstruction(0xF8, "LD HL, SP+r8", func(c *CPU) uint8 {
		c.HL.SetUint16(c.addSPSigned())
		return 12
	})
	DefineInstruction(0xF9, "LD SP, HL", func(c *CPU) uint8 {
		c.SP = c.HL.Uint16()
		return 8
	})

	DefineInstruction(0xC5, "PUSH BC", func(c *CPU) uint8 {
		c.push(c.B, c.C)
		return 16
	})
	DefineInstruction(0xD5, "PUSH DE", func(c *CPU) uint8 {
		c.push(c.D, c.E)
		return 16
	})
	DefineInstruction(0xE5, "PUSH HL", func(c *CPU) uint8 {
		c.push(c.H, c.L)
		return 16
	})
	DefineInstruction(0xF5, "PUSH AF", func(c *CPU) uint8 {
		c.push(c.A, c.F)
		return 16
	})
	DefineInstruction(0xC1, "POP BC", func(c *CPU) uint8 {
		c.B, c.C = c.pop()
		return 12
	})
	DefineInstruction(0xD1, "POP DE", func(c *CPU) uint8 {
		c.D, c.E = c.pop()
		return 12
	})
	DefineInstruction(0xE1, "POP HL", func(c *CPU) uint8 {
		c.H, c.L = c.pop()
		return 12
	})
	DefineInstruction(0xF1, "POP AF", func(c *CPU) uint8 {
		c.A, c.F = c.pop()
		// the lower nibble of F is always zero
		c.F &= 0xF0
		return 12
	})
}
