package cpu

import (
	"fmt"
)

// loadRegisterToRegister loads the value of the given Register into the given
// Register.
//
//	LD n, n
//	n = A, B, C, D, E, H, L
func (c *CPU) loadRegisterToRegister(register *Register, value *Register) {
	*register = *value
}

// loadRegister8 loads the given value into the given Register.
//
//	LD n, d8
//	n = A, B, C, D, E, H, L
//	d8 = 8-bit immediate value
func (c *CPU) loadRegister8(reg *Register) {
	*reg = c.readOperand()
}

// loadMemoryToRegister loads the value at the given memory address into the
// given Register.
//
//	LD n, (HL)
//	n = A, B, C, D, E, H, L
func (c *CPU) loadMemoryToRegister(reg *Register, address uint16) {
	*reg = c.readByte(address)
}

// loadRegisterToMemory loads the value of the given Register into the given
// memory address.
//
//	LD (HL), n
//	n = A, B, C, D, E, H, L
func (c *CPU) loadRegisterToMemory(reg Register, address uint16) {
	c.writeByte(address, reg)
}

// loadRegisterToHardware loads the value of the given Register into the
// hardware register page at 0xFF00 + address.
//
//	LD (0xFF00 + n), A
//	n = C, 8 bit immediate value
func (c *CPU) loadRegisterToHardware(reg *Register, address uint8) {
	c.writeByte(0xFF00+uint16(address), *reg)
}

// loadHardwareToRegister loads the value at 0xFF00 + address into the
// given Register.
//
//	LD A, (0xFF00 + n)
//	n = C, 8 bit immediate value
func (c *CPU) loadHardwareToRegister(reg *Register, address uint8) {
	*reg = c.readByte(0xFF00 + uint16(address))
}

func init() {
	DefineInstruction(0x02, "LD (BC), A", func(c *CPU) uint8 {
		c.loadRegisterToMemory(c.A, c.BC.Uint16())
		return 8
	})
	DefineInstruction(0x12, "LD (DE), A", func(c *CPU) uint8 {
		c.loadRegisterToMemory(c.A, c.DE.Uint16())
		return 8
	})
	DefineInstruction(0x0A, "LD A, (BC)", func(c *CPU) uint8 {
		c.loadMemoryToRegister(&c.A, c.BC.Uint16())
		return 8
	})
	DefineInstruction(0x1A, "LD A, (DE)", func(c *CPU) uint8 {
		c.loadMemoryToRegister(&c.A, c.DE.Uint16())
		return 8
	})
	DefineInstruction(0x22, "LD (HL+), A", func(c *CPU) uint8 {
		c.loadRegisterToMemory(c.A, c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() + 1)
		return 8
	})
	DefineInstruction(0x2A, "LD A, (HL+)", func(c *CPU) uint8 {
		c.loadMemoryToRegister(&c.A, c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() + 1)
		return 8
	})
	DefineInstruction(0x32, "LD (HL-), A", func(c *CPU) uint8 {
		c.loadRegisterToMemory(c.A, c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() - 1)
		return 8
	})
	DefineInstruction(0x3A, "LD A, (HL-)", func(c *CPU) uint8 {
		c.loadMemoryToRegister(&c.A, c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() - 1)
		return 8
	})
	DefineInstruction(0x36, "LD (HL), d8", func(c *CPU) uint8 {
		c.writeByte(c.HL.Uint16(), c.readOperand())
		return 12
	})
	DefineInstruction(0xE0, "LDH (a8), A", func(c *CPU) uint8 {
		c.loadRegisterToHardware(&c.A, c.readOperand())
		return 12
	})
	DefineInstruction(0xF0, "LDH A, (a8)", func(c *CPU) uint8 {
		c.loadHardwareToRegister(&c.A, c.readOperand())
		return 12
	})
	DefineInstruction(0xE2, "LD (C), A", func(c *CPU) uint8 {
		c.loadRegisterToHardware(&c.A, c.C)
		return 8
	})
	DefineInstruction(0xF2, "LD A, (C)", func(c *CPU) uint8 {
		c.loadHardwareToRegister(&c.A, c.C)
		return 8
	})
	DefineInstruction(0xEA, "LD (a16), A", func(c *CPU) uint8 {
		c.loadRegisterToMemory(c.A, c.readOperand16())
		return 16
	})
	DefineInstruction(0xFA, "LD A, (a16)", func(c *CPU) uint8 {
		c.loadMemoryToRegister(&c.A, c.readOperand16())
		return 16
	})

	generateLoadImmediateInstructions()
	generateLoadRegisterToRegisterInstructions()
}

// generateLoadImmediateInstructions generates LD r, d8 for every
// register.
//
//	0x06 LD B, d8
//	0x0E LD C, d8
//	....
//	0x3E LD A, d8
func generateLoadImmediateInstructions() {
	for i := uint8(0); i < 8; i++ {
		// 0x36 LD (HL), d8 is defined separately
		if i == 6 {
			continue
		}
		reg := i
		DefineInstruction(0x06+reg*8, fmt.Sprintf("LD %s, d8", registerNameMap[reg]), func(c *CPU) uint8 {
			c.loadRegister8(c.registerPointer(reg))
			return 8
		})
	}
}

// generateLoadRegisterToRegisterInstructions generates the instructions
// for loading a register to another register. (e.g. LD B, A)
//
// The instructions are generated in the following format:
//
//	0x40 LD B, B
//	0x41 LD B, C
//	....
//	0x7F LD A, A
//
// 0x76 would be LD (HL), (HL) and is HALT instead.
func generateLoadRegisterToRegisterInstructions() {
	for i := uint8(0); i < 8; i++ {
		for j := uint8(0); j < 8; j++ {
			to, from := i, j
			opcode := 0x40 + to*8 + from
			name := fmt.Sprintf("LD %s, %s", registerNameMap[to], registerNameMap[from])

			switch {
			case to == 6 && from == 6:
				continue
			case to == 6:
				DefineInstruction(opcode, name, func(c *CPU) uint8 {
					c.loadRegisterToMemory(*c.registerPointer(from), c.HL.Uint16())
					return 8
				})
			case from == 6:
				DefineInstruction(opcode, name, func(c *CPU) uint8 {
					c.loadMemoryToRegister(c.registerPointer(to), c.HL.Uint16())
					return 8
				})
			default:
				DefineInstruction(opcode, name, func(c *CPU) uint8 {
					c.loadRegisterToRegister(c.registerPointer(to), c.registerPointer(from))
					return 4
				})
			}
		}
	}
}
