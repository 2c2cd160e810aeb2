package cpu

import (
	"fmt"
)

// Instruction is a single entry of an instruction set. fn executes the
// instruction against the CPU and returns the number of T-cycles it took.
type Instruction struct {
	name string
	fn   func(*CPU) uint8
}

// Name returns the mnemonic of the instruction, or an empty string if
// the instruction is undefined.
func (i Instruction) Name() string {
	return i.name
}

// Defined returns true if the instruction has a handler.
func (i Instruction) Defined() bool {
	return i.fn != nil
}

var (
	// InstructionSet holds the primary instruction set, indexed by opcode.
	InstructionSet [256]Instruction
	// InstructionSetCB holds the instructions that follow the 0xCB prefix.
	InstructionSetCB [256]Instruction
)

// registerNameMap maps an operand index, as encoded in the low 3 bits of
// an opcode, to its name.
var registerNameMap = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

// DefineInstruction defines the instruction in the InstructionSet, with
// the provided opcode.
func DefineInstruction(opcode uint8, name string, fn func(*CPU) uint8) {
	if InstructionSet[opcode].fn != nil {
		panic(fmt.Sprintf("cpu: opcode %02X defined twice (%s, %s)", opcode, InstructionSet[opcode].name, name))
	}
	InstructionSet[opcode] = Instruction{
		name: name,
		fn:   fn,
	}
}

// DefineInstructionCB defines the instruction in the InstructionSetCB.
func DefineInstructionCB(opcode uint8, name string, fn func(*CPU) uint8) {
	if InstructionSetCB[opcode].fn != nil {
		panic(fmt.Sprintf("cpu: CB opcode %02X defined twice (%s, %s)", opcode, InstructionSetCB[opcode].name, name))
	}
	InstructionSetCB[opcode] = Instruction{
		name: name,
		fn:   fn,
	}
}

// Disassemble returns the mnemonic for the given opcode. When prefixed is
// set, opcode is looked up in the CB instruction set.
func Disassemble(opcode uint8, prefixed bool) string {
	var i Instruction
	if prefixed {
		i = InstructionSetCB[opcode]
	} else {
		i = InstructionSet[opcode]
	}
	if i.fn == nil {
		if prefixed {
			return fmt.Sprintf("UNDEFINED CB %02X", opcode)
		}
		return fmt.Sprintf("UNDEFINED %02X", opcode)
	}
	return i.name
}

func init() {
	DefineInstruction(0x00, "NOP", func(c *CPU) uint8 { return 4 })
	DefineInstruction(0x10, "STOP", func(c *CPU) uint8 {
		// STOP is encoded as 10 00
		c.readOperand()
		c.mode = ModeStop
		c.log.Debugf("cpu: stopped at %04X", c.PC)
		return 4
	})
	DefineInstruction(0x27, "DAA", func(c *CPU) uint8 {
		c.decimalAdjust()
		return 4
	})
	DefineInstruction(0x2F, "CPL", func(c *CPU) uint8 {
		c.A = 0xFF ^ c.A
		c.setFlag(FlagSubtract)
		c.setFlag(FlagHalfCarry)
		return 4
	})
	DefineInstruction(0x37, "SCF", func(c *CPU) uint8 {
		c.setFlag(FlagCarry)
		c.clearFlag(FlagSubtract)
		c.clearFlag(FlagHalfCarry)
		return 4
	})
	DefineInstruction(0x3F, "CCF", func(c *CPU) uint8 {
		if c.isFlagSet(FlagCarry) {
			c.clearFlag(FlagCarry)
		} else {
			c.setFlag(FlagCarry)
		}
		c.clearFlag(FlagSubtract)
		c.clearFlag(FlagHalfCarry)
		return 4
	})
	DefineInstruction(0x76, "HALT", func(c *CPU) uint8 {
		c.mode = ModeHalt
		c.log.Debugf("cpu: halted at %04X", c.PC)
		return 4
	})
	DefineInstruction(0xF3, "DI", func(c *CPU) uint8 {
		c.IME = false
		c.enablingIME = false
		return 4
	})
	DefineInstruction(0xFB, "EI", func(c *CPU) uint8 {
		if !c.IME {
			c.enablingIME = true
		}
		return 4
	})
}

// decimalAdjust adjusts A so that it holds the binary coded decimal
// result of the previous addition or subtraction.
//
//	DAA
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Not affected.
//	H - Reset.
//	C - Set or reset according to operation.
func (c *CPU) decimalAdjust() {
	var correction uint8
	carry := c.isFlagSet(FlagCarry)
	if c.isFlagSet(FlagSubtract) {
		if c.isFlagSet(FlagHalfCarry) {
			correction |= 0x06
		}
		if carry {
			correction |= 0x60
		}
		c.A -= correction
	} else {
		if c.isFlagSet(FlagHalfCarry) || c.A&0x0F > 0x09 {
			correction |= 0x06
		}
		if carry || c.A > 0x99 {
			correction |= 0x60
			carry = true
		}
		c.A += correction
	}

	c.setFlags(c.A == 0, c.isFlagSet(FlagSubtract), false, carry)
}

// defineReadModifyWriteCB generates the 8 CB instructions starting at base
// that apply op to an operand and store the result back. Register operands
// take 8 cycles and (HL) takes 16.
func defineReadModifyWriteCB(base uint8, mnemonic string, op func(*CPU, uint8) uint8) {
	for i := uint8(0); i < 8; i++ {
		index := i
		cycles := uint8(8)
		if index == 6 {
			cycles = 16
		}
		DefineInstructionCB(base+index, fmt.Sprintf("%s %s", mnemonic, registerNameMap[index]), func(c *CPU) uint8 {
			c.writeIndexed(index, op(c, c.readIndexed(index)))
			return cycles
		})
	}
}
