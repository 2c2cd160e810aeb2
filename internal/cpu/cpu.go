package cpu

import (
	"fmt"

	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/log"
)

const (
	// ClockSpeed is the clock speed of the CPU.
	ClockSpeed = 4194304
)

type Register = types.Register
type RegisterPair = types.RegisterPair

// Mode is the execution mode of the CPU.
type Mode uint8

const (
	// ModeNormal is the normal CPU mode.
	ModeNormal Mode = iota
	// ModeHalt is the halt CPU mode, entered by HALT until an interrupt
	// condition wakes the CPU.
	ModeHalt
	// ModeStop is the stop CPU mode, entered by STOP.
	ModeStop
)

// Bus is the memory the CPU reads instructions and operands from, and
// that memory referencing instructions load from and store to.
type Bus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// CPU represents the Gameboy CPU. It is the context every instruction
// handler operates on: the register file plus the memory bus.
type CPU struct {
	// PC is the program counter, it points to the next instruction to be executed.
	PC uint16
	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// Registers contains the 8-bit registers, as well as the 16-bit register pairs.
	types.Registers

	// IME is the interrupt master enable flag.
	IME bool
	// enablingIME is set by EI, IME is set once the following
	// instruction has executed.
	enablingIME bool

	bus  Bus
	mode Mode
	log  log.Logger
}

// NewCPU creates a new CPU instance with the given Bus.
// The Bus is used to read and write to the memory.
func NewCPU(bus Bus) *CPU {
	c := &CPU{
		bus: bus,
		log: log.NewNullLogger(),
	}
	// create register pairs
	c.LinkPairs()

	return c
}

// SetLogger sets the logger used for diagnostics.
func (c *CPU) SetLogger(l log.Logger) {
	c.log = l
}

// ResetNoBoot sets the registers to the state the DMG boot ROM leaves
// them in when it hands over to the cartridge at 0x0100.
func (c *CPU) ResetNoBoot() {
	c.AF.SetUint16(0x01B0)
	c.BC.SetUint16(0x0013)
	c.DE.SetUint16(0x00D8)
	c.HL.SetUint16(0x014D)
	c.SP = 0xFFFE
	c.PC = 0x0100
	c.IME = false
	c.enablingIME = false
	c.mode = ModeNormal
}

// Mode returns the current mode of the CPU.
func (c *CPU) Mode() Mode {
	return c.mode
}

// Halted returns true if the CPU is halted or stopped, and will not
// fetch instructions until woken.
func (c *CPU) Halted() bool {
	return c.mode != ModeNormal
}

// Wake resumes instruction fetching after HALT or STOP. It is called by
// the interrupt logic when an interrupt condition arises.
func (c *CPU) Wake() {
	c.mode = ModeNormal
}

// Step fetches and executes the instruction at PC, returning the number
// of T-cycles it took. While halted or stopped no instruction is fetched
// and a single M-cycle passes.
func (c *CPU) Step() (uint8, error) {
	if c.mode != ModeNormal {
		return 4, nil
	}

	origin := c.PC
	instr := uint16(c.readOperand())
	if instr == 0xCB {
		instr |= uint16(c.readOperand()) << 8
	}

	return c.Execute(instr, origin)
}

// Execute executes an already fetched instruction. The low byte of instr
// holds the opcode; when that is the 0xCB prefix, the high byte holds the
// opcode of the extended instruction set. PC must already point past the
// fetched opcode bytes. origin is the address the instruction was fetched
// from, and is only used to report undefined opcodes.
func (c *CPU) Execute(instr uint16, origin uint16) (uint8, error) {
	opcode := uint8(instr)
	prefixed := opcode == 0xCB

	var instruction Instruction
	if prefixed {
		opcode = uint8(instr >> 8)
		instruction = InstructionSetCB[opcode]
	} else {
		instruction = InstructionSet[opcode]
	}

	if instruction.fn == nil {
		return 0, &UndefinedOpcodeError{Opcode: opcode, Prefixed: prefixed, Origin: origin}
	}

	// EI takes effect after the instruction that follows it
	enableIME := c.enablingIME
	cycles := instruction.fn(c)
	if enableIME && c.enablingIME {
		c.IME = true
		c.enablingIME = false
	}

	return cycles, nil
}

// readOperand reads the next operand from memory, advancing PC.
func (c *CPU) readOperand() uint8 {
	value := c.bus.Read(c.PC)
	c.PC++
	return value
}

// readOperand16 reads the next little-endian 16-bit operand.
func (c *CPU) readOperand16() uint16 {
	low := c.readOperand()
	high := c.readOperand()
	return uint16(high)<<8 | uint16(low)
}

// readByte reads a byte from memory.
func (c *CPU) readByte(addr uint16) uint8 {
	return c.bus.Read(addr)
}

// writeByte writes the given value to the given address.
func (c *CPU) writeByte(addr uint16, val uint8) {
	c.bus.Write(addr, val)
}

// registerPointer returns a Register pointer for the given index, as
// encoded in the low 3 bits of an opcode. Index 6 encodes (HL), which
// is not a register.
func (c *CPU) registerPointer(index uint8) *Register {
	switch index {
	case 0:
		return &c.B
	case 1:
		return &c.C
	case 2:
		return &c.D
	case 3:
		return &c.E
	case 4:
		return &c.H
	case 5:
		return &c.L
	case 7:
		return &c.A
	}
	panic(fmt.Sprintf("invalid register index: %d", index))
}

// readIndexed returns the operand encoded by index, reading memory at
// HL for index 6.
func (c *CPU) readIndexed(index uint8) uint8 {
	if index == 6 {
		return c.readByte(c.HL.Uint16())
	}
	return *c.registerPointer(index)
}

// writeIndexed stores value to the operand encoded by index.
func (c *CPU) writeIndexed(index uint8, value uint8) {
	if index == 6 {
		c.writeByte(c.HL.Uint16(), value)
		return
	}
	*c.registerPointer(index) = value
}

// String returns a single line dump of the CPU registers.
func (c *CPU) String() string {
	return fmt.Sprintf("A: %02X F: %02X B: %02X C: %02X D: %02X E: %02X H: %02X L: %02X SP: %04X PC: %04X",
		c.A, c.F, c.B, c.C, c.D, c.E, c.H, c.L, c.SP, c.PC)
}
