package cpu

import "github.com/thelolagemann/gbcore/pkg/bits"

// rotateLeftCarry rotates n left by 1 bit. The most significant bit is copied
// to both the carry flag and the least significant bit.
//
//	RLC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) rotateLeftCarry(n uint8) uint8 {
	carry := n & bits.Bit7
	computed := n<<1 | carry>>7
	c.setFlags(computed == 0, false, false, carry == bits.Bit7)
	return computed
}

// rotateRightCarry rotates n right by 1 bit. The least significant bit is
// copied to both the carry flag and the most significant bit.
//
//	RRC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) rotateRightCarry(n uint8) uint8 {
	carry := n & bits.Bit0
	computed := n>>1 | carry<<7
	c.setFlags(computed == 0, false, false, carry == bits.Bit0)
	return computed
}

// rotateLeftThroughCarry rotates n left by 1 bit. The carry flag is copied to
// the least significant bit, and the most significant bit is copied to the
// carry flag.
//
//	RL n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) rotateLeftThroughCarry(n uint8) uint8 {
	computed := n << 1
	if c.isFlagSet(FlagCarry) {
		computed |= bits.Bit0
	}
	c.setFlags(computed == 0, false, false, n&bits.Bit7 == bits.Bit7)
	return computed
}

// rotateRightThroughCarry rotates n right by 1 bit. The carry flag is copied
// to the most significant bit, and the least significant bit is copied to
// the carry flag.
//
//	RR n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) rotateRightThroughCarry(n uint8) uint8 {
	computed := n >> 1
	if c.isFlagSet(FlagCarry) {
		computed |= bits.Bit7
	}
	c.setFlags(computed == 0, false, false, n&bits.Bit0 == bits.Bit0)
	return computed
}

// rotateAccumulator applies rotate to A. Unlike their CB counterparts the
// accumulator rotates always reset the zero flag.
//
//	RLCA, RRCA, RLA, RRA
func (c *CPU) rotateAccumulator(rotate func(*CPU, uint8) uint8) {
	c.A = rotate(c, c.A)
	c.clearFlag(FlagZero)
}

func init() {
	DefineInstruction(0x07, "RLCA", func(c *CPU) uint8 {
		c.rotateAccumulator((*CPU).rotateLeftCarry)
		return 4
	})
	DefineInstruction(0x0F, "RRCA", func(c *CPU) uint8 {
		c.rotateAccumulator((*CPU).rotateRightCarry)
		return 4
	})
	DefineInstruction(0x17, "RLA", func(c *CPU) uint8 {
		c.rotateAccumulator((*CPU).rotateLeftThroughCarry)
		return 4
	})
	DefineInstruction(0x1F, "RRA", func(c *CPU) uint8 {
		c.rotateAccumulator((*CPU).rotateRightThroughCarry)
		return 4
	})

	defineReadModifyWriteCB(0x00, "RLC", (*CPU).rotateLeftCarry)
	defineReadModifyWriteCB(0x08, "RRC", (*CPU).rotateRightCarry)
	defineReadModifyWriteCB(0x10, "RL", (*CPU).rotateLeftThroughCarry)
	defineReadModifyWriteCB(0x18, "RR", (*CPU).rotateRightThroughCarry)
}
