package cpu

import "github.com/thelolagemann/gbcore/pkg/bits"

// shiftLeftArithmetic shifts n left into carry. The least significant bit
// is reset.
//
//	SLA n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) shiftLeftArithmetic(n uint8) uint8 {
	computed := n << 1
	c.setFlags(computed == 0, false, false, n&bits.Bit7 == bits.Bit7)
	return computed
}

// shiftRightArithmetic shifts n right into carry. The most significant bit
// keeps its value.
//
//	SRA n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) shiftRightArithmetic(n uint8) uint8 {
	computed := n>>1 | n&bits.Bit7
	c.setFlags(computed == 0, false, false, n&bits.Bit0 == bits.Bit0)
	return computed
}

// shiftRightLogical shifts n right into carry. The most significant bit is
// reset.
//
//	SRL n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) shiftRightLogical(n uint8) uint8 {
	computed := n >> 1
	c.setFlags(computed == 0, false, false, n&bits.Bit0 == bits.Bit0)
	return computed
}

// swap the upper and lower nibbles of a byte
//
//	SWAP n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) swap(n uint8) uint8 {
	c.setFlags(n == 0, false, false, false)
	return n<<4 | n>>4
}

func init() {
	defineReadModifyWriteCB(0x20, "SLA", (*CPU).shiftLeftArithmetic)
	defineReadModifyWriteCB(0x28, "SRA", (*CPU).shiftRightArithmetic)
	defineReadModifyWriteCB(0x30, "SWAP", (*CPU).swap)
	defineReadModifyWriteCB(0x38, "SRL", (*CPU).shiftRightLogical)
}
