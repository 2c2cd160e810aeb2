package cpu

import (
	"fmt"

	"github.com/thelolagemann/gbcore/pkg/bits"
)

// testBit tests bit b of the given value.
//
//	BIT b, r
//	b = 0-7
//	r = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if bit b of r is 0.
//	N - Reset.
//	H - Set.
//	C - Not affected.
func (c *CPU) testBit(value uint8, b uint8) {
	c.setFlags(!bits.Test(value, b), false, true, c.isFlagSet(FlagCarry))
}

// generateBitInstructions generates the BIT, RES and SET instructions.
//
// The instructions are generated in the form of;
//
//	0x40 BIT 0, B	0x80 RES 0, B	0xC0 SET 0, B
//	0x41 BIT 0, C	0x81 RES 0, C	0xC1 SET 0, C
//	....
//	0x7F BIT 7, A	0xBF RES 7, A	0xFF SET 7, A
//
// No flags are affected by RES and SET.
func generateBitInstructions() {
	for b := uint8(0); b < 8; b++ {
		for i := uint8(0); i < 8; i++ {
			bit, index := b, i
			name := registerNameMap[index]
			offset := bit*8 + index

			testCycles, writeCycles := uint8(8), uint8(8)
			if index == 6 {
				testCycles, writeCycles = 12, 16
			}

			DefineInstructionCB(0x40+offset, fmt.Sprintf("BIT %d, %s", bit, name), func(c *CPU) uint8 {
				c.testBit(c.readIndexed(index), bit)
				return testCycles
			})
			DefineInstructionCB(0x80+offset, fmt.Sprintf("RES %d, %s", bit, name), func(c *CPU) uint8 {
				c.writeIndexed(index, bits.Reset(c.readIndexed(index), bit))
				return writeCycles
			})
			DefineInstructionCB(0xC0+offset, fmt.Sprintf("SET %d, %s", bit, name), func(c *CPU) uint8 {
				c.writeIndexed(index, bits.Set(c.readIndexed(index), bit))
				return writeCycles
			})
		}
	}
}

func init() {
	generateBitInstructions()
}
