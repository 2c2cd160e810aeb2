// Package bits provides helpers for working with the individual
// bits of a byte.
package bits

const (
	Bit0 uint8 = 1 << iota // 0b0000_0001
	Bit1                   // 0b0000_0010
	Bit2                   // 0b0000_0100
	Bit3                   // 0b0000_1000
	Bit4                   // 0b0001_0000
	Bit5                   // 0b0010_0000
	Bit6                   // 0b0100_0000
	Bit7                   // 0b1000_0000
)

// Reset resets the bit at the given index.
func Reset(b, i uint8) uint8 {
	return b &^ (1 << i)
}

// Set sets the bit at the given index.
func Set(b, i uint8) uint8 {
	return b | (1 << i)
}

// Test tests the bit at the given index.
func Test(b, i uint8) bool {
	return (b>>i)&1 != 0
}

// HalfCarryAdd reports whether adding a and b carries out of bit 3.
func HalfCarryAdd(a, b uint8) bool {
	return (a&0xF)+(b&0xF) > 0xF
}

// HalfBorrowSub reports whether subtracting b from a borrows from bit 4.
func HalfBorrowSub(a, b uint8) bool {
	return a&0xF < b&0xF
}
