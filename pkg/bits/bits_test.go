package bits

import "testing"

func TestSetReset(t *testing.T) {
	for i := uint8(0); i < 8; i++ {
		v := Set(0, i)
		if v != 1<<i {
			t.Errorf("Set(0, %d): expected %08b, got %08b", i, 1<<i, v)
		}
		if !Test(v, i) {
			t.Errorf("bit %d should be set in %08b", i, v)
		}
		if Reset(0xFF, i) != 0xFF&^(1<<i) {
			t.Errorf("Reset(0xFF, %d): got %08b", i, Reset(0xFF, i))
		}
		if Test(Reset(0xFF, i), i) {
			t.Errorf("bit %d should be clear", i)
		}
	}
}

func TestHalfCarry(t *testing.T) {
	tests := []struct {
		a, b        uint8
		carry, borr bool
	}{
		{0x0F, 0x01, true, false},
		{0x08, 0x07, false, false},
		{0x10, 0x01, false, true},
		{0x00, 0x00, false, false},
	}
	for _, tt := range tests {
		if got := HalfCarryAdd(tt.a, tt.b); got != tt.carry {
			t.Errorf("HalfCarryAdd(%02X, %02X) = %t", tt.a, tt.b, got)
		}
		if got := HalfBorrowSub(tt.a, tt.b); got != tt.borr {
			t.Errorf("HalfBorrowSub(%02X, %02X) = %t", tt.a, tt.b, got)
		}
	}
}
