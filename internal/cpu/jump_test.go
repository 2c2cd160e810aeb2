package cpu

import (
	"testing"
)

func TestJump_Absolute(t *testing.T) {
	c, _ := newTestCPU(0xC3, 0x50, 0x01) // JP 0x0150
	if cycles := step(t, c); cycles != 16 {
		t.Errorf("expected 16 cycles, got %d", cycles)
	}
	if c.PC != 0x0150 {
		t.Errorf("expected PC to be 0x0150, got 0x%04X", c.PC)
	}

	c, _ = newTestCPU(0xE9) // JP HL
	c.HL.SetUint16(0x4000)
	step(t, c)
	if c.PC != 0x4000 {
		t.Errorf("expected PC to be 0x4000, got 0x%04X", c.PC)
	}
}

func TestJump_Relative(t *testing.T) {
	tests := []struct {
		name   string
		offset uint8
		want   uint16
	}{
		{"forward", 0x05, 0x0107},
		{"backward", 0xFE, 0x0100},
		{"zero", 0x00, 0x0102},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestCPU(0x18, tt.offset)
			step(t, c)
			if c.PC != tt.want {
				t.Errorf("expected PC to be 0x%04X, got 0x%04X", tt.want, c.PC)
			}
		})
	}
}

func TestJump_Conditional(t *testing.T) {
	tests := []struct {
		name  string
		code  []uint8
		flags uint8
		taken uint16
		skip  uint16
	}{
		{"JR NZ", []uint8{0x20, 0x10}, 1 << FlagZero, 0x0112, 0x0102},
		{"JR Z", []uint8{0x28, 0x10}, 0, 0x0112, 0x0102},
		{"JR NC", []uint8{0x30, 0x10}, 1 << FlagCarry, 0x0112, 0x0102},
		{"JR C", []uint8{0x38, 0x10}, 0, 0x0112, 0x0102},
		{"JP NZ", []uint8{0xC2, 0x00, 0x20}, 1 << FlagZero, 0x2000, 0x0103},
		{"JP Z", []uint8{0xCA, 0x00, 0x20}, 0, 0x2000, 0x0103},
		{"JP NC", []uint8{0xD2, 0x00, 0x20}, 1 << FlagCarry, 0x2000, 0x0103},
		{"JP C", []uint8{0xDA, 0x00, 0x20}, 0, 0x2000, 0x0103},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// flags holds the value that makes the condition fail
			c, _ := newTestCPU(tt.code...)
			c.F = tt.flags
			step(t, c)
			if c.PC != tt.skip {
				t.Errorf("not taken: expected PC to be 0x%04X, got 0x%04X", tt.skip, c.PC)
			}

			c, _ = newTestCPU(tt.code...)
			c.F = tt.flags ^ (1<<FlagZero | 1<<FlagCarry)
			step(t, c)
			if c.PC != tt.taken {
				t.Errorf("taken: expected PC to be 0x%04X, got 0x%04X", tt.taken, c.PC)
			}
		})
	}
}

func TestJump_CallReturn(t *testing.T) {
	c, bus := newTestCPU(0xCD, 0x00, 0x02) // CALL 0x0200
	bus.data[0x0200] = 0xC9                // RET

	if cycles := step(t, c); cycles != 24 {
		t.Errorf("expected 24 cycles, got %d", cycles)
	}
	if c.PC != 0x0200 || c.SP != 0xCFFE {
		t.Fatalf("expected PC=0200 SP=CFFE, got %s", c)
	}
	if bus.data[0xCFFE] != 0x03 || bus.data[0xCFFF] != 0x01 {
		t.Errorf("expected return address 0x0103 on the stack")
	}

	if cycles := step(t, c); cycles != 16 {
		t.Errorf("expected 16 cycles, got %d", cycles)
	}
	if c.PC != 0x0103 || c.SP != 0xD000 {
		t.Errorf("expected PC=0103 SP=D000, got %s", c)
	}
}

func TestJump_ConditionalCallReturn(t *testing.T) {
	c, bus := newTestCPU(0xC4, 0x00, 0x02, 0xCC, 0x00, 0x02) // CALL NZ, CALL Z
	bus.data[0x0200] = 0xD8                                  // RET C
	bus.data[0x0201] = 0xD0                                  // RET NC
	c.F = 1 << FlagZero

	// NZ fails
	step(t, c)
	if c.PC != 0x0103 {
		t.Fatalf("expected CALL NZ not to be taken, PC = 0x%04X", c.PC)
	}
	// Z holds
	step(t, c)
	if c.PC != 0x0200 {
		t.Fatalf("expected CALL Z to be taken, PC = 0x%04X", c.PC)
	}
	// C fails
	if cycles := step(t, c); cycles != 8 {
		t.Errorf("expected 8 cycles, got %d", cycles)
	}
	// NC holds
	if cycles := step(t, c); cycles != 20 {
		t.Errorf("expected 20 cycles, got %d", cycles)
	}
	if c.PC != 0x0106 {
		t.Errorf("expected return to 0x0106, got 0x%04X", c.PC)
	}
}

func TestJump_RST(t *testing.T) {
	for i := uint8(0); i < 8; i++ {
		c, _ := newTestCPU(0xC7 + i*8)
		step(t, c)
		if c.PC != uint16(i)*8 {
			t.Errorf("RST %02XH: expected PC to be 0x%04X, got 0x%04X", i*8, uint16(i)*8, c.PC)
		}
		if c.popStack() != 0x0101 {
			t.Errorf("RST %02XH: expected return address 0x0101", i*8)
		}
	}
}
