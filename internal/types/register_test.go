package types

import "testing"

func TestRegisters_Pair(t *testing.T) {
	r := &Registers{}
	r.LinkPairs()

	r.B, r.C = 0x12, 0x34
	if got := r.Pair(&r.B, &r.C); got != 0x1234 {
		t.Errorf("expected BC to be 0x1234, got %04X", got)
	}
	if got := r.BC.Uint16(); got != 0x1234 {
		t.Errorf("expected BC view to be 0x1234, got %04X", got)
	}

	r.SetPair(&r.B, &r.C, 0xABCD)
	if r.B != 0xAB || r.C != 0xCD {
		t.Errorf("expected B=AB C=CD, got B=%02X C=%02X", r.B, r.C)
	}
}

func TestRegisterPair_SetUint16(t *testing.T) {
	r := &Registers{}
	r.LinkPairs()

	pairs := map[string]struct {
		pair   *RegisterPair
		hi, lo *Register
	}{
		"AF": {r.AF, &r.A, &r.F},
		"BC": {r.BC, &r.B, &r.C},
		"DE": {r.DE, &r.D, &r.E},
		"HL": {r.HL, &r.H, &r.L},
	}

	for name, p := range pairs {
		t.Run(name, func(t *testing.T) {
			for _, v := range []uint16{0x0000, 0x00FF, 0xFF00, 0xBEEF, 0xFFFF} {
				p.pair.SetUint16(v)
				if *p.hi != uint8(v>>8) || *p.lo != uint8(v) {
					t.Errorf("%s: expected %04X, got hi=%02X lo=%02X", name, v, *p.hi, *p.lo)
				}
				if r.Pair(p.hi, p.lo) != v {
					t.Errorf("%s: expected Pair to read back %04X", name, v)
				}
			}
		})
	}
}
