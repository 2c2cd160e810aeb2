package types

// Register represents a GB Register which is used to hold an 8-bit value.
// The CPU has 8 registers: A, B, C, D, E, H, L, and F. The F register is
// special in that it is used to hold the flags.
type Register = uint8

// RegisterPair represents a pair of GB Registers which is used to hold a 16-bit
// value. The CPU has 4 register pairs: AF, BC, DE, and HL.
type RegisterPair struct {
	High *Register
	Low  *Register
}

// Uint16 returns the value of the RegisterPair as an uint16.
func (r *RegisterPair) Uint16() uint16 {
	return uint16(*r.High)<<8 | uint16(*r.Low)
}

// SetUint16 sets the value of the RegisterPair to the given value.
func (r *RegisterPair) SetUint16(value uint16) {
	*r.High = uint8(value >> 8)
	*r.Low = uint8(value)
}

// Registers represents the GB CPU registers. The register pairs are views
// over the 8-bit registers, so they must be linked with LinkPairs once the
// Registers have their final address.
type Registers struct {
	A Register
	B Register
	C Register
	D Register
	E Register
	F Register
	H Register
	L Register

	BC *RegisterPair
	DE *RegisterPair
	HL *RegisterPair
	AF *RegisterPair
}

// LinkPairs points the register pairs at the 8-bit registers they combine.
func (r *Registers) LinkPairs() {
	r.BC = &RegisterPair{&r.B, &r.C}
	r.DE = &RegisterPair{&r.D, &r.E}
	r.HL = &RegisterPair{&r.H, &r.L}
	r.AF = &RegisterPair{&r.A, &r.F}
}

// Pair composes two registers into a 16-bit value, hi being the most
// significant byte.
func (r *Registers) Pair(hi, lo *Register) uint16 {
	return uint16(*hi)<<8 | uint16(*lo)
}

// SetPair decomposes value into the two registers.
func (r *Registers) SetPair(hi, lo *Register, value uint16) {
	*hi = uint8(value >> 8)
	*lo = uint8(value)
}
