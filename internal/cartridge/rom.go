package cartridge

// ROMCartridge represents a ROM cartridge. This cartridge type is the simplest
// cartridge type and has no MBC, and at most a single fixed bank of RAM.
type ROMCartridge struct {
	rom    []byte
	ram    []byte
	header *Header
}

// NewROMCartridge returns a new ROM cartridge.
func NewROMCartridge(rom []byte, header *Header) *ROMCartridge {
	r := &ROMCartridge{
		rom:    rom,
		header: header,
	}
	if header.CartridgeType != ROM {
		r.ram = make([]byte, 0x2000)
	}
	return r
}

// Read returns the value at the given address.
func (r *ROMCartridge) Read(address uint16) uint8 {
	return readROM(r.rom, int(address))
}

// Write writes the value to the given address. Without an MBC
// there is nothing to switch, so the write is ignored.
func (r *ROMCartridge) Write(address uint16, value uint8) {}

// ReadRAM returns the value at the given RAM offset, or 0xFF when
// the cartridge has no RAM.
func (r *ROMCartridge) ReadRAM(offset uint16) uint8 {
	if int(offset) < len(r.ram) {
		return r.ram[offset]
	}
	return 0xFF
}

// WriteRAM writes the value to the given RAM offset, if any RAM is present.
func (r *ROMCartridge) WriteRAM(offset uint16, value uint8) {
	if int(offset) < len(r.ram) {
		r.ram[offset] = value
	}
}

func (r *ROMCartridge) Header() Header {
	return *r.header
}
