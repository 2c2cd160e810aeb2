package cartridge

// MemoryBankedCartridge5 supports up to 512 ROM banks and 16 RAM banks,
// and unlike MBC1 allows ROM bank 0 to be mapped into the switchable area.
type MemoryBankedCartridge5 struct {
	rom        []byte
	ram        []byte
	ramEnabled bool
	romBank    int
	ramBank    int

	header *Header
}

func NewMemoryBankedCartridge5(rom []byte, header *Header) *MemoryBankedCartridge5 {
	return &MemoryBankedCartridge5{
		rom:     rom,
		header:  header,
		romBank: 1,
		ram:     make([]byte, header.RAMSize),
	}
}

func (m *MemoryBankedCartridge5) Read(address uint16) uint8 {
	if address < 0x4000 {
		return readROM(m.rom, int(address)) // first bank is always fixed
	}
	return readROM(m.rom, m.romBank*0x4000+int(address&0x3FFF))
}

func (m *MemoryBankedCartridge5) Write(address uint16, value uint8) {
	switch {
	case address < 0x2000:
		m.ramEnabled = value&0x0F == 0x0A
	case address < 0x3000:
		// ROM bank number (lower 8 bits)
		m.romBank = (m.romBank & 0x100) | int(value)
		m.romBank %= bankCount(m.rom)
	case address < 0x4000:
		// ROM bank number (upper 1 bit)
		m.romBank = (m.romBank & 0x0FF) | int(value&0x1)<<8
		m.romBank %= bankCount(m.rom)
	case address < 0x6000:
		// banks beyond the fitted RAM wrap when addressed
		m.ramBank = int(value) & 0xF
	}
}

func (m *MemoryBankedCartridge5) ReadRAM(offset uint16) uint8 {
	if !m.ramEnabled || len(m.ram) == 0 {
		return 0xFF
	}
	return m.ram[(m.ramBank*0x2000+int(offset&0x1FFF))%len(m.ram)]
}

func (m *MemoryBankedCartridge5) WriteRAM(offset uint16, value uint8) {
	if !m.ramEnabled || len(m.ram) == 0 {
		return
	}
	m.ram[(m.ramBank*0x2000+int(offset&0x1FFF))%len(m.ram)] = value
}

func (m *MemoryBankedCartridge5) Header() Header {
	return *m.header
}
