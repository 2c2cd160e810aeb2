package cartridge

// MemoryBankedCartridge1 represents a MemoryBankedCartridge1 cartridge. This cartridge type has external RAM and
// supports switching between up to 128 ROM banks and 4 RAM banks.
type MemoryBankedCartridge1 struct {
	rom     []byte
	romBank uint32

	ram        []byte
	ramEnabled bool

	// bank2 holds the 2 bit secondary register (0x4000 - 0x5FFF), which
	// selects either the upper ROM bank bits or the RAM bank.
	bank2    uint32
	ramMode  bool
	bankMask uint32

	header *Header
}

// NewMemoryBankedCartridge1 returns a new MemoryBankedCartridge1 cartridge.
func NewMemoryBankedCartridge1(rom []byte, header *Header) *MemoryBankedCartridge1 {
	m := &MemoryBankedCartridge1{
		rom:      rom,
		romBank:  1,
		ram:      make([]byte, header.RAMSize),
		bankMask: uint32(bankCount(rom) - 1),
		header:   header,
	}
	return m
}

// Read returns the value from the cartridges ROM, depending on the bank
// selected.
func (m *MemoryBankedCartridge1) Read(address uint16) uint8 {
	if address < 0x4000 {
		bank := uint32(0)
		if m.ramMode {
			bank = (m.bank2 << 5) & m.bankMask
		}
		return readROM(m.rom, int(bank*0x4000+uint32(address)))
	}
	return readROM(m.rom, int(m.effectiveROMBank()*0x4000+uint32(address-0x4000)))
}

// Write attempts to switch the ROM or RAM bank.
func (m *MemoryBankedCartridge1) Write(address uint16, value uint8) {
	switch {
	case address < 0x2000:
		m.ramEnabled = value&0x0F == 0x0A
	case address < 0x4000:
		// ROM bank number (lower 5 bits), 0 behaves as 1
		m.romBank = uint32(value & 0x1F)
		if m.romBank == 0 {
			m.romBank = 1
		}
	case address < 0x6000:
		m.bank2 = uint32(value & 0x03)
	default:
		// ROM/RAM mode select
		m.ramMode = value&0x01 == 0x01
	}
}

// ReadRAM returns the value at the given offset in the selected RAM bank.
func (m *MemoryBankedCartridge1) ReadRAM(offset uint16) uint8 {
	if !m.ramEnabled || len(m.ram) == 0 {
		return 0xFF
	}
	return m.ram[m.ramOffset(offset)]
}

// WriteRAM writes to the given offset in the selected RAM bank.
func (m *MemoryBankedCartridge1) WriteRAM(offset uint16, value uint8) {
	if !m.ramEnabled || len(m.ram) == 0 {
		return
	}
	m.ram[m.ramOffset(offset)] = value
}

func (m *MemoryBankedCartridge1) Header() Header {
	return *m.header
}

func (m *MemoryBankedCartridge1) effectiveROMBank() uint32 {
	return (m.bank2<<5 | m.romBank) & m.bankMask
}

func (m *MemoryBankedCartridge1) ramOffset(offset uint16) uint32 {
	bank := uint32(0)
	if m.ramMode {
		bank = m.bank2
	}
	return (bank*0x2000 + uint32(offset&0x1FFF)) % uint32(len(m.ram))
}
