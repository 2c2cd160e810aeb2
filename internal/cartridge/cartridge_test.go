package cartridge

import (
	"errors"
	"testing"
)

// testROM builds a ROM image of the given number of 16kB banks, with
// each bank filled with its own bank number.
func testROM(t Type, banks int, ramSize uint8) []byte {
	rom := make([]byte, banks*0x4000)
	for b := 0; b < banks; b++ {
		for i := 0; i < 0x4000; i++ {
			rom[b*0x4000+i] = uint8(b)
		}
	}
	copy(rom[0x134:], "TESTCART")
	for i := 0x13C; i < 0x144; i++ {
		rom[i] = 0
	}
	rom[0x143] = 0
	rom[0x147] = uint8(t)
	switch banks {
	case 2:
		rom[0x148] = 0
	case 4:
		rom[0x148] = 1
	case 64:
		rom[0x148] = 5
	}
	rom[0x149] = ramSize

	var sum uint8
	for _, b := range rom[0x134:0x14D] {
		sum = sum - b - 1
	}
	rom[0x14D] = sum
	return rom
}

func TestParseHeader(t *testing.T) {
	c, err := NewCartridge(testROM(MBC1RAM, 4, 0x03))
	if err != nil {
		t.Fatal(err)
	}
	h := c.Header()
	if h.Title != "TESTCART" {
		t.Errorf("expected title TESTCART, got %q", h.Title)
	}
	if h.CartridgeType != MBC1RAM {
		t.Errorf("expected MBC1+RAM, got %s", h.CartridgeType)
	}
	if h.ROMSize != 64*1024 {
		t.Errorf("expected 64kB ROM, got %d", h.ROMSize)
	}
	if h.RAMSize != 32*1024 {
		t.Errorf("expected 32kB RAM, got %d", h.RAMSize)
	}
	if !h.ChecksumValid() {
		t.Errorf("expected header checksum to be valid")
	}
}

func TestNewCartridge_Errors(t *testing.T) {
	if _, err := NewCartridge(make([]byte, 0x100)); !errors.Is(err, ErrShortROM) {
		t.Errorf("expected ErrShortROM, got %v", err)
	}
	if _, err := NewCartridge(testROM(MBC3, 2, 0)); err == nil {
		t.Errorf("expected unsupported cartridge type error")
	}
}

func TestROMCartridge(t *testing.T) {
	c, err := NewCartridge(testROM(ROM, 2, 0))
	if err != nil {
		t.Fatal(err)
	}
	if c.Read(0x4000) != 1 {
		t.Errorf("expected bank 1 at 0x4000, got %d", c.Read(0x4000))
	}
	c.Write(0x2000, 0x00)
	if c.Read(0x4000) != 1 {
		t.Errorf("ROM only cartridge should ignore bank writes")
	}
	c.WriteRAM(0x10, 0x42)
	if c.ReadRAM(0x10) != 0xFF {
		t.Errorf("expected 0xFF from absent RAM, got %02X", c.ReadRAM(0x10))
	}
}

func TestMemoryBankedCartridge1(t *testing.T) {
	c, err := NewCartridge(testROM(MBC1RAM, 64, 0x03))
	if err != nil {
		t.Fatal(err)
	}

	if c.Read(0x4000) != 1 {
		t.Errorf("expected default bank 1, got %d", c.Read(0x4000))
	}
	c.Write(0x2000, 0x05)
	if c.Read(0x4000) != 5 {
		t.Errorf("expected bank 5, got %d", c.Read(0x4000))
	}
	c.Write(0x2000, 0x00)
	if c.Read(0x4000) != 1 {
		t.Errorf("bank 0 should map to bank 1, got %d", c.Read(0x4000))
	}
	c.Write(0x2000, 0x01)
	c.Write(0x4000, 0x01)
	if c.Read(0x4000) != 0x21 {
		t.Errorf("expected bank 0x21, got %02X", c.Read(0x4000))
	}

	// RAM is disabled until 0x0A is written to 0x0000 - 0x1FFF
	c.WriteRAM(0x0000, 0x42)
	if c.ReadRAM(0x0000) != 0xFF {
		t.Errorf("expected disabled RAM to read 0xFF")
	}
	c.Write(0x0000, 0x0A)
	c.WriteRAM(0x0000, 0x42)
	if c.ReadRAM(0x0000) != 0x42 {
		t.Errorf("expected 0x42 from enabled RAM, got %02X", c.ReadRAM(0x0000))
	}

	// switch to RAM banking mode, bank 2 is a different bank
	c.Write(0x6000, 0x01)
	c.Write(0x4000, 0x02)
	if c.ReadRAM(0x0000) != 0x00 {
		t.Errorf("expected RAM bank 2 to be empty")
	}
	c.Write(0x4000, 0x00)
	if c.ReadRAM(0x0000) != 0x42 {
		t.Errorf("expected RAM bank 0 to hold 0x42")
	}
}

func TestMemoryBankedCartridge5(t *testing.T) {
	c, err := NewCartridge(testROM(MBC5RAM, 64, 0x03))
	if err != nil {
		t.Fatal(err)
	}
	c.Write(0x2000, 0x00)
	if c.Read(0x4000) != 0 {
		t.Errorf("MBC5 should allow bank 0 in the switchable area")
	}
	c.Write(0x2000, 0x3F)
	if c.Read(0x7FFF) != 0x3F {
		t.Errorf("expected bank 0x3F, got %02X", c.Read(0x7FFF))
	}

	c.Write(0x0000, 0x0A)
	c.Write(0x4000, 0x01)
	c.WriteRAM(0x1FFF, 0x99)
	c.Write(0x4000, 0x00)
	if c.ReadRAM(0x1FFF) == 0x99 {
		t.Errorf("RAM banks should be independent")
	}
	c.Write(0x4000, 0x01)
	if c.ReadRAM(0x1FFF) != 0x99 {
		t.Errorf("expected 0x99 from RAM bank 1")
	}
}

func TestMemoryBankedCartridge5_SmallRAM(t *testing.T) {
	// 2kB of RAM is smaller than a single 8kB bank
	c, err := NewCartridge(testROM(MBC5RAM, 64, 0x01))
	if err != nil {
		t.Fatal(err)
	}
	c.Write(0x0000, 0x0A)
	for bank := uint8(0); bank < 0x10; bank++ {
		c.Write(0x4000, bank)
		c.WriteRAM(0x0000, bank)
		if got := c.ReadRAM(0x0000); got != bank {
			t.Errorf("bank %d: expected %02X, got %02X", bank, bank, got)
		}
	}

	// every bank mirrors the same 2kB
	c.Write(0x4000, 0x03)
	c.WriteRAM(0x0001, 0x5A)
	c.Write(0x4000, 0x00)
	if got := c.ReadRAM(0x0801); got != 0x5A {
		t.Errorf("expected 2kB RAM to mirror across banks, got %02X", got)
	}
}
