// Package cartridge provides the Cartridge interface the MMU routes
// 0x0000-0x7FFF and 0xA000-0xBFFF through. The cartridge holds the
// game ROM, any external RAM and the bank switching logic.
package cartridge

import (
	"fmt"
)

// Cartridge represents a basic game cartridge.
type Cartridge interface {
	// Read returns the byte at the given ROM address (0x0000 - 0x7FFF).
	Read(address uint16) uint8
	// Write handles writes to the ROM area, which control bank switching.
	Write(address uint16, value uint8)
	// ReadRAM returns the byte at the given offset into the switchable
	// RAM window (relative to 0xA000).
	ReadRAM(offset uint16) uint8
	// WriteRAM writes to the given offset into the switchable RAM window.
	WriteRAM(offset uint16, value uint8)

	Header() Header
}

// NewCartridge parses the header of the given ROM and returns the
// cartridge implementation matching its type.
func NewCartridge(rom []byte) (Cartridge, error) {
	header, err := parseHeader(rom)
	if err != nil {
		return nil, err
	}

	switch header.CartridgeType {
	case ROM, ROMRAM, ROMRAMBATT:
		return NewROMCartridge(rom, header), nil
	case MBC1, MBC1RAM, MBC1RAMBATT:
		return NewMemoryBankedCartridge1(rom, header), nil
	case MBC5, MBC5RAM, MBC5RAMBATT, MBC5RUMBLE, MBC5RUMBLERAM, MBC5RUMBLERAMBATT:
		return NewMemoryBankedCartridge5(rom, header), nil
	}

	return nil, fmt.Errorf("cartridge: unsupported cartridge type %02X (%s)", uint8(header.CartridgeType), header.Title)
}

// bankCount returns the number of 16kB banks in rom, never less than 2.
func bankCount(rom []byte) int {
	n := len(rom) / 0x4000
	if n < 2 {
		return 2
	}
	return n
}

// readROM reads from rom, returning 0xFF past the end of the image.
func readROM(rom []byte, index int) uint8 {
	if index < len(rom) {
		return rom[index]
	}
	return 0xFF
}
