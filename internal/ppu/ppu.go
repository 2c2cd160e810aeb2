// Package ppu holds the memory owned by the Game Boy's picture
// processing unit: video RAM and the sprite attribute table (OAM).
// Pixel generation is driven elsewhere; the MMU indexes these
// buffers directly by offset from their region base.
package ppu

const (
	// VRAMSize is the size of video RAM (0x8000 - 0x9FFF).
	VRAMSize = 0x2000
	// OAMSize is the size of the sprite attribute table (0xFE00 - 0xFE9F),
	// 40 sprites of 4 bytes each.
	OAMSize = 0xA0
)

// PPU owns the video memory of the Game Boy.
type PPU struct {
	VRAM [VRAMSize]uint8
	OAM  [OAMSize]uint8
}

// New returns a PPU with zeroed video memory.
func New() *PPU {
	return &PPU{}
}
