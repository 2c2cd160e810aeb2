package mmu

import (
	"github.com/thelolagemann/gbcore/internal/ram"
	"github.com/thelolagemann/gbcore/internal/types"
)

// WRAM is the 8kB of work RAM at 0xC000 - 0xDFFF, which is also
// reachable through the echo region 0xE000 - 0xFDFF.
type WRAM struct {
	raw *ram.RAM
}

// NewWRAM returns zeroed work RAM.
func NewWRAM() *WRAM {
	return &WRAM{raw: ram.NewRAM(0x2000)}
}

// offset returns the index into work RAM for a work RAM or echo
// RAM address.
func (w *WRAM) offset(addr uint16) uint16 {
	// are we reading from the echo?
	if addr >= types.EchoStart {
		return addr - types.EchoStart
	}
	return addr - types.WRAMStart
}

// Read returns the work RAM byte at a work RAM or echo address.
func (w *WRAM) Read(addr uint16) uint8 {
	return w.raw.Read(w.offset(addr))
}

// Write stores v at a work RAM or echo address.
func (w *WRAM) Write(addr uint16, v uint8) {
	w.raw.Write(w.offset(addr), v)
}
