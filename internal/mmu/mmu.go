// Package mmu provides a memory management unit for the Game Boy. The
// MMU decodes every 16-bit address into the region that backs it, and
// routes reads and writes to work RAM, high RAM, the cartridge, video
// memory or the I/O registers accordingly.
package mmu

import (
	"fmt"

	"github.com/thelolagemann/gbcore/internal/cartridge"
	"github.com/thelolagemann/gbcore/internal/ppu"
	"github.com/thelolagemann/gbcore/internal/ram"
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/log"
)

// IOBus is the interface that the MMU uses to communicate with the
// I/O registers. Registers are indexed by the low byte of their address.
type IOBus interface {
	Read(index uint8) uint8
	Write(index uint8, value uint8)
}

// Region identifies one of the address ranges the MMU decodes.
type Region uint8

const (
	RegionROM Region = iota
	RegionVRAM
	RegionCartRAM
	RegionWRAM
	RegionEcho
	RegionOAM
	RegionUnusable
	RegionIO
	RegionUnusableIO
	RegionHRAM
	RegionIE
)

var regionNames = [...]string{
	RegionROM:        "ROM",
	RegionVRAM:       "VRAM",
	RegionCartRAM:    "Cartridge RAM",
	RegionWRAM:       "WRAM",
	RegionEcho:       "Echo RAM",
	RegionOAM:        "OAM",
	RegionUnusable:   "Unusable",
	RegionIO:         "I/O",
	RegionUnusableIO: "Unusable I/O",
	RegionHRAM:       "HRAM",
	RegionIE:         "Interrupt Enable",
}

func (r Region) String() string {
	if int(r) < len(regionNames) {
		return regionNames[r]
	}
	return fmt.Sprintf("Region(%d)", r)
}

// region is a contiguous, inclusive address range and the handlers
// that serve it.
type region struct {
	kind       Region
	start, end uint16
	types.Address
}

// MMU is the memory management unit for the Game Boy. It handles all
// memory reads and writes to the Game Boy's 64kB of memory.
type MMU struct {
	// 64kB address space
	raw [0x10000]*region

	// 0x0000 - 0x7FFF - ROM (32kB, bank switched)
	// 0xA000 - 0xBFFF - External RAM (8kB)
	Cart cartridge.Cartridge

	// 0x8000 - 0x9FFF - Video RAM (8kB)
	// 0xFE00 - 0xFE9F - Sprite Attribute Table (160B)
	Video *ppu.PPU

	// 0xC000 - 0xDFFF - Work RAM (8kB)
	// 0xE000 - 0xFDFF - Echo RAM (7.5kB)
	wRAM *WRAM

	// 0xFF00 - 0xFF4B - I/O Registers
	IO IOBus

	// 0xFF80 - 0xFFFE - Zero Page RAM (127B)
	zRAM *ram.RAM

	// (0xFFFF) - interrupt enable register, reads 0xFF and ignores writes

	Log log.Logger
}

// NewMMU returns a new MMU routing to the given cartridge, video memory
// and I/O registers.
func NewMMU(cart cartridge.Cartridge, video *ppu.PPU, io IOBus) *MMU {
	m := &MMU{
		Cart:  cart,
		Video: video,
		IO:    io,
		wRAM:  NewWRAM(),
		zRAM:  ram.NewRAM(0x7F), // 127 bytes, 0xFFFF is not part of HRAM
		Log:   log.NewNullLogger(),
	}
	m.init()

	return m
}

func (m *MMU) init() {
	unusable := types.Address{Read: m.readUnusable, Write: m.writeUnusable}
	wram := types.Address{Read: m.wRAM.Read, Write: m.wRAM.Write}

	// highest to lowest address
	regions := []region{
		{RegionIE, types.IE, types.IE, types.Address{
			Read:  func(uint16) uint8 { return 0xFF },
			Write: func(uint16, uint8) {},
		}},
		{RegionHRAM, types.HRAMStart, types.HRAMEnd, types.Address{
			Read:  readOffset(m.zRAM.Read, types.HRAMStart),
			Write: writeOffset(m.zRAM.Write, types.HRAMStart),
		}},
		{RegionUnusableIO, types.UnusableIOStart, types.UnusableIOEnd, unusable},
		{RegionIO, types.IOStart, types.IOEnd, types.Address{
			Read:  func(address uint16) uint8 { return m.IO.Read(uint8(address)) },
			Write: func(address uint16, v uint8) { m.IO.Write(uint8(address), v) },
		}},
		{RegionUnusable, types.UnusableStart, types.UnusableEnd, unusable},
		{RegionOAM, types.OAMStart, types.OAMEnd, types.Address{
			Read:  func(address uint16) uint8 { return m.Video.OAM[address-types.OAMStart] },
			Write: func(address uint16, v uint8) { m.Video.OAM[address-types.OAMStart] = v },
		}},
		{RegionEcho, types.EchoStart, types.EchoEnd, wram},
		{RegionWRAM, types.WRAMStart, types.WRAMEnd, wram},
		{RegionCartRAM, types.CartRAMStart, types.CartRAMEnd, types.Address{
			Read:  readOffset(m.Cart.ReadRAM, types.CartRAMStart),
			Write: writeOffset(m.Cart.WriteRAM, types.CartRAMStart),
		}},
		{RegionVRAM, types.VRAMStart, types.VRAMEnd, types.Address{
			Read:  func(address uint16) uint8 { return m.Video.VRAM[address-types.VRAMStart] },
			Write: func(address uint16, v uint8) { m.Video.VRAM[address-types.VRAMStart] = v },
		}},
		{RegionROM, types.ROMStart, types.ROMEnd, types.Address{
			Read:  m.Cart.Read,
			Write: m.Cart.Write,
		}},
	}

	for i := range regions {
		r := &regions[i]
		for addr := uint32(r.start); addr <= uint32(r.end); addr++ {
			if m.raw[addr] != nil {
				panic(fmt.Sprintf("mmu: %s overlaps %s at %04X", r.kind, m.raw[addr].kind, addr))
			}
			m.raw[addr] = r
		}
	}

	// every address must decode to exactly one region
	for addr := range m.raw {
		if m.raw[addr] == nil {
			panic(fmt.Sprintf("mmu: address %04X was not matched by any region", addr))
		}
	}
}

func readOffset(read func(uint16) uint8, offset uint16) func(uint16) uint8 {
	return func(addr uint16) uint8 {
		return read(addr - offset)
	}
}

func writeOffset(write func(uint16, uint8), offset uint16) func(uint16, uint8) {
	return func(addr uint16, v uint8) {
		write(addr-offset, v)
	}
}

func (m *MMU) readUnusable(address uint16) uint8 {
	m.Log.Debugf("mmu: read from unusable memory %04X", address)
	return 0xFF
}

func (m *MMU) writeUnusable(address uint16, value uint8) {
	m.Log.Debugf("mmu: write to unusable memory %04X = %02X", address, value)
}

// Region returns the region that the given address decodes to.
func (m *MMU) Region(address uint16) Region {
	return m.raw[address].kind
}

// Read returns the value at the given address. It handles all the memory
// banks, mirroring, I/O, etc.
func (m *MMU) Read(address uint16) uint8 {
	return m.raw[address].Read(address)
}

// Write writes the value to the given address. Writes to read-only or
// unusable memory are discarded.
func (m *MMU) Write(address uint16, value uint8) {
	m.raw[address].Write(address, value)
}

// ReadWord reads the little-endian 16-bit value at address.
func (m *MMU) ReadWord(address uint16) uint16 {
	return uint16(m.Read(address)) | uint16(m.Read(address+1))<<8
}

// WriteWord writes value little-endian, low byte at address.
func (m *MMU) WriteWord(address uint16, value uint16) {
	m.Write(address, uint8(value))
	m.Write(address+1, uint8(value>>8))
}
