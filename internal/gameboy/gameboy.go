// Package gameboy ties the CPU, memory bus and collaborators together
// and drives them with a stepping loop.
package gameboy

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/cespare/xxhash"

	"github.com/thelolagemann/gbcore/internal/cartridge"
	"github.com/thelolagemann/gbcore/internal/cpu"
	gbio "github.com/thelolagemann/gbcore/internal/io"
	"github.com/thelolagemann/gbcore/internal/mmu"
	"github.com/thelolagemann/gbcore/internal/ppu"
	"github.com/thelolagemann/gbcore/pkg/log"
)

const (
	// ClockSpeed is the clock speed of the Game Boy.
	ClockSpeed = cpu.ClockSpeed // 4.194304 MHz

	// contextCheckInterval is the number of steps between checks of
	// the run context.
	contextCheckInterval = 1024
)

// OpcodeStat holds how often an instruction was executed, and the
// cycles it took in total.
type OpcodeStat struct {
	Opcode   uint8
	Prefixed bool
	Name     string
	Count    uint64
	Cycles   uint64
}

// GameBoy represents a Game Boy. It contains all the components of the Game Boy.
// It is the main entry point for the emulator.
type GameBoy struct {
	CPU       *cpu.CPU
	MMU       *mmu.MMU
	Cartridge cartridge.Cartridge
	IO        *gbio.Bus
	Video     *ppu.PPU
	Serial    *gbio.Serial

	log.Logger

	romHash uint64
	steps   uint64
	cycles  uint64
	stats   [256]OpcodeStat
	statsCB [256]OpcodeStat

	trace        io.Writer
	serialOut    io.Writer
	serialLog    strings.Builder
	stopOnResult bool
}

// NewGameBoy returns a new GameBoy running the given ROM. The CPU starts
// at 0x0100 with the registers the boot ROM leaves behind.
func NewGameBoy(rom []byte, opts ...Opt) (*GameBoy, error) {
	cart, err := cartridge.NewCartridge(rom)
	if err != nil {
		return nil, fmt.Errorf("gameboy: loading cartridge: %w", err)
	}

	ioBus := gbio.NewBus()
	video := ppu.New()
	memBus := mmu.NewMMU(cart, video, ioBus)

	g := &GameBoy{
		CPU:       cpu.NewCPU(memBus),
		MMU:       memBus,
		Cartridge: cart,
		IO:        ioBus,
		Video:     video,
		Logger:    log.NewNullLogger(),
		romHash:   xxhash.Sum64(rom),
	}
	g.CPU.ResetNoBoot()

	for _, opt := range opts {
		opt(g)
	}

	// serial output is always captured, additionally forwarded to serialOut
	var serial io.Writer = &g.serialLog
	if g.serialOut != nil {
		serial = io.MultiWriter(&g.serialLog, g.serialOut)
	}
	g.Serial = gbio.AttachSerial(ioBus, serial)

	h := cart.Header()
	g.Infof("loaded %s (%016x)", h.String(), g.romHash)
	if !h.ChecksumValid() {
		g.Infof("header checksum mismatch, continuing anyway")
	}

	return g, nil
}

// ROMHash returns the xxhash of the loaded ROM image.
func (g *GameBoy) ROMHash() uint64 {
	return g.romHash
}

// Steps returns the number of instructions executed.
func (g *GameBoy) Steps() uint64 {
	return g.steps
}

// Cycles returns the number of T-cycles elapsed.
func (g *GameBoy) Cycles() uint64 {
	return g.cycles
}

// SerialOutput returns everything the ROM has written over the serial port.
func (g *GameBoy) SerialOutput() string {
	return g.serialLog.String()
}

// Step executes a single instruction, returning the T-cycles it took.
// Errors from the dispatcher are returned wrapped; the GameBoy should
// not be stepped past one.
func (g *GameBoy) Step() (uint8, error) {
	pc := g.CPU.PC
	halted := g.CPU.Halted()

	var opcode uint8
	var prefixed bool
	if !halted {
		opcode = g.MMU.Read(pc)
		if opcode == 0xCB {
			prefixed = true
			opcode = g.MMU.Read(pc + 1)
		}
		if g.trace != nil {
			fmt.Fprintf(g.trace, "%04X  %-16s %s\n", pc, cpu.Disassemble(opcode, prefixed), g.CPU)
		}
	}

	cycles, err := g.CPU.Step()
	if err != nil {
		g.Debugf("%s", g.CPU)
		return 0, fmt.Errorf("gameboy: step %d: %w", g.steps, err)
	}

	g.steps++
	g.cycles += uint64(cycles)
	if !halted {
		g.record(opcode, prefixed, cycles)
	}

	return cycles, nil
}

func (g *GameBoy) record(opcode uint8, prefixed bool, cycles uint8) {
	stat := &g.stats[opcode]
	if prefixed {
		stat = &g.statsCB[opcode]
	}
	if stat.Count == 0 {
		stat.Opcode = opcode
		stat.Prefixed = prefixed
		stat.Name = cpu.Disassemble(opcode, prefixed)
	}
	stat.Count++
	stat.Cycles += uint64(cycles)
}

// Run steps the GameBoy until maxSteps instructions have executed (0
// means no limit), the CPU halts, the context is cancelled or an error
// occurs. Without interrupt delivery nothing wakes a halted CPU, so a
// halt ends the run.
func (g *GameBoy) Run(ctx context.Context, maxSteps uint64) error {
	for start := g.steps; maxSteps == 0 || g.steps-start < maxSteps; {
		if (g.steps-start)%contextCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		if _, err := g.Step(); err != nil {
			return err
		}

		if g.CPU.Halted() {
			g.Debugf("cpu halted at %04X after %d steps", g.CPU.PC, g.steps)
			return nil
		}
		if g.stopOnResult && g.testResult() {
			g.Debugf("test result reported over serial")
			return nil
		}
	}
	return nil
}

// testResult returns true once a test ROM has reported its result over
// the serial port.
func (g *GameBoy) testResult() bool {
	out := g.serialLog.String()
	return strings.Contains(out, "Passed") || strings.Contains(out, "Failed")
}

// Stats returns the statistics of every executed instruction, ordered
// by the total cycles spent in them.
func (g *GameBoy) Stats() []OpcodeStat {
	var stats []OpcodeStat
	for _, set := range [][256]OpcodeStat{g.stats, g.statsCB} {
		for _, s := range set {
			if s.Count > 0 {
				stats = append(stats, s)
			}
		}
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Cycles != stats[j].Cycles {
			return stats[i].Cycles > stats[j].Cycles
		}
		return stats[i].Name < stats[j].Name
	})
	return stats
}
