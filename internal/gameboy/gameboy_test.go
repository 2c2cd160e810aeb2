package gameboy

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/cespare/xxhash"

	"github.com/thelolagemann/gbcore/internal/cartridge"
	"github.com/thelolagemann/gbcore/internal/cpu"
)

// testROM builds a 32kB ROM-only image whose entry point jumps to the
// given program at 0x0150.
func testROM(program ...uint8) []byte {
	rom := make([]byte, 0x8000)
	copy(rom[0x100:], []byte{0x00, 0xC3, 0x50, 0x01}) // NOP, JP 0x0150
	copy(rom[0x134:], "GBCORE TEST")
	copy(rom[0x150:], program)

	var sum uint8
	for _, b := range rom[0x134:0x14D] {
		sum = sum - b - 1
	}
	rom[0x14D] = sum
	return rom
}

func newTestGameBoy(t *testing.T, program []uint8, opts ...Opt) *GameBoy {
	t.Helper()
	g, err := NewGameBoy(testROM(program...), opts...)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

// serialProgram writes s over the serial port, then loops forever.
func serialProgram(s string) []uint8 {
	var p []uint8
	for _, ch := range []byte(s) {
		p = append(p,
			0x3E, ch, // LD A, ch
			0xE0, 0x01, // LDH (SB), A
			0x3E, 0x81, // LD A, 0x81
			0xE0, 0x02, // LDH (SC), A
		)
	}
	return append(p, 0x18, 0xFE) // JR -2
}

func TestNewGameBoy(t *testing.T) {
	rom := testROM()
	g, err := NewGameBoy(rom)
	if err != nil {
		t.Fatal(err)
	}
	if g.CPU.PC != 0x0100 || g.CPU.SP != 0xFFFE {
		t.Errorf("expected post boot registers, got %s", g.CPU)
	}
	if g.ROMHash() != xxhash.Sum64(rom) {
		t.Errorf("expected ROM hash to be the xxhash of the image")
	}
	h := g.Cartridge.Header()
	if h.Title != "GBCORE TEST" || !h.ChecksumValid() {
		t.Errorf("unexpected header %s", h.String())
	}
}

func TestNewGameBoy_ShortROM(t *testing.T) {
	if _, err := NewGameBoy(make([]byte, 0x100)); !errors.Is(err, cartridge.ErrShortROM) {
		t.Errorf("expected ErrShortROM, got %v", err)
	}
}

func TestGameBoy_EchoRAM(t *testing.T) {
	g := newTestGameBoy(t, []uint8{
		0x3E, 0x42, // LD A, 0x42
		0xEA, 0x10, 0xC0, // LD (0xC010), A
		0xAF,             // XOR A
		0xFA, 0x10, 0xE0, // LD A, (0xE010)
		0x47,             // LD B, A
		0xFA, 0xFF, 0xFF, // LD A, (0xFFFF)
		0x76, // HALT
	})

	if err := g.Run(context.Background(), 0); err != nil {
		t.Fatal(err)
	}
	if g.CPU.B != 0x42 {
		t.Errorf("expected echo RAM to mirror work RAM, B = 0x%02X", g.CPU.B)
	}
	if g.CPU.A != 0xFF {
		t.Errorf("expected IE to read 0xFF, A = 0x%02X", g.CPU.A)
	}
	if !g.CPU.Halted() {
		t.Errorf("expected run to end halted")
	}
}

func TestGameBoy_UndefinedOpcode(t *testing.T) {
	g := newTestGameBoy(t, []uint8{0x00, 0xD3})

	err := g.Run(context.Background(), 0)
	var undefined *cpu.UndefinedOpcodeError
	if !errors.As(err, &undefined) {
		t.Fatalf("expected UndefinedOpcodeError, got %v", err)
	}
	if undefined.Opcode != 0xD3 || undefined.Origin != 0x0151 {
		t.Errorf("unexpected error %v", undefined)
	}
	// NOP, JP, NOP
	if g.Steps() != 3 {
		t.Errorf("expected 3 steps before the error, got %d", g.Steps())
	}
}

func TestGameBoy_MaxSteps(t *testing.T) {
	g := newTestGameBoy(t, []uint8{0x18, 0xFE}) // JR -2

	if err := g.Run(context.Background(), 10); err != nil {
		t.Fatal(err)
	}
	if g.Steps() != 10 {
		t.Errorf("expected 10 steps, got %d", g.Steps())
	}
	// NOP + JP + 8 x JR
	if want := uint64(4 + 16 + 8*12); g.Cycles() != want {
		t.Errorf("expected %d cycles, got %d", want, g.Cycles())
	}
}

func TestGameBoy_Cancelled(t *testing.T) {
	g := newTestGameBoy(t, []uint8{0x18, 0xFE})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := g.Run(ctx, 0); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestGameBoy_Serial(t *testing.T) {
	var out bytes.Buffer
	g := newTestGameBoy(t, serialProgram("Passed"), SerialOutput(&out), StopOnTestResult())

	if err := g.Run(context.Background(), 10000); err != nil {
		t.Fatal(err)
	}
	if g.SerialOutput() != "Passed" {
		t.Errorf("expected serial output %q, got %q", "Passed", g.SerialOutput())
	}
	if out.String() != "Passed" {
		t.Errorf("expected serial output to be forwarded, got %q", out.String())
	}
	if g.Steps() >= 10000 {
		t.Errorf("expected run to stop on the test result")
	}
}

func TestGameBoy_Stats(t *testing.T) {
	g := newTestGameBoy(t, []uint8{0x00, 0x00, 0x00, 0xCB, 0x37, 0x76})
	if err := g.Run(context.Background(), 0); err != nil {
		t.Fatal(err)
	}

	stats := map[string]OpcodeStat{}
	for _, s := range g.Stats() {
		stats[s.Name] = s
	}
	// the entry point NOP as well
	if s := stats["NOP"]; s.Count != 4 || s.Cycles != 16 {
		t.Errorf("unexpected NOP stats %+v", s)
	}
	if s := stats["SWAP A"]; s.Count != 1 || !s.Prefixed || s.Opcode != 0x37 {
		t.Errorf("unexpected SWAP A stats %+v", s)
	}
	if s := stats["JP a16"]; s.Cycles != 16 {
		t.Errorf("unexpected JP stats %+v", s)
	}

	all := g.Stats()
	for i := 1; i < len(all); i++ {
		if all[i].Cycles > all[i-1].Cycles {
			t.Errorf("expected stats ordered by cycles")
		}
	}
}

func TestGameBoy_Trace(t *testing.T) {
	var trace bytes.Buffer
	g := newTestGameBoy(t, []uint8{0x76}, Trace(&trace))
	if err := g.Run(context.Background(), 0); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(trace.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 trace lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[1], "0101  JP a16") {
		t.Errorf("unexpected trace line %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "0150  HALT") {
		t.Errorf("unexpected trace line %q", lines[2])
	}
}
