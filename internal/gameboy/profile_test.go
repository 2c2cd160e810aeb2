package gameboy

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"testing"
)

func TestGameBoy_WriteProfile(t *testing.T) {
	g := newTestGameBoy(t, []uint8{0x3C, 0x04, 0xCB, 0x37, 0x76})

	var buf bytes.Buffer
	if err := g.WriteProfile(&buf, 10); !errors.Is(err, ErrNoStats) {
		t.Errorf("expected ErrNoStats before running, got %v", err)
	}

	if err := g.Run(context.Background(), 0); err != nil {
		t.Fatal(err)
	}
	if err := g.WriteProfile(&buf, 3); err != nil {
		t.Fatal(err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != profileWidth || b.Dy() != profileHeight {
		t.Errorf("unexpected image size %v", b)
	}
}
