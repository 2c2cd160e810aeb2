package io

import (
	"io"

	"github.com/thelolagemann/gbcore/internal/types"
)

const (
	sbIndex = uint8(types.SB & 0xFF)
	scIndex = uint8(types.SC & 0xFF)
)

// Serial captures bytes transferred over the serial port. There is
// no link partner, so a transfer started with the internal clock
// completes immediately and the byte in SB is emitted to the writer.
// Test ROMs report their results this way.
type Serial struct {
	bus *Bus
	out io.Writer
}

// AttachSerial hooks SC on the bus, writing each transferred byte to out.
func AttachSerial(b *Bus, out io.Writer) *Serial {
	s := &Serial{bus: b, out: out}
	b.ReserveAddress(scIndex, s.control)
	b.ReserveRead(scIndex, func(v byte) byte {
		return v | 0x7E // unused bits read high
	})
	return s
}

func (s *Serial) control(v byte) byte {
	// transfer start with internal clock
	if v&0x81 == 0x81 {
		_, _ = s.out.Write([]byte{s.bus.Get(sbIndex)})
		s.bus.Set(sbIndex, 0xFF) // nothing connected, receive 0xFF
		return v &^ 0x80
	}
	return v
}
