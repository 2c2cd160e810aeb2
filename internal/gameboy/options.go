package gameboy

import (
	"io"

	"github.com/thelolagemann/gbcore/pkg/log"
)

// Opt is a function that modifies a GameBoy
// instance.
type Opt func(gb *GameBoy)

// WithLogger sets the logger of the GameBoy and the components it drives.
func WithLogger(l log.Logger) Opt {
	return func(gb *GameBoy) {
		gb.Logger = l
		gb.MMU.Log = l
		gb.CPU.SetLogger(l)
	}
}

// Trace writes a line per executed instruction to w, with the address,
// the disassembled instruction and the registers before it executed.
func Trace(w io.Writer) Opt {
	return func(gb *GameBoy) {
		gb.trace = w
	}
}

// SerialOutput forwards every byte transferred over the serial port to w.
func SerialOutput(w io.Writer) Opt {
	return func(gb *GameBoy) {
		gb.serialOut = w
	}
}

// StopOnTestResult ends Run once a test ROM reports "Passed" or "Failed"
// over the serial port.
func StopOnTestResult() Opt {
	return func(gb *GameBoy) {
		gb.stopOnResult = true
	}
}
