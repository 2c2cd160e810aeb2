package types

// Address represents a memory address in the Game Boy's memory,
// which can be read from or written to. It is used to abstract
// away the actual memory addresses, and instead use a more
// readable and understandable interface.
type Address struct {
	// Read is a function that is called when the CPU reads from
	// the address.
	Read func(address uint16) uint8
	// Write is a function that is called when the CPU writes to
	// the address.
	Write func(address uint16, value uint8)
}

// Boundaries of the memory regions decoded by the MMU, inclusive.
const (
	ROMStart        uint16 = 0x0000
	ROMEnd          uint16 = 0x7FFF
	VRAMStart       uint16 = 0x8000
	VRAMEnd         uint16 = 0x9FFF
	CartRAMStart    uint16 = 0xA000
	CartRAMEnd      uint16 = 0xBFFF
	WRAMStart       uint16 = 0xC000
	WRAMEnd         uint16 = 0xDFFF
	EchoStart       uint16 = 0xE000
	EchoEnd         uint16 = 0xFDFF
	OAMStart        uint16 = 0xFE00
	OAMEnd          uint16 = 0xFE9F
	UnusableStart   uint16 = 0xFEA0
	UnusableEnd     uint16 = 0xFEFF
	IOStart         uint16 = 0xFF00
	IOEnd           uint16 = 0xFF4B
	UnusableIOStart uint16 = 0xFF4C
	UnusableIOEnd   uint16 = 0xFF7F
	HRAMStart       uint16 = 0xFF80
	HRAMEnd         uint16 = 0xFFFE
)

// HardwareAddress is the address of a hardware register.
type HardwareAddress = uint16

const (
	// SB is the serial transfer data register.
	SB HardwareAddress = 0xFF01
	// SC is the serial transfer control register.
	SC HardwareAddress = 0xFF02
	// IE is the address of the interrupt enable register.
	IE HardwareAddress = 0xFFFF
)
