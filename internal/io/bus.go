// Package io provides the I/O register space of the Game Boy
// (0xFF00 - 0xFF4B). Registers are addressed by the low byte of
// their address; peripherals hook individual registers to observe
// or transform writes.
package io

import "fmt"

// Size is the number of I/O registers (0xFF00 - 0xFF4B).
const Size = 0x4C

// Bus is the backing store of the I/O register space.
type Bus struct {
	data [Size]byte

	writeHandlers [Size]WriteHandler
	readHandlers  [Size]ReadHandler
}

// WriteHandler is a function that handles writing to a register.
// It should return the new value to be stored in the register.
type WriteHandler func(byte) byte

// ReadHandler is a function that produces the value read from a register,
// given the value currently stored.
type ReadHandler func(byte) byte

// NewBus returns a Bus with every register cleared.
func NewBus() *Bus {
	return &Bus{}
}

// ReserveAddress reserves a register on the bus, routing every write
// through handler.
func (b *Bus) ReserveAddress(index uint8, handler WriteHandler) {
	b.checkIndex(index)
	// check to make sure address hasn't already been reserved
	if b.writeHandlers[index] != nil {
		panic(fmt.Sprintf("io: register FF%02X has already been reserved", index))
	}
	b.writeHandlers[index] = handler
}

// ReserveRead routes every read of the register through handler.
func (b *Bus) ReserveRead(index uint8, handler ReadHandler) {
	b.checkIndex(index)
	if b.readHandlers[index] != nil {
		panic(fmt.Sprintf("io: register FF%02X has already been reserved for reading", index))
	}
	b.readHandlers[index] = handler
}

// Read returns the value of the register at index.
func (b *Bus) Read(index uint8) uint8 {
	if h := b.readHandlers[index]; h != nil {
		return h(b.data[index])
	}
	return b.data[index]
}

// Write writes value to the register at index, passing it through the
// write handler if one is reserved.
func (b *Bus) Write(index uint8, value uint8) {
	if h := b.writeHandlers[index]; h != nil {
		value = h(value)
	}
	b.data[index] = value
}

// Get gets the value of the register at index, bypassing any handler.
func (b *Bus) Get(index uint8) byte {
	return b.data[index]
}

// Set sets the value of the register at index. This function
// ignores the write handler and just sets the value.
func (b *Bus) Set(index uint8, value byte) {
	b.data[index] = value
}

func (b *Bus) checkIndex(index uint8) {
	if index >= Size {
		panic(fmt.Sprintf("io: register FF%02X is outside of the I/O space", index))
	}
}
