package lis2dtw12

import (
	"context"
	"fmt"
)

var ErrBusBusy = fmt.Errorf("I2C engine is busy (command not completed)")

// Default 7-bit I2C addresses. The SA0 pad selects between the two.
const (
	DefaultAddress byte = 0b0011000
	AltAddress     byte = 0b0011001
)

// RegisterReader reads len(buffer) bytes starting at the given register
// address. Multi-byte reads rely on the device auto-incrementing its
// address pointer (IF_ADD_INC, enabled at power-up).
type RegisterReader interface {
	ReadRegister(ctx context.Context, reg byte, buffer []byte) error
}

// RegisterWriter writes the given bytes starting at the given register
// address.
type RegisterWriter interface {
	WriteRegister(ctx context.Context, reg byte, data []byte) error
}

// RegisterBus is the transport the driver talks through. Implementations
// exist for I2C (address pointer write followed by a read) and SPI
// (read/write bit in the MSB of the address byte). The bus owns any mutual
// exclusion needed when the physical bus is shared with other devices.
type RegisterBus interface {
	RegisterReader
	RegisterWriter
}

type AddressableReader interface {
	ReadFromAddr(ctx context.Context, address byte, buffer []byte) error
}

type AddressableWriter interface {
	WriteToAddr(ctx context.Context, address byte, buffer []byte) error
	Release(ctx context.Context) error
}

// I2CBus is a raw addressable I2C bus, as exposed by the periph, gobot and
// MCP2221 adapters.
type I2CBus interface {
	AddressableReader
	AddressableWriter
}

// NewI2CRegisterBus binds an addressable I2C bus and a slave address into a
// register-oriented transport: writes send the register byte followed by
// data, reads set the register pointer and then read back.
func NewI2CRegisterBus(bus I2CBus, address byte) RegisterBus {
	return &i2cRegisterBus{bus: bus, addr: address}
}

type i2cRegisterBus struct {
	bus  I2CBus
	addr byte
}

func (b *i2cRegisterBus) ReadRegister(ctx context.Context, reg byte, buffer []byte) error {
	err := b.bus.WriteToAddr(ctx, b.addr, []byte{reg})
	if err != nil {
		return fmt.Errorf("could not set register pointer %#02x: %w", reg, err)
	}
	err = b.bus.ReadFromAddr(ctx, b.addr, buffer)
	if err != nil {
		return fmt.Errorf("could not read register %#02x: %w", reg, err)
	}
	return nil
}

func (b *i2cRegisterBus) WriteRegister(ctx context.Context, reg byte, data []byte) error {
	out := make([]byte, 0, len(data)+1)
	out = append(out, reg)
	out = append(out, data...)
	err := b.bus.WriteToAddr(ctx, b.addr, out)
	if err != nil {
		return fmt.Errorf("could not write register %#02x: %w", reg, err)
	}
	return nil
}
