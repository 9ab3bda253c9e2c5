// Package spi exposes a Linux SPI port (via periph.io) as a
// register-oriented transport. The LIS2DTW12 frames the first byte of
// every transaction as the register address with the read flag in the MSB;
// multi-byte transfers auto-increment the address.
package spi

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mklimuk/lis2dtw12"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

// readFlag marks the address byte of a read transaction.
const readFlag byte = 0x80

// The device supports SPI mode 3 (CPOL=1, CPHA=1) up to 10 MHz.
var (
	Frequency = physic.MegaHertz
	Mode      = spi.Mode3
	Bits      = 8
)

var _ lis2dtw12.RegisterBus = &Bus{}

type Bus struct {
	port spi.PortCloser
	conn spi.Conn
}

// NewBus opens the named SPI port (e.g. "/dev/spidev0.0" or "SPI0.0") and
// connects at the package-level frequency and mode.
func NewBus(dev string) (*Bus, error) {
	state, err := host.Init()
	if err != nil {
		return nil, fmt.Errorf("could not init host: %w", err)
	}
	for _, driver := range state.Loaded {
		slog.Debug("loaded periph driver", "driver", driver.String())
	}
	port, err := spireg.Open(dev)
	if err != nil {
		return nil, fmt.Errorf("could not open spi port: %w", err)
	}
	conn, err := port.Connect(Frequency, Mode, Bits)
	if err != nil {
		_ = port.Close()
		return nil, fmt.Errorf("could not connect to spi port: %w", err)
	}
	return &Bus{port: port, conn: conn}, nil
}

func (b *Bus) ReadRegister(ctx context.Context, reg byte, buffer []byte) error {
	tx := make([]byte, len(buffer)+1)
	rx := make([]byte, len(buffer)+1)
	tx[0] = reg | readFlag
	err := b.conn.Tx(tx, rx)
	if err != nil {
		return fmt.Errorf("could not read register %#02x over spi: %w", reg, err)
	}
	copy(buffer, rx[1:])
	return nil
}

func (b *Bus) WriteRegister(ctx context.Context, reg byte, data []byte) error {
	tx := make([]byte, 0, len(data)+1)
	tx = append(tx, reg&^readFlag)
	tx = append(tx, data...)
	err := b.conn.Tx(tx, nil)
	if err != nil {
		return fmt.Errorf("could not write register %#02x over spi: %w", reg, err)
	}
	return nil
}

func (b *Bus) Close() error {
	return b.port.Close()
}
