package adapter

import (
	"context"
	"fmt"

	"gobot.io/x/gobot/v2/drivers/i2c"

	"github.com/mklimuk/lis2dtw12"
)

var _ lis2dtw12.I2CBus = &GobotI2C{}

// GobotI2C exposes a gobot I2C adaptor (e.g. the nanopi or raspi platform
// adaptors) as an addressable bus. Connections are opened lazily per slave
// address and reused.
type GobotI2C struct {
	connector i2c.Connector
	bus       int
	conns     map[byte]i2c.Connection
}

func NewGobotI2C(connector i2c.Connector, bus int) *GobotI2C {
	return &GobotI2C{
		connector: connector,
		bus:       bus,
		conns:     make(map[byte]i2c.Connection),
	}
}

func (g *GobotI2C) connection(address byte) (i2c.Connection, error) {
	if conn, ok := g.conns[address]; ok {
		return conn, nil
	}
	conn, err := g.connector.GetI2cConnection(int(address), g.bus)
	if err != nil {
		return nil, fmt.Errorf("could not get i2c connection for %x: %w", address, err)
	}
	g.conns[address] = conn
	return conn, nil
}

func (g *GobotI2C) ReadFromAddr(ctx context.Context, address byte, buffer []byte) error {
	conn, err := g.connection(address)
	if err != nil {
		return err
	}
	n, err := conn.Read(buffer)
	if err != nil {
		return fmt.Errorf("could not read from i2c bus %x: %w", address, err)
	}
	if n != len(buffer) {
		return fmt.Errorf("short read from %x: %d", address, n)
	}
	return nil
}

func (g *GobotI2C) WriteToAddr(ctx context.Context, address byte, buffer []byte) error {
	conn, err := g.connection(address)
	if err != nil {
		return err
	}
	n, err := conn.Write(buffer)
	if err != nil {
		return fmt.Errorf("could not write to i2c bus %x: %w", address, err)
	}
	if n != len(buffer) {
		return fmt.Errorf("short write to %x: %d", address, n)
	}
	return nil
}

func (g *GobotI2C) Release(ctx context.Context) error {
	var firstErr error
	for addr, conn := range g.conns {
		if err := conn.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("could not close connection for %x: %w", addr, err)
		}
		delete(g.conns, addr)
	}
	return firstErr
}
