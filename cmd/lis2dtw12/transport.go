package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"
	"gobot.io/x/gobot/v2/platforms/nanopi"

	"github.com/mklimuk/lis2dtw12"
	"github.com/mklimuk/lis2dtw12/adapter"
	i2cbus "github.com/mklimuk/lis2dtw12/i2c"
	spibus "github.com/mklimuk/lis2dtw12/spi"
)

func adapterFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "adapter",
			Aliases: []string{"a"},
			Value:   "mcp2221",
			Usage:   "transport adapter: mcp2221, i2c, spi or nanopi",
		},
		&cli.StringFlag{
			Name:    "bus",
			Aliases: []string{"b"},
			Value:   "1",
			Usage:   "i2c bus name/number or spi port name",
		},
		&cli.BoolFlag{
			Name:  "sa0",
			Usage: "SA0 pad pulled high (alternate i2c address)",
		},
		&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}},
	}
}

func slaveAddress(c *cli.Context) byte {
	if c.Bool("sa0") {
		return lis2dtw12.AltAddress
	}
	return lis2dtw12.DefaultAddress
}

func openTransport(c *cli.Context) (lis2dtw12.RegisterBus, func(), error) {
	switch c.String("adapter") {
	case "mcp2221":
		mcp := adapter.NewMCP2221()
		err := mcp.Init()
		if err != nil {
			return nil, nil, fmt.Errorf("mcp2221 initialization error: %w", err)
		}
		return lis2dtw12.NewI2CRegisterBus(mcp, slaveAddress(c)), func() {}, nil
	case "i2c":
		bus, err := i2cbus.NewGenericBus(c.String("bus"))
		if err != nil {
			return nil, nil, fmt.Errorf("i2c bus error: %w", err)
		}
		return lis2dtw12.NewI2CRegisterBus(bus, slaveAddress(c)), func() { _ = bus.Close() }, nil
	case "spi":
		bus, err := spibus.NewBus(c.String("bus"))
		if err != nil {
			return nil, nil, fmt.Errorf("spi port error: %w", err)
		}
		return bus, func() { _ = bus.Close() }, nil
	case "nanopi":
		npi := nanopi.NewNeoAdaptor()
		err := npi.I2cBusAdaptor.Connect()
		if err != nil {
			return nil, nil, fmt.Errorf("adaptor connect error: %w", err)
		}
		busNum, err := strconv.Atoi(c.String("bus"))
		if err != nil {
			return nil, nil, fmt.Errorf("invalid bus number %q: %w", c.String("bus"), err)
		}
		gb := adapter.NewGobotI2C(npi, busNum)
		cleanup := func() {
			_ = gb.Release(context.Background())
			_ = npi.I2cBusAdaptor.Finalize()
		}
		return lis2dtw12.NewI2CRegisterBus(gb, slaveAddress(c)), cleanup, nil
	default:
		return nil, nil, fmt.Errorf("unknown adapter %q", c.String("adapter"))
	}
}

func openDevice(c *cli.Context) (*lis2dtw12.LIS2DTW12, func(), error) {
	transport, cleanup, err := openTransport(c)
	if err != nil {
		return nil, nil, err
	}
	return lis2dtw12.New(transport), cleanup, nil
}
