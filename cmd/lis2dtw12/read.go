package main

import (
	"context"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/mklimuk/lis2dtw12/cmd/lis2dtw12/console"
)

var readCmd = cli.Command{
	Name:  "read",
	Usage: "configure the device and read acceleration samples",
	Flags: append(configFlags(),
		&cli.IntFlag{
			Name:    "count",
			Aliases: []string{"n"},
			Value:   1,
			Usage:   "number of samples to read (0 = forever)",
		},
		&cli.DurationFlag{
			Name:    "interval",
			Aliases: []string{"i"},
			Value:   time.Second,
			Usage:   "pause between samples",
		},
		&cli.BoolFlag{
			Name:  "raw",
			Usage: "print raw register values instead of milli-g",
		},
	),
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		dev, cleanup, err := openDevice(c)
		if err != nil {
			return console.Exit(1, "adapter initialization error: %s", console.Red(err))
		}
		defer cleanup()
		err = configure(ctx, c, dev)
		if err != nil {
			return console.Exit(1, "configuration error: %s", console.Red(err))
		}
		count := c.Int("count")
		for i := 0; count == 0 || i < count; i++ {
			if i > 0 {
				time.Sleep(c.Duration("interval"))
			}
			if c.Bool("raw") {
				raw, err := dev.ReadRawSample(ctx)
				if err != nil {
					return console.Exit(1, "read error: %s", console.Red(err))
				}
				console.Printf("x: %s y: %s z: %s t: %s\n",
					console.White(raw.X), console.White(raw.Y), console.White(raw.Z), console.White(raw.Temperature))
				continue
			}
			sample, err := dev.ReadSample(ctx)
			if err != nil {
				return console.Exit(1, "read error: %s", console.Red(err))
			}
			console.Printf("x: %smg y: %smg z: %smg %s %s°C\n",
				console.White(sample.X), console.White(sample.Y), console.White(sample.Z),
				console.PictoThermometer, console.White(sample.Temperature))
		}
		return nil
	},
}

var tempCmd = cli.Command{
	Name:    "temperature",
	Aliases: []string{"temp"},
	Usage:   "read the embedded temperature sensor",
	Flags:   adapterFlags(),
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		dev, cleanup, err := openDevice(c)
		if err != nil {
			return console.Exit(1, "adapter initialization error: %s", console.Red(err))
		}
		defer cleanup()
		err = dev.Identify(ctx)
		if err != nil {
			return console.Exit(1, "identification error: %s", console.Red(err))
		}
		temp, err := dev.ReadTemperature(ctx)
		if err != nil {
			return console.Exit(1, "error getting temperature read: %s", console.Red(err))
		}
		console.Printf("%s %s°C\n", console.PictoThermometer, console.White(temp))
		return nil
	},
}
