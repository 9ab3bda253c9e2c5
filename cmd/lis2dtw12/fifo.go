package main

import (
	"context"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/mklimuk/lis2dtw12"
	"github.com/mklimuk/lis2dtw12/cmd/lis2dtw12/console"
)

var fifoCmd = cli.Command{
	Name:  "fifo",
	Usage: "buffered acquisition through the hardware FIFO",
	Subcommands: []*cli.Command{
		&fifoStatusCmd,
		&fifoReadCmd,
	},
}

type fifoReport struct {
	Samples   uint8 `yaml:"samples"`
	Threshold bool  `yaml:"threshold"`
	Overrun   bool  `yaml:"overrun"`
}

var fifoStatusCmd = cli.Command{
	Name:  "status",
	Usage: "print the FIFO fill level and flags",
	Flags: adapterFlags(),
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		dev, cleanup, err := openDevice(c)
		if err != nil {
			return console.Exit(1, "adapter initialization error: %s", console.Red(err))
		}
		defer cleanup()
		status, err := dev.FIFOStatus(ctx)
		if err != nil {
			return console.Exit(1, "FIFO status error: %s", console.Red(err))
		}
		out, err := yaml.Marshal(fifoReport{
			Samples:   status.Samples,
			Threshold: status.Threshold,
			Overrun:   status.Overrun,
		})
		if err != nil {
			return console.Exit(1, "could not render status: %s", console.Red(err))
		}
		console.Print(string(out))
		return nil
	},
}

var fifoReadCmd = cli.Command{
	Name:  "read",
	Usage: "enable continuous FIFO mode and drain the buffered samples",
	Flags: append(configFlags(),
		&cli.IntFlag{
			Name:  "watermark",
			Value: 16,
			Usage: "FIFO watermark in sample sets (0..31)",
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
		err = dev.SetFIFOMode(ctx, lis2dtw12.FIFOContinuous, uint8(c.Int("watermark")))
		if err != nil {
			return console.Exit(1, "FIFO configuration error: %s", console.Red(err))
		}
		samples, err := dev.ReadFIFOSamples(ctx)
		if err != nil {
			return console.Exit(1, "FIFO read error: %s", console.Red(err))
		}
		console.PInfof(console.PictoPackage, "%s buffered samples", console.White(len(samples)))
		for _, s := range samples {
			console.Printf("x: %smg y: %smg z: %smg\n", console.White(s.X), console.White(s.Y), console.White(s.Z))
		}
		return nil
	},
}
