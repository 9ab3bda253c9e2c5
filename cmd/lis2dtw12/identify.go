package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/mklimuk/lis2dtw12"
	"github.com/mklimuk/lis2dtw12/cmd/lis2dtw12/console"
)

var identifyCmd = cli.Command{
	Name:    "identify",
	Aliases: []string{"id"},
	Usage:   "check the device identity over the selected transport",
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
		console.PInfof(console.PictoPin, "found LIS2DTW12 (id %s)", console.Green(fmt.Sprintf("%#02x", lis2dtw12.DeviceID)))
		return nil
	},
}
