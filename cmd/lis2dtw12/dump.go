package main

import (
	"context"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/mklimuk/lis2dtw12/cmd/lis2dtw12/console"
)

var dumpCmd = cli.Command{
	Name:  "dump",
	Usage: "dump every register in address order (reads and clears the latched sources)",
	Flags: adapterFlags(),
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
		dump, err := dev.DumpRegisters(ctx)
		if err != nil {
			return console.Exit(1, "dump error: %s", console.Red(err))
		}
		out, err := yaml.Marshal(dump)
		if err != nil {
			return console.Exit(1, "could not render dump: %s", console.Red(err))
		}
		console.Print(string(out))
		return nil
	},
}
