package main

import (
	"context"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/mklimuk/lis2dtw12/cmd/lis2dtw12/console"
)

var offsetsCmd = cli.Command{
	Name:      "offsets",
	Usage:     "write the user offset registers",
	ArgsUsage: "<x> <y> <z> (signed, -128..127)",
	Flags: append(adapterFlags(),
		&cli.BoolFlag{
			Name:  "yes",
			Usage: "skip the confirmation prompt",
		},
	),
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		if c.NArg() < 3 {
			return console.Exit(1, "usage: lis2dtw12 offsets <x> <y> <z>")
		}
		var offs [3]int8
		for i := range offs {
			v, err := strconv.ParseInt(c.Args().Get(i), 10, 8)
			if err != nil {
				return console.Exit(1, "invalid offset %q: %s", c.Args().Get(i), console.Red(err))
			}
			offs[i] = int8(v)
		}
		if !c.Bool("yes") {
			answer, err := console.YesOrNo("overwrite the stored user offsets?")
			if err != nil {
				return console.Exit(1, "prompt error: %s", console.Red(err))
			}
			if answer != console.Yes {
				console.PInfof(console.PictoStop, "aborted")
				return nil
			}
		}
		dev, cleanup, err := openDevice(c)
		if err != nil {
			return console.Exit(1, "adapter initialization error: %s", console.Red(err))
		}
		defer cleanup()
		err = dev.Identify(ctx)
		if err != nil {
			return console.Exit(1, "identification error: %s", console.Red(err))
		}
		err = dev.SetOffsets(ctx, offs[0], offs[1], offs[2])
		if err != nil {
			return console.Exit(1, "offset write error: %s", console.Red(err))
		}
		console.Infof("user offsets set to x: %s y: %s z: %s",
			console.White(offs[0]), console.White(offs[1]), console.White(offs[2]))
		return nil
	},
}
