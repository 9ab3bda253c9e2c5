package main

import (
	"context"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/mklimuk/lis2dtw12"
	"github.com/mklimuk/lis2dtw12/cmd/lis2dtw12/console"
)

var resetCmd = cli.Command{
	Name:  "reset",
	Usage: "soft reset the device",
	Subcommands: []*cli.Command{
		&resetRunCmd,
		&resetStartCmd,
		&resetCheckCmd,
	},
}

var resetRunCmd = cli.Command{
	Name:  "run",
	Usage: "issue a soft reset and wait for completion",
	Flags: append(adapterFlags(),
		&cli.IntFlag{
			Name:  "polls",
			Value: 10,
			Usage: "completion polls before giving up",
		},
		&cli.DurationFlag{
			Name:  "poll-interval",
			Value: 5 * time.Millisecond,
			Usage: "pause between completion polls",
		},
	),
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		transport, cleanup, err := openTransport(c)
		if err != nil {
			return console.Exit(1, "adapter initialization error: %s", console.Red(err))
		}
		defer cleanup()
		dev := lis2dtw12.New(transport,
			lis2dtw12.WithResetPolls(c.Int("polls")),
			lis2dtw12.WithResetInterval(c.Duration("poll-interval")))
		err = dev.Reset(ctx)
		if err != nil {
			return console.Exit(1, "reset error: %s", console.Red(err))
		}
		console.PInfof(console.PictoFinish, "device reset to power-on defaults")
		return nil
	},
}

var resetStartCmd = cli.Command{
	Name:  "start",
	Usage: "issue a soft reset without waiting for completion",
	Flags: adapterFlags(),
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		dev, cleanup, err := openDevice(c)
		if err != nil {
			return console.Exit(1, "adapter initialization error: %s", console.Red(err))
		}
		defer cleanup()
		err = dev.StartReset(ctx)
		if err != nil {
			return console.Exit(1, "reset error: %s", console.Red(err))
		}
		console.Info("soft reset issued")
		return nil
	},
}

var resetCheckCmd = cli.Command{
	Name:  "check",
	Usage: "check whether a previously started reset has completed",
	Flags: adapterFlags(),
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		dev, cleanup, err := openDevice(c)
		if err != nil {
			return console.Exit(1, "adapter initialization error: %s", console.Red(err))
		}
		defer cleanup()
		done, err := dev.ResetComplete(ctx)
		if err != nil {
			return console.Exit(1, "reset check error: %s", console.Red(err))
		}
		if done {
			console.Printf("reset complete: %s\n", console.Green(done))
		} else {
			console.Printf("reset complete: %s\n", console.Yellow(done))
		}
		return nil
	},
}
