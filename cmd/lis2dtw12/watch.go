package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/mklimuk/lis2dtw12"
	"github.com/mklimuk/lis2dtw12/cmd/lis2dtw12/console"
)

var watchCmd = cli.Command{
	Name:  "watch",
	Usage: "enable event detection and poll the interrupt sources",
	Flags: append(configFlags(),
		&cli.BoolFlag{
			Name:  "tap",
			Usage: "enable single-tap detection",
		},
		&cli.BoolFlag{
			Name:  "double-tap",
			Usage: "enable double-tap detection (implies --tap)",
		},
		&cli.BoolFlag{
			Name:  "wake",
			Usage: "enable wake-up detection",
		},
		&cli.BoolFlag{
			Name:  "free-fall",
			Usage: "enable free-fall detection",
		},
		&cli.DurationFlag{
			Name:    "interval",
			Aliases: []string{"i"},
			Value:   100 * time.Millisecond,
			Usage:   "source polling interval",
		},
	),
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		dev, cleanup, err := openDevice(c)
		if err != nil {
			return console.Exit(1, "adapter initialization error: %s", console.Red(err))
		}
		defer cleanup()
		err = configure(ctx, c, dev)
		if err != nil {
			return console.Exit(1, "configuration error: %s", console.Red(err))
		}
		sources := lis2dtw12.InterruptSources{
			SingleTap: c.Bool("tap") || c.Bool("double-tap"),
			DoubleTap: c.Bool("double-tap"),
			WakeUp:    c.Bool("wake"),
			FreeFall:  c.Bool("free-fall"),
		}
		if sources.SingleTap {
			sources.TapAxes = lis2dtw12.AxisSelection{X: true, Y: true, Z: true}
		}
		err = dev.ConfigureInterrupts(ctx, sources, lis2dtw12.InterruptRouting{})
		if err != nil {
			return console.Exit(1, "interrupt configuration error: %s", console.Red(err))
		}
		console.Infof("watching interrupt sources, %s to stop", console.Bold("^C"))
		ticker := time.NewTicker(c.Duration("interval"))
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				console.PInfof(console.PictoFinish, "watch stopped")
				return nil
			case <-ticker.C:
			}
			all, err := dev.AllSources(ctx)
			if err != nil {
				return console.Exit(1, "source read error: %s", console.Red(err))
			}
			reportSources(all)
		}
	},
}

func reportSources(all lis2dtw12.AllSources) {
	if all.TapSource.SingleTapEvent {
		console.PInfof(console.PictoBell, "single tap (%s, %s)", tapAxis(all.TapSource), all.TapSource.TapSign)
	}
	if all.TapSource.DoubleTapEvent {
		console.PInfof(console.PictoBell, "double tap (%s, %s)", tapAxis(all.TapSource), all.TapSource.TapSign)
	}
	if all.WakeUpSource.WakeUpEvent {
		console.PInfof(console.PictoBell, "wake-up (x: %v y: %v z: %v)",
			all.WakeUpSource.XWakeUp, all.WakeUpSource.YWakeUp, all.WakeUpSource.ZWakeUp)
	}
	if all.WakeUpSource.FreeFallEvent {
		console.PInfof(console.PictoBell, "free fall")
	}
	if all.AllInterruptSources.SleepChange {
		console.PInfof(console.PictoBell, "sleep state change")
	}
	if all.SixDSource.PositionChange {
		console.PInfof(console.PictoBell, "position change")
	}
}

func tapAxis(src lis2dtw12.TapSource) string {
	switch {
	case src.XTap:
		return "x"
	case src.YTap:
		return "y"
	case src.ZTap:
		return "z"
	}
	return "?"
}
