package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/mklimuk/lis2dtw12"
	"github.com/mklimuk/lis2dtw12/cmd/lis2dtw12/console"
)

func configFlags() []cli.Flag {
	return append(adapterFlags(),
		&cli.StringFlag{
			Name:    "mode",
			Aliases: []string{"m"},
			Value:   "low-power",
			Usage:   "operating mode: low-power, high-performance or on-demand",
		},
		&cli.IntFlag{
			Name:  "lp-mode",
			Value: 1,
			Usage: "low-power submode (1..4)",
		},
		&cli.StringFlag{
			Name:    "rate",
			Aliases: []string{"r"},
			Value:   "100Hz",
			Usage:   "output data rate (off, 1.6Hz, 12.5Hz, 25Hz, 50Hz, 100Hz, 200Hz, 400Hz, 800Hz, 1600Hz)",
		},
		&cli.IntFlag{
			Name:    "scale",
			Aliases: []string{"fs"},
			Value:   2,
			Usage:   "full scale in g (2, 4, 8 or 16)",
		},
		&cli.BoolFlag{
			Name:  "low-noise",
			Usage: "enable the low-noise configuration",
		},
	)
}

func parseConfig(c *cli.Context) (lis2dtw12.Config, error) {
	var cfg lis2dtw12.Config
	switch c.String("mode") {
	case "low-power", "lp":
		cfg.Mode = lis2dtw12.ModeLowPower
	case "high-performance", "hp":
		cfg.Mode = lis2dtw12.ModeHighPerformance
	case "on-demand", "single":
		cfg.Mode = lis2dtw12.ModeOnDemand
	default:
		return cfg, fmt.Errorf("unknown mode %q", c.String("mode"))
	}
	lp := c.Int("lp-mode")
	if lp < 1 || lp > 4 {
		return cfg, fmt.Errorf("low-power submode out of range: %d", lp)
	}
	cfg.LowPowerMode = lis2dtw12.LowPowerMode(lp - 1)
	switch c.String("rate") {
	case "off":
		cfg.Rate = lis2dtw12.ODRPowerDown
	case "1.6Hz":
		cfg.Rate = lis2dtw12.ODR1Hz6
	case "12.5Hz":
		cfg.Rate = lis2dtw12.ODR12Hz5
	case "25Hz":
		cfg.Rate = lis2dtw12.ODR25Hz
	case "50Hz":
		cfg.Rate = lis2dtw12.ODR50Hz
	case "100Hz":
		cfg.Rate = lis2dtw12.ODR100Hz
	case "200Hz":
		cfg.Rate = lis2dtw12.ODR200Hz
	case "400Hz":
		cfg.Rate = lis2dtw12.ODR400Hz
	case "800Hz":
		cfg.Rate = lis2dtw12.ODR800Hz
	case "1600Hz":
		cfg.Rate = lis2dtw12.ODR1600Hz
	default:
		return cfg, fmt.Errorf("unknown output data rate %q", c.String("rate"))
	}
	switch c.Int("scale") {
	case 2:
		cfg.Scale = lis2dtw12.FullScale2G
	case 4:
		cfg.Scale = lis2dtw12.FullScale4G
	case 8:
		cfg.Scale = lis2dtw12.FullScale8G
	case 16:
		cfg.Scale = lis2dtw12.FullScale16G
	default:
		return cfg, fmt.Errorf("unknown full scale %dg", c.Int("scale"))
	}
	return cfg, nil
}

func configure(ctx context.Context, c *cli.Context, dev *lis2dtw12.LIS2DTW12) error {
	cfg, err := parseConfig(c)
	if err != nil {
		return err
	}
	err = dev.Identify(ctx)
	if err != nil {
		return err
	}
	err = dev.Configure(ctx, cfg)
	if err != nil {
		return err
	}
	if c.Bool("low-noise") {
		return dev.EnableLowNoise(ctx, true)
	}
	return nil
}

type configReport struct {
	Mode        string  `yaml:"mode"`
	Rate        string  `yaml:"rate"`
	Scale       string  `yaml:"scale"`
	Sensitivity float32 `yaml:"sensitivity_mg_per_digit"`
	LowNoise    bool    `yaml:"low_noise"`
}

var configCmd = cli.Command{
	Name:  "config",
	Usage: "write the acquisition configuration and print the active state",
	Flags: configFlags(),
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
		state := dev.State()
		out, err := yaml.Marshal(configReport{
			Mode:        state.Config.Mode.String(),
			Rate:        state.Config.Rate.String(),
			Scale:       state.Config.Scale.String(),
			Sensitivity: state.Config.Sensitivity(),
			LowNoise:    state.LowNoise,
		})
		if err != nil {
			return console.Exit(1, "could not render state: %s", console.Red(err))
		}
		console.Print(string(out))
		return nil
	},
}
