package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"github.com/GarnetAerisMarquez/retail-inventory/internal/config"
	"github.com/GarnetAerisMarquez/retail-inventory/internal/console"
	"github.com/GarnetAerisMarquez/retail-inventory/internal/inventory"
	"github.com/GarnetAerisMarquez/retail-inventory/internal/logger"
	"github.com/GarnetAerisMarquez/retail-inventory/internal/repo"
)

func main() {
	cmd := &cli.Command{
		Name:  "inventory",
		Usage: "track retail stock from an interactive menu",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to a config file (yaml, toml or json)",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "print banners without color",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "override log.level (debug, info, warn, error)",
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		logrus.WithError(err).Fatal("inventory failed")
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	overrides := map[string]any{}
	if cmd.Bool("no-color") {
		overrides["color"] = false
	}
	if level := cmd.String("log-level"); level != "" {
		overrides["log.level"] = level
	}

	cfg, err := config.Load(cmd.String("config"), overrides)
	if err != nil {
		return err
	}

	log, closer, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	defer closer.Close()

	manager := inventory.NewManager(repo.NewInMemoryProductRepository(), log)
	out := console.NewOutput(os.Stdout, cfg.Color, cfg.ClearScreen)
	menu := console.NewMenu(manager, os.Stdin, out, log, console.Options{
		MinProductID: cfg.MinProductID,
		Pause:        cfg.Pause,
	})

	log.WithField("min_product_id", cfg.MinProductID).Info("inventory session started")
	return menu.Run(ctx)
}
