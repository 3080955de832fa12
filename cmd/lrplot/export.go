package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/curvelab/lrplot/internal/export"
)

func exportCmd() *cli.Command {
	flags := scheduleFlags()
	flags = append(flags,
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "output path (default: stdout)",
			Destination: &output,
		},
	)
	flags = append(flags, loggingFlags()...)

	return &cli.Command{
		Name:  "export",
		Usage: "Write the computed curves as JSON instead of an image",
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			fileCfg := LoadConfig()
			applyPlotConfig(cmd, fileCfg)
			log := newLogger()

			cfg, _, err := buildSchedule()
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}
			doc := export.Build(cfg, cfg.Curves())

			if output == "" || output == "-" {
				return export.Write(os.Stdout, doc)
			}
			f, err := os.Create(output)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: create %s: %v", output, err), 1)
			}
			if err := export.Write(f, doc); err != nil {
				_ = f.Close()
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}
			if err := f.Close(); err != nil {
				return cli.Exit(fmt.Sprintf("error: close %s: %v", output, err), 1)
			}
			log.Info("curves exported", "path", output, "curves", len(doc.Curves))
			return nil
		},
	}
}
