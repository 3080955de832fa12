package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/curvelab/lrplot/internal/render"
	"github.com/curvelab/lrplot/internal/schedule"
)

func plotCmd() *cli.Command {
	return &cli.Command{
		Name:   "plot",
		Usage:  "Render decay curves to an image",
		Flags:  plotFlags(),
		Action: runPlot,
	}
}

func runPlot(ctx context.Context, cmd *cli.Command) error {
	fileCfg := LoadConfig()
	applyPlotConfig(cmd, fileCfg)
	log := newLogger()

	cfg, opts, err := buildSchedule()
	if err != nil {
		return cli.Exit(fmt.Sprintf("error: %v", err), 1)
	}

	outPath, generated, err := resolveOutput(output, cfg, opts, fileCfg.OutputDir)
	if err != nil {
		return cli.Exit(fmt.Sprintf("error: resolve output path: %v", err), 1)
	}
	opts.Format = render.FormatForPath(outPath)
	log.Debug("rendering chart",
		"curves", len(cfg.Powers),
		"steps", cfg.Steps,
		"output", outPath,
		"auto_named", generated,
	)

	f, err := os.Create(outPath)
	if err != nil {
		return cli.Exit(fmt.Sprintf("error: create %s: %v", outPath, err), 1)
	}
	if err := render.Write(f, cfg, cfg.Curves(), opts); err != nil {
		_ = f.Close()
		_ = os.Remove(outPath)
		return cli.Exit(fmt.Sprintf("error: %v", err), 1)
	}
	if err := f.Close(); err != nil {
		return cli.Exit(fmt.Sprintf("error: close %s: %v", outPath, err), 1)
	}

	fmt.Printf("Plot saved as %s\n", outPath)
	fmt.Printf("Initial LR: %.1e, Final LR: %.1e\n", cfg.InitialLR, cfg.FinalLR)
	fmt.Printf("Scale type: %s, Notation: %s\n", opts.Scale, opts.Notation)
	return nil
}

// buildSchedule translates the flag values into a validated schedule config
// and render options.
func buildSchedule() (schedule.Config, render.Options, error) {
	cfg := schedule.Default()
	if powersArg != "" {
		powers, err := schedule.ParsePowers(powersArg)
		if err != nil {
			return cfg, render.Options{}, err
		}
		cfg.Powers = powers
	}
	cfg.InitialLR = initialLR
	cfg.FinalLR = finalLR
	cfg.Steps = int(steps)
	cfg.Warmup = int(warmup)
	if err := cfg.Validate(); err != nil {
		return cfg, render.Options{}, err
	}

	scale, err := render.ParseScale(logScale)
	if err != nil {
		return cfg, render.Options{}, err
	}
	not, err := render.ParseNotation(notation)
	if err != nil {
		return cfg, render.Options{}, err
	}
	if dpi <= 0 {
		return cfg, render.Options{}, fmt.Errorf("%w: dpi must be positive, got %d", render.ErrInvalidOptions, dpi)
	}
	return cfg, render.Options{
		Scale:    scale,
		Notation: not,
		DPI:      int(dpi),
	}, nil
}
