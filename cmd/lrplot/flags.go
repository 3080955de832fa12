package main

import "github.com/urfave/cli/v3"

var (
	powersArg string
	initialLR float64
	finalLR   float64
	steps     int64
	warmup    int64
	output    string
	dpi       int64
	logScale  string
	notation  string

	logLevel  string
	logFormat string
	debug     bool
)

func scheduleFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "powers",
			Aliases:     []string{"p"},
			Usage:       "comma- or space-separated polynomial powers (e.g. \"0.5,1,2\")",
			Destination: &powersArg,
		},
		&cli.Float64Flag{
			Name:        "learning-rate",
			Aliases:     []string{"lr"},
			Usage:       "initial learning rate",
			Value:       1e-4,
			Destination: &initialLR,
		},
		&cli.Float64Flag{
			Name:        "lr-end",
			Aliases:     []string{"lre"},
			Usage:       "final learning rate",
			Value:       1e-7,
			Destination: &finalLR,
		},
		&cli.Int64Flag{
			Name:        "steps",
			Aliases:     []string{"s"},
			Usage:       "total training steps",
			Value:       4000,
			Destination: &steps,
		},
		&cli.Int64Flag{
			Name:        "warmup",
			Aliases:     []string{"w"},
			Usage:       "number of warmup steps",
			Value:       400,
			Destination: &warmup,
		},
	}
}

func renderFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "output path (default: auto-generated from the parameters)",
			Destination: &output,
		},
		&cli.Int64Flag{
			Name:        "dpi",
			Usage:       "image DPI",
			Value:       300,
			Destination: &dpi,
		},
		&cli.StringFlag{
			Name:        "log-scale",
			Aliases:     []string{"l"},
			Usage:       "y-axis scale preset (none, standard, fine, wide)",
			Value:       "none",
			Destination: &logScale,
		},
		&cli.StringFlag{
			Name:        "notation",
			Aliases:     []string{"n"},
			Usage:       "y-axis notation: s (scientific) or d (decimal)",
			Value:       "s",
			Destination: &notation,
		},
	}
}

func loggingFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (debug, info, warn, error)",
			Value:       "info",
			Destination: &logLevel,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "log format (auto, pretty, json, text)",
			Value:       "auto",
			Destination: &logFormat,
		},
		&cli.BoolFlag{
			Name:        "debug",
			Usage:       "enable debug logging (shorthand for --log-level=debug)",
			Destination: &debug,
		},
	}
}

func plotFlags() []cli.Flag {
	flags := scheduleFlags()
	flags = append(flags, renderFlags()...)
	flags = append(flags, loggingFlags()...)
	return flags
}
