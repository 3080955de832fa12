package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/curvelab/lrplot/internal/logger"
)

func main() {
	app := &cli.Command{
		Name:  "lrplot",
		Usage: "Plot polynomial learning-rate decay curves",
		Flags: plotFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			// Bare invocation prints help instead of writing a chart
			// nobody asked for.
			if len(os.Args) < 2 {
				_ = cli.ShowAppHelp(cmd)
				return cli.Exit("", 1)
			}
			return runPlot(ctx, cmd)
		},
		Commands: []*cli.Command{
			plotCmd(),
			exportCmd(),
			serveCmd(),
			versionCmd(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newLogger builds the command logger from the logging flags. The default
// format is pretty on a terminal and plain text otherwise.
func newLogger() logger.Logger {
	level := logger.ParseLevel(logLevel)
	if debug {
		level = slog.LevelDebug
	}
	switch logFormat {
	case "json":
		return logger.JSON(os.Stderr, level)
	case "text":
		return logger.Text(os.Stderr, level)
	case "pretty":
		return logger.Pretty(os.Stderr, level)
	default:
		if stderrIsTTY() {
			return logger.Pretty(os.Stderr, level)
		}
		return logger.Text(os.Stderr, level)
	}
}
