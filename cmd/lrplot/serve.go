package main

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"
	"github.com/urfave/cli/v3"

	"github.com/curvelab/lrplot/internal/api"
	"github.com/curvelab/lrplot/internal/logger"
)

func serveCmd() *cli.Command {
	var (
		addr        string
		readTimeout time.Duration
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "listen address",
			Value:       "127.0.0.1:8080",
			Destination: &addr,
		},
		&cli.DurationFlag{
			Name:        "read-timeout",
			Usage:       "read timeout",
			Value:       30 * time.Second,
			Destination: &readTimeout,
		},
	}
	flags = append(flags, loggingFlags()...)

	return &cli.Command{
		Name:  "serve",
		Usage: "Serve charts over HTTP for interactive previewing",
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			fileCfg := LoadConfig()
			applyServeConfig(cmd, fileCfg, &addr)
			log := newLogger()
			ctx = logger.WithContext(ctx, log)

			server := api.NewServer(api.NewChartStore())
			e := echo.New()
			e.Use(middleware.RequestLogger())
			e.Use(middleware.Recover())
			server.Register(e)

			log.Info("starting preview server", "address", addr)
			sc := echo.StartConfig{
				Address: addr,
				BeforeServeFunc: func(srv *http.Server) error {
					srv.ReadHeaderTimeout = readTimeout
					return nil
				},
			}
			return sc.Start(ctx, e)
		},
	}
}
