package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"trending/aggregator"
	"trending/fetcher"
	"trending/server"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the trending news API",
		Description: `Starts the trending news HTTP server.

Exposes the aggregated feed on GET /api/trending. Every request fetches
all configured sources, so responses are only as fast as the slowest
upstream feed.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Value:   3000,
				Usage:   "Port for the HTTP server",
				EnvVars: []string{"TRENDING_PORT"},
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to sources configuration file",
				EnvVars: []string{"TRENDING_CONFIG"},
			},
		},
		Action: func(ctx *cli.Context) error {
			cfg, err := loadSources(ctx)
			if err != nil {
				return err
			}

			agg := aggregator.New(cfg.Sources, fetcher.New())
			app := server.Server(&server.ServerConfig{
				Aggregator: agg,
			})

			// Graceful shutdown
			c := make(chan os.Signal, 1)
			signal.Notify(c, os.Interrupt, syscall.SIGTERM)

			go func() {
				<-c
				fmt.Println("Gracefully shutting down...")
				app.ShutdownWithTimeout(30 * time.Second)
			}()

			log.WithFields(log.Fields{
				"port":    ctx.Int("port"),
				"sources": len(cfg.Sources),
			}).Info("Starting trending server")

			return app.Listen(fmt.Sprintf(":%d", ctx.Int("port")))
		},
	}
}
