package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"trending/aggregator"
	"trending/fetcher"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func fetchCmd() *cli.Command {
	return &cli.Command{
		Name:  "fetch",
		Usage: "Run one aggregation pass and print the result",
		Description: `Fetches all configured sources once and prints the aggregated
feed mapping as a JSON object on stdout.

Use a tool like jq to process the output.

Prints all other log messages to stderr.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to sources configuration file",
				EnvVars: []string{"TRENDING_CONFIG"},
			},
		},
		Action: func(ctx *cli.Context) error {
			// Keep stdout clean for the JSON result
			log.SetOutput(os.Stderr)

			cfg, err := loadSources(ctx)
			if err != nil {
				return err
			}

			agg := aggregator.New(cfg.Sources, fetcher.New())
			feeds, err := agg.Aggregate(ctx.Context)
			if err != nil {
				return err
			}

			out, err := json.Marshal(feeds)
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}
}
