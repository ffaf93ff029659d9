package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

func sourcesCmd() *cli.Command {
	return &cli.Command{
		Name:  "sources",
		Usage: "List the configured feed sources",
		Flags: []cli.Flag{
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
			for _, source := range cfg.Sources {
				fmt.Printf("%s\t%s\n", source.Name, source.URL)
			}
			return nil
		},
	}
}
