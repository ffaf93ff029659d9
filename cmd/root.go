package cmd

import (
	"os"

	"trending/config"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func RootApp() *cli.App {
	return &cli.App{
		Name:  "trending",
		Usage: "An aggregated trending news feed from public RSS sources",
		Description: `Trending fetches a fixed list of public RSS/Atom feeds,
		normalizes the entries into a uniform article shape and serves the
		result grouped per source over an HTTP API.

		The aggregator is stateless: every request re-fetches all sources.

		Flags can generally be set via environment variables, e.g.:

		--port => TRENDING_PORT=3000
		--config => TRENDING_CONFIG=sources.toml
		`,
		Commands: []*cli.Command{
			serveCmd(),
			fetchCmd(),
			sourcesCmd(),
		},
		Action: func(ctx *cli.Context) error {
			// Show help if no command is specified
			return ctx.App.Run([]string{"", "help"})
		},
	}
}

func Execute() {
	if err := RootApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// loadSources resolves the source list: the --config TOML file when
// given, otherwise the compiled-in defaults.
func loadSources(ctx *cli.Context) (*config.Config, error) {
	if path := ctx.String("config"); path != "" {
		return config.LoadConfig(path)
	}
	return config.Default(), nil
}
