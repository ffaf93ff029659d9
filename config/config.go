package config

import (
	"fmt"
	"net/url"
	"os"

	"github.com/BurntSushi/toml"
)

// Source is one external syndication endpoint the aggregator polls,
// identified by a display name and fetch URL.
type Source struct {
	Name string `toml:"name"`
	URL  string `toml:"url"`
}

// Config holds the ordered, immutable list of feed sources. It is built
// once at startup and handed to the aggregator; nothing mutates it after.
type Config struct {
	Sources []Source `toml:"sources"`
}

// Default returns the compiled-in source list used when no config file
// is given on the command line.
func Default() *Config {
	return &Config{
		Sources: []Source{
			{Name: "BBC News", URL: "https://feeds.bbci.co.uk/news/world/rss.xml"},
			{Name: "TechCrunch", URL: "https://techcrunch.com/feed/"},
			{Name: "The Verge", URL: "https://www.theverge.com/rss/index.xml"},
			{Name: "Wired", URL: "https://www.wired.com/feed/rss"},
			{Name: "Ars Technica", URL: "https://feeds.arstechnica.com/arstechnica/index"},
			{Name: "Hacker News", URL: "https://news.ycombinator.com/rss"},
		},
	}
}

// LoadConfig reads a source list from a TOML file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks that at least one source is configured, that names are
// unique and non-empty, and that every URL parses.
func (c *Config) Validate() error {
	if len(c.Sources) == 0 {
		return fmt.Errorf("no sources configured")
	}
	seen := make(map[string]bool, len(c.Sources))
	for _, source := range c.Sources {
		if source.Name == "" {
			return fmt.Errorf("source name cannot be empty for url: %s", source.URL)
		}
		if seen[source.Name] {
			return fmt.Errorf("duplicate source name: %s", source.Name)
		}
		seen[source.Name] = true
		if _, err := url.ParseRequestURI(source.URL); err != nil {
			return fmt.Errorf("invalid url for source %s: %s", source.Name, source.URL)
		}
	}
	return nil
}
