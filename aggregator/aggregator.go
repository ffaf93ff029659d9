// Package aggregator turns the configured feed sources into the uniform
// article mapping served by the trending endpoint.
package aggregator

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"time"

	"trending/config"
	"trending/models"

	"github.com/mmcdole/gofeed"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
)

const (
	// At most this many entries are taken per source, in upstream order.
	maxArticlesPerSource = 10

	// Snippets are cut to this many characters before the ellipsis.
	snippetLength = 225
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// Fetcher retrieves the raw feed document for a URL. The returned body
// must be closed by the caller.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (io.ReadCloser, error)
}

// Aggregator holds the immutable source list and the fetch/parse
// machinery. It is stateless between calls; every Aggregate re-fetches
// all sources.
type Aggregator struct {
	sources []config.Source
	fetcher Fetcher
	parser  *gofeed.Parser
}

func New(sources []config.Source, fetcher Fetcher) *Aggregator {
	return &Aggregator{
		sources: sources,
		fetcher: fetcher,
		parser:  gofeed.NewParser(),
	}
}

// Aggregate visits every source in configuration order and maps up to 10
// of its entries into articles. The first fetch or parse error aborts the
// whole batch; one bad source fails the entire call.
func (a *Aggregator) Aggregate(ctx context.Context) (*models.Feeds, error) {
	start := time.Now()
	feeds := models.NewFeeds()

	for _, source := range a.sources {
		articles, err := a.collect(ctx, source)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", source.Name, err)
		}
		feeds.Set(source.Name, articles)
	}

	log.WithFields(log.Fields{
		"sources":  feeds.Len(),
		"duration": time.Since(start),
	}).Info("Aggregated feeds")

	return feeds, nil
}

func (a *Aggregator) collect(ctx context.Context, source config.Source) ([]models.Article, error) {
	body, err := a.fetcher.Fetch(ctx, source.URL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	feed, err := a.parser.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parse failed: %w", err)
	}

	fallbackImage := channelImage(feed)

	articles := lo.Map(lo.Slice(feed.Items, 0, maxArticlesPerSource), func(item *gofeed.Item, _ int) models.Article {
		return normalize(item, feed, source, fallbackImage)
	})

	log.WithFields(log.Fields{
		"source":   source.Name,
		"entries":  len(feed.Items),
		"articles": len(articles),
	}).Debug("Collected source")

	return articles, nil
}

// normalize maps one loosely-typed upstream entry into the strict Article
// shape. All dialect differences are resolved here.
func normalize(item *gofeed.Item, feed *gofeed.Feed, source config.Source, fallbackImage string) models.Article {
	description := resolveDescription(item)

	return models.Article{
		Title:          item.Title,
		Link:           item.Link,
		PubDate:        item.Published,
		Channel:        resolveChannel(item, feed, source),
		ContentSnippet: snippet(description),
		Categories:     categories(item),
		Image:          resolveImage(description, item.Description, fallbackImage),
	}
}

// resolveDescription prefers the full-content field (content:encoded in
// RSS, content in Atom) over the plain description/summary.
func resolveDescription(item *gofeed.Item) string {
	if item.Content != "" {
		return item.Content
	}
	return item.Description
}

// resolveChannel attributes the article: entry creator first, then the
// feed's own title, then the configured source name.
func resolveChannel(item *gofeed.Item, feed *gofeed.Feed, source config.Source) string {
	if item.DublinCoreExt != nil && len(item.DublinCoreExt.Creator) > 0 {
		return item.DublinCoreExt.Creator[0]
	}
	if item.Author != nil && item.Author.Name != "" {
		return item.Author.Name
	}
	if feed.Title != "" {
		return feed.Title
	}
	return source.Name
}

// snippet strips HTML tags and cuts to snippetLength characters. The
// ellipsis is appended even when nothing was cut; the client expects the
// trailing marker on every snippet.
func snippet(html string) string {
	text := tagPattern.ReplaceAllString(html, "")
	runes := []rune(text)
	if len(runes) > snippetLength {
		runes = runes[:snippetLength]
	}
	return string(runes) + "..."
}

func categories(item *gofeed.Item) []string {
	if len(item.Categories) == 0 {
		return []string{}
	}
	return item.Categories
}
