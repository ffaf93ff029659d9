package aggregator

import (
	"regexp"

	"github.com/mmcdole/gofeed"
)

var imgPattern = regexp.MustCompile(`(?i)<img[^>]+src=["']([^"']+)["']`)

// ExtractImage returns the src of the first <img> tag in the markup, or
// an empty string when there is none. This is a best-effort heuristic
// over unstructured markup, not an HTML parser.
func ExtractImage(html string) string {
	if html == "" {
		return ""
	}
	match := imgPattern.FindStringSubmatch(html)
	if match == nil {
		return ""
	}
	return match[1]
}

// resolveImage tries the resolved description first, then the plain
// summary, then the channel-level fallback. First hit wins.
func resolveImage(description, summary, fallback string) string {
	if image := ExtractImage(description); image != "" {
		return image
	}
	if image := ExtractImage(summary); image != "" {
		return image
	}
	return fallback
}

// channelImage picks the feed's explicit image if the dialect exposes
// one, otherwise scans the channel description for an <img> tag.
func channelImage(feed *gofeed.Feed) string {
	if feed.Image != nil && feed.Image.URL != "" {
		return feed.Image.URL
	}
	return ExtractImage(feed.Description)
}
