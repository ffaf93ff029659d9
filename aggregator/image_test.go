package aggregator_test

import (
	"testing"

	"trending/aggregator"

	"github.com/stretchr/testify/assert"
)

func TestExtractImage(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		expected string
	}{
		{
			name:     "empty string",
			html:     "",
			expected: "",
		},
		{
			name:     "plain text without markup",
			html:     "just some words",
			expected: "",
		},
		{
			name:     "markup without images",
			html:     "<p>hello <b>world</b></p>",
			expected: "",
		},
		{
			name:     "double quoted src",
			html:     `<p>intro</p><img src="https://example.com/a.jpg" alt="a">`,
			expected: "https://example.com/a.jpg",
		},
		{
			name:     "single quoted src",
			html:     "<img src='https://example.com/b.png'>",
			expected: "https://example.com/b.png",
		},
		{
			name:     "uppercase tag and attribute",
			html:     `<IMG SRC="https://example.com/c.gif">`,
			expected: "https://example.com/c.gif",
		},
		{
			name:     "src after other attributes",
			html:     `<img class="hero" width="600" src="https://example.com/d.jpg">`,
			expected: "https://example.com/d.jpg",
		},
		{
			name:     "first of several images wins",
			html:     `<img src="https://example.com/first.jpg"><img src="https://example.com/second.jpg">`,
			expected: "https://example.com/first.jpg",
		},
		{
			name:     "img without src",
			html:     `<img alt="decorative">`,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := aggregator.ExtractImage(tt.html)
			assert.Equal(t, tt.expected, result)
		})
	}
}
