package models

import (
	"bytes"
	"encoding/json"
)

// Article is the normalized representation of one feed entry, uniform
// across the different feed dialects the sources publish.
type Article struct {
	Title          string   `json:"title"`
	Link           string   `json:"link"`
	PubDate        string   `json:"pubDate,omitempty"`
	Channel        string   `json:"channel"`
	ContentSnippet string   `json:"contentSnippet"`
	Categories     []string `json:"categories"`
	Image          string   `json:"image,omitempty"`
}

// Feeds maps source names to their articles. Unlike a plain map it
// remembers insertion order so the JSON object keys come out in the
// same order the sources were configured.
type Feeds struct {
	names    []string
	articles map[string][]Article
}

func NewFeeds() *Feeds {
	return &Feeds{
		articles: make(map[string][]Article),
	}
}

// Set stores the article list for a source, keeping first-insertion order.
func (f *Feeds) Set(name string, articles []Article) {
	if _, ok := f.articles[name]; !ok {
		f.names = append(f.names, name)
	}
	f.articles[name] = articles
}

func (f *Feeds) Get(name string) ([]Article, bool) {
	articles, ok := f.articles[name]
	return articles, ok
}

// Names returns the source names in insertion order.
func (f *Feeds) Names() []string {
	return f.names
}

func (f *Feeds) Len() int {
	return len(f.names)
}

// MarshalJSON writes the mapping as a JSON object with keys in
// insertion order instead of the sorted order encoding/json uses for maps.
func (f *Feeds) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range f.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(f.articles[name])
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// TrendingResponse is the body returned by GET /api/trending.
type TrendingResponse struct {
	Feeds *Feeds `json:"feeds"`
}
