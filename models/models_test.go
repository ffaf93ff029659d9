package models_test

import (
	"encoding/json"
	"testing"

	"trending/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedsInsertionOrder(t *testing.T) {
	feeds := models.NewFeeds()
	feeds.Set("Zulu", []models.Article{})
	feeds.Set("Alpha", []models.Article{})
	feeds.Set("Mike", []models.Article{})

	assert.Equal(t, []string{"Zulu", "Alpha", "Mike"}, feeds.Names())
	assert.Equal(t, 3, feeds.Len())

	out, err := json.Marshal(feeds)
	require.NoError(t, err)
	assert.Equal(t, `{"Zulu":[],"Alpha":[],"Mike":[]}`, string(out))
}

func TestFeedsOverwriteKeepsPosition(t *testing.T) {
	feeds := models.NewFeeds()
	feeds.Set("A", []models.Article{})
	feeds.Set("B", []models.Article{})
	feeds.Set("A", []models.Article{{Title: "updated"}})

	assert.Equal(t, []string{"A", "B"}, feeds.Names())
	articles, ok := feeds.Get("A")
	require.True(t, ok)
	require.Len(t, articles, 1)
	assert.Equal(t, "updated", articles[0].Title)
}

func TestEmptyFeedsMarshal(t *testing.T) {
	out, err := json.Marshal(models.NewFeeds())
	require.NoError(t, err)
	assert.Equal(t, "{}", string(out))
}

func TestTrendingResponseShape(t *testing.T) {
	feeds := models.NewFeeds()
	feeds.Set("Src", []models.Article{{
		Title:          "t",
		Link:           "https://example.com",
		Channel:        "Src",
		ContentSnippet: "t...",
		Categories:     []string{},
	}})

	out, err := json.Marshal(models.TrendingResponse{Feeds: feeds})
	require.NoError(t, err)
	assert.JSONEq(t, `{"feeds":{"Src":[{"title":"t","link":"https://example.com","channel":"Src","contentSnippet":"t...","categories":[]}]}}`, string(out))
}
