package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/topical/core"
)

func TestIDRoundTrip(t *testing.T) {
	ids := []core.ID{0, 1, 255, 70000, 18446744073709551615}

	for _, id := range ids {
		data := MarshalID(id)
		got, err := UnmarshalID(data)
		require.NoError(t, err)
		assert.Equal(t, id, got)
	}
}

func TestArticleRoundTrip(t *testing.T) {
	published := time.Date(2025, 6, 14, 9, 30, 0, 0, time.UTC)
	inserted := time.Now().UTC().Truncate(time.Microsecond)

	article := &core.Article{
		URL:         "https://example.com/news/fusion-breakthrough",
		Title:       "Fusion Breakthrough Announced",
		PublishedAt: published,
		Content:     "Researchers announced a major advance in fusion energy today.",
		InsertedAt:  inserted,
	}

	data := MarshalArticle(article)
	got, err := UnmarshalArticle(data)
	require.NoError(t, err)

	assert.Equal(t, article.URL, got.URL)
	assert.Equal(t, article.Title, got.Title)
	assert.True(t, article.PublishedAt.Equal(got.PublishedAt))
	assert.Equal(t, article.Content, got.Content)
	assert.True(t, article.InsertedAt.Equal(got.InsertedAt))
}

func TestArticleRoundTripZeroTimes(t *testing.T) {
	article := &core.Article{
		URL:     "https://example.com/undated",
		Title:   "Undated",
		Content: "A feed that never set a publication timestamp.",
	}

	data := MarshalArticle(article)
	got, err := UnmarshalArticle(data)
	require.NoError(t, err)

	assert.Equal(t, article.URL, got.URL)
	assert.Equal(t, int64(0), got.PublishedAt.UnixMicro()-article.PublishedAt.UnixMicro())
}

func TestUnmarshalArticleTruncated(t *testing.T) {
	article := &core.Article{
		URL:     "https://example.com/a",
		Title:   "A",
		Content: "body",
	}
	data := MarshalArticle(article)

	_, err := UnmarshalArticle(data[:len(data)/2])
	assert.Error(t, err)
}
