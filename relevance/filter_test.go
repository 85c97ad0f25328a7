package relevance

import (
	"context"
	"errors"
	"testing"

	"github.com/poiesic/topical/ai/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFilter(t *testing.T) {
	embedder := mock.NewMockEmbedder(8)

	t.Run("valid", func(t *testing.T) {
		f, err := NewFilter(embedder, "marketing and advertising", 0.45)
		require.NoError(t, err)
		require.NotNil(t, f)
		assert.InDelta(t, 0.45, f.Threshold(), 1e-6)
	})

	t.Run("nil embedder", func(t *testing.T) {
		_, err := NewFilter(nil, "topic", 0.45)
		assert.Equal(t, ErrEmbedderRequired, err)
	})

	t.Run("empty topic", func(t *testing.T) {
		_, err := NewFilter(embedder, "", 0.45)
		assert.Equal(t, ErrEmptyTopic, err)
	})
}

func TestFilter_Score_Deterministic(t *testing.T) {
	embedder := mock.NewMockEmbedder(32)
	f, err := NewFilter(embedder, "digital marketing, SEO, campaigns", 0.45)
	require.NoError(t, err)

	ctx := context.Background()
	text := "A long analysis of search engine optimization trends."

	first, err := f.Score(ctx, text)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := f.Score(ctx, text)
		require.NoError(t, err)
		assert.Equal(t, first, again, "score must be bit-for-bit reproducible")
	}
}

func TestFilter_Accept(t *testing.T) {
	embedder := mock.NewMockEmbedder(8)
	// Force identical embeddings for topic and text: similarity 1.0.
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return []float32{1, 0, 0, 0}, nil
	}

	f, err := NewFilter(embedder, "topic", 0.45)
	require.NoError(t, err)

	ok, score, err := f.Accept(context.Background(), "anything")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.InDelta(t, 1.0, score, 1e-6)
}

func TestFilter_Accept_BelowThreshold(t *testing.T) {
	embedder := mock.NewMockEmbedder(8)
	calls := 0
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		calls++
		if calls == 1 {
			return []float32{1, 0}, nil // topic
		}
		return []float32{0, 1}, nil // orthogonal article
	}

	f, err := NewFilter(embedder, "topic", 0.45)
	require.NoError(t, err)

	ok, score, err := f.Accept(context.Background(), "off-topic text")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.InDelta(t, 0.0, score, 1e-6)
}

func TestFilter_TopicEmbeddedOnce(t *testing.T) {
	embedder := mock.NewMockEmbedder(8)
	f, err := NewFilter(embedder, "topic description", 0.45)
	require.NoError(t, err)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, err := f.Score(ctx, "some article text")
		require.NoError(t, err)
	}

	// 1 topic embedding + 3 article embeddings
	assert.Equal(t, 4, embedder.CallCount())
}

func TestFilter_EmbedderError(t *testing.T) {
	embedder := mock.NewMockEmbedder(8)
	wantErr := errors.New("embedding service down")
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return nil, wantErr
	}

	f, err := NewFilter(embedder, "topic", 0.45)
	require.NoError(t, err)

	_, _, err = f.Accept(context.Background(), "text")
	assert.ErrorIs(t, err, wantErr)
}

func TestFilter_CustomMetric(t *testing.T) {
	embedder := mock.NewMockEmbedder(8)
	f, err := NewFilter(embedder, "topic", 0.5, WithMetric(func(a, b []float32) float32 {
		return 0.75
	}))
	require.NoError(t, err)

	ok, score, err := f.Accept(context.Background(), "text")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.InDelta(t, 0.75, score, 1e-6)
}
