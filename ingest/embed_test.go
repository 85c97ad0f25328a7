package ingest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/topical/ai/mock"
	"github.com/poiesic/topical/core"
)

func TestChunkEmbedderPopulatesNormalizedVectors(t *testing.T) {
	embedder := mock.NewMockEmbedder(8)
	ce := newChunkEmbedder(embedder, 1, time.Millisecond)

	chunks := []*core.Chunk{
		{SourceURL: "https://example.com/a", Index: 0, Text: "first chunk text"},
		{SourceURL: "https://example.com/a", Index: 1, Text: "second chunk text"},
	}
	require.NoError(t, ce.embed(context.Background(), chunks))

	for _, c := range chunks {
		require.Len(t, c.Vector, 8)
		var sumSquares float64
		for _, v := range c.Vector {
			sumSquares += float64(v) * float64(v)
		}
		assert.InDelta(t, 1.0, sumSquares, 1e-5)
	}
}

func TestChunkEmbedderEmptyBatch(t *testing.T) {
	embedder := mock.NewMockEmbedder(8)
	ce := newChunkEmbedder(embedder, 1, time.Millisecond)

	require.NoError(t, ce.embed(context.Background(), nil))
	assert.Equal(t, 0, embedder.CallCount())
}

func TestChunkEmbedderRetriesTransientFailure(t *testing.T) {
	embedder := mock.NewMockEmbedder(8)
	attempts := 0
	embedder.EmbedTextsFunc = func(_ context.Context, texts []string) ([][]float32, error) {
		attempts++
		if attempts == 1 {
			return nil, errors.New("temporarily unavailable")
		}
		vectors := make([][]float32, len(texts))
		for i, text := range texts {
			vectors[i] = mock.DeterministicVector(text, 8)
		}
		return vectors, nil
	}
	ce := newChunkEmbedder(embedder, 3, time.Millisecond)

	chunks := []*core.Chunk{{Text: "chunk"}}
	require.NoError(t, ce.embed(context.Background(), chunks))
	assert.Equal(t, 2, attempts)
	assert.Len(t, chunks[0].Vector, 8)
}

func TestChunkEmbedderCountMismatch(t *testing.T) {
	embedder := mock.NewMockEmbedder(8)
	embedder.EmbedTextsFunc = func(_ context.Context, texts []string) ([][]float32, error) {
		return make([][]float32, len(texts)+1), nil
	}
	ce := newChunkEmbedder(embedder, 1, time.Millisecond)

	err := ce.embed(context.Background(), []*core.Chunk{{Text: "chunk"}})
	assert.ErrorContains(t, err, "mismatch")
}
