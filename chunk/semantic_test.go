package chunk

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/topical/ai/mock"
)

// topicVectors maps sentences to axis-aligned vectors so adjacent-sentence
// similarity is exactly 1.0 within a topic and 0.0 across topics.
func topicVectors(topicOf func(string) int) func(ctx context.Context, texts []string) ([][]float32, error) {
	return func(_ context.Context, texts []string) ([][]float32, error) {
		vectors := make([][]float32, len(texts))
		for i, text := range texts {
			v := make([]float32, 4)
			v[topicOf(text)] = 1.0
			vectors[i] = v
		}
		return vectors, nil
	}
}

func TestSemanticSplitterBreaksOnCohesionDrop(t *testing.T) {
	embedder := mock.NewMockEmbedder(4)
	embedder.EmbedTextsFunc = topicVectors(func(s string) int {
		if strings.Contains(s, "market") {
			return 0
		}
		return 1
	})

	splitter, err := NewSemanticSplitter(embedder, WithSemanticBounds(10, 1500))
	require.NoError(t, err)

	text := "The market opened sharply higher today. The market rally continued into the afternoon. " +
		"Meanwhile the weather turned stormy overnight. Heavy rain is expected through the weekend."
	chunks, err := splitter.Split(context.Background(), text)
	require.NoError(t, err)

	require.Len(t, chunks, 2)
	assert.Contains(t, chunks[0], "market opened")
	assert.Contains(t, chunks[0], "rally continued")
	assert.Contains(t, chunks[1], "stormy")
	assert.Contains(t, chunks[1], "Heavy rain")
}

func TestSemanticSplitterKeepsCohesiveText(t *testing.T) {
	embedder := mock.NewMockEmbedder(4)
	embedder.EmbedTextsFunc = topicVectors(func(string) int { return 0 })

	splitter, err := NewSemanticSplitter(embedder, WithSemanticBounds(10, 1500))
	require.NoError(t, err)

	text := "First cohesive sentence here. Second cohesive sentence here. Third cohesive sentence here."
	chunks, err := splitter.Split(context.Background(), text)
	require.NoError(t, err)

	require.Len(t, chunks, 1)
	assert.Contains(t, chunks[0], "First cohesive")
	assert.Contains(t, chunks[0], "Third cohesive")
}

func TestSemanticSplitterRespectsBudget(t *testing.T) {
	embedder := mock.NewMockEmbedder(4)
	embedder.EmbedTextsFunc = topicVectors(func(string) int { return 0 })

	splitter, err := NewSemanticSplitter(embedder, WithSemanticBounds(10, 80))
	require.NoError(t, err)

	text := "Sentence number one has some words. Sentence number two has some words. " +
		"Sentence number three has some words. Sentence number four has some words."
	chunks, err := splitter.Split(context.Background(), text)
	require.NoError(t, err)

	require.Greater(t, len(chunks), 1)
	for _, chunk := range chunks {
		assert.LessOrEqual(t, len(chunk), 80)
		assert.GreaterOrEqual(t, len(chunk), 10)
	}
}

func TestSemanticSplitterFewSentences(t *testing.T) {
	embedder := mock.NewMockEmbedder(4)
	splitter, err := NewSemanticSplitter(embedder)
	require.NoError(t, err)

	chunks, err := splitter.Split(context.Background(), "Only one sentence in this entire text.")
	require.NoError(t, err)
	assert.Empty(t, chunks)

	chunks, err = splitter.Split(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, chunks)

	// The embedder is never consulted for texts that cannot be chunked.
	assert.Equal(t, 0, embedder.CallCount())
}

func TestSemanticSplitterEmbedderError(t *testing.T) {
	wantErr := errors.New("embedding service down")
	embedder := mock.NewMockEmbedder(4)
	embedder.EmbedTextsFunc = func(context.Context, []string) ([][]float32, error) {
		return nil, wantErr
	}

	splitter, err := NewSemanticSplitter(embedder)
	require.NoError(t, err)

	_, err = splitter.Split(context.Background(), "Sentence one is here. Sentence two is here.")
	assert.ErrorIs(t, err, wantErr)
}

func TestSemanticSplitterEmbeddingMismatch(t *testing.T) {
	embedder := mock.NewMockEmbedder(4)
	embedder.EmbedTextsFunc = func(_ context.Context, texts []string) ([][]float32, error) {
		return make([][]float32, len(texts)-1), nil
	}

	splitter, err := NewSemanticSplitter(embedder)
	require.NoError(t, err)

	_, err = splitter.Split(context.Background(), "Sentence one is here. Sentence two is here.")
	assert.ErrorIs(t, err, ErrEmbeddingMismatch)
}

func TestNewSemanticSplitterValidation(t *testing.T) {
	_, err := NewSemanticSplitter(nil)
	assert.ErrorIs(t, err, ErrEmbedderRequired)

	_, err = NewSemanticSplitter(mock.NewMockEmbedder(4), WithSemanticBounds(100, 50))
	assert.ErrorIs(t, err, ErrInvalidBounds)
}
