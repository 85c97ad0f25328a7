package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/poiesic/topical/ai"
	"github.com/poiesic/topical/core"
)

// chunkEmbedder generates embeddings for staged chunk batches.
type chunkEmbedder struct {
	embedder       ai.Embedder
	maxRetries     int
	retryBaseDelay time.Duration
}

func newChunkEmbedder(embedder ai.Embedder, maxRetries int, retryBaseDelay time.Duration) *chunkEmbedder {
	return &chunkEmbedder{
		embedder:       embedder,
		maxRetries:     maxRetries,
		retryBaseDelay: retryBaseDelay,
	}
}

// embed populates Vector on each chunk. Embedding calls are retried with
// backoff. Vectors are normalized to unit length so dot product equals
// cosine similarity at query time.
func (ce *chunkEmbedder) embed(ctx context.Context, chunks []*core.Chunk) error {
	if len(chunks) == 0 {
		return nil
	}

	texts := make([]string, len(chunks))
	for i, chunk := range chunks {
		texts[i] = chunk.Text
	}

	var embeddings [][]float32
	err := retryWithBackoff(ctx, func() error {
		var err error
		embeddings, err = ce.embedder.EmbedTexts(ctx, texts)
		return err
	}, ce.maxRetries, ce.retryBaseDelay)

	if err != nil {
		return fmt.Errorf("failed to generate embeddings after %d attempts: %w", ce.maxRetries, err)
	}

	if len(embeddings) != len(chunks) {
		return fmt.Errorf("embedding count mismatch: expected %d, got %d", len(chunks), len(embeddings))
	}

	for i := range chunks {
		chunks[i].Vector = core.Normalize(embeddings[i])
	}
	return nil
}
