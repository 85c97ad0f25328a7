package chunk

import "errors"

var (
	// ErrEmbedderRequired is returned when a semantic splitter is created
	// without an embedder.
	ErrEmbedderRequired = errors.New("embedder required")

	// ErrInvalidBounds is returned for nonsensical length configuration.
	ErrInvalidBounds = errors.New("invalid chunk length bounds")

	// ErrEmbeddingMismatch indicates the embedder returned a different number
	// of vectors than sentences submitted.
	ErrEmbeddingMismatch = errors.New("embedding count mismatch")
)
