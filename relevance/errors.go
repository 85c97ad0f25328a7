package relevance

import "errors"

var (
	// ErrEmbedderRequired is returned when an embedder is not provided.
	ErrEmbedderRequired = errors.New("embedder required")

	// ErrEmptyTopic is returned when the topic description is empty.
	ErrEmptyTopic = errors.New("topic description required")
)
